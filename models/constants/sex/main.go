package sex

import (
	"pedigree/api/models/constants"
	"strings"
)

const (
	Unknown constants.Sex = iota
	Male
	Female
)

// CastToSex accepts the usual spellings as well as the PED file codes (1 = male, 2 = female).
func CastToSex(text string) constants.Sex {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "male", "m", "1":
		return Male
	case "female", "f", "2":
		return Female
	default:
		return Unknown
	}
}

func SexToString(s constants.Sex) string {
	switch s {
	case Male:
		return "MALE"
	case Female:
		return "FEMALE"
	default:
		return "UNKNOWN"
	}
}
