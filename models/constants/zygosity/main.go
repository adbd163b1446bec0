package zygosity

import (
	"pedigree/api/models/constants"
)

const (
	Unknown constants.Zygosity = iota

	HomozygousReference
	Heterozygous
	HeterozygousNonReference
	HomozygousAlternate
)

func IsKnown(value int) bool {
	return value > int(Unknown) && value <= int(HomozygousAlternate)
}

func ZygosityToString(zyg constants.Zygosity) string {
	switch zyg {
	case HomozygousReference:
		return "HOMOZYGOUS_REFERENCE"
	case Heterozygous:
		return "HETEROZYGOUS"
	case HeterozygousNonReference:
		return "HETEROZYGOUS_NON_REFERENCE"
	case HomozygousAlternate:
		return "HOMOZYGOUS_ALTERNATE"
	default:
		return "UNKNOWN"
	}
}
