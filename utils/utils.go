package utils

import "strings"

// IsMissingParentId reports whether a pedigree parent column carries no
// identifier ("" or the PED-style "0").
func IsMissingParentId(id string) bool {
	trimmed := strings.TrimSpace(id)
	return trimmed == "" || trimmed == "0"
}
