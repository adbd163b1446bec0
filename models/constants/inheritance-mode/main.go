package inheritanceMode

import (
	"pedigree/api/models/constants"
	"strings"
)

const (
	Unknown constants.InheritanceMode = ""

	Recessive            constants.InheritanceMode = "recessive"
	Dominant             constants.InheritanceMode = "dominant"
	CompoundHeterozygous constants.InheritanceMode = "compound-heterozygous"
	XLinked              constants.InheritanceMode = "x-linked"
	DeNovo               constants.InheritanceMode = "denovo"
)

func All() []constants.InheritanceMode {
	return []constants.InheritanceMode{Recessive, Dominant, CompoundHeterozygous, XLinked, DeNovo}
}

func CastToInheritanceMode(text string) constants.InheritanceMode {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(text), "_", "-")) {
	case "recessive", "autosomal-recessive":
		return Recessive
	case "dominant", "autosomal-dominant":
		return Dominant
	case "compound-heterozygous", "compound-het", "comphet":
		return CompoundHeterozygous
	case "x-linked", "xlinked", "x-linked-recessive":
		return XLinked
	case "denovo", "de-novo":
		return DeNovo
	default:
		return Unknown
	}
}

func IsKnownInheritanceMode(text string) bool {
	return CastToInheritanceMode(text) != Unknown
}
