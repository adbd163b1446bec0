package chromosome

import (
	"strconv"
	"strings"
)

// ranks for the non-numeric human contigs; anything else sorts after these
const (
	rankX     = 23
	rankY     = 24
	rankM     = 25
	rankOther = 26
)

// Normalize strips a leading "chr" (any case) and upper-cases the remainder,
// so that "chrX", "x" and "X" compare equal.
func Normalize(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) > 3 && strings.EqualFold(trimmed[:3], "chr") {
		trimmed = trimmed[3:]
	}
	return strings.ToUpper(trimmed)
}

func IsX(text string) bool {
	return Normalize(text) == "X"
}

func IsValidHumanChromosome(text string) bool {
	return rank(Normalize(text)) < rankOther
}

func rank(normalized string) int {
	if n, err := strconv.Atoi(normalized); err == nil && n > 0 && n < 23 {
		return n
	}
	switch normalized {
	case "X":
		return rankX
	case "Y":
		return rankY
	case "M", "MT":
		return rankM
	}
	return rankOther
}

// Compare orders contigs as 1..22, X, Y, M, then every other contig lexicographically.
// It returns -1, 0 or 1.
func Compare(a, b string) int {
	na, nb := Normalize(a), Normalize(b)
	ra, rb := rank(na), rank(nb)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	case ra == rankOther:
		return strings.Compare(na, nb)
	}
	return 0
}
