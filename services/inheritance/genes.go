package inheritance

import (
	"sort"
	"strings"

	"pedigree/api/models"
)

// GroupByGene buckets variants by the value of the given annotation field.
// Variants without the annotation (or with an empty value) are left out.
func GroupByGene(variants []models.Variant, geneField string) map[string][]models.Variant {
	groups := make(map[string][]models.Variant)
	if geneField == "" {
		return groups
	}
	for _, v := range variants {
		gene, ok := v.Annotation(geneField)
		if !ok || gene == "" {
			continue
		}
		groups[gene] = append(groups[gene], v)
	}
	return groups
}

func GeneSymbols(groups map[string][]models.Variant) []string {
	symbols := make([]string, 0, len(groups))
	for symbol := range groups {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// CompoundGenotypeString joins the members' genotype strings in locus order.
func CompoundGenotypeString(members []models.Variant) string {
	ordered := append([]models.Variant(nil), members...)
	SortVariants(ordered)

	parts := make([]string, 0, len(ordered))
	for _, v := range ordered {
		parts = append(parts, v.Genotype.String())
	}
	return strings.Join(parts, "|")
}

// compoundGenotypeStringIn builds the same string from one individual's calls
// at the members' loci; loci missing from the index contribute nothing.
func compoundGenotypeStringIn(members []models.Variant, idx LocusIndex) string {
	ordered := append([]models.Variant(nil), members...)
	SortVariants(ordered)

	parts := make([]string, 0, len(ordered))
	for _, v := range ordered {
		if other, ok := idx.Lookup(v.Key()); ok {
			parts = append(parts, other.Genotype.String())
		}
	}
	return strings.Join(parts, "|")
}
