package inheritance

import (
	"pedigree/api/models"
)

// Recessive keeps homozygous-variant candidates whose genotype is shared,
// string for string, by every affected individual and by no unaffected one.
func Recessive(candidates []models.Variant, affected, unaffected []LocusIndex) []models.Variant {
	result := make([]models.Variant, 0)
	if len(affected) == 0 {
		return result
	}

	for _, v := range candidates {
		if !v.Genotype.IsHomVar() {
			continue
		}
		if !genotypeIsIdenticalInIndividuals(v, affected) {
			continue
		}
		if GenotypeIsPresentInIndividuals(v, unaffected) {
			continue
		}
		result = append(result, v)
	}
	return result
}
