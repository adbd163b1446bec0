package inheritance

import (
	"pedigree/api/models"
)

// DeNovo keeps non-reference calls that the relationship's parents cannot
// explain and that no unaffected individual carries with the same genotype.
func DeNovo(candidates []models.Variant, rel Relationship, unaffected []LocusIndex) []models.Variant {
	inconsistent := TestGenotypeInConsistency(candidates, rel)

	result := make([]models.Variant, 0, len(inconsistent))
	for _, v := range inconsistent {
		if GenotypeIsPresentInIndividuals(v, unaffected) {
			continue
		}
		if v.Genotype.IsHomRef() {
			continue
		}
		result = append(result, v)
	}
	return result
}
