package inheritance

import (
	"pedigree/api/models"
	"pedigree/api/models/constants/chromosome"
)

// XLinked keeps homozygous (or hemizygous) X calls whose mother, when she has
// a record, is a heterozygous carrier and whose father, when he has a record,
// does not share the call. Without a maternal index nothing is returned.
func XLinked(candidates []models.Variant, mother, father LocusIndex) []models.Variant {
	result := make([]models.Variant, 0)
	if mother == nil {
		return result
	}

	for _, v := range candidates {
		if !chromosome.IsX(v.Chrom) || !v.Genotype.IsHomVar() {
			continue
		}
		if m, ok := mother.Lookup(v.Key()); ok && !isAnyHet(m.Genotype) {
			continue
		}
		if f, ok := father.Lookup(v.Key()); ok && f.Genotype.String() == v.Genotype.String() {
			continue
		}
		result = append(result, v)
	}
	return result
}
