package inheritance

import (
	"pedigree/api/models"
)

type DominantOptions struct {
	// RequireHetInAllAffected applies the heterozygous-with-reference test to
	// every affected individual's call instead of the candidate's call only.
	RequireHetInAllAffected bool
}

// Dominant keeps heterozygous candidates carrying a non-reference allele that
// every affected individual has and no unaffected individual has, and that the
// supplied unaffected parents cannot explain by ordinary transmission.
func Dominant(candidates []models.Variant, affected, unaffected []LocusIndex, mother, father LocusIndex, opts DominantOptions) []models.Variant {
	result := make([]models.Variant, 0)
	if len(affected) == 0 {
		return result
	}

	for _, v := range candidates {
		if !v.Genotype.IsHet() {
			continue
		}
		if opts.RequireHetInAllAffected && !isHetInAll(v.Key(), affected) {
			continue
		}
		if GenotypeIsPresentInIndividuals(v, unaffected) {
			continue
		}
		if !hasSegregatingAllele(v, affected, unaffected) {
			continue
		}
		if (mother != nil || father != nil) && IsConsistent(v, mother, father) {
			continue
		}
		result = append(result, v)
	}
	return result
}

func isHetInAll(key string, indices []LocusIndex) bool {
	for _, idx := range indices {
		other, ok := idx.Lookup(key)
		if !ok || !other.Genotype.IsHet() {
			return false
		}
	}
	return true
}

// hasSegregatingAllele looks for one non-reference allele of the candidate
// that is carried at the locus by all affected and by none of the unaffected.
func hasSegregatingAllele(v models.Variant, affected, unaffected []LocusIndex) bool {
	key := v.Key()
	for _, allele := range v.Genotype.NonReference() {
		if carriedByAll(key, allele, affected) && !carriedByAny(key, allele, unaffected) {
			return true
		}
	}
	return false
}

func carriedByAll(key string, allele models.Allele, indices []LocusIndex) bool {
	for _, idx := range indices {
		other, ok := idx.Lookup(key)
		if !ok || !other.Genotype.HasAllele(allele) {
			return false
		}
	}
	return true
}

func carriedByAny(key string, allele models.Allele, indices []LocusIndex) bool {
	for _, idx := range indices {
		if other, ok := idx.Lookup(key); ok && other.Genotype.HasAllele(allele) {
			return true
		}
	}
	return false
}
