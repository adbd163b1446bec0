package inheritance

import (
	"sort"

	"pedigree/api/models"
)

// LocusIndex maps "{chrom}_{pos}" to one individual's call at that locus.
// A nil LocusIndex stands for an individual that was not supplied at all,
// which is different from an empty one (supplied, no calls).
type LocusIndex map[string]models.Variant

// BuildLocusIndex keys every variant by locus; on collision the later variant wins.
func BuildLocusIndex(variants []models.Variant) LocusIndex {
	idx := make(LocusIndex, len(variants))
	for _, v := range variants {
		idx[v.Key()] = v
	}
	return idx
}

func (idx LocusIndex) Lookup(key string) (models.Variant, bool) {
	v, ok := idx[key]
	return v, ok
}

// Sorted returns the indexed variants ordered by (chromosome, position).
func (idx LocusIndex) Sorted() []models.Variant {
	variants := make([]models.Variant, 0, len(idx))
	for _, v := range idx {
		variants = append(variants, v)
	}
	SortVariants(variants)
	return variants
}

func SortVariants(variants []models.Variant) {
	sort.SliceStable(variants, func(i, j int) bool {
		return models.CompareLoci(variants[i], variants[j]) < 0
	})
}

// GenotypeIsPresentInIndividuals reports whether any of the indices holds the
// exact same genotype string at the variant's locus. Absence is not a match.
func GenotypeIsPresentInIndividuals(v models.Variant, indices []LocusIndex) bool {
	key, gt := v.Key(), v.Genotype.String()
	for _, idx := range indices {
		if other, ok := idx.Lookup(key); ok && other.Genotype.String() == gt {
			return true
		}
	}
	return false
}

// genotypeIsIdenticalInIndividuals requires a record with the exact same
// genotype string in every index. Absence disqualifies.
func genotypeIsIdenticalInIndividuals(v models.Variant, indices []LocusIndex) bool {
	key, gt := v.Key(), v.Genotype.String()
	for _, idx := range indices {
		other, ok := idx.Lookup(key)
		if !ok || other.Genotype.String() != gt {
			return false
		}
	}
	return true
}
