package inheritance

import (
	"pedigree/api/models"
	"pedigree/api/models/constants/chromosome"
)

// parentGenotype resolves a parent's call at the child's locus, falling back
// to a homozygous reference call built from the child's reference allele.
func parentGenotype(child models.Variant, parent LocusIndex) models.Genotype {
	if v, ok := parent.Lookup(child.Key()); ok {
		return v.Genotype
	}
	return models.HomozygousReferenceGenotype(child.Ref)
}

// IsConsistent decides whether the child's call can be explained by Mendelian
// transmission from the supplied parents. With both parents the call must be one
// of the four maternal x paternal allele pairings; with one parent at least one
// child allele must match one of that parent's alleles; with no parent it is
// always consistent.
func IsConsistent(child models.Variant, mother, father LocusIndex) bool {
	switch {
	case mother == nil && father == nil:
		return true
	case mother == nil:
		return sharesAllele(child.Genotype, parentGenotype(child, father))
	case father == nil:
		return sharesAllele(child.Genotype, parentGenotype(child, mother))
	}

	m, f := parentGenotype(child, mother), parentGenotype(child, father)
	forward, reverse := child.Genotype.String(), child.Genotype.Reversed()
	for _, ma := range []models.Allele{m.Left, m.Right} {
		for _, fa := range []models.Allele{f.Left, f.Right} {
			transmitted := models.NewGenotype(ma, fa, child.Ref).String()
			if transmitted == forward || transmitted == reverse {
				return true
			}
		}
	}
	return false
}

func sharesAllele(child, parent models.Genotype) bool {
	return parent.HasAllele(child.Left) || parent.HasAllele(child.Right)
}

// rescuedByHemizygosity is true for a male X call that fails the full test but
// is consistent with the mother alone; the father contributes no X to a son.
func rescuedByHemizygosity(v models.Variant, rel Relationship) bool {
	return rel.IsMale() && chromosome.IsX(v.Chrom) && IsConsistent(v, rel.Mother, nil)
}

// TestGenotypeConsistency keeps the candidates explainable by transmission
// from the relationship's parents.
func TestGenotypeConsistency(candidates []models.Variant, rel Relationship) []models.Variant {
	kept := make([]models.Variant, 0, len(candidates))
	for _, v := range candidates {
		if IsConsistent(v, rel.Mother, rel.Father) || rescuedByHemizygosity(v, rel) {
			kept = append(kept, v)
		}
	}
	return kept
}

// TestGenotypeInConsistency keeps the candidates that cannot be explained by
// transmission. A male X call rescued by the maternal-only test is not kept.
func TestGenotypeInConsistency(candidates []models.Variant, rel Relationship) []models.Variant {
	kept := make([]models.Variant, 0, len(candidates))
	for _, v := range candidates {
		if IsConsistent(v, rel.Mother, rel.Father) || rescuedByHemizygosity(v, rel) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}
