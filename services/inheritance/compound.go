package inheritance

import (
	"pedigree/api/models"
)

// CompoundHeterozygous keeps heterozygous loci shared by all affected
// individuals that fall, two or more at a time, into a gene whose combined
// genotype is not carried by any unaffected individual. When a parent is
// supplied the candidates are first checked for consistency with it.
func CompoundHeterozygous(candidates []models.Variant, affected, unaffected []LocusIndex, mother, father LocusIndex, geneField string) []models.Variant {
	result := make([]models.Variant, 0)
	if geneField == "" || len(affected) == 0 {
		return result
	}

	if mother != nil || father != nil {
		candidates = TestGenotypeConsistency(candidates, Relationship{Mother: mother, Father: father})
		candidates = removeHetNonRefWithoutParentalRecord(candidates, mother, father)
	}

	shared := sharedHeterozygotes(candidates, affected)
	segregating := removeHomVarInUnaffected(shared, unaffected)

	groups := GroupByGene(segregating, geneField)
	keep := make(map[string]bool)
	for _, symbol := range GeneSymbols(groups) {
		members := groups[symbol]
		if len(members) < 2 {
			continue
		}
		if compoundGenotypeIsInUnaffected(members, unaffected) {
			continue
		}
		for _, v := range members {
			keep[v.Key()] = true
		}
	}

	for _, v := range segregating {
		if keep[v.Key()] {
			result = append(result, v)
		}
	}
	return result
}

// removeHetNonRefWithoutParentalRecord drops two-alternate calls when a
// supplied parent has no record at the locus and so cannot have passed on a
// non-reference allele.
func removeHetNonRefWithoutParentalRecord(candidates []models.Variant, mother, father LocusIndex) []models.Variant {
	kept := make([]models.Variant, 0, len(candidates))
	for _, v := range candidates {
		if v.Genotype.IsHetNonRef() && (missingRecord(v, mother) || missingRecord(v, father)) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

func missingRecord(v models.Variant, parent LocusIndex) bool {
	if parent == nil {
		return false
	}
	_, ok := parent.Lookup(v.Key())
	return !ok
}

func sharedHeterozygotes(candidates []models.Variant, affected []LocusIndex) []models.Variant {
	kept := make([]models.Variant, 0, len(candidates))
	for _, v := range candidates {
		if !isAnyHet(v.Genotype) {
			continue
		}
		if !genotypeIsIdenticalInIndividuals(v, affected) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

func removeHomVarInUnaffected(candidates []models.Variant, unaffected []LocusIndex) []models.Variant {
	kept := make([]models.Variant, 0, len(candidates))
	for _, v := range candidates {
		if isHomVarInAny(v.Key(), unaffected) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

func compoundGenotypeIsInUnaffected(members []models.Variant, unaffected []LocusIndex) bool {
	affectedCompound := CompoundGenotypeString(members)
	for _, idx := range unaffected {
		if compoundGenotypeStringIn(members, idx) == affectedCompound {
			return true
		}
	}
	return false
}

func isAnyHet(g models.Genotype) bool {
	return g.IsHet() || g.IsHetNonRef()
}

func isHomVarInAny(key string, indices []LocusIndex) bool {
	for _, idx := range indices {
		if other, ok := idx.Lookup(key); ok && other.Genotype.IsHomVar() {
			return true
		}
	}
	return false
}
