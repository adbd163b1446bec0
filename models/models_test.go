package models

import (
	"testing"

	z "pedigree/api/models/constants/zygosity"

	"github.com/stretchr/testify/assert"
)

func TestGenotypePredicates(t *testing.T) {
	tests := []struct {
		name                           string
		gt                             Genotype
		homRef, homVar, het, hetNonRef bool
		str                            string
	}{
		{"hom ref", NewGenotype("A", "A", "A"), true, false, false, false, "A/A"},
		{"het", NewGenotype("A", "G", "A"), false, false, true, false, "A/G"},
		{"het reversed", NewGenotype("G", "A", "A"), false, false, true, false, "G/A"},
		{"hom var", NewGenotype("G", "G", "A"), false, true, false, false, "G/G"},
		{"het non ref", NewGenotype("G", "T", "A"), false, false, false, true, "G/T"},
		{"indel het", NewGenotype("AT", "-", "AT"), false, false, true, false, "AT/-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.homRef, tt.gt.IsHomRef())
			assert.Equal(t, tt.homVar, tt.gt.IsHomVar())
			assert.Equal(t, tt.het, tt.gt.IsHet())
			assert.Equal(t, tt.hetNonRef, tt.gt.IsHetNonRef())
			assert.Equal(t, tt.str, tt.gt.String())
		})
	}
}

func TestGenotypeZygosityAndAlleles(t *testing.T) {
	assert.Equal(t, z.HomozygousReference, HomozygousReferenceGenotype("C").Zygosity())
	assert.Equal(t, z.HeterozygousNonReference, NewGenotype("G", "T", "A").Zygosity())

	assert.Equal(t, []Allele{"G", "T"}, NewGenotype("G", "T", "A").NonReference())
	assert.Equal(t, []Allele{"G"}, NewGenotype("G", "G", "A").NonReference())
	assert.Empty(t, NewGenotype("A", "A", "A").NonReference())

	assert.Equal(t, "T/C", NewGenotype("C", "T", "C").Reversed())
}

func TestVariantKeyAndAnnotation(t *testing.T) {
	v := Variant{Chrom: "1", Pos: 1000, Info: map[string]string{"GENE": "BRCA2"}}
	assert.Equal(t, "1_1000", v.Key())

	gene, ok := v.Annotation("GENE")
	assert.True(t, ok)
	assert.Equal(t, "BRCA2", gene)

	_, ok = Variant{}.Annotation("GENE")
	assert.False(t, ok)
}

func TestCompareLoci(t *testing.T) {
	a := Variant{Chrom: "2", Pos: 50}
	b := Variant{Chrom: "10", Pos: 10}
	c := Variant{Chrom: "X", Pos: 1}

	assert.Equal(t, -1, CompareLoci(a, b))
	assert.Equal(t, 1, CompareLoci(c, b))
	assert.Equal(t, -1, CompareLoci(Variant{Chrom: "2", Pos: 49}, a))
	assert.Equal(t, 0, CompareLoci(a, a))
}
