package models

import (
	"fmt"

	"pedigree/api/models/constants"
	"pedigree/api/models/constants/chromosome"
	z "pedigree/api/models/constants/zygosity"
)

// Allele is a base sequence ("A", "AT", "-") compared by equality only.
type Allele string

// Genotype is a single diploid call. Reference is the record's reference
// allele so the zygosity predicates can be evaluated without the Variant.
type Genotype struct {
	Left      Allele `json:"left"`
	Right     Allele `json:"right"`
	Reference Allele `json:"reference"`
}

func NewGenotype(left, right, reference Allele) Genotype {
	return Genotype{Left: left, Right: right, Reference: reference}
}

// HomozygousReferenceGenotype is the call assumed for an individual with no record at a locus.
func HomozygousReferenceGenotype(reference Allele) Genotype {
	return Genotype{Left: reference, Right: reference, Reference: reference}
}

func (g Genotype) IsHomRef() bool {
	return g.Left == g.Reference && g.Right == g.Reference
}

func (g Genotype) IsHomVar() bool {
	return g.Left == g.Right && g.Left != g.Reference
}

func (g Genotype) IsHet() bool {
	return g.Left != g.Right && (g.Left == g.Reference || g.Right == g.Reference)
}

func (g Genotype) IsHetNonRef() bool {
	return g.Left != g.Right && g.Left != g.Reference && g.Right != g.Reference
}

func (g Genotype) HasAllele(a Allele) bool {
	return g.Left == a || g.Right == a
}

// NonReference returns the distinct non-reference alleles of the call, left first.
func (g Genotype) NonReference() []Allele {
	alleles := make([]Allele, 0, 2)
	if g.Left != g.Reference {
		alleles = append(alleles, g.Left)
	}
	if g.Right != g.Reference && g.Right != g.Left {
		alleles = append(alleles, g.Right)
	}
	return alleles
}

func (g Genotype) Zygosity() constants.Zygosity {
	switch {
	case g.IsHomRef():
		return z.HomozygousReference
	case g.IsHomVar():
		return z.HomozygousAlternate
	case g.IsHet():
		return z.Heterozygous
	case g.IsHetNonRef():
		return z.HeterozygousNonReference
	}
	return z.Unknown
}

// String is the canonical "left/right" form used for every identity test.
func (g Genotype) String() string {
	return fmt.Sprintf("%s/%s", g.Left, g.Right)
}

// Reversed is the "right/left" form.
func (g Genotype) Reversed() string {
	return fmt.Sprintf("%s/%s", g.Right, g.Left)
}

// Variant is the single-sample view of a VCF record.
type Variant struct {
	Chrom    string            `json:"chrom"`
	Pos      int               `json:"pos"`
	Id       string            `json:"id"`
	Ref      Allele            `json:"ref"`
	Alt      []Allele          `json:"alt"`
	Genotype Genotype          `json:"genotype"`
	Info     map[string]string `json:"info"`
	SampleId string            `json:"sampleId"`
}

func LocusKey(chrom string, pos int) string {
	return fmt.Sprintf("%s_%d", chrom, pos)
}

func (v Variant) Key() string {
	return LocusKey(v.Chrom, v.Pos)
}

func (v Variant) Annotation(field string) (string, bool) {
	if v.Info == nil {
		return "", false
	}
	value, ok := v.Info[field]
	return value, ok
}

// CompareLoci orders by chromosome (see chromosome.Compare) then position.
func CompareLoci(a, b Variant) int {
	if c := chromosome.Compare(a.Chrom, b.Chrom); c != 0 {
		return c
	}
	switch {
	case a.Pos < b.Pos:
		return -1
	case a.Pos > b.Pos:
		return 1
	}
	return 0
}
