package dtos

import (
	"fmt"
	"time"

	"pedigree/api/models"
	c "pedigree/api/models/constants"
	"pedigree/api/models/constants/sex"
	z "pedigree/api/models/constants/zygosity"
	"pedigree/api/models/pedigree"
)

// -- errors
type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}
type GeneralError struct {
	Message string `json:"message"`
}

// -- requests
type VariantDto struct {
	Chrom   string            `json:"chrom"`
	Pos     int               `json:"pos"`
	Id      string            `json:"id"`
	Ref     string            `json:"ref"`
	Alt     []string          `json:"alt"`
	Alleles []string          `json:"alleles"` // exactly two: left, right
	Info    map[string]string `json:"info"`
}

type IndividualDto struct {
	Id       string       `json:"id"`
	Sex      string       `json:"sex"`
	MotherId string       `json:"motherId"`
	FatherId string       `json:"fatherId"`
	Affected bool         `json:"affected"`
	Variants []VariantDto `json:"variants"`
}

// AnalysisRequestDto is the body of an analysis; the inheritance mode is
// taken from the `mode` query parameter.
type AnalysisRequestDto struct {
	GeneField               string          `json:"geneField"`
	RequireHetInAllAffected *bool           `json:"requireHetInAllAffected"`
	Individuals             []IndividualDto `json:"individuals"`
}

// SampleAnalysisRequestDto describes a family whose variants are fetched from
// the variant store; the individuals' `variants` are ignored.
type SampleAnalysisRequestDto struct {
	AnalysisRequestDto
	AnnotateGenes bool `json:"annotateGenes"`
}

func (v VariantDto) ToVariant(sampleId string) (models.Variant, error) {
	if len(v.Alleles) != 2 {
		return models.Variant{}, fmt.Errorf("variant %s_%d of %s: expected 2 alleles, got %d", v.Chrom, v.Pos, sampleId, len(v.Alleles))
	}
	ref := models.Allele(v.Ref)
	alts := make([]models.Allele, 0, len(v.Alt))
	for _, a := range v.Alt {
		alts = append(alts, models.Allele(a))
	}
	return models.Variant{
		Chrom:    v.Chrom,
		Pos:      v.Pos,
		Id:       v.Id,
		Ref:      ref,
		Alt:      alts,
		Genotype: models.NewGenotype(models.Allele(v.Alleles[0]), models.Allele(v.Alleles[1]), ref),
		Info:     v.Info,
		SampleId: sampleId,
	}, nil
}

func (r AnalysisRequestDto) ToFamily() (pedigree.Family, error) {
	family := pedigree.Family{Individuals: make([]pedigree.Individual, 0, len(r.Individuals))}
	for _, ind := range r.Individuals {
		if ind.Id == "" {
			return pedigree.Family{}, fmt.Errorf("individual without an 'id'")
		}

		variants := make([]models.Variant, 0, len(ind.Variants))
		for _, vd := range ind.Variants {
			v, err := vd.ToVariant(ind.Id)
			if err != nil {
				return pedigree.Family{}, err
			}
			variants = append(variants, v)
		}

		family.Individuals = append(family.Individuals, pedigree.Individual{
			Id:       ind.Id,
			Sex:      sex.CastToSex(ind.Sex),
			MotherId: ind.MotherId,
			FatherId: ind.FatherId,
			Affected: ind.Affected,
			Variants: variants,
		})
	}
	return family, nil
}

// -- responses
type VariantCall struct {
	Chrom        string            `json:"chrom"`
	Pos          int               `json:"pos"`
	Id           string            `json:"id"`
	Ref          string            `json:"ref"`
	Alt          []string          `json:"alt"`
	SampleId     string            `json:"sample_id"`
	Genotype     string            `json:"genotype"`
	GenotypeType string            `json:"genotype_type"`
	Info         map[string]string `json:"info,omitempty"`
}

func NewVariantCall(v models.Variant) VariantCall {
	alts := make([]string, 0, len(v.Alt))
	for _, a := range v.Alt {
		alts = append(alts, string(a))
	}
	return VariantCall{
		Chrom:        v.Chrom,
		Pos:          v.Pos,
		Id:           v.Id,
		Ref:          string(v.Ref),
		Alt:          alts,
		SampleId:     v.SampleId,
		Genotype:     v.Genotype.String(),
		GenotypeType: z.ZygosityToString(v.Genotype.Zygosity()),
		Info:         v.Info,
	}
}

type InheritanceResponseDto struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	RequestId string            `json:"requestId"`
	Mode      c.InheritanceMode `json:"mode"`
	Count     int               `json:"count"`
	Results   []VariantCall     `json:"results"`
}
