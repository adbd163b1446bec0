package inheritance

import (
	"os"
	"testing"

	"pedigree/api/models"

	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

const geneField = "GENE"

func variant(chrom string, pos int, ref, left, right string) models.Variant {
	return models.Variant{
		Chrom:    chrom,
		Pos:      pos,
		Ref:      models.Allele(ref),
		Genotype: models.NewGenotype(models.Allele(left), models.Allele(right), models.Allele(ref)),
	}
}

func inGene(v models.Variant, gene string) models.Variant {
	v.Info = map[string]string{geneField: gene}
	return v
}

func keys(variants []models.Variant) []string {
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		out = append(out, v.Key())
	}
	return out
}

// -- yaml family fixtures
type fixtureVariant struct {
	Chrom   string   `yaml:"chrom"`
	Pos     int      `yaml:"pos"`
	Ref     string   `yaml:"ref"`
	Alleles []string `yaml:"alleles"`
	Gene    string   `yaml:"gene"`
}

type fixtureIndividual struct {
	Id       string           `yaml:"id"`
	Variants []fixtureVariant `yaml:"variants"`
}

type fixtureFamily struct {
	Individuals []fixtureIndividual `yaml:"individuals"`
}

func loadFamilyIndices(t *testing.T, path string) map[string]LocusIndex {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var fam fixtureFamily
	require.NoError(t, yaml.Unmarshal(raw, &fam))

	indices := make(map[string]LocusIndex, len(fam.Individuals))
	for _, ind := range fam.Individuals {
		variants := make([]models.Variant, 0, len(ind.Variants))
		for _, fv := range ind.Variants {
			require.Len(t, fv.Alleles, 2, "%s %s_%d", ind.Id, fv.Chrom, fv.Pos)
			v := variant(fv.Chrom, fv.Pos, fv.Ref, fv.Alleles[0], fv.Alleles[1])
			v.SampleId = ind.Id
			if fv.Gene != "" {
				v = inGene(v, fv.Gene)
			}
			variants = append(variants, v)
		}
		indices[ind.Id] = BuildLocusIndex(variants)
	}
	return indices
}
