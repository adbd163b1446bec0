package variantsService

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"pedigree/api/models"
	a "pedigree/api/models/constants/assembly-id"
	"pedigree/api/models/indexes"
	"pedigree/api/models/pedigree"
	"pedigree/api/services/variantcache"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	variantSearches int32
	geneSearches    int32
}

func hit(source map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"_source": source}
}

func sampleDoc(sampleId string, chrom string, pos int, ref string, alt string, left string, right string) map[string]interface{} {
	return map[string]interface{}{
		"chrom": chrom,
		"pos":   pos,
		"id":    ".",
		"ref":   []string{ref},
		"alt":   []string{alt},
		"sample": map[string]interface{}{
			"id": sampleId,
			"variation": map[string]interface{}{
				"alleles": map[string]interface{}{"left": left, "right": right},
			},
		},
	}
}

func (fs *fakeStore) serve(t *testing.T) *es7.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var hits []map[string]interface{}
		if strings.Contains(r.URL.Path, "genes") {
			atomic.AddInt32(&fs.geneSearches, 1)
			hits = []map[string]interface{}{
				hit(map[string]interface{}{"name": "GENE_A", "chrom": "7", "start": 50, "end": 150}),
				hit(map[string]interface{}{"name": "GENE_B", "chrom": "7", "start": 800, "end": 1000}),
			}
		} else {
			atomic.AddInt32(&fs.variantSearches, 1)
			var q map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&q)
			raw, _ := json.Marshal(q)
			switch {
			case strings.Contains(string(raw), `"query":"child"`):
				hits = []map[string]interface{}{
					hit(sampleDoc("child", "7", 100, "A", "G", "A", "G")),
					hit(sampleDoc("child", "7", 900, "C", "T", "C", "T")),
				}
			case strings.Contains(string(raw), `"query":"mother"`):
				hits = []map[string]interface{}{
					hit(sampleDoc("mother", "7", 100, "A", "G", "A", "G")),
				}
			}
		}

		body, _ := json.Marshal(map[string]interface{}{"hits": map[string]interface{}{"hits": hits}})
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)

	client, err := es7.NewClient(es7.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return client
}

func newTestService(t *testing.T, fs *fakeStore) *VariantService {
	cfg := &models.Config{}
	cfg.Api.VariantsFetchSize = 100
	cfg.Api.AnalysisConcurrencyLevel = 2
	cfg.Cache.TtlMinutes = 30

	return NewVariantService(fs.serve(t), cfg, variantcache.NewVariantCache(cfg))
}

func TestToVariant(t *testing.T) {
	doc := indexes.Variant{
		Chrom: "X",
		Pos:   500,
		Id:    "rs42",
		Ref:   []string{"G", "GA"},
		Alt:   []string{"C"},
		Info:  []indexes.Info{{Id: "GENE", Value: "DMD"}, {Id: "", Value: "dropped"}},
		Sample: indexes.Sample{
			Id: "proband",
			Variation: indexes.Variation{
				Alleles: indexes.AllelePair{Left: "C", Right: "C"},
			},
		},
	}

	v := ToVariant(doc)
	assert.Equal(t, "X_500", v.Key())
	assert.Equal(t, models.Allele("G"), v.Ref)
	assert.Equal(t, []models.Allele{"C"}, v.Alt)
	assert.True(t, v.Genotype.IsHomVar())
	assert.Equal(t, "C/C", v.Genotype.String())
	assert.Equal(t, map[string]string{"GENE": "DMD"}, v.Info)
	assert.Equal(t, "proband", v.SampleId)
}

func TestGetVariantsBySampleIdUsesCache(t *testing.T) {
	fs := &fakeStore{}
	vs := newTestService(t, fs)

	first, err := vs.GetVariantsBySampleId(context.Background(), "child", a.GRCh38)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "child", first[0].SampleId)
	assert.True(t, first[0].Genotype.IsHet())

	_, err = vs.GetVariantsBySampleId(context.Background(), "child", a.GRCh38)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&fs.variantSearches))
}

func TestAnnotateGenes(t *testing.T) {
	fs := &fakeStore{}
	vs := newTestService(t, fs)

	input := []models.Variant{
		{Chrom: "7", Pos: 100, Ref: "A", Genotype: models.NewGenotype("A", "G", "A")},
		{Chrom: "7", Pos: 900, Ref: "C", Genotype: models.NewGenotype("C", "T", "C"), Info: map[string]string{"DP": "30"}},
		{Chrom: "7", Pos: 500, Ref: "C", Genotype: models.NewGenotype("C", "T", "C")},
		{Chrom: "7", Pos: 120, Ref: "C", Genotype: models.NewGenotype("C", "T", "C"), Info: map[string]string{"GENE": "KEPT"}},
	}

	annotated, err := vs.AnnotateGenes(context.Background(), input, a.GRCh38, "GENE")
	require.NoError(t, err)
	require.Len(t, annotated, 4)

	assert.Equal(t, "GENE_A", annotated[0].Info["GENE"])
	assert.Equal(t, "GENE_B", annotated[1].Info["GENE"])
	assert.Equal(t, "30", annotated[1].Info["DP"])
	_, ok := annotated[2].Annotation("GENE")
	assert.False(t, ok, "no gene overlaps 7_500")
	assert.Equal(t, "KEPT", annotated[3].Info["GENE"])

	// inputs are left untouched
	assert.Nil(t, input[0].Info)
	assert.NotContains(t, input[1].Info, "GENE")

	assert.Equal(t, int32(1), atomic.LoadInt32(&fs.geneSearches))
}

func TestPopulateFamily(t *testing.T) {
	fs := &fakeStore{}
	vs := newTestService(t, fs)

	family := pedigree.Family{Individuals: []pedigree.Individual{
		{Id: "child", MotherId: "mother", Affected: true},
		{Id: "mother"},
	}}

	err := vs.PopulateFamily(context.Background(), &family, a.GRCh38, true, "GENE")
	require.NoError(t, err)

	require.Len(t, family.Individuals[0].Variants, 2)
	require.Len(t, family.Individuals[1].Variants, 1)
	assert.Equal(t, "GENE_A", family.Individuals[0].Variants[0].Info["GENE"])
	assert.Equal(t, "mother", family.Individuals[1].Variants[0].SampleId)
}
