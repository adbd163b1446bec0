package variantsService

import (
	"context"
	"fmt"
	"time"

	"pedigree/api/models"
	c "pedigree/api/models/constants"
	"pedigree/api/models/indexes"
	"pedigree/api/models/pedigree"
	esRepo "pedigree/api/repositories/elasticsearch"
	"pedigree/api/services/variantcache"

	"github.com/elastic/go-elasticsearch/v7"
	"golang.org/x/sync/errgroup"
)

type (
	VariantService struct {
		Config    *models.Config
		Es7Client *elasticsearch.Client
		Cache     *variantcache.VariantCache
	}
)

func NewVariantService(es *elasticsearch.Client, cfg *models.Config, cache *variantcache.VariantCache) *VariantService {
	vs := &VariantService{
		Config:    cfg,
		Es7Client: es,
		Cache:     cache,
	}

	return vs
}

// ToVariant converts one stored sample call into the analysis model. Only
// the first reference allele is kept; the info list becomes the annotation map.
func ToVariant(doc indexes.Variant) models.Variant {
	ref := ""
	if len(doc.Ref) > 0 {
		ref = doc.Ref[0]
	}

	alts := make([]models.Allele, 0, len(doc.Alt))
	for _, alt := range doc.Alt {
		alts = append(alts, models.Allele(alt))
	}

	info := make(map[string]string, len(doc.Info))
	for _, i := range doc.Info {
		if i.Id == "" {
			continue
		}
		info[i.Id] = i.Value
	}

	alleles := doc.Sample.Variation.Alleles
	return models.Variant{
		Chrom:    doc.Chrom,
		Pos:      doc.Pos,
		Id:       doc.Id,
		Ref:      models.Allele(ref),
		Alt:      alts,
		Genotype: models.NewGenotype(models.Allele(alleles.Left), models.Allele(alleles.Right), models.Allele(ref)),
		Info:     info,
		SampleId: doc.Sample.Id,
	}
}

// GetVariantsBySampleId serves a sample's calls from the cache, fetching them
// from Elasticsearch on a miss.
func (vs *VariantService) GetVariantsBySampleId(ctx context.Context, sampleId string, assemblyId c.AssemblyId) ([]models.Variant, error) {
	fetch := func(ctx context.Context) ([]models.Variant, error) {
		docs, err := esRepo.GetVariantsBySampleId(ctx, vs.Config, vs.Es7Client, sampleId, assemblyId, vs.Config.Api.VariantsFetchSize)
		if err != nil {
			return nil, err
		}

		variants := make([]models.Variant, 0, len(docs))
		for _, doc := range docs {
			v := ToVariant(doc)
			// documents are per sample, but the id is authoritative from the query
			v.SampleId = sampleId
			variants = append(variants, v)
		}
		return variants, nil
	}

	if vs.Cache == nil {
		return fetch(ctx)
	}
	return vs.Cache.GetOrFetch(ctx, sampleId, assemblyId, fetch)
}

// AnnotateGenes returns copies of the variants where every call lacking a
// value for geneField is annotated with the first indexed gene overlapping
// its position. One genes query is issued per chromosome.
func (vs *VariantService) AnnotateGenes(ctx context.Context, variants []models.Variant, assemblyId c.AssemblyId, geneField string) ([]models.Variant, error) {
	type span struct{ lower, upper int }

	spans := map[string]*span{}
	for _, v := range variants {
		if hasGene(v, geneField) {
			continue
		}
		s, ok := spans[v.Chrom]
		if !ok {
			spans[v.Chrom] = &span{lower: v.Pos, upper: v.Pos}
			continue
		}
		if v.Pos < s.lower {
			s.lower = v.Pos
		}
		if v.Pos > s.upper {
			s.upper = v.Pos
		}
	}

	genesByChrom := make(map[string][]indexes.Gene, len(spans))
	for chrom, s := range spans {
		genes, err := esRepo.GetGenesOverlappingRange(ctx, vs.Config, vs.Es7Client, chrom, s.lower, s.upper, assemblyId, vs.Config.Api.VariantsFetchSize)
		if err != nil {
			return nil, fmt.Errorf("fetching genes on chromosome %s: %w", chrom, err)
		}
		genesByChrom[chrom] = genes
	}

	annotated := make([]models.Variant, 0, len(variants))
	for _, v := range variants {
		if !hasGene(v, geneField) {
			for _, g := range genesByChrom[v.Chrom] {
				if g.Overlaps(v.Pos) {
					info := make(map[string]string, len(v.Info)+1)
					for k, val := range v.Info {
						info[k] = val
					}
					info[geneField] = g.Name
					v.Info = info
					break
				}
			}
		}
		annotated = append(annotated, v)
	}
	return annotated, nil
}

func hasGene(v models.Variant, geneField string) bool {
	value, ok := v.Annotation(geneField)
	return ok && value != ""
}

// PopulateFamily fills every individual's variants from the store, one
// concurrent fetch per individual. Individual ids are used as sample ids.
func (vs *VariantService) PopulateFamily(ctx context.Context, family *pedigree.Family, assemblyId c.AssemblyId, annotate bool, geneField string) error {
	g, gctx := errgroup.WithContext(ctx)
	if vs.Config.Api.AnalysisConcurrencyLevel > 0 {
		g.SetLimit(vs.Config.Api.AnalysisConcurrencyLevel)
	}

	for i := range family.Individuals {
		ind := &family.Individuals[i]
		g.Go(func() error {
			variants, err := vs.GetVariantsBySampleId(gctx, ind.Id, assemblyId)
			if err != nil {
				return fmt.Errorf("fetching variants of %s: %w", ind.Id, err)
			}

			if annotate && geneField != "" {
				variants, err = vs.AnnotateGenes(gctx, variants, assemblyId, geneField)
				if err != nil {
					return err
				}
			}

			ind.Variants = variants
			if vs.Config.Debug {
				fmt.Printf("[%s] - Fetched %d variants for %s..\n", time.Now(), len(variants), ind.Id)
			}
			return nil
		})
	}

	return g.Wait()
}
