package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"pedigree/api/models"
	"pedigree/api/models/analysis"
	c "pedigree/api/models/constants"
	im "pedigree/api/models/constants/inheritance-mode"
	"pedigree/api/models/pedigree"
	"pedigree/api/services/inheritance"
	"pedigree/api/utils"

	linq "github.com/ahmetb/go-linq"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownInheritanceMode = errors.New("unknown inheritance mode")
	ErrNoAffectedIndividuals  = errors.New("family has no affected individuals")
	ErrAffectedParent         = errors.New("parent of an affected individual must be unaffected")
	ErrDuplicateIndividual    = errors.New("duplicate individual id")
)

type (
	AnalysisService struct {
		Config             *models.Config
		ConcurrencyLevel   int
		AnalysisRequestMap map[string]*analysis.AnalysisRequest

		defaults    AnalysisOptions
		requestsMux sync.RWMutex
	}

	AnalysisOptions struct {
		GeneField string
		Dominant  inheritance.DominantOptions
	}

	// family with every locus index built once and parents resolved
	preparedFamily struct {
		indices       map[string]inheritance.LocusIndex
		affected      []inheritance.LocusIndex
		unaffected    []inheritance.LocusIndex
		relationships []inheritance.Relationship
	}
)

func NewAnalysisService(cfg *models.Config) *AnalysisService {
	return &AnalysisService{
		Config:             cfg,
		ConcurrencyLevel:   cfg.Api.AnalysisConcurrencyLevel,
		AnalysisRequestMap: map[string]*analysis.AnalysisRequest{},
		defaults: AnalysisOptions{
			GeneField: cfg.Api.DefaultGeneField,
			Dominant: inheritance.DominantOptions{
				RequireHetInAllAffected: cfg.Api.DominantRequiresHetInAllAffected,
			},
		},
	}
}

// DefaultOptions returns the configured gene field and dominant options.
func (as *AnalysisService) DefaultOptions() AnalysisOptions {
	return as.defaults
}

// Analyze runs one inheritance mode over a family. Recessive, dominant and
// compound heterozygous use the first affected individual's calls as
// candidates; x-linked and de novo run once per affected individual and
// return the union.
func (as *AnalysisService) Analyze(ctx context.Context, family pedigree.Family, mode c.InheritanceMode, opts AnalysisOptions) ([]models.Variant, error) {
	requested := mode
	if mode = im.CastToInheritanceMode(string(mode)); mode == im.Unknown {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownInheritanceMode, requested)
	}
	if opts.GeneField == "" {
		opts.GeneField = as.defaults.GeneField
	}

	pf, err := as.prepareFamily(family)
	if err != nil {
		return nil, err
	}

	proband := pf.relationships[0]
	candidates := pf.indices[proband.IndividualId].Sorted()

	switch mode {
	case im.Recessive:
		return inheritance.Recessive(candidates, pf.affected, pf.unaffected), nil
	case im.Dominant:
		return inheritance.Dominant(candidates, pf.affected, pf.unaffected, proband.Mother, proband.Father, opts.Dominant), nil
	case im.CompoundHeterozygous:
		return inheritance.CompoundHeterozygous(candidates, pf.affected, pf.unaffected, proband.Mother, proband.Father, opts.GeneField), nil
	case im.XLinked:
		return as.perAffected(ctx, pf, func(rel inheritance.Relationship) []models.Variant {
			return inheritance.XLinked(pf.indices[rel.IndividualId].Sorted(), rel.Mother, rel.Father)
		})
	case im.DeNovo:
		return as.perAffected(ctx, pf, func(rel inheritance.Relationship) []models.Variant {
			return inheritance.DeNovo(pf.indices[rel.IndividualId].Sorted(), rel, pf.unaffected)
		})
	}

	return nil, fmt.Errorf("%w: '%s'", ErrUnknownInheritanceMode, mode)
}

func (as *AnalysisService) prepareFamily(family pedigree.Family) (*preparedFamily, error) {
	members := make(map[string]pedigree.Individual, len(family.Individuals))
	pf := &preparedFamily{
		indices: make(map[string]inheritance.LocusIndex, len(family.Individuals)),
	}

	for _, ind := range family.Individuals {
		if _, exists := members[ind.Id]; exists {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateIndividual, ind.Id)
		}
		members[ind.Id] = ind
		pf.indices[ind.Id] = inheritance.BuildLocusIndex(ind.Variants)
	}

	for _, ind := range family.Individuals {
		if ind.Affected {
			pf.affected = append(pf.affected, pf.indices[ind.Id])
		} else {
			pf.unaffected = append(pf.unaffected, pf.indices[ind.Id])
		}
	}
	if len(pf.affected) == 0 {
		return nil, ErrNoAffectedIndividuals
	}

	for _, ind := range family.Affected() {
		mother, err := as.resolveParent(members, pf.indices, ind.Id, ind.MotherId)
		if err != nil {
			return nil, err
		}
		father, err := as.resolveParent(members, pf.indices, ind.Id, ind.FatherId)
		if err != nil {
			return nil, err
		}
		pf.relationships = append(pf.relationships, inheritance.NewRelationship(ind.Id, ind.Sex, mother, father))
	}

	return pf, nil
}

// resolveParent maps a parent id onto that individual's index. An id that
// names nobody in the family reads as an absent parent.
func (as *AnalysisService) resolveParent(members map[string]pedigree.Individual, indices map[string]inheritance.LocusIndex, childId string, parentId string) (inheritance.LocusIndex, error) {
	if utils.IsMissingParentId(parentId) {
		return nil, nil
	}

	parent, ok := members[parentId]
	if !ok {
		fmt.Printf("[%s] - Parent '%s' of '%s' is not part of the family ; treating as absent..\n", time.Now(), parentId, childId)
		return nil, nil
	}
	if parent.Affected {
		return nil, fmt.Errorf("%w: '%s' of '%s'", ErrAffectedParent, parentId, childId)
	}

	return indices[parentId], nil
}

// perAffected runs detect once per affected individual and unions the calls,
// keeping the first call seen for each locus and genotype.
func (as *AnalysisService) perAffected(ctx context.Context, pf *preparedFamily, detect func(inheritance.Relationship) []models.Variant) ([]models.Variant, error) {
	results := make([][]models.Variant, len(pf.relationships))

	g, gctx := errgroup.WithContext(ctx)
	if as.ConcurrencyLevel > 0 {
		g.SetLimit(as.ConcurrencyLevel)
	}

	for i, rel := range pf.relationships {
		i, rel := i, rel
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = detect(rel)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var union []models.Variant
	linq.From(results).
		SelectManyT(func(calls []models.Variant) linq.Query {
			return linq.From(calls)
		}).
		DistinctByT(func(v models.Variant) string {
			return v.Key() + "/" + v.Genotype.String()
		}).
		ToSlice(&union)

	if union == nil {
		union = []models.Variant{}
	}
	inheritance.SortVariants(union)

	return union, nil
}

// Run tracks an analysis as a request while performing it.
func (as *AnalysisService) Run(ctx context.Context, family pedigree.Family, mode c.InheritanceMode, opts AnalysisOptions) (*analysis.AnalysisRequest, []models.Variant, error) {
	probandIds := make([]string, 0)
	for _, ind := range family.Affected() {
		probandIds = append(probandIds, ind.Id)
	}

	now := time.Now()
	req := &analysis.AnalysisRequest{
		Id:         uuid.New(),
		Mode:       mode,
		ProbandIds: probandIds,
		State:      analysis.Queued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	as.trackRequest(req)

	as.updateRequest(req.Id, analysis.Running, "", 0)

	results, err := as.Analyze(ctx, family, mode, opts)
	if err != nil {
		as.updateRequest(req.Id, analysis.Error, err.Error(), 0)
		return as.getRequest(req.Id), nil, err
	}

	as.updateRequest(req.Id, analysis.Done, "", len(results))
	return as.getRequest(req.Id), results, nil
}

// Fail records an analysis that could not start, e.g. when its variants
// could not be fetched.
func (as *AnalysisService) Fail(family pedigree.Family, mode c.InheritanceMode, cause error) *analysis.AnalysisRequest {
	probandIds := make([]string, 0)
	for _, ind := range family.Affected() {
		probandIds = append(probandIds, ind.Id)
	}

	now := time.Now()
	req := &analysis.AnalysisRequest{
		Id:         uuid.New(),
		Mode:       mode,
		ProbandIds: probandIds,
		State:      analysis.Error,
		Message:    cause.Error(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	as.trackRequest(req)
	return as.getRequest(req.Id)
}

func (as *AnalysisService) trackRequest(req *analysis.AnalysisRequest) {
	as.requestsMux.Lock()
	defer as.requestsMux.Unlock()

	as.AnalysisRequestMap[req.Id.String()] = req
}

func (as *AnalysisService) updateRequest(id uuid.UUID, state analysis.State, message string, count int) {
	as.requestsMux.Lock()
	defer as.requestsMux.Unlock()

	if req, ok := as.AnalysisRequestMap[id.String()]; ok {
		req.State = state
		req.Message = message
		req.ResultCount = count
		req.UpdatedAt = time.Now()
	}
}

func (as *AnalysisService) getRequest(id uuid.UUID) *analysis.AnalysisRequest {
	as.requestsMux.RLock()
	defer as.requestsMux.RUnlock()

	req, ok := as.AnalysisRequestMap[id.String()]
	if !ok {
		return nil
	}
	snapshot := *req
	return &snapshot
}

// GetAllRequests returns a snapshot of every tracked request, oldest first.
func (as *AnalysisService) GetAllRequests() []analysis.AnalysisRequest {
	as.requestsMux.RLock()
	defer as.requestsMux.RUnlock()

	requests := make([]analysis.AnalysisRequest, 0, len(as.AnalysisRequestMap))
	for _, req := range as.AnalysisRequestMap {
		requests = append(requests, *req)
	}
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.Before(requests[j].CreatedAt)
		}
		return requests[i].Id.String() < requests[j].Id.String()
	})
	return requests
}
