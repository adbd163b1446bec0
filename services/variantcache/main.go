package variantcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pedigree/api/models"
	c "pedigree/api/models/constants"

	"github.com/go-co-op/gocron"
)

type (
	VariantCache struct {
		Initialized bool
		Config      *models.Config

		ttl       time.Duration
		entries   map[string]entry
		mux       sync.RWMutex
		scheduler *gocron.Scheduler

		now func() time.Time
	}

	entry struct {
		variants []models.Variant
		storedAt time.Time
	}

	FetchFunc func(ctx context.Context) ([]models.Variant, error)
)

func NewVariantCache(cfg *models.Config) *VariantCache {
	vc := &VariantCache{
		Initialized: false,
		Config:      cfg,
		ttl:         time.Duration(cfg.Cache.TtlMinutes) * time.Minute,
		entries:     map[string]entry{},
		now:         time.Now,
	}

	vc.Init()

	return vc
}

// Init spins up the eviction job. A non-positive eviction interval leaves
// stale entries to be replaced lazily on lookup.
func (vc *VariantCache) Init() {
	if vc.Initialized {
		return
	}

	if vc.Config.Cache.EvictionIntervalMinutes > 0 {
		s := gocron.NewScheduler(time.UTC)

		_, err := s.Every(vc.Config.Cache.EvictionIntervalMinutes).Minutes().Do(func() {
			evicted := vc.EvictStale()
			if vc.Config.Debug {
				fmt.Printf("[%s] - Variant cache eviction : %d entries removed..\n", time.Now(), evicted)
			}
		})
		if err != nil {
			fmt.Printf("[%s] - Error scheduling variant cache eviction : %v..\n", time.Now(), err)
		} else {
			s.StartAsync()
			vc.scheduler = s
		}
	}

	vc.Initialized = true
	fmt.Println("Variant Cache Initialized ..")
}

func (vc *VariantCache) Stop() {
	if vc.scheduler != nil {
		vc.scheduler.Stop()
	}
}

func cacheKey(sampleId string, assemblyId c.AssemblyId) string {
	return fmt.Sprintf("%s@%s", sampleId, assemblyId)
}

func (vc *VariantCache) isFresh(e entry) bool {
	return vc.ttl <= 0 || vc.now().Sub(e.storedAt) < vc.ttl
}

// Get returns the cached calls of a sample. The slice is shared and must not
// be modified.
func (vc *VariantCache) Get(sampleId string, assemblyId c.AssemblyId) ([]models.Variant, bool) {
	vc.mux.RLock()
	defer vc.mux.RUnlock()

	e, ok := vc.entries[cacheKey(sampleId, assemblyId)]
	if !ok || !vc.isFresh(e) {
		return nil, false
	}
	return e.variants, true
}

func (vc *VariantCache) Put(sampleId string, assemblyId c.AssemblyId, variants []models.Variant) {
	vc.mux.Lock()
	defer vc.mux.Unlock()

	vc.entries[cacheKey(sampleId, assemblyId)] = entry{
		variants: variants,
		storedAt: vc.now(),
	}
}

// GetOrFetch serves a fresh entry or calls fetch and stores its result.
// Failed fetches are not cached.
func (vc *VariantCache) GetOrFetch(ctx context.Context, sampleId string, assemblyId c.AssemblyId, fetch FetchFunc) ([]models.Variant, error) {
	if variants, ok := vc.Get(sampleId, assemblyId); ok {
		return variants, nil
	}

	variants, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	vc.Put(sampleId, assemblyId, variants)
	return variants, nil
}

// EvictStale drops every expired entry and returns how many were removed.
func (vc *VariantCache) EvictStale() int {
	vc.mux.Lock()
	defer vc.mux.Unlock()

	evicted := 0
	for k, e := range vc.entries {
		if !vc.isFresh(e) {
			delete(vc.entries, k)
			evicted++
		}
	}
	return evicted
}

func (vc *VariantCache) Len() int {
	vc.mux.RLock()
	defer vc.mux.RUnlock()

	return len(vc.entries)
}
