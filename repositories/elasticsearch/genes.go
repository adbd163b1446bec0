package elasticsearch

import (
	"context"

	"pedigree/api/models"
	c "pedigree/api/models/constants"
	a "pedigree/api/models/constants/assembly-id"
	"pedigree/api/models/indexes"

	"github.com/elastic/go-elasticsearch/v7"
)

// GetGenesOverlappingRange returns the genes on a chromosome whose span
// intersects [lowerBound, upperBound].
func GetGenesOverlappingRange(ctx context.Context, cfg *models.Config, es *elasticsearch.Client,
	chromosome string, lowerBound int, upperBound int, assemblyId c.AssemblyId, size int) ([]indexes.Gene, error) {

	mustMap := []map[string]interface{}{
		{
			"query_string": map[string]interface{}{
				"fields": []string{"chrom.keyword"},
				"query":  chromosome,
			},
		},
		{
			"range": map[string]interface{}{
				"start": map[string]interface{}{
					"lte": upperBound,
				},
			},
		},
		{
			"range": map[string]interface{}{
				"end": map[string]interface{}{
					"gte": lowerBound,
				},
			},
		},
	}

	if assemblyId != "" && assemblyId != a.Unknown {
		mustMap = append(mustMap, map[string]interface{}{
			"match": map[string]interface{}{
				"assemblyId": map[string]interface{}{
					"query": assemblyId,
				},
			},
		})
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{{
					"bool": map[string]interface{}{
						"must": mustMap,
					}},
				},
			},
		},
		"sort": []map[string]interface{}{
			{"start": map[string]string{"order": "asc"}},
			{"_id": map[string]string{"order": "asc"}},
		},
	}

	return searchSources[indexes.Gene](ctx, cfg, es, genesIndex, query, size)
}
