package elasticsearch

import (
	"context"

	"pedigree/api/models"
	c "pedigree/api/models/constants"
	a "pedigree/api/models/constants/assembly-id"
	"pedigree/api/models/indexes"

	"github.com/elastic/go-elasticsearch/v7"
)

// GetVariantsBySampleId fetches every call indexed for one sample, ordered by
// position, reading `size` hits per request.
func GetVariantsBySampleId(ctx context.Context, cfg *models.Config, es *elasticsearch.Client,
	sampleId string, assemblyId c.AssemblyId, size int) ([]indexes.Variant, error) {

	mustMap := []map[string]interface{}{{
		"query_string": map[string]interface{}{
			"fields": []string{"sample.id.keyword"},
			"query":  sampleId,
		},
	}}

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
		// _id breaks ties so search_after never skips calls sharing a position
		"sort": []map[string]interface{}{
			{"chrom.keyword": map[string]string{"order": "asc"}},
			{"pos": map[string]string{"order": "asc"}},
			{"_id": map[string]string{"order": "asc"}},
		},
	}

	return searchSources[indexes.Variant](ctx, cfg, es, wildcardVariantsIndex, query, size)
}
