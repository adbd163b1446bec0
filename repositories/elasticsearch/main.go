package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"pedigree/api/models"

	"github.com/Jeffail/gabs"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/mitchellh/mapstructure"
)

const (
	wildcardVariantsIndex = "variants-*"
	genesIndex            = "genes"
)

// searchPage is one decoded page of hits along with the index's total hit
// count and the sort values of the last hit.
type searchPage[T any] struct {
	docs     []T
	total    int
	lastSort []interface{}
}

// searchSources pages through every hit of the query with `search_after`,
// `size` hits at a time, and decodes each `_source` into a fresh T. The
// query must carry a total `sort`. Reading fewer hits than the index reports
// is an error.
func searchSources[T any](ctx context.Context, cfg *models.Config, es *elasticsearch.Client, index string, query map[string]interface{}, size int) ([]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid page size %d", size)
	}
	query["size"] = size

	fmt.Printf("Query Start: %s\n", time.Now())

	results := make([]T, 0)
	total := 0
	for {
		page, err := searchOnce[T](ctx, cfg, es, index, query)
		if err != nil {
			return nil, err
		}
		results = append(results, page.docs...)
		total = page.total

		if len(results) >= total || len(page.docs) < size || len(page.lastSort) == 0 {
			break
		}
		query["search_after"] = page.lastSort
	}

	if len(results) < total {
		return nil, fmt.Errorf("search on %s read %d of %d hits", index, len(results), total)
	}

	fmt.Printf("Query End: %s (%d hits)\n", time.Now(), len(results))

	return results, nil
}

func searchOnce[T any](ctx context.Context, cfg *models.Config, es *elasticsearch.Client, index string, query map[string]interface{}) (*searchPage[T], error) {
	// encode the query
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	if cfg.Debug {
		// view the outbound elasticsearch query
		fmt.Println(buf.String())
	}

	res, searchErr := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
	)
	if searchErr != nil {
		fmt.Printf("Error getting response: %s\n", searchErr)
		return nil, searchErr
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search on %s failed : got '%s'", index, res.Status())
	}

	body, readErr := io.ReadAll(res.Body)
	if readErr != nil {
		return nil, readErr
	}
	if cfg.Debug {
		fmt.Println(string(body))
	}

	parsed, parseErr := gabs.ParseJSON(body)
	if parseErr != nil {
		fmt.Printf("Error parsing response: %s\n", parseErr)
		return nil, parseErr
	}

	page := &searchPage[T]{docs: make([]T, 0)}
	if !parsed.ExistsP("hits.hits") {
		return page, nil
	}

	hits, childErr := parsed.Path("hits.hits").Children()
	if childErr != nil {
		return nil, childErr
	}

	for _, hit := range hits {
		var doc T
		if decodeErr := mapstructure.Decode(hit.Path("_source").Data(), &doc); decodeErr != nil {
			return nil, fmt.Errorf("decoding hit %v: %w", hit.Path("_id").Data(), decodeErr)
		}
		page.docs = append(page.docs, doc)
	}

	if len(hits) > 0 {
		if sortValues, ok := hits[len(hits)-1].Path("sort").Data().([]interface{}); ok {
			page.lastSort = sortValues
		}
	}

	// without a reported total, trust what was returned
	page.total = len(page.docs)
	if totalValue, ok := parsed.Path("hits.total.value").Data().(float64); ok {
		page.total = int(totalValue)
	}

	return page, nil
}
