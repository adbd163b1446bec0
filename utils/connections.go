package utils

import (
	"fmt"
	"time"

	"pedigree/api/models"

	"github.com/cenkalti/backoff"
	es7 "github.com/elastic/go-elasticsearch/v7"
)

func CreateEsConnection(cfg *models.Config) (*es7.Client, error) {
	var (
		clusterURLs = []string{cfg.Elasticsearch.Url}
	)

	esCfg := es7.Config{
		Addresses: clusterURLs,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,

		RetryOnStatus: []int{502, 503, 504, 429},

		// Configure the backoff function
		RetryBackoff: RetryBackoff,

		// Retry up to 5 attempts
		MaxRetries: 5,
	}

	es7Client, err := es7.NewClient(esCfg)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Using ES7 Client Version %s\n", es7.Version)

	return es7Client, nil
}

// RetryBackoff returns the exponential delay before the given retry attempt
// (1-based). Each call walks its own backoff, so concurrent requests never
// share state.
func RetryBackoff(attempt int) time.Duration {
	b := backoff.NewExponentialBackOff()

	var delay time.Duration
	for i := 0; i < attempt; i++ {
		delay = b.NextBackOff()
	}
	return delay
}
