package models

type Config struct {
	Debug          bool   `envconfig:"PEDIGREE_DEBUG"`
	SemVer         string `envconfig:"PEDIGREE_SERVICE_SEMVER" default:"0.1.0"`
	ServiceContact string `envconfig:"PEDIGREE_SERVICE_CONTACT" default:"mailto:info@c3g.ca"`

	Api struct {
		Port                             string `envconfig:"PEDIGREE_API_INTERNAL_PORT" default:"5000"`
		AnalysisConcurrencyLevel         int    `envconfig:"PEDIGREE_API_ANALYSIS_CONCURRENCY_LEVEL" default:"4"`
		DefaultGeneField                 string `envconfig:"PEDIGREE_API_DEFAULT_GENE_FIELD" default:"GENE"`
		DominantRequiresHetInAllAffected bool   `envconfig:"PEDIGREE_API_DOMINANT_HET_IN_ALL_AFFECTED"`
		VariantsFetchSize                int    `envconfig:"PEDIGREE_API_VARIANTS_FETCH_SIZE" default:"10000"`
	}
	Elasticsearch struct {
		Url      string `envconfig:"PEDIGREE_ES_URL"`
		Username string `envconfig:"PEDIGREE_ES_USERNAME"`
		Password string `envconfig:"PEDIGREE_ES_PASSWORD"`
	}
	Cache struct {
		TtlMinutes              int `envconfig:"PEDIGREE_CACHE_TTL_MINUTES" default:"30"`
		EvictionIntervalMinutes int `envconfig:"PEDIGREE_CACHE_EVICTION_INTERVAL_MINUTES" default:"5"`
	}
	AuthX struct {
		IsAuthorizationEnabled bool   `envconfig:"PEDIGREE_AUTHZ_ENABLED"`
		AuthorizationUrl       string `envconfig:"PEDIGREE_AUTHZ_URL"`
	}
}
