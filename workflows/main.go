package workflows

import (
	c "pedigree/api/models/constants"
	a "pedigree/api/models/constants/assembly-id"
	im "pedigree/api/models/constants/inheritance-mode"
)

type WorkflowSchema map[string]interface{}

var WORKFLOW_INHERITANCE_SCHEMA WorkflowSchema = map[string]interface{}{
	"ingestion": map[string]interface{}{},
	"analysis": map[string]interface{}{
		"inheritance_by_sample_id": map[string]interface{}{
			"name":        "Family Inheritance Pattern Analysis",
			"description": "This analysis workflow filters a family's ingested variants down to the loci consistent with a Mendelian inheritance mode.",
			"data_type":   "variant",
			"tags":        []string{"variant", "pedigree"},
			"type":        "analysis",
			"route":       "/inheritance/analyze/by/sampleId",
			"inputs": []map[string]interface{}{
				{
					"id":       "mode",
					"type":     "enum",
					"required": true,
					"values":   im.All(),
				},
				{
					"id":       "assembly_id",
					"type":     "enum",
					"required": true,
					"values":   []c.AssemblyId{a.GRCh38, a.GRCh37},
				},
				{
					"id":       "individuals",
					"type":     "pedigree",
					"required": true,
				},
				{
					"id":       "annotate_genes",
					"type":     "boolean",
					"required": false,
				},
				{
					"id":           "pedigree_url",
					"type":         "service-url",
					"required":     true,
					"injected":     true,
					"service_kind": "pedigree",
				},
			},
		},
	},
	"export": map[string]interface{}{},
}
