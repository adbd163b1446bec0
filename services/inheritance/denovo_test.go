package inheritance

import (
	"testing"

	"pedigree/api/models"
	"pedigree/api/models/constants/sex"

	"github.com/stretchr/testify/assert"
)

func TestDeNovo(t *testing.T) {
	novel := variant("1", 1000, "A", "A", "G")
	inherited := variant("1", 2000, "A", "A", "G")
	homRef := variant("1", 3000, "A", "A", "A")

	candidates := []models.Variant{novel, inherited, homRef}
	mother := single(variant("1", 2000, "A", "A", "G"))
	father := BuildLocusIndex(nil)
	rel := NewRelationship("child", sex.Female, mother, father)

	t.Run("inconsistent with both parents", func(t *testing.T) {
		got := DeNovo(candidates, rel, []LocusIndex{mother, father})
		assert.Equal(t, []string{"1_1000"}, keys(got))
	})

	t.Run("seen in an unaffected individual", func(t *testing.T) {
		sibling := single(variant("1", 1000, "A", "A", "G"))
		assert.Empty(t, DeNovo(candidates, rel, []LocusIndex{mother, father, sibling}))
	})

	t.Run("hemizygous son is not de novo", func(t *testing.T) {
		xCall := variant("X", 500, "C", "T", "T")
		xMother := single(variant("X", 500, "C", "C", "T"))
		xFather := single(variant("X", 500, "C", "C", "C"))
		son := NewRelationship("son", sex.Male, xMother, xFather)

		assert.Empty(t, DeNovo([]models.Variant{xCall}, son, nil))
	})

	t.Run("no parents means nothing is de novo", func(t *testing.T) {
		orphan := NewRelationship("child", sex.Unknown, nil, nil)
		assert.Empty(t, DeNovo(candidates, orphan, nil))
	})
}
