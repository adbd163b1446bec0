package inheritance

import (
	c "pedigree/api/models/constants"
	"pedigree/api/models/constants/sex"
)

// Relationship links one affected individual to the locus indices of its
// parents. Either parent may be nil when it is not part of the analysis.
type Relationship struct {
	IndividualId string
	Sex          c.Sex
	Mother       LocusIndex
	Father       LocusIndex
}

func NewRelationship(individualId string, s c.Sex, mother, father LocusIndex) Relationship {
	return Relationship{
		IndividualId: individualId,
		Sex:          s,
		Mother:       mother,
		Father:       father,
	}
}

func (r Relationship) IsMale() bool {
	return r.Sex == sex.Male
}

func (r Relationship) HasParents() bool {
	return r.Mother != nil || r.Father != nil
}
