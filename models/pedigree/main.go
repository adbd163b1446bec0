package pedigree

import (
	"pedigree/api/models"
	c "pedigree/api/models/constants"
)

// Individual is one family member as handed over by the pedigree editor:
// a sex flag, optional parent identifiers and the variants that survived
// upstream field filtering.
type Individual struct {
	Id       string
	Sex      c.Sex
	MotherId string
	FatherId string
	Affected bool
	Variants []models.Variant
}

type Family struct {
	Individuals []Individual
}

func (f Family) Affected() []Individual {
	return f.filter(true)
}

func (f Family) Unaffected() []Individual {
	return f.filter(false)
}

func (f Family) filter(affected bool) []Individual {
	members := make([]Individual, 0, len(f.Individuals))
	for _, ind := range f.Individuals {
		if ind.Affected == affected {
			members = append(members, ind)
		}
	}
	return members
}
