package authorization

import (
	"encoding/json"
	"fmt"

	authzc "pedigree/api/models/constants/authorization"
)

type Resource interface{}
type ResourceEverything struct {
	Everything bool `json:"everything"`
}

type Permission struct {
	Verb authzc.PermissionVerb
	Noun authzc.PermissionNoun
}

func (p Permission) String() string {
	return fmt.Sprintf("%s:%s", p.Verb, p.Noun)
}

type PermissionsList struct {
	List []Permission
}

// MarshalJSON flattens the list to the "verb:noun" strings expected by the policy service.
func (pl PermissionsList) MarshalJSON() ([]byte, error) {
	flat := make([]string, 0, len(pl.List))
	for _, p := range pl.List {
		flat = append(flat, p.String())
	}
	return json.Marshal(flat)
}
