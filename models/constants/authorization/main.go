package authorization

type PermissionVerb string
type PermissionNoun string

const (
	QUERY   PermissionVerb = "query"
	VIEW    PermissionVerb = "view"
	ANALYZE PermissionVerb = "analyze"
)

const (
	DATA PermissionNoun = "data"
)
