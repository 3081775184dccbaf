package repository

// Comparison operators understood by the query builder.
const (
	OpEq   = "="
	OpLike = "LIKE"
	OpLt   = "<"
	OpLte  = "<="
	OpGt   = ">"
	OpGte  = ">="
)

// GetOnePhoneOptions holds filter parameters for fetching a single Phone.
type GetOnePhoneOptions struct {
	// NameContains is matched case-insensitively as a substring of the name.
	NameContains string
}

// Filter is a single column condition.
type Filter struct {
	Column string
	Op     string
	Value  any
}

// ListPhonesOptions holds filter and ordering parameters for listing Phones.
// Filters are AND-ed. Features and UseCases are each matched by containment;
// when both are set the two containment checks are OR-ed.
type ListPhonesOptions struct {
	Filters  []Filter
	Features []string
	UseCases []string
	Limit    int
}
