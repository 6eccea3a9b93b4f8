package paginate

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/goto/roster/core/validator"
)

// Page sizes applied when the endpoint config leaves them unset.
const (
	DefaultLimit    = 20
	DefaultMaxLimit = 100
)

// Config describes one list endpoint. It is supplied once at setup and
// treated as immutable afterwards.
type Config struct {
	// SortableColumns whitelists the columns a request may sort on. An
	// empty whitelist is a configuration error; no request can be served
	// with it.
	SortableColumns []string `json:"sortable_columns" validate:"required,min=1"`

	// SearchableColumns whitelists the columns matched by the search term.
	SearchableColumns []string `json:"searchable_columns"`

	// DefaultSortBy is applied when a request carries no valid sort pairs.
	// When empty, the first sortable column ascending is used.
	DefaultSortBy []Order `json:"default_sort_by"`

	DefaultLimit int `json:"default_limit" validate:"gte=0"`
	MaxLimit     int `json:"max_limit" validate:"gte=0"`

	// Where is static base criteria ANDed into every plan as one group.
	Where []sq.Sqlizer `json:"-"`

	// FilterableColumns maps each filterable column to the operators a
	// request may apply to it.
	FilterableColumns map[string][]Operator `json:"filterable_columns"`
}

// Validate checks the endpoint configuration. It is the only fatal error
// source of the compiler.
func (c Config) Validate() error {
	return validator.ValidateStruct(c)
}

func (c Config) limit(requested int) int {
	max := c.MaxLimit
	if max <= 0 {
		max = DefaultMaxLimit
	}
	limit := requested
	if limit <= 0 {
		limit = c.DefaultLimit
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > max {
		limit = max
	}
	return limit
}
