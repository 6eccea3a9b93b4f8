// Package paginate compiles the query parameters of an HTTP list endpoint
// into a validated, sorted, searched and filtered query plan, and wraps the
// executed page of results into an envelope with navigation links.
package paginate

import (
	"context"
	"reflect"
	"sort"

	sq "github.com/Masterminds/squirrel"
)

// Sort directions. Matching is exact, anything else is dropped.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// Order is one column of a multi-column sort. The first pair in a sort
// sequence is the primary sort key.
type Order struct {
	Column    string
	Direction string
}

// Query is the structured form of a list request's query parameters,
// extracted by the HTTP layer. All fields are optional except Path.
type Query struct {
	Page     int
	Limit    int
	SortBy   []Order
	Search   string
	SearchBy []string
	Filter   map[string][]string
	Path     string
}

// Plan is one executable list query: bracketed predicate groups composed
// with AND, an ordered sort-by list, and the page window.
type Plan struct {
	Where   []sq.Sqlizer
	OrderBy []Order
	Limit   uint64
	Offset  uint64
}

// Executor runs a plan against the underlying store. It scans the page of
// rows into dest (a pointer to a slice) and returns the total number of
// rows matching the plan's predicates regardless of the page window.
type Executor interface {
	Fetch(ctx context.Context, plan Plan, dest interface{}) (total int, err error)
}

// Paginate compiles q against cfg into a plan, executes it through exec and
// assembles the paginated envelope. Invalid or disallowed sort, search and
// filter input is dropped silently; the only error produced by the compiler
// itself is an invalid cfg.
func Paginate(ctx context.Context, exec Executor, cfg Config, q Query, dest interface{}) (Paginated, error) {
	if err := cfg.Validate(); err != nil {
		return Paginated{}, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := cfg.limit(q.Limit)
	sortBy := cfg.resolveSort(q.SortBy)
	searchBy := cfg.resolveSearch(q.SearchBy)

	plan := Plan{
		OrderBy: sortBy,
		Limit:   uint64(limit),
		Offset:  uint64((page - 1) * limit),
	}
	if len(cfg.Where) > 0 {
		plan.Where = append(plan.Where, sq.And(cfg.Where))
	}
	if q.Search != "" && len(searchBy) > 0 {
		search := sq.Or{}
		for _, column := range searchBy {
			search = append(search, sq.ILike{column: "%" + q.Search + "%"})
		}
		plan.Where = append(plan.Where, search)
	}
	if q.Filter != nil {
		// the group is appended even when nothing compiled; an empty
		// squirrel conjunction renders as a no-op
		group := sq.And{}
		predicates := compileFilters(q.Filter, cfg.FilterableColumns)
		for _, column := range sortedColumns(predicates) {
			group = append(group, predicates[column])
		}
		plan.Where = append(plan.Where, group)
	}

	total, err := exec.Fetch(ctx, plan, dest)
	if err != nil {
		return Paginated{}, err
	}

	res := buildEnvelope(q, page, limit, total, sortBy, searchBy)
	if dest != nil {
		if rv := reflect.ValueOf(dest); rv.Kind() == reflect.Ptr && !rv.IsNil() {
			res.Data = rv.Elem().Interface()
		}
	}
	return res, nil
}

func sortedColumns(predicates map[string]sq.Sqlizer) []string {
	columns := make([]string, 0, len(predicates))
	for column := range predicates {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
