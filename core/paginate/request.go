package paginate

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Recognized query parameters. Filters are keyed "filter.<column>".
const (
	paramPage     = "page"
	paramLimit    = "limit"
	paramSortBy   = "sortBy"
	paramSearch   = "search"
	paramSearchBy = "searchBy"
	filterPrefix  = "filter."
)

// NewQueryFromRequest extracts the list query parameters of r.
func NewQueryFromRequest(r *http.Request) Query {
	return NewQueryFromValues(r.URL.Query(), r.URL.Path)
}

// NewQueryFromValues builds a Query from raw query parameters. Parsing is
// permissive: non-numeric page/limit values and malformed sort pairs are
// carried as zero values and dropped by the resolvers later. Filter values
// are kept whole; commas belong to the $in operator.
func NewQueryFromValues(values url.Values, path string) Query {
	q := Query{Path: path}

	if v := values.Get(paramPage); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			q.Page = page
		}
	}
	if v := values.Get(paramLimit); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			q.Limit = limit
		}
	}
	for _, pair := range values[paramSortBy] {
		column, direction, _ := strings.Cut(pair, ":")
		q.SortBy = append(q.SortBy, Order{Column: column, Direction: direction})
	}
	q.Search = values.Get(paramSearch)
	q.SearchBy = append(q.SearchBy, values[paramSearchBy]...)

	for key, vals := range values {
		if !strings.HasPrefix(key, filterPrefix) {
			continue
		}
		column := strings.TrimPrefix(key, filterPrefix)
		if column == "" {
			continue
		}
		if q.Filter == nil {
			q.Filter = make(map[string][]string)
		}
		q.Filter[column] = append(q.Filter[column], vals...)
	}
	return q
}
