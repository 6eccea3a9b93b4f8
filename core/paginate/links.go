package paginate

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Paginated is one finite page of results with its metadata and navigation
// links. It is built fresh per request and not mutated afterwards.
type Paginated struct {
	Data  interface{} `json:"data"`
	Meta  Meta        `json:"meta"`
	Links Links       `json:"links"`
}

type Meta struct {
	ItemsPerPage int                 `json:"itemsPerPage"`
	TotalItems   int                 `json:"totalItems"`
	CurrentPage  int                 `json:"currentPage"`
	TotalPages   int                 `json:"totalPages"`
	SortBy       []Order             `json:"sortBy,omitempty"`
	SearchBy     []string            `json:"searchBy,omitempty"`
	Search       string              `json:"search,omitempty"`
	Filter       map[string][]string `json:"filter,omitempty"`
}

// Links holds the navigation links, each a re-serialization of the request's
// canonical query string at a different page number.
type Links struct {
	First    string `json:"first,omitempty"`
	Previous string `json:"previous,omitempty"`
	Current  string `json:"current"`
	Next     string `json:"next,omitempty"`
	Last     string `json:"last,omitempty"`
}

// MarshalJSON renders an Order as a ["column", "direction"] pair.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{o.Column, o.Direction})
}

func (o *Order) UnmarshalJSON(b []byte) error {
	var pair [2]string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	o.Column, o.Direction = pair[0], pair[1]
	return nil
}

func buildEnvelope(q Query, page, limit, total int, sortBy []Order, searchBy []string) Paginated {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	meta := Meta{
		ItemsPerPage: limit,
		TotalItems:   total,
		CurrentPage:  page,
		TotalPages:   totalPages,
		SortBy:       sortBy,
		Filter:       q.Filter,
	}
	if q.Search != "" {
		meta.Search = q.Search
		meta.SearchBy = searchBy
	}

	// searchBy appears in links only when the caller supplied it explicitly
	var explicitSearchBy []string
	if len(q.SearchBy) > 0 {
		explicitSearchBy = searchBy
	}
	suffix := canonicalSuffix(limit, sortBy, q.Search, explicitSearchBy, q.Filter)
	link := func(p int) string {
		return q.Path + "?page=" + strconv.Itoa(p) + suffix
	}

	links := Links{Current: link(page)}
	if page != 1 {
		links.First = link(1)
	}
	if page-1 >= 1 {
		links.Previous = link(page - 1)
	}
	if page+1 <= totalPages {
		links.Next = link(page + 1)
	}
	if page != totalPages {
		links.Last = link(totalPages)
	}

	return Paginated{Meta: meta, Links: links}
}

// canonicalSuffix reproduces the request's query string after the page
// number, in fixed order. Filter values are re-serialized verbatim from the
// raw request map, so statements the compiler dropped still appear in links.
func canonicalSuffix(limit int, sortBy []Order, search string, searchBy []string, filter map[string][]string) string {
	var sb strings.Builder
	sb.WriteString("&limit=")
	sb.WriteString(strconv.Itoa(limit))
	for _, o := range sortBy {
		sb.WriteString("&sortBy=")
		sb.WriteString(o.Column)
		sb.WriteString(":")
		sb.WriteString(o.Direction)
	}
	if search != "" {
		sb.WriteString("&search=")
		sb.WriteString(search)
	}
	for _, column := range searchBy {
		sb.WriteString("&searchBy=")
		sb.WriteString(column)
	}

	columns := make([]string, 0, len(filter))
	for column := range filter {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	for _, column := range columns {
		for _, value := range filter[column] {
			sb.WriteString("&filter.")
			sb.WriteString(column)
			sb.WriteString("=")
			sb.WriteString(value)
		}
	}
	return sb.String()
}
