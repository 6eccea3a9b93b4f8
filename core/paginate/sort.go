package paginate

// resolveSort intersects the requested sort pairs with the sortable-columns
// whitelist, preserving request order. When nothing survives, the configured
// default applies, then the first sortable column ascending.
func (c Config) resolveSort(requested []Order) []Order {
	orders := make([]Order, 0, len(requested))
	for _, o := range requested {
		if !containsString(c.SortableColumns, o.Column) {
			continue
		}
		if o.Direction != ASC && o.Direction != DESC {
			continue
		}
		orders = append(orders, o)
	}
	if len(orders) > 0 {
		return orders
	}
	if len(c.DefaultSortBy) > 0 {
		return c.DefaultSortBy
	}
	return []Order{{Column: c.SortableColumns[0], Direction: ASC}}
}

// resolveSearch intersects explicitly requested search columns with the
// searchable whitelist. Without an explicit request the full searchable set
// applies.
func (c Config) resolveSearch(requested []string) []string {
	if len(c.SearchableColumns) == 0 {
		return nil
	}
	if len(requested) == 0 {
		return c.SearchableColumns
	}
	columns := make([]string, 0, len(requested))
	for _, column := range requested {
		if containsString(c.SearchableColumns, column) {
			columns = append(columns, column)
		}
	}
	return columns
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
