package view

import (
	"strconv"

	"github.com/wolfeidau/orgctl/internal/query"
)

// ClampPage keeps page within [1, totalPages]. A total below one is treated
// as a single page.
func ClampPage(page, totalPages int) int {
	totalPages = max(totalPages, 1)
	return min(max(page, 1), totalPages)
}

// PageItem is one pager entry: a page number or a gap.
type PageItem struct {
	Page     int
	Ellipsis bool
}

func (p PageItem) String() string {
	if p.Ellipsis {
		return "…"
	}
	return strconv.Itoa(p.Page)
}

// PageItems lists the pager entries for current: the first and last page
// plus siblings pages either side of current, with a gap wherever pages are
// skipped.
func PageItems(current, total, siblings int) []PageItem {
	if total <= 1 {
		return []PageItem{{Page: 1}}
	}
	siblings = max(siblings, 0)
	current = ClampPage(current, total)

	left := max(2, current-siblings)
	right := min(total-1, current+siblings)

	items := []PageItem{{Page: 1}}
	if left > 2 {
		items = append(items, PageItem{Ellipsis: true})
	}
	for p := left; p <= right; p++ {
		items = append(items, PageItem{Page: p})
	}
	if right < total-1 {
		items = append(items, PageItem{Ellipsis: true})
	}
	return append(items, PageItem{Page: total})
}

// ToggleSort advances a column from ascending to descending, then back to
// unsorted. Choosing a different column starts it ascending.
func ToggleSort(prev *query.Sort, field query.SortField) *query.Sort {
	switch {
	case prev == nil || prev.Field != field:
		return &query.Sort{Field: field}
	case !prev.Desc:
		return &query.Sort{Field: field, Desc: true}
	default:
		return nil
	}
}
