package view

import (
	"sort"

	"github.com/giftmart/giftadmin/internal/models"
)

// StatusFilterAll disables status filtering
const StatusFilterAll = "all"

// Params are the explicit inputs of the list view-model. The rendered page
// is a pure function of the order set and these parameters.
type Params struct {
	StatusFilter string
	Page         int
	PageSize     int
}

// Page is the slice of orders the list screen renders
type Page struct {
	Orders     []models.Order
	Page       int
	PageSize   int
	TotalPages int
	TotalCount int
}

// FilterByStatus keeps orders matching the filter, order preserved.
// The "all" filter returns the input unfiltered.
func FilterByStatus(orders []models.Order, filter string) []models.Order {
	if filter == StatusFilterAll || filter == "" {
		return orders
	}
	out := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if string(order.Status) == filter {
			out = append(out, order)
		}
	}
	return out
}

// SortByDateDesc returns a copy sorted newest first. The sort is stable and
// orders with a missing date sort as oldest.
func SortByDateDesc(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Paginate slices one page out of the order set. A page beyond the end of a
// shrunken set resets to the first page instead of rendering empty forever.
// It returns the slice and the effective page number.
func Paginate(orders []models.Order, page, pageSize int) ([]models.Order, int) {
	if pageSize <= 0 {
		return []models.Order{}, 0
	}
	if page < 0 || page*pageSize >= len(orders) {
		page = 0
	}
	start := page * pageSize
	if start >= len(orders) {
		return []models.Order{}, 0
	}
	end := start + pageSize
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end], page
}

// Build produces the rendered page: filter, sort newest first, paginate
func Build(orders []models.Order, p Params) Page {
	filtered := FilterByStatus(orders, p.StatusFilter)
	sorted := SortByDateDesc(filtered)
	items, page := Paginate(sorted, p.Page, p.PageSize)

	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (len(sorted) + p.PageSize - 1) / p.PageSize
	}

	return Page{
		Orders:     items,
		Page:       page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
		TotalCount: len(sorted),
	}
}
