package view

import (
	"fmt"
	"testing"
	"time"

	"github.com/giftmart/giftadmin/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestFilterByStatus(t *testing.T) {
	orders := []models.Order{
		{ID: "1", Status: models.StatusPending},
		{ID: "2", Status: models.StatusPending},
		{ID: "3", Status: models.StatusDone},
		{ID: "4", Status: models.StatusRejected},
		{ID: "5", Status: models.StatusPreparing},
	}

	got := FilterByStatus(orders, "pending")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)

	assert.Len(t, FilterByStatus(orders, StatusFilterAll), 5)
	assert.Len(t, FilterByStatus(orders, ""), 5)
	assert.Empty(t, FilterByStatus(orders[2:3], "pending"))
}

func TestSortByDateDesc(t *testing.T) {
	orders := []models.Order{
		{ID: "old", Date: day(1)},
		{ID: "missing", Date: time.Time{}},
		{ID: "new", Date: day(5)},
		{ID: "mid", Date: day(3)},
	}

	got := SortByDateDesc(orders)
	ids := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	assert.Equal(t, []string{"new", "mid", "old", "missing"}, ids)

	// input untouched
	assert.Equal(t, "old", orders[0].ID)
}

func TestSortByDateDescStable(t *testing.T) {
	same := day(2)
	orders := []models.Order{
		{ID: "a", Date: same},
		{ID: "b", Date: same},
		{ID: "c", Date: same},
	}
	got := SortByDateDesc(orders)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestPaginate(t *testing.T) {
	orders := make([]models.Order, 25)
	for i := range orders {
		orders[i] = models.Order{ID: fmt.Sprintf("%d", i+1)}
	}

	tests := []struct {
		name      string
		page      int
		pageSize  int
		wantLen   int
		wantPage  int
		wantFirst string
	}{
		{name: "first_page", page: 0, pageSize: 10, wantLen: 10, wantPage: 0, wantFirst: "1"},
		{name: "last_partial_page", page: 2, pageSize: 10, wantLen: 5, wantPage: 2, wantFirst: "21"},
		{name: "page_past_end_resets_to_first", page: 7, pageSize: 10, wantLen: 10, wantPage: 0, wantFirst: "1"},
		{name: "negative_page_resets_to_first", page: -1, pageSize: 10, wantLen: 10, wantPage: 0, wantFirst: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, page := Paginate(orders, tt.page, tt.pageSize)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantFirst, got[0].ID)
		})
	}

	empty, page := Paginate(nil, 0, 10)
	assert.Empty(t, empty)
	assert.Equal(t, 0, page)

	empty, _ = Paginate(orders, 0, 0)
	assert.Empty(t, empty)
}

func TestBuild(t *testing.T) {
	orders := []models.Order{
		{ID: "1", Status: models.StatusPending, Date: day(1)},
		{ID: "2", Status: models.StatusPreparing, Date: day(4)},
		{ID: "3", Status: models.StatusPending, Date: day(3)},
		{ID: "4", Status: models.StatusDone, Date: day(2)},
	}

	page := Build(orders, Params{StatusFilter: "pending", Page: 0, PageSize: 10})
	require.Len(t, page.Orders, 2)
	// newest pending first
	assert.Equal(t, "3", page.Orders[0].ID)
	assert.Equal(t, "1", page.Orders[1].ID)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 2, page.TotalCount)

	// an order that left the filtered status disappears from that view
	orders[1].Status = models.StatusDone
	page = Build(orders, Params{StatusFilter: "preparing", Page: 0, PageSize: 10})
	assert.Empty(t, page.Orders)
	assert.Equal(t, 0, page.TotalCount)
}

func TestSummarize(t *testing.T) {
	price := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		require.NoError(t, err)
		return d
	}

	orders := []models.Order{
		{ID: "1", Status: models.StatusDone, TotalPrice: price("10.50"), IsPremium: true},
		{ID: "2", Status: models.StatusDone, TotalPrice: price("4.25")},
		{ID: "3", Status: models.StatusPending, TotalPrice: price("99.99")},
		{ID: "4", Status: models.StatusRejected, TotalPrice: price("1.00")},
	}

	stats := Summarize(orders)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[models.StatusDone])
	assert.Equal(t, 1, stats.ByStatus[models.StatusPending])
	assert.Equal(t, 0, stats.ByStatus[models.StatusPreparing])
	assert.Equal(t, 1, stats.ByStatus[models.StatusRejected])
	assert.Equal(t, 1, stats.PremiumCount)
	// rejected and pending orders do not count toward revenue
	assert.True(t, stats.Revenue.Equal(price("14.75")))
}
