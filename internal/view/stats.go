package view

import (
	"github.com/giftmart/giftadmin/internal/models"
	"github.com/shopspring/decimal"
)

// Stats summarizes the order set for the dashboard statistics screen
type Stats struct {
	Total        int
	ByStatus     map[models.Status]int
	Revenue      decimal.Decimal
	PremiumCount int
}

// Summarize counts orders per status and sums revenue over completed orders
func Summarize(orders []models.Order) Stats {
	stats := Stats{
		ByStatus: map[models.Status]int{
			models.StatusPending:   0,
			models.StatusPreparing: 0,
			models.StatusDone:      0,
			models.StatusRejected:  0,
		},
		Revenue: decimal.Zero,
	}

	for _, order := range orders {
		stats.Total++
		stats.ByStatus[order.Status]++
		if order.Status == models.StatusDone {
			stats.Revenue = stats.Revenue.Add(order.TotalPrice)
		}
		if order.IsPremium {
			stats.PremiumCount++
		}
	}
	return stats
}
