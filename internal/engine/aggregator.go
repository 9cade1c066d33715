package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"ordersdash/internal/models"
)

// TopItemsLimit caps the ranked-bar chart.
const TopItemsLimit = 8

// Aggregate reduces the order collection into the dashboard summary in one
// pass. It never fails: malformed fields fall back to their defaults.
func Aggregate(orders []models.Order) *models.Summary {
	data := &models.Summary{
		TotalOrders:            len(orders),
		TopItems:               make([]models.TopItem, 0),
		OrdersByDeliveryPerson: make(map[string]int),
	}

	revenue := decimal.Zero
	itemIdx := make(map[string]int)
	var items []models.TopItem

	// 1. Single pass
	for _, o := range orders {
		switch Classify(string(o.Status)) {
		case BucketDelivered:
			data.Delivered++
		case BucketInTransit:
			data.InTransit++
		case BucketPending:
			data.Pending++
		}

		for _, it := range o.Items {
			revenue = revenue.Add(LineRevenue(it))

			name := ItemName(it)
			idx, ok := itemIdx[name]
			if !ok {
				idx = len(items)
				itemIdx[name] = idx
				items = append(items, models.TopItem{Name: name})
			}
			items[idx].Count += Quantity(it)
		}

		data.OrdersByDeliveryPerson[Courier(o)]++
	}

	// 2. Rank items. Stable, so ties stay in first-seen order.
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })
	if len(items) > TopItemsLimit {
		items = items[:TopItemsLimit]
	}
	data.TopItems = append(data.TopItems, items...)

	// 3. Totals + chart data
	data.Revenue = revenue.InexactFloat64()
	data.RevenueText = FormatMoney(revenue)
	data.StatusPie = []models.PieSlice{
		{Name: "Delivered", Value: data.Delivered},
		{Name: "In Transit", Value: data.InTransit},
		{Name: "Pending", Value: data.Pending},
	}

	return data
}
