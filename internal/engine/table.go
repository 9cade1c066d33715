package engine

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"ordersdash/internal/models"
)

// Sort keys accepted by SortRows. A leading "-" means descending.
const (
	SortByID          = "id"
	SortByIDDesc      = "-id"
	SortByRevenue     = "revenue"
	SortByRevenueDesc = "-revenue"
)

// Rows projects orders into table rows, preserving order.
func Rows(orders []models.Order) []models.Row {
	rows := make([]models.Row, 0, len(orders))
	for _, o := range orders {
		rev := OrderRevenue(o)
		rows = append(rows, models.Row{
			ID:            string(o.ID),
			CustomerName:  string(o.CustomerName),
			CustomerPhone: string(o.CustomerPhone),
			Type:          string(o.Type),
			Status:        statusLabel(o),
			StatusBucket:  string(Classify(string(o.Status))),
			Courier:       Courier(o),
			ItemCount:     len(o.Items),
			Revenue:       rev.InexactFloat64(),
			RevenueText:   FormatMoney(rev),
		})
	}
	return rows
}

func statusLabel(o models.Order) string {
	if o.Status == "" {
		return Unassigned
	}
	return string(o.Status)
}

// SortRows orders rows in place by key. Unknown or empty keys leave the
// filter order untouched.
func SortRows(rows []models.Row, key string) {
	var less func(a, b models.Row) bool
	switch key {
	case SortByID:
		less = idLess
	case SortByIDDesc:
		less = func(a, b models.Row) bool { return idLess(b, a) }
	case SortByRevenue:
		less = func(a, b models.Row) bool { return a.Revenue < b.Revenue }
	case SortByRevenueDesc:
		less = func(a, b models.Row) bool { return a.Revenue > b.Revenue }
	default:
		return
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}

// idLess compares numerically when both ids are numbers.
func idLess(a, b models.Row) bool {
	x, errX := strconv.ParseFloat(a.ID, 64)
	y, errY := strconv.ParseFloat(b.ID, 64)
	if errX == nil && errY == nil {
		return x < y
	}
	return a.ID < b.ID
}

// Detail expands one order for the "view details" panel.
func Detail(o models.Order) *models.OrderDetail {
	total := decimal.Zero
	lines := make([]models.LineDetail, 0, len(o.Items))
	for _, it := range o.Items {
		rev := LineRevenue(it)
		total = total.Add(rev)
		lines = append(lines, models.LineDetail{
			Name:     ItemName(it),
			Quantity: Quantity(it),
			Revenue:  rev.InexactFloat64(),
			ImageURL: string(it.ImageURL),
		})
	}
	return &models.OrderDetail{
		Order:       o,
		Lines:       lines,
		Revenue:     total.InexactFloat64(),
		RevenueText: FormatMoney(total),
	}
}
