package engine

import (
	"strings"

	"ordersdash/internal/models"
)

// All is the filter sentinel that disables a status or type criterion.
const All = "All"

type matcher struct {
	status string
	typ    string
	query  string
}

func newMatcher(f models.FilterState) matcher {
	return matcher{status: f.Status, typ: f.Type, query: strings.ToLower(f.Search)}
}

func (m matcher) match(o models.Order) bool {
	if m.status != All && string(o.Status) != m.status {
		return false
	}
	if m.typ != All && string(o.Type) != m.typ {
		return false
	}
	if m.query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(string(o.ID)), m.query) ||
		strings.Contains(strings.ToLower(string(o.CustomerName)), m.query) ||
		strings.Contains(strings.ToLower(string(o.CustomerPhone)), m.query)
}

// Match reports whether a single order passes all three criteria.
func Match(o models.Order, f models.FilterState) bool {
	return newMatcher(f).match(o)
}

// Filter keeps the orders passing all criteria, in input order.
func Filter(orders []models.Order, f models.FilterState) []models.Order {
	m := newMatcher(f)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if m.match(o) {
			out = append(out, o)
		}
	}
	return out
}
