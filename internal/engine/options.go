package engine

import "ordersdash/internal/models"

// Options lists the selectable status and type values present in the data,
// each headed by All.
func Options(orders []models.Order) *models.FilterOptions {
	statuses := newOptionSet()
	types := newOptionSet()
	for _, o := range orders {
		statuses.add(string(o.Status))
		types.add(string(o.Type))
	}
	return &models.FilterOptions{Statuses: statuses.values, Types: types.values}
}

type optionSet struct {
	seen   map[string]struct{}
	values []string
}

func newOptionSet() *optionSet {
	return &optionSet{
		seen:   map[string]struct{}{All: {}},
		values: []string{All},
	}
}

func (s *optionSet) add(v string) {
	if v == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}
