package engine

import (
	"errors"

	"github.com/labstack/gommon/log"

	"ordersdash/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// Store is the immutable snapshot of one loaded dataset.
type Store struct {
	Orders []models.Order

	// Fingerprint identifies the raw dataset bytes (xxh3).
	Fingerprint uint64

	// id -> first index in Orders
	byID map[string]int
}

func NewStore(orders []models.Order, fingerprint uint64) *Store {
	s := &Store{
		Orders:      orders,
		Fingerprint: fingerprint,
		byID:        make(map[string]int, len(orders)),
	}
	for i, o := range orders {
		id := string(o.ID)
		if id == "" {
			continue
		}
		if _, dup := s.byID[id]; dup {
			log.Warnf("duplicate Order_ID %q at row %d, keeping the first", id, i)
			continue
		}
		s.byID[id] = i
	}
	return s
}

func (s *Store) Len() int { return len(s.Orders) }

func (s *Store) Lookup(id string) (models.Order, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return s.Orders[i], nil
}

func (s *Store) Aggregate() *models.Summary { return Aggregate(s.Orders) }

func (s *Store) Options() *models.FilterOptions { return Options(s.Orders) }

func (s *Store) Filter(f models.FilterState) []models.Order { return Filter(s.Orders, f) }
