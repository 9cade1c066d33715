package engine

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/gommon/log"
	"github.com/zeebo/xxh3"

	"ordersdash/internal/models"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Decode parses a dataset document. A document that is not a JSON array is
// an empty collection; array elements that are not objects become empty
// orders so they still count toward the total.
func Decode(content []byte) []models.Order {
	content = bytes.TrimSpace(bytes.TrimPrefix(content, utf8BOM))
	if len(content) == 0 || content[0] != '[' {
		log.Warnf("dataset is not a JSON array, treating it as empty")
		return []models.Order{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		log.Warnf("dataset could not be decoded, treating it as empty: %v", err)
		return []models.Order{}
	}

	orders := make([]models.Order, len(raw))
	for i, r := range raw {
		r = bytes.TrimSpace(r)
		if len(r) == 0 || r[0] != '{' {
			log.Debugf("row %d is not an object", i)
			continue
		}
		if err := json.Unmarshal(r, &orders[i]); err != nil {
			log.Warnf("row %d: %v", i, err)
			orders[i] = models.Order{}
		}
	}
	return orders
}

// LoadBytes decodes content into a Store.
func LoadBytes(content []byte) *Store {
	start := time.Now()
	orders := Decode(content)
	store := NewStore(orders, xxh3.Hash(content))
	log.Infof("Load Complete. Rows: %d. Time: %v", len(orders), time.Since(start))
	return store
}

// LoadFile reads the dataset at path. Only I/O failures are errors; a
// malformed document still loads as a (possibly empty) Store.
func LoadFile(path string) (*Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return LoadBytes(content), nil
}
