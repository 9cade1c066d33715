package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// The dataset is hand-maintained, so the field types below never reject a
// value: anything of the wrong shape decodes to the zero value instead.

// Text is a string field that also accepts numbers ("Order_ID": 7 -> "7").
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*t = ""
			return nil
		}
		*t = Text(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*t = Text(data)
			return nil
		}
		*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
	default:
		*t = ""
	}
	return nil
}

func (t Text) String() string { return string(t) }

// Number is a numeric field that may arrive as a JSON number or as a numeric
// string. Valid is false when the value was absent or not a finite number.
type Number struct {
	Value float64
	Valid bool
}

// Num builds a valid Number.
func Num(v float64) Number { return Number{Value: v, Valid: true} }

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	var raw string
	switch data[0] {
	case '"':
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			// An empty string still reads as zero.
			*n = Num(0)
			return nil
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		raw = string(data)
	default:
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Num(f)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// Float returns the value and whether it is usable.
func (n Number) Float() (float64, bool) { return n.Value, n.Valid }

// ItemList decodes to nil unless the payload is a JSON array. Elements that
// are not objects become empty items.
type ItemList []Item

func (l *ItemList) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	items := make(ItemList, len(raw))
	for i, r := range raw {
		r = bytes.TrimSpace(r)
		if len(r) == 0 || r[0] != '{' {
			continue
		}
		if err := json.Unmarshal(r, &items[i]); err != nil {
			items[i] = Item{}
		}
	}
	*l = items
	return nil
}
