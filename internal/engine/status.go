package engine

import "strings"

// Bucket is the dashboard status group an order is counted under.
type Bucket string

const (
	BucketNone      Bucket = ""
	BucketDelivered Bucket = "delivered"
	BucketInTransit Bucket = "in_transit"
	BucketPending   Bucket = "pending"
)

type statusRule struct {
	bucket   Bucket
	patterns []string
}

// statusRules are evaluated top to bottom and the first hit wins, so an
// order whose status mentions both "delivered" and "pending" is delivered.
var statusRules = []statusRule{
	{bucket: BucketDelivered, patterns: []string{"delivered"}},
	{bucket: BucketInTransit, patterns: []string{"in transit", "in-transit", "intransit"}},
	{bucket: BucketPending, patterns: []string{"pending"}},
}

// Classify maps a free-text status onto a bucket. Matching is a
// case-insensitive substring test; unmatched statuses return BucketNone.
func Classify(status string) Bucket {
	st := strings.ToLower(status)
	for _, rule := range statusRules {
		for _, p := range rule.patterns {
			if strings.Contains(st, p) {
				return rule.bucket
			}
		}
	}
	return BucketNone
}
