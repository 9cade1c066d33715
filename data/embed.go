// Package data bundles the default orders dataset so the server starts
// without an ORDERS_FILE.
package data

import _ "embed"

//go:embed orders.json
var Orders []byte
