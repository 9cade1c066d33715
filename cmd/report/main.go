// Command report prints the dashboard summary and filter options of a
// dataset without starting the server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/labstack/gommon/log"

	"ordersdash/data"
	"ordersdash/internal/engine"
	"ordersdash/internal/models"
)

type report struct {
	Summary *models.Summary       `json:"summary"`
	Options *models.FilterOptions `json:"options"`
	Rows    []models.Row          `json:"rows,omitempty"`
}

func main() {
	file := flag.String("file", "", "orders JSON file (default: embedded dataset)")
	status := flag.String("status", engine.All, "status filter for -rows")
	typ := flag.String("type", engine.All, "type filter for -rows")
	search := flag.String("q", "", "search text for -rows")
	rows := flag.Bool("rows", false, "include the filtered table rows")
	flag.Parse()

	log.SetLevel(log.WARN)

	var store *engine.Store
	if *file == "" {
		store = engine.LoadBytes(data.Orders)
	} else {
		var err error
		if store, err = engine.LoadFile(*file); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	out := report{Summary: store.Aggregate(), Options: store.Options()}
	if *rows {
		out.Rows = engine.Rows(store.Filter(models.FilterState{Status: *status, Type: *typ, Search: *search}))
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}
