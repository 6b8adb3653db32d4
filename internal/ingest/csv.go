package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column alias registries: both datasets use slightly different headers for
// the same concepts, so each logical field maps to its known spellings.

var diningAliases = map[string][]string{
	"name":     {"name", "restaurant_name"},
	"rating":   {"rate", "rating", "ratings"},
	"cost":     {"approx_cost(for two people)", "cost", "approx_cost"},
	"votes":    {"votes"},
	"location": {"location"},
	"address":  {"address"},
	"cuisines": {"cuisines", "cuisine"},
	"city":     {"listed_in(city)", "city"},
}

var lodgingAliases = map[string][]string{
	"name":     {"name", "hotel_name"},
	"rating":   {"ratings", "rating", "rate"},
	"price":    {"price", "price_per_night"},
	"stars":    {"stars", "star", "category"},
	"location": {"location", "address"},
}

type row map[string]string

// readRows streams a headered CSV into loosely-typed rows. Ragged records are
// tolerated; short rows simply leave fields empty.
func readRows(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows []row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		m := make(row, len(header))
		for i, h := range header {
			if i < len(rec) {
				m[h] = rec[i]
			}
		}
		rows = append(rows, m)
	}
	return rows, nil
}

func readFile(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return readRows(f)
}

// field returns the first non-empty value among the aliases for key.
func (r row) field(aliases map[string][]string, key string) string {
	for _, col := range aliases[key] {
		if v := strings.TrimSpace(r[col]); v != "" {
			return v
		}
	}
	return ""
}
