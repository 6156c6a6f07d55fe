package catalog

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Catalog maps product names to unit prices. It is loaded once at startup
// and treated as immutable; a reload replaces the whole value.
type Catalog map[string]decimal.Decimal

// Load reads the product list from path. A missing file is not fatal: the
// caller gets an empty catalog together with the error so it can warn and
// keep going.
func Load(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, err
	}
	defer f.Close()
	return Parse(f), nil
}

// Parse reads a line-oriented product list:
//
//	---- Beers ----
//	"Porrón Córdoba": 2350.0,
//	"Lata Brahma 473ml": 1450,
//
// Blank lines and category markers (delimited by '-' on both ends) are
// skipped. A data line is `"Name": price` with an optional trailing comma;
// lines whose price does not parse are dropped on purpose, a malformed
// catalog must never break startup. Duplicate names keep the last value.
func Parse(r io.Reader) Catalog {
	products := Catalog{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") && strings.HasSuffix(line, "-") {
			continue
		}

		start := strings.Index(line, `"`)
		if start < 0 {
			continue
		}
		end := strings.Index(line[start+1:], `"`)
		if end < 0 {
			continue
		}
		name := line[start+1 : start+1+end]

		rest := line[start+2+end:]
		if !strings.HasPrefix(rest, ":") {
			continue
		}
		raw := strings.TrimSpace(strings.TrimPrefix(rest, ":"))
		raw = strings.TrimSpace(strings.TrimSuffix(raw, ","))

		price, err := decimal.NewFromString(raw)
		if err != nil || price.IsNegative() {
			continue
		}
		products[name] = price
	}
	return products
}

// Price resolves a product's unit price.
func (c Catalog) Price(name string) (decimal.Decimal, bool) {
	p, ok := c[name]
	return p, ok
}

// Names returns all product names sorted for display.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
