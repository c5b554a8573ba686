// Package catalog derives filtered, ordered views over an immutable product
// snapshot. All operations are pure: inputs are never mutated and output
// slices are freshly allocated.
package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNameAsc   SortKey = "name-asc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// ParseSortKey maps a raw query value onto a supported sort key, falling back
// to the catalog default.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortNameAsc, SortPriceAsc, SortPriceDesc:
		return SortKey(s)
	}
	return SortFeatured
}

// Filter retains entries whose localized name or description contains the
// trimmed, lower-cased query. An empty query keeps every entry. Input order
// is preserved.
func Filter(entries []domain.Product, query string, locale i18n.Locale) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]domain.Product, len(entries))
		copy(out, entries)
		return out
	}

	out := make([]domain.Product, 0, len(entries))
	for _, e := range entries {
		name := strings.ToLower(e.Name.In(locale))
		desc := strings.ToLower(e.Description.In(locale))
		if strings.Contains(name, query) || strings.Contains(desc, query) {
			out = append(out, e)
		}
	}
	return out
}

// Sort returns a new slice ordered by the given key. Every order is stable:
// entries with equal keys keep their relative input order, so re-rendering an
// unchanged snapshot never reshuffles the grid.
func Sort(entries []domain.Product, key SortKey, locale i18n.Locale) []domain.Product {
	out := make([]domain.Product, len(entries))
	copy(out, entries)

	switch key {
	case SortNameAsc:
		coll := collate.New(locale.Tag())
		sort.SliceStable(out, func(i, j int) bool {
			return coll.CompareString(out[i].Name.In(locale), out[j].Name.In(locale)) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceOf(out[i]).Cmp(priceOf(out[j])) < 0
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceOf(out[i]).Cmp(priceOf(out[j])) > 0
		})
	default:
		// catalog order: ascending by item number
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ItemNumber < out[j].ItemNumber
		})
	}

	return out
}

// View composes the pipeline: filter first, then sort.
func View(entries []domain.Product, query string, locale i18n.Locale, key SortKey) []domain.Product {
	return Sort(Filter(entries, query, locale), key, locale)
}

// priceOf treats a missing price as zero, so price-on-request entries sort to
// the front ascending and the back descending.
func priceOf(p domain.Product) decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return *p.Price
}
