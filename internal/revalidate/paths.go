package revalidate

import (
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
)

// ComputePaths returns the set of page paths made stale by one content
// change, covering every supported locale. It is pure and total: an unknown
// document type yields an empty set.
func ComputePaths(ev domain.ContentChangeEvent) map[string]struct{} {
	paths := make(map[string]struct{})

	add := func(suffix string) {
		for _, l := range i18n.Locales() {
			if suffix == "" {
				paths["/"+string(l)] = struct{}{}
			} else {
				paths["/"+string(l)+suffix] = struct{}{}
			}
		}
	}

	switch ev.DocumentType {
	case domain.DocTypeProduct:
		if ev.Slug != "" {
			if ev.CategorySlug != "" {
				add("/" + ev.CategorySlug + "/" + ev.Slug)
			} else {
				add("/products/" + ev.Slug)
			}
			// home shows featured and new arrivals
			add("")
		}
		// the category listing displays this product
		if ev.CategorySlug != "" {
			add("/" + ev.CategorySlug)
		}
	case domain.DocTypeCategory:
		if ev.Slug != "" {
			add("/" + ev.Slug)
			// home renders the category showcase
			add("")
		}
	case domain.DocTypeHomePage:
		add("")
	case domain.DocTypeAboutPage:
		add("/about")
	case domain.DocTypeStoreSettings:
		// settings feed the footer, contact and about pages
		add("")
		add("/contact")
		add("/about")
	}

	return paths
}
