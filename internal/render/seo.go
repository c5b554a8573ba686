package render

import (
	"encoding/json"
	"html/template"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
)

const siteName = "Devanshi Culture Shop"

// Meta is the head metadata for one rendered page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	JSONLD      template.JS
}

// MetaFrom builds page metadata from a content SEO block, falling back to the
// given title/description when the block or a translation is absent.
func (r *Renderer) MetaFrom(seo *domain.SEO, fallbackTitle, fallbackDescription string, locale i18n.Locale, path string) Meta {
	meta := Meta{
		Title:       fallbackTitle,
		Description: fallbackDescription,
		Canonical:   r.baseURL + path,
	}

	if seo != nil {
		if t := seo.MetaTitle.In(locale); t != "" {
			meta.Title = t
		}
		if d := seo.MetaDescription.In(locale); d != "" {
			meta.Description = d
		}
	}

	if meta.Title == "" {
		meta.Title = siteName
	} else {
		meta.Title += " | " + siteName
	}

	return meta
}

// ProductJSONLD emits schema.org Product structured data for a product page.
func ProductJSONLD(p *domain.Product, locale i18n.Locale, pageURL string) template.JS {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        p.Name.In(locale),
		"sku":         p.ItemNumber,
		"url":         pageURL,
		"description": p.Description.In(locale),
	}

	if len(p.Images) > 0 {
		urls := make([]string, 0, len(p.Images))
		for _, img := range p.Images {
			if img.URL != "" {
				urls = append(urls, img.URL)
			}
		}
		if len(urls) > 0 {
			data["image"] = urls
		}
	}

	if p.Category != nil {
		data["category"] = p.Category.Name.In(locale)
	}

	if p.Price != nil {
		availability := "https://schema.org/OutOfStock"
		if p.IsAvailable {
			availability = "https://schema.org/InStock"
		}
		data["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         p.Price.StringFixed(2),
			"priceCurrency": "EUR",
			"availability":  availability,
			"url":           pageURL,
		}
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return template.JS(encoded)
}
