// Package render turns content documents into full HTML pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type Renderer struct {
	tmpl    *template.Template
	baseURL string
}

func New(baseURL string) (*Renderer, error) {
	funcs := template.FuncMap{
		"tr": func(t domain.LocalizedText, l i18n.Locale) string {
			return t.In(l)
		},
		"ui": func(l i18n.Locale, key string) string {
			return i18n.T(l, key)
		},
		"price":   formatPrice,
		"waLink":  whatsAppLink,
		"altPath": altPath,
		"pathFor": pathFor,
		"productPath": func(p domain.Product) string {
			return ProductPath(p)
		},
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (r *Renderer) BaseURL() string {
	return r.baseURL
}

// Page renders a named page template into a fresh buffer, so a template error
// never writes a half-finished body to the client.
func (r *Renderer) Page(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// formatPrice renders a price with the locale's number conventions; a missing
// price renders the price-on-request label.
func formatPrice(p *decimal.Decimal, l i18n.Locale) string {
	if p == nil {
		return i18n.T(l, "product.onRequest")
	}
	printer := message.NewPrinter(l.Tag())
	f, _ := p.Float64()
	return printer.Sprintf("€ %.2f", f)
}

// whatsAppLink builds a wa.me enquiry link carrying the product name and item
// number. Buying intent funnels to WhatsApp; there is no checkout.
func whatsAppLink(phone string, product domain.Product, l i18n.Locale) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}

	var text string
	if l == i18n.LocaleNL {
		text = fmt.Sprintf("Hallo, ik heb interesse in %s (artikelnummer %s).", product.Name.In(l), product.ItemNumber)
	} else {
		text = fmt.Sprintf("Hello, I am interested in %s (item number %s).", product.Name.In(l), product.ItemNumber)
	}

	return "https://wa.me/" + digits + "?text=" + template.URLQueryEscaper(text)
}

// ProductPath is the locale-relative route of a product page: nested under
// its category when one is assigned, under /products otherwise.
func ProductPath(p domain.Product) string {
	if p.Category != nil && p.Category.Slug.Current != "" {
		return "/" + p.Category.Slug.Current + "/" + p.Slug.Current
	}
	return "/products/" + p.Slug.Current
}

// pathFor prefixes a locale-relative path with its locale segment.
func pathFor(l i18n.Locale, suffix string) string {
	if suffix == "" || suffix == "/" {
		return "/" + string(l)
	}
	return "/" + string(l) + suffix
}

// altPath rewrites a localized path into the other locale, for the language
// switcher and hreflang links.
func altPath(path string) string {
	locale, rest, ok := i18n.SplitPath(path)
	if !ok {
		return path
	}
	other := i18n.LocaleNL
	if locale == i18n.LocaleNL {
		other = i18n.LocaleEN
	}
	return pathFor(other, strings.TrimSuffix(rest, "/"))
}
