package main

import (
	"encoding/xml"
	"net/http"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/render"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func (app *application) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := app.content.Categories(ctx)
	if err != nil {
		app.logger.Errorw("failed to load categories for sitemap", "error", err)
		http.Error(w, "the server encountered a problem", http.StatusInternalServerError)
		return
	}

	products, err := app.content.Products(ctx)
	if err != nil {
		app.logger.Errorw("failed to load products for sitemap", "error", err)
		http.Error(w, "the server encountered a problem", http.StatusInternalServerError)
		return
	}

	base := app.config.baseURL
	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, locale := range i18n.Locales() {
		prefix := base + "/" + string(locale)

		set.URLs = append(set.URLs,
			sitemapURL{Loc: prefix, ChangeFreq: "weekly", Priority: "1.0"},
			sitemapURL{Loc: prefix + "/categories", ChangeFreq: "weekly", Priority: "0.8"},
			sitemapURL{Loc: prefix + "/about", ChangeFreq: "monthly", Priority: "0.5"},
			sitemapURL{Loc: prefix + "/contact", ChangeFreq: "monthly", Priority: "0.5"},
		)

		for _, category := range categories {
			if category.Slug.Current == "" {
				continue
			}
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        prefix + "/" + category.Slug.Current,
				ChangeFreq: "weekly",
				Priority:   "0.8",
			})
		}

		for _, product := range products {
			if product.Slug.Current == "" {
				continue
			}
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        prefix + render.ProductPath(product),
				ChangeFreq: "weekly",
				Priority:   "0.6",
			})
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	w.Write(body)
}

func (app *application) robotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: " + app.config.baseURL + "/sitemap.xml\n"))
}
