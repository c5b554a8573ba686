package render

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := New("http://example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func testProduct() domain.Product {
	price := decimal.NewFromInt(45)
	return domain.Product{
		ID:         "prod-1",
		ItemNumber: "A100",
		Name:       domain.LocalizedText{EN: "Silver Ring", NL: "Zilveren Ring"},
		Slug:       domain.Slug{Current: "silver-ring"},
		Category: &domain.CategoryRef{
			Name: domain.LocalizedText{EN: "Jewelry", NL: "Sieraden"},
			Slug: domain.Slug{Current: "jewelry"},
		},
		Price:       &price,
		IsAvailable: true,
	}
}

func TestPageRendersHome(t *testing.T) {
	r := newTestRenderer(t)

	page := Page{
		Locale:  i18n.LocaleEN,
		Path:    "/en",
		SortKey: "featured",
	}
	page.Meta = r.MetaFrom(nil, "Home", "", i18n.LocaleEN, "/en")

	data := HomeData{
		Page: page,
		Home: &domain.HomePage{
			WelcomeHeading: domain.LocalizedText{EN: "Welcome", NL: "Welkom"},
		},
		Categories: []domain.Category{
			{
				Name: domain.LocalizedText{EN: "Jewelry", NL: "Sieraden"},
				Slug: domain.Slug{Current: "jewelry"},
			},
		},
	}

	body, err := r.Page("home", data)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	html := string(body)
	for _, want := range []string{"Welcome", `href="/en/jewelry"`, "Home | Devanshi Culture Shop", `lang="en"`} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered home missing %q", want)
		}
	}
}

func TestPageRendersProductWithWhatsAppLink(t *testing.T) {
	r := newTestRenderer(t)

	product := testProduct()
	page := Page{
		Locale:   i18n.LocaleNL,
		Path:     "/nl/jewelry/silver-ring",
		SortKey:  "featured",
		Settings: &domain.StoreSettings{PhoneMain: "+31 6 1234 5678"},
	}
	page.Meta = r.MetaFrom(nil, product.Name.In(page.Locale), "", page.Locale, page.Path)

	body, err := r.Page("product", ProductData{Page: page, Product: &product})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	html := string(body)
	if !strings.Contains(html, "Zilveren Ring") {
		t.Error("rendered product missing localized name")
	}
	if !strings.Contains(html, "https://wa.me/31612345678?text=") {
		t.Error("rendered product missing WhatsApp link with digits-only phone")
	}
}

func TestProductPath(t *testing.T) {
	product := testProduct()
	if got := ProductPath(product); got != "/jewelry/silver-ring" {
		t.Errorf("ProductPath with category = %q, want /jewelry/silver-ring", got)
	}

	product.Category = nil
	if got := ProductPath(product); got != "/products/silver-ring" {
		t.Errorf("ProductPath without category = %q, want /products/silver-ring", got)
	}
}

func TestAltPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/en", "/nl"},
		{"/nl", "/en"},
		{"/en/about", "/nl/about"},
		{"/nl/jewelry/silver-ring", "/en/jewelry/silver-ring"},
		{"/no-locale", "/no-locale"},
	}

	for _, tc := range tests {
		if got := altPath(tc.path); got != tc.want {
			t.Errorf("altPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestMetaFromPrefersSEOBlock(t *testing.T) {
	r := newTestRenderer(t)

	seo := &domain.SEO{
		MetaTitle:       domain.LocalizedText{EN: "Handmade Jewelry", NL: "Handgemaakte Sieraden"},
		MetaDescription: domain.LocalizedText{EN: "Fair trade jewelry"},
	}

	meta := r.MetaFrom(seo, "Fallback", "fallback description", i18n.LocaleNL, "/nl/jewelry")

	if meta.Title != "Handgemaakte Sieraden | Devanshi Culture Shop" {
		t.Errorf("unexpected title %q", meta.Title)
	}
	if meta.Description != "Fair trade jewelry" {
		t.Errorf("unexpected description %q", meta.Description)
	}
	if meta.Canonical != "http://example.com/nl/jewelry" {
		t.Errorf("unexpected canonical %q", meta.Canonical)
	}
}

func TestProductJSONLD(t *testing.T) {
	product := testProduct()

	jsonld := string(ProductJSONLD(&product, i18n.LocaleEN, "http://example.com/en/jewelry/silver-ring"))

	for _, want := range []string{
		`"@type":"Product"`,
		`"name":"Silver Ring"`,
		`"sku":"A100"`,
		`"price":"45.00"`,
		`"availability":"https://schema.org/InStock"`,
	} {
		if !strings.Contains(jsonld, want) {
			t.Errorf("JSON-LD missing %s", want)
		}
	}

	product.Price = nil
	jsonld = string(ProductJSONLD(&product, i18n.LocaleEN, "http://example.com/en/jewelry/silver-ring"))
	if strings.Contains(jsonld, "offers") {
		t.Error("JSON-LD for priceless product must not carry an offer")
	}
}
