package render

import (
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
)

// Page is the chrome every rendered page shares.
type Page struct {
	Locale   i18n.Locale
	Path     string
	Meta     Meta
	Settings *domain.StoreSettings
	Query    string
	SortKey  string
}

type HomeData struct {
	Page
	Home       *domain.HomePage
	Categories []domain.Category
}

type CategoriesData struct {
	Page
	Categories []domain.Category
}

type CategoryData struct {
	Page
	Category *domain.Category
	Products []domain.Product
	Total    int
}

type ProductData struct {
	Page
	Product *domain.Product
}

type AboutData struct {
	Page
	About *domain.AboutPage
}

type ContactData struct {
	Page
}

type SearchData struct {
	Page
	Products []domain.Product
}

type NotFoundData struct {
	Page
}
