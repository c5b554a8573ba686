package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/catalog"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/content"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/render"
)

// ErrPageNotFound marks paths outside the storefront's route space.
var ErrPageNotFound = errors.New("page not found")

// PageStore caches rendered page bodies by canonical path.
type PageStore interface {
	Get(ctx context.Context, path string) ([]byte, bool, error)
	Set(ctx context.Context, path string, body []byte) error
}

// PageService renders storefront pages from content-store documents, with a
// read-through cache of the finished HTML.
type PageService struct {
	content  *content.Client
	cache    PageStore
	renderer *render.Renderer
	logger   *zap.SugaredLogger
}

func NewPageService(
	contentClient *content.Client,
	pageCache PageStore,
	renderer *render.Renderer,
	logger *zap.SugaredLogger,
) *PageService {
	return &PageService{
		content:  contentClient,
		cache:    pageCache,
		renderer: renderer,
		logger:   logger,
	}
}

// Serve returns the HTML for a localized page path, rendering and caching on
// miss. Query-bearing requests (search text, sort) bypass the cache: only the
// canonical form of a page is cached.
func (s *PageService) Serve(ctx context.Context, path string, query, sortKey string) ([]byte, error) {
	// trailing-slash variants must share the canonical cache key, or purges
	// computed from content changes would never reach them
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	cacheable := query == "" && (sortKey == "" || sortKey == string(catalog.SortFeatured))

	if cacheable && s.cache != nil {
		body, hit, err := s.cache.Get(ctx, path)
		if err != nil {
			s.logger.Warnw("page cache read failed", "path", path, "error", err)
		} else if hit {
			return body, nil
		}
	}

	body, err := s.Render(ctx, path, query, sortKey)
	if err != nil {
		return nil, err
	}

	if cacheable && s.cache != nil {
		if err := s.cache.Set(ctx, path, body); err != nil {
			s.logger.Warnw("page cache write failed", "path", path, "error", err)
		}
	}

	return body, nil
}

// Warm re-renders the canonical form of a page and stores it, replacing
// whatever the purge removed.
func (s *PageService) Warm(ctx context.Context, path string) error {
	body, err := s.Render(ctx, path, "", "")
	if err != nil {
		return fmt.Errorf("failed to warm %s: %w", path, err)
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, path, body)
}

// Render routes a localized path to its page template and renders it.
func (s *PageService) Render(ctx context.Context, path string, query, sortKey string) ([]byte, error) {
	locale, rest, ok := i18n.SplitPath(path)
	if !ok {
		return nil, ErrPageNotFound
	}

	rest = strings.TrimSuffix(rest, "/")

	settings, err := s.content.StoreSettings(ctx)
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		return nil, fmt.Errorf("failed to load store settings: %w", err)
	}

	page := render.Page{
		Locale:   locale,
		Path:     path,
		Settings: settings,
		Query:    strings.TrimSpace(query),
		SortKey:  string(catalog.ParseSortKey(sortKey)),
	}

	switch {
	case rest == "":
		return s.renderHome(ctx, page)
	case rest == "/about":
		return s.renderAbout(ctx, page)
	case rest == "/contact":
		return s.renderContact(page)
	case rest == "/search":
		return s.renderSearch(ctx, page)
	case rest == "/categories":
		return s.renderCategories(ctx, page)
	case strings.HasPrefix(rest, "/products/"):
		return s.renderProduct(ctx, page, strings.TrimPrefix(rest, "/products/"))
	default:
		segments := strings.Split(strings.TrimPrefix(rest, "/"), "/")
		switch len(segments) {
		case 1:
			return s.renderCategory(ctx, page, segments[0])
		case 2:
			return s.renderCategoryProduct(ctx, page, segments[0], segments[1])
		}
	}

	return nil, ErrPageNotFound
}

// NotFound renders the localized 404 page.
func (s *PageService) NotFound(ctx context.Context, path string) ([]byte, error) {
	locale, _, _ := i18n.SplitPath(path)

	settings, err := s.content.StoreSettings(ctx)
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		settings = nil
	}

	page := render.Page{
		Locale:   locale,
		Path:     "/" + string(locale),
		Settings: settings,
		SortKey:  string(catalog.SortFeatured),
	}
	page.Meta = s.renderer.MetaFrom(nil, "404", "", locale, page.Path)

	return s.renderer.Page("notfound", render.NotFoundData{Page: page})
}

func (s *PageService) renderHome(ctx context.Context, page render.Page) ([]byte, error) {
	home, err := s.content.HomePage(ctx)
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		return nil, fmt.Errorf("failed to load home page: %w", err)
	}

	categories, err := s.content.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	var seo *domain.SEO
	title := ""
	if home != nil {
		seo = home.SEO
		title = home.WelcomeHeading.In(page.Locale)
	}
	page.Meta = s.renderer.MetaFrom(seo, title, "", page.Locale, page.Path)

	return s.renderer.Page("home", render.HomeData{
		Page:       page,
		Home:       home,
		Categories: categories,
	})
}

func (s *PageService) renderAbout(ctx context.Context, page render.Page) ([]byte, error) {
	about, err := s.content.AboutPage(ctx)
	if errors.Is(err, content.ErrNotFound) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load about page: %w", err)
	}

	page.Meta = s.renderer.MetaFrom(about.SEO, about.Heading.In(page.Locale), about.Introduction.In(page.Locale), page.Locale, page.Path)

	return s.renderer.Page("about", render.AboutData{Page: page, About: about})
}

func (s *PageService) renderContact(page render.Page) ([]byte, error) {
	page.Meta = s.renderer.MetaFrom(nil, i18n.T(page.Locale, "nav.contact"), "", page.Locale, page.Path)
	return s.renderer.Page("contact", render.ContactData{Page: page})
}

func (s *PageService) renderCategories(ctx context.Context, page render.Page) ([]byte, error) {
	categories, err := s.content.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	page.Meta = s.renderer.MetaFrom(nil, i18n.T(page.Locale, "nav.categories"), "", page.Locale, page.Path)

	return s.renderer.Page("categories", render.CategoriesData{Page: page, Categories: categories})
}

func (s *PageService) renderCategory(ctx context.Context, page render.Page, slug string) ([]byte, error) {
	category, err := s.content.CategoryBySlug(ctx, slug)
	if errors.Is(err, content.ErrNotFound) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load category %s: %w", slug, err)
	}

	products, err := s.content.ProductsByCategory(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for %s: %w", slug, err)
	}

	view := catalog.View(products, page.Query, page.Locale, catalog.SortKey(page.SortKey))

	page.Meta = s.renderer.MetaFrom(category.SEO, category.Name.In(page.Locale), category.Description.In(page.Locale), page.Locale, page.Path)

	return s.renderer.Page("category", render.CategoryData{
		Page:     page,
		Category: category,
		Products: view,
		Total:    len(view),
	})
}

func (s *PageService) renderProduct(ctx context.Context, page render.Page, slug string) ([]byte, error) {
	product, err := s.content.ProductBySlug(ctx, slug)
	if errors.Is(err, content.ErrNotFound) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", slug, err)
	}

	return s.renderProductPage(page, product)
}

func (s *PageService) renderCategoryProduct(ctx context.Context, page render.Page, categorySlug, slug string) ([]byte, error) {
	product, err := s.content.ProductBySlug(ctx, slug)
	if errors.Is(err, content.ErrNotFound) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", slug, err)
	}

	// the product's canonical category must match the path
	if product.Category == nil || product.Category.Slug.Current != categorySlug {
		return nil, ErrPageNotFound
	}

	return s.renderProductPage(page, product)
}

func (s *PageService) renderProductPage(page render.Page, product *domain.Product) ([]byte, error) {
	page.Meta = s.renderer.MetaFrom(product.SEO, product.Name.In(page.Locale), product.Description.In(page.Locale), page.Locale, page.Path)
	page.Meta.JSONLD = render.ProductJSONLD(product, page.Locale, s.renderer.BaseURL()+page.Path)

	return s.renderer.Page("product", render.ProductData{Page: page, Product: product})
}

func (s *PageService) renderSearch(ctx context.Context, page render.Page) ([]byte, error) {
	var view []domain.Product
	if page.Query != "" {
		products, err := s.content.Products(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load products: %w", err)
		}
		view = catalog.View(products, page.Query, page.Locale, catalog.SortKey(page.SortKey))
	}

	page.Meta = s.renderer.MetaFrom(nil, i18n.T(page.Locale, "search.title"), "", page.Locale, page.Path)

	return s.renderer.Page("search", render.SearchData{Page: page, Products: view})
}
