package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/catalog"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/content"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/i18n"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/render"
)

const (
	// MinQueryLength is the shortest search term the API accepts.
	MinQueryLength = 2
	// DefaultSearchLimit fits the header dropdown.
	DefaultSearchLimit = 4
	// MaxSearchLimit bounds one response regardless of the requested limit.
	MaxSearchLimit = 100
)

// SearchService backs the search-as-you-type JSON endpoint.
type SearchService struct {
	content *content.Client
	logger  *zap.SugaredLogger
}

func NewSearchService(contentClient *content.Client, logger *zap.SugaredLogger) *SearchService {
	return &SearchService{content: contentClient, logger: logger}
}

// SearchProduct is one dropdown result row.
type SearchProduct struct {
	ID          string               `json:"_id"`
	Name        domain.LocalizedText `json:"productName"`
	ItemNumber  string               `json:"itemNumber"`
	Path        string               `json:"path"`
	Category    *domain.CategoryRef  `json:"category,omitempty"`
	Price       *decimal.Decimal     `json:"price,omitempty"`
	IsAvailable bool                 `json:"isAvailable"`
}

type SearchResult struct {
	Products []SearchProduct `json:"products"`
	Total    int             `json:"total"`
	Query    string          `json:"query"`
	Limit    int             `json:"limit"`
	Message  string          `json:"message,omitempty"`
}

// Search runs the catalog pipeline over the full product snapshot and
// truncates the view to the requested limit. Terms below the minimum length
// return an empty result rather than an error.
func (s *SearchService) Search(ctx context.Context, query string, locale i18n.Locale, limit int) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinQueryLength {
		return &SearchResult{
			Products: []SearchProduct{},
			Query:    query,
			Message:  "Search term too short",
		}, nil
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	products, err := s.content.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	view := catalog.View(products, query, locale, catalog.SortFeatured)
	total := len(view)
	if len(view) > limit {
		view = view[:limit]
	}

	results := make([]SearchProduct, 0, len(view))
	for _, p := range view {
		results = append(results, SearchProduct{
			ID:          p.ID,
			Name:        p.Name,
			ItemNumber:  p.ItemNumber,
			Path:        render.ProductPath(p),
			Category:    p.Category,
			Price:       p.Price,
			IsAvailable: p.IsAvailable,
		})
	}

	return &SearchResult{
		Products: results,
		Total:    total,
		Query:    query,
		Limit:    limit,
	}, nil
}
