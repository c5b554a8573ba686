package content

import (
	"context"
	"errors"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
)

func (c *Client) HomePage(ctx context.Context) (*domain.HomePage, error) {
	var page domain.HomePage
	if err := c.fetch(ctx, queryHomePage, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) AboutPage(ctx context.Context) (*domain.AboutPage, error) {
	var page domain.AboutPage
	if err := c.fetch(ctx, queryAboutPage, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) StoreSettings(ctx context.Context) (*domain.StoreSettings, error) {
	var settings domain.StoreSettings
	if err := c.fetch(ctx, queryStoreSettings, nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := c.fetch(ctx, queryAllCategories, nil, &categories)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var category domain.Category
	if err := c.fetch(ctx, queryCategoryBySlug, map[string]string{"slug": slug}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := c.fetch(ctx, queryAllProducts, nil, &products)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	var products []domain.Product
	err := c.fetch(ctx, queryProductsByCategory, map[string]string{"categorySlug": categorySlug}, &products)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var product domain.Product
	if err := c.fetch(ctx, queryProductBySlug, map[string]string{"slug": slug}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CategorySlugByID resolves a category reference id to its slug. Webhook
// payloads sometimes carry only the reference.
func (c *Client) CategorySlugByID(ctx context.Context, id string) (string, error) {
	var slug string
	if err := c.fetch(ctx, queryCategorySlugByID, map[string]string{"id": id}, &slug); err != nil {
		return "", err
	}
	return slug, nil
}
