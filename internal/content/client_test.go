package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchDecodesResultAndParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != queryProductBySlug {
			t.Errorf("unexpected query: %q", got)
		}
		if got := r.URL.Query().Get("$slug"); got != `"silver-ring"` {
			t.Errorf("param not JSON-encoded: %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{
				"_id":        "p1",
				"itemNumber": "A1",
				"productName": map[string]string{
					"en": "Silver Ring",
					"nl": "Zilveren Ring",
				},
				"slug":        map[string]string{"current": "silver-ring"},
				"price":       25.5,
				"isAvailable": true,
			},
		})
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	product, err := c.ProductBySlug(context.Background(), "silver-ring")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID != "p1" || product.Name.NL != "Zilveren Ring" {
		t.Fatalf("unexpected product: %+v", product)
	}
	if product.Price == nil || product.Price.String() != "25.5" {
		t.Fatalf("unexpected price: %v", product.Price)
	}
}

func TestFetchNullResultIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":null}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	_, err := c.ProductBySlug(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchEmptyListIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":[]}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	products, err := c.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty list, got %v", products)
	}
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "query parse error", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	if _, err := c.Products(context.Background()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestCategorySlugByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("$id"); got != `"cat-123"` {
			t.Errorf("unexpected id param: %q", got)
		}
		_, _ = w.Write([]byte(`{"result":"jewelry"}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	slug, err := c.CategorySlugByID(context.Background(), "cat-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "jewelry" {
		t.Fatalf("expected jewelry, got %q", slug)
	}
}
