package revalidate

import (
	"reflect"
	"testing"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
)

func pathSet(paths ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}

func TestComputePaths(t *testing.T) {
	cases := []struct {
		name  string
		event domain.ContentChangeEvent
		want  map[string]struct{}
	}{
		{
			name: "product with category",
			event: domain.ContentChangeEvent{
				DocumentID:   "p1",
				DocumentType: domain.DocTypeProduct,
				Slug:         "silver-ring",
				CategorySlug: "jewelry",
			},
			want: pathSet(
				"/en/jewelry/silver-ring", "/nl/jewelry/silver-ring",
				"/en/jewelry", "/nl/jewelry",
				"/en", "/nl",
			),
		},
		{
			name: "product without category",
			event: domain.ContentChangeEvent{
				DocumentID:   "p2",
				DocumentType: domain.DocTypeProduct,
				Slug:         "brass-bowl",
			},
			want: pathSet(
				"/en/products/brass-bowl", "/nl/products/brass-bowl",
				"/en", "/nl",
			),
		},
		{
			name: "product without slug keeps only category paths",
			event: domain.ContentChangeEvent{
				DocumentID:   "p3",
				DocumentType: domain.DocTypeProduct,
				CategorySlug: "textiles",
			},
			want: pathSet("/en/textiles", "/nl/textiles"),
		},
		{
			name: "product with nothing resolvable",
			event: domain.ContentChangeEvent{
				DocumentID:   "p4",
				DocumentType: domain.DocTypeProduct,
			},
			want: pathSet(),
		},
		{
			name: "category",
			event: domain.ContentChangeEvent{
				DocumentID:   "c1",
				DocumentType: domain.DocTypeCategory,
				Slug:         "jewelry",
			},
			want: pathSet("/en/jewelry", "/nl/jewelry", "/en", "/nl"),
		},
		{
			name:  "home page",
			event: domain.ContentChangeEvent{DocumentID: "h1", DocumentType: domain.DocTypeHomePage},
			want:  pathSet("/en", "/nl"),
		},
		{
			name:  "about page",
			event: domain.ContentChangeEvent{DocumentID: "a1", DocumentType: domain.DocTypeAboutPage},
			want:  pathSet("/en/about", "/nl/about"),
		},
		{
			name:  "store settings",
			event: domain.ContentChangeEvent{DocumentID: "s1", DocumentType: domain.DocTypeStoreSettings},
			want:  pathSet("/en", "/nl", "/en/contact", "/nl/contact", "/en/about", "/nl/about"),
		},
		{
			name:  "unknown type",
			event: domain.ContentChangeEvent{DocumentID: "x1", DocumentType: "siteBanner"},
			want:  pathSet(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePaths(tc.event)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComputePathsIsPure(t *testing.T) {
	ev := domain.ContentChangeEvent{
		DocumentType: domain.DocTypeProduct,
		Slug:         "silver-ring",
		CategorySlug: "jewelry",
	}

	first := ComputePaths(ev)
	second := ComputePaths(ev)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls differ: %v vs %v", first, second)
	}
}
