package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/queue"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/repo"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/revalidate"
)

type fakePurger struct {
	mu     sync.Mutex
	purged []string
	fail   map[string]error
}

func (f *fakePurger) Purge(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.fail[path]; ok {
		return err
	}
	f.purged = append(f.purged, path)
	return nil
}

type fakeResolver struct {
	slugs map[string]string
}

func (f *fakeResolver) CategorySlugByID(_ context.Context, id string) (string, error) {
	slug, ok := f.slugs[id]
	if !ok {
		return "", errors.New("category not found")
	}
	return slug, nil
}

type fakeAuditRepo struct {
	records []*domain.RevalidationAudit
}

func (f *fakeAuditRepo) Create(_ context.Context, audit *domain.RevalidationAudit) error {
	f.records = append(f.records, audit)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, limit int) ([]domain.RevalidationAudit, error) {
	out := make([]domain.RevalidationAudit, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeAuditRepo) GetByDocumentID(_ context.Context, documentID string, _ int) ([]domain.RevalidationAudit, error) {
	var out []domain.RevalidationAudit
	for _, r := range f.records {
		if r.DocumentID == documentID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeBroker struct {
	published [][]byte
}

func (f *fakeBroker) Publish(_ context.Context, _ string, message []byte) error {
	f.published = append(f.published, message)
	return nil
}

func (f *fakeBroker) Subscribe(_ context.Context, _ string, _ queue.MessageHandler) error {
	return nil
}

func (f *fakeBroker) Close() error { return nil }

const testSecret = "hook-secret"

// Parameters are the service's interface types so a literal nil stays a nil
// interface instead of a typed-nil fake slipping past the optional-dep guards.
func newTestService(purger Purger, resolver CategoryResolver, audits repo.RevalidationAuditRepository, broker queue.Broker) *RevalidationService {
	return NewRevalidationService(testSecret, purger, resolver, audits, broker, zap.NewNop().Sugar())
}

func signedBody(t *testing.T, payload any) ([]byte, string) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return body, revalidate.Sign(body, testSecret)
}

func TestHandleNotificationNoSecret(t *testing.T) {
	svc := NewRevalidationService("", &fakePurger{}, nil, nil, nil, zap.NewNop().Sugar())

	_, err := svc.HandleNotification(context.Background(), []byte(`{}`), "sha256=00")
	if !errors.Is(err, ErrSecretNotConfigured) {
		t.Fatalf("expected ErrSecretNotConfigured, got %v", err)
	}
}

func TestHandleNotificationBadSignature(t *testing.T) {
	svc := newTestService(&fakePurger{}, nil, nil, nil)
	body := []byte(`{"_id":"p1","_type":"product"}`)

	if _, err := svc.HandleNotification(context.Background(), body, ""); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for missing header, got %v", err)
	}

	if _, err := svc.HandleNotification(context.Background(), body, "sha256=deadbeef"); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for wrong signature, got %v", err)
	}
}

func TestHandleNotificationInvalidPayload(t *testing.T) {
	svc := newTestService(&fakePurger{}, nil, nil, nil)

	body := []byte(`not json at all`)
	if _, err := svc.HandleNotification(context.Background(), body, revalidate.Sign(body, testSecret)); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for bad JSON, got %v", err)
	}

	body, sig := signedBody(t, map[string]string{"_id": "p1"})
	if _, err := svc.HandleNotification(context.Background(), body, sig); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for missing _type, got %v", err)
	}
}

func TestHandleNotificationPurgesAllPaths(t *testing.T) {
	purger := &fakePurger{}
	audits := &fakeAuditRepo{}
	broker := &fakeBroker{}
	svc := newTestService(purger, nil, audits, broker)

	body, sig := signedBody(t, map[string]any{
		"_id":      "p1",
		"_type":    "product",
		"slug":     map[string]string{"current": "silver-ring"},
		"category": map[string]any{"slug": map[string]string{"current": "jewelry"}},
	})

	result, err := svc.HandleNotification(context.Background(), body, sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"/en", "/en/jewelry", "/en/jewelry/silver-ring",
		"/nl", "/nl/jewelry", "/nl/jewelry/silver-ring",
	}
	sort.Strings(result.Revalidated)
	if len(result.Revalidated) != len(want) {
		t.Fatalf("revalidated %v, want %v", result.Revalidated, want)
	}
	for i := range want {
		if result.Revalidated[i] != want[i] {
			t.Fatalf("revalidated %v, want %v", result.Revalidated, want)
		}
	}
	if result.PartialFailure() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	if len(audits.records) != 1 {
		t.Fatalf("expected one audit record, got %d", len(audits.records))
	}
	if audits.records[0].DocumentID != "p1" {
		t.Fatalf("audit document id = %q", audits.records[0].DocumentID)
	}

	if len(broker.published) != 1 {
		t.Fatalf("expected one warm message, got %d", len(broker.published))
	}
	var warm domain.PageWarmMessage
	if err := json.Unmarshal(broker.published[0], &warm); err != nil {
		t.Fatalf("bad warm message: %v", err)
	}
	if len(warm.Paths) != len(want) {
		t.Fatalf("warm paths %v, want %d paths", warm.Paths, len(want))
	}
}

func TestHandleNotificationWithoutOptionalDeps(t *testing.T) {
	// resolver, audit repo and broker are optional collaborators; a delivery
	// with purge failures must still complete when none are wired
	purger := &fakePurger{fail: map[string]error{"/en": errors.New("cache edge timeout")}}
	svc := newTestService(purger, nil, nil, nil)

	body, sig := signedBody(t, map[string]any{
		"_id":   "h1",
		"_type": "homePage",
	})

	result, err := svc.HandleNotification(context.Background(), body, sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.PartialFailure() {
		t.Fatal("expected partial failure")
	}
	if len(result.Revalidated) != 1 || result.Revalidated[0] != "/nl" {
		t.Fatalf("unexpected revalidated set: %v", result.Revalidated)
	}
}

func TestAuditsNarrowsByDocumentID(t *testing.T) {
	audits := &fakeAuditRepo{records: []*domain.RevalidationAudit{
		{DocumentID: "p1", DeliveryID: "d1"},
		{DocumentID: "p2", DeliveryID: "d2"},
		{DocumentID: "p1", DeliveryID: "d3"},
	}}
	svc := newTestService(&fakePurger{}, nil, audits, nil)

	all, err := svc.Audits(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 audits, got %d", len(all))
	}

	only, err := svc.Audits(context.Background(), "p1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(only) != 2 {
		t.Fatalf("expected 2 audits for p1, got %d", len(only))
	}
}

func TestHandleNotificationPartialFailure(t *testing.T) {
	purger := &fakePurger{fail: map[string]error{"/en": errors.New("cache edge timeout")}}
	svc := newTestService(purger, nil, &fakeAuditRepo{}, nil)

	body, sig := signedBody(t, map[string]any{
		"_id":   "s1",
		"_type": "storeSettings",
	})

	result, err := svc.HandleNotification(context.Background(), body, sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.PartialFailure() {
		t.Fatal("expected partial failure")
	}
	if len(result.Errors) != 1 || result.Errors[0].Path != "/en" {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Revalidated) != 5 {
		t.Fatalf("expected 5 succeeded paths, got %v", result.Revalidated)
	}
}

func TestHandleNotificationResolvesCategoryRef(t *testing.T) {
	purger := &fakePurger{}
	resolver := &fakeResolver{slugs: map[string]string{"cat-1": "jewelry"}}
	svc := newTestService(purger, resolver, nil, nil)

	body, sig := signedBody(t, map[string]any{
		"_id":      "p1",
		"_type":    "product",
		"slug":     map[string]string{"current": "silver-ring"},
		"category": map[string]string{"_ref": "cat-1"},
	})

	result, err := svc.HandleNotification(context.Background(), body, sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, p := range result.Revalidated {
		if p == "/en/jewelry/silver-ring" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected resolved category path, got %v", result.Revalidated)
	}
}

func TestHandleNotificationUnresolvableRefDegrades(t *testing.T) {
	purger := &fakePurger{}
	resolver := &fakeResolver{slugs: map[string]string{}}
	svc := newTestService(purger, resolver, nil, nil)

	body, sig := signedBody(t, map[string]any{
		"_id":      "p1",
		"_type":    "product",
		"slug":     map[string]string{"current": "silver-ring"},
		"category": map[string]string{"_ref": "cat-missing"},
	})

	result, err := svc.HandleNotification(context.Background(), body, sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sort.Strings(result.Revalidated)
	want := []string{"/en", "/en/products/silver-ring", "/nl", "/nl/products/silver-ring"}
	if len(result.Revalidated) != len(want) {
		t.Fatalf("got %v, want %v", result.Revalidated, want)
	}
	for i := range want {
		if result.Revalidated[i] != want[i] {
			t.Fatalf("got %v, want %v", result.Revalidated, want)
		}
	}
}

func TestHandleNotificationMutationsEnvelope(t *testing.T) {
	purger := &fakePurger{}
	svc := newTestService(purger, nil, nil, nil)

	body, sig := signedBody(t, map[string]any{
		"_type":     "webhook",
		"projectId": "abc123",
		"dataset":   "production",
		"mutations": []map[string]any{
			{
				"_id":   "p1",
				"_type": "product",
				"createOrReplace": map[string]any{
					"_id":   "p1",
					"_type": "product",
					"slug":  map[string]string{"current": "brass-bowl"},
				},
			},
			{
				"_id":   "h1",
				"_type": "homePage",
				"patch": map[string]string{"id": "h1"},
			},
		},
	})

	result, err := svc.HandleNotification(context.Background(), body, sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sort.Strings(result.Revalidated)
	want := []string{"/en", "/en/products/brass-bowl", "/nl", "/nl/products/brass-bowl"}
	if len(result.Revalidated) != len(want) {
		t.Fatalf("got %v, want %v", result.Revalidated, want)
	}
}
