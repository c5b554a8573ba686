package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/queue"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/repo"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/revalidate"
)

var (
	// ErrSecretNotConfigured means the webhook secret is not provisioned;
	// surfaced as a server misconfiguration, never retried by us.
	ErrSecretNotConfigured = errors.New("webhook secret not configured")
	// ErrInvalidSignature covers a missing, malformed or mismatched
	// signature header.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrInvalidPayload covers an unparsable body or one lacking the
	// required identifying fields.
	ErrInvalidPayload = errors.New("invalid webhook payload")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Purger drops one cached page path. Purging an absent path is a no-op.
type Purger interface {
	Purge(ctx context.Context, path string) error
}

// CategoryResolver turns a category reference id into its slug.
type CategoryResolver interface {
	CategorySlugByID(ctx context.Context, id string) (string, error)
}

// RevalidationResult reports one handled notification: which paths were
// purged, which failed, and the identity of the document that triggered it.
type RevalidationResult struct {
	DeliveryID   string             `json:"delivery_id"`
	DocumentID   string             `json:"document_id"`
	DocumentType string             `json:"document_type"`
	Revalidated  []string           `json:"revalidated"`
	Errors       []domain.PathError `json:"errors,omitempty"`
	Timestamp    time.Time          `json:"timestamp"`
}

// PartialFailure reports whether some, but not all, purges failed.
func (r *RevalidationResult) PartialFailure() bool {
	return len(r.Errors) > 0
}

type RevalidationService struct {
	secret    string
	purger    Purger
	resolver  CategoryResolver
	auditRepo repo.RevalidationAuditRepository
	broker    queue.Broker
	logger    *zap.SugaredLogger
}

func NewRevalidationService(
	secret string,
	purger Purger,
	resolver CategoryResolver,
	auditRepo repo.RevalidationAuditRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *RevalidationService {
	return &RevalidationService{
		secret:    secret,
		purger:    purger,
		resolver:  resolver,
		auditRepo: auditRepo,
		broker:    broker,
		logger:    logger,
	}
}

// HandleNotification authenticates one webhook delivery, computes the stale
// path set and purges each path. Individual purge failures are collected, not
// fatal: one bad path must not block the rest.
func (s *RevalidationService) HandleNotification(ctx context.Context, rawBody []byte, signature string) (*RevalidationResult, error) {
	if s.secret == "" {
		return nil, ErrSecretNotConfigured
	}

	if signature == "" || !revalidate.VerifySignature(rawBody, signature, s.secret) {
		return nil, ErrInvalidSignature
	}

	var payload domain.WebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}

	documents := payloadDocuments(&payload)
	if len(documents) == 0 {
		return nil, fmt.Errorf("%w: missing _id or _type", ErrInvalidPayload)
	}

	paths := make(map[string]struct{})
	for _, doc := range documents {
		ev := s.eventFromDocument(ctx, doc)
		for p := range revalidate.ComputePaths(ev) {
			paths[p] = struct{}{}
		}
	}

	result := &RevalidationResult{
		DeliveryID:   uuid.NewString(),
		DocumentID:   documents[0].ID,
		DocumentType: documents[0].Type,
		Revalidated:  make([]string, 0, len(paths)),
		Timestamp:    time.Now().UTC(),
	}

	for _, path := range sortedPaths(paths) {
		if err := s.purger.Purge(ctx, path); err != nil {
			s.logger.Errorw("purge failed", "delivery_id", result.DeliveryID, "path", path, "error", err)
			result.Errors = append(result.Errors, domain.PathError{Path: path, Error: err.Error()})
			continue
		}
		result.Revalidated = append(result.Revalidated, path)
	}

	s.audit(ctx, result)
	s.publishWarm(ctx, result)

	s.logger.Infow("notification handled",
		"delivery_id", result.DeliveryID,
		"document_id", result.DocumentID,
		"document_type", result.DocumentType,
		"revalidated", len(result.Revalidated),
		"failed", len(result.Errors),
	)

	return result, nil
}

// payloadDocuments extracts every well-identified document from either
// webhook shape.
func payloadDocuments(payload *domain.WebhookPayload) []*domain.WebhookDocument {
	if len(payload.Mutations) > 0 {
		var docs []*domain.WebhookDocument
		for _, m := range payload.Mutations {
			if doc := m.Document(); doc != nil && validate.Struct(doc) == nil {
				docs = append(docs, doc)
			}
		}
		return docs
	}

	if err := validate.Struct(payload.WebhookDocument); err != nil {
		return nil
	}
	doc := payload.WebhookDocument
	return []*domain.WebhookDocument{&doc}
}

// eventFromDocument normalizes a webhook document, resolving a bare category
// reference to its slug. Resolution failure degrades to the no-category
// rules rather than dropping the notification.
func (s *RevalidationService) eventFromDocument(ctx context.Context, doc *domain.WebhookDocument) domain.ContentChangeEvent {
	ev := domain.ContentChangeEvent{
		DocumentID:   doc.ID,
		DocumentType: doc.Type,
	}
	if doc.Slug != nil {
		ev.Slug = doc.Slug.Current
	}
	if doc.Category == nil {
		return ev
	}

	if doc.Category.Slug != nil && doc.Category.Slug.Current != "" {
		ev.CategorySlug = doc.Category.Slug.Current
		return ev
	}

	if doc.Category.Ref != "" {
		ev.CategoryRef = doc.Category.Ref
		if s.resolver != nil {
			slug, err := s.resolver.CategorySlugByID(ctx, doc.Category.Ref)
			if err != nil {
				s.logger.Warnw("category ref resolution failed", "ref", doc.Category.Ref, "error", err)
			} else {
				ev.CategorySlug = slug
			}
		}
	}

	return ev
}

func (s *RevalidationService) audit(ctx context.Context, result *RevalidationResult) {
	if s.auditRepo == nil {
		return
	}

	record := &domain.RevalidationAudit{
		DeliveryID:   result.DeliveryID,
		DocumentID:   result.DocumentID,
		DocumentType: result.DocumentType,
		Revalidated:  result.Revalidated,
		Failed:       result.Errors,
		Timestamp:    result.Timestamp,
	}

	if err := s.auditRepo.Create(ctx, record); err != nil {
		s.logger.Errorw("failed to record revalidation audit", "delivery_id", result.DeliveryID, "error", err)
	}
}

// publishWarm hands successfully purged paths to the warm worker so the cache
// refills before the next visitor.
func (s *RevalidationService) publishWarm(ctx context.Context, result *RevalidationResult) {
	if s.broker == nil || len(result.Revalidated) == 0 {
		return
	}

	msg := domain.PageWarmMessage{
		DeliveryID: result.DeliveryID,
		Paths:      result.Revalidated,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		s.logger.Errorw("failed to marshal warm message", "delivery_id", result.DeliveryID, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueuePageWarm, body); err != nil {
		s.logger.Errorw("failed to publish warm message", "delivery_id", result.DeliveryID, "error", err)
	}
}

// Audits lists recent notification outcomes for operators. A non-empty
// documentID narrows the trail to one document's history.
func (s *RevalidationService) Audits(ctx context.Context, documentID string, limit int) ([]domain.RevalidationAudit, error) {
	if s.auditRepo == nil {
		return nil, nil
	}

	var (
		audits []domain.RevalidationAudit
		err    error
	)
	if documentID != "" {
		audits, err = s.auditRepo.GetByDocumentID(ctx, documentID, limit)
	} else {
		audits, err = s.auditRepo.List(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list revalidation audits: %w", err)
	}

	return audits, nil
}

func sortedPaths(paths map[string]struct{}) []string {
	out := make([]string, 0, len(paths))
	for p := range paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
