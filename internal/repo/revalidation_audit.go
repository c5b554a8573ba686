package repo

import (
	"context"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
)

type RevalidationAuditRepository interface {
	Create(ctx context.Context, audit *domain.RevalidationAudit) error
	List(ctx context.Context, limit int) ([]domain.RevalidationAudit, error)
	GetByDocumentID(ctx context.Context, documentID string, limit int) ([]domain.RevalidationAudit, error)
}
