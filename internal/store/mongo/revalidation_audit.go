package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yusuf-wknd/devanshi-culture-shop/internal/domain"
)

const collRevalidationAudits = "revalidation_audits"

type RevalidationAuditRepository struct {
	collection *mongo.Collection
}

func NewRevalidationAuditRepository(db *mongo.Database) *RevalidationAuditRepository {
	return &RevalidationAuditRepository{
		collection: db.Collection(collRevalidationAudits),
	}
}

func (r *RevalidationAuditRepository) Create(ctx context.Context, audit *domain.RevalidationAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return fmt.Errorf("failed to create revalidation audit: %w", err)
	}

	return nil
}

func (r *RevalidationAuditRepository) List(ctx context.Context, limit int) ([]domain.RevalidationAudit, error) {
	return r.find(ctx, bson.M{}, limit)
}

func (r *RevalidationAuditRepository) GetByDocumentID(ctx context.Context, documentID string, limit int) ([]domain.RevalidationAudit, error) {
	return r.find(ctx, bson.M{"document_id": documentID}, limit)
}

func (r *RevalidationAuditRepository) find(ctx context.Context, filter bson.M, limit int) ([]domain.RevalidationAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get revalidation audits: %w", err)
	}
	defer cursor.Close(ctx)

	var audits []domain.RevalidationAudit
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode revalidation audits: %w", err)
	}

	return audits, nil
}
