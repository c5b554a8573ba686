package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PathError records one failed purge inside an otherwise processed
// notification.
type PathError struct {
	Path  string `bson:"path" json:"path"`
	Error string `bson:"error" json:"error"`
}

// RevalidationAudit is the stored trail of one handled webhook notification.
type RevalidationAudit struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DeliveryID   string             `bson:"delivery_id" json:"delivery_id"`
	DocumentID   string             `bson:"document_id" json:"document_id"`
	DocumentType string             `bson:"document_type" json:"document_type"`
	Revalidated  []string           `bson:"revalidated" json:"revalidated"`
	Failed       []PathError        `bson:"failed,omitempty" json:"failed,omitempty"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}
