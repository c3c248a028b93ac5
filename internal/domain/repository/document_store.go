package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
)

var ErrDocumentNotFound = errors.New("document not found")

// Filter is an equality predicate on a document field. No range, sort or
// pagination predicates exist.
type Filter struct {
	Field string
	Value interface{}
}

// Equal builds the field == value predicate.
func Equal(field string, value interface{}) Filter {
	return Filter{Field: field, Value: value}
}

// DocumentStore is the document side of the backend collaborator.
// Permissions are stored with the document; enforcing them is the backend's
// job, never the caller's.
type DocumentStore interface {
	ListDocuments(ctx context.Context, collection string, filters ...Filter) ([]entity.Document, error)
	GetDocument(ctx context.Context, collection, id string) (*entity.Document, error)
	CreateDocument(ctx context.Context, collection, id string, fields map[string]interface{}, permissions ...string) (*entity.Document, error)
	UpdateDocument(ctx context.Context, collection, id string, fields map[string]interface{}) (*entity.Document, error)
	DeleteDocument(ctx context.Context, collection, id string) error
}
