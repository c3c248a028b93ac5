package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type documentStore struct {
	db *gorm.DB
}

// NewDocumentStore returns a DocumentStore backed by the documents table.
// Fields live in a JSONB column; equality filters use JSONB containment.
func NewDocumentStore(db *gorm.DB) domainRepo.DocumentStore {
	return &documentStore{db: db}
}

// ListDocuments returns matching documents oldest first.
func (r *documentStore) ListDocuments(ctx context.Context, collection string, filters ...domainRepo.Filter) ([]entity.Document, error) {
	query := r.db.WithContext(ctx).Where("collection = ?", collection)

	if len(filters) > 0 {
		containment, err := ContainmentJSON(filters)
		if err != nil {
			return nil, err
		}
		query = query.Where("data @> ?::jsonb", containment)
	}

	var docs []entity.Document
	if err := query.Order("created_at ASC").Order("id ASC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentStore) GetDocument(ctx context.Context, collection, id string) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRepo.ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentStore) CreateDocument(ctx context.Context, collection, id string, fields map[string]interface{}, permissions ...string) (*entity.Document, error) {
	if id == "" || id == entity.UniqueID {
		id = uuid.New().String()
	}

	doc := &entity.Document{
		ID:          id,
		Collection:  collection,
		Data:        entity.JSON(fields),
		Permissions: entity.StringList(permissions),
	}
	if doc.Data == nil {
		doc.Data = entity.JSON{}
	}

	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateDocument merges fields into the stored data. Fields not named keep
// their value.
func (r *documentStore) UpdateDocument(ctx context.Context, collection, id string, fields map[string]interface{}) (*entity.Document, error) {
	var doc *entity.Document

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entity.Document
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("collection = ? AND id = ?", collection, id).
			First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainRepo.ErrDocumentNotFound
			}
			return err
		}

		current.Data = MergeFields(current.Data, fields)
		if err := tx.Model(&current).
			Where("collection = ? AND id = ?", collection, id).
			Update("data", current.Data).Error; err != nil {
			return err
		}

		doc = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *documentStore) DeleteDocument(ctx context.Context, collection, id string) error {
	result := r.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&entity.Document{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrDocumentNotFound
	}
	return nil
}

// ContainmentJSON encodes filters as the JSON object a matching document's
// data must contain. A repeated field keeps its last value.
func ContainmentJSON(filters []domainRepo.Filter) (string, error) {
	object := make(map[string]interface{}, len(filters))
	for _, f := range filters {
		if f.Field == "" {
			return "", errors.New("filter field is required")
		}
		object[f.Field] = f.Value
	}

	b, err := json.Marshal(object)
	if err != nil {
		return "", fmt.Errorf("encode filters: %w", err)
	}
	return string(b), nil
}

// MergeFields returns a copy of data with fields applied on top.
func MergeFields(data entity.JSON, fields map[string]interface{}) entity.JSON {
	merged := make(entity.JSON, len(data)+len(fields))
	for k, v := range data {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}
