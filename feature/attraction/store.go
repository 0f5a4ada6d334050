package attraction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"attraction-catalog/core/syncer"
	"attraction-catalog/feature/attraction/models"

	"gorm.io/gorm"
)

// Store persists attraction records in the 'attractions' table. It
// implements syncer.Store: find-one-by-key, insert, and update-by-key are
// the only operations the sync engine requires.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindByKey reports whether a record with the given attraction id is stored.
func (s *Store) FindByKey(ctx context.Context, key string) (bool, error) {
	var row models.AttractionRow
	err := s.db.WithContext(ctx).
		Select("id").
		Where("attraction_id = ?", key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find attraction %s: %w", key, err)
	}
	return true, nil
}

// Insert stores a new record. The record is validated first so a malformed
// declaration is rejected before touching the table.
func (s *Store) Insert(ctx context.Context, rec syncer.Record) error {
	record, err := s.toRecord(rec)
	if err != nil {
		return err
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation: %w", err)
	}

	row := models.NewRow(record)
	now := time.Now()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	row.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert attraction %s: %w", record.ID, err)
	}
	return nil
}

// Update overwrites every mutable field of the stored record matched by
// the attraction id and refreshes the update timestamp.
func (s *Store) Update(ctx context.Context, rec syncer.Record) error {
	record, err := s.toRecord(rec)
	if err != nil {
		return err
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation: %w", err)
	}

	row := models.NewRow(record)
	fields := map[string]any{
		"name":            row.Name,
		"name_en":         row.NameEn,
		"description":     row.Description,
		"latitude":        row.Latitude,
		"longitude":       row.Longitude,
		"category":        row.Category,
		"categories":      row.Categories,
		"province":        row.Province,
		"district":        row.District,
		"address":         row.Address,
		"check_in_radius": row.CheckInRadius,
		"thumbnail":       row.Thumbnail,
		"is_active":       row.IsActive,
		"updated_at":      time.Now(),
	}

	err = s.db.WithContext(ctx).
		Model(&models.AttractionRow{}).
		Where("attraction_id = ?", record.ID).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("update attraction %s: %w", record.ID, err)
	}
	return nil
}

// toRecord narrows the engine-facing Record back to the attraction model.
func (s *Store) toRecord(rec syncer.Record) (models.AttractionRecord, error) {
	record, ok := rec.(models.AttractionRecord)
	if !ok {
		return models.AttractionRecord{}, fmt.Errorf("unexpected record type %T", rec)
	}
	return record, nil
}
