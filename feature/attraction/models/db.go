package models

import (
	"encoding/json"
	"time"
)

// AttractionRow is the gorm model backing the 'attractions' table.
// Categories are persisted as a JSON array in a text column so the table
// stays portable across MySQL versions without a JSON column type.
type AttractionRow struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement"`
	AttractionID     string    `gorm:"column:attraction_id;uniqueIndex;size:64"`
	Name             string    `gorm:"column:name;size:255"`
	NameEn           string    `gorm:"column:name_en;size:255"`
	Description      string    `gorm:"column:description;type:text"`
	Latitude         float64   `gorm:"column:latitude"`
	Longitude        float64   `gorm:"column:longitude"`
	Category         string    `gorm:"column:category;size:64"`
	Categories       string    `gorm:"column:categories;type:text"`
	Province         string    `gorm:"column:province;size:128"`
	District         string    `gorm:"column:district;size:128"`
	Address          string    `gorm:"column:address;size:255"`
	CheckInRadius    float64   `gorm:"column:check_in_radius"`
	Thumbnail        string    `gorm:"column:thumbnail;size:255"`
	IsActive         bool      `gorm:"column:is_active"`
	CoordinateSource string    `gorm:"column:coordinate_source;size:32"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name used by gorm.
func (AttractionRow) TableName() string {
	return "attractions"
}

// NewRow converts a canonical record into its stored representation.
func NewRow(rec AttractionRecord) AttractionRow {
	source := rec.CoordinateSource
	if source == "" {
		source = CoordinateSourceManual
	}

	return AttractionRow{
		AttractionID:     rec.ID,
		Name:             rec.Name,
		NameEn:           rec.NameEn,
		Description:      rec.Description,
		Latitude:         rec.Coordinates.Latitude,
		Longitude:        rec.Coordinates.Longitude,
		Category:         rec.Category,
		Categories:       marshalCategories(rec.Categories),
		Province:         rec.Province,
		District:         rec.District,
		Address:          rec.Address,
		CheckInRadius:    rec.CheckInRadius,
		Thumbnail:        rec.Thumbnail,
		IsActive:         rec.IsActive,
		CoordinateSource: source,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}

// ToRecord converts a stored row back into a canonical record.
func (row AttractionRow) ToRecord() AttractionRecord {
	return AttractionRecord{
		ID:          row.AttractionID,
		Name:        row.Name,
		NameEn:      row.NameEn,
		Description: row.Description,
		Coordinates: Coordinates{
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		},
		Category:         row.Category,
		Categories:       unmarshalCategories(row.Categories),
		Province:         row.Province,
		District:         row.District,
		Address:          row.Address,
		CheckInRadius:    row.CheckInRadius,
		Thumbnail:        row.Thumbnail,
		IsActive:         row.IsActive,
		CoordinateSource: row.CoordinateSource,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func marshalCategories(categories []string) string {
	if len(categories) == 0 {
		return ""
	}
	data, err := json.Marshal(categories)
	if err != nil {
		return ""
	}
	return string(data)
}

func unmarshalCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	var categories []string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		return nil
	}
	return categories
}
