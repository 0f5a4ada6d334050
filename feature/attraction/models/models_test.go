package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() AttractionRecord {
	return AttractionRecord{
		ID:          "ang-thong-001",
		Name:        "วัดม่วง",
		NameEn:      "Wat Muang",
		Description: "Home of the giant seated Buddha statue.",
		Coordinates: Coordinates{
			Latitude:  14.5896,
			Longitude: 100.3706,
		},
		Category:      "temple",
		Categories:    []string{"temple", "historical"},
		Province:      "อ่างทอง",
		District:      "วิเศษชัยชาญ",
		Address:       "Hua Taphan, Wiset Chai Chan District",
		CheckInRadius: 150,
		Thumbnail:     "thumbnails/ang-thong-001.jpg",
		IsActive:      true,
		CreatedAt:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestAttractionRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *AttractionRecord)
		wantErr string
	}{
		{"valid", func(r *AttractionRecord) {}, ""},
		{"missing id", func(r *AttractionRecord) { r.ID = "" }, "missing id"},
		{"missing name", func(r *AttractionRecord) { r.Name = "" }, "missing name"},
		{"missing english name", func(r *AttractionRecord) { r.NameEn = "" }, "missing english name"},
		{"latitude out of range", func(r *AttractionRecord) { r.Coordinates.Latitude = 91 }, "latitude"},
		{"longitude out of range", func(r *AttractionRecord) { r.Coordinates.Longitude = -181 }, "longitude"},
		{"missing category", func(r *AttractionRecord) { r.Category = ""; r.Categories = nil }, "missing category"},
		{"category not in set", func(r *AttractionRecord) { r.Categories = []string{"historical"} }, "not in categories set"},
		{"zero radius", func(r *AttractionRecord) { r.CheckInRadius = 0 }, "check-in radius"},
		{"negative radius", func(r *AttractionRecord) { r.CheckInRadius = -1 }, "check-in radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)
			err := rec.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestAttractionRecord_HasCategory(t *testing.T) {
	rec := validRecord() // category "temple", categories ["temple", "historical"]

	assert.True(t, rec.HasCategory("temple"))
	assert.True(t, rec.HasCategory("historical"))
	assert.False(t, rec.HasCategory("market"))

	// Legacy record with no category set falls back to the primary tag.
	rec.Categories = nil
	assert.True(t, rec.HasCategory("temple"))
	assert.False(t, rec.HasCategory("historical"))
}

func TestAttractionRecord_EffectiveCategories(t *testing.T) {
	rec := validRecord()
	assert.Equal(t, []string{"temple", "historical"}, rec.EffectiveCategories())

	rec.Categories = nil
	assert.Equal(t, []string{"temple"}, rec.EffectiveCategories())
}

func TestAttractionRecord_Matches(t *testing.T) {
	rec := validRecord()

	assert.True(t, rec.Matches("WAT"))
	assert.True(t, rec.Matches("wat"))
	assert.True(t, rec.Matches("วัด"))
	assert.True(t, rec.Matches("buddha"))
	assert.True(t, rec.Matches("")) // empty term matches everything
	assert.False(t, rec.Matches("ตลาดน้ำ"))
}

func TestAttractionRow_RoundTrip(t *testing.T) {
	rec := validRecord()
	row := NewRow(rec)

	assert.Equal(t, "ang-thong-001", row.AttractionID)
	assert.Equal(t, CoordinateSourceManual, row.CoordinateSource)
	assert.Equal(t, `["temple","historical"]`, row.Categories)

	back := row.ToRecord()
	assert.Equal(t, rec.ID, back.ID)
	assert.Equal(t, rec.Name, back.Name)
	assert.Equal(t, rec.Coordinates, back.Coordinates)
	assert.Equal(t, rec.Categories, back.Categories)
	assert.Equal(t, rec.CheckInRadius, back.CheckInRadius)
}

func TestAttractionRow_EmptyCategories(t *testing.T) {
	rec := validRecord()
	rec.Categories = nil

	row := NewRow(rec)
	assert.Empty(t, row.Categories)
	assert.Nil(t, row.ToRecord().Categories)
}
