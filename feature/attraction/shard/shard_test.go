package shard

import (
	"testing"
	"time"

	"attraction-catalog/feature/attraction/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []models.AttractionRecord {
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return []models.AttractionRecord{
		{
			ID:            "ang-thong-001",
			Name:          "วัดม่วง",
			NameEn:        "Wat Muang",
			Description:   "Giant seated Buddha statue.",
			Coordinates:   models.Coordinates{Latitude: 14.5896, Longitude: 100.3706},
			Category:      "temple",
			Categories:    []string{"temple", "historical"},
			Province:      "อ่างทอง",
			CheckInRadius: 150,
			IsActive:      true,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
		{
			ID:            "ang-thong-002",
			Name:          "ตลาดศาลเจ้าโรงทอง",
			NameEn:        "San Chao Rong Thong Market",
			Description:   "Century-old riverside market.",
			Coordinates:   models.Coordinates{Latitude: 14.5948, Longitude: 100.3754},
			Category:      "market",
			Province:      "อ่างทอง",
			CheckInRadius: 100,
			IsActive:      true,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
		{
			ID:            "ang-thong-003",
			Name:          "หมู่บ้านทำกลอง",
			NameEn:        "Drum Making Village",
			Description:   "Traditional drum craft village, closed for renovation.",
			Coordinates:   models.Coordinates{Latitude: 14.6511, Longitude: 100.4021},
			Category:      "culture",
			Province:      "อ่างทอง",
			CheckInRadius: 120,
			IsActive:      false,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
	}
}

func newTestShard(t *testing.T) *Shard {
	t.Helper()
	s, err := New("อ่างทอง", []string{"Ang Thong", "ang-thong", "angthong"}, testRecords())
	require.NoError(t, err)
	return s
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	records := testRecords()
	records[1].ID = records[0].ID

	_, err := New("อ่างทอง", nil, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate attraction id")
}

func TestShard_Records_PreservesDeclarationOrder(t *testing.T) {
	s := newTestShard(t)

	records := s.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "ang-thong-001", records[0].ID)
	assert.Equal(t, "ang-thong-002", records[1].ID)
	assert.Equal(t, "ang-thong-003", records[2].ID)
}

func TestShard_Active_ExcludesInactive(t *testing.T) {
	s := newTestShard(t)

	active := s.Active()
	require.Len(t, active, 2)
	for _, rec := range active {
		assert.True(t, rec.IsActive)
	}
}

func TestShard_ByID(t *testing.T) {
	s := newTestShard(t)

	rec, ok := s.ByID("ang-thong-001")
	require.True(t, ok)
	assert.Equal(t, "วัดม่วง", rec.Name)

	// Inactive records remain retrievable by direct id lookup.
	rec, ok = s.ByID("ang-thong-003")
	require.True(t, ok)
	assert.False(t, rec.IsActive)

	_, ok = s.ByID("ang-thong-999")
	assert.False(t, ok)
}

func TestShard_ByCategory_ORSemantics(t *testing.T) {
	s := newTestShard(t)

	// ang-thong-001 is tagged via both the primary category and the set;
	// it must appear exactly once for either query.
	temples := s.ByCategory("temple")
	require.Len(t, temples, 1)
	assert.Equal(t, "ang-thong-001", temples[0].ID)

	historical := s.ByCategory("historical")
	require.Len(t, historical, 1)
	assert.Equal(t, "ang-thong-001", historical[0].ID)

	// Inactive culture record is excluded.
	assert.Empty(t, s.ByCategory("culture"))
}

func TestShard_SearchByName(t *testing.T) {
	s := newTestShard(t)

	assert.Len(t, s.SearchByName("wat"), 1)
	assert.Equal(t, s.SearchByName("WAT"), s.SearchByName("wat"))
	assert.Len(t, s.SearchByName(""), 2) // all active
	assert.Empty(t, s.SearchByName("ไม่มีอยู่จริง"))
}

func TestShard_CorrectCoordinates(t *testing.T) {
	s := newTestShard(t)

	before, _ := s.ByID("ang-thong-002")
	corrected := models.Coordinates{Latitude: 14.6, Longitude: 100.38}

	rec, ok := s.CorrectCoordinates("ang-thong-002", corrected, "")
	require.True(t, ok)
	assert.Equal(t, corrected, rec.Coordinates)
	assert.Equal(t, models.CoordinateSourceManual, rec.CoordinateSource)
	assert.True(t, rec.UpdatedAt.After(before.UpdatedAt))

	// Visible to subsequent reads without rebuilding the shard.
	again, _ := s.ByID("ang-thong-002")
	assert.Equal(t, corrected, again.Coordinates)

	_, ok = s.CorrectCoordinates("ang-thong-999", corrected, "gps")
	assert.False(t, ok)
}

func TestShard_RecordsReturnsCopy(t *testing.T) {
	s := newTestShard(t)

	records := s.Records()
	records[0].Name = "mutated"

	fresh, _ := s.ByID("ang-thong-001")
	assert.Equal(t, "วัดม่วง", fresh.Name)
}
