package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_DeclarationsAreValid(t *testing.T) {
	shards := All()
	require.NotEmpty(t, shards)

	seen := make(map[string]string) // id -> province
	for _, s := range shards {
		records := s.Records()
		assert.NotEmpty(t, records, "province %s has no records", s.Province())

		for _, rec := range records {
			require.NoErrorf(t, rec.Validate(), "record %s in %s", rec.ID, s.Province())
			assert.Equal(t, s.Province(), rec.Province, "record %s declares the wrong province", rec.ID)

			if other, ok := seen[rec.ID]; ok {
				t.Fatalf("id %s declared in both %s and %s", rec.ID, other, s.Province())
			}
			seen[rec.ID] = s.Province()
		}
	}
}

func TestAll_EveryProvinceDeclaresAliases(t *testing.T) {
	for _, s := range All() {
		assert.NotEmptyf(t, s.Aliases(), "province %s declares no aliases", s.Province())
	}
}

func TestAngThong_SevenRecords(t *testing.T) {
	s := AngThong()

	records := s.Records()
	require.Len(t, records, 7)
	assert.Equal(t, "ang-thong-001", records[0].ID)

	rec, ok := s.ByID("ang-thong-001")
	require.True(t, ok)
	assert.Equal(t, "วัดม่วง", rec.Name)
}
