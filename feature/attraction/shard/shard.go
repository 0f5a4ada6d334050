package shard

import (
	"fmt"
	"sync"
	"time"

	"attraction-catalog/feature/attraction/models"
)

// Shard owns the record sequence of one province. The backing slice is
// never exposed: accessors return copies, and the only mutation is the
// coordinate correction, which replaces the record at its index.
type Shard struct {
	province string
	aliases  []string

	mu      sync.RWMutex
	records []models.AttractionRecord
}

// New creates a shard for a province. The native-script province name is
// the canonical lookup key; aliases typically add the English name plus
// hyphenated and concatenated slugs. Records keep their declaration order.
// Duplicate ids within the shard are rejected.
func New(province string, aliases []string, records []models.AttractionRecord) (*Shard, error) {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.ID]; ok {
			return nil, fmt.Errorf("duplicate attraction id %q in province %s", rec.ID, province)
		}
		seen[rec.ID] = struct{}{}
	}

	s := &Shard{
		province: province,
		aliases:  append([]string(nil), aliases...),
		records:  append([]models.AttractionRecord(nil), records...),
	}
	return s, nil
}

// Province returns the native-script province name.
func (s *Shard) Province() string {
	return s.province
}

// Aliases returns the alternate lookup keys for the province.
func (s *Shard) Aliases() []string {
	return append([]string(nil), s.aliases...)
}

// Records returns every record in declaration order, inactive included.
func (s *Shard) Records() []models.AttractionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AttractionRecord(nil), s.records...)
}

// Active returns the active records in declaration order.
func (s *Shard) Active() []models.AttractionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AttractionRecord, 0, len(s.records))
	for _, rec := range s.records {
		if rec.IsActive {
			out = append(out, rec)
		}
	}
	return out
}

// ByID returns the record with the given id, active or not.
func (s *Shard) ByID(id string) (models.AttractionRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.AttractionRecord{}, false
}

// ByCategory returns active records tagged with the category, matching the
// primary category or the category set.
func (s *Shard) ByCategory(category string) []models.AttractionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.AttractionRecord
	for _, rec := range s.records {
		if rec.IsActive && rec.HasCategory(category) {
			out = append(out, rec)
		}
	}
	return out
}

// SearchByName returns active records whose name, English name, or
// description contains the term, case-insensitively.
func (s *Shard) SearchByName(term string) []models.AttractionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.AttractionRecord
	for _, rec := range s.records {
		if rec.IsActive && rec.Matches(term) {
			out = append(out, rec)
		}
	}
	return out
}

// CorrectCoordinates replaces the coordinates of the record with the given
// id, records the provenance, and refreshes the update timestamp. The
// correction is visible to all subsequent reads.
func (s *Shard) CorrectCoordinates(id string, coords models.Coordinates, source string) (models.AttractionRecord, bool) {
	if source == "" {
		source = models.CoordinateSourceManual
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.ID != id {
			continue
		}
		rec.Coordinates = coords
		rec.CoordinateSource = source
		rec.UpdatedAt = time.Now()
		s.records[i] = rec
		return rec, true
	}
	return models.AttractionRecord{}, false
}
