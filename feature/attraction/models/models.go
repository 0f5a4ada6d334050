package models

import (
	"fmt"
	"strings"
	"time"
)

// CoordinateSourceManual marks coordinates entered or corrected by hand.
// It is the default provenance for every declared record.
const CoordinateSourceManual = "manual"

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the point lies within valid geographic range.
func (c Coordinates) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Longitude)
	}
	return nil
}

// AttractionRecord is one point of interest in the canonical catalog.
//
// The ID is globally unique across all provinces and is the stable identity
// key used for upsert matching during synchronization. Records are never
// deleted; deactivation is modeled via IsActive.
type AttractionRecord struct {
	// ID is the globally unique identifier, e.g. "ang-thong-001".
	ID string `json:"id"`

	// Name is the native-script display name.
	Name string `json:"name"`

	// NameEn is the English display name.
	NameEn string `json:"nameEn"`

	// Description is free text about the attraction.
	Description string `json:"description"`

	// Coordinates locate the attraction.
	Coordinates Coordinates `json:"coordinates"`

	// Category is the primary tag, retained for backward compatibility
	// with provinces that predate the Categories set.
	Category string `json:"category"`

	// Categories is the full tag set. When empty the primary Category is
	// the sole effective tag; when present it must contain Category.
	Categories []string `json:"categories,omitempty"`

	// Province, District and Address are administrative location strings.
	Province string `json:"province"`
	District string `json:"district"`
	Address  string `json:"address"`

	// CheckInRadius is the proximity tolerance in meters consumed by the
	// check-in verifier.
	CheckInRadius float64 `json:"checkInRadius"`

	// Thumbnail is the media object key, empty when the record has none.
	Thumbnail string `json:"thumbnail,omitempty"`

	// IsActive controls visibility in catalog-wide queries. Inactive
	// records stay retrievable by direct id lookup.
	IsActive bool `json:"isActive"`

	// CreatedAt and UpdatedAt are record timestamps; UpdatedAt is
	// refreshed on every mutation.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// CoordinateSource tracks coordinate provenance, "manual" by default.
	CoordinateSource string `json:"coordinateSource,omitempty"`
}

// SyncKey returns the stable upsert identity of the record.
func (r AttractionRecord) SyncKey() string {
	return r.ID
}

// EffectiveCategories returns the record's tag set, deriving it from the
// primary category when the set is absent.
func (r AttractionRecord) EffectiveCategories() []string {
	if len(r.Categories) == 0 {
		return []string{r.Category}
	}
	return r.Categories
}

// HasCategory reports whether the tag matches the primary category or is
// contained in the category set.
func (r AttractionRecord) HasCategory(category string) bool {
	if r.Category == category {
		return true
	}
	for _, c := range r.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Matches reports whether the term is a case-insensitive substring of the
// record's name, English name, or description. An empty term matches.
func (r AttractionRecord) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Name), term) ||
		strings.Contains(strings.ToLower(r.NameEn), term) ||
		strings.Contains(strings.ToLower(r.Description), term)
}

// Validate checks the minimum field constraints the persistent store
// enforces. A record failing validation is skipped during sync, never
// silently stored.
func (r AttractionRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("missing id")
	}
	if r.Name == "" {
		return fmt.Errorf("missing name")
	}
	if r.NameEn == "" {
		return fmt.Errorf("missing english name")
	}
	if err := r.Coordinates.Validate(); err != nil {
		return err
	}
	if r.Category == "" {
		return fmt.Errorf("missing category")
	}
	if len(r.Categories) > 0 {
		found := false
		for _, c := range r.Categories {
			if c == r.Category {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("primary category %q not in categories set", r.Category)
		}
	}
	if r.CheckInRadius <= 0 {
		return fmt.Errorf("check-in radius must be positive, got %v", r.CheckInRadius)
	}
	return nil
}
