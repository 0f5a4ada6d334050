package registry

import (
	"fmt"

	"attraction-catalog/feature/attraction/models"
)

// Provider is the contract a province shard fulfills to join the catalog.
// Extra query capabilities are declared through the optional interfaces
// below; the registry checks for them with a type assertion and treats a
// missing capability as "this province contributes nothing to that query"
// rather than erroring.
type Provider interface {
	// Province returns the native-script province name, the canonical
	// alias key.
	Province() string

	// Aliases returns the alternate lookup keys for the province.
	Aliases() []string

	// Records returns the full record sequence in declaration order,
	// inactive records included.
	Records() []models.AttractionRecord
}

// NameSearcher is the optional substring-search capability of a provider.
type NameSearcher interface {
	SearchByName(term string) []models.AttractionRecord
}

// CategoryFilter is the optional category-query capability of a provider.
type CategoryFilter interface {
	ByCategory(category string) []models.AttractionRecord
}

// CoordinateCorrector is the optional in-place coordinate correction
// capability of a provider.
type CoordinateCorrector interface {
	CorrectCoordinates(id string, coords models.Coordinates, source string) (models.AttractionRecord, bool)
}

// Registry composes all province shards into one catalog with a single id
// key space and alias-tolerant province lookup. It is read-only after
// construction apart from coordinate corrections, which are owned by the
// individual shards.
type Registry struct {
	providers []Provider
	byAlias   map[string]Provider
	idOwner   map[string]Provider
}

// New builds the registry from the given providers. It indexes every
// record id once at startup and fails fast on a duplicate id across
// provinces instead of letting first-match lookup silently shadow the
// second occurrence. Alias keys must also be unique across provinces.
func New(providers ...Provider) (*Registry, error) {
	r := &Registry{
		providers: providers,
		byAlias:   make(map[string]Provider),
		idOwner:   make(map[string]Provider),
	}

	for _, p := range providers {
		keys := append([]string{p.Province()}, p.Aliases()...)
		for _, key := range keys {
			if key == "" {
				continue
			}
			if existing, ok := r.byAlias[key]; ok && existing != p {
				return nil, fmt.Errorf("alias %q registered by both %s and %s",
					key, existing.Province(), p.Province())
			}
			r.byAlias[key] = p
		}

		for _, rec := range p.Records() {
			if existing, ok := r.idOwner[rec.ID]; ok {
				return nil, fmt.Errorf("attraction id %q declared in both %s and %s",
					rec.ID, existing.Province(), p.Province())
			}
			r.idOwner[rec.ID] = p
		}
	}

	return r, nil
}

// Providers returns the composed providers in declaration order.
func (r *Registry) Providers() []Provider {
	return r.providers
}

// Resolve returns the provider registered under the alias key, using the
// same three-tier normalization as ByProvince.
func (r *Registry) Resolve(key string) (Provider, bool) {
	return r.resolve(key)
}

// ByProvince resolves the key against the alias map and returns the full
// record sequence of the matching province, inactive records included.
// An unmatched key yields an empty sequence, never an error.
func (r *Registry) ByProvince(key string) []models.AttractionRecord {
	p, ok := r.resolve(key)
	if !ok {
		return nil
	}
	return p.Records()
}

// ByID returns the record with the given id from whichever province
// declares it, active or not.
func (r *Registry) ByID(id string) (models.AttractionRecord, bool) {
	p, ok := r.idOwner[id]
	if !ok {
		return models.AttractionRecord{}, false
	}
	for _, rec := range p.Records() {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.AttractionRecord{}, false
}

// All concatenates every province's active records in declaration order:
// provinces first, records within each province second. The ordering is
// stable but carries no ranking.
func (r *Registry) All() []models.AttractionRecord {
	var out []models.AttractionRecord
	for _, p := range r.providers {
		for _, rec := range p.Records() {
			if rec.IsActive {
				out = append(out, rec)
			}
		}
	}
	return out
}

// Search returns active records across all provinces whose name, English
// name, or description contains the term, case-insensitively. An empty
// term matches every active record. Provinces without the search
// capability contribute nothing.
func (r *Registry) Search(term string) []models.AttractionRecord {
	var out []models.AttractionRecord
	for _, p := range r.providers {
		searcher, ok := p.(NameSearcher)
		if !ok {
			continue
		}
		out = append(out, searcher.SearchByName(term)...)
	}
	return out
}

// ByCategory returns active records across all provinces tagged with the
// category, matching the primary category or the category set. Provinces
// without the category capability contribute nothing.
func (r *Registry) ByCategory(category string) []models.AttractionRecord {
	var out []models.AttractionRecord
	for _, p := range r.providers {
		filter, ok := p.(CategoryFilter)
		if !ok {
			continue
		}
		out = append(out, filter.ByCategory(category)...)
	}
	return out
}

// CorrectCoordinates routes a coordinate correction to the province that
// owns the id. It reports false when the id is unknown or the owning
// province does not support corrections.
func (r *Registry) CorrectCoordinates(id string, coords models.Coordinates, source string) (models.AttractionRecord, bool) {
	p, ok := r.idOwner[id]
	if !ok {
		return models.AttractionRecord{}, false
	}
	corrector, ok := p.(CoordinateCorrector)
	if !ok {
		return models.AttractionRecord{}, false
	}
	return corrector.CorrectCoordinates(id, coords, source)
}

// Provinces returns the canonical province names in declaration order.
func (r *Registry) Provinces() []string {
	out := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, p.Province())
	}
	return out
}
