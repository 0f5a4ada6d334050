package attraction

import (
	"context"

	"attraction-catalog/core/syncer"
	"attraction-catalog/feature/attraction/models"
	"attraction-catalog/feature/attraction/registry"

	"go.uber.org/zap"
)

// Service wires the catalog registry to the synchronization engine and
// exposes the operations the CLI and HTTP surfaces consume.
type Service struct {
	registry *registry.Registry
	engine   *syncer.Engine
	logger   *zap.Logger
}

// NewService creates the attraction service. The store may be nil for
// read-only surfaces that never run a sync.
func NewService(reg *registry.Registry, store syncer.Store, logger *zap.Logger) *Service {
	return &Service{
		registry: reg,
		engine:   syncer.New(store, logger),
		logger:   logger,
	}
}

// SyncAll reconciles every province into the persistent store.
func (s *Service) SyncAll(ctx context.Context, dryRun bool) (*syncer.Report, error) {
	batches := make([]syncer.Batch, 0, len(s.registry.Providers()))
	for _, p := range s.registry.Providers() {
		batches = append(batches, toBatch(p))
	}
	return s.engine.Run(ctx, batches, syncer.Options{DryRun: dryRun})
}

// SyncProvince reconciles a single province resolved by alias key. An
// unknown key yields an empty run, consistent with catalog lookup
// semantics.
func (s *Service) SyncProvince(ctx context.Context, key string, dryRun bool) (*syncer.Report, error) {
	p, ok := s.registry.Resolve(key)
	if !ok {
		s.logger.Warn("No province matches sync key", zap.String("key", key))
		return s.engine.Run(ctx, nil, syncer.Options{DryRun: dryRun})
	}
	return s.engine.Run(ctx, []syncer.Batch{toBatch(p)}, syncer.Options{DryRun: dryRun})
}

// All returns every active record across the catalog.
func (s *Service) All() []models.AttractionRecord {
	return s.registry.All()
}

// ByID returns the record with the given id, active or not.
func (s *Service) ByID(id string) (models.AttractionRecord, bool) {
	return s.registry.ByID(id)
}

// ByProvince returns a province's full record sequence by alias key.
func (s *Service) ByProvince(key string) []models.AttractionRecord {
	return s.registry.ByProvince(key)
}

// Search returns active records matching the term.
func (s *Service) Search(term string) []models.AttractionRecord {
	return s.registry.Search(term)
}

// ByCategory returns active records tagged with the category.
func (s *Service) ByCategory(category string) []models.AttractionRecord {
	return s.registry.ByCategory(category)
}

// toBatch adapts a province provider into an engine batch, preserving
// declaration order.
func toBatch(p registry.Provider) syncer.Batch {
	records := p.Records()
	batch := syncer.Batch{
		Province: p.Province(),
		Records:  make([]syncer.Record, 0, len(records)),
	}
	for _, rec := range records {
		batch.Records = append(batch.Records, rec)
	}
	return batch
}
