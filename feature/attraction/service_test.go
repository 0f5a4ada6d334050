package attraction

import (
	"context"
	"sync"
	"testing"

	"attraction-catalog/core/syncer"
	"attraction-catalog/feature/attraction/regions"
	"attraction-catalog/feature/attraction/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStore is an in-memory syncer.Store for service-level tests.
type memoryStore struct {
	mu   sync.Mutex
	rows map[string]syncer.Record
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: make(map[string]syncer.Record)}
}

func (s *memoryStore) FindByKey(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rows[key]
	return ok, nil
}

func (s *memoryStore) Insert(_ context.Context, rec syncer.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[rec.SyncKey()] = rec
	return nil
}

func (s *memoryStore) Update(_ context.Context, rec syncer.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[rec.SyncKey()] = rec
	return nil
}

func newTestService(t *testing.T, store syncer.Store) *Service {
	t.Helper()
	reg, err := registry.New(regions.Providers()...)
	require.NoError(t, err)
	return NewService(reg, store, zap.NewNop())
}

func TestService_SyncAll(t *testing.T) {
	store := newMemoryStore()
	service := newTestService(t, store)

	report, err := service.SyncAll(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 26, report.Total.Added)
	assert.Equal(t, 0, report.Total.Updated)
	assert.Len(t, report.Provinces, 6)
	assert.Empty(t, report.Errors)
	assert.Len(t, store.rows, 26)

	// A second run updates every record and adds nothing.
	report, err = service.SyncAll(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total.Added)
	assert.Equal(t, 26, report.Total.Updated)
	assert.Len(t, store.rows, 26)
}

func TestService_SyncProvince(t *testing.T) {
	store := newMemoryStore()
	service := newTestService(t, store)

	report, err := service.SyncProvince(context.Background(), "ang-thong", false)
	require.NoError(t, err)

	assert.Equal(t, 7, report.Total.Added)
	assert.Len(t, report.Provinces, 1)
	assert.Equal(t, "อ่างทอง", report.Provinces[0].Province)
	assert.Len(t, store.rows, 7)
}

func TestService_SyncProvince_UnknownKey(t *testing.T) {
	store := newMemoryStore()
	service := newTestService(t, store)

	report, err := service.SyncProvince(context.Background(), "narnia", false)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Total.Added)
	assert.Empty(t, report.Provinces)
	assert.Empty(t, store.rows)
}

func TestService_SyncAll_DryRun(t *testing.T) {
	store := newMemoryStore()
	service := newTestService(t, store)

	report, err := service.SyncAll(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 26, report.Total.Added)
	assert.Empty(t, store.rows)
}

func TestService_CatalogQueries(t *testing.T) {
	service := newTestService(t, newMemoryStore())

	all := service.All()
	assert.Len(t, all, 24)

	rec, ok := service.ByID("ang-thong-001")
	require.True(t, ok)
	assert.Equal(t, "Wat Muang", rec.NameEn)

	assert.Len(t, service.ByProvince("Ang Thong"), 7)
	assert.Len(t, service.ByProvince("angthong"), 7)

	assert.NotEmpty(t, service.Search("wat"))
	assert.NotEmpty(t, service.ByCategory("temple"))
}
