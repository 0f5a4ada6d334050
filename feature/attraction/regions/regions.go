package regions

import (
	"time"

	"attraction-catalog/feature/attraction/registry"
	"attraction-catalog/feature/attraction/shard"
)

// declaredAt is the declaration timestamp stamped on every static record.
var declaredAt = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

// All returns every province shard in fixed declaration order. The order is
// stable but not semantically meaningful; catalog-wide query results follow
// it.
func All() []*shard.Shard {
	return []*shard.Shard{
		AngThong(),
		ChaiNat(),
		Lopburi(),
		SingBuri(),
		SuphanBuri(),
		Ayutthaya(),
	}
}

// Providers adapts the province shards to the registry's provider
// contract, preserving declaration order.
func Providers() []registry.Provider {
	shards := All()
	providers := make([]registry.Provider, 0, len(shards))
	for _, s := range shards {
		providers = append(providers, s)
	}
	return providers
}

// mustShard wraps shard construction for static declarations. A duplicate
// id inside a single province file is a programming error caught the first
// time the process starts, so panicking here is the fail-fast path.
func mustShard(s *shard.Shard, err error) *shard.Shard {
	if err != nil {
		panic(err)
	}
	return s
}
