package ecs

import (
	"sort"
)

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []string
}

// ArchetypeStats describes one archetype.
type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
}

// CollectStats walks the storage and summarizes archetypes and singletons.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		ArchetypeCount: s.archetypes.Len(),
		SingletonCount: len(s.singletons),
	}

	for archetype := range s.archetypes.Values() {
		arch := ArchetypeStats{
			ID:          archetype.ID(),
			EntityCount: archetype.Len(),
		}
		for _, typ := range archetype.Types() {
			arch.ComponentTypes = append(arch.ComponentTypes, typ.String())
		}
		stats.TotalEntityCount += arch.EntityCount
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, arch)
	}
	sort.Slice(stats.ArchetypeBreakdown, func(i, j int) bool {
		return stats.ArchetypeBreakdown[i].ID < stats.ArchetypeBreakdown[j].ID
	})

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
