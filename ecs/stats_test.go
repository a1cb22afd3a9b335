package ecs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorageStats(t *testing.T) {
	registry := NewComponentRegistry()
	RegisterComponent[int](registry)
	RegisterComponent[string](registry)
	RegisterComponent[float64](registry)

	storage := NewStorage(registry)

	stats := storage.CollectStats()
	assert.Equal(t, 0, stats.ArchetypeCount)
	assert.Equal(t, 0, stats.TotalEntityCount)
	assert.Equal(t, 0, stats.SingletonCount)

	storage.Spawn(42, "hello")
	storage.Spawn(100, "world")
	storage.Spawn(200.0, "test")

	NewSingleton[float64](storage, 3.14)
	NewSingleton[string](storage, "singleton")

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 2, stats.SingletonCount)
	assert.Equal(t, []string{"float64", "string"}, stats.SingletonTypes)

	counts := map[int]bool{}
	for _, arch := range stats.ArchetypeBreakdown {
		counts[arch.EntityCount] = true
		assert.Len(t, arch.ComponentTypes, 2)
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, counts)
}

type sleepSystem struct {
	executeCount int
	sleepDur     time.Duration
}

func (s *sleepSystem) Execute(frame *UpdateFrame) {
	s.executeCount++
	time.Sleep(s.sleepDur)
}

func TestSchedulerStats(t *testing.T) {
	storage := NewStorage(NewComponentRegistry())
	scheduler := NewScheduler(storage)

	stats := scheduler.GetStats()
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)

	sys1 := &sleepSystem{sleepDur: time.Millisecond}
	sys2 := &sleepSystem{sleepDur: 2 * time.Millisecond}
	scheduler.Register(sys1)
	scheduler.Register(sys2)

	scheduler.Once(0.016)
	scheduler.Once(0.016)
	scheduler.Once(0.016)

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)

	for _, sysStats := range stats.Systems {
		assert.Equal(t, "sleepSystem", sysStats.Name)
		assert.Equal(t, int64(3), sysStats.ExecutionCount)
		assert.NotZero(t, sysStats.MinDuration)
		assert.NotZero(t, sysStats.LastDuration)
		assert.LessOrEqual(t, sysStats.MinDuration, sysStats.AvgDuration)
		assert.LessOrEqual(t, sysStats.AvgDuration, sysStats.MaxDuration)
	}

	assert.Equal(t, 3, sys1.executeCount)
	assert.Equal(t, 3, sys2.executeCount)
}
