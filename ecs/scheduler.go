package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// storageBinder is implemented by Query and Singleton fields.
type storageBinder interface {
	Init(storage *Storage)
}

// queryRefresher is implemented by Query fields.
type queryRefresher interface {
	Execute()
}

type registeredSystem struct {
	system  System
	queries []queryRefresher
	stats   *systemStatsInternal
}

// Scheduler manages and executes systems in order.
type Scheduler struct {
	storage  *Storage
	systems  []*registeredSystem
	commands *Commands
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage:  storage,
		commands: newCommands(),
	}
}

// Register adds a system to the scheduler and initializes its Query and
// Singleton fields.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systems = append(s.systems, &registeredSystem{
		system:  system,
		queries: s.bindFields(system),
		stats: &systemStatsInternal{
			name:        systemType.Name(),
			minDuration: time.Duration(1<<63 - 1),
		},
	})
}

func (s *Scheduler) bindFields(system System) []queryRefresher {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	var queries []queryRefresher
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		binder, ok := field.Addr().Interface().(storageBinder)
		if !ok {
			continue
		}
		binder.Init(s.storage)

		if query, ok := binder.(queryRefresher); ok {
			queries = append(queries, query)
		}
	}

	return queries
}

// Once executes all registered systems once with the given delta time, then
// flushes the commands they queued.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage, s.commands)

	for _, registered := range s.systems {
		start := time.Now()
		for _, query := range registered.queries {
			query.Execute()
		}
		registered.system.Execute(frame)
		duration := time.Since(start)

		stats := registered.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		stats.minDuration = min(stats.minDuration, duration)
		stats.maxDuration = max(stats.maxDuration, duration)
	}

	s.commands.Flush(s.storage)
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}

	for i, registered := range s.systems {
		internal := registered.stats
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		stats.TotalExecutions += internal.executionCount
	}

	return stats
}
