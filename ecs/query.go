package ecs

import (
	"iter"
)

// Query wraps a View with a per-frame cache. The Scheduler calls Execute on
// every Query field of a system right before that system runs, so systems
// only ever see a snapshot taken at the start of their own Execute.
type Query[T any] struct {
	view               *View[T]
	storage            *Storage
	cachedArchetypes   []*Archetype
	lastArchetypeCount int

	cachedEntities   []EntityId
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a new Query with archetype-level caching.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cachedArchetypes = nil
	q.lastArchetypeCount = -1
	q.cacheValid = false
}

// Execute rebuilds the entity and component caches.
func (q *Query[T]) Execute() {
	if count := q.storage.archetypes.Len(); count != q.lastArchetypeCount {
		q.cachedArchetypes = nil
		q.lastArchetypeCount = count
	}

	if q.cachedArchetypes == nil {
		q.cachedArchetypes = make([]*Archetype, 0)
		for archetype := range q.storage.archetypes.Values() {
			if q.view.matchesArchetype(archetype) {
				q.cachedArchetypes = append(q.cachedArchetypes, archetype)
			}
		}
	}

	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]

	for _, archetype := range q.cachedArchetypes {
		for id, item := range q.view.iterArchetype(archetype) {
			q.cachedEntities = append(q.cachedEntities, id)
			q.cachedComponents = append(q.cachedComponents, item)
		}
	}

	q.cacheValid = true
}

// Iter returns an iterator over the cached component data.
// Panics if Execute() has not been called.
func (q *Query[T]) Iter() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Entries returns an iterator over entity IDs and component data.
// Panics if Execute() has not been called.
func (q *Query[T]) Entries() iter.Seq2[EntityId, T] {
	if !q.cacheValid {
		panic("Query.Entries() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Len returns the number of cached entities.
func (q *Query[T]) Len() int {
	return len(q.cachedEntities)
}
