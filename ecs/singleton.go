package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton provides access to a single component instance that is not
// attached to an entity: match state, input snapshots, render targets.
type Singleton[T any] struct {
	storage       *Storage
	componentPtr  unsafe.Pointer
	componentType reflect.Type
}

// NewSingleton returns an accessor for the singleton of type T, creating it
// from initializer (or the zero value) when storage does not hold one yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	componentType := reflect.TypeFor[T]()

	entry := storage.getSingletonEntry(componentType)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
		entry = storage.getSingletonEntry(componentType)
	}

	return &Singleton[T]{
		storage:       storage,
		componentPtr:  entry.dataPtr,
		componentType: componentType,
	}
}

// Init binds the accessor to storage. Called by the Scheduler on Register.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentType = reflect.TypeFor[T]()
	s.updateCache()
}

// Get returns a pointer to the singleton component, or nil if it has not
// been added to storage.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	return (*T)(s.componentPtr)
}

// Exists returns true if the singleton component has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(s.componentType); entry != nil {
		s.componentPtr = entry.dataPtr
	} else {
		s.componentPtr = nil
	}
}
