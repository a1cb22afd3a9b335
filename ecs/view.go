package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View represents a query for entities with a specific combination of components
// The type T should be a struct with embedded pointer fields for each component type
// Named fields can be marked as optional using the `ecs:"optional"` struct tag
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
}

// NewView creates a new view for the given struct type.
// Embedded fields are always required; named fields may carry `ecs:"optional"`.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{
		storage:     storage,
		types:       make([]reflect.Type, 0, structType.NumField()),
		optional:    make([]bool, 0, structType.NumField()),
		fieldOffset: make([]uintptr, 0, structType.NumField()),
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	return v
}

// Fill populates ptr with component pointers for the given entity.
// Returns false if the entity is missing any required component.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	archetype, ok := v.storage.archetypes.Get(id.ArchetypeId())
	if !ok {
		return false
	}
	return v.populateResult(unsafe.Pointer(ptr), archetype, int(id.Index()), v.buildStorageIndices(archetype))
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// matchesArchetype checks if an archetype contains all required component types.
func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for i, requiredType := range v.types {
		if v.optional[i] {
			continue
		}
		if !archetype.HasComponent(requiredType) {
			return false
		}
	}
	return true
}

func (v *View[T]) buildStorageIndices(archetype *Archetype) []int {
	storageIndices := make([]int, len(v.types))
	for i, componentType := range v.types {
		storageIndices[i] = archetype.column(componentType)
	}
	return storageIndices
}

func (v *View[T]) populateResult(resultPtr unsafe.Pointer, archetype *Archetype, entityIndex int, storageIndices []int) bool {
	for i, storageIdx := range storageIndices {
		fieldPtr := unsafe.Pointer(uintptr(resultPtr) + v.fieldOffset[i])

		var component any
		if storageIdx != -1 {
			component = archetype.storages[storageIdx].Get(entityIndex)
		}

		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}
	return true
}

func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		if len(archetype.storages) == 0 {
			return
		}

		storageIndices := v.buildStorageIndices(archetype)

		var result T
		resultPtr := unsafe.Pointer(&result)

		for entityIndex := range archetype.storages[0].Iter() {
			if !v.populateResult(resultPtr, archetype, entityIndex, storageIndices) {
				continue
			}
			if !yield(NewEntityId(archetype.id, uint32(entityIndex)), result) {
				return
			}
		}
	}
}

// Iter returns an iterator over all entities that have the required components.
// Optional components are set to nil if not present.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for archetype := range v.storage.archetypes.Values() {
			if !v.matchesArchetype(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs)
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
