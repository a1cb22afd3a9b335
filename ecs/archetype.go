package ecs

import (
	"reflect"
	"slices"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity sharing one exact set of component types.
// Each component type gets its own column; an entity index addresses the
// same slot in every column.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []componentStorage
}

// NewArchetype creates a new archetype with the given ID and sorted component types
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]componentStorage, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

// Spawn appends the components to their columns and returns the entity index.
func (a *Archetype) Spawn(components []any) uint32 {
	var index int
	for _, comp := range components {
		compType := reflect.TypeOf(comp)
		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}

		if idx := a.column(compType); idx >= 0 {
			index = a.storages[idx].Append(comp)
		}
	}

	return uint32(index)
}

// GetComponent returns a pointer to the component of the given type for the
// entity at entityIndex, or nil.
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	idx := a.column(compType)
	if idx == -1 {
		return nil
	}
	return a.storages[idx].Get(int(entityIndex))
}

// Delete frees the entity's slot in every column. Other indices stay stable.
func (a *Archetype) Delete(entityIndex uint32) {
	for _, storage := range a.storages {
		storage.Delete(int(entityIndex))
	}
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.storages) == 0 {
		return 0
	}
	return a.storages[0].Len()
}

// Iter returns an iterator over all valid EntityIds in this archetype
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}

		for index := range a.storages[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

func (a *Archetype) alive(entityIndex uint32) bool {
	return len(a.storages) > 0 && a.storages[0].Has(int(entityIndex))
}

func (a *Archetype) column(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}
