package ecs

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage owns every archetype and singleton of one ECS world.
type Storage struct {
	archetypes *intmap.Map[uint32, *Archetype]
	singletons map[reflect.Type]*singletonEntry
	registry   *ComponentRegistry
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: make(map[reflect.Type]*singletonEntry),
		registry:   registry,
	}
}

// GetArchetype returns an archetype storage (if one exists)
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	archetype, _ := s.archetypes.Get(hashTypesToUint32(types))
	return archetype
}

// Archetypes returns an iterator over every archetype in storage.
func (s *Storage) Archetypes() func(yield func(*Archetype) bool) {
	return s.archetypes.Values()
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetypeId := hashTypesToUint32(types)

	archetype, exists := s.archetypes.Get(archetypeId)
	if !exists {
		archetype = NewArchetype(archetypeId, types, s.registry)
		s.archetypes.Put(archetypeId, archetype)
	}

	entityIndex := archetype.Spawn(components)
	return NewEntityId(archetypeId, entityIndex)
}

// Delete removes all data related to the entity ID
func (s *Storage) Delete(id EntityId) {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return
	}
	archetype.Delete(id.Index())
}

// AddComponent moves the entity to the archetype that also holds compType and
// returns its new ID.
func (s *Storage) AddComponent(id EntityId, component any) EntityId {
	oldArchetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok || !oldArchetype.alive(id.Index()) {
		return 0
	}

	compType := reflect.TypeOf(component)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	newTypes := make([]reflect.Type, 0, len(oldArchetype.types)+1)
	newTypes = append(newTypes, oldArchetype.types...)
	newTypes = append(newTypes, compType)
	sort.Sort(byTypeName(newTypes))

	components := make([]any, 0, len(newTypes))
	for _, typ := range newTypes {
		if typ == compType {
			components = append(components, component)
		} else {
			components = append(components, oldArchetype.GetComponent(id.Index(), typ))
		}
	}

	return s.move(id, oldArchetype, newTypes, components)
}

// RemoveComponent moves the entity to the archetype without compType and
// returns its new ID. Removing the last component deletes the entity.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) EntityId {
	oldArchetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok || !oldArchetype.alive(id.Index()) {
		return 0
	}

	newTypes := make([]reflect.Type, 0, len(oldArchetype.types))
	components := make([]any, 0, len(oldArchetype.types))
	for _, typ := range oldArchetype.types {
		if typ != compType {
			newTypes = append(newTypes, typ)
			components = append(components, oldArchetype.GetComponent(id.Index(), typ))
		}
	}

	if len(newTypes) == 0 {
		oldArchetype.Delete(id.Index())
		return 0
	}

	return s.move(id, oldArchetype, newTypes, components)
}

func (s *Storage) move(id EntityId, from *Archetype, types []reflect.Type, components []any) EntityId {
	archetypeId := hashTypesToUint32(types)
	archetype, exists := s.archetypes.Get(archetypeId)
	if !exists {
		archetype = NewArchetype(archetypeId, types, s.registry)
		s.archetypes.Put(archetypeId, archetype)
	}

	newIndex := archetype.Spawn(components)
	from.Delete(id.Index())
	return NewEntityId(archetypeId, newIndex)
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return false
	}
	return archetype.HasComponent(compType)
}

// AddSingleton stores value as the singleton of its type, replacing any
// previous one. Singletons do not need to be registered.
func (s *Storage) AddSingleton(value any) {
	typ := reflect.TypeOf(value)
	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[typ] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
}

// ReadSingleton points *target at the stored singleton. target must be a
// pointer to a pointer, e.g. **GameConfig. Returns false if no singleton of
// that type exists.
func (s *Storage) ReadSingleton(target any) bool {
	out := reflect.ValueOf(target)
	if out.Kind() != reflect.Ptr || out.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.getSingletonEntry(out.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	out.Elem().Set(entry.value)
	return true
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	return s.singletons[typ]
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := reflect.TypeOf(comp)
		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}

		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 generates a FNV-1a hash over the identity of sorted types.
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		ptr := uintptr((*iface)(unsafe.Pointer(&t)).data)
		val := uint32(ptr)
		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uint64(ptr) >> 32)
		}

		h ^= val
		h *= prime
	}

	return h
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the typed component of an entity, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
