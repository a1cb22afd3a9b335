package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage has its own registry, so independent worlds never share types
// by accident.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStorage),
	}
}

// RegisterComponent registers a component type with the given registry.
// Entities can only be spawned with registered component types.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() componentStorage {
		return &blockStorage[T]{}
	}
}

// Registered reports whether the component type has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentStorage {
	return r.factories[t]
}

// componentStorage is a type-erased column of components inside an archetype.
type componentStorage interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

const blockSize = 64

// blockStorage keeps components of type T in fixed-size blocks so pointers
// handed out by Get stay valid while the column grows.
type blockStorage[T any] struct {
	blocks    [][blockSize]T
	filled    [][blockSize]bool
	freeSlots []int
	nextIndex int
}

func (cs *blockStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(cs.freeSlots); n > 0 {
		index = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		index = cs.nextIndex
		cs.nextIndex++
		if index/blockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, [blockSize]T{})
			cs.filled = append(cs.filled, [blockSize]bool{})
		}
	}

	cs.blocks[index/blockSize][index%blockSize] = value
	cs.filled[index/blockSize][index%blockSize] = true
	return index
}

func (cs *blockStorage[T]) Get(index int) any {
	if !cs.Has(index) {
		return nil
	}
	return &cs.blocks[index/blockSize][index%blockSize]
}

func (cs *blockStorage[T]) Delete(index int) {
	if !cs.Has(index) {
		return
	}
	var zero T
	cs.blocks[index/blockSize][index%blockSize] = zero
	cs.filled[index/blockSize][index%blockSize] = false
	cs.freeSlots = append(cs.freeSlots, index)
}

func (cs *blockStorage[T]) Has(index int) bool {
	if index < 0 || index/blockSize >= len(cs.filled) {
		return false
	}
	return cs.filled[index/blockSize][index%blockSize]
}

// Len returns the number of live components.
func (cs *blockStorage[T]) Len() int {
	return cs.nextIndex - len(cs.freeSlots)
}

func (cs *blockStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if cs.filled[i/blockSize][i%blockSize] && !yield(i) {
				return
			}
		}
	}
}
