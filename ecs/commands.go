package ecs

import "reflect"

// Commands buffers structural changes and callbacks queued by systems. The
// Scheduler flushes them once every system of a pass has run, so queries
// never observe entities moving between archetypes mid-pass.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues fn to run after the structural changes of the pass.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues an entity deletion.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{entity: entity, component: component})
}

// RemoveComponent queues a component removal.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{entity: entity, compType: compType})
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies the queue to storage in the order deletes, removes, adds,
// spawns, defers, then empties it. Removes and adds aimed at an entity
// deleted in the same flush are dropped.
func (c *Commands) Flush(storage *Storage) {
	if c.Pending() == 0 {
		return
	}

	var deleted map[EntityId]struct{}
	if len(c.deletes) > 0 {
		deleted = make(map[EntityId]struct{}, len(c.deletes))
		for _, id := range c.deletes {
			storage.Delete(id)
			deleted[id] = struct{}{}
		}
	}

	for _, cmd := range c.removes {
		if _, gone := deleted[cmd.entity]; !gone {
			storage.RemoveComponent(cmd.entity, cmd.compType)
		}
	}

	for _, cmd := range c.adds {
		if _, gone := deleted[cmd.entity]; !gone {
			storage.AddComponent(cmd.entity, cmd.component)
		}
	}

	for _, components := range c.spawns {
		storage.Spawn(components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.spawns)
	clear(c.defers)
	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
