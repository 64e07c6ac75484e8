package fennecs

import "unsafe"

// EntityHandle is a transient, non-owning view of one entity: its archetype, its
// layout and its storage node. Any attach, detach or removal of the entity
// invalidates every handle taken before it; using such a handle panics with
// StaleHandleError. The zero value is the null handle.
type EntityHandle struct {
	archetype *EntityArchetype
	layout    *EntityLayout
	node      *entityNode
	version   uint32
}

// NullHandle signals "no such entity" and the end of a stream.
var NullHandle = EntityHandle{}

func (h EntityHandle) IsNull() bool {
	return h.node == nil
}

// Valid reports whether h references an entity that has not changed since h was taken.
func (h EntityHandle) Valid() bool {
	return h.node != nil && h.node.version == h.version
}

// IsEqual reports whether both handles view the same entity storage.
func (h EntityHandle) IsEqual(other EntityHandle) bool {
	return h.node == other.node && h.version == other.version
}

func (h EntityHandle) ID() EntityID {
	h.check()
	return h.node.id
}

func (h EntityHandle) Archetype() EntityArchetype {
	h.check()
	return *h.archetype
}

func (h EntityHandle) Layout() EntityLayout {
	h.check()
	return *h.layout
}

// Has reports whether the entity has the component.
func (h EntityHandle) Has(c Component) bool {
	h.check()
	idx, ok := h.world().components.lookup(c)
	return ok && h.archetype.Has(idx)
}

// Array returns the array currently holding the entity.
func (h EntityHandle) Array() *EntityArray {
	h.check()
	return h.node.array
}

func (h EntityHandle) world() *World {
	return h.node.array.world
}

func (h EntityHandle) check() {
	if h.node == nil {
		panic(NullHandleError{})
	}
	if h.node.version != h.version {
		panic(StaleHandleError{ID: h.node.id})
	}
}

func (h EntityHandle) component(c Component) unsafe.Pointer {
	h.check()
	idx := h.world().components.index(c)
	return h.node.at(h.layout.Offset(idx))
}
