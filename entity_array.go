package fennecs

import (
	"iter"

	"github.com/TheBitDrifter/fennecs/internal/list"
	"github.com/TheBitDrifter/mask"
)

// EntityArray groups every entity of one archetype. All of its nodes share the
// array's layout.
type EntityArray struct {
	link      list.Node[*EntityArray]
	archetype EntityArchetype
	layout    EntityLayout
	entities  list.List[*entityNode]
	world     *World
}

func (a *EntityArray) Archetype() EntityArchetype {
	return a.archetype
}

func (a *EntityArray) Layout() EntityLayout {
	return a.layout
}

func (a *EntityArray) Len() int {
	return a.entities.Len()
}

// insert appends the node at the tail of the array.
func (a *EntityArray) insert(n *entityNode) {
	n.array = a
	a.entities.PushBack(&n.link)
}

func (a *EntityArray) remove(n *entityNode) {
	a.entities.Remove(&n.link)
}

// Handles yields a handle for every entity in insertion order.
func (a *EntityArray) Handles() iter.Seq[EntityHandle] {
	return func(yield func(EntityHandle) bool) {
		for n := range a.entities.All() {
			if !yield(n.handle()) {
				return
			}
		}
	}
}

// EntityRegistry keeps every EntityArray ever created, in creation order.
// Arrays are never removed, even when they become empty.
type EntityRegistry struct {
	arrays list.List[*EntityArray]
	byMask map[mask.Mask]*EntityArray
	world  *World
}

func newEntityRegistry(w *World, indexed bool) EntityRegistry {
	r := EntityRegistry{world: w}
	if indexed {
		r.byMask = make(map[mask.Mask]*EntityArray)
	}
	return r
}

// FindArray returns the array for exactly this archetype, or nil.
func (r *EntityRegistry) FindArray(archetype EntityArchetype) *EntityArray {
	if r.byMask != nil {
		return r.byMask[archetype.mask]
	}
	for a := range r.arrays.All() {
		if archetype.Equals(a.archetype) {
			return a
		}
	}
	return nil
}

// AddArray creates and appends an array. The caller guarantees none exists yet
// for the archetype.
func (r *EntityRegistry) AddArray(archetype EntityArchetype, layout EntityLayout) *EntityArray {
	a := &EntityArray{
		archetype: archetype,
		layout:    layout,
		world:     r.world,
	}
	a.link.Init(a)
	r.arrays.PushBack(&a.link)
	if r.byMask != nil {
		r.byMask[archetype.mask] = a
	}
	return a
}

func (r *EntityRegistry) Len() int {
	return r.arrays.Len()
}

func (r *EntityRegistry) All() iter.Seq[*EntityArray] {
	return r.arrays.All()
}
