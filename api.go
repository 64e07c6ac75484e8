package fennecs

import (
	"iter"
)

var _ Store = &World{}

// Store is the surface scene code programs against. World implements it.
type Store interface {
	AddEntity() EntityHandle
	NewEntities(int, ...Component) []EntityHandle
	RemoveEntity(EntityHandle)
	Attach(EntityHandle, Component) EntityHandle
	AttachWithValue(EntityHandle, Component, any) EntityHandle
	Detach(EntityHandle, Component) EntityHandle
	Query(...Component) *EntityStream
	QueryWhere(QueryNode) *EntityStream
	Entity(EntityID) EntityHandle
	Alive(EntityID) bool
	Len() int

	EnqueueNewEntities(int, ...Component)
	EnqueueRemoveEntity(EntityHandle)
	EnqueueAttach(EntityHandle, Component, any)
	EnqueueDetach(EntityHandle, Component)
	Locked() bool
	AddLock(uint32)
	RemoveLock(uint32)
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(archetype EntityArchetype, world *World) bool
}

type iStream interface {
	Next() EntityHandle
	All() iter.Seq[EntityHandle]
	Close()
}

var _ iStream = &EntityStream{}

type Cache[T any] interface {
	GetItem(uint32) (T, bool)
	Register(uint32, T) error
	Len() int
}

// SimpleCache is a bounded, index-addressed cache. Slots are populated lazily.
type SimpleCache[T any] struct {
	items       []T
	present     []bool
	count       int
	maxCapacity int
}
