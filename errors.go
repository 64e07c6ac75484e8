package fennecs

import "fmt"

// The errors below describe programmer errors. The world raises them with panic;
// none of them is a condition callers are expected to recover from.

type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world is currently locked: use the Enqueue variants or finish the stream first"
}

type ComponentCapacityError struct {
	Component string
	Index     uint32
}

func (e ComponentCapacityError) Error() string {
	return fmt.Sprintf("component %s got index %d, world supports at most %d component types", e.Component, e.Index, MaxComponents)
}

type ComponentNotFoundError struct {
	Index uint32
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component index %d is not part of the entity layout", e.Index)
}

type UnregisteredComponentError struct {
	Index uint32
}

func (e UnregisteredComponentError) Error() string {
	return fmt.Sprintf("no vtable registered for component index %d", e.Index)
}

type ComponentValueError struct {
	Component string
	Value     any
}

func (e ComponentValueError) Error() string {
	return fmt.Sprintf("value of type %T cannot initialize component %s", e.Value, e.Component)
}

type StaleHandleError struct {
	ID EntityID
}

func (e StaleHandleError) Error() string {
	return fmt.Sprintf("handle to entity %v is stale: re-acquire it after structural changes", e.ID)
}

type NullHandleError struct{}

func (e NullHandleError) Error() string {
	return "null entity handle"
}

type ForeignHandleError struct {
	ID EntityID
}

func (e ForeignHandleError) Error() string {
	return fmt.Sprintf("handle to entity %v belongs to another world", e.ID)
}

type CacheCapacityError struct {
	Index    uint32
	Capacity int
}

func (e CacheCapacityError) Error() string {
	return fmt.Sprintf("cache index %d exceeds capacity (%d)", e.Index, e.Capacity)
}
