package fennecs

import "github.com/TheBitDrifter/table"

var _ Component = AccessibleComponent[struct{}]{}

// AccessibleComponent extends a base Component with typed access to its data
// It provides methods to retrieve components through handles and streams
type AccessibleComponent[T any] struct {
	table.ElementType
	ops *vtable
}

func (c AccessibleComponent[T]) vtable() *vtable {
	return c.ops
}

// GetFromHandle retrieves the component value of the entity referenced by the handle.
// It panics when the handle is stale or the entity lacks the component.
func (c AccessibleComponent[T]) GetFromHandle(h EntityHandle) *T {
	return (*T)(h.component(c))
}

// GetFromHandleSafe retrieves the component value if the entity has it.
func (c AccessibleComponent[T]) GetFromHandleSafe(h EntityHandle) (bool, *T) {
	if !h.Has(c) {
		return false, nil
	}
	return true, c.GetFromHandle(h)
}

// CheckHandle determines if the entity referenced by the handle has the component
func (c AccessibleComponent[T]) CheckHandle(h EntityHandle) bool {
	return h.Has(c)
}

// Set overwrites the component value of the entity referenced by the handle.
func (c AccessibleComponent[T]) Set(h EntityHandle, value T) {
	*c.GetFromHandle(h) = value
}
