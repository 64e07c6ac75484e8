package fennecs

import (
	"reflect"
	"unsafe"

	"github.com/TheBitDrifter/table"
)

// MaxComponents is the number of distinct component types one world can index.
// Indexing a component at or past this bound panics with ComponentCapacityError.
const MaxComponents = 64

// Component represents a data attribute/state that can be attached to entities
// Components can be used to create queries for entities
type Component interface {
	table.ElementType
	vtable() *vtable
}

// Destroyer is implemented by component types that must release something when an
// instance is destroyed. Destroy runs exactly once per logical instance: when the
// entity is removed or the component is detached. Relocation during attach/detach
// never calls it.
type Destroyer interface {
	Destroy()
}

// vtable holds the type-erased operations for one component type.
type vtable struct {
	typ  reflect.Type
	size uintptr

	// relocate copies one instance from src to dst. src is left intact.
	relocate func(src, dst unsafe.Pointer)
	// destroy runs the Destroyer hook, if any, and zeroes the slot.
	destroy func(ptr unsafe.Pointer)
	// construct stores value (a T, or nil for the zero value) at ptr.
	construct func(ptr unsafe.Pointer, value any)
	// accepts reports whether construct would take value.
	accepts func(value any) bool
}

func newVTable[T any]() *vtable {
	var zero T
	return &vtable{
		typ:  reflect.TypeOf((*T)(nil)).Elem(),
		size: unsafe.Sizeof(zero),
		relocate: func(src, dst unsafe.Pointer) {
			*(*T)(dst) = *(*T)(src)
		},
		destroy: func(ptr unsafe.Pointer) {
			p := (*T)(ptr)
			if d, ok := any(p).(Destroyer); ok {
				d.Destroy()
			}
			*p = zero
		},
		construct: func(ptr unsafe.Pointer, value any) {
			if value == nil {
				*(*T)(ptr) = zero
				return
			}
			*(*T)(ptr) = value.(T)
		},
		accepts: func(value any) bool {
			if value == nil {
				return true
			}
			_, ok := value.(T)
			return ok
		},
	}
}

func (vt *vtable) name() string {
	return vt.typ.String()
}
