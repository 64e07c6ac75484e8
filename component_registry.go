package fennecs

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	"go.uber.org/zap"
)

// componentRegistry hands out component indices for one world and keeps the vtable
// of every component type attached so far. Indices are dense, start at 0 and are
// assigned on first use; tokens never used with the world consume nothing.
type componentRegistry struct {
	schema  table.Schema
	indices map[reflect.Type]uint32
	vtables Cache[*vtable]
	log     *zap.Logger
}

func newComponentRegistry(schema table.Schema, log *zap.Logger) *componentRegistry {
	return &componentRegistry{
		schema:  schema,
		indices: make(map[reflect.Type]uint32),
		vtables: FactoryNewCache[*vtable](MaxComponents),
		log:     log,
	}
}

// lookup returns the component's index without assigning one.
func (r *componentRegistry) lookup(c Component) (uint32, bool) {
	idx, ok := r.indices[c.vtable().typ]
	return idx, ok
}

// index returns the component's index, assigning the next free one on first use.
// The world's schema records the element type alongside.
func (r *componentRegistry) index(c Component) uint32 {
	ops := c.vtable()
	if idx, ok := r.indices[ops.typ]; ok {
		return idx
	}
	idx := uint32(len(r.indices))
	if idx >= MaxComponents {
		panic(ComponentCapacityError{Component: ops.name(), Index: idx})
	}
	r.schema.Register(c)
	r.indices[ops.typ] = idx
	r.log.Debug("component indexed",
		zap.String("component", ops.name()),
		zap.Uint32("index", idx),
	)
	return idx
}

func (r *componentRegistry) mask(c Component) mask.Mask {
	var m mask.Mask
	m.Mark(r.index(c))
	return m
}

// register makes the component's vtable reachable by index. Called on first attach.
func (r *componentRegistry) register(c Component) (uint32, *vtable) {
	idx := r.index(c)
	if ops, ok := r.vtables.GetItem(idx); ok {
		return idx, ops
	}
	ops := c.vtable()
	if err := r.vtables.Register(idx, ops); err != nil {
		panic(err)
	}
	r.log.Debug("component vtable registered",
		zap.String("component", ops.name()),
		zap.Uint32("index", idx),
		zap.Uintptr("size", ops.size),
	)
	return idx, ops
}

// vtableOf returns the vtable registered for idx. Asking for an index that was never
// attached is a programmer error.
func (r *componentRegistry) vtableOf(idx uint32) *vtable {
	ops, ok := r.vtables.GetItem(idx)
	if !ok {
		panic(UnregisteredComponentError{Index: idx})
	}
	return ops
}
