package fennecs

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	"go.uber.org/zap"
)

// World owns the component registry, every EntityArray and every entity node.
// It is not safe for concurrent use.
type World struct {
	components *componentRegistry
	registry   EntityRegistry
	entities   entityPool
	empty      *EntityArray
	locks      mask.Mask
	streams    int
	opQueue    opQueue
	log        *zap.Logger
}

func newWorld(schema table.Schema, cfg Config, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		components: newComponentRegistry(schema, log),
		entities:   newEntityPool(cfg.EntityCapacity),
		opQueue:    newOpQueue(),
		log:        log,
	}
	w.registry = newEntityRegistry(w, cfg.IndexArrays)
	w.empty = w.addArray(EntityArchetype{}, newEntityLayout())
	return w
}

// IndexOf returns the component's index, assigning one on first use. Indices are
// per world and start at 0.
func (w *World) IndexOf(c Component) uint32 {
	return w.components.index(c)
}

// MaskOf returns a mask with only the component's bit set.
func (w *World) MaskOf(c Component) mask.Mask {
	return w.components.mask(c)
}

// ArchetypeOf builds the archetype holding exactly the given components.
func (w *World) ArchetypeOf(components ...Component) EntityArchetype {
	indices := make([]uint32, len(components))
	for i, c := range components {
		indices[i] = w.components.index(c)
	}
	return ConsistsOf(indices...)
}

// AddEntity creates an entity without components.
func (w *World) AddEntity() EntityHandle {
	w.mustBeUnlocked()
	return w.addEntity().handle()
}

// NewEntities creates n entities, each carrying zero values of the given components.
func (w *World) NewEntities(n int, components ...Component) []EntityHandle {
	w.mustBeUnlocked()
	handles := make([]EntityHandle, n)
	for i := range handles {
		handles[i] = w.newEntity(components).handle()
	}
	return handles
}

func (w *World) addEntity() *entityNode {
	node := newEntityNode(w.empty, 0)
	node.id = w.entities.create(node)
	w.empty.insert(node)
	return node
}

func (w *World) newEntity(components []Component) *entityNode {
	node := w.addEntity()
	for _, c := range components {
		node = w.attach(node, c, nil)
	}
	return node
}

// RemoveEntity destroys every component of the entity and frees its storage.
// h and every other handle to the entity become stale.
func (w *World) RemoveEntity(h EntityHandle) {
	w.mustBeUnlocked()
	w.own(h)
	w.removeNode(h.node)
}

func (w *World) removeNode(node *entityNode) {
	array := node.array
	array.remove(node)
	for _, e := range array.layout.entries {
		w.components.vtableOf(e.index).destroy(node.at(e.offset))
	}
	w.entities.destroy(node.id)
	node.free()
}

// Attach adds the zero value of the component. See AttachWithValue.
func (w *World) Attach(h EntityHandle, c Component) EntityHandle {
	return w.AttachWithValue(h, c, nil)
}

// AttachWithValue adds the component initialized with value and returns the new handle.
// If the entity already has the component, h is returned unchanged and value is
// discarded. Otherwise h and every other handle to the entity become stale.
func (w *World) AttachWithValue(h EntityHandle, c Component, value any) EntityHandle {
	w.mustBeUnlocked()
	w.own(h)
	return w.attach(h.node, c, value).handle()
}

func (w *World) attach(node *entityNode, c Component, value any) *entityNode {
	origin := node.array
	if origin.archetype.Has(w.components.index(c)) {
		return node
	}
	idx, ops := w.components.register(c)
	if !ops.accepts(value) {
		panic(ComponentValueError{Component: ops.name(), Value: value})
	}
	origin.remove(node)

	destArchetype := origin.archetype.Attach(idx)
	dest := w.registry.FindArray(destArchetype)
	if dest == nil {
		dest = w.addArray(destArchetype, origin.layout.Attach(idx, ops.typ))
	}
	moved := w.migrate(node, dest)
	ops.construct(moved.at(dest.layout.Offset(idx)), value)
	dest.insert(moved)
	w.retire(node, moved)
	return moved
}

// Detach removes the component, destroying its value, and returns the new handle.
// If the entity lacks the component, h is returned unchanged.
func (w *World) Detach(h EntityHandle, c Component) EntityHandle {
	w.mustBeUnlocked()
	w.own(h)
	return w.detach(h.node, c).handle()
}

func (w *World) detach(node *entityNode, c Component) *entityNode {
	idx, ok := w.components.lookup(c)
	origin := node.array
	if !ok || !origin.archetype.Has(idx) {
		return node
	}
	origin.remove(node)

	destArchetype := origin.archetype.Detach(idx)
	dest := w.registry.FindArray(destArchetype)
	if dest == nil {
		dest = w.addArray(destArchetype, origin.layout.Detach(idx))
	}
	moved := w.migrate(node, dest)
	dest.insert(moved)
	w.retire(node, moved)
	return moved
}

// migrate allocates the entity's node in dest and carries over every component
// dest keeps. Components dest lacks are destroyed in place. Offsets are read from
// each side's own layout; the two may order components differently.
func (w *World) migrate(node *entityNode, dest *EntityArray) *entityNode {
	moved := newEntityNode(dest, node.id)
	for _, e := range node.array.layout.entries {
		ops := w.components.vtableOf(e.index)
		src := node.at(e.offset)
		if dest.archetype.Has(e.index) {
			ops.relocate(src, moved.at(dest.layout.Offset(e.index)))
			continue
		}
		ops.destroy(src)
	}
	return moved
}

func (w *World) retire(old, moved *entityNode) {
	w.entities.update(old.id, moved)
	old.free()
}

func (w *World) addArray(archetype EntityArchetype, layout EntityLayout) *EntityArray {
	array := w.registry.AddArray(archetype, layout)
	w.log.Debug("entity array created",
		zap.Stringer("archetype", archetype),
		zap.Int("components", layout.Len()),
		zap.Uintptr("stride", layout.Stride()),
		zap.Int("arrays", w.registry.Len()),
	)
	return array
}

// Query streams every entity having all of the given components. With no
// components it streams every entity.
//
// The world stays locked until the stream returns NullHandle or is closed. A
// stream abandoned part way must be closed, or every later structural change
// panics with LockedWorldError:
//
//	stream := world.Query(position)
//	defer stream.Close()
func (w *World) Query(components ...Component) *EntityStream {
	return w.QueryWhere(newLeafNode(components))
}

// QueryWhere streams every entity whose archetype satisfies the filter. The same
// Close rule as Query applies.
func (w *World) QueryWhere(filter QueryNode) *EntityStream {
	return newEntityStream(w, filter)
}

// Entity returns the current handle of the entity, or NullHandle if it was removed.
func (w *World) Entity(id EntityID) EntityHandle {
	node := w.entities.lookup(id)
	if node == nil {
		return NullHandle
	}
	return node.handle()
}

func (w *World) Alive(id EntityID) bool {
	return w.entities.alive(id)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.live
}

// Arrays yields every EntityArray in creation order, empty ones included.
func (w *World) Arrays() iter.Seq[*EntityArray] {
	return w.registry.All()
}

func (w *World) ArrayCount() int {
	return w.registry.Len()
}

// Locked reports whether structural changes are currently deferred.
func (w *World) Locked() bool {
	var none mask.Mask
	return w.streams > 0 || w.locks != none
}

// AddLock holds the world locked under bit until RemoveLock(bit).
func (w *World) AddLock(bit uint32) {
	w.locks.Mark(bit)
}

// RemoveLock releases bit. Queued operations run once no lock remains.
func (w *World) RemoveLock(bit uint32) {
	w.locks.Unmark(bit)
	w.flush()
}

func (w *World) acquireStream() {
	w.streams++
}

func (w *World) releaseStream() {
	w.streams--
	w.flush()
}

func (w *World) flush() {
	if !w.Locked() {
		w.processOperationQueue()
	}
}

func (w *World) mustBeUnlocked() {
	if w.Locked() {
		panic(LockedWorldError{})
	}
}

func (w *World) own(h EntityHandle) {
	h.check()
	if h.world() != w {
		panic(ForeignHandleError{ID: h.node.id})
	}
}
