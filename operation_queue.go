package fennecs

type operation struct {
	typ    operationType
	amount int
	id     EntityID
	comp   Component
	comps  []Component
	value  any
}

type operationType int

const (
	opCreate operationType = iota
	opDestroy
	opAttach
	opDetach
)

// opQueue holds structural changes requested while the world was locked.
type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[EntityID]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[EntityID]struct{}),
	}
}

func (q *opQueue) empty() bool {
	return len(q.createOps) == 0 &&
		len(q.componentOps) == 0 &&
		len(q.destroyOps) == 0
}

// EnqueueNewEntities creates entities now, or once the world unlocks.
func (w *World) EnqueueNewEntities(amount int, components ...Component) {
	if !w.Locked() {
		w.NewEntities(amount, components...)
		return
	}
	w.opQueue.createOps = append(w.opQueue.createOps, operation{
		typ:    opCreate,
		amount: amount,
		comps:  components,
	})
}

// EnqueueRemoveEntity removes the entity now, or once the world unlocks.
func (w *World) EnqueueRemoveEntity(h EntityHandle) {
	if !w.Locked() {
		w.RemoveEntity(h)
		return
	}
	w.own(h)
	id := h.node.id
	if _, queued := w.opQueue.pendingDestroy[id]; queued {
		return
	}
	w.opQueue.pendingDestroy[id] = struct{}{}
	w.opQueue.destroyOps = append(w.opQueue.destroyOps, operation{typ: opDestroy, id: id})
}

// EnqueueAttach attaches the component now, or once the world unlocks. Re-acquire
// the entity through World.Entity afterwards.
func (w *World) EnqueueAttach(h EntityHandle, c Component, value any) {
	if !w.Locked() {
		w.AttachWithValue(h, c, value)
		return
	}
	w.own(h)
	if ops := c.vtable(); !ops.accepts(value) {
		panic(ComponentValueError{Component: ops.name(), Value: value})
	}
	w.enqueueComponentOp(opAttach, h.node.id, c, value)
}

// EnqueueDetach detaches the component now, or once the world unlocks.
func (w *World) EnqueueDetach(h EntityHandle, c Component) {
	if !w.Locked() {
		w.Detach(h, c)
		return
	}
	w.own(h)
	w.enqueueComponentOp(opDetach, h.node.id, c, nil)
}

func (w *World) enqueueComponentOp(typ operationType, id EntityID, c Component, value any) {
	// If entity is pending destroy, ignore component operations
	if _, isDestroyed := w.opQueue.pendingDestroy[id]; isDestroyed {
		return
	}
	w.opQueue.componentOps = append(w.opQueue.componentOps, operation{
		typ:   typ,
		id:    id,
		comp:  c,
		value: value,
	})
}

// processOperationQueue applies creates first, then component changes in request
// order, then removals. Operations on entities that are gone by then are skipped.
func (w *World) processOperationQueue() {
	if w.opQueue.empty() {
		return
	}
	q := w.opQueue
	w.opQueue = newOpQueue()

	for _, op := range q.createOps {
		for range op.amount {
			w.newEntity(op.comps)
		}
	}

	for _, op := range q.componentOps {
		if _, isDestroyed := q.pendingDestroy[op.id]; isDestroyed {
			continue
		}
		node := w.entities.lookup(op.id)
		if node == nil {
			continue
		}
		switch op.typ {
		case opAttach:
			w.attach(node, op.comp, op.value)
		case opDetach:
			w.detach(node, op.comp)
		}
	}

	for _, op := range q.destroyOps {
		if node := w.entities.lookup(op.id); node != nil {
			w.removeNode(node)
		}
	}
}
