package fennecs

import "fmt"

// EntityID encodes a 32-bit slot index in the lower bits and a 32-bit generation
// in the upper bits. The generation increments on removal to invalidate stale ids.
// The zero EntityID never names a live entity.
type EntityID uint64

func NewEntityID(index uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
func (id EntityID) IsZero() bool       { return id == 0 }

func (id EntityID) String() string {
	return fmt.Sprintf("%d@%d", id.Index(), id.Generation())
}

type entitySlot struct {
	node       *entityNode
	generation uint32
}

// entityPool maps entity ids to their current storage node, with a free list of
// recycled slots.
type entityPool struct {
	slots    []entitySlot
	freeList []uint32
	live     int
}

func newEntityPool(capacity int) entityPool {
	return entityPool{
		slots:    make([]entitySlot, 0, capacity),
		freeList: make([]uint32, 0, capacity/4),
	}
}

func (p *entityPool) create(node *entityNode) EntityID {
	p.live++
	if len(p.freeList) > 0 {
		idx := p.freeList[len(p.freeList)-1]
		p.freeList = p.freeList[:len(p.freeList)-1]
		p.slots[idx].node = node
		return NewEntityID(idx, p.slots[idx].generation)
	}
	idx := uint32(len(p.slots))
	// Generations start at 1 so that no live id is zero.
	p.slots = append(p.slots, entitySlot{node: node, generation: 1})
	return NewEntityID(idx, 1)
}

func (p *entityPool) alive(id EntityID) bool {
	idx := id.Index()
	if int(idx) >= len(p.slots) {
		return false
	}
	s := p.slots[idx]
	return s.node != nil && s.generation == id.Generation()
}

func (p *entityPool) lookup(id EntityID) *entityNode {
	if !p.alive(id) {
		return nil
	}
	return p.slots[id.Index()].node
}

func (p *entityPool) update(id EntityID, node *entityNode) {
	if p.alive(id) {
		p.slots[id.Index()].node = node
	}
}

func (p *entityPool) destroy(id EntityID) {
	if !p.alive(id) {
		return // already destroyed (stale reference)
	}
	idx := id.Index()
	p.slots[idx].node = nil
	p.slots[idx].generation++
	if p.slots[idx].generation == 0 {
		p.slots[idx].generation = 1
	}
	p.freeList = append(p.freeList, idx)
	p.live--
}
