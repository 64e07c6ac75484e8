package fennecs

import (
	"unsafe"

	"github.com/TheBitDrifter/fennecs/internal/list"
)

// entityNode owns the storage block of one entity. A node lives in exactly one
// EntityArray; structural changes replace it with a fresh node in another array.
type entityNode struct {
	link    list.Node[*entityNode]
	data    unsafe.Pointer
	array   *EntityArray
	id      EntityID
	version uint32
}

func newEntityNode(array *EntityArray, id EntityID) *entityNode {
	n := &entityNode{
		data:  array.layout.allocate(),
		array: array,
		id:    id,
	}
	n.link.Init(n)
	return n
}

func (n *entityNode) at(offset uintptr) unsafe.Pointer {
	return unsafe.Add(n.data, offset)
}

// free drops the block and invalidates every handle taken on n.
func (n *entityNode) free() {
	n.data = nil
	n.array = nil
	n.version++
}

func (n *entityNode) handle() EntityHandle {
	return EntityHandle{
		archetype: &n.array.archetype,
		layout:    &n.array.layout,
		node:      n,
		version:   n.version,
	}
}
