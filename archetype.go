package fennecs

import (
	"strconv"
	"strings"

	"github.com/TheBitDrifter/mask"
)

// EntityArchetype identifies exactly which component types an entity has.
// It is a value: Attach and Detach return new archetypes.
type EntityArchetype struct {
	mask mask.Mask
}

// ConsistsOf builds the archetype holding exactly the given component indices.
func ConsistsOf(indices ...uint32) EntityArchetype {
	var a EntityArchetype
	for _, idx := range indices {
		a.mask.Mark(idx)
	}
	return a
}

// Is reports whether a has every component of other.
func (a EntityArchetype) Is(other EntityArchetype) bool {
	return a.mask.ContainsAll(other.mask)
}

// Equals reports whether a and other hold the same component set.
func (a EntityArchetype) Equals(other EntityArchetype) bool {
	return a.mask == other.mask
}

func (a EntityArchetype) Has(index uint32) bool {
	var bit mask.Mask
	bit.Mark(index)
	return a.mask.ContainsAll(bit)
}

func (a EntityArchetype) Attach(index uint32) EntityArchetype {
	m := a.mask
	m.Mark(index)
	return EntityArchetype{mask: m}
}

func (a EntityArchetype) Detach(index uint32) EntityArchetype {
	m := a.mask
	m.Unmark(index)
	return EntityArchetype{mask: m}
}

func (a EntityArchetype) Mask() mask.Mask {
	return a.mask
}

// String lists the component indices, e.g. "{0,3}".
func (a EntityArchetype) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for idx := uint32(0); idx < MaxComponents; idx++ {
		if !a.Has(idx) {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(idx), 10))
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}
