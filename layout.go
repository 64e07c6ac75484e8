package fennecs

import (
	"iter"
	"reflect"
	"slices"
	"strconv"
	"unsafe"

	iter_util "github.com/TheBitDrifter/util/iter"
)

type layoutEntry struct {
	index  uint32
	offset uintptr
	typ    reflect.Type
}

// EntityLayout maps each component of one archetype to its byte offset inside the
// per-entity block. Components are placed in attachment order.
//
// The block is a struct type built with reflect.StructOf, so offsets carry Go's
// alignment padding and the garbage collector sees the pointers inside components.
type EntityLayout struct {
	entries []layoutEntry
	slots   [MaxComponents]uint8 // entry position + 1; 0 when absent
	block   reflect.Type
}

var emptyBlock = reflect.TypeOf(struct{}{})

func newEntityLayout() EntityLayout {
	return EntityLayout{block: emptyBlock}
}

func buildLayout(entries []layoutEntry) EntityLayout {
	l := EntityLayout{entries: entries}
	if len(entries) == 0 {
		l.block = emptyBlock
		return l
	}
	fields := make([]reflect.StructField, len(entries))
	for i, e := range entries {
		fields[i] = reflect.StructField{
			Name: "C" + strconv.FormatUint(uint64(e.index), 10),
			Type: e.typ,
		}
	}
	l.block = reflect.StructOf(fields)
	for i := range l.entries {
		l.entries[i].offset = l.block.Field(i).Offset
		l.slots[l.entries[i].index] = uint8(i + 1)
	}
	return l
}

// Attach returns a layout with the component appended after the existing ones.
func (l EntityLayout) Attach(index uint32, typ reflect.Type) EntityLayout {
	if l.Has(index) {
		return l
	}
	entries := make([]layoutEntry, len(l.entries), len(l.entries)+1)
	copy(entries, l.entries)
	entries = append(entries, layoutEntry{index: index, typ: typ})
	return buildLayout(entries)
}

// Detach returns a layout without the component. The remaining components keep
// their relative order, but every offset is recomputed.
func (l EntityLayout) Detach(index uint32) EntityLayout {
	if !l.Has(index) {
		return l
	}
	kept := slices.DeleteFunc(iter_util.Collect(l.entrySeq()), func(e layoutEntry) bool {
		return e.index == index
	})
	return buildLayout(kept)
}

func (l EntityLayout) Has(index uint32) bool {
	return index < MaxComponents && l.slots[index] != 0
}

// Offset returns the byte offset of the component. It panics if the layout lacks it.
func (l EntityLayout) Offset(index uint32) uintptr {
	if !l.Has(index) {
		panic(ComponentNotFoundError{Index: index})
	}
	return l.entries[l.slots[index]-1].offset
}

// Stride is the size of one entity block.
func (l EntityLayout) Stride() uintptr {
	return l.block.Size()
}

func (l EntityLayout) Len() int {
	return len(l.entries)
}

// Components yields component indices in attachment order.
func (l EntityLayout) Components() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, e := range l.entries {
			if !yield(e.index) {
				return
			}
		}
	}
}

func (l EntityLayout) entrySeq() iter.Seq[layoutEntry] {
	return func(yield func(layoutEntry) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

func (l EntityLayout) allocate() unsafe.Pointer {
	return reflect.New(l.block).UnsafePointer()
}
