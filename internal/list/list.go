// Package list implements an intrusive doubly linked list with a self-referential sentinel.
//
// A Node is embedded in the value it links, so pushing and removing never allocate. The list
// root doubles as the end sentinel: walking Next from Front stops when the cursor equals End.
package list

import "iter"

// Node links one value into a List. An unlinked node points at itself.
type Node[T any] struct {
	next, prev *Node[T]
	list       *List[T]
	Value      T
}

// Init resets n to the unlinked state and sets its value.
func (n *Node[T]) Init(value T) *Node[T] {
	n.next = n
	n.prev = n
	n.list = nil
	n.Value = value
	return n
}

// Linked reports whether n is currently a member of a list.
func (n *Node[T]) Linked() bool {
	return n.list != nil
}

// Next returns the following node. At the tail it returns the owning list's sentinel.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node. At the head it returns the owning list's sentinel.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List is a sentinel-rooted doubly linked list. The zero value is an empty list.
type List[T any] struct {
	root Node[T]
	len  int
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		var zero T
		l.root.Init(zero)
	}
}

// Len returns the number of linked nodes.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the first node, or End when the list is empty.
func (l *List[T]) Front() *Node[T] {
	l.lazyInit()
	return l.root.next
}

// Back returns the last node, or End when the list is empty.
func (l *List[T]) Back() *Node[T] {
	l.lazyInit()
	return l.root.prev
}

// End returns the sentinel that terminates forward and backward walks.
func (l *List[T]) End() *Node[T] {
	l.lazyInit()
	return &l.root
}

// PushBack links n at the tail. Pushing a node that is already linked panics.
func (l *List[T]) PushBack(n *Node[T]) {
	if n.Linked() {
		panic("list: node is already linked")
	}
	l.lazyInit()
	tail := l.root.prev
	n.prev = tail
	n.next = &l.root
	tail.next = n
	l.root.prev = n
	n.list = l
	l.len++
}

// Remove unlinks n from l. Removing an unlinked node, or a node of another list, is a no-op.
func (l *List[T]) Remove(n *Node[T]) {
	if n.list != l {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = n
	n.prev = n
	n.list = nil
	l.len--
}

// All yields each linked value from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := l.End()
		for n := l.Front(); n != end; {
			next := n.next
			if !yield(n.Value) {
				return
			}
			n = next
		}
	}
}
