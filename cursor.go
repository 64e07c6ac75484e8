package fennecs

import (
	"iter"

	"github.com/TheBitDrifter/fennecs/internal/list"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// EntityStream is a forward-only cursor over every entity whose archetype matches a
// filter: arrays in creation order, then entities in insertion order.
//
// A stream holds the world locked from creation until Next returns NullHandle or
// Close is called. While locked, direct structural changes panic; use the Enqueue
// variants, or collect the handles first and mutate afterwards.
type EntityStream struct {
	world  *World
	filter QueryNode

	array, arrayEnd   *list.Node[*EntityArray]
	entity, entityEnd *list.Node[*entityNode]

	closed bool
}

func newEntityStream(w *World, filter QueryNode) *EntityStream {
	s := &EntityStream{
		world:    w,
		filter:   filter,
		array:    w.registry.arrays.Front(),
		arrayEnd: w.registry.arrays.End(),
	}
	w.acquireStream()
	s.seekArray()
	return s
}

// seekArray moves the array cursor to the first non-empty matching array at or
// after its position and resets the entity cursor.
func (s *EntityStream) seekArray() {
	for ; s.array != s.arrayEnd; s.array = s.array.Next() {
		array := s.array.Value
		if array.Len() == 0 || !s.filter.Evaluate(array.archetype, s.world) {
			continue
		}
		s.entity = array.entities.Front()
		s.entityEnd = array.entities.End()
		return
	}
}

// Next returns the next matching entity, or NullHandle once the stream is
// exhausted. Every later call keeps returning NullHandle.
func (s *EntityStream) Next() EntityHandle {
	if s.closed {
		return NullHandle
	}
	if s.array == s.arrayEnd {
		s.Close()
		return NullHandle
	}
	node := s.entity.Value
	s.entity = s.entity.Next()
	if s.entity == s.entityEnd {
		s.array = s.array.Next()
		s.seekArray()
	}
	return node.handle()
}

// All yields the remaining entities and closes the stream when done.
func (s *EntityStream) All() iter.Seq[EntityHandle] {
	return func(yield func(EntityHandle) bool) {
		defer s.Close()
		for h := s.Next(); !h.IsNull(); h = s.Next() {
			if !yield(h) {
				return
			}
		}
	}
}

// Collect drains the stream into a slice. The world is unlocked on return. Each
// handle stays valid until its own entity is changed.
func (s *EntityStream) Collect() []EntityHandle {
	return iter_util.Collect(s.All())
}

// Count drains the stream and returns the number of entities it yielded.
func (s *EntityStream) Count() int {
	count := 0
	for range s.All() {
		count++
	}
	return count
}

// Close releases the stream's lock on the world. Closing twice is a no-op.
func (s *EntityStream) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.array = s.arrayEnd
	s.world.releaseStream()
}

func (s *EntityStream) Closed() bool {
	return s.closed
}
