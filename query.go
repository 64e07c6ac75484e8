package fennecs

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op         Operation
	children   []QueryNode
	components []Component
}

type leafNode struct {
	components []Component
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, components []Component) *compositeNode {
	return &compositeNode{
		op:         op,
		children:   make([]QueryNode, 0),
		components: components,
	}
}

func newLeafNode(components []Component) *leafNode {
	return &leafNode{components: components}
}

func componentsMask(components []Component, world *World) mask.Mask {
	var m mask.Mask
	for _, comp := range components {
		m.Mark(world.IndexOf(comp))
	}
	return m
}

func (n *compositeNode) Evaluate(archetype EntityArchetype, world *World) bool {
	nodeMask := componentsMask(n.components, world)
	archeMask := archetype.Mask()

	switch n.op {
	case OpAnd:
		if !archeMask.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(archetype, world) {
				return false
			}
		}
		return true

	case OpOr:
		if archeMask.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(archetype, world) {
				return true
			}
		}
		return false

	case OpNot:
		if len(n.children) == 0 {
			return archeMask.ContainsNone(nodeMask)
		}
		for _, child := range n.children {
			if child.Evaluate(archetype, world) {
				return false
			}
		}
		return !archeMask.ContainsAny(nodeMask)
	}
	return false
}

// Evaluate matches every archetype that is a superset of the leaf's components.
func (n *leafNode) Evaluate(archetype EntityArchetype, world *World) bool {
	return archetype.Mask().ContainsAll(componentsMask(n.components, world))
}

func (q *query) And(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpAnd, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Or(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpOr, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Not(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpNot, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]Component, []QueryNode) {
	components := make([]Component, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case Component:
			components = append(components, v)
		case []Component:
			components = append(components, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return components, children
}

func (q *query) Evaluate(archetype EntityArchetype, world *World) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(archetype, world)
}
