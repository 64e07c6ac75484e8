/*
Package fennecs provides an archetype-based Entity-Component-System (ECS) storage core.

Entities with the same set of components share an EntityArray. Every entity owns one
contiguous block holding all of its components at offsets fixed by the array's
EntityLayout. Attaching or detaching a component migrates the entity into a fresh
block in the destination array.

Core Concepts:

  - Component: a token created once per Go type with FactoryNewComponent.
  - EntityArchetype: the exact component set of an entity, as a bit mask.
  - EntityLayout: the byte offset of each component inside an entity block.
  - EntityHandle: a short-lived view of one entity, invalidated by structural changes.
  - EntityStream: a forward-only cursor over entities matching a component set.

Basic Usage:

	schema := table.Factory.NewSchema()
	world := fennecs.Factory.NewWorld(schema)

	name := fennecs.FactoryNewComponent[Name]()
	transform := fennecs.FactoryNewComponent[Transform]()

	e := world.AddEntity()
	e = world.AttachWithValue(e, name, Name{"player"})
	e = world.AttachWithValue(e, transform, Transform{X: 1})

	stream := world.Query(name, transform)
	for h := stream.Next(); !h.IsNull(); h = stream.Next() {
		transform.GetFromHandle(h).X += 1
	}

Handles must be re-acquired after Attach, Detach or RemoveEntity; a stale handle
panics on use. A stream locks the world until it is exhausted or closed, so
structural changes found while iterating go through the Enqueue methods.
*/
package fennecs
