package fennecs_test

import (
	"fmt"

	"github.com/TheBitDrifter/fennecs"
	"github.com/TheBitDrifter/table"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows basic world usage with entity creation and queries
func Example_basic() {
	schema := table.Factory.NewSchema()
	world := fennecs.Factory.NewWorld(schema)

	position := fennecs.FactoryNewComponent[Position]()
	velocity := fennecs.FactoryNewComponent[Velocity]()
	name := fennecs.FactoryNewComponent[Name]()

	world.NewEntities(5, position)
	world.NewEntities(3, position, velocity)

	// One named entity, built up one component at a time.
	player := world.AddEntity()
	player = world.AttachWithValue(player, position, Position{X: 10, Y: 20})
	player = world.AttachWithValue(player, velocity, Velocity{X: 1, Y: 2})
	world.AttachWithValue(player, name, Name{Value: "Player"})

	fmt.Printf("Found %d entities with position and velocity\n", world.Query(position, velocity).Count())

	for h := range world.Query(name).All() {
		pos := position.GetFromHandle(h)
		vel := velocity.GetFromHandle(h)
		pos.X += vel.X
		pos.Y += vel.Y
		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", name.GetFromHandle(h).Value, pos.X, pos.Y)
	}

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_queries shows how to use different query operations
func Example_queries() {
	schema := table.Factory.NewSchema()
	world := fennecs.Factory.NewWorld(schema)

	position := fennecs.FactoryNewComponent[Position]()
	velocity := fennecs.FactoryNewComponent[Velocity]()
	name := fennecs.FactoryNewComponent[Name]()

	world.NewEntities(3, position)
	world.NewEntities(3, position, velocity)
	world.NewEntities(3, position, name)
	world.NewEntities(3, position, velocity, name)

	query := fennecs.Factory.NewQuery()

	andQuery := query.And(position, velocity)
	fmt.Printf("AND query matched %d entities\n", world.QueryWhere(andQuery).Count())

	orQuery := query.Or(velocity, name)
	fmt.Printf("OR query matched %d entities\n", world.QueryWhere(orQuery).Count())

	notQuery := query.Not(velocity)
	fmt.Printf("NOT query matched %d entities\n", world.QueryWhere(notQuery).Count())

	// Output:
	// AND query matched 6 entities
	// OR query matched 9 entities
	// NOT query matched 6 entities
}

// Example_deferred shows structural changes requested while a stream is live.
func Example_deferred() {
	world := fennecs.Factory.NewWorld(table.Factory.NewSchema())
	position := fennecs.FactoryNewComponent[Position]()
	velocity := fennecs.FactoryNewComponent[Velocity]()

	world.NewEntities(4, position)

	for h := range world.Query(position).All() {
		world.EnqueueAttach(h, velocity, Velocity{X: 1})
	}

	fmt.Printf("%d entities now move\n", world.Query(position, velocity).Count())

	// Output:
	// 4 entities now move
}
