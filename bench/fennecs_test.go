package bench

import (
	"testing"

	"github.com/TheBitDrifter/fennecs"
	"github.com/TheBitDrifter/table"
)

const (
	nPos    = 9000
	nPosVel = 1000
)

type Position struct {
	X float64
	Y float64
}

type Velocity struct {
	X float64
	Y float64
}

func BenchmarkIterFennecsGet(b *testing.B) {
	b.StopTimer()

	velocity := fennecs.FactoryNewComponent[Velocity]()
	position := fennecs.FactoryNewComponent[Position]()
	world := fennecs.Factory.NewWorld(table.Factory.NewSchema())

	world.NewEntities(nPosVel, position, velocity)
	world.NewEntities(nPos, position)

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		stream := world.Query(position, velocity)
		for h := stream.Next(); !h.IsNull(); h = stream.Next() {
			pos := position.GetFromHandle(h)
			vel := velocity.GetFromHandle(h)

			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}

func BenchmarkIterFennecsWhere(b *testing.B) {
	b.StopTimer()

	velocity := fennecs.FactoryNewComponent[Velocity]()
	position := fennecs.FactoryNewComponent[Position]()
	world := fennecs.Factory.NewWorld(table.Factory.NewSchema())

	world.NewEntities(nPosVel, position, velocity)
	world.NewEntities(nPos, position)

	query := fennecs.Factory.NewQuery()
	node := query.And(velocity, position)

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for h := range world.QueryWhere(node).All() {
			pos := position.GetFromHandle(h)
			vel := velocity.GetFromHandle(h)

			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}

func BenchmarkAttachDetach(b *testing.B) {
	b.StopTimer()

	velocity := fennecs.FactoryNewComponent[Velocity]()
	position := fennecs.FactoryNewComponent[Position]()
	world := fennecs.Factory.NewWorld(table.Factory.NewSchema())
	h := world.NewEntities(1, position)[0]

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		h = world.Attach(h, velocity)
		h = world.Detach(h, velocity)
	}
}
