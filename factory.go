package fennecs

import (
	"github.com/TheBitDrifter/table"
	"go.uber.org/zap"
)

type factory struct{}

var Factory factory

// NewWorld creates a world with the default configuration and no logging.
// The schema records every component type the world indexes. Indices themselves
// belong to the world and start at 0.
func (f factory) NewWorld(schema table.Schema) *World {
	return newWorld(schema, DefaultConfig(), nil)
}

// NewWorldWithConfig creates a world tuned by cfg. A nil logger disables logging.
func (f factory) NewWorldWithConfig(schema table.Schema, cfg Config, log *zap.Logger) *World {
	return newWorld(schema, cfg, log)
}

func (f factory) NewQuery() Query {
	return newQuery()
}

// FactoryNewComponent creates the component token for T. Tokens for the same T
// resolve to the same index within a world.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		ElementType: table.FactoryNewElementType[T](),
		ops:         newVTable[T](),
	}
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		maxCapacity: cap,
	}
}
