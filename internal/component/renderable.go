package component

import (
	"missile-engine/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

// Renderable is how the console lists an entity.
type Renderable struct {
	Glyph   string
	FGColor tcell.Color
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
