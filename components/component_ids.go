package components

import (
	"ebiten-cavegen/ecs"
)

// Component IDs used by the level spawner
const (
	Position ecs.ComponentID = iota
	Renderable
	Team
	Name
	Collision
	MapComponentID
)
