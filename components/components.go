package components

// PositionComponent stores an entity's world-space position.
// World space is X right, Y up out of the tile plane, Z down the screen (negative grid Y).
type PositionComponent struct {
	X, Y, Z float64
}

// RenderableComponent references the two sprites a placed entity shows
type RenderableComponent struct {
	PrimarySprite   string // Character sprite
	SecondarySprite string // Token sprite
}

// TeamComponent carries the identity assigned to a placement site
type TeamComponent struct {
	Index int    // Position of the site in placement order
	ID    string // Team template ID
	Label string // Display label
}

// CollisionComponent describes an invisible blocking box over a wall tile
type CollisionComponent struct {
	TileX, TileY           int
	ScaleX, ScaleY, ScaleZ float64
	HiddenInGame           bool
}

// NameComponent labels an entity for display and lookup
type NameComponent struct {
	Name string
}

// NewNameComponent wraps name in a component
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{Name: name}
}
