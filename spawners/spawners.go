package spawners

import (
	"fmt"

	"ebiten-cavegen/components"
	"ebiten-cavegen/ecs"
	"ebiten-cavegen/generation"
)

// Entity tags used by the spawner
const (
	TagLevel    = "level"
	TagSite     = "site"
	TagBlocking = "blocking"
)

// EntitySpawner turns a generated level into ECS entities
type EntitySpawner struct {
	world      *ecs.World
	tileSize   float64
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner. logFunc may be nil.
func NewEntitySpawner(world *ecs.World, tileSize float64, logFunc func(string)) *EntitySpawner {
	if logFunc == nil {
		logFunc = func(string) {}
	}
	return &EntitySpawner{
		world:      world,
		tileSize:   tileSize,
		logMessage: logFunc,
	}
}

// SpawnLevel creates the map entity, one entity per placement site and one
// blocking entity per wall tile. It returns the map entity.
func (s *EntitySpawner) SpawnLevel(level *generation.Level) (*ecs.Entity, error) {
	if level == nil || level.Map == nil {
		return nil, fmt.Errorf("cannot spawn an empty level")
	}

	mapEntity := s.world.CreateEntity()
	s.world.TagEntity(mapEntity.ID, TagLevel)
	s.world.AddComponent(mapEntity.ID, components.MapComponentID, level.Map)
	s.world.AddComponent(mapEntity.ID, components.Name, components.NewNameComponent(level.ID.String()))

	for _, site := range level.Sites {
		s.CreateSite(site)
	}

	volumes := BlockingVolumes(level.Map, s.tileSize)
	for _, volume := range volumes {
		s.CreateBlockingVolume(volume)
	}

	s.logMessage(fmt.Sprintf("Spawned %d sites and %d blocking volumes", len(level.Sites), len(volumes)))
	return mapEntity, nil
}

// CreateSite creates the entity standing on one placement site
func (s *EntitySpawner) CreateSite(site generation.PlacementSite) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, TagSite)

	s.world.AddComponent(entity.ID, components.Position, &components.PositionComponent{
		X: site.World.X,
		Y: site.World.Y,
		Z: site.World.Z,
	})
	s.world.AddComponent(entity.ID, components.Team, &components.TeamComponent{
		Index: site.Index,
		ID:    site.Team.ID,
		Label: site.Team.Label,
	})
	s.world.AddComponent(entity.ID, components.Renderable, &components.RenderableComponent{
		PrimarySprite:   site.Team.PrimarySprite,
		SecondarySprite: site.Team.SecondarySprite,
	})
	s.world.AddComponent(entity.ID, components.Name, components.NewNameComponent(site.Team.Label))

	s.logMessage(fmt.Sprintf("Spawning %s at tile (%d, %d)", site.Team.Label, site.X, site.Y))
	return entity
}

// CreateBlockingVolume creates the hidden collision entity for one wall tile
func (s *EntitySpawner) CreateBlockingVolume(volume BlockingVolume) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, TagBlocking)

	position := volume.Position
	s.world.AddComponent(entity.ID, components.Position, &position)
	s.world.AddComponent(entity.ID, components.Collision, &components.CollisionComponent{
		TileX:        volume.Tile.X,
		TileY:        volume.Tile.Y,
		ScaleX:       volume.Scale[0],
		ScaleY:       volume.Scale[1],
		ScaleZ:       volume.Scale[2],
		HiddenInGame: true,
	})
	return entity
}
