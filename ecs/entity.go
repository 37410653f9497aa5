package ecs

// EntityID is unique within the World that created it
type EntityID uint64

// Entity is a handle with a set of tags; its data lives in components
type Entity struct {
	ID   EntityID
	Tags map[string]bool
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}
