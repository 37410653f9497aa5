package ecs

// ComponentID identifies a component type within a World
type ComponentID uint

// Component is any value attached to an entity
type Component interface{}

// ComponentMap stores one entity's components by type ID
type ComponentMap map[ComponentID]Component
