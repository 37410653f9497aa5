package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// TeamTemplate is the identity handed to one placement site
type TeamTemplate struct {
	ID              string `json:"id"`              // Unique identifier
	Label           string `json:"label"`           // Team name shown in game
	PrimarySprite   string `json:"primarySprite"`   // Character sprite asset
	SecondarySprite string `json:"secondarySprite"` // Token sprite asset
	Order           int    `json:"order"`           // Assignment order, lowest first
}

// TeamManager holds all known team templates
type TeamManager struct {
	Teams map[string]*TeamTemplate
}

// NewTeamManager creates an empty team manager
func NewTeamManager() *TeamManager {
	return &TeamManager{
		Teams: make(map[string]*TeamTemplate),
	}
}

// DefaultTeams returns the four built-in factions
func DefaultTeams() []TeamTemplate {
	return []TeamTemplate{
		{ID: "tech", Label: "Tech Moguls", PrimarySprite: "sprites/billionaire_tech", SecondarySprite: "sprites/token_chip", Order: 0},
		{ID: "oil", Label: "Oil Barons", PrimarySprite: "sprites/billionaire_oil", SecondarySprite: "sprites/token_barrel", Order: 1},
		{ID: "media", Label: "Media Tycoons", PrimarySprite: "sprites/billionaire_media", SecondarySprite: "sprites/token_camera", Order: 2},
		{ID: "finance", Label: "Hedge Funders", PrimarySprite: "sprites/billionaire_finance", SecondarySprite: "sprites/token_coin", Order: 3},
	}
}

// AddTeam registers a team, replacing any existing team with the same ID
func (m *TeamManager) AddTeam(team TeamTemplate) error {
	if team.ID == "" {
		return fmt.Errorf("team ID cannot be empty")
	}
	if team.Label == "" {
		team.Label = team.ID
	}
	m.Teams[team.ID] = &team
	return nil
}

// LoadTeamsFromDirectory loads all JSON team files from a directory
func (m *TeamManager) LoadTeamsFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read team directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadTeamFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load team from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadTeamFromFile loads a single team template from a JSON file
func (m *TeamManager) LoadTeamFromFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var team TeamTemplate
	if err := json.Unmarshal(data, &team); err != nil {
		return err
	}

	if team.ID == "" {
		return fmt.Errorf("team ID cannot be empty: %s", filePath)
	}

	return m.AddTeam(team)
}

// Ordered returns the teams sorted by Order, then ID
func (m *TeamManager) Ordered() []TeamTemplate {
	teams := make([]TeamTemplate, 0, len(m.Teams))
	for _, team := range m.Teams {
		teams = append(teams, *team)
	}
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].Order != teams[j].Order {
			return teams[i].Order < teams[j].Order
		}
		return teams[i].ID < teams[j].ID
	})
	return teams
}
