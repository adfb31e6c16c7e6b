// Package tui implements the terminal client for Battleship.
package tui

import (
	"log"

	"github.com/ghanshyammann/seawar/internal/client"
	"github.com/ghanshyammann/seawar/internal/dto"
	"github.com/ghanshyammann/seawar/internal/env"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current state of the application.
type SessionState int

const (
	StateLogin SessionState = iota
	StateLobby
	StateGame
)

// Model is the main TUI model.
type Model struct {
	State  SessionState
	Client *client.Client

	// Login
	LoginInput textinput.Model

	// Lobby
	Fleets  []dto.BaseFleet
	Matches []dto.MatchSummary
	Cursor  int

	// Game
	GameID   string
	GameView *dto.GameView

	// Placement
	Pending    []dto.ShipTemplate
	CoordInput textinput.Model
	Vertical   bool

	// Last shot fired by the caller, shown as feedback until the next one.
	LastShot *dto.ShootResponse

	// Error Handling
	Err error

	// UI
	Width, Height int
}

// New builds a fresh Model reading connection settings from the client
// environment (BATTLESHIP_SERVER_URL).
func New() *Model {
	cfg, err := env.LoadClientConfig()
	if err != nil {
		log.Fatalf("Failed to load client config: %v", err)
	}

	login := textinput.New()
	login.Placeholder = "Commander Name"
	login.Focus()
	login.CharLimit = 20
	login.Width = 30

	coord := textinput.New()
	coord.Placeholder = "A1"
	coord.CharLimit = 4
	coord.Width = 10

	return &Model{
		State:      StateLogin,
		Client:     client.New(cfg.BaseURL),
		LoginInput: login,
		CoordInput: coord,
	}
}

// Init kicks off cursor blinking for the login prompt.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}
