package tui

import (
	"fmt"
	"strings"

	"github.com/ghanshyammann/seawar/internal/client"
	"github.com/ghanshyammann/seawar/internal/dto"
	tea "github.com/charmbracelet/bubbletea"
)

// Update dispatches an incoming message to the handler for the current
// session state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.Err != nil {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "esc":
				m.Err = nil
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case error:
		m.Err = msg
		return m, nil
	}

	switch m.State {
	case StateLogin:
		return m.updateLogin(msg)
	case StateLobby:
		return m.updateLobby(msg)
	case StateGame:
		return m.updateGame(msg)
	}
	return m, cmd
}

// --- Login ---

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.LoginInput, cmd = m.LoginInput.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		username := m.LoginInput.Value()
		return m, func() tea.Msg {
			if _, err := m.Client.Login(username); err != nil {
				return err
			}
			return PerformLoginMsg{}
		}
	}

	if _, ok := msg.(PerformLoginMsg); ok {
		m.State = StateLobby
		return m, tea.Batch(fetchFleetsCmd(m.Client), fetchMatchesCmd(m.Client))
	}
	return m, cmd
}

// --- Lobby ---

func (m *Model) updateLobby(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case GotFleetsMsg:
		m.Fleets = msg
	case GotMatchesMsg:
		m.Matches = msg
	case TickMsg:
		return m, tea.Batch(fetchMatchesCmd(m.Client), TickCmd())
	case tea.KeyMsg:
		return m.handleLobbyKeys(msg)
	case MatchJoinedMsg:
		return m.handleMatchJoined(msg)
	}
	return m, nil
}

func (m *Model) handleLobbyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Matches)-1 {
			m.Cursor++
		}
	case "r":
		return m, fetchMatchesCmd(m.Client)
	case "c":
		return m, func() tea.Msg {
			id, err := m.Client.HostGame("multiplayer", m.defaultFleetID(), 10)
			if err != nil {
				return err
			}
			return MatchJoinedMsg{ID: id}
		}
	case "a":
		return m, func() tea.Msg {
			id, err := m.Client.HostGame("single_player", m.defaultFleetID(), 10)
			if err != nil {
				return err
			}
			return MatchJoinedMsg{ID: id}
		}
	case "enter":
		if len(m.Matches) > 0 {
			selectedID := m.Matches[m.Cursor].ID
			return m, func() tea.Msg {
				if _, err := m.Client.JoinGame(selectedID); err != nil {
					return err
				}
				return MatchJoinedMsg{ID: selectedID}
			}
		}
	}
	return m, nil
}

func (m *Model) defaultFleetID() string {
	if len(m.Fleets) > 0 {
		return m.Fleets[0].ID
	}
	return "classic"
}

func (m *Model) handleMatchJoined(msg MatchJoinedMsg) (tea.Model, tea.Cmd) {
	m.GameID = msg.ID
	m.State = StateGame
	m.CoordInput.Focus()
	m.Vertical = false

	return m, tea.Batch(
		func() tea.Msg {
			g, err := m.Client.GetGameState(m.GameID)
			if err != nil {
				return err
			}
			return GotGameMsg(g)
		},
		pollEventsCmd(m.Client, m.GameID),
	)
}

// pollEventsCmd long-polls the server for the next event on the current
// game through GET /games/:id/events; updateGame re-arms it after each
// event it returns.
func pollEventsCmd(c *client.Client, gameID string) tea.Cmd {
	return func() tea.Msg {
		event, err := c.NextEvent(gameID, 25)
		if err != nil {
			return err
		}
		return GameEventMsg{Event: event}
	}
}

// --- Game ---

func (m *Model) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case GotGameMsg:
		return m.handleGotGame(msg)
	case tea.KeyMsg:
		return m.handleGameKeys(msg)
	case ShipPlacedMsg:
		m.CoordInput.SetValue("")
		return m.handleGotGame(GotGameMsg(msg.Game))
	case ShotFiredMsg:
		m.LastShot = &msg.Result
		m.CoordInput.SetValue("")
		return m.handleGotGame(GotGameMsg(msg.Game))
	case GameEventMsg:
		return m, tea.Batch(
			refreshGameCmd(m.Client, m.GameID),
			pollEventsCmd(m.Client, m.GameID),
		)
	}
	var cmd tea.Cmd
	m.CoordInput, cmd = m.CoordInput.Update(msg)
	return m, cmd
}

func refreshGameCmd(c *client.Client, gameID string) tea.Cmd {
	return func() tea.Msg {
		g, err := c.GetGameState(gameID)
		if err != nil {
			return err
		}
		return GotGameMsg(g)
	}
}

func (m *Model) handleGotGame(msg GotGameMsg) (tea.Model, tea.Cmd) {
	if msg == nil {
		return m, nil
	}
	m.GameView = msg
	m.recomputePending()
	return m, nil
}

// recomputePending figures out, from the caller's fleet catalog and the
// ships already placed, which ship (if any) the player should place next.
func (m *Model) recomputePending() {
	m.Pending = nil
	if m.GameView == nil {
		return
	}

	placedCount := map[string]int{}
	for _, s := range m.GameView.Self.Ships {
		placedCount[s.TemplateID]++
	}

	for _, f := range m.Fleets {
		for _, ship := range f.Ships {
			want := 1
			have := placedCount[ship.ID]
			if have < want {
				m.Pending = append(m.Pending, ship)
			}
		}
	}
}

func (m *Model) handleGameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "v":
		m.Vertical = !m.Vertical
		return m, nil
	case "enter":
		return m.handleAction()
	}

	var cmd tea.Cmd
	m.CoordInput, cmd = m.CoordInput.Update(msg)
	return m, cmd
}

func (m *Model) handleAction() (tea.Model, tea.Cmd) {
	if m.GameView == nil {
		return m, nil
	}

	if len(m.Pending) > 0 {
		return m.handlePlacement()
	}
	if m.GameView.Status == "in_progress" && m.GameView.CurrentTurn == m.GameView.Self.PlayerID {
		return m.handleShot()
	}
	return m, nil
}

func (m *Model) handlePlacement() (tea.Model, tea.Cmd) {
	ship := m.Pending[0]
	coord := strings.ToUpper(strings.TrimSpace(m.CoordInput.Value()))
	if coord == "" {
		return m, func() tea.Msg { return fmt.Errorf("enter a coordinate, e.g. A1") }
	}

	orientation := "horizontal"
	if m.Vertical {
		orientation = "vertical"
	}

	placed := placedCountFor(m.GameView, ship.ID)

	req := dto.PlaceShipRequest{
		TemplateID:     ship.ID,
		PlacementIndex: placed,
		Coordinate:     coord,
		Orientation:    orientation,
	}

	return m, func() tea.Msg {
		g, err := m.Client.PlaceShip(m.GameID, req)
		if err != nil {
			return err
		}
		return ShipPlacedMsg{Game: g}
	}
}

func placedCountFor(view *dto.GameView, templateID string) int {
	count := 0
	for _, s := range view.Self.Ships {
		if s.TemplateID == templateID {
			count++
		}
	}
	return count
}

func (m *Model) handleShot() (tea.Model, tea.Cmd) {
	coord := strings.ToUpper(strings.TrimSpace(m.CoordInput.Value()))
	if coord == "" {
		return m, func() tea.Msg { return fmt.Errorf("enter a coordinate, e.g. A1") }
	}

	return m, func() tea.Msg {
		resp, err := m.Client.Shoot(m.GameID, coord)
		if err != nil {
			return err
		}
		g, err := m.Client.GetGameState(m.GameID)
		if err != nil {
			return err
		}
		return ShotFiredMsg{Game: g, Result: *resp}
	}
}

func fetchFleetsCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		fleets, err := c.ListFleets()
		if err != nil {
			return err
		}
		return GotFleetsMsg(fleets)
	}
}

func fetchMatchesCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		matches, err := c.ListOpenGames()
		if err != nil {
			return err
		}
		return GotMatchesMsg(matches)
	}
}
