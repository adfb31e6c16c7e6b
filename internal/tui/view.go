package tui

import (
	"fmt"
	"strings"

	"github.com/ghanshyammann/seawar/internal/dto"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	var content string

	switch m.State {
	case StateLogin:
		content = m.viewLogin()
	case StateLobby:
		content = m.viewLobby()
	case StateGame:
		if m.GameView == nil {
			content = "Loading game state..."
		} else {
			content = m.viewGame()
		}
	default:
		content = "Unknown State"
	}

	if m.Err != nil {
		errBox := StyleErrorBox.Render(
			fmt.Sprintf("ERROR\n\n%v\n\n[Q] Dismiss", m.Err),
		)
		content = fmt.Sprintf("%s\n\n%s", content, errBox)
	}

	if m.Width > 0 && m.Height > 0 {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}

	return content
}

func (m *Model) viewLogin() string {
	return fmt.Sprintf(
		"\n%s\n\n%s\n\n[Enter] Login",
		StyleTitle.Render("BATTLESHIP"),
		m.LoginInput.View(),
	)
}

func (m *Model) viewLobby() string {
	var s strings.Builder
	s.WriteString(StyleTitle.Render("LOBBY") + "\n\n")
	if len(m.Matches) == 0 {
		s.WriteString("No open games. Host one to get started.\n")
	}
	for i, match := range m.Matches {
		cursor := " "
		if m.Cursor == i {
			cursor = ">"
		}

		line := fmt.Sprintf(
			"%s %-8s Host: %-16s Fleet: %-14s %s",
			cursor,
			match.ID,
			match.HostID,
			match.BaseFleetID,
			match.Status,
		)

		if m.Cursor == i {
			s.WriteString(
				lipgloss.NewStyle().
					Bold(true).
					Foreground(lipgloss.Color("205")).
					Render(line) +
					"\n",
			)
		} else {
			s.WriteString(line + "\n")
		}
	}
	s.WriteString("\n[C] Host multiplayer | [A] Host vs AI | [Enter] Join selected | [R] Refresh")
	return s.String()
}

func (m *Model) viewGame() string {
	view := m.GameView

	var baseColor lipgloss.Color
	stateLabel := ""

	switch {
	case view.Status == "finished":
		if view.WinnerID == view.Self.PlayerID {
			baseColor, stateLabel = ColorWin, "VICTORY"
		} else {
			baseColor, stateLabel = ColorLose, "DEFEAT"
		}
	case len(m.Pending) > 0:
		baseColor, stateLabel = ColorSetup, "SETUP PHASE"
	case view.CurrentTurn == view.Self.PlayerID:
		baseColor, stateLabel = ColorMyTurn, "YOUR TURN"
	default:
		baseColor, stateLabel = ColorOpTurn, "OPPONENT'S TURN"
	}

	styleBox := StyleBox.BorderForeground(baseColor)
	styleLabel := lipgloss.NewStyle().Foreground(baseColor).Bold(true)

	leftPanel := lipgloss.JoinVertical(
		lipgloss.Left,
		styleLabel.Render("YOUR FLEET"),
		styleBox.Render(m.renderFleet(view.Self.Ships)),
	)

	rightPanel := lipgloss.JoinVertical(
		lipgloss.Left,
		styleLabel.Render("ENEMY FLEET"),
		styleBox.Render(m.renderFleet(view.Opponent.Ships)),
	)

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().MarginRight(4).Render(leftPanel),
		rightPanel,
	)

	shots := lipgloss.JoinVertical(
		lipgloss.Left,
		styleLabel.Render("YOUR SHOTS"),
		styleBox.Render(m.renderShots(view.Self.ShotsTaken)),
	)

	instructions := styleLabel.Render(m.getInstructions())

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n\n%s",
		styleLabel.Render(stateLabel),
		panels,
		shots,
		instructions,
	)
}

func (m *Model) renderFleet(ships []dto.ShipView) string {
	if len(ships) == 0 {
		return "(none placed yet)"
	}

	var sb strings.Builder
	for _, ship := range ships {
		style := StyleShipAfloat
		status := "afloat"
		if ship.IsSunk {
			style = StyleShipSunk
			status = "sunk"
		}
		fmt.Fprintf(&sb, "%s\n", style.Render(fmt.Sprintf("%-14s size %d  %s", ship.Name, ship.Size, status)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m *Model) renderShots(shots []dto.ShotView) string {
	if len(shots) == 0 {
		return "(no shots fired yet)"
	}

	var sb strings.Builder
	for _, shot := range shots {
		style := StyleShotMiss
		if shot.Result == "hit" || shot.Result == "sunk" {
			style = StyleShotHit
		}
		fmt.Fprintf(&sb, "%s\n", style.Render(fmt.Sprintf("%-4s %s", shot.Coordinate, shot.Result)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m *Model) getInstructions() string {
	view := m.GameView

	switch {
	case view.Status == "finished":
		res := "LOSE"
		if view.WinnerID == view.Self.PlayerID {
			res = "WIN"
		}
		return fmt.Sprintf("GAME OVER - YOU %s! Winner: %s", res, view.WinnerID)
	case len(m.Pending) > 0:
		next := m.Pending[0]
		orient := "HORIZONTAL"
		if m.Vertical {
			orient = "VERTICAL"
		}
		return fmt.Sprintf(
			"PLACE %s (size %d, %s) at %s | type coordinate, [V] rotate, [Enter] place",
			next.Name, next.Size, orient, m.CoordInput.View(),
		)
	case view.CurrentTurn == view.Self.PlayerID:
		result := ""
		if m.LastShot != nil {
			result = fmt.Sprintf(" | last shot: %s", m.LastShot.Result)
		}
		return fmt.Sprintf("YOUR TURN: type a coordinate at %s, [Enter] fire%s", m.CoordInput.View(), result)
	default:
		return "OPPONENT'S TURN: please wait..."
	}
}
