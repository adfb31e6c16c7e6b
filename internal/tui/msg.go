package tui

import (
	"time"

	"github.com/ghanshyammann/seawar/internal/dto"
	"github.com/ghanshyammann/seawar/internal/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages
type (
	PerformLoginMsg struct{}
	GotFleetsMsg    []dto.BaseFleet
	GotMatchesMsg   []dto.MatchSummary
	MatchJoinedMsg  struct{ ID string }
	GotGameMsg      *dto.GameView
	ShipPlacedMsg   struct{ Game *dto.GameView }
	ShotFiredMsg    struct {
		Game   *dto.GameView
		Result dto.ShootResponse
	}
	TickMsg      time.Time
	GameEventMsg struct{ Event *events.GameEvent }
)

// TickCmd returns a command that triggers a tick, used to refresh the
// lobby listing. The game screen is driven by pollEventsCmd, not by ticks.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
