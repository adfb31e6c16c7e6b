// Package service contains the in-memory implementations of the
// controller's Identity, Lobby, Game and Notification services.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ghanshyammann/seawar/internal/catalog"
	"github.com/ghanshyammann/seawar/internal/controller"
	"github.com/ghanshyammann/seawar/internal/dto"
	"github.com/ghanshyammann/seawar/internal/events"
	"github.com/ghanshyammann/seawar/internal/model"
	"github.com/google/uuid"
)

const maxOpenGamesPerHost = 5

var (
	_ controller.LobbyService = (*MemoryService)(nil)
	_ controller.GameService  = (*MemoryService)(nil)
)

// ErrMatchNotFound is returned when a match id has no entry in the store.
var ErrMatchNotFound = errors.New("match not found")

// entry wraps a model.Game with the lobby-level bookkeeping the engine
// itself has no notion of: who created it, for the per-host open-game cap.
type entry struct {
	game      *model.Game
	createdBy string
}

// MemoryService is an in-memory implementation of the lobby and game
// services. Each game carries its own concurrency gate (model.Game.mu), so
// MemoryService's own lock only ever protects the games map itself.
type MemoryService struct {
	games    map[string]*entry
	gamesMu  sync.RWMutex
	catalog  catalog.Provider
	eventBus events.EventBus
}

// NewMemoryService creates a new in-memory lobby and game service backed by
// the given ship catalog and event bus.
func NewMemoryService(cat catalog.Provider, bus events.EventBus) *MemoryService {
	s := &MemoryService{
		games:    make(map[string]*entry),
		catalog:  cat,
		eventBus: bus,
	}
	go s.cleanupLoop()
	return s
}

func (s *MemoryService) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.gc(time.Now())
	}
}

func (s *MemoryService) gc(now time.Time) {
	s.gamesMu.Lock()
	defer s.gamesMu.Unlock()

	for id, e := range s.games {
		age := now.Sub(e.game.UpdatedAt())
		switch {
		case e.game.IsFinished() && age > 10*time.Minute:
			delete(s.games, id)
		case !e.game.IsFinished() && age > 24*time.Hour:
			delete(s.games, id)
		}
	}
}

func (s *MemoryService) getGame(matchID string) (*model.Game, error) {
	s.gamesMu.RLock()
	defer s.gamesMu.RUnlock()

	e, ok := s.games[matchID]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return e.game, nil
}

func (s *MemoryService) countOpenGamesByHost(hostID string) int {
	s.gamesMu.RLock()
	defer s.gamesMu.RUnlock()

	count := 0
	for _, e := range s.games {
		if e.createdBy == hostID && !e.game.IsFinished() {
			count++
		}
	}
	return count
}

// CreateMatch resolves the requested fleet and initializes a new game with
// hostID as player1.
func (s *MemoryService) CreateMatch(
	_ context.Context,
	hostID, mode, baseFleetID string,
	boardSize int,
) (string, error) {
	if s.countOpenGamesByHost(hostID) >= maxOpenGamesPerHost {
		return "", errors.New("max open games limit reached")
	}

	gameMode, ok := dto.ParseMode(mode)
	if !ok {
		return "", model.ErrInvalidFleet
	}

	fleet, err := s.catalog.Fleet(baseFleetID)
	if err != nil {
		return "", err
	}

	gameID := fmt.Sprintf("game-%s", uuid.NewString())
	game, err := model.NewGame(
		gameID,
		boardSize,
		baseFleetID,
		gameMode,
		hostID,
		catalog.ResolveShipSpecs(fleet),
		time.Now(),
	)
	if err != nil {
		return "", err
	}

	s.gamesMu.Lock()
	s.games[gameID] = &entry{game: game, createdBy: hostID}
	s.gamesMu.Unlock()

	if gameMode == model.ModeSinglePlayer {
		s.publish(gameID, events.EventGameStarted, hostID, "", nil)
	}

	return gameID, nil
}

// ListOpenMatches returns every multiplayer game still waiting for a second player.
func (s *MemoryService) ListOpenMatches(_ context.Context) ([]dto.MatchSummary, error) {
	s.gamesMu.RLock()
	defer s.gamesMu.RUnlock()

	matches := make([]dto.MatchSummary, 0)
	for id, e := range s.games {
		if e.game.Mode() == model.ModeMultiplayer && e.game.Status() == model.StatusWaitingForPlayer2 {
			matches = append(matches, summaryOf(id, e))
		}
	}
	return matches, nil
}

// ListPlayerMatches returns every match playerID participates in.
func (s *MemoryService) ListPlayerMatches(_ context.Context, playerID string) ([]dto.MatchSummary, error) {
	s.gamesMu.RLock()
	defer s.gamesMu.RUnlock()

	matches := make([]dto.MatchSummary, 0)
	for id, e := range s.games {
		if e.game.Player1ID() == playerID || e.game.Player2ID() == playerID {
			matches = append(matches, summaryOf(id, e))
		}
	}
	return matches, nil
}

// Fleets lists the catalog's base fleets.
func (s *MemoryService) Fleets(_ context.Context) []catalog.BaseFleet {
	return s.catalog.Fleets()
}

// JoinMatch adds playerID as the second participant of matchID.
func (s *MemoryService) JoinMatch(_ context.Context, matchID, playerID string) (dto.GameView, error) {
	game, err := s.getGame(matchID)
	if err != nil {
		return dto.GameView{}, err
	}

	if err := game.JoinGame(playerID, time.Now()); err != nil {
		return dto.GameView{}, err
	}

	s.publish(matchID, events.EventPlayerJoined, playerID, game.Player1ID(), nil)

	view, err := game.GetView(playerID)
	if err != nil {
		return dto.GameView{}, err
	}
	return dto.FromModelView(view), nil
}

// DeleteMatch removes matchID if requesterID is allowed to.
func (s *MemoryService) DeleteMatch(_ context.Context, matchID, requesterID string) error {
	game, err := s.getGame(matchID)
	if err != nil {
		return err
	}
	if !game.CanDelete(requesterID) {
		return model.ErrUnauthorized
	}

	s.gamesMu.Lock()
	delete(s.games, matchID)
	s.gamesMu.Unlock()

	return nil
}

func (s *MemoryService) publish(matchID string, t events.EventType, playerID, targetID string, data any) {
	if s.eventBus == nil {
		return
	}
	s.eventBus.Publish(&events.GameEvent{
		Type:      t,
		MatchID:   matchID,
		PlayerID:  playerID,
		TargetID:  targetID,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func summaryOf(id string, e *entry) dto.MatchSummary {
	return dto.MatchSummary{
		ID:          id,
		Mode:        dto.ModeToWire(e.game.Mode()),
		Status:      dto.StatusToWire(e.game.Status()),
		HostID:      e.game.Player1ID(),
		OpponentID:  e.game.Player2ID(),
		BaseFleetID: e.game.BaseFleetID(),
		BoardSize:   e.game.BoardSize(),
		CreatedAt:   e.game.CreatedAt(),
	}
}
