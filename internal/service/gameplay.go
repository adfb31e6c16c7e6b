package service

import (
	"context"
	"time"

	"github.com/ghanshyammann/seawar/internal/dto"
	"github.com/ghanshyammann/seawar/internal/events"
	"github.com/ghanshyammann/seawar/internal/model"
)

// PlaceShip bridges the wire-level request into the engine's PlaceShip call
// and emits a ship-placed event to the opponent.
func (s *MemoryService) PlaceShip(
	_ context.Context,
	matchID, playerID string,
	req dto.PlaceShipRequest,
) (dto.GameView, error) {
	game, err := s.getGame(matchID)
	if err != nil {
		return dto.GameView{}, err
	}

	orientation, ok := dto.ParseOrientation(req.Orientation)
	if !ok {
		return dto.GameView{}, model.ErrMalformedCoordinate
	}

	if _, err := game.PlaceShip(
		playerID, req.TemplateID, req.PlacementIndex, req.Coordinate, orientation, time.Now(),
	); err != nil {
		return dto.GameView{}, err
	}

	s.publish(matchID, events.EventShipPlaced, playerID, opponentOf(game, playerID), events.ShipPlacedEventData{
		TemplateID: req.TemplateID,
		Coordinate: req.Coordinate,
		Vertical:   orientation == model.Vertical,
	})

	if game.Status() == model.StatusInProgress {
		s.publish(matchID, events.EventGameStarted, playerID, opponentOf(game, playerID), nil)
	}

	view, err := game.GetView(playerID)
	if err != nil {
		return dto.GameView{}, err
	}
	return dto.FromModelView(view), nil
}

// Shoot bridges the wire-level request into the engine's Shoot call and
// emits attack and (if applicable) game-over and turn-changed events.
func (s *MemoryService) Shoot(
	_ context.Context,
	matchID, playerID string,
	req dto.ShootRequest,
) (dto.ShootResponse, error) {
	game, err := s.getGame(matchID)
	if err != nil {
		return dto.ShootResponse{}, err
	}

	outcome, err := game.Shoot(playerID, req.Coordinate, time.Now())
	if err != nil {
		return dto.ShootResponse{}, err
	}

	opponent := opponentOf(game, playerID)
	s.publish(matchID, events.EventAttackMade, playerID, opponent, events.AttackEventData{
		Coordinate: req.Coordinate,
		Result:     outcome.Result.String(),
	})

	if outcome.GameFinished {
		s.publish(matchID, events.EventGameOver, playerID, opponent, events.GameOverEventData{
			Winner: outcome.WinnerID,
		})
	} else {
		s.publish(matchID, events.EventTurnChanged, playerID, opponent, nil)
	}

	return dto.FromModelShotOutcome(outcome), nil
}

// GetState returns the current view of the match for playerID.
func (s *MemoryService) GetState(_ context.Context, matchID, playerID string) (dto.GameView, error) {
	game, err := s.getGame(matchID)
	if err != nil {
		return dto.GameView{}, err
	}

	view, err := game.GetView(playerID)
	if err != nil {
		return dto.GameView{}, err
	}
	return dto.FromModelView(view), nil
}

// GetStats returns aggregate statistics for the match, scoped to playerID's
// own perspective. Only a participant may request a game's stats.
func (s *MemoryService) GetStats(_ context.Context, matchID, playerID string) (dto.Stats, error) {
	game, err := s.getGame(matchID)
	if err != nil {
		return dto.Stats{}, err
	}

	stats, err := game.GetStats(playerID)
	if err != nil {
		return dto.Stats{}, err
	}
	return dto.FromModelStats(stats), nil
}

// ListShots returns the full shot history for the match. Only a
// participant may request a game's shot history.
func (s *MemoryService) ListShots(_ context.Context, matchID, playerID string) ([]dto.ShotView, error) {
	game, err := s.getGame(matchID)
	if err != nil {
		return nil, err
	}

	history, err := game.ShotHistory(playerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ShotView, len(history))
	for i, shot := range history {
		out[i] = dto.ShotView{
			Coordinate: model.Format(shot.Coordinate.Row, shot.Coordinate.Col),
			Result:     shot.Result.String(),
		}
	}
	return out, nil
}

func opponentOf(game *model.Game, playerID string) string {
	if game.Player1ID() == playerID {
		return game.Player2ID()
	}
	return game.Player1ID()
}
