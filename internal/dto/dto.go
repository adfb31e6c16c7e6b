// Package dto contains the wire-level request and response payloads for
// the HTTP API and Discord bot. It depends on internal/model but is never
// imported back by it: the engine has no notion of JSON or Discord embeds.
package dto

import (
	"time"

	"github.com/ghanshyammann/seawar/internal/catalog"
	"github.com/ghanshyammann/seawar/internal/model"
)

// User represents an authenticated caller.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthResponse serves a freshly issued JWT token along with the user it was issued for.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MatchSummary describes one open or in-progress game for a lobby listing.
type MatchSummary struct {
	ID          string    `json:"gameId"`
	Mode        string    `json:"mode"`
	Status      string    `json:"status"`
	HostID      string    `json:"hostId"`
	OpponentID  string    `json:"opponentId,omitempty"`
	BaseFleetID string    `json:"baseFleetId"`
	BoardSize   int       `json:"boardSize"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateGameRequest is the payload for starting a new game.
type CreateGameRequest struct {
	Mode        string `json:"mode"`
	BaseFleetID string `json:"baseFleetId"`
	BoardSize   int    `json:"boardSize"`
}

// PlaceShipRequest is the payload for placing the caller's next required ship.
type PlaceShipRequest struct {
	TemplateID     string `json:"templateId"`
	PlacementIndex int    `json:"placementIndex"`
	Coordinate     string `json:"coordinate"`
	Orientation    string `json:"orientation"`
}

// ShootRequest is the payload for firing at a coordinate on the opponent's board.
type ShootRequest struct {
	Coordinate string `json:"coordinate"`
}

// ShootResponse reports the outcome of a shot, including any AI follow-up
// shot in single-player mode.
type ShootResponse struct {
	Result       string  `json:"result"`
	ShipName     string  `json:"shipName,omitempty"`
	GameFinished bool    `json:"gameFinished"`
	WinnerID     string  `json:"winnerId,omitempty"`
	AIShot       *ShotView `json:"aiShot,omitempty"`
}

// SegmentView is one cell of a ship, as seen by an observer.
type SegmentView struct {
	Coordinate string `json:"coordinate"`
	IsHit      bool   `json:"isHit"`
}

// ShipView describes one ship within a PlayerView.
type ShipView struct {
	TemplateID     string        `json:"templateId"`
	Name           string        `json:"name"`
	Size           int           `json:"size"`
	PlacementIndex int           `json:"placementIndex"`
	IsSunk         bool          `json:"isSunk"`
	Segments       []SegmentView `json:"segments,omitempty"`
}

// ShotView is one shot a player has taken.
type ShotView struct {
	Coordinate string `json:"coordinate"`
	Result     string `json:"result"`
}

// PlayerView is one side of a GameView: full detail for the observer's own
// side, fog-of-war for the opponent's.
type PlayerView struct {
	PlayerID   string     `json:"playerId"`
	Ships      []ShipView `json:"ships"`
	ShotsTaken []ShotView `json:"shotsTaken"`
}

// GameView is the full state packet returned by GET /games/:id.
type GameView struct {
	GameID      string     `json:"gameId"`
	Mode        string     `json:"mode"`
	Status      string     `json:"status"`
	CurrentTurn string     `json:"currentTurn"`
	WinnerID    string     `json:"winnerId,omitempty"`
	Self        PlayerView `json:"self"`
	Opponent    PlayerView `json:"opponent"`
}

// Stats is the aggregate reporting packet returned by GET /games/:id/stats,
// scoped to the requesting observer's own shots and ships.
type Stats struct {
	GameID          string  `json:"gameId"`
	Mode            string  `json:"mode"`
	Status          string  `json:"status"`
	WinnerID        string  `json:"winnerId,omitempty"`
	TotalShots      int     `json:"totalShots"`
	Hits            int     `json:"hits"`
	Misses          int     `json:"misses"`
	Accuracy        float64 `json:"accuracy"`
	EnemyShipsSunk  int     `json:"enemyShipsSunk"`
	OwnShipsSunk    int     `json:"ownShipsSunk"`
	DurationSeconds int64   `json:"durationSeconds"`
}

// ShipTemplate describes one kind of ship in a catalog listing.
type ShipTemplate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int    `json:"size"`
}

// BaseFleet describes one selectable fleet in a catalog listing.
type BaseFleet struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Ships []ShipTemplate `json:"ships"`
}

// FromCatalogFleet converts a catalog.BaseFleet into its wire representation.
func FromCatalogFleet(f catalog.BaseFleet) BaseFleet {
	ships := make([]ShipTemplate, len(f.Ships))
	for i, t := range f.Ships {
		ships[i] = ShipTemplate{ID: t.ID, Name: t.Name, Size: t.Size}
	}
	return BaseFleet{ID: f.ID, Name: f.Name, Ships: ships}
}

// FromCatalogFleets converts a slice of catalog.BaseFleet into their wire representation.
func FromCatalogFleets(fleets []catalog.BaseFleet) []BaseFleet {
	out := make([]BaseFleet, len(fleets))
	for i, f := range fleets {
		out[i] = FromCatalogFleet(f)
	}
	return out
}

// ModeToWire renders a model.Mode using the wire vocabulary.
func ModeToWire(m model.Mode) string {
	if m == model.ModeSinglePlayer {
		return "single_player"
	}
	return "multiplayer"
}

// StatusToWire renders a model.Status using the wire vocabulary.
func StatusToWire(s model.Status) string {
	switch s {
	case model.StatusWaitingForPlayer2:
		return "waiting_for_player2"
	case model.StatusWaitingForPlacement:
		return "waiting_for_placement"
	case model.StatusBothPlayersPlacing:
		return "both_players_placing"
	case model.StatusPlayer1Placing:
		return "player1_placing"
	case model.StatusPlayer2Placing:
		return "player2_placing"
	case model.StatusInProgress:
		return "in_progress"
	case model.StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

func orientationFromWire(s string) (model.Orientation, bool) {
	switch s {
	case "horizontal", "H", "h":
		return model.Horizontal, true
	case "vertical", "V", "v":
		return model.Vertical, true
	default:
		return 0, false
	}
}

// FromModelView converts an engine View into its wire representation.
func FromModelView(v model.View) GameView {
	return GameView{
		GameID:      v.GameID,
		Mode:        ModeToWire(v.Mode),
		Status:      StatusToWire(v.Status),
		CurrentTurn: v.CurrentTurn,
		WinnerID:    v.WinnerID,
		Self:        fromPlayerSummary(v.Self),
		Opponent:    fromPlayerSummary(v.Opponent),
	}
}

func fromPlayerSummary(p model.PlayerSummary) PlayerView {
	view := PlayerView{
		PlayerID: p.PlayerID,
		Ships:    make([]ShipView, len(p.Ships)),
		ShotsTaken: make([]ShotView, len(p.ShotsTaken)),
	}
	for i, s := range p.Ships {
		view.Ships[i] = fromShipView(s)
	}
	for i, s := range p.ShotsTaken {
		view.ShotsTaken[i] = ShotView{Coordinate: s.Coordinate, Result: s.Result.String()}
	}
	return view
}

func fromShipView(s model.ShipView) ShipView {
	sv := ShipView{
		TemplateID:     s.TemplateID,
		Name:           s.Name,
		Size:           s.Size,
		PlacementIndex: s.PlacementIndex,
		IsSunk:         s.IsSunk,
	}
	for _, seg := range s.Segments {
		sv.Segments = append(sv.Segments, SegmentView{Coordinate: seg.Coordinate, IsHit: seg.IsHit})
	}
	return sv
}

// FromModelStats converts engine Stats into its wire representation.
func FromModelStats(s model.Stats) Stats {
	return Stats{
		GameID:          s.GameID,
		Mode:            ModeToWire(s.Mode),
		Status:          StatusToWire(s.Status),
		WinnerID:        s.WinnerID,
		TotalShots:      s.TotalShots,
		Hits:            s.Hits,
		Misses:          s.Misses,
		Accuracy:        s.Accuracy,
		EnemyShipsSunk:  s.EnemyShipsSunk,
		OwnShipsSunk:    s.OwnShipsSunk,
		DurationSeconds: s.DurationSeconds,
	}
}

// FromModelShotOutcome converts an engine ShotOutcome into its wire representation.
func FromModelShotOutcome(o model.ShotOutcome) ShootResponse {
	resp := ShootResponse{
		Result:       o.Result.String(),
		ShipName:     o.ShipName,
		GameFinished: o.GameFinished,
		WinnerID:     o.WinnerID,
	}
	if o.AIShot != nil {
		resp.AIShot = &ShotView{
			Coordinate: model.Format(o.AIShot.Coordinate.Row, o.AIShot.Coordinate.Col),
			Result:     o.AIShot.Result.String(),
		}
	}
	return resp
}
