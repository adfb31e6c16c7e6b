// Package controller contains the main application controller orchestrating
// the flow between identity, lobby, gameplay and notification services. It
// depends only on their interfaces so each can be swapped independently
// (the in-memory implementations live in internal/service).
package controller

import (
	"context"

	"github.com/ghanshyammann/seawar/internal/catalog"
	"github.com/ghanshyammann/seawar/internal/dto"
	"github.com/ghanshyammann/seawar/internal/events"
)

// NotificationService handles event publishing and subscription for a single game.
type NotificationService interface {
	Subscribe(gameID string) (Subscription, <-chan *events.GameEvent)
	Publish(event *events.GameEvent)
}

// Subscription represents a subscription to events.
type Subscription interface {
	Unsubscribe()
}

// IdentityService handles user registration and login.
type IdentityService interface {
	// LoginOrRegister finds an existing user or creates a new one.
	// source identifies the caller's platform: "web", "discord", "cli".
	// extID is the unique id within that platform.
	LoginOrRegister(ctx context.Context, username, source, extID string) (dto.AuthResponse, error)
}

// LobbyService handles discovering, creating and joining matches.
type LobbyService interface {
	// CreateMatch starts a new game for hostID with the given mode and fleet.
	CreateMatch(ctx context.Context, hostID, mode, baseFleetID string, boardSize int) (string, error)
	// ListOpenMatches returns multiplayer games still waiting for a second player.
	ListOpenMatches(ctx context.Context) ([]dto.MatchSummary, error)
	// ListPlayerMatches returns every match playerID participates in.
	ListPlayerMatches(ctx context.Context, playerID string) ([]dto.MatchSummary, error)
	// JoinMatch adds playerID as the second participant of matchID.
	JoinMatch(ctx context.Context, matchID, playerID string) (dto.GameView, error)
	// DeleteMatch removes a match on behalf of requesterID, if permitted.
	DeleteMatch(ctx context.Context, matchID, requesterID string) error
	// Fleets lists the base fleets a new game can be created from.
	Fleets(ctx context.Context) []catalog.BaseFleet
}

// GameService handles gameplay once a match has both players.
type GameService interface {
	// PlaceShip places playerID's next required ship.
	PlaceShip(ctx context.Context, matchID, playerID string, req dto.PlaceShipRequest) (dto.GameView, error)
	// Shoot fires at a coordinate on the opponent's board.
	Shoot(ctx context.Context, matchID, playerID string, req dto.ShootRequest) (dto.ShootResponse, error)
	// GetState returns the current view of the match for playerID.
	GetState(ctx context.Context, matchID, playerID string) (dto.GameView, error)
	// GetStats returns aggregate statistics for the match, from playerID's perspective.
	GetStats(ctx context.Context, matchID, playerID string) (dto.Stats, error)
	// ListShots returns the full shot history for the match, if playerID is a participant.
	ListShots(ctx context.Context, matchID, playerID string) ([]dto.ShotView, error)
}

// AppController is the main controller orchestrating the application flow.
// It is consumed by both the HTTP handlers and the Discord bot.
type AppController struct {
	auth     IdentityService
	lobby    LobbyService
	game     GameService
	notifier NotificationService
}

// NewAppController wires everything together.
func NewAppController(
	a IdentityService,
	l LobbyService,
	g GameService,
	n NotificationService,
) *AppController {
	return &AppController{auth: a, lobby: l, game: g, notifier: n}
}

// Login handles user authentication and registration.
func (c *AppController) Login(
	ctx context.Context,
	username, source, platformID string,
) (dto.AuthResponse, error) {
	return c.auth.LoginOrRegister(ctx, username, source, platformID)
}

// HostGameAction handles a player's request to host a new game.
func (c *AppController) HostGameAction(
	ctx context.Context,
	playerID, mode, baseFleetID string,
	boardSize int,
) (string, error) {
	return c.lobby.CreateMatch(ctx, playerID, mode, baseFleetID, boardSize)
}

// ListOpenGamesAction retrieves games still waiting for an opponent.
func (c *AppController) ListOpenGamesAction(ctx context.Context) ([]dto.MatchSummary, error) {
	return c.lobby.ListOpenMatches(ctx)
}

// ListMyGamesAction retrieves every game playerID participates in.
func (c *AppController) ListMyGamesAction(
	ctx context.Context,
	playerID string,
) ([]dto.MatchSummary, error) {
	return c.lobby.ListPlayerMatches(ctx, playerID)
}

// FleetsAction lists the base fleets a new game can be created from.
func (c *AppController) FleetsAction(ctx context.Context) []catalog.BaseFleet {
	return c.lobby.Fleets(ctx)
}

// JoinGameAction handles a player's request to join an existing game.
func (c *AppController) JoinGameAction(
	ctx context.Context,
	matchID, playerID string,
) (dto.GameView, error) {
	return c.lobby.JoinMatch(ctx, matchID, playerID)
}

// DeleteGameAction handles a player's request to remove a game.
func (c *AppController) DeleteGameAction(ctx context.Context, matchID, playerID string) error {
	return c.lobby.DeleteMatch(ctx, matchID, playerID)
}

// PlaceShipAction handles a ship placement action from a player.
func (c *AppController) PlaceShipAction(
	ctx context.Context,
	matchID, playerID string,
	req dto.PlaceShipRequest,
) (dto.GameView, error) {
	return c.game.PlaceShip(ctx, matchID, playerID, req)
}

// ShootAction handles a shot fired by a player.
func (c *AppController) ShootAction(
	ctx context.Context,
	matchID, playerID string,
	req dto.ShootRequest,
) (dto.ShootResponse, error) {
	return c.game.Shoot(ctx, matchID, playerID, req)
}

// GetGameStateAction retrieves the current state of the game for a player.
func (c *AppController) GetGameStateAction(
	ctx context.Context,
	matchID, playerID string,
) (dto.GameView, error) {
	return c.game.GetState(ctx, matchID, playerID)
}

// GetGameStatsAction retrieves aggregate statistics for the game, from playerID's perspective.
func (c *AppController) GetGameStatsAction(ctx context.Context, matchID, playerID string) (dto.Stats, error) {
	return c.game.GetStats(ctx, matchID, playerID)
}

// ListShotsAction retrieves the full shot history for the game, if playerID is a participant.
func (c *AppController) ListShotsAction(ctx context.Context, matchID, playerID string) ([]dto.ShotView, error) {
	return c.game.ListShots(ctx, matchID, playerID)
}

// SubscribeToMatch allows a caller to subscribe to a match's events.
func (c *AppController) SubscribeToMatch(
	matchID string,
) (sub Subscription, eventChan <-chan *events.GameEvent) {
	return c.notifier.Subscribe(matchID)
}
