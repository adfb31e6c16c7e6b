// Package client provides an HTTP client for the Battleship game server.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ghanshyammann/seawar/internal/dto"
	"github.com/ghanshyammann/seawar/internal/events"
)

// Client is a thin wrapper around the HTTP API, used by the CLI and by
// tests that exercise the server end to end.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New creates a Client pointed at baseURL, with no token set.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(method, path string, body, dest any) error {
	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Error)
	}

	if dest == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

// --- Auth ---

// Login authenticates as username and stores the returned JWT on the
// client for subsequent requests.
func (c *Client) Login(username string) (*dto.AuthResponse, error) {
	req := map[string]string{"username": username}
	var res dto.AuthResponse
	if err := c.do(http.MethodPost, "/login", req, &res); err != nil {
		return nil, err
	}
	c.Token = res.Token
	return &res, nil
}

// --- Lobby ---

// ListFleets lists the base fleets a new game can be created from.
func (c *Client) ListFleets() ([]dto.BaseFleet, error) {
	var fleets []dto.BaseFleet
	err := c.do(http.MethodGet, "/fleets", nil, &fleets)
	return fleets, err
}

// ListOpenGames lists multiplayer games still waiting for a second player.
func (c *Client) ListOpenGames() ([]dto.MatchSummary, error) {
	var matches []dto.MatchSummary
	err := c.do(http.MethodGet, "/games/open", nil, &matches)
	return matches, err
}

// ListMyGames lists every game the authenticated caller participates in.
func (c *Client) ListMyGames() ([]dto.MatchSummary, error) {
	var matches []dto.MatchSummary
	err := c.do(http.MethodGet, "/games/mine", nil, &matches)
	return matches, err
}

// HostGame creates a new game and returns its id.
func (c *Client) HostGame(mode, baseFleetID string, boardSize int) (string, error) {
	req := dto.CreateGameRequest{Mode: mode, BaseFleetID: baseFleetID, BoardSize: boardSize}
	var res struct {
		GameID string `json:"gameId"`
	}
	err := c.do(http.MethodPost, "/games", req, &res)
	return res.GameID, err
}

// JoinGame joins an existing open game.
func (c *Client) JoinGame(gameID string) (*dto.GameView, error) {
	var view dto.GameView
	err := c.do(http.MethodPost, fmt.Sprintf("/games/%s/join", gameID), nil, &view)
	return &view, err
}

// DeleteGame removes a game the caller is allowed to delete.
func (c *Client) DeleteGame(gameID string) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/games/%s", gameID), nil, nil)
}

// --- Gameplay ---

// GetGameState retrieves the current state of a game.
func (c *Client) GetGameState(gameID string) (*dto.GameView, error) {
	var view dto.GameView
	err := c.do(http.MethodGet, fmt.Sprintf("/games/%s", gameID), nil, &view)
	return &view, err
}

// GetStats retrieves aggregate statistics for a finished or in-progress game.
func (c *Client) GetStats(gameID string) (*dto.Stats, error) {
	var stats dto.Stats
	err := c.do(http.MethodGet, fmt.Sprintf("/games/%s/stats", gameID), nil, &stats)
	return &stats, err
}

// ListShots retrieves the full shot history for a game.
func (c *Client) ListShots(gameID string) ([]dto.ShotView, error) {
	var shots []dto.ShotView
	err := c.do(http.MethodGet, fmt.Sprintf("/games/%s/shots", gameID), nil, &shots)
	return shots, err
}

// PlaceShip places the caller's next required ship.
func (c *Client) PlaceShip(gameID string, req dto.PlaceShipRequest) (*dto.GameView, error) {
	var view dto.GameView
	err := c.do(http.MethodPost, fmt.Sprintf("/games/%s/ships", gameID), req, &view)
	return &view, err
}

// Shoot fires at a coordinate on the opponent's board.
func (c *Client) Shoot(gameID, coordinate string) (*dto.ShootResponse, error) {
	var resp dto.ShootResponse
	req := dto.ShootRequest{Coordinate: coordinate}
	err := c.do(http.MethodPost, fmt.Sprintf("/games/%s/shots", gameID), req, &resp)
	return &resp, err
}

// NextEvent long-polls the server for the next event on a game. It blocks
// for up to timeoutSeconds (the server uses 25 instead for any value outside
// 1..55) and returns (nil, nil) if
// no event arrived before the timeout. Callers typically call this in a
// loop to drive a live view of a game without a persistent connection.
func (c *Client) NextEvent(gameID string, timeoutSeconds int) (*events.GameEvent, error) {
	path := fmt.Sprintf("/games/%s/events?timeoutSeconds=%d", gameID, timeoutSeconds)

	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := &http.Client{Timeout: time.Duration(timeoutSeconds+5) * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("api error (%d) subscribing to game %s", resp.StatusCode, gameID)
	}

	var event events.GameEvent
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	return &event, nil
}
