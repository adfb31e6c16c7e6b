// Package api contains the http handlers
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/ghanshyammann/seawar/internal/controller"
	"github.com/ghanshyammann/seawar/internal/dto"
	"github.com/labstack/echo/v4"
)

// EchoHandler has the handlers for the http.Server
type EchoHandler struct{ ctrl *controller.AppController }

// NewEchoHandler creates a new http handler using echo
func NewEchoHandler(c *controller.AppController) *EchoHandler {
	return &EchoHandler{ctrl: c}
}

// Login handles the user login request.
// POST /login
func (h *EchoHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON")
	}

	resp, err := h.ctrl.Login(c.Request().Context(), req.Username, "web", req.Username)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

// ListOpenGames lists multiplayer games still waiting for a second player.
// GET /games/open
func (h *EchoHandler) ListOpenGames(c echo.Context) error {
	matches, err := h.ctrl.ListOpenGamesAction(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, matches)
}

// ListMyGames lists every game the caller participates in.
// GET /games/mine
func (h *EchoHandler) ListMyGames(c echo.Context) error {
	playerID, _ := c.Get("player_id").(string)

	matches, err := h.ctrl.ListMyGamesAction(c.Request().Context(), playerID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, matches)
}

// ListFleets lists the base fleets a new game can be created from.
// GET /fleets
func (h *EchoHandler) ListFleets(c echo.Context) error {
	fleets := h.ctrl.FleetsAction(c.Request().Context())
	return c.JSON(http.StatusOK, dto.FromCatalogFleets(fleets))
}

// HostGame allows a player to host a new game.
// POST /games
func (h *EchoHandler) HostGame(c echo.Context) error {
	playerID, _ := c.Get("player_id").(string)

	var req dto.CreateGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON")
	}

	matchID, err := h.ctrl.HostGameAction(c.Request().Context(), playerID, req.Mode, req.BaseFleetID, req.BoardSize)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"gameId": matchID})
}

// JoinGame allows a player to join an existing game.
// POST /games/:id/join
func (h *EchoHandler) JoinGame(c echo.Context) error {
	matchID := c.Param("id")
	playerID, _ := c.Get("player_id").(string)

	view, err := h.ctrl.JoinGameAction(c.Request().Context(), matchID, playerID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, view)
}

// DeleteGame removes a game the caller is allowed to delete.
// DELETE /games/:id
func (h *EchoHandler) DeleteGame(c echo.Context) error {
	matchID := c.Param("id")
	playerID, _ := c.Get("player_id").(string)

	if err := h.ctrl.DeleteGameAction(c.Request().Context(), matchID, playerID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetState retrieves the current state of a game.
// GET /games/:id
func (h *EchoHandler) GetState(c echo.Context) error {
	matchID := c.Param("id")
	playerID, _ := c.Get("player_id").(string)

	view, err := h.ctrl.GetGameStateAction(c.Request().Context(), matchID, playerID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, view)
}

// GetStats retrieves aggregate statistics for a game.
// GET /games/:id/stats
func (h *EchoHandler) GetStats(c echo.Context) error {
	matchID := c.Param("id")
	playerID, _ := c.Get("player_id").(string)

	stats, err := h.ctrl.GetGameStatsAction(c.Request().Context(), matchID, playerID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, stats)
}

// ListShots retrieves the full shot history for a game.
// GET /games/:id/shots
func (h *EchoHandler) ListShots(c echo.Context) error {
	matchID := c.Param("id")
	playerID, _ := c.Get("player_id").(string)

	shots, err := h.ctrl.ListShotsAction(c.Request().Context(), matchID, playerID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, shots)
}

// PlaceShip allows a player to place their next required ship.
// POST /games/:id/ships
func (h *EchoHandler) PlaceShip(c echo.Context) error {
	var req dto.PlaceShipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON")
	}

	matchID := c.Param("id")
	playerID, _ := c.Get("player_id").(string)

	view, err := h.ctrl.PlaceShipAction(c.Request().Context(), matchID, playerID, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, view)
}

// Shoot allows a player to fire at the opponent's board.
// POST /games/:id/shots
func (h *EchoHandler) Shoot(c echo.Context) error {
	var req dto.ShootRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON")
	}

	matchID := c.Param("id")
	playerID, _ := c.Get("player_id").(string)

	resp, err := h.ctrl.ShootAction(c.Request().Context(), matchID, playerID, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Subscribe long-polls for the next event on a game, returning promptly with
// 204 if none arrives before the client-supplied (or default) timeout.
// GET /games/:id/events
func (h *EchoHandler) Subscribe(c echo.Context) error {
	matchID := c.Param("id")

	sub, ch := h.ctrl.SubscribeToMatch(matchID)
	defer sub.Unsubscribe()

	timeout := 25
	if v := c.QueryParam("timeoutSeconds"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 55 {
			timeout = parsed
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Duration(timeout)*time.Second)
	defer cancel()

	select {
	case event := <-ch:
		return c.JSON(http.StatusOK, event)
	case <-ctx.Done():
		return c.NoContent(http.StatusNoContent)
	}
}
