package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ghanshyammann/seawar/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestE2E_FullGameScenario(t *testing.T) {
	// Disable rate limiting for E2E tests
	os.Setenv("RATE_LIMIT", "1000")
	defer os.Unsetenv("RATE_LIMIT")

	t.Parallel()

	app := &Application{}
	app.Setup()

	// Use a real HTTP server
	ts := httptest.NewServer(app.E)
	defer ts.Close()

	// 1. Players Login
	aliceClient := &testClient{t: t, baseURL: ts.URL, client: ts.Client()}
	alice := aliceClient.login("Alice")

	bobClient := &testClient{t: t, baseURL: ts.URL, client: ts.Client()}
	bobClient.login("Bob")

	// 2. Host and Join Match
	matchID := aliceClient.hostGame("multiplayer", "patrol-pair", 5)
	bobClient.joinGame(matchID)

	// 3. Place Ships. patrol-pair is two size-2 ships; place them
	// non-overlapping on a 5x5 board for both players.
	for _, c := range []*testClient{aliceClient, bobClient} {
		c.placeShip(matchID, "patrol", 0, "A1", "horizontal")
		c.placeShip(matchID, "patrol", 1, "C1", "horizontal")
	}

	// 4. Verify Game Started
	state := aliceClient.getState(matchID)
	require.Equal(t, "in_progress", state.Status)
	require.Equal(t, alice.ID, state.CurrentTurn, "the host moves first")

	// 5. Game Loop: Alice sinks Bob's fleet at A1, A2 (first ship) and
	// C1, C2 (second ship). Turn passes on every shot, so Bob fires back
	// after each of Alice's shots at a fresh coordinate guaranteed to miss.
	shots := []string{"A1", "A2", "C1", "C2"}
	bobMisses := []string{"E1", "E2", "E3", "E4"}
	var last dto.ShootResponse
	for i, coord := range shots {
		last = aliceClient.shoot(matchID, coord)
		if last.GameFinished {
			break
		}
		bobClient.shoot(matchID, bobMisses[i])
	}

	// 6. Verify Game Over
	require.True(t, last.GameFinished)
	require.Equal(t, alice.ID, last.WinnerID)

	finalState := aliceClient.getState(matchID)
	require.Equal(t, "finished", finalState.Status)
}

// --- Test Helper ---

type testClient struct {
	t       *testing.T
	baseURL string
	client  *http.Client
	token   string
}

type testResponse struct {
	Code int
	Body *bytes.Buffer
}

func (c *testClient) do(method, path string, body interface{}) *testResponse {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err, "failed to marshal request body")
		reqBody = bytes.NewBuffer(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	require.NoError(c.t, err, "failed to create request")

	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if c.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	require.NoError(c.t, err, "failed to execute request")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err, "failed to read response body")

	return &testResponse{
		Code: resp.StatusCode,
		Body: bytes.NewBuffer(respBody),
	}
}

func (c *testClient) login(username string) dto.User {
	rec := c.do(http.MethodPost, "/login", map[string]string{"username": username})
	require.Equal(c.t, http.StatusOK, rec.Code)

	var resp dto.AuthResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(c.t, err)

	c.token = resp.Token
	return resp.User
}

func (c *testClient) hostGame(mode, baseFleetID string, boardSize int) string {
	rec := c.do(http.MethodPost, "/games", dto.CreateGameRequest{
		Mode: mode, BaseFleetID: baseFleetID, BoardSize: boardSize,
	})
	require.Equal(c.t, http.StatusCreated, rec.Code)

	var resp map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(c.t, err)
	return resp["gameId"]
}

func (c *testClient) joinGame(matchID string) {
	rec := c.do(http.MethodPost, "/games/"+matchID+"/join", nil)
	require.Equal(c.t, http.StatusOK, rec.Code)
}

func (c *testClient) placeShip(matchID, templateID string, idx int, coordinate, orientation string) {
	rec := c.do(http.MethodPost, "/games/"+matchID+"/ships", dto.PlaceShipRequest{
		TemplateID:     templateID,
		PlacementIndex: idx,
		Coordinate:     coordinate,
		Orientation:    orientation,
	})
	require.Equal(c.t, http.StatusOK, rec.Code, "placeShip failed for %s at %s", templateID, coordinate)
}

func (c *testClient) getState(matchID string) dto.GameView {
	rec := c.do(http.MethodGet, "/games/"+matchID, nil)
	require.Equal(c.t, http.StatusOK, rec.Code)

	var state dto.GameView
	err := json.Unmarshal(rec.Body.Bytes(), &state)
	require.NoError(c.t, err)
	return state
}

func (c *testClient) shoot(matchID, coordinate string) dto.ShootResponse {
	rec := c.do(http.MethodPost, "/games/"+matchID+"/shots", dto.ShootRequest{Coordinate: coordinate})
	require.Equal(c.t, http.StatusOK, rec.Code, "shoot failed at %s", coordinate)

	var resp dto.ShootResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(c.t, err)
	return resp
}
