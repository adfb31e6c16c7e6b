package service_test

import (
	"context"
	"testing"

	"github.com/ghanshyammann/seawar/internal/catalog"
	"github.com/ghanshyammann/seawar/internal/dto"
	"github.com/ghanshyammann/seawar/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *service.MemoryService {
	return service.NewMemoryService(catalog.NewProvider(), nil)
}

func TestMemoryService_LobbyFlow(t *testing.T) {
	t.Parallel()
	s := newTestService()
	ctx := context.Background()

	matchID, err := s.CreateMatch(ctx, "host-1", "multiplayer", "patrol-pair", 5)
	require.NoError(t, err)
	assert.NotEmpty(t, matchID)

	open, err := s.ListOpenMatches(ctx)
	require.NoError(t, err)
	found := false
	for _, m := range open {
		if m.ID == matchID {
			found = true
			assert.Equal(t, "host-1", m.HostID)
		}
	}
	assert.True(t, found, "match should be listed while waiting for player2")

	view, err := s.JoinMatch(ctx, matchID, "guest-1")
	require.NoError(t, err)
	assert.Equal(t, "both_players_placing", view.Status)

	open, _ = s.ListOpenMatches(ctx)
	for _, m := range open {
		assert.NotEqual(t, matchID, m.ID, "joined match should drop out of the open list")
	}
}

func TestMemoryService_JoinErrors(t *testing.T) {
	t.Parallel()
	s := newTestService()
	ctx := context.Background()

	_, err := s.JoinMatch(ctx, "non-existent", "p1")
	assert.ErrorIs(t, err, service.ErrMatchNotFound)
}

func TestMemoryService_GameplayFlow(t *testing.T) {
	t.Parallel()
	s := newTestService()
	ctx := context.Background()

	matchID, err := s.CreateMatch(ctx, "p1", "multiplayer", "patrol-pair", 5)
	require.NoError(t, err)
	_, err = s.JoinMatch(ctx, matchID, "p2")
	require.NoError(t, err)

	for _, id := range []string{"p1", "p2"} {
		_, err := s.PlaceShip(ctx, matchID, id, dto.PlaceShipRequest{
			TemplateID: "patrol", PlacementIndex: 0, Coordinate: "A1", Orientation: "horizontal",
		})
		require.NoError(t, err)
		_, err = s.PlaceShip(ctx, matchID, id, dto.PlaceShipRequest{
			TemplateID: "patrol", PlacementIndex: 1, Coordinate: "C1", Orientation: "horizontal",
		})
		require.NoError(t, err)
	}

	state, err := s.GetState(ctx, matchID, "p1")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", state.Status)
}

func TestMemoryService_ShootNotStarted(t *testing.T) {
	t.Parallel()
	s := newTestService()
	ctx := context.Background()

	matchID, err := s.CreateMatch(ctx, "p1", "multiplayer", "patrol-pair", 5)
	require.NoError(t, err)

	_, err = s.Shoot(ctx, matchID, "p1", dto.ShootRequest{Coordinate: "A1"})
	assert.Error(t, err)
}

func TestMemoryService_SinglePlayerAutoPlacesAI(t *testing.T) {
	t.Parallel()
	s := newTestService()
	ctx := context.Background()

	matchID, err := s.CreateMatch(ctx, "alice", "single_player", "patrol-pair", 5)
	require.NoError(t, err)

	view, err := s.GetState(ctx, matchID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "waiting_for_placement", view.Status)
}
