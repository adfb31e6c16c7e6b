package service

import (
	"testing"
	"time"

	"github.com/ghanshyammann/seawar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patrolFleet() []model.ShipSpec {
	return []model.ShipSpec{
		{TemplateID: "patrol", Name: "Patrol", Size: 1},
		{TemplateID: "patrol", Name: "Patrol", Size: 1},
	}
}

func TestMemoryService_CleanupSweepsStaleInProgressGames(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	active, err := model.NewGame("active", 5, "patrol-pair", model.ModeMultiplayer, "alice", patrolFleet(), base)
	require.NoError(t, err)
	stale, err := model.NewGame("stale", 5, "patrol-pair", model.ModeMultiplayer, "bob", patrolFleet(), base)
	require.NoError(t, err)

	s := &MemoryService{games: map[string]*entry{
		"active": {game: active, createdBy: "alice"},
		"stale":  {game: stale, createdBy: "bob"},
	}}

	// "active" receives fresh activity 23h in; "stale" never does.
	require.NoError(t, active.JoinGame("carol", base.Add(23*time.Hour)))

	s.gc(base.Add(25 * time.Hour))
	assert.Contains(t, s.games, "active", "recently active in-progress game survives gc")
	assert.NotContains(t, s.games, "stale", "in-progress game untouched for over 24h is swept")
}

func TestMemoryService_CleanupSweepsFinishedGamesSooner(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	g, err := model.NewGame("g1", 5, "patrol-pair", model.ModeMultiplayer, "alice", patrolFleet(), base)
	require.NoError(t, err)
	require.NoError(t, g.JoinGame("bob", base))
	for _, id := range []string{"alice", "bob"} {
		_, err := g.PlaceShip(id, "patrol", 0, "A1", model.Horizontal, base)
		require.NoError(t, err)
		_, err = g.PlaceShip(id, "patrol", 1, "A2", model.Horizontal, base)
		require.NoError(t, err)
	}
	_, err = g.Shoot("alice", "A1", base)
	require.NoError(t, err)
	_, err = g.Shoot("bob", "C1", base)
	require.NoError(t, err)
	_, err = g.Shoot("alice", "A2", base)
	require.NoError(t, err)
	require.True(t, g.IsFinished())

	s := &MemoryService{games: map[string]*entry{"g1": {game: g, createdBy: "alice"}}}

	s.gc(base.Add(5 * time.Minute))
	assert.Contains(t, s.games, "g1", "finished game survives gc before the 10m grace period")

	s.gc(base.Add(11 * time.Minute))
	assert.NotContains(t, s.games, "g1", "finished game is swept after the 10m grace period")
}
