package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/ghanshyammann/seawar/internal/catalog"
	"github.com/ghanshyammann/seawar/internal/dto"
	"github.com/ghanshyammann/seawar/internal/events"
	"github.com/ghanshyammann/seawar/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBus is a hand-written events.EventBus test double: it records every
// published event instead of dispatching to subscribers.
type fakeBus struct {
	mu        sync.Mutex
	published []*events.GameEvent
}

func (b *fakeBus) Publish(event *events.GameEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event)
}

func (b *fakeBus) Subscribe(string, events.EventHandler) events.Subscription {
	return fakeSubscription{}
}

func (b *fakeBus) Close() {}

func (b *fakeBus) types() []events.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]events.EventType, len(b.published))
	for i, e := range b.published {
		out[i] = e.Type
	}
	return out
}

type fakeSubscription struct{}

func (fakeSubscription) Unsubscribe() {}

func TestMemoryService_PublishesLifecycleEvents(t *testing.T) {
	t.Parallel()
	bus := &fakeBus{}
	s := service.NewMemoryService(catalog.NewProvider(), bus)
	ctx := context.Background()

	matchID, err := s.CreateMatch(ctx, "p1", "multiplayer", "patrol-pair", 5)
	require.NoError(t, err)

	_, err = s.JoinMatch(ctx, matchID, "p2")
	require.NoError(t, err)
	assert.Contains(t, bus.types(), events.EventPlayerJoined)

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

	types := bus.types()
	assert.Contains(t, types, events.EventShipPlaced)
	assert.Contains(t, types, events.EventGameStarted, "game-started fires once both players finish placing")

	_, err = s.Shoot(ctx, matchID, "p1", dto.ShootRequest{Coordinate: "A1"})
	require.NoError(t, err)

	types = bus.types()
	assert.Contains(t, types, events.EventAttackMade)
	assert.Contains(t, types, events.EventTurnChanged, "an unfinished shot passes the turn")
}

func TestMemoryService_PublishesGameOverOnLastShot(t *testing.T) {
	t.Parallel()
	bus := &fakeBus{}
	s := service.NewMemoryService(catalog.NewProvider(), bus)
	ctx := context.Background()

	matchID, err := s.CreateMatch(ctx, "alice", "single_player", "patrol-pair", 5)
	require.NoError(t, err)

	_, err = s.PlaceShip(ctx, matchID, "alice", dto.PlaceShipRequest{
		TemplateID: "patrol", PlacementIndex: 0, Coordinate: "A1", Orientation: "horizontal",
	})
	require.NoError(t, err)
	_, err = s.PlaceShip(ctx, matchID, "alice", dto.PlaceShipRequest{
		TemplateID: "patrol", PlacementIndex: 1, Coordinate: "C1", Orientation: "horizontal",
	})
	require.NoError(t, err)

	// AI's fleet (2 size-2 ships on a 5x5 board) occupies at most 4 cells.
	// Sweep every coordinate until one side's fleet is sunk and the game ends.
	finished := false
	for row := 0; row < 5 && !finished; row++ {
		for col := 0; col < 5 && !finished; col++ {
			coord := string(rune('A'+col)) + string(rune('1'+row))
			resp, err := s.Shoot(ctx, matchID, "alice", dto.ShootRequest{Coordinate: coord})
			if err != nil {
				continue // game over
			}
			finished = resp.GameFinished
		}
	}

	require.True(t, finished, "sweeping the full board must eventually end the game")
	assert.Contains(t, bus.types(), events.EventGameOver)
}
