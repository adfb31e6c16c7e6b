package service

import (
	"github.com/ghanshyammann/seawar/internal/controller"
	"github.com/ghanshyammann/seawar/internal/events"
)

var _ controller.NotificationService = (*NotificationService)(nil)

// NotificationService adapts an events.EventBus to the channel-based
// controller.NotificationService interface HTTP long-poll and Discord
// handlers consume.
type NotificationService struct {
	bus events.EventBus
}

// NewNotificationService wraps bus for controller consumption.
func NewNotificationService(bus events.EventBus) *NotificationService {
	return &NotificationService{bus: bus}
}

// Subscribe returns a channel of events for the given match.
func (s *NotificationService) Subscribe(matchID string) (controller.Subscription, <-chan *events.GameEvent) {
	ch := make(chan *events.GameEvent, 100)

	sub := s.bus.Subscribe(matchID, func(event *events.GameEvent) {
		select {
		case ch <- event:
		default:
		}
	})

	return sub, ch
}

// Publish publishes an event to the underlying bus.
func (s *NotificationService) Publish(event *events.GameEvent) {
	s.bus.Publish(event)
}
