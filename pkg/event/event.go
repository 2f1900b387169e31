// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Events the collision engine publishes for outside consumers (rendering,
// area-fill scoring, level rules).
const (
	BallsCollided Type = "balls_collided"
	BallBounced   Type = "ball_bounced"
	WallsCollided Type = "walls_collided"
	WallStopped   Type = "wall_stopped"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// CollisionEvent reports a resolved contact between two objects.
type CollisionEvent struct {
	BaseEvent
	EntityA uint64
	EntityB uint64
	Time    float64
	X       float64
	Y       float64
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(eventType Type, source interface{}, entityA, entityB uint64, time, x, y float64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EntityA: entityA,
		EntityB: entityB,
		Time:    time,
		X:       x,
		Y:       y,
	}
}

// WallEvent reports a wall lifecycle change, such as growth halting.
type WallEvent struct {
	BaseEvent
	WallID uint64
}

// NewWallEvent creates a new wall event
func NewWallEvent(eventType Type, source interface{}, wallID uint64) *WallEvent {
	return &WallEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		WallID: wallID,
	}
}
