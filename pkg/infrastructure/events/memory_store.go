package events

import (
	"fmt"
	"sync"
)

// InMemoryEventStore keeps events in memory, per session and globally ordered
type InMemoryEventStore struct {
	streams     map[string][]Event
	subscribers map[EventType][]EventHandler
	mutex       sync.RWMutex
	allEvents   []Event
}

var _ EventStore = (*InMemoryEventStore)(nil)

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[EventType][]EventHandler),
		allEvents:   make([]Event, 0),
	}
}

// AppendEvent stores event with the next version of its session and returns
// the stored copy. Subscribers are called synchronously, outside the lock.
func (s *InMemoryEventStore) AppendEvent(event Event) (Event, error) {
	if event.Session == "" {
		return Event{}, fmt.Errorf("event session cannot be empty")
	}

	s.mutex.Lock()
	event.Problem = event.Problem.Clone()
	event.Version = len(s.streams[event.Session]) + 1
	s.streams[event.Session] = append(s.streams[event.Session], event)
	s.allEvents = append(s.allEvents, event)
	handlers := append([]EventHandler(nil), s.subscribers[event.Type]...)
	s.mutex.Unlock()

	for _, handler := range handlers {
		handler(event)
	}
	return event, nil
}

// ReadEvents returns the events of session starting at fromVersion
func (s *InMemoryEventStore) ReadEvents(session string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events, exists := s.streams[session]
	if !exists {
		return []Event{}, nil
	}

	if fromVersion < 1 {
		fromVersion = 1
	}

	if fromVersion > len(events) {
		return []Event{}, nil
	}

	return append([]Event(nil), events[fromVersion-1:]...), nil
}

// ReadAllEvents returns every stored event starting at fromPosition (0-based)
func (s *InMemoryEventStore) ReadAllEvents(fromPosition int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if fromPosition < 0 {
		fromPosition = 0
	}

	if fromPosition >= len(s.allEvents) {
		return []Event{}, nil
	}

	return append([]Event(nil), s.allEvents[fromPosition:]...), nil
}

// Subscribe registers handler for the given event types
func (s *InMemoryEventStore) Subscribe(eventTypes []EventType, handler EventHandler) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}
}
