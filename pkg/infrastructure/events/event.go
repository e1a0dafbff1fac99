package events

import (
	"time"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

// EventType names what happened to a problem during a session
type EventType string

const (
	ProblemLoaded EventType = "problem_loaded"
	ProblemEdited EventType = "problem_edited"
	ProblemSolved EventType = "problem_solved"
	ProblemUndone EventType = "problem_undone"
)

// Event records one change to, or solve of, the problem of a session.
// Problem is a snapshot taken after the change.
type Event struct {
	Type      EventType
	Session   string
	Command   string
	Problem   entities.Problem
	TotalCost *entities.Quantity // set for ProblemSolved
	Time      time.Time
	Version   int // 1-based position within the session, assigned by the store
}

// EventHandler receives events after they are stored
type EventHandler func(Event)

// EventStore keeps the event history of editing sessions
type EventStore interface {
	AppendEvent(event Event) (Event, error)
	ReadEvents(session string, fromVersion int) ([]Event, error)
	ReadAllEvents(fromPosition int) ([]Event, error)
	Subscribe(eventTypes []EventType, handler EventHandler)
}

// NewEvent creates an event holding a private copy of p
func NewEvent(eventType EventType, session, command string, p entities.Problem) Event {
	return Event{
		Type:    eventType,
		Session: session,
		Command: command,
		Problem: p.Clone(),
		Time:    time.Now(),
	}
}

// NewSolvedEvent creates a ProblemSolved event carrying the total cost
func NewSolvedEvent(session string, p entities.Problem, totalCost entities.Quantity) Event {
	e := NewEvent(ProblemSolved, session, "solve", p)
	e.TotalCost = &totalCost
	return e
}

// UndoTarget replays history and returns the problem an undo restores.
// Undo events pop the most recent change; solve events are ignored.
// ok is false when nothing is left to undo.
func UndoTarget(history []Event) (p entities.Problem, ok bool) {
	var snapshots []entities.Problem
	for _, e := range history {
		switch e.Type {
		case ProblemLoaded, ProblemEdited:
			snapshots = append(snapshots, e.Problem)
		case ProblemUndone:
			if len(snapshots) > 1 {
				snapshots = snapshots[:len(snapshots)-1]
			}
		}
	}

	if len(snapshots) < 2 {
		return entities.Problem{}, false
	}
	return snapshots[len(snapshots)-2].Clone(), true
}
