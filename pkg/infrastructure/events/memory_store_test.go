package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

func TestInMemoryEventStore_AppendAssignsVersions(t *testing.T) {
	store := NewInMemoryEventStore()
	p := entities.DefaultProblem()

	first, err := store.AppendEvent(NewEvent(ProblemLoaded, "a", "load", p))
	require.NoError(t, err)
	second, err := store.AppendEvent(NewEvent(ProblemEdited, "a", "add-supplier", p.WithSupplier()))
	require.NoError(t, err)
	other, err := store.AppendEvent(NewEvent(ProblemLoaded, "b", "load", p))
	require.NoError(t, err)

	assert.Equal(t, 1, first.Version)
	assert.Equal(t, 2, second.Version)
	assert.Equal(t, 1, other.Version)

	events, err := store.ReadEvents("a", 2)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "add-supplier", events[0].Command)

	all, err := store.ReadAllEvents(1)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	missing, err := store.ReadEvents("missing", 1)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestInMemoryEventStore_SnapshotsAreCopies(t *testing.T) {
	store := NewInMemoryEventStore()
	p := entities.DefaultProblem()

	_, err := store.AppendEvent(NewEvent(ProblemLoaded, "a", "load", p))
	require.NoError(t, err)
	p.Supply[0] = entities.NewQuantity(1)

	events, err := store.ReadEvents("a", 1)
	require.NoError(t, err)
	assert.True(t, events[0].Problem.Supply[0].Equal(entities.NewQuantity(100)))
}

func TestInMemoryEventStore_RejectsEmptySession(t *testing.T) {
	_, err := NewInMemoryEventStore().AppendEvent(NewEvent(ProblemLoaded, "", "load", entities.DefaultProblem()))
	assert.Error(t, err)
}

func TestInMemoryEventStore_Subscribe(t *testing.T) {
	store := NewInMemoryEventStore()

	var solved []Event
	store.Subscribe([]EventType{ProblemSolved}, func(e Event) { solved = append(solved, e) })

	p := entities.DefaultProblem()
	_, err := store.AppendEvent(NewEvent(ProblemLoaded, "a", "load", p))
	require.NoError(t, err)
	_, err = store.AppendEvent(NewSolvedEvent("a", p, entities.NewQuantity(2420)))
	require.NoError(t, err)

	require.Len(t, solved, 1)
	assert.True(t, solved[0].TotalCost.Equal(entities.NewQuantity(2420)))
	assert.Equal(t, 2, solved[0].Version)
}

func TestUndoTarget(t *testing.T) {
	p := entities.DefaultProblem()
	grown := p.WithConsumer()
	grownTwice := grown.WithConsumer()

	history := []Event{
		NewEvent(ProblemLoaded, "a", "load", p),
		NewEvent(ProblemEdited, "a", "add-consumer", grown),
		NewSolvedEvent("a", grown, entities.NewQuantity(1)),
		NewEvent(ProblemEdited, "a", "add-consumer", grownTwice),
	}

	target, ok := UndoTarget(history)
	require.True(t, ok)
	assert.Equal(t, 4, target.Consumers())

	history = append(history, NewEvent(ProblemUndone, "a", "undo", target))
	target, ok = UndoTarget(history)
	require.True(t, ok)
	assert.Equal(t, 3, target.Consumers())

	history = append(history, NewEvent(ProblemUndone, "a", "undo", target))
	_, ok = UndoTarget(history)
	assert.False(t, ok)
}
