package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/nwcorner/pkg/application/services/northwest"
	"github.com/vsinha/nwcorner/pkg/domain/entities"
	"github.com/vsinha/nwcorner/pkg/domain/services"
)

func defaultSteps() []entities.Step {
	balanced := services.NewBalanceAdjuster().Balance(entities.DefaultProblem())
	return northwest.Solve(balanced).Steps
}

func TestPlayer_RevealsEveryStepInOrder(t *testing.T) {
	steps := defaultSteps()

	var seen []int
	err := NewPlayer(0).Play(context.Background(), steps, func(i int, step entities.Step) error {
		seen = append(seen, i)
		assert.True(t, step.CumulativeCost.Equal(steps[i].CumulativeCost))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestPlayer_PacesSteps(t *testing.T) {
	steps := defaultSteps()
	interval := 20 * time.Millisecond

	start := time.Now()
	err := NewPlayer(interval).Play(context.Background(), steps, func(int, entities.Step) error { return nil })
	elapsed := time.Since(start)

	require.NoError(t, err)
	// First step is immediate, the remaining three wait one interval each.
	assert.GreaterOrEqual(t, elapsed, time.Duration(len(steps)-1)*interval-5*time.Millisecond)
}

func TestPlayer_StopsOnCancel(t *testing.T) {
	steps := defaultSteps()
	ctx, cancel := context.WithCancel(context.Background())

	revealed := 0
	err := NewPlayer(time.Hour).Play(ctx, steps, func(int, entities.Step) error {
		revealed++
		cancel()
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, revealed)
}

func TestPlayer_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPlayer(0).Play(ctx, defaultSteps(), func(int, entities.Step) error {
		t.Fatal("reveal must not be called")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayer_RevealError(t *testing.T) {
	boom := errors.New("terminal closed")

	err := NewPlayer(0).Play(context.Background(), defaultSteps(), func(i int, _ entities.Step) error {
		if i == 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "reveal step 3")
}

func TestPlayer_NoSteps(t *testing.T) {
	err := NewPlayer(time.Hour).Play(context.Background(), nil, func(int, entities.Step) error {
		t.Fatal("reveal must not be called")
		return nil
	})
	assert.NoError(t, err)
}
