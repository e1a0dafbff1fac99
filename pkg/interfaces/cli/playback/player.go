package playback

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
)

// DefaultInterval is the delay between revealed steps
const DefaultInterval = time.Second

// RevealFunc is called once per step, in order
type RevealFunc func(index int, step entities.Step) error

// Player reveals an already computed step sequence at a fixed cadence.
// It never computes anything; pacing is purely presentational.
type Player struct {
	interval time.Duration
}

// NewPlayer creates a player. An interval <= 0 reveals every step immediately.
func NewPlayer(interval time.Duration) *Player {
	return &Player{interval: interval}
}

// Interval returns the delay between steps
func (p *Player) Interval() time.Duration {
	return p.interval
}

// Play calls reveal for every step. The first step is revealed without delay.
// Cancelling ctx stops playback before the next step and returns ctx.Err().
func (p *Player) Play(ctx context.Context, steps []entities.Step, reveal RevealFunc) error {
	var limiter *rate.Limiter
	if p.interval > 0 {
		limiter = rate.NewLimiter(rate.Every(p.interval), 1)
	}

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				return fmt.Errorf("playback wait: %w", err)
			}
		}
		if err := reveal(i, step); err != nil {
			return fmt.Errorf("reveal step %d: %w", i+1, err)
		}
	}
	return nil
}
