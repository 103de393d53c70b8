package playback

import (
	"context"
	"errors"
	"time"
)

// ErrNilFunc is returned by Run when no frame callback is given.
var ErrNilFunc = errors.New("playback: frame callback is nil")

// Player steps through a fixed sequence of frames. It is not safe for
// concurrent use; Run owns the player until it returns.
type Player[T any] struct {
	frames []T
	pos    int
}

// NewPlayer returns a Player positioned before the first frame. The slice
// is copied.
func NewPlayer[T any](frames []T) *Player[T] {
	cp := make([]T, len(frames))
	copy(cp, frames)

	return &Player[T]{frames: cp}
}

// Next returns the next frame, or false when all frames have been played.
func (p *Player[T]) Next() (T, bool) {
	if p.pos >= len(p.frames) {
		var zero T
		return zero, false
	}
	f := p.frames[p.pos]
	p.pos++

	return f, true
}

// Played returns the frames emitted so far.
func (p *Player[T]) Played() []T {
	return p.frames[:p.pos:p.pos]
}

// Done reports whether every frame has been emitted.
func (p *Player[T]) Done() bool { return p.pos >= len(p.frames) }

// Len returns the total number of frames.
func (p *Player[T]) Len() int { return len(p.frames) }

// Reset rewinds to before the first frame.
func (p *Player[T]) Reset() { p.pos = 0 }

// Run emits the remaining frames to fn, one per interval. The first frame
// is emitted immediately. A non-positive interval plays without pauses.
// Run returns nil once the frames are exhausted, ctx.Err() on cancellation,
// or the first error from fn. The position is kept, so a cancelled Run can
// be resumed. A nil ctx means context.Background().
func (p *Player[T]) Run(ctx context.Context, interval time.Duration, fn func(T) error) error {
	if fn == nil {
		return ErrNilFunc
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	for first := true; !p.Done(); first = false {
		if !first && tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		f, _ := p.Next()
		if err := fn(f); err != nil {
			return err
		}
	}

	return nil
}
