package fetcher

import (
	"math/rand"
	"time"
)

// DelayStrategy paces outbound requests. The crawler issues requests
// strictly one at a time, so Wait blocks the whole run.
type DelayStrategy interface {
	Wait()
}

// UniformRandomDelay sleeps a uniformly-random duration in [Min, Max]
// before every request, with an occasional longer pause on top to keep
// the request pattern from looking machine-generated.
type UniformRandomDelay struct {
	Min time.Duration
	Max time.Duration
}

func NewUniformRandomDelay(min, max time.Duration) *UniformRandomDelay {
	return &UniformRandomDelay{Min: min, Max: max}
}

func (d *UniformRandomDelay) Wait() {
	delay := d.Min
	if d.Max > d.Min {
		delay += time.Duration(rand.Int63n(int64(d.Max - d.Min + 1)))
	}
	if rand.Float64() < 0.1 {
		delay += time.Second + time.Duration(rand.Int63n(int64(2*time.Second)))
	}
	time.Sleep(delay)
}

// NoDelay disables pacing. Test use only.
type NoDelay struct{}

func (NoDelay) Wait() {}
