// Package travel estimates door-to-door travel time between event
// locations. The estimate feeds the secondary conflict check; any
// provider failure downgrades that check instead of failing the request.
package travel

import (
	"context"
	"time"
)

// Provider answers "how long to get from origin to destination, arriving
// at arrival". ok is false when no estimate exists (unknown address,
// provider unconfigured); that is not an error.
type Provider interface {
	Estimate(ctx context.Context, origin, destination string, arrival time.Time) (duration time.Duration, ok bool, err error)
}

// Noop is the provider used when travel checking is unconfigured.
type Noop struct{}

func (Noop) Estimate(context.Context, string, string, time.Time) (time.Duration, bool, error) {
	return 0, false, nil
}

// Static returns fixed durations per origin→destination pair. Test and
// offline use.
type Static struct {
	Durations map[[2]string]time.Duration
}

func (s Static) Estimate(_ context.Context, origin, destination string, _ time.Time) (time.Duration, bool, error) {
	d, ok := s.Durations[[2]string{origin, destination}]
	return d, ok, nil
}
