// Package calendar implements the conflict-detection and free-slot search
// engine. All functions are pure computations over pre-fetched events;
// network access stays with the providers in internal/google and
// internal/travel.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval indicates an interval whose start is after its end.
var ErrInvalidInterval = errors.New("interval start is after end")

// TimeInterval is a half-open time range [Start, End). Zero-length
// intervals are degenerate but allowed; they never overlap anything.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval and rejects start > end.
func NewInterval(start, end time.Time) (TimeInterval, error) {
	if start.After(end) {
		return TimeInterval{}, fmt.Errorf("%w: start %s, end %s",
			ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeInterval{Start: start, End: end}, nil
}

// In returns the interval with both endpoints localized to loc and
// sub-second precision stripped. Provider responses carry inconsistent
// fractional seconds that would otherwise produce false overlaps.
func (iv TimeInterval) In(loc *time.Location) TimeInterval {
	return TimeInterval{
		Start: iv.Start.In(loc).Truncate(time.Second),
		End:   iv.End.In(loc).Truncate(time.Second),
	}
}

// IsZero reports whether the interval has zero length.
func (iv TimeInterval) IsZero() bool {
	return !iv.Start.Before(iv.End)
}

// Duration returns End - Start.
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether two half-open intervals intersect. An event
// ending exactly when another starts does not overlap it, and zero-length
// intervals overlap nothing, including themselves. Sub-second noise is
// stripped from both sides before comparing.
func Overlaps(a, b TimeInterval) bool {
	aStart := a.Start.Truncate(time.Second)
	aEnd := a.End.Truncate(time.Second)
	bStart := b.Start.Truncate(time.Second)
	bEnd := b.End.Truncate(time.Second)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
