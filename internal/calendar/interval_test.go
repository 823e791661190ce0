package calendar

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func TestNewInterval_RejectsInvertedBounds(t *testing.T) {
	_, err := NewInterval(at(15, 0), at(14, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNewInterval_AllowsZeroLength(t *testing.T) {
	iv, err := NewInterval(at(14, 0), at(14, 0))
	require.NoError(t, err)
	assert.True(t, iv.IsZero())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeInterval
		want bool
	}{
		{
			name: "partial overlap",
			a:    TimeInterval{at(14, 0), at(15, 0)},
			b:    TimeInterval{at(14, 30), at(15, 30)},
			want: true,
		},
		{
			name: "containment",
			a:    TimeInterval{at(9, 0), at(17, 0)},
			b:    TimeInterval{at(12, 0), at(13, 0)},
			want: true,
		},
		{
			name: "disjoint",
			a:    TimeInterval{at(9, 0), at(10, 0)},
			b:    TimeInterval{at(11, 0), at(12, 0)},
			want: false,
		},
		{
			name: "shared boundary does not overlap",
			a:    TimeInterval{at(14, 0), at(15, 0)},
			b:    TimeInterval{at(15, 0), at(16, 0)},
			want: false,
		},
		{
			name: "identical intervals",
			a:    TimeInterval{at(14, 0), at(15, 0)},
			b:    TimeInterval{at(14, 0), at(15, 0)},
			want: true,
		},
		{
			name: "zero-length never overlaps itself",
			a:    TimeInterval{at(14, 0), at(14, 0)},
			b:    TimeInterval{at(14, 0), at(14, 0)},
			want: false,
		},
		{
			name: "zero-length inside a busy block",
			a:    TimeInterval{at(14, 30), at(14, 30)},
			b:    TimeInterval{at(14, 0), at(15, 0)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestOverlaps_StripsSubSecondNoise(t *testing.T) {
	// Providers return inconsistent fractional seconds; an event ending
	// at 15:00:00.250 must not collide with one starting at 15:00:00.
	a := TimeInterval{
		Start: at(14, 0),
		End:   at(15, 0).Add(250 * time.Millisecond),
	}
	b := TimeInterval{Start: at(15, 0), End: at(16, 0)}

	assert.False(t, Overlaps(a, b))
}

func TestOverlaps_SymmetryProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := at(0, 0)

	for i := 0; i < 500; i++ {
		a := randomInterval(rng, base)
		b := randomInterval(rng, base)
		assert.Equal(t, Overlaps(a, b), Overlaps(b, a),
			"symmetry violated for a=%v b=%v", a, b)
	}
}

func TestOverlaps_SelfOverlapProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := at(0, 0)

	for i := 0; i < 500; i++ {
		iv := randomInterval(rng, base)
		want := !iv.IsZero()
		assert.Equal(t, want, Overlaps(iv, iv), "self-overlap for %v", iv)
	}
}

func randomInterval(rng *rand.Rand, base time.Time) TimeInterval {
	start := base.Add(time.Duration(rng.Intn(48*60)) * time.Minute)
	length := time.Duration(rng.Intn(4*60)) * time.Minute // may be zero
	return TimeInterval{Start: start, End: start.Add(length)}
}

func TestIntervalIn_NormalizesZoneAndPrecision(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	iv := TimeInterval{
		Start: time.Date(2025, 6, 2, 12, 0, 0, 123456000, time.UTC),
		End:   time.Date(2025, 6, 2, 13, 0, 0, 999999000, time.UTC),
	}
	local := iv.In(berlin)

	assert.Equal(t, berlin, local.Start.Location())
	assert.Equal(t, 0, local.Start.Nanosecond())
	assert.Equal(t, 0, local.End.Nanosecond())
	assert.True(t, local.Start.Equal(iv.Start.Truncate(time.Second)))
}
