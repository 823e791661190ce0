package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFreeSlots_EmptyBusyReturnsRangeStart(t *testing.T) {
	slots := FindFreeSlots(SlotRequest{
		RangeStart:       at(9, 0),
		RangeEnd:         at(18, 0),
		DurationMin:      30,
		MaxCount:         1,
		WorkingHoursOnly: true,
	})

	require.Len(t, slots, 1)
	assert.True(t, slots[0].Start.Equal(at(9, 0)))
	assert.True(t, slots[0].End.Equal(at(9, 30)))
	assert.NotEmpty(t, slots[0].DisplayText)
}

func TestFindFreeSlots_HonorsPreferredStart(t *testing.T) {
	preferred := at(14, 10)
	slots := FindFreeSlots(SlotRequest{
		RangeStart:     at(9, 0),
		RangeEnd:       at(18, 0),
		DurationMin:    60,
		PreferredStart: &preferred,
		MaxCount:       1,
	})

	// Cursor truncates to the containing hour for clean times.
	require.Len(t, slots, 1)
	assert.True(t, slots[0].Start.Equal(at(14, 0)))
}

func TestFindFreeSlots_PreferredStartBeforeRangeIgnored(t *testing.T) {
	preferred := at(7, 0)
	slots := FindFreeSlots(SlotRequest{
		RangeStart:     at(9, 0),
		RangeEnd:       at(18, 0),
		DurationMin:    30,
		PreferredStart: &preferred,
		MaxCount:       1,
	})

	require.Len(t, slots, 1)
	assert.True(t, slots[0].Start.Equal(at(9, 0)))
}

func TestFindFreeSlots_SkipsAheadPastBusyInterval(t *testing.T) {
	// A three-hour block must be cleared with one jump, not probed in
	// 30-minute steps.
	slots := FindFreeSlots(SlotRequest{
		RangeStart:  at(9, 0),
		RangeEnd:    at(18, 0),
		DurationMin: 30,
		Busy: []TimeInterval{
			{at(9, 0), at(12, 0)},
		},
		MaxCount: 1,
	})

	require.Len(t, slots, 1)
	assert.True(t, slots[0].Start.Equal(at(12, 0)))
}

func TestFindFreeSlots_ReAlignsAfterOffGridBusyEnd(t *testing.T) {
	slots := FindFreeSlots(SlotRequest{
		RangeStart:  at(9, 0),
		RangeEnd:    at(18, 0),
		DurationMin: 30,
		Busy: []TimeInterval{
			{at(9, 0), at(10, 40)},
		},
		MaxCount: 1,
	})

	require.Len(t, slots, 1)
	assert.True(t, slots[0].Start.Equal(at(11, 0)), "got %v", slots[0].Start)
}

func TestFindFreeSlots_NeverOverlapsBusy(t *testing.T) {
	busy := []TimeInterval{
		{at(9, 30), at(10, 30)},
		{at(11, 0), at(11, 15)},
		{at(13, 0), at(16, 45)},
	}
	slots := FindFreeSlots(SlotRequest{
		RangeStart:       at(9, 0),
		RangeEnd:         at(18, 0),
		DurationMin:      45,
		Busy:             busy,
		MaxCount:         10,
		WorkingHoursOnly: true,
	})

	require.NotEmpty(t, slots)
	for _, slot := range slots {
		candidate := TimeInterval{Start: slot.Start, End: slot.End}
		for _, b := range busy {
			assert.False(t, Overlaps(candidate, b),
				"slot %s overlaps busy %v", slot.DisplayText, b)
		}
	}
}

func TestFindFreeSlots_RespectsMaxCount(t *testing.T) {
	slots := FindFreeSlots(SlotRequest{
		RangeStart:  at(9, 0),
		RangeEnd:    at(18, 0),
		DurationMin: 30,
		MaxCount:    3,
	})

	require.Len(t, slots, 3)
	assert.True(t, slots[1].Start.Equal(at(9, 30)))
	assert.True(t, slots[2].Start.Equal(at(10, 0)))
}

func TestFindFreeSlots_WorkingHoursJumpBeforeStart(t *testing.T) {
	slots := FindFreeSlots(SlotRequest{
		RangeStart:       at(6, 0),
		RangeEnd:         at(18, 0),
		DurationMin:      30,
		MaxCount:         1,
		WorkingHoursOnly: true,
	})

	require.Len(t, slots, 1)
	assert.True(t, slots[0].Start.Equal(at(9, 0)))
}

func TestFindFreeSlots_WorkingHoursJumpToNextDay(t *testing.T) {
	dayAfter := at(9, 0).AddDate(0, 0, 1)
	slots := FindFreeSlots(SlotRequest{
		RangeStart:       at(18, 0),
		RangeEnd:         at(18, 0).AddDate(0, 0, 1),
		DurationMin:      30,
		MaxCount:         1,
		WorkingHoursOnly: true,
	})

	require.Len(t, slots, 1)
	assert.True(t, slots[0].Start.Equal(dayAfter))
}

func TestFindFreeSlots_DurationPastRangeEndYieldsNothing(t *testing.T) {
	slots := FindFreeSlots(SlotRequest{
		RangeStart:  at(17, 30),
		RangeEnd:    at(18, 0),
		DurationMin: 60,
		MaxCount:    1,
	})

	assert.Empty(t, slots)
}

func TestFindFreeSlots_IgnoresBusyOutsideRange(t *testing.T) {
	slots := FindFreeSlots(SlotRequest{
		RangeStart:  at(9, 0),
		RangeEnd:    at(12, 0),
		DurationMin: 30,
		Busy: []TimeInterval{
			{at(13, 0), at(14, 0)}, // after range, must be filtered
		},
		MaxCount: 1,
	})

	require.Len(t, slots, 1)
	assert.True(t, slots[0].Start.Equal(at(9, 0)))
}

func TestFormatSlot(t *testing.T) {
	got := FormatSlot(at(14, 0), at(15, 30))
	assert.Equal(t, "Mon Jun 2, 2:00 PM - 3:30 PM", got)
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{at(10, 40), at(11, 0)},
		{at(10, 15), at(10, 30)},
		{at(10, 30), at(10, 30)},
		{at(10, 0), at(10, 0)},
	}
	for _, tt := range tests {
		assert.True(t, alignUp(tt.in).Equal(tt.want), "alignUp(%v)", tt.in)
	}
}
