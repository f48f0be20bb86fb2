package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// day builds a timestamp on a fixed reference day
func day(hour, min int) time.Time {
	return time.Date(2026, time.June, 15, hour, min, 0, 0, time.Local)
}

func TestPolicy_SubtractLunch(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name          string
		start         time.Time
		end           time.Time
		wantMinutes   int
		wantDeduction bool
	}{
		{
			name:          "should deduct full lunch window from spanning session",
			start:         day(11, 30),
			end:           day(13, 30),
			wantMinutes:   60,
			wantDeduction: true,
		},
		{
			name:          "should not deduct from morning session ending before lunch",
			start:         day(9, 0),
			end:           day(11, 0),
			wantMinutes:   120,
			wantDeduction: false,
		},
		{
			name:          "should not deduct from session ending exactly at lunch start",
			start:         day(9, 0),
			end:           day(12, 0),
			wantMinutes:   180,
			wantDeduction: false,
		},
		{
			name:          "should not deduct from session starting exactly at lunch end",
			start:         day(13, 0),
			end:           day(15, 0),
			wantMinutes:   120,
			wantDeduction: false,
		},
		{
			name:          "should deduct partial overlap at lunch start",
			start:         day(9, 0),
			end:           day(12, 20),
			wantMinutes:   180,
			wantDeduction: true,
		},
		{
			name:          "should deduct partial overlap at lunch end",
			start:         day(12, 40),
			end:           day(14, 0),
			wantMinutes:   60,
			wantDeduction: true,
		},
		{
			name:          "should clamp session fully inside lunch window to zero",
			start:         day(12, 10),
			end:           day(12, 50),
			wantMinutes:   0,
			wantDeduction: true,
		},
		{
			name:          "should keep gross minutes for session crossing midnight",
			start:         day(23, 0),
			end:           day(23, 0).Add(2 * time.Hour),
			wantMinutes:   120,
			wantDeduction: false,
		},
		{
			name:          "should return zero for end equal to start",
			start:         day(10, 0),
			end:           day(10, 0),
			wantMinutes:   0,
			wantDeduction: false,
		},
		{
			name:          "should return zero for end before start",
			start:         day(10, 0),
			end:           day(9, 0),
			wantMinutes:   0,
			wantDeduction: false,
		},
		{
			name:          "should round sub-minute overlap away",
			start:         day(9, 0),
			end:           day(12, 0).Add(20 * time.Second),
			wantMinutes:   180,
			wantDeduction: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, deducted := policy.SubtractLunch(tt.start, tt.end)

			assert.Equal(t, tt.wantMinutes, minutes)
			assert.Equal(t, tt.wantDeduction, deducted)
		})
	}
}

func TestPolicy_Billable(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name          string
		start         time.Time
		end           time.Time
		paused        time.Duration
		wantMinutes   int
		wantDeduction bool
	}{
		{
			name:        "should subtract paused minutes from gross time",
			start:       day(9, 0),
			end:         day(12, 0),
			paused:      15 * time.Minute,
			wantMinutes: 165,
		},
		{
			name:          "should subtract pause on top of lunch deduction",
			start:         day(11, 30),
			end:           day(13, 30),
			paused:        30 * time.Minute,
			wantMinutes:   30,
			wantDeduction: true,
		},
		{
			name:        "should floor result at zero when pause exceeds worked time",
			start:       day(9, 0),
			end:         day(9, 30),
			paused:      2 * time.Hour,
			wantMinutes: 0,
		},
		{
			name:        "should ignore negative pause time",
			start:       day(9, 0),
			end:         day(10, 0),
			paused:      -time.Hour,
			wantMinutes: 60,
		},
		{
			name:        "should round pause to nearest minute",
			start:       day(9, 0),
			end:         day(10, 0),
			paused:      90 * time.Second,
			wantMinutes: 58,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, deducted := policy.Billable(tt.start, tt.end, tt.paused)

			assert.Equal(t, tt.wantMinutes, minutes)
			assert.Equal(t, tt.wantDeduction, deducted)
		})
	}
}

func TestPolicy_CutoffTime(t *testing.T) {
	policy := DefaultPolicy()

	cutoff := policy.CutoffTime(day(8, 45))

	assert.Equal(t, day(17, 0), cutoff)
	assert.Equal(t, day(8, 45).Location(), cutoff.Location())
}

func TestPolicy_CustomHours(t *testing.T) {
	policy := Policy{LunchStartHour: 11, LunchEndHour: 12, CutoffHour: 18}

	minutes, deducted := policy.SubtractLunch(day(10, 30), day(12, 30))

	assert.Equal(t, 60, minutes)
	assert.True(t, deducted)
	assert.Equal(t, day(18, 0), policy.CutoffTime(day(9, 0)))
}
