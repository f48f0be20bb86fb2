package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOpenTimeRecord(t *testing.T) {
	start := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)

	record := NewOpenTimeRecord("emp-1", "proj-1", start)

	assert.True(t, record.IsOpen())
	assert.Equal(t, 0, record.DurationMinutes)
	assert.False(t, record.LunchDeducted)
	assert.True(t, record.IsValid())
}

func TestTimeRecord_Finalize(t *testing.T) {
	start := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)
	record := NewOpenTimeRecord("emp-1", "proj-1", start)

	finalized := record.Finalize(start.Add(8*time.Hour), 420, true)

	assert.False(t, finalized.IsOpen())
	assert.Equal(t, 420, finalized.DurationMinutes)
	assert.True(t, finalized.LunchDeducted)
	assert.True(t, finalized.IsValid())

	// The original value stays untouched.
	assert.True(t, record.IsOpen())
}

func TestTimeRecord_IsValid(t *testing.T) {
	start := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	before := start.Add(-time.Hour)

	tests := []struct {
		name   string
		record TimeRecord
		want   bool
	}{
		{
			name:   "valid open record",
			record: TimeRecord{EmployeeID: "emp-1", ProjectID: "proj-1", StartTime: start},
			want:   true,
		},
		{
			name:   "valid finalized record",
			record: TimeRecord{EmployeeID: "emp-1", ProjectID: "proj-1", StartTime: start, EndTime: &end, DurationMinutes: 60},
			want:   true,
		},
		{
			name:   "missing employee",
			record: TimeRecord{ProjectID: "proj-1", StartTime: start},
			want:   false,
		},
		{
			name:   "missing project",
			record: TimeRecord{EmployeeID: "emp-1", StartTime: start},
			want:   false,
		},
		{
			name:   "zero start time",
			record: TimeRecord{EmployeeID: "emp-1", ProjectID: "proj-1"},
			want:   false,
		},
		{
			name:   "end before start",
			record: TimeRecord{EmployeeID: "emp-1", ProjectID: "proj-1", StartTime: start, EndTime: &before},
			want:   false,
		},
		{
			name:   "open record with nonzero duration",
			record: TimeRecord{EmployeeID: "emp-1", ProjectID: "proj-1", StartTime: start, DurationMinutes: 30},
			want:   false,
		},
		{
			name:   "negative duration",
			record: TimeRecord{EmployeeID: "emp-1", ProjectID: "proj-1", StartTime: start, EndTime: &end, DurationMinutes: -1},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.IsValid())
		})
	}
}
