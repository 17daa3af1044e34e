package attendanceService

import (
	"testing"
	"time"

	"FaceAttendance/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanRecord_FirstEventIsEntrance(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	ok, eventType := CanRecord(nil, now, DefaultMinInterval)

	assert.True(t, ok)
	assert.Equal(t, entity.EventEntrance, eventType)
}

func TestCanRecord_DeniesWithinMinInterval(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 5, 0, time.UTC)
	last := &entity.AttendanceEvent{
		PersonName: "ana",
		Type:       entity.EventEntrance,
		Date:       "2025-03-14",
		Time:       "09:00:00",
	}

	ok, _ := CanRecord(last, now, DefaultMinInterval)

	assert.False(t, ok)
}

func TestCanRecord_TogglesAfterInterval(t *testing.T) {
	tests := []struct {
		name     string
		lastType entity.EventType
		want     entity.EventType
	}{
		{name: "entrance toggles to exit", lastType: entity.EventEntrance, want: entity.EventExit},
		{name: "exit toggles to entrance", lastType: entity.EventExit, want: entity.EventEntrance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2025, 3, 14, 9, 0, 30, 0, time.UTC)
			last := &entity.AttendanceEvent{
				PersonName: "ana",
				Type:       tt.lastType,
				Date:       "2025-03-14",
				Time:       "09:00:00",
			}

			ok, eventType := CanRecord(last, now, DefaultMinInterval)

			assert.True(t, ok)
			assert.Equal(t, tt.want, eventType)
		})
	}
}

func TestCanRecord_ExactlyMinIntervalAllows(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 10, 0, time.UTC)
	last := &entity.AttendanceEvent{
		PersonName: "ana",
		Type:       entity.EventEntrance,
		Date:       "2025-03-14",
		Time:       "09:00:00",
	}

	ok, eventType := CanRecord(last, now, DefaultMinInterval)

	assert.True(t, ok)
	assert.Equal(t, entity.EventExit, eventType)
}

func TestCanRecord_DeniesLastEventInTheFuture(t *testing.T) {
	// A ledger entry stamped after now, e.g. right after a clock step back.
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	last := &entity.AttendanceEvent{
		PersonName: "ana",
		Type:       entity.EventEntrance,
		Date:       "2025-03-14",
		Time:       "09:30:00",
	}

	ok, _ := CanRecord(last, now, DefaultMinInterval)

	assert.False(t, ok)
}

func TestCanRecord_DeniesUnparseableLastEvent(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	last := &entity.AttendanceEvent{
		PersonName: "ana",
		Type:       entity.EventEntrance,
		Date:       "not-a-date",
		Time:       "??",
	}

	ok, _ := CanRecord(last, now, DefaultMinInterval)

	assert.False(t, ok)
}
