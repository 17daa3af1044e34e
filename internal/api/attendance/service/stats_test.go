package attendanceService

import (
	"testing"

	"FaceAttendance/internal/entity"

	"github.com/stretchr/testify/assert"
)

func event(name string, eventType entity.EventType, at string) entity.AttendanceEvent {
	return entity.AttendanceEvent{
		PersonName: name,
		Type:       eventType,
		Date:       "2025-03-14",
		Time:       at,
	}
}

func TestComputeDayStats(t *testing.T) {
	records := entity.DayRecords{
		"ana": {
			event("ana", entity.EventEntrance, "08:55:00"),
		},
		"bob": {
			event("bob", entity.EventEntrance, "09:00:00"),
			event("bob", entity.EventExit, "17:00:00"),
		},
	}

	stats := ComputeDayStats("2025-03-14", records)

	assert.Equal(t, "2025-03-14", stats.Date)
	assert.Equal(t, 2, stats.TotalPeople)
	assert.Equal(t, 2, stats.WithEntrance)
	assert.Equal(t, 1, stats.WithExit)
	assert.Equal(t, 1, stats.CurrentlyPresent)
}

func TestComputeDayStats_ReentryAfterExit(t *testing.T) {
	records := entity.DayRecords{
		"ana": {
			event("ana", entity.EventEntrance, "08:00:00"),
			event("ana", entity.EventExit, "12:00:00"),
			event("ana", entity.EventEntrance, "13:00:00"),
		},
	}

	stats := ComputeDayStats("2025-03-14", records)

	assert.Equal(t, 1, stats.TotalPeople)
	// CurrentlyPresent is entrance-without-exit, so a re-entry after an
	// exit does not count.
	assert.Equal(t, 0, stats.CurrentlyPresent)
}

func TestComputeDayStats_Empty(t *testing.T) {
	stats := ComputeDayStats("2025-03-14", entity.DayRecords{})

	assert.Equal(t, 0, stats.TotalPeople)
	assert.Equal(t, 0, stats.CurrentlyPresent)
}
