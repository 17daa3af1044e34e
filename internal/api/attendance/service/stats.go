package attendanceService

import (
	"FaceAttendance/internal/entity"
)

// ComputeDayStats summarizes one day's records. A person counts as
// currently present when they have at least one entrance and no exit.
func ComputeDayStats(date string, records entity.DayRecords) entity.DayStats {
	stats := entity.DayStats{Date: date}

	for _, events := range records {
		if len(events) == 0 {
			continue
		}
		stats.TotalPeople++

		var hasEntrance, hasExit bool
		for _, event := range events {
			switch event.Type {
			case entity.EventEntrance:
				hasEntrance = true
			case entity.EventExit:
				hasExit = true
			}
		}

		if hasEntrance {
			stats.WithEntrance++
		}
		if hasExit {
			stats.WithExit++
		}
		if hasEntrance && !hasExit {
			stats.CurrentlyPresent++
		}
	}

	return stats
}
