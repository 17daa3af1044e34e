package attendanceService

import (
	"time"

	"FaceAttendance/internal/entity"
)

// CanRecord decides whether a person may record an event at now, given their
// most recent event on the same date (nil when they have none yet).
//
// A person with no prior event today always records an entrance. Otherwise
// the previous event must be at least minInterval old, and the new event is
// the opposite of the previous one. A negative elapsed time (a last event
// stamped later than now, possible around clock adjustments) is denied
// rather than toggled.
func CanRecord(last *entity.AttendanceEvent, now time.Time, minInterval time.Duration) (bool, entity.EventType) {
	if last == nil {
		return true, entity.EventEntrance
	}

	lastAt, err := time.ParseInLocation(
		entity.DateLayout+" "+entity.TimeLayout,
		last.Date+" "+last.Time,
		now.Location(),
	)
	if err != nil {
		// An unparseable ledger entry never unlocks a new event.
		return false, ""
	}

	elapsed := now.Sub(lastAt)
	if elapsed < minInterval {
		return false, ""
	}

	return true, last.Type.Opposite()
}
