package entity

type EventType string

const (
	EventEntrance EventType = "entrance"
	EventExit     EventType = "exit"
)

// Opposite returns the next event type in the entrance/exit toggle.
func (t EventType) Opposite() EventType {
	if t == EventEntrance {
		return EventExit
	}
	return EventEntrance
}

func (t EventType) Valid() bool {
	return t == EventEntrance || t == EventExit
}

// Wall-clock layouts used everywhere an event date or time crosses a
// boundary (wire, file store, database).
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// AttendanceEvent is immutable once appended to the ledger.
type AttendanceEvent struct {
	PersonName string    `json:"name"`
	Type       EventType `json:"type"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
}

// DayRecords groups a single day's events by person name, each slice in
// insertion (wall-clock) order.
type DayRecords map[string][]AttendanceEvent

// AttendanceHistory maps date -> person -> events.
type AttendanceHistory map[string]DayRecords

type DayStats struct {
	Date             string `json:"date"`
	TotalPeople      int    `json:"totalPeople"`
	WithEntrance     int    `json:"withEntrance"`
	WithExit         int    `json:"withExit"`
	CurrentlyPresent int    `json:"currentlyPresent"`
}
