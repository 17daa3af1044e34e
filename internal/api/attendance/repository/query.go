package attendanceRepository

const (
	queryInsertEvent = `
INSERT INTO attendance_events (person_name, event_type, event_date, event_time)
VALUES (:person_name, :event_type, :event_date, :event_time)`

	queryLastEvent = `
SELECT person_name, event_type, event_date, event_time
FROM attendance_events
    WHERE person_name = :person_name AND event_date = :event_date
    ORDER BY id DESC
    LIMIT 1`

	queryDayEvents = `
SELECT person_name, event_type, event_date, event_time
FROM attendance_events
    WHERE event_date = :event_date
    ORDER BY id`

	queryAllEvents = `
SELECT person_name, event_type, event_date, event_time
FROM attendance_events
    ORDER BY event_date, id`

	queryPersonEvents = `
SELECT person_name, event_type, event_date, event_time
FROM attendance_events
    WHERE person_name = :person_name
    ORDER BY event_date, id`
)
