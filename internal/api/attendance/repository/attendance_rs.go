package attendanceRepository

import (
	"context"
	"database/sql"
	"errors"

	"FaceAttendance/internal/api/attendance"
	"FaceAttendance/internal/entity"
	contextPkg "FaceAttendance/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type EventDB struct {
	PersonName string `db:"person_name"`
	EventType  string `db:"event_type"`
	EventDate  string `db:"event_date"`
	EventTime  string `db:"event_time"`
}

func (e EventDB) toEntity() entity.AttendanceEvent {
	return entity.AttendanceEvent{
		PersonName: e.PersonName,
		Type:       entity.EventType(e.EventType),
		Date:       e.EventDate,
		Time:       e.EventTime,
	}
}

func (r *postgresRepository) Append(c context.Context, event entity.AttendanceEvent) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"person_name": event.PersonName,
		"event_type":  string(event.Type),
		"event_date":  event.Date,
		"event_time":  event.Time,
	}

	query, args, err := sqlx.Named(queryInsertEvent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Append")
		return err
	}
	query = r.DB.Rebind(query)

	if _, err := r.DB.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       event.PersonName,
			"type":       event.Type,
			"error":      err.Error(),
		}).Error("Database error when appending attendance event")
		return attendance.ErrStoreUnavailable
	}

	return nil
}

func (r *postgresRepository) LastEvent(c context.Context, name, date string) (*entity.AttendanceEvent, error) {
	requestID := contextPkg.GetRequestID(c)
	var row EventDB

	query, args, err := sqlx.Named(queryLastEvent, map[string]interface{}{
		"person_name": name,
		"event_date":  date,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("LastEvent named query preparation err")
		return nil, err
	}
	query = r.DB.Rebind(query)

	if err := r.DB.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
			"date":       date,
			"error":      err.Error(),
		}).Error("Database error when fetching last attendance event")
		return nil, attendance.ErrStoreUnavailable
	}

	event := row.toEntity()
	return &event, nil
}

func (r *postgresRepository) Day(c context.Context, date string) (entity.DayRecords, error) {
	events, err := r.selectEvents(c, queryDayEvents, map[string]interface{}{"event_date": date})
	if err != nil {
		return nil, err
	}

	records := entity.DayRecords{}
	for _, event := range events {
		records[event.PersonName] = append(records[event.PersonName], event)
	}
	return records, nil
}

func (r *postgresRepository) History(c context.Context) (entity.AttendanceHistory, error) {
	events, err := r.selectEvents(c, queryAllEvents, map[string]interface{}{})
	if err != nil {
		return nil, err
	}

	history := entity.AttendanceHistory{}
	for _, event := range events {
		day, ok := history[event.Date]
		if !ok {
			day = entity.DayRecords{}
			history[event.Date] = day
		}
		day[event.PersonName] = append(day[event.PersonName], event)
	}
	return history, nil
}

func (r *postgresRepository) PersonEvents(c context.Context, name string) (map[string][]entity.AttendanceEvent, error) {
	events, err := r.selectEvents(c, queryPersonEvents, map[string]interface{}{"person_name": name})
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]entity.AttendanceEvent)
	for _, event := range events {
		byDate[event.Date] = append(byDate[event.Date], event)
	}
	return byDate, nil
}

func (r *postgresRepository) selectEvents(c context.Context, query string, argsKV map[string]interface{}) ([]entity.AttendanceEvent, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(query, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Attendance named query preparation err")
		return nil, err
	}
	query = r.DB.Rebind(query)

	rows, err := r.DB.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing attendance events")
		return nil, attendance.ErrStoreUnavailable
	}
	defer rows.Close()

	var events []entity.AttendanceEvent
	for rows.Next() {
		var row EventDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to scan attendance row")
			return nil, attendance.ErrStoreUnavailable
		}
		events = append(events, row.toEntity())
	}
	if err := rows.Err(); err != nil {
		return nil, attendance.ErrStoreUnavailable
	}

	return events, nil
}
