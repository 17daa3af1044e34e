package attendanceService

import (
	"time"

	"FaceAttendance/internal/api/attendance"
	"FaceAttendance/internal/entity"
	contextPkg "FaceAttendance/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *attendanceService) RecordFromImage(ctx context.Context, frame []byte) ([]entity.AttendanceEvent, []Skipped, error) {
	requestID := contextPkg.GetRequestID(ctx)

	faces, err := s.recognizer.Recognize(ctx, frame)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	date := now.Format(entity.DateLayout)

	recorded := make([]entity.AttendanceEvent, 0, len(faces))
	var skipped []Skipped

	for _, face := range faces {
		if !face.Known() {
			skipped = append(skipped, Skipped{Name: entity.UnknownPerson, Reason: attendance.SkipReasonUnknown})
			continue
		}

		if s.redis != nil {
			bounced, err := s.redis.IsDebounced(ctx, face.Name)
			if err == nil && bounced {
				skipped = append(skipped, Skipped{Name: face.Name, Reason: attendance.SkipReasonBounced})
				continue
			}
		}

		last, err := s.repo.LastEvent(ctx, face.Name, date)
		if err != nil {
			return nil, nil, err
		}

		ok, eventType := CanRecord(last, now, s.minInterval)
		if !ok {
			skipped = append(skipped, Skipped{Name: face.Name, Reason: attendance.SkipReasonTooSoon})
			continue
		}

		event := entity.AttendanceEvent{
			PersonName: face.Name,
			Type:       eventType,
			Date:       date,
			Time:       now.Format(entity.TimeLayout),
		}

		if err := s.repo.Append(ctx, event); err != nil {
			return nil, nil, err
		}

		if s.redis != nil {
			if err := s.redis.SetDebounce(ctx, face.Name, s.minInterval); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"name":       face.Name,
					"error":      err.Error(),
				}).Warn("Failed to set attendance debounce")
			}
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       face.Name,
			"type":       event.Type,
			"similarity": face.Similarity,
		}).Info("Attendance event recorded")

		recorded = append(recorded, event)
	}

	return recorded, skipped, nil
}

func (s *attendanceService) Day(ctx context.Context, date string) (entity.DayRecords, entity.DayStats, error) {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return nil, entity.DayStats{}, attendance.ErrInvalidDate
	}

	records, err := s.repo.Day(ctx, date)
	if err != nil {
		return nil, entity.DayStats{}, err
	}

	return records, ComputeDayStats(date, records), nil
}

func (s *attendanceService) History(ctx context.Context) (entity.AttendanceHistory, error) {
	return s.repo.History(ctx)
}

func (s *attendanceService) PersonEvents(ctx context.Context, name string) (map[string][]entity.AttendanceEvent, error) {
	return s.repo.PersonEvents(ctx, name)
}
