package attendance

import (
	"FaceAttendance/internal/entity"
)

type RecordRequest struct {
	Image string `json:"image" validate:"required"`
}

// SkippedFace explains why a detected face produced no attendance event.
type SkippedFace struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

const (
	SkipReasonUnknown = "unknown_person"
	SkipReasonTooSoon = "too_soon"
	SkipReasonBounced = "debounced"
)

type RecordResponse struct {
	Success       bool                     `json:"success"`
	Records       []entity.AttendanceEvent `json:"records"`
	TotalRecorded int                      `json:"total_recorded"`
	Skipped       []SkippedFace            `json:"skipped,omitempty"`
}

type DayResponse struct {
	Date    string            `json:"date"`
	Records entity.DayRecords `json:"records"`
	Stats   entity.DayStats   `json:"stats"`
}

type HistoryResponse struct {
	History   entity.AttendanceHistory `json:"history"`
	TotalDays int                      `json:"total_days"`
}

type PersonEventsResponse struct {
	Name        string                              `json:"name"`
	Events      map[string][]entity.AttendanceEvent `json:"events"`
	TotalEvents int                                 `json:"total_events"`
}
