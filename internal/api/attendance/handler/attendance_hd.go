package attendanceHandler

import (
	"net/url"
	"time"

	"FaceAttendance/internal/api/attendance"
	"FaceAttendance/internal/entity"
	contextPkg "FaceAttendance/pkg/context"
	"FaceAttendance/pkg/handlerUtil"
	"FaceAttendance/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AttendanceHandler) Record(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var base64Image string

	file, err := ctx.FormFile("image")
	if err == nil {
		if err := h.utils.ValidateImageFile(file); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "validate_image_file")
		}

		fileContent, err := file.Open()
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file")
		}
		defer fileContent.Close()

		base64Image, err = h.utils.ConvertFileToBase64(fileContent)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "convert_to_base64")
		}
	} else {
		var req attendance.RecordRequest
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.Handle(ctx, requestID, attendance.ErrNoImageProvided, ctx.Path(), "parse_request_body")
		}

		if err := h.validator.Struct(req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}

		base64Image = req.Image
	}

	frame, err := h.utils.DecodeBase64Payload(base64Image)
	if err != nil {
		return errHandler.Handle(ctx, requestID, attendance.ErrInvalidImage, ctx.Path(), "decode_image")
	}

	recorded, skipped, err := h.attendanceService.RecordFromImage(c, frame)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "record_attendance")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id":     requestID,
			"path":           ctx.Path(),
			"total_recorded": len(recorded),
		}).Info("Attendance recording processed")

		resp := attendance.RecordResponse{
			Success:       true,
			Records:       recorded,
			TotalRecorded: len(recorded),
		}
		for _, skip := range skipped {
			resp.Skipped = append(resp.Skipped, attendance.SkippedFace{
				Name:   skip.Name,
				Reason: skip.Reason,
			})
		}
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *AttendanceHandler) Today(ctx *fiber.Ctx) error {
	return h.day(ctx, time.Now().Format(entity.DateLayout))
}

func (h *AttendanceHandler) ByDate(ctx *fiber.Ctx) error {
	return h.day(ctx, ctx.Params("date"))
}

func (h *AttendanceHandler) day(ctx *fiber.Ctx, date string) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	records, stats, err := h.attendanceService.Day(c, date)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_day_records")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, attendance.DayResponse{
		Date:    date,
		Records: records,
		Stats:   stats,
	})
}

func (h *AttendanceHandler) History(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	history, err := h.attendanceService.History(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, attendance.HistoryResponse{
		History:   history,
		TotalDays: len(history),
	})
}

func (h *AttendanceHandler) PersonEvents(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil || name == "" {
		return errHandler.Handle(ctx, requestID, attendance.ErrInvalidName, ctx.Path(), "parse_name_param")
	}

	events, err := h.attendanceService.PersonEvents(c, name)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_person_events")
	}

	if date := ctx.Query("date"); date != "" {
		if _, err := time.Parse(entity.DateLayout, date); err != nil {
			return errHandler.Handle(ctx, requestID, attendance.ErrInvalidDate, ctx.Path(), "parse_date_query")
		}
		filtered := map[string][]entity.AttendanceEvent{}
		if dayEvents, ok := events[date]; ok {
			filtered[date] = dayEvents
		}
		events = filtered
	}

	total := 0
	for _, dayEvents := range events {
		total += len(dayEvents)
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, attendance.PersonEventsResponse{
		Name:        name,
		Events:      events,
		TotalEvents: total,
	})
}
