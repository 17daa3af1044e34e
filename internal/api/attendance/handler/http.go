package attendanceHandler

import (
	attendanceService "FaceAttendance/internal/api/attendance/service"
	"FaceAttendance/internal/middleware"
	"FaceAttendance/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AttendanceHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	attendanceService attendanceService.IAttendanceService
	utils             utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	as attendanceService.IAttendanceService,
	utils utils.IUtils,
) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: as,
		log:               log,
		validator:         validator,
		middleware:        middleware,
		utils:             utils,
	}
}

func (h *AttendanceHandler) Start(srv fiber.Router) {
	att := srv.Group("/attendance")
	att.Post("/record", h.Record)
	att.Get("/today", h.Today)
	att.Get("/date/:date", h.ByDate)
	att.Get("/history", h.History)
	att.Get("/person/:name", h.PersonEvents)
}
