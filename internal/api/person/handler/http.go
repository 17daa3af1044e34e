package personHandler

import (
	personService "FaceAttendance/internal/api/person/service"
	"FaceAttendance/internal/middleware"
	"FaceAttendance/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PersonHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	personService personService.IPersonService
	utils         utils.IUtils
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps personService.IPersonService,
	utils utils.IUtils,
) *PersonHandler {
	return &PersonHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		personService: ps,
		utils:         utils,
	}
}

func (h *PersonHandler) Start(srv fiber.Router) {
	srv.Post("/people", h.Register)
	srv.Get("/people", h.List)
	srv.Delete("/people/:name", h.Delete)
}
