package attendance

import (
	"FaceAttendance/pkg/response"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrNoImageProvided  = response.NewError(fiber.StatusBadRequest, "no image provided")
	ErrInvalidImage     = response.NewError(fiber.StatusBadRequest, "invalid image payload")
	ErrInvalidDate      = response.NewError(fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrInvalidName      = response.NewError(fiber.StatusBadRequest, "invalid person name")
	ErrStoreUnavailable = response.NewError(fiber.StatusServiceUnavailable, "attendance store unavailable")
)
