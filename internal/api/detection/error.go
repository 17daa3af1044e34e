package detection

import (
	"FaceAttendance/pkg/response"
	"net/http"
)

var (
	ErrNoImageProvided   = response.NewError(http.StatusBadRequest, "no image provided")
	ErrInvalidImage      = response.NewError(http.StatusBadRequest, "malformed base64 image")
	ErrEngineUnavailable = response.NewError(http.StatusBadGateway, "face engine unavailable")
)
