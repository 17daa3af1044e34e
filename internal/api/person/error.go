package person

import (
	"FaceAttendance/pkg/response"
	"net/http"
)

var (
	ErrInvalidInput          = response.NewError(http.StatusBadRequest, "missing name or image")
	ErrInvalidImage          = response.NewError(http.StatusBadRequest, "malformed base64 image")
	ErrNoFaceDetected        = response.NewError(http.StatusUnprocessableEntity, "no face detected in the image")
	ErrMultipleFacesDetected = response.NewError(http.StatusUnprocessableEntity, "multiple faces detected, use an image with a single person")
	ErrPersonNotFound        = response.NewError(http.StatusNotFound, "person not found")
	ErrStoreUnavailable      = response.NewError(http.StatusServiceUnavailable, "identity store unavailable")
	ErrEngineUnavailable     = response.NewError(http.StatusBadGateway, "face engine unavailable")
)
