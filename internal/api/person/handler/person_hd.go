package personHandler

import (
	"net/url"
	"time"

	"FaceAttendance/internal/api/person"
	contextPkg "FaceAttendance/pkg/context"
	"FaceAttendance/pkg/handlerUtil"
	"FaceAttendance/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *PersonHandler) Register(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req person.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, person.ErrInvalidInput, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	image, err := h.utils.DecodeBase64Payload(req.Image)
	if err != nil {
		return errHandler.Handle(ctx, requestID, person.ErrInvalidImage, ctx.Path(), "decode_image")
	}

	result, err := h.personService.Register(c, req.Name, image)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "register_person")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"name":       req.Name,
		}).Info("Person registration successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, result)
	}
}

func (h *PersonHandler) List(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	people, err := h.personService.List(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_people")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, person.ListResponse{
		Success: true,
		People:  people,
		Total:   len(people),
	})
}

func (h *PersonHandler) Delete(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil || name == "" {
		return errHandler.Handle(ctx, requestID, person.ErrInvalidInput, ctx.Path(), "parse_name_param")
	}

	if err := h.personService.Remove(c, name); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "remove_person")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"name":       name,
	}).Info("Person removed successfully")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, person.DeleteResponse{
		Success: true,
		Message: name + " removed successfully",
	})
}
