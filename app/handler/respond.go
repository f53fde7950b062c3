package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Frezz12/AchStudentsBackend/app/apperr"
	"github.com/Frezz12/AchStudentsBackend/app/model"
)

// fail maps the core error kinds onto HTTP statuses. Anything outside
// the taxonomy is a 500.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperr.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, apperr.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, apperr.ErrInvalidInput):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(model.ErrorResponse{Success: false, Message: err.Error()})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{Success: false, Message: message})
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}
