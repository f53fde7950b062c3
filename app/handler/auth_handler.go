package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/app/service"
	"github.com/Frezz12/AchStudentsBackend/helper"
	"github.com/Frezz12/AchStudentsBackend/middleware"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req model.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	res, err := h.auth.Register(req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.AuthResponse]{Success: true, Data: res})
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	res, err := h.auth.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Invalid credentials",
			})
		}
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.AuthResponse]{Success: true, Message: "Login successful", Data: res})
}

// GET /api/v1/auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	actor := middleware.Actor(c)

	user, err := h.auth.Profile(actor.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.User]{Success: true, Data: user})
}
