package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/app/service"
	"github.com/Frezz12/AchStudentsBackend/helper"
	"github.com/Frezz12/AchStudentsBackend/middleware"
)

type UserHandler struct {
	users  *service.UserService
	awards *service.AwardService
}

func NewUserHandler(users *service.UserService, awards *service.AwardService) *UserHandler {
	return &UserHandler{users: users, awards: awards}
}

// POST /api/v1/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req model.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	u, err := h.users.Create(middleware.Actor(c), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.User]{Success: true, Data: u})
}

// POST /api/v1/users/:id/achievements
func (h *UserHandler) Grant(c *fiber.Ctx) error {
	studentID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req model.ClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	sa, err := h.awards.Grant(middleware.Actor(c), studentID, req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.StudentAchievement]{Success: true, Data: sa})
}

// GET /api/v1/users?role=
func (h *UserHandler) List(c *fiber.Ctx) error {
	var (
		users []model.User
		err   error
	)

	if role := c.Query("role"); role != "" {
		users, err = h.users.ListByRole(model.Role(role))
	} else {
		users, err = h.users.List()
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[[]model.User]{Success: true, Data: users})
}

// GET /api/v1/users/:id
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	u, err := h.users.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.User]{Success: true, Data: u})
}

// GET /api/v1/users/uuid/:uuid
func (h *UserHandler) GetByUUID(c *fiber.Ctx) error {
	u, err := h.users.GetByUUID(c.Params("uuid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.User]{Success: true, Data: u})
}

// PATCH /api/v1/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req model.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	u, err := h.users.Update(middleware.Actor(c), id, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.User]{Success: true, Data: u})
}

// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.users.Delete(middleware.Actor(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "User deleted"})
}
