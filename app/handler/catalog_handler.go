package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/app/service"
	"github.com/Frezz12/AchStudentsBackend/helper"
	"github.com/Frezz12/AchStudentsBackend/middleware"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /api/v1/achievements?category=&search=
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var (
		achievements []model.Achievement
		err          error
	)

	if category := c.Query("category"); category != "" {
		achievements, err = h.catalog.ListByCategory(model.Category(category))
	} else if search := c.Query("search"); search != "" {
		achievements, err = h.catalog.Search(search)
	} else {
		achievements, err = h.catalog.List()
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[[]model.Achievement]{Success: true, Data: achievements})
}

// GET /api/v1/achievements/:id
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid achievement id")
	}

	a, err := h.catalog.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Achievement]{Success: true, Data: a})
}

// GET /api/v1/achievements/uuid/:uuid
func (h *CatalogHandler) GetByUUID(c *fiber.Ctx) error {
	a, err := h.catalog.GetByUUID(c.Params("uuid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Achievement]{Success: true, Data: a})
}

// POST /api/v1/achievements
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var req model.CreateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	a, err := h.catalog.Create(middleware.Actor(c), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.Achievement]{Success: true, Data: a})
}

// PATCH /api/v1/achievements/:id
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid achievement id")
	}

	var req model.UpdateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	a, err := h.catalog.Update(middleware.Actor(c), id, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.Achievement]{Success: true, Data: a})
}

// DELETE /api/v1/achievements/:id
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid achievement id")
	}

	if err := h.catalog.Delete(middleware.Actor(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Deleted"})
}
