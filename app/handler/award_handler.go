package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/app/service"
	"github.com/Frezz12/AchStudentsBackend/helper"
	"github.com/Frezz12/AchStudentsBackend/middleware"
)

type AwardHandler struct {
	awards *service.AwardService
}

func NewAwardHandler(awards *service.AwardService) *AwardHandler {
	return &AwardHandler{awards: awards}
}

// GET /api/v1/student-achievements?studentId=&achievementId=&status=
func (h *AwardHandler) List(c *fiber.Ctx) error {
	var filter model.AwardFilter

	if v := c.Query("studentId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid studentId")
		}
		filter.StudentID = id
	}
	if v := c.Query("achievementId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid achievementId")
		}
		filter.AchievementID = id
	}
	if v := c.Query("status"); v != "" {
		filter.Status = model.AwardStatus(v)
	}

	awards, err := h.awards.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[[]model.StudentAchievement]{Success: true, Data: awards})
}

// GET /api/v1/student-achievements/:id
func (h *AwardHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid student achievement id")
	}

	sa, err := h.awards.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.StudentAchievement]{Success: true, Data: sa})
}

// GET /api/v1/student-achievements/uuid/:uuid
func (h *AwardHandler) GetByUUID(c *fiber.Ctx) error {
	sa, err := h.awards.GetByUUID(c.Params("uuid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.StudentAchievement]{Success: true, Data: sa})
}

// POST /api/v1/student-achievements
func (h *AwardHandler) Claim(c *fiber.Ctx) error {
	var req model.ClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	sa, err := h.awards.SelfClaim(middleware.Actor(c), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.StudentAchievement]{Success: true, Data: sa})
}

// PATCH /api/v1/student-achievements/:id
func (h *AwardHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid student achievement id")
	}

	var req model.UpdateAwardRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	sa, err := h.awards.Transition(middleware.Actor(c), id, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.StudentAchievement]{Success: true, Data: sa})
}

// DELETE /api/v1/student-achievements/:id
func (h *AwardHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid student achievement id")
	}

	if err := h.awards.Delete(middleware.Actor(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Deleted"})
}

// POST /api/v1/student-achievements/:id/evidence
func (h *AwardHandler) AddEvidence(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid student achievement id")
	}

	var req model.AddEvidenceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	e, err := h.awards.AttachEvidence(middleware.Actor(c), id, req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.Evidence]{Success: true, Data: e})
}

// GET /api/v1/student-achievements/:id/evidence
func (h *AwardHandler) ListEvidence(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid student achievement id")
	}

	evidence, err := h.awards.ListEvidence(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[[]model.Evidence]{Success: true, Data: evidence})
}
