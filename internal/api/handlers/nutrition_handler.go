package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pawplate/domain"
	"pawplate/internal/api/presenters"
	"pawplate/pkg/nutrition"
)

type (
	NutritionHandler interface {
		GeneratePlan(c *fiber.Ctx) error
		SavePlan(c *fiber.Ctx) error
		GetPlans(c *fiber.Ctx) error
		DeletePlan(c *fiber.Ctx) error
	}

	nutritionHandler struct {
		nutritionService nutrition.NutritionService
		validator        *validator.Validate
	}
)

func NewNutritionHandler(nutritionService nutrition.NutritionService, validator *validator.Validate) NutritionHandler {
	return &nutritionHandler{
		nutritionService: nutritionService,
		validator:        validator,
	}
}

func (h *nutritionHandler) GeneratePlan(c *fiber.Ctx) error {
	req := new(domain.GeneratePlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGeneratePlan, err)
	}

	res, err := h.nutritionService.GeneratePlan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGeneratePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGeneratePlan)
}

func (h *nutritionHandler) SavePlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("dogId")
	req := new(domain.SavePlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSavePlan, err)
	}

	res, err := h.nutritionService.SavePlan(c.Context(), dogID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSavePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSavePlan)
}

func (h *nutritionHandler) GetPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("dogId")

	res, err := h.nutritionService.GetPlans(c.Context(), dogID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlans)
}

func (h *nutritionHandler) DeletePlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("dogId")
	planID := c.Params("planId")

	if err := h.nutritionService.DeletePlan(c.Context(), dogID, planID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePlan)
}
