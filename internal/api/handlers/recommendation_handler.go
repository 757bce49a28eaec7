package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pawplate/domain"
	"pawplate/internal/api/presenters"
	"pawplate/pkg/recommendation"
)

type (
	RecommendationHandler interface {
		GetRecommendedProducts(c *fiber.Ctx) error
		GetRecommendedIngredients(c *fiber.Ctx) error
	}

	recommendationHandler struct {
		recommendationService recommendation.RecommendationService
		validator             *validator.Validate
	}
)

func NewRecommendationHandler(recommendationService recommendation.RecommendationService, validator *validator.Validate) RecommendationHandler {
	return &recommendationHandler{
		recommendationService: recommendationService,
		validator:             validator,
	}
}

func (h *recommendationHandler) GetRecommendedProducts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("dogId")

	res, err := h.recommendationService.GetRecommendedProducts(c.Context(), dogID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recommendationHandler) GetRecommendedIngredients(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("dogId")

	res, err := h.recommendationService.GetRecommendedIngredients(c.Context(), dogID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}
