package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pawplate/domain"
	"pawplate/internal/api/presenters"
	"pawplate/pkg/dog"
)

type (
	DogHandler interface {
		AddDog(c *fiber.Ctx) error
		UpdateDog(c *fiber.Ctx) error
		DeleteDog(c *fiber.Ctx) error
		GetDogDetails(c *fiber.Ctx) error
		GetMyDogs(c *fiber.Ctx) error
		GetAllDogs(c *fiber.Ctx) error
		AddScheduleEntry(c *fiber.Ctx) error
		GetSchedule(c *fiber.Ctx) error
		GetWeeklyShoppingList(c *fiber.Ctx) error
		SaveReminders(c *fiber.Ctx) error
		GetReminders(c *fiber.Ctx) error
	}

	dogHandler struct {
		dogService dog.DogService
		validator  *validator.Validate
	}
)

func NewDogHandler(dogService dog.DogService, validator *validator.Validate) DogHandler {
	return &dogHandler{
		dogService: dogService,
		validator:  validator,
	}
}

func (h *dogHandler) AddDog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddDogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddDog, err)
	}

	res, err := h.dogService.AddDog(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddDog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddDog)
}

func (h *dogHandler) UpdateDog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("id")
	req := new(domain.UpdateDogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDog, err)
	}

	if err := h.dogService.UpdateDog(c.Context(), dogID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateDog)
}

func (h *dogHandler) DeleteDog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("id")

	if err := h.dogService.DeleteDog(c.Context(), dogID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteDog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDog)
}

func (h *dogHandler) GetDogDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("id")

	res, err := h.dogService.GetDog(c.Context(), dogID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDogs)
}

func (h *dogHandler) GetMyDogs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.dogService.GetMyDogs(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDogs)
}

func (h *dogHandler) GetAllDogs(c *fiber.Ctx) error {
	res, err := h.dogService.GetAllDogs(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDogs)
}

func (h *dogHandler) AddScheduleEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("dogId")
	req := new(domain.AddScheduleEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddScheduleEntry, err)
	}

	if err := h.dogService.AddScheduleEntry(c.Context(), dogID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddScheduleEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddScheduleEntry)
}

func (h *dogHandler) GetSchedule(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("dogId")

	res, err := h.dogService.GetSchedule(c.Context(), dogID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSchedule, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSchedule)
}

func (h *dogHandler) GetWeeklyShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("dogId")

	res, err := h.dogService.GetWeeklyShoppingList(c.Context(), dogID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *dogHandler) SaveReminders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("dogId")
	req := new(domain.SaveRemindersRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveReminders, err)
	}

	if err := h.dogService.SaveReminders(c.Context(), dogID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveReminders, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveReminders)
}

func (h *dogHandler) GetReminders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	dogID := c.Params("dogId")

	res, err := h.dogService.GetReminders(c.Context(), dogID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSchedule, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReminders)
}
