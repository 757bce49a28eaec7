package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pawplate/domain"
	"pawplate/internal/api/presenters"
	"pawplate/pkg/admin"
)

type (
	AdminHandler interface {
		GetUsers(c *fiber.Ctx) error
		UpdateUserRole(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
		CreateSeller(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
		GetCommission(c *fiber.Ctx) error
		UpdateCommission(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		validator:    validator,
	}
}

func (h *adminHandler) GetUsers(c *fiber.Ctx) error {
	res, err := h.adminService.GetUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *adminHandler) UpdateUserRole(c *fiber.Ctx) error {
	email := c.Params("email")
	req := new(domain.UpdateRoleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRole, err)
	}

	if err := h.adminService.UpdateUserRole(c.Context(), email, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRole, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRole)
}

func (h *adminHandler) DeleteUser(c *fiber.Ctx) error {
	email := c.Params("email")

	if err := h.adminService.DeleteUser(c.Context(), email); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUser)
}

func (h *adminHandler) CreateSeller(c *fiber.Ctx) error {
	req := new(domain.CreateSellerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSeller, err)
	}

	res, err := h.adminService.CreateSeller(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSeller, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSeller)
}

func (h *adminHandler) GetStats(c *fiber.Ctx) error {
	res, err := h.adminService.GetStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *adminHandler) GetCommission(c *fiber.Ctx) error {
	res, err := h.adminService.GetCommissionRate(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCommission, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCommission)
}

func (h *adminHandler) UpdateCommission(c *fiber.Ctx) error {
	req := new(domain.UpdateCommissionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCommission, err)
	}

	if err := h.adminService.UpdateCommissionRate(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCommission, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCommission)
}
