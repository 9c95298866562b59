package controller

import (
	"errors"

	"career-ai-be/internal/dto"
	"career-ai-be/internal/pkg/serverutils"
	"career-ai-be/internal/service"
	"career-ai-be/pkg/datastore"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	CreateProfile(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
}

type userController struct {
	service        service.IProfileService
	authMiddleware fiber.Handler
}

func NewUserController(service service.IProfileService, authMiddleware fiber.Handler) IUserController {
	return &userController{service: service, authMiddleware: authMiddleware}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Use(c.authMiddleware)
	h.Post("/profile", c.CreateProfile)
	h.Get("/profile", c.GetProfile)
}

func (c *userController) CreateProfile(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid session"))
	}

	var req dto.CreateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Normalize()
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateProfile(ctx.UserContext(), serverutils.CurrentAccessToken(ctx), userId, &req)
	if err != nil {
		switch {
		case errors.Is(err, datastore.ErrUnauthorized):
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
		case errors.Is(err, datastore.ErrIdentityNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile saved", res))
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid session"))
	}

	res, err := c.service.GetProfile(ctx.UserContext(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}
