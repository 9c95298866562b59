package controller

import (
	"errors"

	"career-ai-be/internal/dto"
	"career-ai-be/internal/pkg/serverutils"
	"career-ai-be/internal/service"
	"career-ai-be/pkg/authstore"
	"career-ai-be/pkg/provisioning"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/signup", c.Signup)
	h.Post("/login", c.Login)
	h.Get("/session", c.Session)
	h.Post("/logout", c.Logout)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Normalize()
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Signup(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, provisioning.ErrIdentityCreationFailed) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Account created successfully", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, authstore.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

// Session answers 200 with null data when there is no live session.
func (c *authController) Session(ctx *fiber.Ctx) error {
	res, err := c.service.GetSession(ctx.UserContext(), serverutils.BearerToken(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Session", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	token := serverutils.BearerToken(ctx)
	if token != "" {
		if err := c.service.Logout(ctx.UserContext(), token); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out successfully", nil))
}
