package controller

import (
	"career-ai-be/internal/dto"
	"career-ai-be/internal/pkg/serverutils"
	"career-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	service        service.IChatService
	authMiddleware fiber.Handler
}

func NewChatController(service service.IChatService, authMiddleware fiber.Handler) IChatController {
	return &chatController{service: service, authMiddleware: authMiddleware}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai")
	h.Use(c.authMiddleware)
	h.Post("/chat", c.Chat)
}

// Chat answers {reply} for every outcome, including bad input.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(dto.ChatResponse{Reply: "Invalid session."})
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ChatResponse{Reply: "Invalid request: body must be JSON."})
	}

	res, status, err := c.service.Chat(ctx.UserContext(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ChatResponse{Reply: err.Error()})
	}
	return ctx.Status(status).JSON(res)
}
