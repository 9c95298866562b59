package controller

import (
	"career-ai-be/internal/pkg/serverutils"
	"career-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetStats(ctx *fiber.Ctx) error
	ListJobMatches(ctx *fiber.Ctx) error
	ListApplications(ctx *fiber.Ctx) error
	ListInterviews(ctx *fiber.Ctx) error
	ListLearning(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service        service.IDashboardService
	authMiddleware fiber.Handler
}

func NewDashboardController(service service.IDashboardService, authMiddleware fiber.Handler) IDashboardController {
	return &dashboardController{service: service, authMiddleware: authMiddleware}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard/stats", c.authMiddleware, c.GetStats)
	r.Get("/jobs", c.authMiddleware, c.ListJobMatches)
	r.Get("/applications", c.authMiddleware, c.ListApplications)
	r.Get("/interviews", c.authMiddleware, c.ListInterviews)
	r.Get("/learning", c.authMiddleware, c.ListLearning)
}

func (c *dashboardController) GetStats(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid session"))
	}

	res, err := c.service.GetStats(ctx.UserContext(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

func (c *dashboardController) ListJobMatches(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid session"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Job matches", c.service.ListJobMatches(ctx.UserContext(), userId)))
}

func (c *dashboardController) ListApplications(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid session"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Applications", c.service.ListApplications(ctx.UserContext(), userId)))
}

func (c *dashboardController) ListInterviews(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid session"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Interview sessions", c.service.ListInterviewSessions(ctx.UserContext(), userId)))
}

func (c *dashboardController) ListLearning(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid session"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Learning progress", c.service.ListLearningProgress(ctx.UserContext(), userId)))
}
