package serverutils

import (
	"context"
	"strings"

	"career-ai-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	LocalUserID      = "user_id"
	LocalAccessToken = "access_token"
)

type SessionVerifier interface {
	GetSession(ctx context.Context, accessToken string) (*entity.Session, error)
}

// NewJwtMiddleware rejects requests without a live bearer session and
// exposes the session's user id and raw token through ctx.Locals.
func NewJwtMiddleware(verifier SessionVerifier) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := BearerToken(ctx)
		if token == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		session, err := verifier.GetSession(ctx.UserContext(), token)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Unable to verify session"))
		}
		if session == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		ctx.Locals(LocalUserID, session.UserId.String())
		ctx.Locals(LocalAccessToken, token)
		return ctx.Next()
	}
}

func BearerToken(ctx *fiber.Ctx) string {
	header := ctx.Get(fiber.HeaderAuthorization)
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

// CurrentUserID reads the id placed by NewJwtMiddleware.
func CurrentUserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals(LocalUserID).(string)
	return uuid.Parse(raw)
}

func CurrentAccessToken(ctx *fiber.Ctx) string {
	token, _ := ctx.Locals(LocalAccessToken).(string)
	return token
}
