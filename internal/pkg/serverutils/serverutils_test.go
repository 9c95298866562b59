package serverutils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"career-ai-be/internal/entity"
	"career-ai-be/pkg/authstore"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	sessions map[string]*entity.Session
	err      error
}

func (s stubVerifier) GetSession(_ context.Context, token string) (*entity.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sessions[token], nil
}

func decode(t *testing.T, body io.Reader) BaseResponse[any] {
	t.Helper()
	var res BaseResponse[any]
	require.NoError(t, json.NewDecoder(body).Decode(&res))
	return res
}

func TestJwtMiddleware(t *testing.T) {
	userId := uuid.New()
	verifier := stubVerifier{sessions: map[string]*entity.Session{
		"good": {AccessToken: "good", UserId: userId},
	}}

	app := fiber.New()
	app.Get("/me", NewJwtMiddleware(verifier), func(ctx *fiber.Ctx) error {
		id, err := CurrentUserID(ctx)
		if err != nil {
			return err
		}
		return ctx.JSON(SuccessResponse("me", map[string]string{
			"id":    id.String(),
			"token": CurrentAccessToken(ctx),
		}))
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{name: "no header", header: "", wantCode: fiber.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantCode: fiber.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", wantCode: fiber.StatusUnauthorized},
		{name: "valid", header: "Bearer good", wantCode: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			body := decode(t, resp.Body)
			if tt.wantCode == fiber.StatusOK {
				data := body.Data.(map[string]interface{})
				assert.Equal(t, userId.String(), data["id"])
				assert.Equal(t, "good", data["token"])
			} else {
				assert.False(t, body.Success)
			}
		})
	}
}

func TestJwtMiddlewareVerifierOutage(t *testing.T) {
	app := fiber.New()
	app.Get("/me", NewJwtMiddleware(stubVerifier{err: errors.New("redis down")}), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer anything")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

type signupForm struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	CareerGoal      string `json:"career_goal" validate:"required,oneof=upskill promotion"`
}

func TestValidateRequest(t *testing.T) {
	err := ValidateRequest(signupForm{
		Email:           "a@b.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
		CareerGoal:      "upskill",
	})
	assert.NoError(t, err)

	err = ValidateRequest(signupForm{
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
		CareerGoal:      "astronaut",
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 4)
	assert.Contains(t, ve.Fields, "confirm_password")
	assert.Equal(t, "must be one of: upskill promotion", ve.Fields["career_goal"])
	assert.Equal(t, "invalid fields: career_goal, confirm_password, email, password", ve.Error())
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/validation", func(ctx *fiber.Ctx) error {
		return &ValidationError{Fields: map[string]string{"email": "is required"}}
	})
	app.Get("/fiber", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "taken")
	})
	app.Get("/plain", func(ctx *fiber.Ctx) error {
		return errors.New("boom")
	})

	tests := []struct {
		path     string
		wantCode int
		wantMsg  string
	}{
		{path: "/validation", wantCode: fiber.StatusBadRequest, wantMsg: "invalid fields: email"},
		{path: "/fiber", wantCode: fiber.StatusConflict, wantMsg: "taken"},
		{path: "/plain", wantCode: fiber.StatusInternalServerError, wantMsg: "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			body := decode(t, resp.Body)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

type stalledAuth struct {
	authstore.AuthStore
}

func (stalledAuth) GetSession(ctx context.Context, _ string) (*entity.Session, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestJwtMiddlewareBoundsSessionLookup(t *testing.T) {
	app := fiber.New()
	app.Get("/me", NewJwtMiddleware(authstore.WithTimeout(stalledAuth{}, 30*time.Millisecond)), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer whatever")

	start := time.Now()
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Less(t, time.Since(start), 2*time.Second)
}
