package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/pkg/logger"
	"career-ai-be/internal/pkg/metrics"
	"career-ai-be/pkg/modelbackend"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("career-ai-be/pkg/chat")

var ErrInvalidRequest = errors.New("invalid chat request")

const (
	ReplyNotConfigured = "AI_BACKEND_URL is not set in environment."
	ReplyMissing       = "No reply from model."
)

type Failure string

const (
	FailureNone          Failure = ""
	FailureConfiguration Failure = "configuration"
	FailureBackend       Failure = "backend"
	FailureTransport     Failure = "transport"
)

// ChatReply is always renderable. StatusCode is the HTTP status the inbound
// endpoint answers with; Failure is empty on success.
type ChatReply struct {
	Reply      string
	StatusCode int
	Failure    Failure
}

type Gateway struct {
	backend modelbackend.ModelBackend
	logger  logger.ILogger
}

func NewGateway(backend modelbackend.ModelBackend, logger logger.ILogger) *Gateway {
	return &Gateway{
		backend: backend,
		logger:  logger,
	}
}

// Relay makes exactly one backend call. The only error it returns is
// ErrInvalidRequest, and then the backend is never contacted.
func (g *Gateway) Relay(ctx context.Context, userId uuid.UUID, message string, chatCtx entity.ChatContext) (*ChatReply, error) {
	if userId == uuid.Nil {
		metrics.RecordRelay("invalid_request")
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(message) == "" {
		metrics.RecordRelay("invalid_request")
		return nil, fmt.Errorf("%w: message is empty", ErrInvalidRequest)
	}

	ctx, span := tracer.Start(ctx, "chat.relay")
	defer span.End()

	start := time.Now()
	resp, err := g.backend.Complete(ctx, modelbackend.NewRequest(userId, message, chatCtx))
	metrics.ObserveBackendCall(time.Since(start))

	reply := normalize(resp, err)
	metrics.RecordRelay(outcomeLabel(reply.Failure))
	span.SetAttributes(attribute.Int("chat.status_code", reply.StatusCode))

	if reply.Failure != FailureNone {
		span.SetStatus(codes.Error, string(reply.Failure))
		g.logger.Error("CHAT", "Model backend call failed", map[string]interface{}{
			"user_id": userId.String(),
			"failure": string(reply.Failure),
			"status":  reply.StatusCode,
			"error":   err.Error(),
		})
	} else {
		g.logger.Debug("CHAT", "Relayed chat message", map[string]interface{}{
			"user_id":    userId.String(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
	}

	return reply, nil
}

func normalize(resp *modelbackend.Response, err error) *ChatReply {
	if err == nil {
		if resp == nil || resp.Reply == nil {
			return &ChatReply{Reply: ReplyMissing, StatusCode: http.StatusOK}
		}
		return &ChatReply{Reply: *resp.Reply, StatusCode: http.StatusOK}
	}

	var statusErr *modelbackend.StatusError
	switch {
	case errors.Is(err, modelbackend.ErrNotConfigured):
		return &ChatReply{Reply: ReplyNotConfigured, StatusCode: http.StatusInternalServerError, Failure: FailureConfiguration}
	case errors.As(err, &statusErr):
		return &ChatReply{Reply: "Model backend error: " + statusErr.Body, StatusCode: http.StatusBadGateway, Failure: FailureBackend}
	default:
		return &ChatReply{Reply: "Route error: " + err.Error(), StatusCode: http.StatusInternalServerError, Failure: FailureTransport}
	}
}

func outcomeLabel(f Failure) string {
	if f == FailureNone {
		return "ok"
	}
	return string(f) + "_error"
}
