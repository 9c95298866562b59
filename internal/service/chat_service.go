package service

import (
	"context"
	"fmt"
	"strings"

	"career-ai-be/internal/dto"
	"career-ai-be/internal/entity"
	"career-ai-be/pkg/chat"
	"career-ai-be/pkg/dashboard"

	"github.com/google/uuid"
)

type IChatService interface {
	// Chat returns the reply body and the HTTP status to send it with. The
	// only error is chat.ErrInvalidRequest.
	Chat(ctx context.Context, sessionUserId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, int, error)
}

type chatService struct {
	gateway    *chat.Gateway
	aggregator *dashboard.Aggregator
}

func NewChatService(gateway *chat.Gateway, aggregator *dashboard.Aggregator) IChatService {
	return &chatService{
		gateway:    gateway,
		aggregator: aggregator,
	}
}

func (s *chatService) Chat(ctx context.Context, sessionUserId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, int, error) {
	if claimed := strings.TrimSpace(req.UserId); claimed != "" && claimed != sessionUserId.String() {
		return nil, 0, fmt.Errorf("%w: user_id does not match the session", chat.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, 0, fmt.Errorf("%w: message is empty", chat.ErrInvalidRequest)
	}

	var chatCtx entity.ChatContext
	if req.Context != nil {
		chatCtx = chat.Assemble(snapshotFromDTO(req.Context.Dashboard, sessionUserId), req.Context.LearningHours)
	} else {
		view, err := s.aggregator.LoadStats(ctx, sessionUserId)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", chat.ErrInvalidRequest, err)
		}
		chatCtx = chat.Assemble(view.Stats, view.LearningHoursTotal)
	}

	reply, err := s.gateway.Relay(ctx, sessionUserId, req.Message, chatCtx)
	if err != nil {
		return nil, 0, err
	}
	return &dto.ChatResponse{Reply: reply.Reply}, reply.StatusCode, nil
}

// snapshotFromDTO keeps a client-sent snapshot but always stamps it with the
// session's user.
func snapshotFromDTO(d *dto.DashboardSnapshotDTO, userId uuid.UUID) *entity.DashboardStats {
	if d == nil {
		return nil
	}
	return &entity.DashboardStats{
		UserId:              userId,
		TotalJobMatches:     d.TotalJobMatches,
		AvgMatchScore:       d.AvgMatchScore,
		SkillsLearning:      d.SkillsLearning,
		TotalLearningHours:  d.TotalLearningHours,
		ApplicationsSent:    d.ApplicationsSent,
		InterviewsCompleted: d.InterviewsCompleted,
		LastUpdated:         d.LastUpdated,
	}
}
