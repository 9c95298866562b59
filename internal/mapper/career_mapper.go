package mapper

import (
	"career-ai-be/internal/entity"
	"career-ai-be/internal/model"
)

type CareerMapper struct{}

func NewCareerMapper() *CareerMapper {
	return &CareerMapper{}
}

func (m *CareerMapper) DashboardToEntity(d *model.UserCareerDashboard) *entity.DashboardStats {
	if d == nil {
		return nil
	}
	return &entity.DashboardStats{
		UserId:              d.UserId,
		TotalJobMatches:     d.TotalJobMatches,
		AvgMatchScore:       d.AvgMatchScore,
		SkillsLearning:      d.SkillsLearning,
		TotalLearningHours:  d.TotalLearningHours,
		ApplicationsSent:    d.ApplicationsSent,
		InterviewsCompleted: d.InterviewsCompleted,
		LastUpdated:         d.LastUpdated,
	}
}

func (m *CareerMapper) LearningToEntities(rows []*model.LearningProgress) []*entity.LearningProgress {
	res := make([]*entity.LearningProgress, 0, len(rows))
	for _, r := range rows {
		res = append(res, &entity.LearningProgress{
			Id:             r.Id,
			UserId:         r.UserId,
			Skill:          r.Skill,
			CurrentLevel:   r.CurrentLevel,
			TargetLevel:    r.TargetLevel,
			HoursCompleted: r.HoursCompleted,
			UpdatedAt:      r.UpdatedAt,
		})
	}
	return res
}

func (m *CareerMapper) JobMatchesToEntities(rows []*model.JobMatch) []*entity.JobMatch {
	res := make([]*entity.JobMatch, 0, len(rows))
	for _, r := range rows {
		res = append(res, &entity.JobMatch{
			MatchId:    r.MatchId,
			UserId:     r.UserId,
			JobTitle:   r.JobTitle,
			Company:    r.Company,
			MatchScore: r.MatchScore,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		})
	}
	return res
}

func (m *CareerMapper) ApplicationsToEntities(rows []*model.Application) []*entity.Application {
	res := make([]*entity.Application, 0, len(rows))
	for _, r := range rows {
		res = append(res, &entity.Application{
			Id:        r.Id,
			UserId:    r.UserId,
			Company:   r.Company,
			JobTitle:  r.JobTitle,
			Status:    r.Status,
			AppliedOn: r.AppliedOn,
		})
	}
	return res
}

func (m *CareerMapper) InterviewsToEntities(rows []*model.InterviewSession) []*entity.InterviewSession {
	res := make([]*entity.InterviewSession, 0, len(rows))
	for _, r := range rows {
		res = append(res, &entity.InterviewSession{
			SessionId:   r.SessionId,
			UserId:      r.UserId,
			ScheduledAt: r.ScheduledAt,
			RoundType:   r.RoundType,
			Score:       r.Score,
			Feedback:    r.Feedback,
			Completed:   r.Completed,
		})
	}
	return res
}
