package mapper

import (
	"career-ai-be/internal/entity"
	"career-ai-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		UserId:          p.UserId,
		FullName:        p.FullName,
		CareerGoal:      p.CareerGoal,
		ExperienceLevel: p.ExperienceLevel,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		UserId:          p.UserId,
		FullName:        p.FullName,
		CareerGoal:      p.CareerGoal,
		ExperienceLevel: p.ExperienceLevel,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
