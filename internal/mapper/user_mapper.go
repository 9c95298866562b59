package mapper

import (
	"encoding/json"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.Identity {
	if u == nil {
		return nil
	}

	var meta entity.SignupMetadata
	if len(u.RawUserMetaData) > 0 {
		// Unknown keys are ignored; a malformed blob leaves the metadata empty.
		_ = json.Unmarshal(u.RawUserMetaData, &meta)
	}

	return &entity.Identity{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.EncryptedPassword,
		Metadata:     meta,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(i *entity.Identity) *model.User {
	if i == nil {
		return nil
	}

	raw, err := json.Marshal(i.Metadata)
	if err != nil {
		raw = []byte("{}")
	}

	return &model.User{
		Id:                i.Id,
		Email:             i.Email,
		EncryptedPassword: i.PasswordHash,
		RawUserMetaData:   datatypes.JSON(raw),
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}
