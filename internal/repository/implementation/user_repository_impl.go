package implementation

import (
	"context"
	"errors"
	"strings"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/mapper"
	"career-ai-be/internal/model"
	"career-ai-be/internal/repository/contract"
	"career-ai-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// translateWriteError needs gorm.Config.TranslateError so the postgres
// unique violation arrives as gorm.ErrDuplicatedKey.
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return contract.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepositoryImpl) Create(ctx context.Context, identity *entity.Identity) error {
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	modelUser := r.mapper.ToModel(identity)
	if err := r.db.WithContext(ctx).Create(modelUser).Error; err != nil {
		return translateWriteError(err)
	}
	*identity = *r.mapper.ToEntity(modelUser)
	return nil
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Identity, error) {
	var modelUser model.User
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelUser), nil
}
