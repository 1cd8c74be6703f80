package mappers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
	}
	if bd := u.BirthDate(); bd != nil {
		d := datatypes.Date(*bd)
		model.BirthDate = &d
	}
	if g := u.Gender(); g != nil {
		s := string(*g)
		model.Gender = &s
	}
	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	var birthDate *time.Time
	if model.BirthDate != nil {
		bd := time.Time(*model.BirthDate).UTC()
		birthDate = &bd
	}

	var gender *user.Gender
	if model.Gender != nil && *model.Gender != "" {
		g, err := user.ParseGender(*model.Gender)
		if err != nil {
			return nil, fmt.Errorf("failed to map user %d: %w", model.ID, err)
		}
		gender = g
	}

	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.Email,
		model.PasswordHash,
		birthDate,
		gender,
		model.CreatedAt.UTC(),
	)
}

// SessionMapper converts sessions; both sides are plain structs.
type SessionMapper interface {
	ToModel(entity *user.Session) *models.SessionModel
	ToDomain(model *models.SessionModel) *user.Session
}

type SessionMapperImpl struct{}

func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(entity *user.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}
	return &models.SessionModel{
		ID:             entity.ID,
		UserID:         entity.UserID,
		IPAddress:      entity.IPAddress,
		UserAgent:      entity.UserAgent,
		ExpiresAt:      entity.ExpiresAt,
		LastActivityAt: entity.LastActivityAt,
		CreatedAt:      entity.CreatedAt,
	}
}

func (m *SessionMapperImpl) ToDomain(model *models.SessionModel) *user.Session {
	if model == nil {
		return nil
	}
	return &user.Session{
		ID:             model.ID,
		UserID:         model.UserID,
		IPAddress:      model.IPAddress,
		UserAgent:      model.UserAgent,
		ExpiresAt:      model.ExpiresAt.UTC(),
		LastActivityAt: model.LastActivityAt.UTC(),
		CreatedAt:      model.CreatedAt.UTC(),
	}
}
