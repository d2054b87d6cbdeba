package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

var ErrInactiveUser = errors.New("inactive user")

// ActorResolver monta o ator da requisição a partir do usuário do token.
type ActorResolver struct {
	db *gorm.DB
}

func NewActorResolver(db *gorm.DB) *ActorResolver {
	return &ActorResolver{db: db}
}

func (r *ActorResolver) Resolve(ctx context.Context, userID uint) (actor.Actor, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, ErrInactiveUser
	}

	if user.Type != models.UserTypeProfessional {
		return actor.Client{UserID: user.ID}, nil
	}

	var prof models.Professional
	err := r.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		First(&prof).Error

	// profissional sem perfil ainda age como cliente
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return actor.Client{UserID: user.ID}, nil
	}
	if err != nil {
		return nil, err
	}

	return actor.Professional{UserID: user.ID, ProfessionalID: prof.ID}, nil
}
