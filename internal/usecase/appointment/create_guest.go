package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type CreateGuestAppointmentInput struct {
	CreateAppointmentInput

	ClientName  string
	ClientEmail string
	ClientPhone string
}

// CreateGuestAppointment agenda sem login: o cliente é encontrado pelo
// e-mail ou criado na hora com uma senha aleatória.
type CreateGuestAppointment struct {
	create *CreateAppointment
}

func NewCreateGuestAppointment(create *CreateAppointment) *CreateGuestAppointment {
	return &CreateGuestAppointment{create: create}
}

func (uc *CreateGuestAppointment) Execute(
	ctx context.Context,
	in CreateGuestAppointmentInput,
) (*dto.AppointmentDTO, error) {

	// valida catálogo antes de criar qualquer usuário
	if _, _, err := uc.create.b.loadCatalog(ctx, in.ProfessionalID, in.ServiceID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash guest password: %w", err)
	}

	client, err := uc.create.repo.GetOrCreateGuestClient(ctx, models.User{
		Name:         strings.TrimSpace(in.ClientName),
		Email:        strings.ToLower(strings.TrimSpace(in.ClientEmail)),
		Phone:        strings.TrimSpace(in.ClientPhone),
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return uc.create.book(ctx, actor.Client{UserID: client.ID}, client, in.CreateAppointmentInput)
}
