package contracts

import (
	"context"

	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
)

type PractitionerRepository interface {
	Insert(ctx context.Context, practitioner *models.Practitioner) (string, error)
	FindByID(ctx context.Context, practitionerID string) (*models.Practitioner, error)
	FindAll(ctx context.Context) ([]models.Practitioner, error)
	Update(ctx context.Context, practitioner *models.Practitioner) error
}

type PractitionerUsecase interface {
	CreatePractitioner(ctx context.Context, request *requests.CreatePractitioner) (*responses.Practitioner, error)
	FindPractitionerByID(ctx context.Context, practitionerID string) (*responses.Practitioner, error)
	FindPractitioners(ctx context.Context) ([]responses.Practitioner, error)
	UpdatePractitioner(ctx context.Context, practitionerID string, request *requests.UpdatePractitioner) (*responses.Practitioner, error)
}
