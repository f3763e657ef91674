package practitioners

import (
	"context"
	"time"

	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
	"avalia-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type practitionerUsecase struct {
	PractitionerRepository contracts.PractitionerRepository
}

func NewPractitionerUsecase(practitionerMongoRepository contracts.PractitionerRepository) contracts.PractitionerUsecase {
	return &practitionerUsecase{
		PractitionerRepository: practitionerMongoRepository,
	}
}

func (uc *practitionerUsecase) CreatePractitioner(ctx context.Context, request *requests.CreatePractitioner) (*responses.Practitioner, error) {
	now := time.Now().UTC()
	practitioner := &models.Practitioner{
		ID:                 uuid.New().String(),
		FullName:           request.FullName,
		Email:              request.Email,
		Specialty:          request.Specialty,
		RegistrationNumber: request.RegistrationNumber,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := uc.PractitionerRepository.Insert(ctx, practitioner); err != nil {
		return nil, err
	}
	return buildPractitionerResponse(practitioner), nil
}

func (uc *practitionerUsecase) FindPractitionerByID(ctx context.Context, practitionerID string) (*responses.Practitioner, error) {
	practitioner, err := uc.PractitionerRepository.FindByID(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	if practitioner == nil {
		return nil, exceptions.ErrPractitionerNotFound(nil)
	}
	return buildPractitionerResponse(practitioner), nil
}

func (uc *practitionerUsecase) FindPractitioners(ctx context.Context) ([]responses.Practitioner, error) {
	practitioners, err := uc.PractitionerRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Practitioner, 0, len(practitioners))
	for i := range practitioners {
		response = append(response, *buildPractitionerResponse(&practitioners[i]))
	}
	return response, nil
}

func (uc *practitionerUsecase) UpdatePractitioner(ctx context.Context, practitionerID string, request *requests.UpdatePractitioner) (*responses.Practitioner, error) {
	practitioner, err := uc.PractitionerRepository.FindByID(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	if practitioner == nil {
		return nil, exceptions.ErrPractitionerNotFound(nil)
	}

	practitioner.FullName = request.FullName
	practitioner.Email = request.Email
	practitioner.Specialty = request.Specialty
	practitioner.RegistrationNumber = request.RegistrationNumber
	practitioner.UpdatedAt = time.Now().UTC()

	if err := uc.PractitionerRepository.Update(ctx, practitioner); err != nil {
		return nil, err
	}
	return buildPractitionerResponse(practitioner), nil
}

func buildPractitionerResponse(practitioner *models.Practitioner) *responses.Practitioner {
	return &responses.Practitioner{
		ID:                 practitioner.ID,
		FullName:           practitioner.FullName,
		Email:              practitioner.Email,
		Specialty:          practitioner.Specialty,
		RegistrationNumber: practitioner.RegistrationNumber,
	}
}
