package patients

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

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
}

func NewPatientUsecase(patientMongoRepository contracts.PatientRepository) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	now := time.Now().UTC()
	patient := &models.Patient{
		ID:        uuid.New().String(),
		FullName:  request.FullName,
		Email:     request.Email,
		BirthDate: request.BirthDate,
		Gender:    request.Gender,
		Phone:     request.Phone,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := uc.PatientRepository.Insert(ctx, patient); err != nil {
		return nil, err
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) FindPatients(ctx context.Context) ([]responses.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		response = append(response, *buildPatientResponse(&patients[i]))
	}
	return response, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	patient.FullName = request.FullName
	patient.Email = request.Email
	patient.BirthDate = request.BirthDate
	patient.Gender = request.Gender
	patient.Phone = request.Phone
	patient.UpdatedAt = time.Now().UTC()

	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		return nil, err
	}
	return buildPatientResponse(patient), nil
}

func buildPatientResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:        patient.ID,
		FullName:  patient.FullName,
		Email:     patient.Email,
		BirthDate: patient.BirthDate,
		Gender:    patient.Gender,
		Phone:     patient.Phone,
	}
}
