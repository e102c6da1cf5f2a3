package usecase

import (
	"context"
	"strings"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PatientProfileUsecase interface {
	CreatePatient(ctx context.Context, actorID *uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientProfileUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientProfileRepository
	auditService service.AuditService
}

func NewPatientProfileUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientProfileUsecase) CreatePatient(ctx context.Context, actorID *uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	profile := &entity.PatientProfile{
		Name:       strings.TrimSpace(req.Name),
		Age:        *req.Age,
		Gender:     req.Gender,
		BloodGroup: req.BloodGroup,
		Disease:    req.Disease,
	}

	if err := u.patientRepo.Create(ctx, profile); err != nil {
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, actorID, entity.AuditActionPatientCreate, entity.JSON{
		"profile_id": profile.ID.String(),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientProfileUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	profiles, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patient profiles: %+v", err)
		return nil, err
	}

	patients := converter.PatientProfilesToResponses(profiles)

	return &dto.PatientListResponse{
		Patients: patients,
		Total:    len(patients),
	}, nil
}
