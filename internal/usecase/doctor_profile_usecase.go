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

type DoctorProfileUsecase interface {
	CreateDoctor(ctx context.Context, actorID *uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
}

type doctorProfileUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewDoctorProfileUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

// CreateDoctor creates a standalone doctor profile with no linked account,
// used by administrators to register doctors who do not log in themselves.
func (u *doctorProfileUsecase) CreateDoctor(ctx context.Context, actorID *uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	existing, err := u.doctorRepo.FindByLicenseNumber(ctx, req.LicenseNumber)
	if err != nil {
		u.log.Warnf("Failed to check existing license number: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrLicenseAlreadyExists
	}

	profile := &entity.DoctorProfile{
		Name:           strings.TrimSpace(req.Name),
		Qualification:  req.Qualification,
		LicenseNumber:  req.LicenseNumber,
		Specialization: req.Specialization,
	}

	if err := u.doctorRepo.Create(ctx, profile); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, actorID, entity.AuditActionDoctorCreate, entity.JSON{
		"profile_id":     profile.ID.String(),
		"license_number": profile.LicenseNumber,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctor profiles: %+v", err)
		return nil, err
	}

	doctors := converter.DoctorProfilesToResponses(profiles)

	return &dto.DoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	}, nil
}
