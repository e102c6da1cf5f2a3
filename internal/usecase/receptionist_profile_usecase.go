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

type ReceptionistProfileUsecase interface {
	CreateReceptionist(ctx context.Context, actorID *uuid.UUID, req *dto.CreateReceptionistRequest) (*dto.ReceptionistResponse, error)
	GetAllReceptionists(ctx context.Context) (*dto.ReceptionistListResponse, error)
}

type receptionistProfileUsecase struct {
	log              *logrus.Logger
	receptionistRepo repository.ReceptionistProfileRepository
	auditService     service.AuditService
}

func NewReceptionistProfileUsecase(
	log *logrus.Logger,
	receptionistRepo repository.ReceptionistProfileRepository,
	auditService service.AuditService,
) ReceptionistProfileUsecase {
	return &receptionistProfileUsecase{
		log:              log,
		receptionistRepo: receptionistRepo,
		auditService:     auditService,
	}
}

func (u *receptionistProfileUsecase) CreateReceptionist(ctx context.Context, actorID *uuid.UUID, req *dto.CreateReceptionistRequest) (*dto.ReceptionistResponse, error) {
	profile := &entity.ReceptionistProfile{
		Name:         strings.TrimSpace(req.Name),
		HospitalName: req.HospitalName,
		Location:     req.Location,
		Timings:      req.Timings,
	}

	if err := u.receptionistRepo.Create(ctx, profile); err != nil {
		u.log.Warnf("Failed to create receptionist profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, actorID, entity.AuditActionReceptionistCreate, entity.JSON{
		"profile_id": profile.ID.String(),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.ReceptionistProfileToResponse(profile), nil
}

func (u *receptionistProfileUsecase) GetAllReceptionists(ctx context.Context) (*dto.ReceptionistListResponse, error) {
	profiles, err := u.receptionistRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find receptionist profiles: %+v", err)
		return nil, err
	}

	receptionists := converter.ReceptionistProfilesToResponses(profiles)

	return &dto.ReceptionistListResponse{
		Receptionists: receptionists,
		Total:         len(receptionists),
	}, nil
}
