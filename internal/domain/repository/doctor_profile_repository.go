package repository

import (
	"context"

	"clinic-backend/internal/domain/entity"
)

type DoctorProfileRepository interface {
	Create(ctx context.Context, profile *entity.DoctorProfile) error
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.DoctorProfile, error)
	FindAll(ctx context.Context) ([]entity.DoctorProfile, error)
}
