package repository

import (
	"context"

	"clinic-backend/internal/domain/entity"
)

type PatientProfileRepository interface {
	Create(ctx context.Context, profile *entity.PatientProfile) error
	FindAll(ctx context.Context) ([]entity.PatientProfile, error)
}
