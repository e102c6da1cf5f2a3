package repository

import (
	"context"

	"clinic-backend/internal/domain/entity"
)

type ReceptionistProfileRepository interface {
	Create(ctx context.Context, profile *entity.ReceptionistProfile) error
	FindAll(ctx context.Context) ([]entity.ReceptionistProfile, error)
}
