package repository

import (
	"context"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type receptionistProfileRepository struct {
	db *gorm.DB
}

func NewReceptionistProfileRepository(db *gorm.DB) domainRepo.ReceptionistProfileRepository {
	return &receptionistProfileRepository{db: db}
}

func (r *receptionistProfileRepository) Create(ctx context.Context, profile *entity.ReceptionistProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *receptionistProfileRepository) FindAll(ctx context.Context) ([]entity.ReceptionistProfile, error) {
	var profiles []entity.ReceptionistProfile
	err := r.db.WithContext(ctx).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
