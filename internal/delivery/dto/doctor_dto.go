package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required,min=3,max=50"`
	Qualification  string `json:"qualification" validate:"required,max=100"`
	LicenseNumber  string `json:"license_number" validate:"required,max=50"`
	Specialization string `json:"specialization" validate:"required,max=100"`
}

type DoctorResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Qualification  string     `json:"qualification"`
	LicenseNumber  string     `json:"license_number"`
	Specialization string     `json:"specialization"`
	AccountID      *uuid.UUID `json:"account_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
