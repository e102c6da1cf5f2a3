package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReceptionistRequest struct {
	Name         string `json:"name" validate:"required,min=3,max=50"`
	HospitalName string `json:"hospital_name" validate:"required,max=100"`
	Location     string `json:"location" validate:"required,max=150"`
	Timings      string `json:"timings" validate:"required,max=100"`
}

type ReceptionistResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	HospitalName string     `json:"hospital_name"`
	Location     string     `json:"location"`
	Timings      string     `json:"timings"`
	AccountID    *uuid.UUID `json:"account_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ReceptionistListResponse struct {
	Receptionists []ReceptionistResponse `json:"receptionists"`
	Total         int                    `json:"total"`
}
