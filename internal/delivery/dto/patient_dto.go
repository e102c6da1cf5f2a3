package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	Name       string `json:"name" validate:"required,min=3,max=50"`
	Age        *int   `json:"age" validate:"required,gte=0,lte=130"`
	Gender     string `json:"gender" validate:"required,oneof=male female other"`
	BloodGroup string `json:"blood_group" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Disease    string `json:"disease" validate:"required,max=200"`
}

type PatientResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Age        int        `json:"age"`
	Gender     string     `json:"gender"`
	BloodGroup string     `json:"blood_group"`
	Disease    string     `json:"disease"`
	AccountID  *uuid.UUID `json:"account_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
