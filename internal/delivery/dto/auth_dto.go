package dto

import (
	"errors"
	"time"

	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

// RegisterRequest carries the base account fields plus exactly one
// role-specific variant, selected by Role. Role defaults to "patient" when
// empty; admin accounts cannot self-register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	Role     string `json:"role" validate:"omitempty,oneof=doctor receptionist patient user"`

	Doctor       *DoctorRegistration       `json:"doctor,omitempty"`
	Receptionist *ReceptionistRegistration `json:"receptionist,omitempty"`
	Patient      *PatientRegistration      `json:"patient,omitempty"`
}

type DoctorRegistration struct {
	Qualification  string `json:"qualification" validate:"required,max=100"`
	LicenseNumber  string `json:"license_number" validate:"required,max=50"`
	Specialization string `json:"specialization" validate:"required,max=100"`
}

type ReceptionistRegistration struct {
	HospitalName string `json:"hospital_name" validate:"required,max=100"`
	Location     string `json:"location" validate:"required,max=150"`
	Timings      string `json:"timings" validate:"required,max=100"`
}

type PatientRegistration struct {
	Age        *int   `json:"age" validate:"required,gte=0,lte=130"`
	Gender     string `json:"gender" validate:"required,oneof=male female other"`
	BloodGroup string `json:"blood_group" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Disease    string `json:"disease" validate:"required,max=200"`
}

// EffectiveRole resolves the role the account will be created with.
func (r *RegisterRequest) EffectiveRole() string {
	if r.Role == "" {
		return entity.RolePatient
	}
	return r.Role
}

// CheckRoleVariant enforces the tagged-union shape: the variant matching the
// declared role must be present and no other variant may be set.
func (r *RegisterRequest) CheckRoleVariant() error {
	role := r.EffectiveRole()

	if r.Doctor != nil && role != entity.RoleDoctor {
		return errors.New("doctor fields are only allowed for role doctor")
	}
	if r.Receptionist != nil && role != entity.RoleReceptionist {
		return errors.New("receptionist fields are only allowed for role receptionist")
	}
	if r.Patient != nil && role != entity.RolePatient {
		return errors.New("patient fields are only allowed for role patient")
	}

	switch role {
	case entity.RoleDoctor:
		if r.Doctor == nil {
			return errors.New("doctor fields are required for role doctor")
		}
	case entity.RoleReceptionist:
		if r.Receptionist == nil {
			return errors.New("receptionist fields are required for role receptionist")
		}
	case entity.RolePatient:
		if r.Patient == nil {
			return errors.New("patient fields are required for role patient")
		}
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,min=3,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6,max=50"`
}

// IsEmpty reports whether the patch contains no changes.
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == "" && r.Email == "" && r.Password == ""
}

// Response DTOs

// AccountResponse is the redacted account view. It has no password field by
// construction, so hashes can never leak through serialization.
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthResponse struct {
	Account AccountResponse `json:"account"`
	Token   string          `json:"token"`
}

type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}
