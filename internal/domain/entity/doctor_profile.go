package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorProfile holds doctor-specific data. Name is copied from the linked
// account at creation time. AccountID is nil for profiles created directly
// by an administrator without a login account.
type DoctorProfile struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string     `gorm:"type:varchar(50);not null" json:"name"`
	Qualification  string     `gorm:"type:varchar(100);not null" json:"qualification"`
	LicenseNumber  string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialization string     `gorm:"type:varchar(100);not null;index" json:"specialization"`
	AccountID      *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"account_id,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
