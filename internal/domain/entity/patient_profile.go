package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile holds patient-specific data.
type PatientProfile struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string     `gorm:"type:varchar(50);not null" json:"name"`
	Age        int        `gorm:"not null" json:"age"`
	Gender     string     `gorm:"type:varchar(10);not null" json:"gender"`
	BloodGroup string     `gorm:"type:varchar(3);not null" json:"blood_group"`
	Disease    string     `gorm:"type:varchar(200);not null" json:"disease"`
	AccountID  *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"account_id,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)
