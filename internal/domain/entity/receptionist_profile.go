package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReceptionistProfile holds receptionist-specific data.
type ReceptionistProfile struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string     `gorm:"type:varchar(50);not null" json:"name"`
	HospitalName string     `gorm:"type:varchar(100);not null" json:"hospital_name"`
	Location     string     `gorm:"type:varchar(150);not null" json:"location"`
	Timings      string     `gorm:"type:varchar(100);not null" json:"timings"`
	AccountID    *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"account_id,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

func (ReceptionistProfile) TableName() string {
	return "receptionist_profiles"
}
