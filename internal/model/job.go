package model

import (
	"time"
)

// Job is a one-off piece of maintenance work raised against a location
type Job struct {
	ID                  string     `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID            uint       `json:"tenant_id" gorm:"index;not null"`
	Summary             string     `json:"summary" gorm:"type:varchar(255);not null"`
	Description         string     `json:"description,omitempty" gorm:"type:text"`
	DueBy               *time.Time `json:"due_by,omitempty"`
	StatutoryCompliance bool       `json:"statutory_compliance" gorm:"default:false"`
	Status              string     `json:"status" gorm:"type:varchar(20);default:'New'"`
	LocationID          string     `json:"location_id" gorm:"type:uuid;index;not null"`
	CategoryID          *string    `json:"category_id" gorm:"type:uuid"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
