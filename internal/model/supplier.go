package model

import (
	"time"
)

// Supplier represents an external contractor or vendor for a tenant
type Supplier struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID    uint      `json:"tenant_id" gorm:"index;not null"`
	Description string    `json:"description" gorm:"type:varchar(255);not null"`
	Address     string    `json:"address,omitempty" gorm:"type:text"`
	Telephone   string    `json:"telephone,omitempty" gorm:"type:varchar(50)"`
	Email       string    `json:"email,omitempty" gorm:"type:varchar(100)"`
	Skills      string    `json:"skills,omitempty" gorm:"type:text"`
	CategoryID  *string   `json:"category_id" gorm:"type:uuid"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
