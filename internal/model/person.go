package model

import (
	"time"
)

// Person is a member of staff or contact based at a location
type Person struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID   uint      `json:"tenant_id" gorm:"index;not null"`
	Name       string    `json:"name" gorm:"type:varchar(100);not null"`
	Email      string    `json:"email,omitempty" gorm:"type:varchar(100)"`
	Telephone  string    `json:"telephone,omitempty" gorm:"type:varchar(50)"`
	LocationID *string   `json:"location_id" gorm:"type:uuid;index"`
	CategoryID *string   `json:"category_id" gorm:"type:uuid"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
