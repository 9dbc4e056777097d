package model

import (
	"time"
)

// Asset represents a maintainable item of equipment at a location
type Asset struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID     uint      `json:"tenant_id" gorm:"index;not null"`
	Description  string    `json:"description" gorm:"type:varchar(255);not null"`
	AssetNumber  string    `json:"asset_number,omitempty" gorm:"type:varchar(50);index"`
	Make         string    `json:"make,omitempty" gorm:"type:varchar(100)"`
	Model        string    `json:"model,omitempty" gorm:"type:varchar(100)"`
	SerialNumber string    `json:"serial_number,omitempty" gorm:"type:varchar(100)"`
	LocationID   string    `json:"location_id" gorm:"type:uuid;index;not null"`
	CategoryID   *string   `json:"category_id" gorm:"type:uuid"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
