package model

import (
	"time"
)

// Tenant represents an account: the isolation boundary for every other
// record in the service. All queries and writes are scoped to one tenant.
type Tenant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// IgnoreWeekendDays switches schedule lead-time arithmetic from
	// calendar days to business days.
	IgnoreWeekendDays bool `json:"ignore_weekend_days" gorm:"default:false"`
}
