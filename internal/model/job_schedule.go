package model

import (
	"time"
)

// Recurrence units accepted for job schedules
const (
	RecurrenceUnitDays   = "days"
	RecurrenceUnitWeeks  = "weeks"
	RecurrenceUnitMonths = "months"
	RecurrenceUnitYears  = "years"
)

// ValidRecurrenceUnit checks the unit against the accepted set
func ValidRecurrenceUnit(unit string) bool {
	switch unit {
	case RecurrenceUnitDays, RecurrenceUnitWeeks, RecurrenceUnitMonths, RecurrenceUnitYears:
		return true
	}
	return false
}

// JobSchedule generates recurring jobs against a location. The next job
// creation date is derived from the next due date minus the notice days.
type JobSchedule struct {
	ID                  string     `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID            uint       `json:"tenant_id" gorm:"index;not null"`
	Summary             string     `json:"summary" gorm:"type:varchar(255);not null"`
	Description         string     `json:"description,omitempty" gorm:"type:text"`
	NextDueDate         time.Time  `json:"next_due_date" gorm:"not null"`
	StatutoryCompliance bool       `json:"statutory_compliance" gorm:"default:false"`
	RecurrenceInterval  int        `json:"recurrence_interval" gorm:"not null"`
	RecurrenceUnit      string     `json:"recurrence_unit" gorm:"type:varchar(10);not null"`
	NoticeDays          int        `json:"notice_days" gorm:"not null"`
	NextJobCreationDate *time.Time `json:"next_job_creation_date,omitempty"`
	LocationID          string     `json:"location_id" gorm:"type:uuid;index;not null"`
	CategoryID          *string    `json:"category_id" gorm:"type:uuid"`
	JobCategoryID       *string    `json:"job_category_id" gorm:"type:uuid"`
	Assets              []Asset    `json:"assets,omitempty" gorm:"many2many:job_schedule_assets"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
