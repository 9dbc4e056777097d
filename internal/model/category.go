package model

import (
	"time"
)

// CategoryKind identifies which entity type a category classifies. A single
// categories table keyed by kind replaces per-entity category tables.
type CategoryKind string

const (
	CategoryKindLocation    CategoryKind = "location"
	CategoryKindAsset       CategoryKind = "asset"
	CategoryKindJob         CategoryKind = "job"
	CategoryKindJobSchedule CategoryKind = "jobSchedule"
	CategoryKindSupplier    CategoryKind = "supplier"
	CategoryKindPerson      CategoryKind = "person"
)

// IsValid checks whether the kind is one of the known category kinds
func (k CategoryKind) IsValid() bool {
	switch k {
	case CategoryKindLocation, CategoryKindAsset, CategoryKindJob,
		CategoryKindJobSchedule, CategoryKindSupplier, CategoryKindPerson:
		return true
	}
	return false
}

// Category classifies entities of one kind within a tenant
type Category struct {
	ID          string       `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID    uint         `json:"tenant_id" gorm:"index:idx_category_tenant_kind;not null"`
	Kind        CategoryKind `json:"kind" gorm:"type:varchar(20);index:idx_category_tenant_kind;not null"`
	Description string       `json:"description" gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
