package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PathEntry is one element of a location's materialised path: the id and
// current description of an ancestor (or of the location itself, as the
// final element).
type PathEntry struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// LocationPath is the ordered ancestor chain from root to self, stored
// redundantly on every location as a jsonb column so that subtree queries
// are a single containment lookup.
type LocationPath []PathEntry

// Value implements driver.Valuer for jsonb storage
func (p LocationPath) Value() (driver.Value, error) {
	if p == nil {
		p = LocationPath{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for jsonb storage
func (p *LocationPath) Scan(value interface{}) error {
	if value == nil {
		*p = LocationPath{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported type for LocationPath: %T", value)
	}
}

// GormDataType tells GORM to map the path to a jsonb column
func (LocationPath) GormDataType() string {
	return "jsonb"
}

// Location is a node in a tenant's location tree. Exactly one location per
// tenant has no parent (the root).
type Location struct {
	ID               string       `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID         uint         `json:"tenant_id" gorm:"index;not null"`
	Description      string       `json:"description" gorm:"type:varchar(50);not null"`
	ParentID         *string      `json:"parent_id" gorm:"type:uuid;index"`
	MaterialisedPath LocationPath `json:"materialised_path" gorm:"type:jsonb"`
	CategoryID       *string      `json:"category_id" gorm:"type:uuid"`
	Address          string       `json:"address,omitempty" gorm:"type:text"`
	Telephone        string       `json:"telephone,omitempty" gorm:"type:varchar(50)"`
	Email            string       `json:"email,omitempty" gorm:"type:varchar(100)"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// IsRoot reports whether the location is its tenant's root node
func (l *Location) IsRoot() bool {
	return l.ParentID == nil
}
