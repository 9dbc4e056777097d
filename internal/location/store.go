package location

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"facility-service/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store owns the location tree of every tenant. All mutations keep the
// materialised-path invariant: a node's path is its parent's path plus its
// own {id, description} entry.
type Store struct {
	db *gorm.DB
}

// NewStore creates a location store backed by the given database
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateInput carries the fields for a new non-root location
type CreateInput struct {
	Description string
	ParentID    string
	CategoryID  *string
	Address     string
	Telephone   string
	Email       string
}

// UpdateInput carries the updatable fields of a location. A changed
// description triggers the cascading path rewrite.
type UpdateInput struct {
	Description string
	CategoryID  *string
	Address     string
	Telephone   string
	Email       string
}

// Get loads a single location scoped to the tenant
func (s *Store) Get(ctx context.Context, tenantID uint, id string) (*model.Location, error) {
	var loc model.Location
	err := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// Snapshot loads every location of the tenant. Import pipelines and the
// resolver operate on this snapshot instead of querying per row.
func (s *Store) Snapshot(ctx context.Context, tenantID uint) ([]model.Location, error) {
	var locations []model.Location
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// CreateRoot creates the tenant's first location. Its path is the single
// entry {id, description}.
func (s *Store) CreateRoot(ctx context.Context, tenantID uint, description string) (*model.Location, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Location{}).
		Where("tenant_id = ? AND parent_id IS NULL", tenantID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrRootExists
	}

	id := uuid.NewString()
	root := model.Location{
		ID:               id,
		TenantID:         tenantID,
		Description:      strings.TrimSpace(description),
		MaterialisedPath: RootPath(id, strings.TrimSpace(description)),
	}
	if err := s.db.WithContext(ctx).Create(&root).Error; err != nil {
		return nil, err
	}
	return &root, nil
}

// Create inserts a new location under the given parent. The id is generated
// here so the materialised path can be computed before the single insert.
func (s *Store) Create(ctx context.Context, tenantID uint, in CreateInput) (*model.Location, error) {
	parent, err := s.Get(ctx, tenantID, in.ParentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, err
	}

	dup, err := s.hasSibling(ctx, tenantID, &in.ParentID, in.Description, "")
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateSibling
	}

	id := uuid.NewString()
	parentID := parent.ID
	loc := model.Location{
		ID:               id,
		TenantID:         tenantID,
		Description:      strings.TrimSpace(in.Description),
		ParentID:         &parentID,
		MaterialisedPath: ChildPath(parent.MaterialisedPath, id, strings.TrimSpace(in.Description)),
		CategoryID:       in.CategoryID,
		Address:          in.Address,
		Telephone:        in.Telephone,
		Email:            in.Email,
	}
	if err := s.db.WithContext(ctx).Create(&loc).Error; err != nil {
		// Concurrent imports can race on sibling uniqueness; the unique
		// index turns the race into an error for the later caller.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSibling
		}
		return nil, err
	}
	return &loc, nil
}

// Rename updates a location's fields. When the description changes, the
// matching path entry of the node and of every descendant is rewritten in
// one transaction so readers never observe a half-renamed subtree.
func (s *Store) Rename(ctx context.Context, tenantID uint, id string, in UpdateInput) (*model.Location, error) {
	current, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(in.Description)
	changed := current.Description != description

	if changed && current.ParentID != nil {
		dup, err := s.hasSibling(ctx, tenantID, current.ParentID, description, id)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, ErrDuplicateSibling
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"description": description,
			"category_id": in.CategoryID,
			"address":     in.Address,
			"telephone":   in.Telephone,
			"email":       in.Email,
		}
		if changed {
			newPath, _ := RewriteEntry(current.MaterialisedPath, id, description)
			updates["materialised_path"] = newPath
		}

		if err := tx.Model(&model.Location{}).
			Where("id = ? AND tenant_id = ?", id, tenantID).
			Updates(updates).Error; err != nil {
			return err
		}

		if !changed {
			return nil
		}

		// Cascade: rewrite the one path element carrying this node's id on
		// every descendant, leaving all other elements untouched.
		var descendants []model.Location
		if err := tx.
			Where("tenant_id = ? AND materialised_path @> ? AND id <> ?",
				tenantID, containsID(id), id).
			Find(&descendants).Error; err != nil {
			return err
		}

		for i := range descendants {
			newPath, found := RewriteEntry(descendants[i].MaterialisedPath, id, description)
			if !found {
				continue
			}
			if err := tx.Model(&model.Location{}).
				Where("id = ?", descendants[i].ID).
				Update("materialised_path", newPath).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// A concurrent rename can race past the sibling pre-check; the
		// unique index reports it here instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSibling
		}
		return nil, err
	}

	return s.Get(ctx, tenantID, id)
}

// Delete removes a location. The root cannot be deleted and neither can a
// location that still has children.
func (s *Store) Delete(ctx context.Context, tenantID uint, id string) error {
	loc, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if loc.IsRoot() {
		return ErrRootDeletionForbidden
	}

	var children int64
	err = s.db.WithContext(ctx).Model(&model.Location{}).
		Where("tenant_id = ? AND parent_id = ?", tenantID, id).
		Count(&children).Error
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrHasChildren
	}

	return s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.Location{}).Error
}

// DescendantIDs returns the ids of the location and every location beneath
// it, found with a single structural containment query against the
// materialised path. Matching on ids keeps the lookup immune to concurrent
// renames.
func (s *Store) DescendantIDs(ctx context.Context, tenantID uint, id string) ([]string, error) {
	if _, err := s.Get(ctx, tenantID, id); err != nil {
		return nil, err
	}

	var ids []string
	err := s.db.WithContext(ctx).Model(&model.Location{}).
		Where("tenant_id = ? AND materialised_path @> ?", tenantID, containsID(id)).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// hasSibling checks case-insensitively whether the parent already has a
// child with the description, optionally excluding one id.
func (s *Store) hasSibling(ctx context.Context, tenantID uint, parentID *string, description, excludeID string) (bool, error) {
	query := s.db.WithContext(ctx).Model(&model.Location{}).
		Where("tenant_id = ? AND parent_id = ? AND lower(description) = lower(?)",
			tenantID, parentID, strings.TrimSpace(description))
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// containsID builds the jsonb containment operand [{"id": id}] used by the
// subtree queries. Only the id key is present so the match ignores labels.
func containsID(id string) string {
	operand, _ := json.Marshal([]map[string]string{{"id": id}})
	return string(operand)
}

// EnsureIndexes creates the indexes AutoMigrate cannot express: the gin
// index backing the subtree containment queries and the functional unique
// index enforcing case-insensitive sibling uniqueness at the database.
func EnsureIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_locations_path ON locations USING gin (materialised_path jsonb_path_ops)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_locations_sibling
			ON locations (tenant_id, COALESCE(parent_id::text, ''), lower(description))`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
