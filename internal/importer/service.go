package importer

import (
	"context"
	"errors"
	"strings"

	"facility-service/internal/location"
	"facility-service/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImportType selects which pipeline variant an import call runs
type ImportType string

const (
	ImportLocations    ImportType = "locations"
	ImportAssets       ImportType = "assets"
	ImportJobs         ImportType = "jobs"
	ImportJobSchedules ImportType = "jobSchedules"
	ImportSuppliers    ImportType = "suppliers"
)

// IsValid checks the type against the known pipelines
func (t ImportType) IsValid() bool {
	switch t {
	case ImportLocations, ImportAssets, ImportJobs, ImportJobSchedules, ImportSuppliers:
		return true
	}
	return false
}

// ErrUnknownImportType is returned for a type selector outside the known set
var ErrUnknownImportType = errors.New("unknown import type")

// Service runs CSV imports for one entity type at a time. Each call loads
// its own snapshot of the tenant's data, processes every row, and commits
// the rows that passed; no state is shared between calls.
type Service struct {
	db        *gorm.DB
	locations *location.Store
	log       *zap.Logger
}

// NewService creates an import service
func NewService(db *gorm.DB, locations *location.Store, log *zap.Logger) *Service {
	return &Service{db: db, locations: locations, log: log}
}

// ValidHeaders exposes the allowed header set of a pipeline, used by
// callers to build template downloads
func ValidHeaders(t ImportType) []string {
	switch t {
	case ImportLocations:
		return locationHeaders
	case ImportAssets:
		return assetHeaders
	case ImportJobs:
		return jobHeaders
	case ImportJobSchedules:
		return jobScheduleHeaders
	case ImportSuppliers:
		return supplierHeaders
	}
	return nil
}

// Import parses and commits one CSV submission for the tenant. Row-level
// problems are reported in the result and never abort the batch; header or
// parse failures and commit-phase storage failures are returned as errors.
func (s *Service) Import(ctx context.Context, tenantID uint, importType ImportType, csvText string) (*Result, error) {
	log := s.log.With(
		zap.Uint("tenant_id", tenantID),
		zap.String("import_type", string(importType)),
	)

	var (
		result *Result
		err    error
	)
	switch importType {
	case ImportLocations:
		result, err = s.importLocations(ctx, tenantID, csvText)
	case ImportAssets:
		result, err = s.importAssets(ctx, tenantID, csvText)
	case ImportJobs:
		result, err = s.importJobs(ctx, tenantID, csvText)
	case ImportJobSchedules:
		result, err = s.importJobSchedules(ctx, tenantID, csvText)
	case ImportSuppliers:
		result, err = s.importSuppliers(ctx, tenantID, csvText)
	default:
		return nil, ErrUnknownImportType
	}
	if err != nil {
		log.Warn("Import failed", zap.Error(err))
		return nil, err
	}

	log.Info("Import completed",
		zap.Int("imported", result.ImportCount),
		zap.Int("row_errors", len(result.ImportErrors)))
	return result, nil
}

// categorySnapshot loads the tenant's categories of one kind
func (s *Service) categorySnapshot(ctx context.Context, tenantID uint, kind model.CategoryKind) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND kind = ?", tenantID, kind).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// matchCategory finds a category by case-insensitive description. Unmatched
// non-blank values are row errors at the call sites: CSV imports match
// categories, they never create them.
func matchCategory(categories []model.Category, description string) (*model.Category, bool) {
	for i := range categories {
		if strings.EqualFold(categories[i].Description, description) {
			return &categories[i], true
		}
	}
	return nil, false
}

// formatAddress reformats a comma-separated CSV address into the newline
// form the address text areas store
func formatAddress(address string) string {
	if address == "" {
		return ""
	}
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, "\n")
}
