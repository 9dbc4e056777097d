package importer

import (
	"context"
	"strings"

	"facility-service/internal/location"
	"facility-service/internal/model"
	"facility-service/internal/validate"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var locationHeaders = []string{
	"locationLevelOne",
	"locationLevelTwo",
	"locationLevelThree",
	"locationLevelFour",
	"locationLevelFive",
	"category",
	"address",
	"telephone",
	"email",
}

// buildLocationRows walks the parsed rows against the tenant's location
// snapshot. Each created row is appended to the snapshot before the next
// row is processed, so a row can be the parent of a later row in the same
// file and in-file duplicates are caught. Pure: no database access.
func buildLocationRows(rows []row, tenantID uint, locations *[]model.Location, categories []model.Category) ([]model.Location, []string) {
	var (
		valid []model.Location
		errs  []string
	)

	for i, csvRow := range rows {
		rowNumber := i + 2

		levels := levelValues(csvRow)
		if levels[0] == "" {
			errs = append(errs, rowErrorf(rowNumber, "locationLevelOne is required"))
			continue
		}
		if gap := firstGap(levels); gap > 0 {
			errs = append(errs,
				rowErrorf(rowNumber, "Cannot provide locationLevel%d without level%d", gap, gap-1),
				rowErrorf(rowNumber, "Gaps found in location hierarchy"))
			continue
		}

		// The deepest provided level is the location to create; the levels
		// above it must match an existing node's path.
		provided := providedLevels(levels)
		target := provided[len(provided)-1]
		parentLevels := provided[:len(provided)-1]

		parent, err := location.ResolveByLabels(*locations, parentLevels)
		if err != nil {
			if len(parentLevels) == 0 {
				errs = append(errs, rowErrorf(rowNumber, "Could not find root location for account."))
			} else {
				errs = append(errs, rowErrorf(rowNumber, "Could not match the location path / find the parent for this location."))
			}
			continue
		}

		duplicate := false
		for j := range *locations {
			sibling := &(*locations)[j]
			if sibling.ParentID != nil && *sibling.ParentID == parent.ID &&
				strings.EqualFold(sibling.Description, target) {
				duplicate = true
				break
			}
		}
		if duplicate {
			errs = append(errs, rowErrorf(rowNumber, "A child location with this description already exists on the target location."))
			continue
		}

		var categoryID *string
		if categoryValue := csvRow.field("category"); categoryValue != "" {
			matched, ok := matchCategory(categories, categoryValue)
			if !ok {
				errs = append(errs, rowErrorf(rowNumber, "The category description provided could not be matched."))
				continue
			}
			categoryID = &matched.ID
		}

		address := csvRow.field("address")
		telephone := csvRow.field("telephone")
		email := csvRow.field("email")
		if err := firstError(
			validate.LocationDescription(target),
			validate.Address(address, 500),
			validate.Telephone(telephone),
			validate.Email(email),
		); err != nil {
			errs = append(errs, rowErrorf(rowNumber, "Validation errors: %s", err))
			continue
		}

		id := uuid.NewString()
		parentID := parent.ID
		loc := model.Location{
			ID:               id,
			TenantID:         tenantID,
			Description:      target,
			ParentID:         &parentID,
			MaterialisedPath: location.ChildPath(parent.MaterialisedPath, id, target),
			CategoryID:       categoryID,
			Address:          formatAddress(address),
			Telephone:        telephone,
			Email:            email,
		}

		*locations = append(*locations, loc)
		valid = append(valid, loc)
	}

	return valid, errs
}

// importLocations runs the location pipeline: snapshot, row processing,
// then per-row creates inside one transaction (a row's parent may itself
// have been created earlier in the same batch, so insert order matters).
func (s *Service) importLocations(ctx context.Context, tenantID uint, csvText string) (*Result, error) {
	rows, err := parseCSV(csvText, locationHeaders)
	if err != nil {
		return nil, err
	}

	locations, err := s.locations.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categorySnapshot(ctx, tenantID, model.CategoryKindLocation)
	if err != nil {
		return nil, err
	}

	valid, rowErrors := buildLocationRows(rows, tenantID, &locations, categories)

	if len(valid) > 0 {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for i := range valid {
				if err := tx.Create(&valid[i]).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return &Result{ImportCount: len(valid), ImportErrors: rowErrors}, nil
}

// firstError returns the first non-nil error of the list
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
