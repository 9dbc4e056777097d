package importer

import (
	"context"
	"strings"

	"facility-service/internal/location"
	"facility-service/internal/model"
	"facility-service/internal/validate"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

var assetHeaders = []string{
	"description",
	"assetNumber",
	"locationLevelOne",
	"locationLevelTwo",
	"locationLevelThree",
	"locationLevelFour",
	"locationLevelFive",
	"make",
	"model",
	"serialNumber",
	"category",
}

// buildAssetRows processes asset rows against the running asset snapshot.
// Duplicate detection covers asset numbers and serial numbers, checked
// case-insensitively against existing assets plus the rows already accepted
// from this file. Pure: no database access.
func buildAssetRows(rows []row, tenantID uint, assets *[]model.Asset, locations []model.Location, categories []model.Category) ([]model.Asset, []string) {
	var (
		valid []model.Asset
		errs  []string
	)

	for i, csvRow := range rows {
		rowNumber := i + 2

		description := csvRow.field("description")
		if description == "" {
			errs = append(errs, rowErrorf(rowNumber, "A description must be provided for an asset."))
			continue
		}

		// Level one is optional: an asset with no levels sits on the root.
		levels := levelValues(csvRow)
		if gap := firstGap(levels); gap > 0 {
			errs = append(errs,
				rowErrorf(rowNumber, "Cannot provide locationLevel%d without level%d", gap, gap-1),
				rowErrorf(rowNumber, "Gaps found in location hierarchy"))
			continue
		}

		matched, err := location.ResolveByLabels(locations, providedLevels(levels))
		if err != nil {
			errs = append(errs, rowErrorf(rowNumber, "Could not match the location path provided for this asset."))
			continue
		}

		assetNumber := csvRow.field("assetNumber")
		serialNumber := csvRow.field("serialNumber")

		if assetNumber != "" && hasAsset(*assets, func(a *model.Asset) bool {
			return strings.EqualFold(a.AssetNumber, assetNumber)
		}) {
			errs = append(errs, rowErrorf(rowNumber, "An asset with this asset number already exists."))
			continue
		}
		if serialNumber != "" && hasAsset(*assets, func(a *model.Asset) bool {
			return strings.EqualFold(a.SerialNumber, serialNumber)
		}) {
			errs = append(errs, rowErrorf(rowNumber, "An asset with this serial number already exists."))
			continue
		}

		var categoryID *string
		if categoryValue := csvRow.field("category"); categoryValue != "" {
			matchedCategory, ok := matchCategory(categories, categoryValue)
			if !ok {
				errs = append(errs, rowErrorf(rowNumber, "The category provided for this asset does not exist."))
				continue
			}
			categoryID = &matchedCategory.ID
		}

		if err := validate.AssetDescription(description); err != nil {
			errs = append(errs, rowErrorf(rowNumber, "Validation errors: description: %s", err))
			continue
		}

		asset := model.Asset{
			ID:           uuid.NewString(),
			TenantID:     tenantID,
			Description:  description,
			AssetNumber:  assetNumber,
			Make:         csvRow.field("make"),
			Model:        csvRow.field("model"),
			SerialNumber: serialNumber,
			LocationID:   matched.ID,
			CategoryID:   categoryID,
		}

		*assets = append(*assets, asset)
		valid = append(valid, asset)
	}

	return valid, errs
}

func hasAsset(assets []model.Asset, match func(*model.Asset) bool) bool {
	for i := range assets {
		if match(&assets[i]) {
			return true
		}
	}
	return false
}

// importAssets runs the asset pipeline and commits the valid rows as one
// bulk insert. The on-conflict clause is a backstop only; duplicates are
// filtered upstream against the snapshot.
func (s *Service) importAssets(ctx context.Context, tenantID uint, csvText string) (*Result, error) {
	rows, err := parseCSV(csvText, assetHeaders)
	if err != nil {
		return nil, err
	}

	var assets []model.Asset
	if err := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&assets).Error; err != nil {
		return nil, err
	}
	locations, err := s.locations.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categorySnapshot(ctx, tenantID, model.CategoryKindAsset)
	if err != nil {
		return nil, err
	}

	valid, rowErrors := buildAssetRows(rows, tenantID, &assets, locations, categories)

	if len(valid) > 0 {
		err = s.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(valid, 100).Error
		if err != nil {
			return nil, err
		}
	}

	return &Result{ImportCount: len(valid), ImportErrors: rowErrors}, nil
}
