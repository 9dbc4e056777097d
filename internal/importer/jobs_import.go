package importer

import (
	"context"
	"time"

	"facility-service/internal/location"
	"facility-service/internal/model"
	"facility-service/internal/validate"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

var jobHeaders = []string{
	"locationLevelOne",
	"locationLevelTwo",
	"locationLevelThree",
	"locationLevelFour",
	"locationLevelFive",
	"summary",
	"description",
	"dueBy",
	"statutoryCompliance",
	"createdAt",
	"category",
}

// buildJobRows processes job rows. Jobs carry no duplicate rule; the
// pipeline checks the summary, the location path and the optional category
// and dates. Pure: no database access.
func buildJobRows(rows []row, tenantID uint, locations []model.Location, categories []model.Category) ([]model.Job, []string) {
	var (
		valid []model.Job
		errs  []string
	)

	for i, csvRow := range rows {
		rowNumber := i + 2

		summary := csvRow.field("summary")
		if summary == "" {
			errs = append(errs, rowErrorf(rowNumber, "A summary must be provided for a job."))
			continue
		}

		levels := levelValues(csvRow)
		if gap := firstGap(levels); gap > 0 {
			errs = append(errs,
				rowErrorf(rowNumber, "Cannot provide locationLevel%d without level%d", gap, gap-1),
				rowErrorf(rowNumber, "Gaps found in location hierarchy"))
			continue
		}

		matched, err := location.ResolveByLabels(locations, providedLevels(levels))
		if err != nil {
			errs = append(errs, rowErrorf(rowNumber, "Could not match the location path provided for this job."))
			continue
		}

		var categoryID *string
		if categoryValue := csvRow.field("category"); categoryValue != "" {
			matchedCategory, ok := matchCategory(categories, categoryValue)
			if !ok {
				errs = append(errs, rowErrorf(rowNumber, "The category provided for this job does not exist."))
				continue
			}
			categoryID = &matchedCategory.ID
		}

		if err := validate.Summary(summary); err != nil {
			errs = append(errs, rowErrorf(rowNumber, "Validation errors: summary: %s", err))
			continue
		}

		var dueBy *time.Time
		if dueByValue := csvRow.field("dueBy"); dueByValue != "" {
			parsed, err := parseDate(dueByValue)
			if err != nil {
				errs = append(errs, rowErrorf(rowNumber, "Validation errors: dueBy: %s", err))
				continue
			}
			dueBy = &parsed
		}

		job := model.Job{
			ID:                  uuid.NewString(),
			TenantID:            tenantID,
			Summary:             summary,
			Description:         csvRow.field("description"),
			DueBy:               dueBy,
			StatutoryCompliance: parseBool(csvRow.field("statutoryCompliance")),
			Status:              "New",
			LocationID:          matched.ID,
			CategoryID:          categoryID,
		}

		valid = append(valid, job)
	}

	return valid, errs
}

// importJobs runs the job pipeline and commits valid rows as one bulk insert
func (s *Service) importJobs(ctx context.Context, tenantID uint, csvText string) (*Result, error) {
	rows, err := parseCSV(csvText, jobHeaders)
	if err != nil {
		return nil, err
	}

	locations, err := s.locations.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categorySnapshot(ctx, tenantID, model.CategoryKindJob)
	if err != nil {
		return nil, err
	}

	valid, rowErrors := buildJobRows(rows, tenantID, locations, categories)

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
