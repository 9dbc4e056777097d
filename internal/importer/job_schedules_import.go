package importer

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"facility-service/internal/location"
	"facility-service/internal/model"
	"facility-service/internal/validate"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var jobScheduleHeaders = []string{
	"locationLevelOne",
	"locationLevelTwo",
	"locationLevelThree",
	"locationLevelFour",
	"locationLevelFive",
	"summary",
	"description",
	"nextDueDate",
	"statutoryCompliance",
	"recurrenceInterval",
	"recurrenceUnit",
	"noticeDays",
	"category",
	"jobCategory",
	"linkedAssetNumbers",
}

// buildJobScheduleRows processes schedule rows: recurrence fields are
// coerced and checked, linked asset numbers must all resolve, and the
// next-job-creation date is derived from the due date and notice period.
// Pure: no database access.
func buildJobScheduleRows(
	rows []row,
	tenantID uint,
	locations []model.Location,
	categories []model.Category,
	jobCategories []model.Category,
	assets []model.Asset,
	ignoreWeekendDays bool,
) ([]model.JobSchedule, []string) {
	var (
		valid []model.JobSchedule
		errs  []string
	)

	for i, csvRow := range rows {
		rowNumber := i + 2

		summary := csvRow.field("summary")
		if summary == "" {
			errs = append(errs, rowErrorf(rowNumber, "A summary must be provided for a job schedule."))
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
			errs = append(errs, rowErrorf(rowNumber, "Could not match the location path provided for this schedule."))
			continue
		}

		var categoryID *string
		if categoryValue := csvRow.field("category"); categoryValue != "" {
			matchedCategory, ok := matchCategory(categories, categoryValue)
			if !ok {
				errs = append(errs, rowErrorf(rowNumber, "The category provided for this schedule does not exist."))
				continue
			}
			categoryID = &matchedCategory.ID
		}

		var jobCategoryID *string
		if jobCategoryValue := csvRow.field("jobCategory"); jobCategoryValue != "" {
			matchedCategory, ok := matchCategory(jobCategories, jobCategoryValue)
			if !ok {
				errs = append(errs, rowErrorf(rowNumber, "The job category provided for this schedule does not exist."))
				continue
			}
			jobCategoryID = &matchedCategory.ID
		}

		fields, err := parseScheduleFields(csvRow, summary)
		if err != nil {
			errs = append(errs, rowErrorf(rowNumber, "Validation errors: %s", err))
			continue
		}

		linked, err := resolveLinkedAssets(csvRow.field("linkedAssetNumbers"), assets)
		if err != nil {
			errs = append(errs, rowErrorf(rowNumber, "%s", err))
			continue
		}

		creation := nextJobCreationDate(fields.nextDueDate, fields.noticeDays, ignoreWeekendDays)
		schedule := model.JobSchedule{
			ID:                  uuid.NewString(),
			TenantID:            tenantID,
			Summary:             summary,
			Description:         csvRow.field("description"),
			NextDueDate:         fields.nextDueDate,
			StatutoryCompliance: parseBool(csvRow.field("statutoryCompliance")),
			RecurrenceInterval:  fields.recurrenceInterval,
			RecurrenceUnit:      fields.recurrenceUnit,
			NoticeDays:          fields.noticeDays,
			NextJobCreationDate: &creation,
			LocationID:          matched.ID,
			CategoryID:          categoryID,
			JobCategoryID:       jobCategoryID,
			Assets:              linked,
		}

		valid = append(valid, schedule)
	}

	return valid, errs
}

type scheduleFields struct {
	nextDueDate        time.Time
	recurrenceInterval int
	recurrenceUnit     string
	noticeDays         int
}

// resolveLinkedAssets parses the comma-separated asset number list and
// resolves every number against the asset snapshot. A likely wrong
// delimiter or any unknown number fails the row.
func resolveLinkedAssets(value string, assets []model.Asset) ([]model.Asset, error) {
	if value == "" {
		return nil, nil
	}
	if strings.ContainsAny(value, "|;/") {
		return nil, errors.New("linkedAssetNumbers appears to use wrong delimiter (use commas)")
	}

	var numbers []string
	for _, number := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(number); trimmed != "" {
			numbers = append(numbers, trimmed)
		}
	}

	byNumber := make(map[string]model.Asset, len(assets))
	for _, asset := range assets {
		if asset.AssetNumber != "" {
			byNumber[asset.AssetNumber] = asset
		}
	}

	var (
		linked   []model.Asset
		notFound []string
	)
	for _, number := range numbers {
		asset, ok := byNumber[number]
		if !ok {
			notFound = append(notFound, number)
			continue
		}
		linked = append(linked, model.Asset{ID: asset.ID})
	}
	if len(notFound) > 0 {
		return nil, errors.New("Asset numbers not found: " + strings.Join(notFound, ", "))
	}
	return linked, nil
}

// importJobSchedules runs the schedule pipeline. Valid rows are created
// individually inside one transaction because each row also writes its
// asset links.
func (s *Service) importJobSchedules(ctx context.Context, tenantID uint, csvText string) (*Result, error) {
	rows, err := parseCSV(csvText, jobScheduleHeaders)
	if err != nil {
		return nil, err
	}

	locations, err := s.locations.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categorySnapshot(ctx, tenantID, model.CategoryKindJobSchedule)
	if err != nil {
		return nil, err
	}
	jobCategories, err := s.categorySnapshot(ctx, tenantID, model.CategoryKindJob)
	if err != nil {
		return nil, err
	}

	var assets []model.Asset
	if err := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&assets).Error; err != nil {
		return nil, err
	}

	var tenant model.Tenant
	if err := s.db.WithContext(ctx).First(&tenant, tenantID).Error; err != nil {
		return nil, err
	}

	valid, rowErrors := buildJobScheduleRows(rows, tenantID, locations, categories, jobCategories, assets, tenant.IgnoreWeekendDays)

	if len(valid) > 0 {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for i := range valid {
				// Omit the asset columns: only the join rows are written,
				// the linked assets themselves already exist.
				if err := tx.Omit("Assets.*").Create(&valid[i]).Error; err != nil {
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

// parseScheduleFields coerces and validates the recurrence and date fields
func parseScheduleFields(csvRow row, summary string) (*scheduleFields, error) {
	if err := validate.Summary(summary); err != nil {
		return nil, errors.New("summary: " + err.Error())
	}
	if description := csvRow.field("description"); description != "" {
		if err := validate.ScheduleDescription(description); err != nil {
			return nil, errors.New("description: " + err.Error())
		}
	}

	nextDueValue := csvRow.field("nextDueDate")
	if nextDueValue == "" {
		return nil, errors.New("nextDueDate: a due date is required")
	}
	nextDueDate, err := parseDate(nextDueValue)
	if err != nil {
		return nil, errors.New("nextDueDate: " + err.Error())
	}

	interval, err := strconv.Atoi(csvRow.field("recurrenceInterval"))
	if err != nil {
		return nil, errors.New("recurrenceInterval: must be a whole number")
	}
	if err := validate.RecurrenceInterval(interval); err != nil {
		return nil, errors.New("recurrenceInterval: " + err.Error())
	}

	unit := csvRow.field("recurrenceUnit")
	if !model.ValidRecurrenceUnit(unit) {
		return nil, errors.New("recurrenceUnit: must be days, weeks, months, or years")
	}

	noticeDays := 0
	if noticeValue := csvRow.field("noticeDays"); noticeValue != "" {
		noticeDays, err = strconv.Atoi(noticeValue)
		if err != nil {
			return nil, errors.New("noticeDays: must be a whole number")
		}
	}
	if err := validate.NoticeDays(noticeDays); err != nil {
		return nil, errors.New("noticeDays: " + err.Error())
	}

	return &scheduleFields{
		nextDueDate:        nextDueDate,
		recurrenceInterval: interval,
		recurrenceUnit:     unit,
		noticeDays:         noticeDays,
	}, nil
}
