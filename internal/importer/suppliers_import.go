package importer

import (
	"context"
	"strings"

	"facility-service/internal/model"
	"facility-service/internal/validate"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

var supplierHeaders = []string{
	"description",
	"address",
	"telephone",
	"email",
	"skills",
}

// buildSupplierRows processes supplier rows. Duplicates are detected on the
// description, case-insensitively, against existing suppliers plus the rows
// already accepted from this file. Pure: no database access.
func buildSupplierRows(rows []row, tenantID uint, suppliers *[]model.Supplier) ([]model.Supplier, []string) {
	var (
		valid []model.Supplier
		errs  []string
	)

	for i, csvRow := range rows {
		rowNumber := i + 2

		description := csvRow.field("description")
		address := csvRow.field("address")
		telephone := csvRow.field("telephone")
		email := csvRow.field("email")

		if err := firstError(
			validate.SupplierDescription(description),
			validate.Address(address, 150),
			validate.Telephone(telephone),
			validate.Email(email),
		); err != nil {
			errs = append(errs, rowErrorf(rowNumber, "Validation errors: %s", err))
			continue
		}

		duplicate := false
		for j := range *suppliers {
			if strings.EqualFold((*suppliers)[j].Description, description) {
				duplicate = true
				break
			}
		}
		if duplicate {
			errs = append(errs, rowErrorf(rowNumber, "A supplier with this description already exists."))
			continue
		}

		supplier := model.Supplier{
			ID:          uuid.NewString(),
			TenantID:    tenantID,
			Description: description,
			Address:     formatAddress(address),
			Telephone:   telephone,
			Email:       email,
			Skills:      csvRow.field("skills"),
		}

		*suppliers = append(*suppliers, supplier)
		valid = append(valid, supplier)
	}

	return valid, errs
}

// importSuppliers runs the supplier pipeline and commits valid rows as one
// bulk insert
func (s *Service) importSuppliers(ctx context.Context, tenantID uint, csvText string) (*Result, error) {
	rows, err := parseCSV(csvText, supplierHeaders)
	if err != nil {
		return nil, err
	}

	var suppliers []model.Supplier
	if err := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&suppliers).Error; err != nil {
		return nil, err
	}

	valid, rowErrors := buildSupplierRows(rows, tenantID, &suppliers)

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
