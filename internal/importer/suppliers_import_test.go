package importer

import (
	"testing"

	"facility-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSupplierRowsHappyPath(t *testing.T) {
	var suppliers []model.Supplier
	rows := []row{
		{"description": "Acme Maintenance", "address": "1 High Street, Oldtown",
			"telephone": "0131 496 0000", "email": "ops@acme.example", "skills": "general"},
	}

	valid, errs := buildSupplierRows(rows, 1, &suppliers)

	assert.Empty(t, errs)
	require.Len(t, valid, 1)
	assert.Equal(t, "Acme Maintenance", valid[0].Description)
	assert.Equal(t, "1 High Street\nOldtown", valid[0].Address)
	assert.Equal(t, "general", valid[0].Skills)
	assert.Equal(t, uint(1), valid[0].TenantID)
	assert.NotEmpty(t, valid[0].ID)
}

func TestBuildSupplierRowsDuplicateWithinFile(t *testing.T) {
	var suppliers []model.Supplier
	rows := []row{
		{"description": "Acme Maintenance"},
		{"description": "ACME MAINTENANCE"},
	}

	valid, errs := buildSupplierRows(rows, 1, &suppliers)

	require.Len(t, valid, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 3: A supplier with this description already exists.", errs[0])
}

func TestBuildSupplierRowsSecondRunImportsNothing(t *testing.T) {
	// Re-running a file after a partial success only reports duplicates for
	// the rows that already landed.
	suppliers := []model.Supplier{
		{ID: "sup-1", TenantID: 1, Description: "Acme Maintenance"},
		{ID: "sup-2", TenantID: 1, Description: "Birch Electrical"},
	}
	rows := []row{
		{"description": "Acme Maintenance"},
		{"description": "Birch Electrical"},
	}

	valid, errs := buildSupplierRows(rows, 1, &suppliers)

	assert.Empty(t, valid)
	require.Len(t, errs, 2)
	assert.Equal(t, "Row 2: A supplier with this description already exists.", errs[0])
	assert.Equal(t, "Row 3: A supplier with this description already exists.", errs[1])
}

func TestBuildSupplierRowsValidation(t *testing.T) {
	var suppliers []model.Supplier
	rows := []row{
		{"description": "Ab"},
		{"description": "Cable and Sons", "email": "not-an-email"},
		{"description": "Drains R Us", "telephone": "12345"},
	}

	valid, errs := buildSupplierRows(rows, 1, &suppliers)

	assert.Empty(t, valid)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0], "Row 2: Validation errors:")
	assert.Contains(t, errs[1], "Row 3: Validation errors:")
	assert.Contains(t, errs[2], "Row 4: Validation errors:")
}
