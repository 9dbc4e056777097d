package importer

import (
	"testing"

	"facility-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAssetRowsHappyPath(t *testing.T) {
	assets := fixtureAssets()
	rows := []row{
		{"description": "Boiler unit number three", "assetNumber": "BLR-003",
			"locationLevelOne": "Building A", "locationLevelTwo": "Floor 1"},
		{"description": "Standby generator", "make": "Generac", "model": "G-500"},
	}

	valid, errs := buildAssetRows(rows, 1, &assets, fixtureLocations(), nil)

	assert.Empty(t, errs)
	require.Len(t, valid, 2)
	assert.Equal(t, fixtureF1ID, valid[0].LocationID)
	// No levels provided places the asset on the root.
	assert.Equal(t, fixtureRootID, valid[1].LocationID)
	assert.Equal(t, "Generac", valid[1].Make)
}

func TestBuildAssetRowsDescriptionRequired(t *testing.T) {
	assets := fixtureAssets()
	rows := []row{{"assetNumber": "BLR-003"}}

	valid, errs := buildAssetRows(rows, 1, &assets, fixtureLocations(), nil)

	assert.Empty(t, valid)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 2: A description must be provided for an asset.", errs[0])
}

func TestBuildAssetRowsGap(t *testing.T) {
	assets := fixtureAssets()
	rows := []row{
		{"description": "Boiler unit number three", "locationLevelTwo": "Floor 1"},
	}

	valid, errs := buildAssetRows(rows, 1, &assets, fixtureLocations(), nil)

	assert.Empty(t, valid)
	require.Len(t, errs, 2)
	assert.Equal(t, "Row 2: Cannot provide locationLevel2 without level1", errs[0])
}

func TestBuildAssetRowsUnmatchedLocation(t *testing.T) {
	assets := fixtureAssets()
	rows := []row{
		{"description": "Boiler unit number three", "locationLevelOne": "Building Z"},
	}

	valid, errs := buildAssetRows(rows, 1, &assets, fixtureLocations(), nil)

	assert.Empty(t, valid)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 2: Could not match the location path provided for this asset.", errs[0])
}

func TestBuildAssetRowsDuplicateNumbers(t *testing.T) {
	assets := fixtureAssets()
	rows := []row{
		{"description": "Duplicate by asset number", "assetNumber": "ahu-001"},
		{"description": "Duplicate by serial number", "serialNumber": "sn-1000"},
	}

	valid, errs := buildAssetRows(rows, 1, &assets, fixtureLocations(), nil)

	assert.Empty(t, valid)
	require.Len(t, errs, 2)
	assert.Equal(t, "Row 2: An asset with this asset number already exists.", errs[0])
	assert.Equal(t, "Row 3: An asset with this serial number already exists.", errs[1])
}

func TestBuildAssetRowsDuplicateWithinFile(t *testing.T) {
	assets := fixtureAssets()
	rows := []row{
		{"description": "Chiller number one", "assetNumber": "CHL-001"},
		{"description": "Chiller number one again", "assetNumber": "CHL-001"},
	}

	valid, errs := buildAssetRows(rows, 1, &assets, fixtureLocations(), nil)

	require.Len(t, valid, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 3: An asset with this asset number already exists.", errs[0])
}

func TestBuildAssetRowsCategory(t *testing.T) {
	assets := fixtureAssets()
	categories := fixtureCategories(model.CategoryKindAsset)
	rows := []row{
		{"description": "Distribution board", "category": "Electrical"},
		{"description": "Garden strimmer", "category": "Gardening"},
	}

	valid, errs := buildAssetRows(rows, 1, &assets, fixtureLocations(), categories)

	require.Len(t, valid, 1)
	assert.Equal(t, "cat-1", *valid[0].CategoryID)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 3: The category provided for this asset does not exist.", errs[0])
}

func TestBuildAssetRowsValidation(t *testing.T) {
	assets := fixtureAssets()
	rows := []row{{"description": "Pump"}} // below minimum length

	valid, errs := buildAssetRows(rows, 1, &assets, fixtureLocations(), nil)

	assert.Empty(t, valid)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Row 2: Validation errors: description:")
}
