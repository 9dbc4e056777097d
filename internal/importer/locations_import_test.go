package importer

import (
	"testing"

	"facility-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLocationRowsHappyPath(t *testing.T) {
	locations := fixtureLocations()
	rows := []row{
		{"locationLevelOne": "Building B"},
		{"locationLevelOne": "Building A", "locationLevelTwo": "Floor 2"},
	}

	valid, errs := buildLocationRows(rows, 1, &locations, nil)

	assert.Empty(t, errs)
	require.Len(t, valid, 2)

	assert.Equal(t, "Building B", valid[0].Description)
	assert.Equal(t, fixtureRootID, *valid[0].ParentID)
	require.Len(t, valid[0].MaterialisedPath, 2)
	assert.Equal(t, valid[0].ID, valid[0].MaterialisedPath[1].ID)

	assert.Equal(t, "Floor 2", valid[1].Description)
	assert.Equal(t, fixtureAID, *valid[1].ParentID)
	require.Len(t, valid[1].MaterialisedPath, 3)
}

func TestBuildLocationRowsParentsWithinSameFile(t *testing.T) {
	// A row can create the parent of a later row in the same file.
	locations := fixtureLocations()
	rows := []row{
		{"locationLevelOne": "Building C"},
		{"locationLevelOne": "Building C", "locationLevelTwo": "Floor 1"},
	}

	valid, errs := buildLocationRows(rows, 1, &locations, nil)

	assert.Empty(t, errs)
	require.Len(t, valid, 2)
	assert.Equal(t, valid[0].ID, *valid[1].ParentID)
}

func TestBuildLocationRowsLevelOneRequired(t *testing.T) {
	locations := fixtureLocations()
	rows := []row{{"address": "1 High Street"}}

	valid, errs := buildLocationRows(rows, 1, &locations, nil)

	assert.Empty(t, valid)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 2: locationLevelOne is required", errs[0])
}

func TestBuildLocationRowsGap(t *testing.T) {
	locations := fixtureLocations()
	rows := []row{
		{"locationLevelOne": "Building A", "locationLevelThree": "Room 5"},
	}

	valid, errs := buildLocationRows(rows, 1, &locations, nil)

	assert.Empty(t, valid)
	require.Len(t, errs, 2)
	assert.Equal(t, "Row 2: Cannot provide locationLevel3 without level2", errs[0])
	assert.Equal(t, "Row 2: Gaps found in location hierarchy", errs[1])
}

func TestBuildLocationRowsMissingRoot(t *testing.T) {
	var locations []model.Location
	rows := []row{{"locationLevelOne": "Building A"}}

	valid, errs := buildLocationRows(rows, 1, &locations, nil)

	assert.Empty(t, valid)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 2: Could not find root location for account.", errs[0])
}

func TestBuildLocationRowsUnmatchedParent(t *testing.T) {
	locations := fixtureLocations()
	rows := []row{
		{"locationLevelOne": "Building Z", "locationLevelTwo": "Floor 1"},
	}

	valid, errs := buildLocationRows(rows, 1, &locations, nil)

	assert.Empty(t, valid)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 2: Could not match the location path / find the parent for this location.", errs[0])
}

func TestBuildLocationRowsDuplicateSibling(t *testing.T) {
	locations := fixtureLocations()
	rows := []row{
		{"locationLevelOne": "building a"}, // existing child, case differs
	}

	valid, errs := buildLocationRows(rows, 1, &locations, nil)

	assert.Empty(t, valid)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 2: A child location with this description already exists on the target location.", errs[0])
}

func TestBuildLocationRowsDuplicateWithinFile(t *testing.T) {
	locations := fixtureLocations()
	rows := []row{
		{"locationLevelOne": "Building B"},
		{"locationLevelOne": "Building B"},
	}

	valid, errs := buildLocationRows(rows, 1, &locations, nil)

	require.Len(t, valid, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 3: A child location with this description already exists on the target location.", errs[0])
}

func TestBuildLocationRowsCategory(t *testing.T) {
	locations := fixtureLocations()
	categories := fixtureCategories(model.CategoryKindLocation)
	rows := []row{
		{"locationLevelOne": "Plant Room", "category": "electrical"},
		{"locationLevelOne": "Boiler Room", "category": "Landscaping"},
	}

	valid, errs := buildLocationRows(rows, 1, &locations, categories)

	require.Len(t, valid, 1)
	require.NotNil(t, valid[0].CategoryID)
	assert.Equal(t, "cat-1", *valid[0].CategoryID)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 3: The category description provided could not be matched.", errs[0])
}

func TestBuildLocationRowsValidation(t *testing.T) {
	locations := fixtureLocations()
	rows := []row{
		{"locationLevelOne": "AB"}, // below minimum length
	}

	valid, errs := buildLocationRows(rows, 1, &locations, nil)

	assert.Empty(t, valid)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Row 2: Validation errors:")
}

func TestBuildLocationRowsFormatsAddress(t *testing.T) {
	locations := fixtureLocations()
	rows := []row{
		{"locationLevelOne": "Depot North", "address": "1 High Street, Oldtown, OT1 2AB"},
	}

	valid, errs := buildLocationRows(rows, 1, &locations, nil)

	assert.Empty(t, errs)
	require.Len(t, valid, 1)
	assert.Equal(t, "1 High Street\nOldtown\nOT1 2AB", valid[0].Address)
}
