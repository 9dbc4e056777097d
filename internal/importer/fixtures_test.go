package importer

import (
	"facility-service/internal/model"
)

// Shared snapshot fixtures for the pipeline tests: a three-level tree and a
// handful of categories and assets, as the pipelines would load them.

var (
	fixtureRootID = "loc-root"
	fixtureAID    = "loc-a"
	fixtureF1ID   = "loc-f1"
)

func fixtureLocations() []model.Location {
	return []model.Location{
		{
			ID:          fixtureRootID,
			TenantID:    1,
			Description: "Head Office",
			MaterialisedPath: model.LocationPath{
				{ID: fixtureRootID, Description: "Head Office"},
			},
		},
		{
			ID:          fixtureAID,
			TenantID:    1,
			Description: "Building A",
			ParentID:    &fixtureRootID,
			MaterialisedPath: model.LocationPath{
				{ID: fixtureRootID, Description: "Head Office"},
				{ID: fixtureAID, Description: "Building A"},
			},
		},
		{
			ID:          fixtureF1ID,
			TenantID:    1,
			Description: "Floor 1",
			ParentID:    &fixtureAID,
			MaterialisedPath: model.LocationPath{
				{ID: fixtureRootID, Description: "Head Office"},
				{ID: fixtureAID, Description: "Building A"},
				{ID: fixtureF1ID, Description: "Floor 1"},
			},
		},
	}
}

func fixtureCategories(kind model.CategoryKind) []model.Category {
	return []model.Category{
		{ID: "cat-1", TenantID: 1, Kind: kind, Description: "Electrical"},
		{ID: "cat-2", TenantID: 1, Kind: kind, Description: "Plumbing"},
	}
}

func fixtureAssets() []model.Asset {
	return []model.Asset{
		{
			ID:           "asset-1",
			TenantID:     1,
			Description:  "Air handling unit",
			AssetNumber:  "AHU-001",
			SerialNumber: "SN-1000",
			LocationID:   fixtureF1ID,
		},
		{
			ID:          "asset-2",
			TenantID:    1,
			Description: "Fire alarm panel",
			AssetNumber: "FAP-001",
			LocationID:  fixtureAID,
		},
	}
}
