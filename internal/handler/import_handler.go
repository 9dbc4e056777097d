package handler

import (
	"errors"
	"net/http"
	"time"

	"facility-service/internal/importer"
	"facility-service/internal/location"
	"facility-service/pkg/database"
	"facility-service/pkg/logger"
	"facility-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ImportRequest defines the structure for CSV import submissions
type ImportRequest struct {
	ImportType string `json:"importType" validate:"required"`
	CSVData    string `json:"csvData" validate:"required"`
}

// RunImport processes one CSV submission. Row-level failures come back in
// the response body next to the imported count; only header problems and
// storage failures fail the request itself.
func RunImport(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("import", "run")

	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	tenantID, ok := c.Get("tenant_id").(uint)
	if !ok {
		log.Warn("Missing tenant_id in context")
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "tenant_id is required",
		})
	}

	importType := importer.ImportType(req.ImportType)
	if !importType.IsValid() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "importType must be one of locations, assets, jobs, jobSchedules, suppliers",
		})
	}
	if req.CSVData == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "csvData is required",
		})
	}

	db := database.GetDB()
	service := importer.NewService(db, location.NewStore(db), log)

	defer prometheus.TrackImport(req.ImportType)(time.Now())

	result, err := service.Import(c.Request().Context(), tenantID, importType, req.CSVData)
	if err != nil {
		var headerErr *importer.InvalidHeadersError
		if errors.As(err, &headerErr) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":        headerErr.Error(),
				"validHeaders": importer.ValidHeaders(importType),
			})
		}
		log.Error("Import failed",
			zap.String("import_type", req.ImportType),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Import failed",
		})
	}

	prometheus.RecordImportRows(req.ImportType, result.ImportCount, len(result.ImportErrors))
	if importType == importer.ImportLocations {
		go updateLocationCount(tenantID)
	}

	return c.JSON(http.StatusOK, result)
}

// ImportHeaders returns the allowed header set for an import type, used by
// clients to build CSV templates
func ImportHeaders(c echo.Context) error {
	importType := importer.ImportType(c.QueryParam("importType"))
	if !importType.IsValid() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "importType must be one of locations, assets, jobs, jobSchedules, suppliers",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"importType": string(importType),
		"headers":    importer.ValidHeaders(importType),
	})
}
