package handler

import (
	"errors"
	"net/http"
	"time"

	"facility-service/internal/location"
	"facility-service/internal/model"
	"facility-service/pkg/database"
	"facility-service/pkg/logger"
	"facility-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// The scoped listing handlers return every record attached to a location or
// any of its descendants. The descendant set comes from one materialised
// path containment query, so listing at the root covers the whole tenant.

// ListLocationAssets lists assets under a location subtree
func ListLocationAssets(c echo.Context) error {
	return listForSubtree(c, "asset", &[]model.Asset{})
}

// ListLocationJobs lists jobs under a location subtree
func ListLocationJobs(c echo.Context) error {
	return listForSubtree(c, "job", &[]model.Job{})
}

// ListLocationJobSchedules lists job schedules under a location subtree
func ListLocationJobSchedules(c echo.Context) error {
	return listForSubtree(c, "job_schedule", &[]model.JobSchedule{})
}

// ListLocationPeople lists people under a location subtree
func ListLocationPeople(c echo.Context) error {
	return listForSubtree(c, "person", &[]model.Person{})
}

func listForSubtree(c echo.Context, entity string, dest interface{}) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation(entity, "list")

	tenantID, ok := c.Get("tenant_id").(uint)
	if !ok {
		log.Warn("Missing tenant_id in context")
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "tenant_id is required",
		})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	ids, err := locationStore().DescendantIDs(c.Request().Context(), tenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, location.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Location not found"})
		}
		log.Error("Failed to resolve location subtree",
			zap.String("location_id", c.Param("id")),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to resolve location subtree",
		})
	}

	err = database.GetDB().WithContext(c.Request().Context()).
		Where("tenant_id = ? AND location_id IN ?", tenantID, ids).
		Find(dest).Error
	if err != nil {
		log.Error("Failed to retrieve records for location",
			zap.String("entity", entity),
			zap.String("location_id", c.Param("id")),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve records",
		})
	}

	return c.JSON(http.StatusOK, dest)
}
