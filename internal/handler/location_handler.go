package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"facility-service/internal/location"
	"facility-service/internal/model"
	"facility-service/internal/validate"
	"facility-service/pkg/database"
	"facility-service/pkg/logger"
	"facility-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LocationRequest defines the structure for location creation/update requests
type LocationRequest struct {
	Description string  `json:"description" validate:"required"`
	ParentID    string  `json:"parent_id"`
	CategoryID  *string `json:"category_id"`
	Address     string  `json:"address"`
	Telephone   string  `json:"telephone"`
	Email       string  `json:"email"`
}

func locationStore() *location.Store {
	return location.NewStore(database.GetDB())
}

// CreateLocation creates a new location for the current tenant. A request
// without a parent id seeds the tenant's root.
func CreateLocation(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("location", "create")

	var req LocationRequest
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

	if err := firstValidationError(
		validate.LocationDescription(req.Description),
		validate.Address(req.Address, 500),
		validate.Telephone(req.Telephone),
		validate.Email(req.Email),
	); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	var (
		loc *model.Location
		err error
	)
	if req.ParentID == "" {
		loc, err = locationStore().CreateRoot(c.Request().Context(), tenantID, req.Description)
	} else {
		loc, err = locationStore().Create(c.Request().Context(), tenantID, location.CreateInput{
			Description: req.Description,
			ParentID:    req.ParentID,
			CategoryID:  req.CategoryID,
			Address:     req.Address,
			Telephone:   req.Telephone,
			Email:       req.Email,
		})
	}
	if err != nil {
		switch {
		case errors.Is(err, location.ErrParentNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, location.ErrRootExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, location.ErrDuplicateSibling):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		log.Error("Failed to create location",
			zap.String("description", req.Description),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create location",
		})
	}

	go updateLocationCount(tenantID)

	log.Info("Location created successfully",
		zap.String("id", loc.ID),
		zap.String("description", loc.Description),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, loc)
}

// ListLocations returns the tenant's locations as a nested tree
func ListLocations(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("location", "list")

	tenantID, ok := c.Get("tenant_id").(uint)
	if !ok {
		log.Warn("Missing tenant_id in context")
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "tenant_id is required",
		})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	locations, err := locationStore().Snapshot(c.Request().Context(), tenantID)
	if err != nil {
		log.Error("Failed to retrieve locations", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve locations",
		})
	}

	return c.JSON(http.StatusOK, location.BuildTree(locations))
}

// GetLocation retrieves a location by ID for the current tenant
func GetLocation(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("location", "get")

	tenantID, ok := c.Get("tenant_id").(uint)
	if !ok {
		log.Warn("Missing tenant_id in context")
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "tenant_id is required",
		})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	loc, err := locationStore().Get(c.Request().Context(), tenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, location.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Location not found"})
		}
		log.Error("Failed to find location", zap.String("location_id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to find location",
		})
	}

	return c.JSON(http.StatusOK, loc)
}

// UpdateLocation updates a location. A changed description cascades the
// rename through every descendant's materialised path.
func UpdateLocation(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("location", "update")

	var req LocationRequest
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

	if err := firstValidationError(
		validate.LocationDescription(req.Description),
		validate.Address(req.Address, 500),
		validate.Telephone(req.Telephone),
		validate.Email(req.Email),
	); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	loc, err := locationStore().Rename(c.Request().Context(), tenantID, c.Param("id"), location.UpdateInput{
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Address:     req.Address,
		Telephone:   req.Telephone,
		Email:       req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, location.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Location not found"})
		case errors.Is(err, location.ErrDuplicateSibling):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		log.Error("Failed to update location",
			zap.String("location_id", c.Param("id")),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update location",
		})
	}

	log.Info("Location updated successfully",
		zap.String("id", loc.ID),
		zap.String("description", loc.Description),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusOK, loc)
}

// DeleteLocation deletes a non-root, childless location
func DeleteLocation(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("location", "delete")

	tenantID, ok := c.Get("tenant_id").(uint)
	if !ok {
		log.Warn("Missing tenant_id in context")
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "tenant_id is required",
		})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())

	err := locationStore().Delete(c.Request().Context(), tenantID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, location.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Location not found"})
		case errors.Is(err, location.ErrRootDeletionForbidden),
			errors.Is(err, location.ErrHasChildren):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		log.Error("Failed to delete location",
			zap.String("location_id", c.Param("id")),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete location",
		})
	}

	go updateLocationCount(tenantID)

	return c.NoContent(http.StatusNoContent)
}

// Helper function to update location count metrics
func updateLocationCount(tenantID uint) {
	var count int64
	database.GetDB().Model(&model.Location{}).
		Where("tenant_id = ?", tenantID).
		Count(&count)
	prometheus.UpdateLocationsPerTenant(strconv.FormatUint(uint64(tenantID), 10), int(count))
}

func firstValidationError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
