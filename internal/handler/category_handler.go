package handler

import (
	"errors"
	"net/http"
	"time"

	"facility-service/internal/model"
	"facility-service/internal/validate"
	"facility-service/pkg/database"
	"facility-service/pkg/logger"
	"facility-service/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CategoryRequest defines the structure for category creation requests
type CategoryRequest struct {
	Description string `json:"description" validate:"required"`
	Kind        string `json:"kind" validate:"required"`
}

// CreateCategory creates a category of one kind for the current tenant
func CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("category", "create")

	var req CategoryRequest
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

	kind := model.CategoryKind(req.Kind)
	if !kind.IsValid() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "kind must be one of location, asset, job, jobSchedule, supplier, person",
		})
	}
	if err := validate.CategoryDescription(req.Description); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	category := model.Category{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Kind:        kind,
		Description: req.Description,
	}
	if err := database.GetDB().WithContext(c.Request().Context()).Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "A category with this description already exists",
			})
		}
		log.Error("Failed to create category",
			zap.String("description", req.Description),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create category",
		})
	}

	log.Info("Category created successfully",
		zap.String("id", category.ID),
		zap.String("kind", string(category.Kind)),
		zap.Uint("tenant_id", tenantID))
	return c.JSON(http.StatusCreated, category)
}

// ListCategories lists the tenant's categories, optionally filtered by kind
func ListCategories(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("category", "list")

	tenantID, ok := c.Get("tenant_id").(uint)
	if !ok {
		log.Warn("Missing tenant_id in context")
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "tenant_id is required",
		})
	}

	query := database.GetDB().WithContext(c.Request().Context()).
		Where("tenant_id = ?", tenantID)
	if kindParam := c.QueryParam("kind"); kindParam != "" {
		kind := model.CategoryKind(kindParam)
		if !kind.IsValid() {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "kind must be one of location, asset, job, jobSchedule, supplier, person",
			})
		}
		query = query.Where("kind = ?", kind)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	var categories []model.Category
	if err := query.Order("description").Find(&categories).Error; err != nil {
		log.Error("Failed to retrieve categories", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve categories",
		})
	}

	return c.JSON(http.StatusOK, categories)
}
