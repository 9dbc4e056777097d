package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"facility-service/pkg/config"
	"facility-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	prometheus.InitMetrics(cfg)
	os.Exit(m.Run())
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestHello(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/health", "")

	require.NoError(t, Hello(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Facility Service API is running")
}

func TestCreateLocationMissingTenant(t *testing.T) {
	c, rec := newContext(t, http.MethodPost, "/api/locations",
		`{"description":"Building A"}`)

	require.NoError(t, CreateLocation(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "tenant_id is required")
}

func TestCreateLocationValidation(t *testing.T) {
	c, rec := newContext(t, http.MethodPost, "/api/locations",
		`{"description":"ab"}`)
	c.Set("tenant_id", uint(1))

	require.NoError(t, CreateLocation(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Min 3 characters")
}

func TestCreateCategoryInvalidKind(t *testing.T) {
	c, rec := newContext(t, http.MethodPost, "/api/categories",
		`{"description":"Electrical","kind":"widget"}`)
	c.Set("tenant_id", uint(1))

	require.NoError(t, CreateCategory(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "kind must be one of")
}

func TestRunImportUnknownType(t *testing.T) {
	c, rec := newContext(t, http.MethodPost, "/api/imports",
		`{"importType":"people","csvData":"name\nAlice"}`)
	c.Set("tenant_id", uint(1))

	require.NoError(t, RunImport(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "importType must be one of")
}

func TestRunImportMissingCSV(t *testing.T) {
	c, rec := newContext(t, http.MethodPost, "/api/imports",
		`{"importType":"suppliers"}`)
	c.Set("tenant_id", uint(1))

	require.NoError(t, RunImport(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "csvData is required")
}

func TestImportHeaders(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/api/imports/headers?importType=suppliers", "")

	require.NoError(t, ImportHeaders(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "description")
	assert.Contains(t, rec.Body.String(), "skills")
}

func TestImportHeadersUnknownType(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/api/imports/headers?importType=people", "")

	require.NoError(t, ImportHeaders(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
