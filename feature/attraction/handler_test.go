package attraction

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"attraction-catalog/feature/attraction/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	handler := NewHandler(newTestService(t, newMemoryStore()))
	handler.RegisterRoutes(app)
	return app
}

func decodeRecords(t *testing.T, resp *http.Response) []models.AttractionRecord {
	t.Helper()
	defer resp.Body.Close()
	var records []models.AttractionRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	return records
}

func TestHandler_List(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/attractions", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	records := decodeRecords(t, resp)
	assert.Len(t, records, 24)
}

func TestHandler_Get(t *testing.T) {
	app := setupApp(t)

	t.Run("Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/attractions/ang-thong-001", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		defer resp.Body.Close()
		var rec models.AttractionRecord
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
		assert.Equal(t, "Wat Muang", rec.NameEn)
	})

	t.Run("Inactive Record Is Served", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/attractions/ayutthaya-003", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Not Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/attractions/ang-thong-999", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_Search(t *testing.T) {
	app := setupApp(t)

	upper, err := app.Test(httptest.NewRequest(http.MethodGet, "/attractions/search?q=WAT", nil))
	require.NoError(t, err)
	lower, err := app.Test(httptest.NewRequest(http.MethodGet, "/attractions/search?q=wat", nil))
	require.NoError(t, err)

	upperRecords := decodeRecords(t, upper)
	lowerRecords := decodeRecords(t, lower)
	assert.NotEmpty(t, upperRecords)
	assert.Equal(t, lowerRecords, upperRecords)
}

func TestHandler_Search_EmptyTerm(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/attractions/search", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeRecords(t, resp), 24)
}

func TestHandler_ByProvince(t *testing.T) {
	app := setupApp(t)

	t.Run("Hyphenated Key", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/provinces/ang-thong/attractions", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decodeRecords(t, resp), 7)
	})

	t.Run("Native Script Key", func(t *testing.T) {
		target := "/provinces/" + url.PathEscape("อ่างทอง") + "/attractions"
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decodeRecords(t, resp), 7)
	})

	t.Run("Unknown Key Yields Empty Array", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/provinces/narnia/attractions", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		records := decodeRecords(t, resp)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}

func TestHandler_ByCategory(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/categories/temple/attractions", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	records := decodeRecords(t, resp)
	require.NotEmpty(t, records)
	for _, rec := range records {
		assert.True(t, rec.HasCategory("temple"), "record %s lacks the category", rec.ID)
	}
}
