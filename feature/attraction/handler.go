package attraction

import (
	"net/url"

	"attraction-catalog/feature/attraction/models"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the attraction catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes. The search route is
// registered before the id route so "search" is not captured as an id.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/attractions", h.HandleList)
	app.Get("/attractions/search", h.HandleSearch)
	app.Get("/attractions/:id", h.HandleGet)
	app.Get("/provinces/:key/attractions", h.HandleByProvince)
	app.Get("/categories/:category/attractions", h.HandleByCategory)
}

// HandleList returns every active record in the catalog.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(nonNil(h.service.All()))
}

// HandleSearch returns active records matching the q query parameter.
// An empty q matches every active record.
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	term := c.Query("q")
	return c.JSON(nonNil(h.service.Search(term)))
}

// HandleGet returns one record by id, inactive records included.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	rec, ok := h.service.ByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "attraction not found",
		})
	}
	return c.JSON(rec)
}

// HandleByProvince returns a province's full record sequence by alias key.
// An unknown key yields an empty array, not an error.
func (h *Handler) HandleByProvince(c *fiber.Ctx) error {
	key := pathParam(c, "key")
	return c.JSON(nonNil(h.service.ByProvince(key)))
}

// HandleByCategory returns active records tagged with the category.
func (h *Handler) HandleByCategory(c *fiber.Ctx) error {
	category := pathParam(c, "category")
	return c.JSON(nonNil(h.service.ByCategory(category)))
}

// pathParam decodes a percent-encoded path segment; native-script province
// keys arrive encoded.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// nonNil keeps empty results as empty JSON arrays rather than null.
func nonNil(records []models.AttractionRecord) []models.AttractionRecord {
	if records == nil {
		return []models.AttractionRecord{}
	}
	return records
}
