package api

import (
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"ordersdash/internal/dashboard"
	"ordersdash/internal/engine"
	"ordersdash/internal/models"
)

type Handler struct {
	svc atomic.Pointer[dashboard.Service]
}

// NewHandler accepts a nil service; the API then answers 503 until SetData.
func NewHandler(svc *dashboard.Service) *Handler {
	h := &Handler{}
	h.svc.Store(svc)
	return h
}

// SetData publishes a loaded dataset to the live API.
func (h *Handler) SetData(svc *dashboard.Service) {
	h.svc.Store(svc)
}

// Setup installs the JSON serializer and request validator on e.
func Setup(e *echo.Echo) {
	e.JSONSerializer = goJSONSerializer{}
	e.Validator = newRequestValidator()
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.GET("/summary", h.GetSummary)
	api.GET("/orders", h.ListOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.GET("/options", h.GetOptions)
}

var errLoading = echo.NewHTTPError(http.StatusServiceUnavailable, "dataset is still loading")

func (h *Handler) service() (*dashboard.Service, error) {
	svc := h.svc.Load()
	if svc == nil {
		return nil, errLoading
	}
	return svc, nil
}

// pageParams reads limit/offset for a result of total rows. Both come back
// clamped to [0, total], so offset+limit never exceeds total. A missing or
// non-positive limit means the whole result.
func pageParams(c echo.Context, total int) (limit, offset int) {
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	limit, err = strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 || limit > total-offset {
		limit = total - offset
	}
	return limit, offset
}

func (h *Handler) Health(c echo.Context) error {
	resp := map[string]interface{}{"status": "ok", "loaded": false, "orders": 0}
	if svc := h.svc.Load(); svc != nil {
		resp["loaded"] = true
		resp["orders"] = svc.Count()
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSummary(c echo.Context) error {
	svc, err := h.service()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc.Summary(c.Request().Context()))
}

func (h *Handler) GetOptions(c echo.Context) error {
	svc, err := h.service()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc.Options(c.Request().Context()))
}

type ordersQuery struct {
	Status string `query:"status" validate:"max=256"`
	Type   string `query:"type" validate:"max=256"`
	Search string `query:"q" validate:"max=256"`
	Sort   string `query:"sort" validate:"omitempty,oneof=id -id revenue -revenue"`
}

// filterState maps absent selections onto the All sentinel.
func (q ordersQuery) filterState() models.FilterState {
	f := models.FilterState{Status: q.Status, Type: q.Type, Search: q.Search}
	if f.Status == "" {
		f.Status = engine.All
	}
	if f.Type == "" {
		f.Type = engine.All
	}
	return f
}

func (h *Handler) ListOrders(c echo.Context) error {
	svc, err := h.service()
	if err != nil {
		return err
	}

	var q ordersQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query").SetInternal(err)
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rows := svc.Orders(q.filterState(), q.Sort)
	total := len(rows)
	limit, offset := pageParams(c, total)

	page := []models.Row{}
	if limit > 0 {
		page = rows[offset : offset+limit]
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":   page,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) GetOrder(c echo.Context) error {
	svc, err := h.service()
	if err != nil {
		return err
	}

	detail, err := svc.Order(c.Param("id"))
	if errors.Is(err, engine.ErrOrderNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}
