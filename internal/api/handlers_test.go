package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"ordersdash/internal/cache"
	"ordersdash/internal/dashboard"
	"ordersdash/internal/engine"
	"ordersdash/internal/models"
)

const dataset = `[
	{"Order_ID": 1, "Customer_Name": "Amal", "Customer_Phone": "555-1234", "Order_Type": "Online", "Order_Status": "Delivered",
	 "Delivery_Person": "Kasun", "Items": [{"Item_Name": "Pizza", "Quantity": 2, "Total_Price": 20}]},
	{"Order_ID": 2, "Customer_Name": "Nimali", "Customer_Phone": "071-222", "Order_Type": "Dine In", "Order_Status": "Pending",
	 "Items": [{"Item_Name": "Tea", "Quantity": 1, "Item_Price": 3}]},
	{"Order_ID": 3, "Customer_Name": "Dilan", "Customer_Phone": "076-555", "Order_Type": "Online", "Order_Status": "In Transit",
	 "Items": [{"Item_Name": "Pizza", "Quantity": 1, "Item_Price": 10, "Image_URL": "http://img.test/pizza.png"}]}
]`

func newTestServer(loaded bool) (*echo.Echo, *Handler) {
	e := echo.New()
	Setup(e)
	h := NewHandler(nil)
	if loaded {
		h.SetData(dashboard.New(engine.LoadBytes([]byte(dataset)), cache.NewMemory(), time.Minute))
	}
	h.RegisterRoutes(e)
	return e, h
}

func get(t *testing.T, e *echo.Echo, target string, out interface{}) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s: %v (%s)", target, err, rec.Body.String())
		}
	}
	return rec.Code
}

type ordersPage struct {
	Data   []models.Row `json:"data"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

func TestNotLoaded(t *testing.T) {
	e, _ := newTestServer(false)

	for _, target := range []string{"/api/summary", "/api/orders", "/api/orders/1", "/api/options"} {
		if code := get(t, e, target, nil); code != http.StatusServiceUnavailable {
			t.Errorf("GET %s = %d, want 503", target, code)
		}
	}

	var health map[string]interface{}
	if code := get(t, e, "/healthz", &health); code != http.StatusOK {
		t.Fatalf("healthz = %d", code)
	}
	if health["loaded"] != false {
		t.Errorf("healthz loaded = %v, want false", health["loaded"])
	}
}

func TestGetSummary(t *testing.T) {
	e, _ := newTestServer(true)

	var s models.Summary
	if code := get(t, e, "/api/summary", &s); code != http.StatusOK {
		t.Fatalf("GET /api/summary = %d", code)
	}
	if s.TotalOrders != 3 || s.Delivered != 1 || s.Pending != 1 || s.InTransit != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.Revenue != 33 {
		t.Errorf("Revenue = %v, want 33", s.Revenue)
	}
	if len(s.TopItems) != 2 || s.TopItems[0].Name != "Pizza" || s.TopItems[0].Count != 3 {
		t.Errorf("TopItems = %+v", s.TopItems)
	}
	if s.OrdersByDeliveryPerson["Unassigned"] != 2 {
		t.Errorf("OrdersByDeliveryPerson = %v", s.OrdersByDeliveryPerson)
	}
}

func TestGetOptions(t *testing.T) {
	e, _ := newTestServer(true)

	var opts models.FilterOptions
	if code := get(t, e, "/api/options", &opts); code != http.StatusOK {
		t.Fatalf("GET /api/options = %d", code)
	}
	if len(opts.Types) != 3 || opts.Types[0] != "All" {
		t.Errorf("Types = %v", opts.Types)
	}
	if len(opts.Statuses) != 4 {
		t.Errorf("Statuses = %v", opts.Statuses)
	}
}

func TestListOrders(t *testing.T) {
	e, _ := newTestServer(true)

	tests := []struct {
		target string
		want   []string
		total  int
	}{
		{"/api/orders", []string{"1", "2", "3"}, 3},
		{"/api/orders?status=All&type=All&q=", []string{"1", "2", "3"}, 3},
		{"/api/orders?type=Online", []string{"1", "3"}, 2},
		{"/api/orders?status=Delivered&type=Online&q=555", []string{"1"}, 1},
		{"/api/orders?q=555", []string{"1", "3"}, 2},
		{"/api/orders?sort=-revenue", []string{"1", "3", "2"}, 3},
		{"/api/orders?sort=-id&limit=2", []string{"3", "2"}, 3},
		{"/api/orders?limit=1&offset=1", []string{"2"}, 3},
		{"/api/orders?offset=10", []string{}, 3},
		{"/api/orders?limit=9223372036854775807&offset=1", []string{"2", "3"}, 3},
		{"/api/orders?limit=9223372036854775807&offset=9223372036854775807", []string{}, 3},
		{"/api/orders?limit=99999999999999999999", []string{"1", "2", "3"}, 3},
	}
	for _, tt := range tests {
		var page ordersPage
		if code := get(t, e, tt.target, &page); code != http.StatusOK {
			t.Errorf("GET %s = %d", tt.target, code)
			continue
		}
		if page.Total != tt.total {
			t.Errorf("GET %s total = %d, want %d", tt.target, page.Total, tt.total)
		}
		if len(page.Data) != len(tt.want) {
			t.Errorf("GET %s returned %d rows, want %v", tt.target, len(page.Data), tt.want)
			continue
		}
		for i, id := range tt.want {
			if page.Data[i].ID != id {
				t.Errorf("GET %s row %d = %s, want %s", tt.target, i, page.Data[i].ID, id)
			}
		}
	}
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		query         string
		total         int
		limit, offset int
	}{
		{"", 3, 3, 0},
		{"limit=2", 3, 2, 0},
		{"limit=2&offset=2", 3, 1, 2},
		{"limit=0&offset=-4", 3, 3, 0},
		{"offset=10", 3, 0, 3},
		{"limit=9223372036854775807&offset=1", 3, 2, 1},
		{"limit=abc", 0, 0, 0},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/orders?"+tt.query, nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		limit, offset := pageParams(c, tt.total)
		if limit != tt.limit || offset != tt.offset {
			t.Errorf("pageParams(%q, %d) = %d, %d; want %d, %d", tt.query, tt.total, limit, offset, tt.limit, tt.offset)
		}
		if offset+limit > tt.total {
			t.Errorf("pageParams(%q, %d) runs past the end", tt.query, tt.total)
		}
	}
}

func TestListOrdersBadSort(t *testing.T) {
	e, _ := newTestServer(true)

	if code := get(t, e, "/api/orders?sort=name", nil); code != http.StatusBadRequest {
		t.Errorf("GET with bad sort = %d, want 400", code)
	}
}

func TestGetOrder(t *testing.T) {
	e, _ := newTestServer(true)

	var d models.OrderDetail
	if code := get(t, e, "/api/orders/3", &d); code != http.StatusOK {
		t.Fatalf("GET /api/orders/3 = %d", code)
	}
	if d.Order.CustomerName != "Dilan" || d.Revenue != 10 || len(d.Lines) != 1 {
		t.Fatalf("detail = %+v", d)
	}
	if d.Order.Items[0].ImageURL != "http://img.test/pizza.png" || d.Lines[0].ImageURL != "http://img.test/pizza.png" {
		t.Errorf("Image_URL missing from detail: %+v / %+v", d.Order.Items[0], d.Lines[0])
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders/3", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if !strings.Contains(rec.Body.String(), `"Image_URL":"http://img.test/pizza.png"`) {
		t.Errorf("raw detail body has no Image_URL: %s", rec.Body.String())
	}

	if code := get(t, e, "/api/orders/99", nil); code != http.StatusNotFound {
		t.Errorf("GET /api/orders/99 = %d, want 404", code)
	}
}

func TestHealthLoaded(t *testing.T) {
	e, _ := newTestServer(true)

	var health map[string]interface{}
	get(t, e, "/healthz", &health)
	if health["loaded"] != true || health["orders"] != float64(3) {
		t.Errorf("healthz = %v", health)
	}
}
