package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haiminhng/retail-console/internal/config"
	consolehttp "github.com/haiminhng/retail-console/internal/http"
	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/internal/repository"
	"github.com/haiminhng/retail-console/internal/service"
	"github.com/haiminhng/retail-console/internal/storage/memdb"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	store := memdb.NewStore()
	require.NoError(t, store.Update(context.Background(), func(s *memdb.State) error {
		s.Products = []model.Product{
			{ID: "p1", Name: "Slim Fit Indigo", Category: "Slim Fit", Sizes: []string{"28", "30", "32"}, Colors: []string{"Indigo"}, Price: 59.99, Stock: 18},
			{ID: "p2", Name: "Regular Fit Blue", Category: "Regular Fit", Sizes: []string{"30", "32"}, Colors: []string{"Blue"}, Price: 49.99, Stock: 7},
		}
		s.Customers = []model.Customer{
			{ID: "c1", Name: "Ava Johnson", Email: "ava@example.com"},
			{ID: "c2", Name: "Liam Carter", Email: "liam@example.com"},
		}
		s.Sales = []model.Sale{
			{ID: uuid.Must(uuid.NewV7()), ProductID: "p2", CustomerID: "c2", Qty: 1, Total: 49.99,
				Date: time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)},
			{ID: uuid.Must(uuid.NewV7()), ProductID: "p1", CustomerID: "c1", Qty: 2, Discount: 10, Total: 107.98,
				Date: time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)},
		}
		return nil
	}))

	productRepo := repository.NewProductRepository(store)
	saleRepo := repository.NewSaleRepository(store)
	customerRepo := repository.NewCustomerRepository(store)

	svc := consolehttp.New(
		config.HTTP{Port: 0},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		prometheus.NewRegistry(),
		service.NewCatalogService(productRepo),
		service.NewCustomerService(customerRepo),
		service.NewSaleService(store, productRepo, saleRepo, customerRepo),
		service.NewAnalyticsService(store, 8),
	)

	r := chi.NewRouter()
	svc.RegisterHandlers(r)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeBody[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &v))
	return v
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details *[]struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

func TestRecordSaleEndpoint(t *testing.T) {
	t.Run("Should record a sale and decrement stock", func(t *testing.T) {
		r := newTestRouter(t)

		resp := doJSON(t, r, http.MethodPost, "/api/v1/sales", map[string]any{
			"product_id":  "p1",
			"customer_id": "c1",
			"qty":         2,
			"discount":    10,
		})
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

		sale := decodeBody[map[string]any](t, resp)
		assert.Equal(t, 107.98, sale["total"])
		assert.Equal(t, "p1", sale["product_id"])

		products := decodeBody[[]map[string]any](t, doJSON(t, r, http.MethodGet, "/api/v1/products", nil))
		require.Len(t, products, 2)
		assert.Equal(t, float64(16), products[0]["stock"])
	})

	t.Run("Should reject a zero quantity at the boundary", func(t *testing.T) {
		r := newTestRouter(t)

		resp := doJSON(t, r, http.MethodPost, "/api/v1/sales", map[string]any{
			"product_id":  "p1",
			"customer_id": "c1",
			"qty":         0,
		})
		require.Equal(t, http.StatusBadRequest, resp.Code)

		body := decodeBody[errorBody](t, resp)
		assert.Equal(t, "validationError", body.Code)
		require.NotNil(t, body.Details)
		assert.NotEmpty(t, *body.Details)
	})

	t.Run("Should reject a quantity above stock with 422", func(t *testing.T) {
		r := newTestRouter(t)

		resp := doJSON(t, r, http.MethodPost, "/api/v1/sales", map[string]any{
			"product_id":  "p2",
			"customer_id": "c1",
			"qty":         8,
		})
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Equal(t, "INVALID_QUANTITY", decodeBody[errorBody](t, resp).Code)
	})

	t.Run("Should return 404 for an unknown product", func(t *testing.T) {
		r := newTestRouter(t)

		resp := doJSON(t, r, http.MethodPost, "/api/v1/sales", map[string]any{
			"product_id":  "nope",
			"customer_id": "c1",
			"qty":         1,
		})
		require.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeBody[errorBody](t, resp).Code)
	})

	t.Run("Should reject an out-of-range discount at the boundary", func(t *testing.T) {
		r := newTestRouter(t)

		resp := doJSON(t, r, http.MethodPost, "/api/v1/sales", map[string]any{
			"product_id":  "p1",
			"customer_id": "c1",
			"qty":         1,
			"discount":    120,
		})
		require.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "validationError", decodeBody[errorBody](t, resp).Code)
	})

	t.Run("Should reject a malformed body", func(t *testing.T) {
		r := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader([]byte("{not json")))
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		require.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeBody[errorBody](t, resp).Code)
	})
}

func TestListSalesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Should list the ledger newest first", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/sales", nil)
		require.Equal(t, http.StatusOK, resp.Code)

		sales := decodeBody[[]map[string]any](t, resp)
		require.Len(t, sales, 2)
		assert.Equal(t, "p2", sales[0]["product_id"])
	})

	t.Run("Should honor the limit parameter", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/sales?limit=1", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Len(t, decodeBody[[]map[string]any](t, resp), 1)
	})

	t.Run("Should reject a malformed limit", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/sales?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestLowStockEndpoint(t *testing.T) {
	r := newTestRouter(t)

	resp := doJSON(t, r, http.MethodGet, "/api/v1/products/low-stock", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	body := decodeBody[struct {
		Threshold int              `json:"threshold"`
		Count     int              `json:"count"`
		Products  []map[string]any `json:"products"`
	}](t, resp)

	assert.Equal(t, 8, body.Threshold)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Products, 1)
	assert.Equal(t, "p2", body.Products[0]["id"])
}

func TestAnalyticsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Should report aggregate totals", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/analytics/summary", nil)
		require.Equal(t, http.StatusOK, resp.Code)

		body := decodeBody[map[string]any](t, resp)
		assert.InDelta(t, 157.97, body["total_revenue"].(float64), 1e-9)
		assert.Equal(t, float64(3), body["total_units"])
		assert.Equal(t, float64(25), body["total_stock"])
	})

	t.Run("Should serve the daily revenue series ascending", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/analytics/revenue/daily", nil)
		require.Equal(t, http.StatusOK, resp.Code)

		points := decodeBody[[]map[string]any](t, resp)
		require.Len(t, points, 2)
		assert.Equal(t, "2026-08-28", points[0]["day"])
		assert.Equal(t, "2026-08-30", points[1]["day"])
	})

	t.Run("Should rank categories by units sold", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/analytics/categories", nil)
		require.Equal(t, http.StatusOK, resp.Code)

		ranks := decodeBody[[]map[string]any](t, resp)
		require.Len(t, ranks, 2)
		assert.Equal(t, "Slim Fit", ranks[0]["label"])
		assert.Equal(t, float64(2), ranks[0]["units"])
	})

	t.Run("Should rank sizes by units sold", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/analytics/sizes", nil)
		require.Equal(t, http.StatusOK, resp.Code)

		ranks := decodeBody[[]map[string]any](t, resp)
		require.Len(t, ranks, 2)
		assert.Equal(t, "28", ranks[0]["label"])
	})
}

func TestCustomerEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Should list the directory", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/customers", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Len(t, decodeBody[[]map[string]any](t, resp), 2)
	})

	t.Run("Should derive per-customer insights", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodGet, "/api/v1/customers/insights", nil)
		require.Equal(t, http.StatusOK, resp.Code)

		insights := decodeBody[[]struct {
			Customer struct {
				ID string `json:"id"`
			} `json:"customer"`
			TotalSpent       float64          `json:"total_spent"`
			FavoriteCategory string           `json:"favorite_category"`
			LastPurchaseAt   *string          `json:"last_purchase_at"`
			RecentPurchases  []map[string]any `json:"recent_purchases"`
		}](t, resp)

		require.Len(t, insights, 2)
		assert.Equal(t, "c1", insights[0].Customer.ID)
		assert.Equal(t, 107.98, insights[0].TotalSpent)
		assert.Equal(t, "Slim Fit", insights[0].FavoriteCategory)
		require.NotNil(t, insights[0].LastPurchaseAt)
		assert.Len(t, insights[0].RecentPurchases, 1)
	})
}
