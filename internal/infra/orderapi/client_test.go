package orderapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// POST /orders/request にボディが届いて、応答をデコードできる
func TestRequestOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders/request", r.URL.Path)

		var req OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)
		assert.Equal(t, "fuel-system-cleaner", req.Items[0].Product)
		assert.Equal(t, "Tokyo", req.ShippingAddress.City)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(OrderDetail{ID: "order-1", Status: "pending", TotalAmount: 36.6})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	out, err := c.RequestOrder(context.Background(), OrderRequest{
		Items: []OrderItem{
			{Product: "fuel-system-cleaner", Name: "Fuel System Cleaner", Size: "16oz", Quantity: 2, Price: 24.95},
		},
		ShippingAddress: model.ShippingAddress{Email: "a@example.com", City: "Tokyo"},
	})
	require.NoError(t, err)

	assert.Equal(t, "order-1", out.ID)
	assert.Equal(t, "pending", out.Status)
	assert.InDelta(t, 36.6, out.TotalAmount, 1e-9)
}

// GET /orders/:id
func TestGetOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/orders/order-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(OrderDetail{ID: "order-1", Status: "shipped"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	out, err := c.GetOrder(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "shipped", out.Status)
}

// 2xx以外はエラー
func TestNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := c.GetOrder(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
