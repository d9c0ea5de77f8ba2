package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"portal/internal/cart"
	"portal/internal/domain/model"
	infraRepo "portal/internal/infra/repository"
	"portal/internal/infra/orderapi"
	"portal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// OrderClient モック
// =====================

type MockOrderClient struct {
	mock.Mock
}

func (m *MockOrderClient) RequestOrder(ctx context.Context, in orderapi.OrderRequest) (orderapi.OrderDetail, error) {
	args := m.Called(ctx, in)
	d, _ := args.Get(0).(orderapi.OrderDetail)
	return d, args.Error(1)
}

func (m *MockOrderClient) GetOrder(ctx context.Context, orderID string) (orderapi.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	d, _ := args.Get(0).(orderapi.OrderDetail)
	return d, args.Error(1)
}

var _ OrderClient = (*MockOrderClient)(nil)

func validAddress() model.ShippingAddress {
	return model.ShippingAddress{
		Email:     "shop@example.com",
		FirstName: "Hana",
		LastName:  "Sato",
		Address:   "1-2-3 Ginza",
		City:      "Tokyo",
		ZipCode:   "104-0061",
		Country:   "JP",
	}
}

func seedCart(t *testing.T, store repository.KVStore, accountID int64) {
	t.Helper()

	ctx := context.Background()
	ns := repository.Prefixed(store, repository.AccountNamespace(accountID))
	m := cart.NewManager(ctx, ns)

	p := model.Product{ID: "A", Name: "Sample", Sizes: []model.SizeVariant{{Size: "L", Price: 10}}}
	_, err := m.Add(ctx, p, "L", 2)
	require.NoError(t, err)
}

func cartItems(t *testing.T, store repository.KVStore, accountID int64) []model.CartLineItem {
	t.Helper()

	ns := repository.Prefixed(store, repository.AccountNamespace(accountID))
	return cart.NewManager(context.Background(), ns).Items()
}

// 注文成功でカートが空になる
func TestRequestOrderClearsCartOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewKVMemoryStore()
	seedCart(t, store, 1)

	client := new(MockOrderClient)
	client.On("RequestOrder", mock.Anything, mock.MatchedBy(func(in orderapi.OrderRequest) bool {
		return len(in.Items) == 1 && in.Items[0].Product == "A" && in.Items[0].Quantity == 2
	})).Return(orderapi.OrderDetail{ID: "order-1", Status: "pending"}, nil)

	uc := NewCheckoutUsecase(store, client)

	out, err := uc.RequestOrder(ctx, 1, RequestOrderInput{ShippingAddress: validAddress()})
	require.NoError(t, err)

	assert.Equal(t, "order-1", out.Order.ID)
	// subtotal 20 → tax 1.6 → total 36.6
	assert.InDelta(t, 20.0, out.Summary.Subtotal, 1e-9)
	assert.InDelta(t, 36.6, out.Summary.Total, 1e-9)

	assert.Empty(t, cartItems(t, store, 1))
	client.AssertExpectations(t)
}

// 注文失敗ではカートを残す（再送できる）
func TestRequestOrderKeepsCartOnFailure(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewKVMemoryStore()
	seedCart(t, store, 1)

	client := new(MockOrderClient)
	client.On("RequestOrder", mock.Anything, mock.Anything).Return(orderapi.OrderDetail{}, errors.New("boom"))

	uc := NewCheckoutUsecase(store, client)

	_, err := uc.RequestOrder(ctx, 1, RequestOrderInput{ShippingAddress: validAddress()})
	assertStatus(t, err, http.StatusBadGateway)

	require.Len(t, cartItems(t, store, 1), 1)
}

// 空カートは400
func TestRequestOrderEmptyCart(t *testing.T) {
	store := infraRepo.NewKVMemoryStore()
	uc := NewCheckoutUsecase(store, new(MockOrderClient))

	_, err := uc.RequestOrder(context.Background(), 1, RequestOrderInput{ShippingAddress: validAddress()})
	assertStatus(t, err, http.StatusBadRequest)
}

// 配送先の必須不足は400
func TestRequestOrderInvalidAddress(t *testing.T) {
	store := infraRepo.NewKVMemoryStore()
	seedCart(t, store, 1)
	uc := NewCheckoutUsecase(store, new(MockOrderClient))

	addr := validAddress()
	addr.City = ""

	_, err := uc.RequestOrder(context.Background(), 1, RequestOrderInput{ShippingAddress: addr})
	assertStatus(t, err, http.StatusBadRequest)
}

// レシートは注文明細からサマリを再計算する
func TestGetReceiptRecomputesSummary(t *testing.T) {
	client := new(MockOrderClient)
	client.On("GetOrder", mock.Anything, "order-1").Return(orderapi.OrderDetail{
		ID:     "order-1",
		Status: "shipped",
		Items: []orderapi.OrderItem{
			{Product: "A", Name: "Sample", Size: "L", Quantity: 2, Price: 10},
		},
		TotalAmount: 36.6,
	}, nil)

	uc := NewCheckoutUsecase(infraRepo.NewKVMemoryStore(), client)

	out, err := uc.GetReceipt(context.Background(), "order-1")
	require.NoError(t, err)

	assert.InDelta(t, 20.0, out.Summary.Subtotal, 1e-9)
	assert.InDelta(t, 36.6, out.Summary.Total, 1e-9)
}

// 注文APIエラーは502
func TestGetReceiptUpstreamError(t *testing.T) {
	client := new(MockOrderClient)
	client.On("GetOrder", mock.Anything, "missing").Return(orderapi.OrderDetail{}, errors.New("status 404"))

	uc := NewCheckoutUsecase(infraRepo.NewKVMemoryStore(), client)

	_, err := uc.GetReceipt(context.Background(), "missing")
	assertStatus(t, err, http.StatusBadGateway)
}
