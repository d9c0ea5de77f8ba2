package usecase

import (
	"context"
	"net/http"
	"strings"

	"portal/internal/cart"
	"portal/internal/domain/model"
	"portal/internal/infra/orderapi"
	"portal/internal/pricing"
	"portal/internal/repository"
)

// 注文バックエンドを呼ぶ約束。実体はorderapi.Client。
type OrderClient interface {
	RequestOrder(ctx context.Context, in orderapi.OrderRequest) (orderapi.OrderDetail, error)
	GetOrder(ctx context.Context, orderID string) (orderapi.OrderDetail, error)
}

// CheckoutUsecase は注文リクエストとレシート取得。
type CheckoutUsecase struct {
	store  repository.KVStore
	orders OrderClient
}

func NewCheckoutUsecase(store repository.KVStore, orders OrderClient) *CheckoutUsecase {
	return &CheckoutUsecase{store: store, orders: orders}
}

type RequestOrderInput struct {
	ShippingAddress model.ShippingAddress
}

type OrderResponse struct {
	Order   orderapi.OrderDetail `json:"order"`
	Summary pricing.Summary      `json:"summary"`
}

// RequestOrder はカートの中身で注文リクエストを送る。
// 成功したときだけカートを空にする。失敗時はカートを残して再送できるようにする。
func (u *CheckoutUsecase) RequestOrder(ctx context.Context, accountID int64, in RequestOrderInput) (*OrderResponse, error) {
	if accountID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateShippingAddress(in.ShippingAddress); err != nil {
		return nil, err
	}

	ns := repository.Prefixed(u.store, repository.AccountNamespace(accountID))
	m := cart.NewManager(ctx, ns)

	items := m.Items()
	if len(items) == 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	req := orderapi.OrderRequest{
		Items:           toOrderItems(items),
		ShippingAddress: in.ShippingAddress,
	}

	detail, err := u.orders.RequestOrder(ctx, req)
	if err != nil {
		// カートはそのまま残す
		return nil, NewHTTPError(http.StatusBadGateway, "order request failed")
	}

	// 注文が通ったのでカートを空にする
	if err := m.Clear(ctx); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return &OrderResponse{
		Order:   detail,
		Summary: pricing.ForItems(items),
	}, nil
}

// GetReceipt はレシート表示用の注文1件。サマリは明細から再計算する。
func (u *CheckoutUsecase) GetReceipt(ctx context.Context, orderID string) (*OrderResponse, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	detail, err := u.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadGateway, "order fetch failed")
	}

	return &OrderResponse{
		Order:   detail,
		Summary: pricing.ForItems(toLineItems(detail.Items)),
	}, nil
}

func validateShippingAddress(a model.ShippingAddress) error {
	if strings.TrimSpace(a.Email) == "" ||
		strings.TrimSpace(a.FirstName) == "" ||
		strings.TrimSpace(a.LastName) == "" ||
		strings.TrimSpace(a.Address) == "" ||
		strings.TrimSpace(a.City) == "" ||
		strings.TrimSpace(a.ZipCode) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid shipping address")
	}
	return nil
}

func toOrderItems(items []model.CartLineItem) []orderapi.OrderItem {
	out := make([]orderapi.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, orderapi.OrderItem{
			Product:  it.ProductID,
			Name:     it.Name,
			Size:     it.Size,
			Quantity: it.Quantity,
			Price:    it.UnitPrice,
			Image:    it.Image,
		})
	}
	return out
}

func toLineItems(items []orderapi.OrderItem) []model.CartLineItem {
	out := make([]model.CartLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.CartLineItem{
			ProductID: it.Product,
			Name:      it.Name,
			Size:      it.Size,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}
	return out
}
