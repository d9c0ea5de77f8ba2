package usecase

import (
	"context"
	"net/http"

	"portal/internal/cart"
	"portal/internal/catalog"
	"portal/internal/domain/model"
	"portal/internal/pricing"
	"portal/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
// 明細の持ち方と永続はcart.Managerに任せる。
type CartUsecase struct {
	store   repository.KVStore
	catalog *catalog.Catalog
}

func NewCartUsecase(store repository.KVStore, cat *catalog.Catalog) *CartUsecase {
	return &CartUsecase{store: store, catalog: cat}
}

type CartResponse struct {
	Items   []model.CartLineItem `json:"items"`
	Count   int                  `json:"count"`
	Summary pricing.Summary      `json:"summary"`
}

type AddCartInput struct {
	ProductID string
	Size      string
	Quantity  int
}

type UpdateCartItemInput struct {
	ProductID string
	Size      string
	Delta     int
}

// GetCart はカート取得。
func (u *CartUsecase) GetCart(ctx context.Context, accountID int64) (CartResponse, error) {
	if accountID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	m := u.manager(ctx, accountID)
	return buildCartResponse(m), nil
}

// AddToCart はカートに追加（同一商品・同一サイズは数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, accountID int64, in AddCartInput) (CartResponse, error) {
	if accountID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID == "" || in.Size == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}
	if in.Quantity < 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	// 数量省略は1個
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	// 商品チェック。サイズの有無はここでは見ない（価格0で通す）。
	p, ok := u.catalog.Find(in.ProductID)
	if !ok {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	m := u.manager(ctx, accountID)
	if _, err := m.Add(ctx, p, in.Size, in.Quantity); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return buildCartResponse(m), nil
}

// UpdateQuantity は数量をdeltaだけ動かす。明細が無ければ何もしない。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, accountID int64, in UpdateCartItemInput) (CartResponse, error) {
	if accountID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID == "" || in.Size == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	m := u.manager(ctx, accountID)
	if err := m.UpdateQuantity(ctx, in.ProductID, in.Size, in.Delta); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return buildCartResponse(m), nil
}

// RemoveItem は明細削除。無ければ何もしない。
func (u *CartUsecase) RemoveItem(ctx context.Context, accountID int64, productID string, size string) (CartResponse, error) {
	if accountID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" || size == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	m := u.manager(ctx, accountID)
	if err := m.Remove(ctx, productID, size); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return buildCartResponse(m), nil
}

// ClearCart はカートを空にする。
func (u *CartUsecase) ClearCart(ctx context.Context, accountID int64) (CartResponse, error) {
	if accountID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	m := u.manager(ctx, accountID)
	if err := m.Clear(ctx); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return buildCartResponse(m), nil
}

func (u *CartUsecase) manager(ctx context.Context, accountID int64) *cart.Manager {
	ns := repository.Prefixed(u.store, repository.AccountNamespace(accountID))
	return cart.NewManager(ctx, ns)
}

func buildCartResponse(m *cart.Manager) CartResponse {
	items := m.Items()
	return CartResponse{
		Items:   items,
		Count:   m.Count(),
		Summary: pricing.ForItems(items),
	}
}
