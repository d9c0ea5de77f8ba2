package usecase

import (
	"context"
	"net/http"
	"testing"

	"portal/internal/catalog"
	"portal/internal/domain/model"
	infraRepo "portal/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.NewWith([]model.Product{
		{
			ID:    "fuel-system-cleaner",
			Name:  "Fuel System Cleaner",
			Sizes: []model.SizeVariant{{Size: "16oz", Price: 24.95}},
		},
	})
}

// 数量省略（0）は1個として扱う
func TestAddToCartDefaultQuantity(t *testing.T) {
	uc := NewCartUsecase(infraRepo.NewKVMemoryStore(), testCatalog())

	out, err := uc.AddToCart(context.Background(), 1, AddCartInput{ProductID: "fuel-system-cleaner", Size: "16oz"})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Items[0].Quantity)
	assert.Equal(t, 1, out.Count)
}

// 同一商品・同一サイズは加算される
func TestAddToCartMerges(t *testing.T) {
	ctx := context.Background()
	uc := NewCartUsecase(infraRepo.NewKVMemoryStore(), testCatalog())

	_, err := uc.AddToCart(ctx, 1, AddCartInput{ProductID: "fuel-system-cleaner", Size: "16oz", Quantity: 2})
	require.NoError(t, err)

	out, err := uc.AddToCart(ctx, 1, AddCartInput{ProductID: "fuel-system-cleaner", Size: "16oz", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, 5, out.Count)
	assert.InDelta(t, 24.95*5, out.Summary.Subtotal, 1e-9)
}

// カタログに無い商品は400
func TestAddToCartUnknownProduct(t *testing.T) {
	uc := NewCartUsecase(infraRepo.NewKVMemoryStore(), testCatalog())

	_, err := uc.AddToCart(context.Background(), 1, AddCartInput{ProductID: "nope", Size: "16oz"})

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

// 無い明細への数量変更は何も起きない
func TestUpdateQuantityAbsentNoop(t *testing.T) {
	ctx := context.Background()
	uc := NewCartUsecase(infraRepo.NewKVMemoryStore(), testCatalog())

	_, err := uc.AddToCart(ctx, 1, AddCartInput{ProductID: "fuel-system-cleaner", Size: "16oz", Quantity: 1})
	require.NoError(t, err)

	out, err := uc.UpdateQuantity(ctx, 1, UpdateCartItemInput{ProductID: "fuel-system-cleaner", Size: "1gal", Delta: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)
}

// アカウントが違えばカートも別
func TestCartIsolatedPerAccount(t *testing.T) {
	ctx := context.Background()
	uc := NewCartUsecase(infraRepo.NewKVMemoryStore(), testCatalog())

	_, err := uc.AddToCart(ctx, 1, AddCartInput{ProductID: "fuel-system-cleaner", Size: "16oz", Quantity: 2})
	require.NoError(t, err)

	out, err := uc.GetCart(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

// クリアで空になり、次の取得でも空のまま
func TestClearCart(t *testing.T) {
	ctx := context.Background()
	uc := NewCartUsecase(infraRepo.NewKVMemoryStore(), testCatalog())

	_, err := uc.AddToCart(ctx, 1, AddCartInput{ProductID: "fuel-system-cleaner", Size: "16oz", Quantity: 2})
	require.NoError(t, err)

	out, err := uc.ClearCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	out, err = uc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.Count)
}
