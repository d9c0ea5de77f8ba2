package pricing

import "portal/internal/domain/model"

// 送料は一律
const ShippingFlat = 15.00

// 税は小計の8%
const TaxRate = 0.08

// 注文サマリ。注文リクエストとレシートの両方で同じ計算を使う。
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Subtotal は Σ 単価×数量。
func Subtotal(items []model.CartLineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}

// Summarize は小計から送料・税・合計を出す。
func Summarize(subtotal float64) Summary {
	tax := TaxRate * subtotal
	return Summary{
		Subtotal: subtotal,
		Shipping: ShippingFlat,
		Tax:      tax,
		Total:    subtotal + ShippingFlat + tax,
	}
}

// ForItems は明細から直接サマリを出す。
func ForItems(items []model.CartLineItem) Summary {
	return Summarize(Subtotal(items))
}
