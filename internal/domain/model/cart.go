package model

// カートの明細。(ProductID, Size)で一意。
// 追加時点の価格を必ず保存する。
type CartLineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// SameKey は複合キーの一致判定。
func (i CartLineItem) SameKey(productID string, size string) bool {
	return i.ProductID == productID && i.Size == size
}
