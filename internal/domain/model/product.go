package model

// サイズ別価格
type SizeVariant struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// カタログの商品。サイズごとに価格が違う。
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Sizes       []SizeVariant `json:"sizes"`
	Images      []string      `json:"images"`
}

// PriceFor はサイズの価格を引く。見つからなければ0を返す（エラーにしない）。
func (p Product) PriceFor(size string) float64 {
	for _, v := range p.Sizes {
		if v.Size == size {
			return v.Price
		}
	}
	return 0
}

// PrimaryImage は先頭の画像。無ければ空文字。
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
