package catalog

import "portal/internal/domain/model"

// 静的カタログ。商品データはアプリに同梱する。
type Catalog struct {
	products []model.Product
	byID     map[string]model.Product
}

// NewWith は指定の商品でカタログを作る。
func NewWith(products []model.Product) *Catalog {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// New は同梱の商品データでカタログを作る。
func New() *Catalog {
	return NewWith(defaultProducts)
}

// Find はIDで商品を引く。
func (c *Catalog) Find(id string) (model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// List は全商品。
func (c *Catalog) List() []model.Product {
	cp := make([]model.Product, len(c.products))
	copy(cp, c.products)
	return cp
}

// 同梱の商品データ
var defaultProducts = []model.Product{
	{
		ID:          "fuel-system-cleaner",
		Name:        "Fuel System Cleaner",
		Description: "Concentrated cleaner for injectors, intake valves and combustion chambers.",
		Sizes: []model.SizeVariant{
			{Size: "16oz", Price: 24.95},
			{Size: "1gal", Price: 129.95},
		},
		Images: []string{"/images/products/fuel-system-cleaner.jpg"},
	},
	{
		ID:          "oil-treatment",
		Name:        "Engine Oil Treatment",
		Description: "Reduces friction and wear in gasoline and diesel engines.",
		Sizes: []model.SizeVariant{
			{Size: "12oz", Price: 19.95},
			{Size: "32oz", Price: 44.95},
			{Size: "1gal", Price: 109.95},
		},
		Images: []string{"/images/products/oil-treatment.jpg"},
	},
	{
		ID:          "coolant-flush",
		Name:        "Cooling System Flush",
		Description: "Removes scale and deposits from radiators and heater cores.",
		Sizes: []model.SizeVariant{
			{Size: "22oz", Price: 16.95},
			{Size: "1gal", Price: 74.95},
		},
		Images: []string{"/images/products/coolant-flush.jpg"},
	},
	{
		ID:          "trans-conditioner",
		Name:        "Transmission Conditioner",
		Description: "Restores shift quality and conditions seals in automatic transmissions.",
		Sizes: []model.SizeVariant{
			{Size: "16oz", Price: 27.95},
			{Size: "1gal", Price: 139.95},
		},
		Images: []string{"/images/products/trans-conditioner.jpg"},
	},
	{
		ID:          "diesel-additive",
		Name:        "Diesel Performance Additive",
		Description: "Cetane booster with lubricity agents for modern diesel engines.",
		Sizes: []model.SizeVariant{
			{Size: "16oz", Price: 22.95},
			{Size: "64oz", Price: 69.95},
		},
		Images: []string{"/images/products/diesel-additive.jpg"},
	},
}
