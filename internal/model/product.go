package model

// Product is a catalog entry. The catalog is static, read-only data.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	SalePrice   float64  `json:"salePrice,omitempty"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category"`
	InStock     bool     `json:"inStock"`
	Colors      []string `json:"colors,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	ReviewCount int      `json:"reviewCount,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsNew       bool     `json:"isNew,omitempty"`
	IsSale      bool     `json:"isSale,omitempty"`
}

// EffectivePrice is the sale price when one is set, otherwise the list price.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.Price
}
