package catalog

import "math"

// Product is an immutable catalog record. Monetary amounts are integer
// minor units of the implied currency.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	OriginalPrice *int64  `json:"originalPrice,omitempty"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Description   string  `json:"description"`
	InStock       bool    `json:"inStock"`
	Featured      bool    `json:"featured,omitempty"`
}

// HasDiscount reports whether the product carries a pre-discount reference
// price above its current price.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent returns round(((original - price) / original) * 100), or 0
// when no meaningful discount exists.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	original := float64(*p.OriginalPrice)
	return int(math.Round((original - float64(p.Price)) / original * 100))
}
