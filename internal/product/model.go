package product

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryWood                  Category = "Wood"
	CategoryLaminate              Category = "Laminate"
	CategoryVinyl                 Category = "Vinyl"
	CategoryTile                  Category = "Tile"
	CategoryStone                 Category = "Stone"
	CategoryDecoratives           Category = "Decoratives"
	CategoryFixtures              Category = "Fixtures"
	CategoryInstallationMaterials Category = "Installation Materials"
)

// Categories returns all catalog categories in display order.
func Categories() []Category {
	return []Category{
		CategoryWood,
		CategoryLaminate,
		CategoryVinyl,
		CategoryTile,
		CategoryStone,
		CategoryDecoratives,
		CategoryFixtures,
		CategoryInstallationMaterials,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryWood, CategoryLaminate, CategoryVinyl, CategoryTile,
		CategoryStone, CategoryDecoratives, CategoryFixtures, CategoryInstallationMaterials:
		return true
	}
	return false
}

type Specifications struct {
	Material         string   `json:"material"`
	Finish           *string  `json:"finish,omitempty"`
	Thickness        *string  `json:"thickness,omitempty"`
	Coverage         *string  `json:"coverage,omitempty"`
	InstallationType *string  `json:"installation_type,omitempty"`
	Warranty         *string  `json:"warranty,omitempty"`
	Features         []string `json:"features"`
}

type Product struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Category       Category         `json:"category"`
	Subcategory    string           `json:"subcategory"`
	Price          decimal.Decimal  `json:"price"`
	OriginalPrice  *decimal.Decimal `json:"original_price,omitempty"`
	Currency       string           `json:"currency"`
	Images         []string         `json:"images"`
	Specifications Specifications   `json:"specifications"`
	Colors         []string         `json:"colors"`
	Sizes          []string         `json:"sizes"`
	InStock        bool             `json:"in_stock"`
	StockQuantity  *int             `json:"stock_quantity,omitempty"`
	Rating         float64          `json:"rating"`
	ReviewCount    int              `json:"review_count"`
	IsProExclusive bool             `json:"is_pro_exclusive"`
	IsNew          bool             `json:"is_new"`
	IsOnSale       bool             `json:"is_on_sale"`
}

// DiscountPercentage returns the integer-truncated percentage reduction
// against the original price. The second return is false when the product
// has no original price or the original price does not exceed the current
// price, i.e. there is no discount to display.
func (p Product) DiscountPercentage() (int, bool) {
	if p.OriginalPrice == nil || !p.OriginalPrice.GreaterThan(p.Price) {
		return 0, false
	}

	pct := p.OriginalPrice.Sub(p.Price).
		Div(*p.OriginalPrice).
		Mul(decimal.NewFromInt(100))

	return int(pct.IntPart()), true
}
