package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"floordecor-be/internal/product"
	"floordecor-be/internal/promo"
	"floordecor-be/internal/user"
)

// LineItem is one product selection in a cart. Price and quantity are
// validated at construction time, so the derived totals below are total
// functions over well-formed input and never fail at read time.
type LineItem struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	ProductName   string           `json:"product_name"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Quantity      int              `json:"quantity"`
	SelectedColor *string          `json:"selected_color,omitempty"`
	SelectedSize  *string          `json:"selected_size,omitempty"`
	Note          *string          `json:"note,omitempty"`
	AddedAt       time.Time        `json:"added_at"`
}

type NewLineItemParams struct {
	Product       product.Product
	Quantity      int
	SelectedColor *string
	SelectedSize  *string
	Note          *string
	AddedAt       time.Time
}

// NewLineItem builds a validated line item from a catalog product.
// Malformed input is rejected here, never coerced: a zero or negative
// quantity is not clamped to 1.
func NewLineItem(params NewLineItemParams) (*LineItem, error) {
	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if params.Product.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if op := params.Product.OriginalPrice; op != nil && op.LessThan(params.Product.Price) {
		return nil, ErrInvalidOriginalPrice
	}

	item := &LineItem{
		ID:            uuid.NewString(),
		ProductID:     params.Product.ID,
		ProductName:   params.Product.Name,
		UnitPrice:     params.Product.Price,
		Quantity:      params.Quantity,
		SelectedColor: params.SelectedColor,
		SelectedSize:  params.SelectedSize,
		Note:          params.Note,
		AddedAt:       params.AddedAt,
	}
	if op := params.Product.OriginalPrice; op != nil {
		v := *op
		item.OriginalPrice = &v
	}
	return item, nil
}

// LineTotal is unit price times quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// OriginalLineTotal is the strike-through total. The second return is
// false when the item has no original price.
func (li LineItem) OriginalLineTotal() (decimal.Decimal, bool) {
	if li.OriginalPrice == nil {
		return decimal.Zero, false
	}
	return li.OriginalPrice.Mul(decimal.NewFromInt(int64(li.Quantity))), true
}

// Cart is the aggregate the pricing engine reads. All monetary summary
// values are derived on read, never stored, so they cannot go stale.
type Cart struct {
	ID                   string           `json:"id"`
	UserID               string           `json:"user_id"`
	Items                []LineItem       `json:"items"`
	AppliedDiscounts     []promo.Discount `json:"applied_discounts"`
	AppliedLoyaltyPoints int              `json:"applied_loyalty_points"`
	EstimatedTax         decimal.Decimal  `json:"estimated_tax"`
	ShippingCost         decimal.Decimal  `json:"shipping_cost"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

func NewCart(userID string, now time.Time) *Cart {
	return &Cart{
		ID:           uuid.NewString(),
		UserID:       userID,
		EstimatedTax: decimal.Zero,
		ShippingCost: decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Subtotal sums all line totals. Empty cart yields zero.
func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// DiscountAmount sums the applied discounts as given. Expired discounts
// are filtered out when a code is applied (the promo service is the
// single enforcement point); this read trusts the list and does not
// re-check expiry.
func (c Cart) DiscountAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range c.AppliedDiscounts {
		sum = sum.Add(d.Amount)
	}
	return sum
}

// LoyaltyDiscountAmount converts the applied points at the fixed
// redemption rate. The balance check happened when the points were
// applied.
func (c Cart) LoyaltyDiscountAmount() decimal.Decimal {
	return user.RedemptionValue(c.AppliedLoyaltyPoints)
}

// Total is subtotal minus discounts minus loyalty redemption plus tax
// and shipping. Not clamped at zero: over-discounting yields a negative
// total, and whether to floor it is a presentation decision.
func (c Cart) Total() decimal.Decimal {
	return c.Subtotal().
		Sub(c.DiscountAmount()).
		Sub(c.LoyaltyDiscountAmount()).
		Add(c.EstimatedTax).
		Add(c.ShippingCost)
}

// ItemCount sums line quantities.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Summary is a point-in-time snapshot of the derived monetary values.
type Summary struct {
	Subtotal              decimal.Decimal `json:"subtotal"`
	DiscountAmount        decimal.Decimal `json:"discount_amount"`
	LoyaltyDiscountAmount decimal.Decimal `json:"loyalty_discount_amount"`
	EstimatedTax          decimal.Decimal `json:"estimated_tax"`
	ShippingCost          decimal.Decimal `json:"shipping_cost"`
	Total                 decimal.Decimal `json:"total"`
	ItemCount             int             `json:"item_count"`
}

func (c Cart) Summarize() Summary {
	return Summary{
		Subtotal:              c.Subtotal(),
		DiscountAmount:        c.DiscountAmount(),
		LoyaltyDiscountAmount: c.LoyaltyDiscountAmount(),
		EstimatedTax:          c.EstimatedTax,
		ShippingCost:          c.ShippingCost,
		Total:                 c.Total(),
		ItemCount:             c.ItemCount(),
	}
}

// Clone deep-copies the cart so a caller never shares slices with the
// stored aggregate.
func (c Cart) Clone() *Cart {
	cp := c
	cp.Items = make([]LineItem, len(c.Items))
	for i, item := range c.Items {
		ci := item
		if item.OriginalPrice != nil {
			v := *item.OriginalPrice
			ci.OriginalPrice = &v
		}
		cp.Items[i] = ci
	}
	cp.AppliedDiscounts = make([]promo.Discount, len(c.AppliedDiscounts))
	copy(cp.AppliedDiscounts, c.AppliedDiscounts)
	return &cp
}
