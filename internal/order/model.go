package order

import (
	"time"

	"github.com/shopspring/decimal"

	"floordecor-be/internal/payment"
	"floordecor-be/internal/store"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusReturned   Status = "returned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

func (s Status) DisplayName() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	case StatusProcessing:
		return "Processing"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	case StatusReturned:
		return "Returned"
	default:
		return string(s)
	}
}

// Item is a frozen copy of a cart line at checkout time.
type Item struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	SelectedColor *string         `json:"selected_color,omitempty"`
	SelectedSize  *string         `json:"selected_size,omitempty"`
	Note          *string         `json:"note,omitempty"`
}

// Order is an immutable snapshot of a finalized cart plus fulfillment
// metadata. Monetary fields are frozen at checkout, unlike the cart's
// derived values.
type Order struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	OrderNumber       string          `json:"order_number"`
	Items             []Item          `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	ShippingAmount    decimal.Decimal `json:"shipping_amount"`
	Total             decimal.Decimal `json:"total"`
	Status            Status          `json:"status"`
	PaymentMethod     payment.Method  `json:"payment_method"`
	ShippingAddress   store.Address   `json:"shipping_address"`
	BillingAddress    store.Address   `json:"billing_address"`
	PickupStore       *store.Store    `json:"pickup_store,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsEligibleForCancellation is a pure function of status: only orders
// that have not started fulfillment can be cancelled.
func (o Order) IsEligibleForCancellation() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}
