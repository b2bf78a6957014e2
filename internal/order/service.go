package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"floordecor-be/internal/cart"
	"floordecor-be/internal/logger"
	"floordecor-be/internal/payment"
	"floordecor-be/internal/store"
	"floordecor-be/internal/utils"
)

const deliveryLeadTime = 5 * 24 * time.Hour

// Service defines the business logic for order finalization.
type Service interface {
	Checkout(ctx context.Context, params CheckoutParams) (*Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*Order, error)
	ListOrders(ctx context.Context, userID string) ([]*Order, error)
	Cancel(ctx context.Context, userID, orderID string) (*Order, error)
}

type CheckoutParams struct {
	UserID          string
	PaymentMethod   payment.Method
	ShippingAddress store.Address
	BillingAddress  store.Address
	PickupStoreID   *string
}

type service struct {
	repo      Repository
	cartSvc   cart.Service
	storeRepo store.Repository
	metrics   *Metrics
	tracer    trace.Tracer
	now       func() time.Time
}

// NewService creates a new order service
func NewService(repo Repository, cartSvc cart.Service, storeRepo store.Repository, metrics *Metrics) Service {
	return &service{
		repo:      repo,
		cartSvc:   cartSvc,
		storeRepo: storeRepo,
		metrics:   metrics,
		tracer:    otel.Tracer("floordecor-be/internal/order"),
		now:       time.Now,
	}
}

// Checkout freezes the user's cart into an immutable order and clears
// the cart. The derived cart values become stored amounts here and are
// never recomputed.
func (s *service) Checkout(ctx context.Context, params CheckoutParams) (*Order, error) {
	ctx, span := s.tracer.Start(ctx, "order.Checkout",
		trace.WithAttributes(attribute.String("user.id", params.UserID)),
	)
	defer span.End()

	if err := params.PaymentMethod.Validate(); err != nil {
		return nil, err
	}

	// 1. Load the open cart
	c, err := s.cartSvc.GetCart(ctx, params.UserID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, ErrCartEmpty
	}

	// 2. Resolve the pickup store (if any)
	var pickup *store.Store
	if params.PickupStoreID != nil {
		pickup, err = s.storeRepo.GetByID(ctx, *params.PickupStoreID)
		if err != nil {
			return nil, err
		}
		if pickup == nil {
			return nil, ErrPickupStoreNotFound
		}
	}

	// 3. Freeze the snapshot
	now := s.now()
	summary := c.Summarize()

	o := &Order{
		ID:          uuid.NewString(),
		UserID:      params.UserID,
		OrderNumber: utils.GenerateOrderNumber(),
		Items:       snapshotItems(c.Items),
		Subtotal:    summary.Subtotal,
		// cart-level discounts and loyalty redemption fold into one
		// frozen reduction on the order
		DiscountAmount:  summary.DiscountAmount.Add(summary.LoyaltyDiscountAmount),
		TaxAmount:       summary.EstimatedTax,
		ShippingAmount:  summary.ShippingCost,
		Total:           summary.Total,
		Status:          StatusPending,
		PaymentMethod:   params.PaymentMethod,
		ShippingAddress: params.ShippingAddress,
		BillingAddress:  params.BillingAddress,
		PickupStore:     pickup,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if pickup == nil {
		eta := now.Add(deliveryLeadTime)
		o.EstimatedDelivery = &eta
	}

	if err := s.repo.Create(ctx, o); err != nil {
		s.metrics.RecordOrderCreated(ctx, false, 0)
		return nil, err
	}

	// 4. The cart is consumed by the order
	if err := s.cartSvc.ClearCart(ctx, params.UserID); err != nil {
		return nil, err
	}

	total, _ := o.Total.Float64()
	s.metrics.RecordOrderCreated(ctx, true, total)
	logger.FromCtx(ctx).Info("order created",
		zap.String("order_number", o.OrderNumber),
		zap.String("total", o.Total.StringFixed(2)),
		zap.Int("items", len(o.Items)),
	)
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, userID, orderID string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if o.UserID != userID {
		return nil, ErrUnauthorized
	}
	return o, nil
}

func (s *service) ListOrders(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Cancel transitions an order to cancelled when its status still
// permits it.
func (s *service) Cancel(ctx context.Context, userID, orderID string) (*Order, error) {
	o, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !o.IsEligibleForCancellation() {
		return nil, ErrNotCancellable
	}

	o.Status = StatusCancelled
	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	s.metrics.RecordOrderCancelled(ctx)
	logger.FromCtx(ctx).Info("order cancelled",
		zap.String("order_number", o.OrderNumber),
	)
	return o, nil
}

func snapshotItems(lines []cart.LineItem) []Item {
	items := make([]Item, 0, len(lines))
	for _, li := range lines {
		items = append(items, Item{
			ID:            uuid.NewString(),
			ProductID:     li.ProductID,
			ProductName:   li.ProductName,
			Quantity:      li.Quantity,
			UnitPrice:     li.UnitPrice,
			SelectedColor: li.SelectedColor,
			SelectedSize:  li.SelectedSize,
			Note:          li.Note,
		})
	}
	return items
}
