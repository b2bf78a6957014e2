package cart

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"floordecor-be/internal/logger"
	"floordecor-be/internal/product"
	"floordecor-be/internal/promo"
	"floordecor-be/internal/user"
)

// Service defines the business logic for carts.
type Service interface {
	GetCart(ctx context.Context, userID string) (*Cart, error)
	AddItem(ctx context.Context, params AddItemParams) (*Cart, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*Cart, error)
	ClearCart(ctx context.Context, userID string) error
	ApplyPromoCode(ctx context.Context, userID, code string) (*Cart, error)
	RedeemPoints(ctx context.Context, userID string, points int) (*Cart, error)
	Summary(ctx context.Context, userID string) (*Summary, error)
}

type AddItemParams struct {
	UserID        string
	ProductID     string
	Quantity      int
	SelectedColor *string
	SelectedSize  *string
	Note          *string
}

// PricingConfig carries the externally supplied rates the service uses
// to keep EstimatedTax and ShippingCost current on each mutation. The
// derived totals themselves never look at these.
type PricingConfig struct {
	TaxRate               decimal.Decimal
	ShippingFlatRate      decimal.Decimal
	FreeShippingThreshold decimal.Decimal
}

// service implements the Service interface
type service struct {
	repo        Repository
	productRepo product.Repository
	promoSvc    promo.Service
	userSvc     user.Service
	pricing     PricingConfig
	metrics     *Metrics
	now         func() time.Time
}

// NewService creates a new cart service
func NewService(
	repo Repository,
	productRepo product.Repository,
	promoSvc promo.Service,
	userSvc user.Service,
	pricing PricingConfig,
	metrics *Metrics,
) Service {
	return &service{
		repo:        repo,
		productRepo: productRepo,
		promoSvc:    promoSvc,
		userSvc:     userSvc,
		pricing:     pricing,
		metrics:     metrics,
		now:         time.Now,
	}
}

// GetCart returns the user's open cart, or a fresh empty cart when none
// exists yet. The empty cart is not persisted until first mutation.
func (s *service) GetCart(ctx context.Context, userID string) (*Cart, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}

	c, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return NewCart(userID, s.now()), nil
	}
	return c, nil
}

// AddItem adds a product to a user's cart
func (s *service) AddItem(ctx context.Context, params AddItemParams) (*Cart, error) {
	if params.UserID == "" {
		return nil, ErrUserRequired
	}

	// 1. Get product (only purchasable products allowed)
	p, err := s.productRepo.GetByID(ctx, params.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	if !p.InStock {
		return nil, ErrInsufficientStock
	}

	// 2. Get existing cart (if any)
	c, err := s.GetCart(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	// 3. Calculate final quantity for this selection
	existing := findLine(c, params.ProductID, params.SelectedColor, params.SelectedSize)
	finalQty := params.Quantity
	if existing != nil {
		finalQty += existing.Quantity
	}
	if finalQty < 1 {
		return nil, ErrInvalidQuantity
	}

	// 4. Validate stock
	if p.StockQuantity != nil && finalQty > *p.StockQuantity {
		return nil, ErrInsufficientStock
	}

	// 5. Create or merge the line item
	if existing == nil {
		item, err := NewLineItem(NewLineItemParams{
			Product:       *p,
			Quantity:      params.Quantity,
			SelectedColor: params.SelectedColor,
			SelectedSize:  params.SelectedSize,
			Note:          params.Note,
			AddedAt:       s.now(),
		})
		if err != nil {
			return nil, err
		}
		c.Items = append(c.Items, *item)
	} else {
		existing.Quantity = finalQty
	}

	s.refreshEstimates(c)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	s.metrics.RecordItemsAdded(ctx, params.Quantity)
	logger.FromCtx(ctx).Info("item added to cart",
		zap.String("product_id", params.ProductID),
		zap.Int("quantity", params.Quantity),
	)
	return c, nil
}

// UpdateQuantity updates the quantity of a specific line in the user's
// cart. A zero or negative quantity removes the line.
func (s *service) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*Cart, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, itemID)
	}

	c, err := s.requireCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := findLineByID(c, itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}
	item.Quantity = quantity

	s.refreshEstimates(c)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem deletes a line from the user's cart
func (s *service) RemoveItem(ctx context.Context, userID, itemID string) (*Cart, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}

	c, err := s.requireCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := c.Items[:0]
	found := false
	for _, item := range c.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, ErrItemNotFound
	}
	c.Items = kept

	s.refreshEstimates(c)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ClearCart removes the user's cart entirely
func (s *service) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUserRequired
	}
	return s.repo.DeleteByUser(ctx, userID)
}

// ApplyPromoCode resolves a code against the current cart and attaches
// the resulting discount. Expired codes are rejected here; applied
// discounts that have expired since are pruned here as well, so the
// totals downstream never see a stale discount.
func (s *service) ApplyPromoCode(ctx context.Context, userID, code string) (*Cart, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}

	c, err := s.requireCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.pruneExpired(c)
	for _, d := range c.AppliedDiscounts {
		if d.Code == code {
			return nil, ErrCodeAlreadyApplied
		}
	}

	d, err := s.promoSvc.Resolve(ctx, code, c.Subtotal(), c.ShippingCost)
	if err != nil {
		return nil, err
	}
	c.AppliedDiscounts = append(c.AppliedDiscounts, *d)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	s.metrics.RecordPromoApplied(ctx, string(d.Kind))
	logger.FromCtx(ctx).Info("promo applied",
		zap.String("code", d.Code),
		zap.String("kind", string(d.Kind)),
	)
	return c, nil
}

// RedeemPoints sets the applied loyalty points after validating the
// user's balance. Subsequent calls replace the previous redemption.
func (s *service) RedeemPoints(ctx context.Context, userID string, points int) (*Cart, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}

	if err := s.userSvc.ValidateRedemption(ctx, userID, points); err != nil {
		return nil, err
	}

	c, err := s.requireCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.AppliedLoyaltyPoints = points

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	s.metrics.RecordPointsRedeemed(ctx, points)
	return c, nil
}

// Summary computes the derived totals for the user's cart.
func (s *service) Summary(ctx context.Context, userID string) (*Summary, error) {
	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := c.Summarize()
	return &summary, nil
}

func (s *service) requireCart(ctx context.Context, userID string) (*Cart, error) {
	c, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

func (s *service) save(ctx context.Context, c *Cart) error {
	c.UpdatedAt = s.now()
	return s.repo.Save(ctx, c)
}

// refreshEstimates recomputes the externally supplied amounts stored on
// the cart. Tax and shipping are inputs to the pricing engine, not
// derived values, so they are maintained at mutation time.
func (s *service) refreshEstimates(c *Cart) {
	subtotal := c.Subtotal()

	if len(c.Items) == 0 {
		c.EstimatedTax = decimal.Zero
		c.ShippingCost = decimal.Zero
		return
	}

	c.EstimatedTax = subtotal.Mul(s.pricing.TaxRate).Round(2)

	if subtotal.GreaterThanOrEqual(s.pricing.FreeShippingThreshold) {
		c.ShippingCost = decimal.Zero
	} else {
		c.ShippingCost = s.pricing.ShippingFlatRate
	}
}

// pruneExpired drops applied discounts whose expiration has passed.
// This is the application step's responsibility; total computation
// never re-checks.
func (s *service) pruneExpired(c *Cart) {
	now := s.now()
	kept := c.AppliedDiscounts[:0]
	for _, d := range c.AppliedDiscounts {
		if d.Expired(now) {
			continue
		}
		kept = append(kept, d)
	}
	c.AppliedDiscounts = kept
}

func findLine(c *Cart, productID string, color, size *string) *LineItem {
	for i := range c.Items {
		item := &c.Items[i]
		if item.ProductID == productID &&
			strPtrEqual(item.SelectedColor, color) &&
			strPtrEqual(item.SelectedSize, size) {
			return item
		}
	}
	return nil
}

func findLineByID(c *Cart, itemID string) *LineItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
