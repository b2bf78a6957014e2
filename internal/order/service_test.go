package order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel"

	"floordecor-be/internal/cart"
	"floordecor-be/internal/payment"
	"floordecor-be/internal/product"
	"floordecor-be/internal/store"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// MockCartService is a mock for the cart service
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, userID string) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, params cart.AddItemParams) (*cart.Cart, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*cart.Cart, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, userID, itemID string) (*cart.Cart, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) ClearCart(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCartService) ApplyPromoCode(ctx context.Context, userID, code string) (*cart.Cart, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) RedeemPoints(ctx context.Context, userID string, points int) (*cart.Cart, error) {
	args := m.Called(ctx, userID, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) Summary(ctx context.Context, userID string) (*cart.Summary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Summary), args.Error(1)
}

// MockStoreRepository is a mock for the store repository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) GetByID(ctx context.Context, id string) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) List(ctx context.Context) ([]*store.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Store), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func newTestService(repo Repository, cartSvc cart.Service, storeRepo store.Repository) *service {
	return &service{
		repo:      repo,
		cartSvc:   cartSvc,
		storeRepo: storeRepo,
		tracer:    otel.Tracer("test"),
		now:       fixedNow,
	}
}

func checkoutCart(t *testing.T) *cart.Cart {
	t.Helper()

	c := cart.NewCart("u1", fixedNow())

	orig := dec("3.99")
	itemA, err := cart.NewLineItem(cart.NewLineItemParams{
		Product: product.Product{
			ID:            "1",
			Name:          "Luxury Vinyl Plank - Oak",
			Price:         dec("2.99"),
			OriginalPrice: &orig,
		},
		Quantity: 1,
	})
	assert.NoError(t, err)

	itemB, err := cart.NewLineItem(cart.NewLineItemParams{
		Product:  product.Product{ID: "2", Name: "Porcelain Tile - Marble Look", Price: dec("4.99")},
		Quantity: 2,
	})
	assert.NoError(t, err)

	c.Items = append(c.Items, *itemA, *itemB)
	c.EstimatedTax = dec("1.00")
	c.AppliedLoyaltyPoints = 100
	return c
}

func validParams() CheckoutParams {
	addr := store.Address{Street: "1 Main St", City: "Austin", State: "TX", ZipCode: "78704", Country: "USA"}
	return CheckoutParams{
		UserID:          "u1",
		PaymentMethod:   payment.Method{ID: "pm1", Type: payment.TypeCreditCard},
		ShippingAddress: addr,
		BillingAddress:  addr,
	}
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("Freezes cart snapshot and clears cart", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockCart := new(MockCartService)
		svc := newTestService(mockRepo, mockCart, nil)

		c := checkoutCart(t)
		mockCart.On("GetCart", ctx, "u1").Return(c, nil).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		mockCart.On("ClearCart", ctx, "u1").Return(nil).Once()

		o, err := svc.Checkout(ctx, validParams())

		assert.NoError(t, err)
		assert.Equal(t, StatusPending, o.Status)
		assert.NotEmpty(t, o.OrderNumber)
		assert.Len(t, o.Items, 2)
		assert.True(t, o.Subtotal.Equal(dec("12.97")))
		// 100 loyalty points fold into the frozen discount amount
		assert.True(t, o.DiscountAmount.Equal(dec("1.00")))
		assert.True(t, o.TaxAmount.Equal(dec("1.00")))
		// 12.97 - 1.00 + 1.00
		assert.True(t, o.Total.Equal(dec("12.97")), "got %s", o.Total)
		assert.NotNil(t, o.EstimatedDelivery)
		mockCart.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Pickup order has no delivery estimate", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockCart := new(MockCartService)
		mockStores := new(MockStoreRepository)
		svc := newTestService(mockRepo, mockCart, mockStores)

		storeID := "s1"
		params := validParams()
		params.PickupStoreID = &storeID

		mockCart.On("GetCart", ctx, "u1").Return(checkoutCart(t), nil).Once()
		mockStores.On("GetByID", ctx, "s1").Return(&store.Store{ID: "s1", Name: "Floor & Decor - Austin"}, nil).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		mockCart.On("ClearCart", ctx, "u1").Return(nil).Once()

		o, err := svc.Checkout(ctx, params)

		assert.NoError(t, err)
		assert.NotNil(t, o.PickupStore)
		assert.Nil(t, o.EstimatedDelivery)
	})

	t.Run("Unknown pickup store", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockCart := new(MockCartService)
		mockStores := new(MockStoreRepository)
		svc := newTestService(mockRepo, mockCart, mockStores)

		storeID := "ghost"
		params := validParams()
		params.PickupStoreID = &storeID

		mockCart.On("GetCart", ctx, "u1").Return(checkoutCart(t), nil).Once()
		mockStores.On("GetByID", ctx, "ghost").Return(nil, nil).Once()

		_, err := svc.Checkout(ctx, params)

		assert.ErrorIs(t, err, ErrPickupStoreNotFound)
	})

	t.Run("Empty cart rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockCart := new(MockCartService)
		svc := newTestService(mockRepo, mockCart, nil)

		mockCart.On("GetCart", ctx, "u1").Return(cart.NewCart("u1", fixedNow()), nil).Once()

		_, err := svc.Checkout(ctx, validParams())

		assert.ErrorIs(t, err, ErrCartEmpty)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Invalid payment method rejected", func(t *testing.T) {
		mockCart := new(MockCartService)
		svc := newTestService(new(MockRepository), mockCart, nil)

		params := validParams()
		params.PaymentMethod.Type = "cheque"

		_, err := svc.Checkout(ctx, params)

		assert.ErrorIs(t, err, payment.ErrInvalidType)
		mockCart.AssertNotCalled(t, "GetCart")
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending order cancels", func(t *testing.T) {
		repo := NewMemoryRepository()
		svc := newTestService(repo, nil, nil)

		o := &Order{ID: "o1", UserID: "u1", Status: StatusPending}
		assert.NoError(t, repo.Create(ctx, o))

		out, err := svc.Cancel(ctx, "u1", "o1")

		assert.NoError(t, err)
		assert.Equal(t, StatusCancelled, out.Status)

		stored, _ := repo.GetByID(ctx, "o1")
		assert.Equal(t, StatusCancelled, stored.Status)
	})

	t.Run("Shipped order cannot cancel", func(t *testing.T) {
		repo := NewMemoryRepository()
		svc := newTestService(repo, nil, nil)

		assert.NoError(t, repo.Create(ctx, &Order{ID: "o2", UserID: "u1", Status: StatusShipped}))

		_, err := svc.Cancel(ctx, "u1", "o2")

		assert.ErrorIs(t, err, ErrNotCancellable)
	})

	t.Run("Foreign order is unauthorized", func(t *testing.T) {
		repo := NewMemoryRepository()
		svc := newTestService(repo, nil, nil)

		assert.NoError(t, repo.Create(ctx, &Order{ID: "o3", UserID: "someone-else", Status: StatusPending}))

		_, err := svc.Cancel(ctx, "u1", "o3")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Unknown order", func(t *testing.T) {
		repo := NewMemoryRepository()
		svc := newTestService(repo, nil, nil)

		_, err := svc.Cancel(ctx, "u1", "missing")

		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_ListOrders(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := newTestService(repo, nil, nil)

	older := fixedNow().Add(-time.Hour)
	assert.NoError(t, repo.Create(ctx, &Order{ID: "o1", UserID: "u1", CreatedAt: older}))
	assert.NoError(t, repo.Create(ctx, &Order{ID: "o2", UserID: "u1", CreatedAt: fixedNow()}))
	assert.NoError(t, repo.Create(ctx, &Order{ID: "o3", UserID: "u2", CreatedAt: fixedNow()}))

	out, err := svc.ListOrders(ctx, "u1")

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	// newest first
	assert.Equal(t, "o2", out[0].ID)
	assert.Equal(t, "o1", out[1].ID)
}

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}
