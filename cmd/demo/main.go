package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"floordecor-be/internal/appstate"
	"floordecor-be/internal/cart"
	"floordecor-be/internal/config"
	"floordecor-be/internal/fixtures"
	"floordecor-be/internal/logger"
	"floordecor-be/internal/order"
	"floordecor-be/internal/product"
	"floordecor-be/internal/promo"
	"floordecor-be/internal/scheduler"
	"floordecor-be/internal/store"
	"floordecor-be/internal/telemetry"
	"floordecor-be/internal/user"
	"floordecor-be/internal/utils"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Initialize(ctx, telemetry.Config{
		ServiceName:    "floordecor-demo",
		ServiceVersion: "1.0.0",
		Environment:    cfg.AppEnv,
		EnableTracing:  true,
		EnableMetrics:  true,
	})
	if err != nil {
		logger.L().Fatal("telemetry init failed", zap.Error(err))
	}
	defer tel.Shutdown(context.Background())

	meter := otel.Meter("floordecor-be/cmd/demo")
	cartMetrics, err := cart.NewMetrics(meter)
	if err != nil {
		logger.L().Fatal("cart metrics init failed", zap.Error(err))
	}
	orderMetrics, err := order.NewMetrics(meter)
	if err != nil {
		logger.L().Fatal("order metrics init failed", zap.Error(err))
	}

	// In-memory repositories seeded with the demo dataset
	productRepo := product.NewMemoryRepository(fixtures.Products())
	storeRepo := store.NewMemoryRepository(fixtures.Stores())
	userRepo := user.NewMemoryRepository(fixtures.Users())
	promoRepo := promo.NewMemoryRepository(fixtures.PromoRules())
	cartRepo := cart.NewMemoryRepository()
	orderRepo := order.NewMemoryRepository()

	productSvc := product.NewService(productRepo)
	storeSvc := store.NewService(storeRepo)
	userSvc := user.NewService(userRepo)
	promoSvc := promo.NewService(promoRepo)
	cartSvc := cart.NewService(cartRepo, productRepo, promoSvc, userSvc, cart.PricingConfig{
		TaxRate:               cfg.TaxRate,
		ShippingFlatRate:      cfg.ShippingFlatRate,
		FreeShippingThreshold: cfg.FreeShippingThreshold,
	}, cartMetrics)
	orderSvc := order.NewService(orderRepo, cartSvc, storeRepo, orderMetrics)

	ctx = logger.WithSessionID(ctx, uuid.NewString())
	runSession(ctx, cfg, sessionDeps{
		products: productSvc,
		stores:   storeSvc,
		users:    userSvc,
		carts:    cartSvc,
		orders:   orderSvc,
	})
}

type sessionDeps struct {
	products product.Service
	stores   store.Service
	users    user.Service
	carts    cart.Service
	orders   order.Service
}

// runSession walks a scripted shopping session through every layer:
// splash, browsing, cart mutation, promotion, loyalty redemption and
// checkout.
func runSession(ctx context.Context, cfg *config.Config, deps sessionDeps) {
	log := logger.FromCtx(ctx)

	// Splash screen, advanced by the cooperative ticker
	splash := appstate.NewSplashState(cfg.SplashTicks)
	tickCtx, cancelTicks := context.WithCancel(ctx)
	ticker := scheduler.NewTicker(cfg.CarouselTickInterval)
	go ticker.Run(tickCtx)

	for !splash.Done() {
		select {
		case <-ticker.Ticks():
			splash.Tick()
			log.Info("splash tick", zap.Float64("progress", splash.Progress()))
		case <-ctx.Done():
			cancelTicks()
			return
		}
	}
	cancelTicks()

	tabs := appstate.NewTabState()
	if err := tabs.Select(appstate.TabCatalog); err != nil {
		log.Fatal("tab selection failed", zap.Error(err))
	}

	// Browse the catalog
	featured, err := deps.products.FeaturedProducts(ctx)
	if err != nil {
		log.Fatal("featured products failed", zap.Error(err))
	}
	log.Info("featured products", zap.Int("count", len(featured)))

	results, err := deps.products.ListProducts(ctx, product.QueryOptions{Search: "oak"})
	if err != nil {
		log.Fatal("product search failed", zap.Error(err))
	}
	for _, p := range results {
		if pct, ok := p.DiscountPercentage(); ok {
			log.Info("search hit",
				zap.String("name", p.Name),
				zap.String("price", utils.FormatUSD(p.Price)),
				zap.Int("discount_pct", pct),
			)
		}
	}

	// Build a cart for the demo account
	const userID = "u1"
	if _, err = deps.carts.AddItem(ctx, cart.AddItemParams{UserID: userID, ProductID: "1", Quantity: 3}); err != nil {
		log.Fatal("add item failed", zap.Error(err))
	}
	if _, err = deps.carts.AddItem(ctx, cart.AddItemParams{UserID: userID, ProductID: "4", Quantity: 2}); err != nil {
		log.Fatal("add item failed", zap.Error(err))
	}

	if _, err = deps.carts.ApplyPromoCode(ctx, userID, "SAVE10"); err != nil {
		log.Fatal("promo code failed", zap.Error(err))
	}
	if _, err = deps.carts.RedeemPoints(ctx, userID, 500); err != nil {
		log.Fatal("point redemption failed", zap.Error(err))
	}

	summary, err := deps.carts.Summary(ctx, userID)
	if err != nil {
		log.Fatal("cart summary failed", zap.Error(err))
	}
	log.Info("cart summary",
		zap.String("subtotal", utils.FormatUSD(summary.Subtotal)),
		zap.String("discount", utils.FormatUSD(summary.DiscountAmount)),
		zap.String("loyalty", utils.FormatUSD(summary.LoyaltyDiscountAmount)),
		zap.String("tax", utils.FormatUSD(summary.EstimatedTax)),
		zap.String("shipping", utils.FormatUSD(summary.ShippingCost)),
		zap.String("total", utils.FormatUSD(summary.Total)),
		zap.Int("items", summary.ItemCount),
	)

	// Pick the nearest store for pickup
	nearest, err := deps.stores.Nearest(ctx, store.Coordinates{Latitude: 30.25, Longitude: -97.75})
	if err != nil || len(nearest) == 0 {
		log.Fatal("store lookup failed", zap.Error(err))
	}
	log.Info("nearest store",
		zap.String("name", nearest[0].Name),
		zap.String("distance", nearest[0].FormattedDistance()),
	)

	addr := store.Address{Street: "100 Congress Ave", City: "Austin", State: "TX", ZipCode: "78701", Country: "USA"}
	o, err := deps.orders.Checkout(ctx, order.CheckoutParams{
		UserID:          userID,
		PaymentMethod:   fixtures.PaymentMethods()[0],
		ShippingAddress: addr,
		BillingAddress:  addr,
		PickupStoreID:   &nearest[0].ID,
	})
	if err != nil {
		log.Fatal("checkout failed", zap.Error(err))
	}
	log.Info("order placed",
		zap.String("order_number", o.OrderNumber),
		zap.String("status", o.Status.DisplayName()),
		zap.String("total", utils.FormatUSD(o.Total)),
		zap.String("payment", o.PaymentMethod.DisplayName()),
		zap.String("pickup", o.PickupStore.Name),
	)

	history, err := deps.orders.ListOrders(ctx, userID)
	if err != nil {
		log.Fatal("order history failed", zap.Error(err))
	}
	log.Info("session complete", zap.Int("orders", len(history)))

	if ctx.Err() != nil {
		os.Exit(1)
	}
}
