// Package fixtures provides the demo dataset. The repositories are
// seeded from these values so the application runs fully in memory.
package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"floordecor-be/internal/payment"
	"floordecor-be/internal/product"
	"floordecor-be/internal/promo"
	"floordecor-be/internal/store"
	"floordecor-be/internal/user"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Products returns the demo catalog.
func Products() []*product.Product {
	return []*product.Product{
		{
			ID:            "1",
			Name:          "Luxury Vinyl Plank - Oak",
			Description:   "Premium vinyl plank flooring with oak wood look",
			Category:      product.CategoryVinyl,
			Subcategory:   "Luxury Vinyl Plank",
			Price:         decimal.RequireFromString("2.99"),
			OriginalPrice: decPtr("3.99"),
			Currency:      "USD",
			Images:        []string{"vinyl", "carouselVinyl"},
			Specifications: product.Specifications{
				Material:         "Vinyl",
				Finish:           strPtr("Matte"),
				Thickness:        strPtr("6mm"),
				Coverage:         strPtr("20 sq ft per box"),
				InstallationType: strPtr("Click-lock"),
				Warranty:         strPtr("25 years"),
				Features:         []string{"Waterproof", "Scratch resistant", "Easy installation"},
			},
			Colors:        []string{"Natural Oak", "Gray Oak", "Brown Oak"},
			Sizes:         []string{`6" x 36"`},
			InStock:       true,
			StockQuantity: intPtr(150),
			Rating:        4.5,
			ReviewCount:   127,
			IsOnSale:      true,
		},
		{
			ID:          "2",
			Name:        "Porcelain Tile - Marble Look",
			Description: "Large format porcelain tile with marble appearance",
			Category:    product.CategoryTile,
			Subcategory: "Porcelain",
			Price:       decimal.RequireFromString("4.99"),
			Currency:    "USD",
			Images:      []string{"tile", "carouselTile"},
			Specifications: product.Specifications{
				Material:         "Porcelain",
				Finish:           strPtr("Polished"),
				Thickness:        strPtr("10mm"),
				Coverage:         strPtr("15 sq ft per box"),
				InstallationType: strPtr("Thinset"),
				Warranty:         strPtr("Lifetime"),
				Features:         []string{"Stain resistant", "Frost resistant", "Low maintenance"},
			},
			Colors:        []string{"White Marble", "Gray Marble", "Beige Marble"},
			Sizes:         []string{`24" x 24"`, `12" x 24"`},
			InStock:       true,
			StockQuantity: intPtr(75),
			Rating:        4.8,
			ReviewCount:   89,
			IsNew:         true,
		},
		{
			ID:            "3",
			Name:          "Engineered Hardwood - Hickory",
			Description:   "Premium engineered hardwood with hickory species",
			Category:      product.CategoryWood,
			Subcategory:   "Engineered Hardwood",
			Price:         decimal.RequireFromString("6.99"),
			OriginalPrice: decPtr("8.99"),
			Currency:      "USD",
			Images:        []string{"wood"},
			Specifications: product.Specifications{
				Material:         "Hickory",
				Finish:           strPtr("Satin"),
				Thickness:        strPtr(`3/4"`),
				Coverage:         strPtr("18 sq ft per box"),
				InstallationType: strPtr("Nail down"),
				Warranty:         strPtr("30 years"),
				Features:         []string{"Durable", "Natural variation", "Easy to maintain"},
			},
			Colors:         []string{"Natural Hickory", "Smoked Hickory"},
			Sizes:          []string{`3" x 36"`, `5" x 36"`},
			InStock:        true,
			StockQuantity:  intPtr(45),
			Rating:         4.7,
			ReviewCount:    156,
			IsProExclusive: true,
			IsOnSale:       true,
		},
		{
			ID:            "4",
			Name:          "Laminate Flooring - Gray Oak",
			Description:   "Modern laminate flooring with gray oak finish",
			Category:      product.CategoryLaminate,
			Subcategory:   "Laminate",
			Price:         decimal.RequireFromString("1.99"),
			OriginalPrice: decPtr("2.49"),
			Currency:      "USD",
			Images:        []string{"laminate"},
			Specifications: product.Specifications{
				Material:         "Laminate",
				Finish:           strPtr("Textured"),
				Thickness:        strPtr("8mm"),
				Coverage:         strPtr("22 sq ft per box"),
				InstallationType: strPtr("Click-lock"),
				Warranty:         strPtr("20 years"),
				Features:         []string{"Scratch resistant", "Easy to clean", "Budget friendly"},
			},
			Colors:        []string{"Gray Oak", "Natural Oak", "White Oak"},
			Sizes:         []string{`7" x 48"`},
			InStock:       true,
			StockQuantity: intPtr(200),
			Rating:        4.3,
			ReviewCount:   89,
			IsOnSale:      true,
		},
		{
			ID:          "5",
			Name:        "Glass Mosaic Tile - Blue",
			Description: "Decorative glass mosaic tile for backsplash",
			Category:    product.CategoryDecoratives,
			Subcategory: "Mosaic",
			Price:       decimal.RequireFromString("8.99"),
			Currency:    "USD",
			Images:      []string{"decorative"},
			Specifications: product.Specifications{
				Material:         "Glass",
				Finish:           strPtr("Glossy"),
				Thickness:        strPtr("8mm"),
				Coverage:         strPtr("5 sq ft per sheet"),
				InstallationType: strPtr("Thinset"),
				Warranty:         strPtr("Lifetime"),
				Features:         []string{"Stain resistant", "Easy to clean", "Decorative"},
			},
			Colors:        []string{"Blue", "Green", "White"},
			Sizes:         []string{`12" x 12" sheet`},
			InStock:       true,
			StockQuantity: intPtr(30),
			Rating:        4.9,
			ReviewCount:   67,
			IsNew:         true,
		},
		{
			ID:            "6",
			Name:          "Bathroom Vanity - White",
			Description:   "Modern bathroom vanity with storage",
			Category:      product.CategoryFixtures,
			Subcategory:   "Vanities",
			Price:         decimal.RequireFromString("299.99"),
			OriginalPrice: decPtr("399.99"),
			Currency:      "USD",
			Images:        []string{"carouselCabinets"},
			Specifications: product.Specifications{
				Material:         "Wood",
				Finish:           strPtr("White"),
				InstallationType: strPtr("Freestanding"),
				Warranty:         strPtr("5 years"),
				Features:         []string{"Storage included", "Easy installation", "Modern design"},
			},
			Colors:        []string{"White", "Gray", "Oak"},
			Sizes:         []string{`36"`, `48"`, `60"`},
			InStock:       true,
			StockQuantity: intPtr(15),
			Rating:        4.6,
			ReviewCount:   234,
			IsOnSale:      true,
		},
		{
			ID:            "7",
			Name:          "Natural Stone - Travertine",
			Description:   "Classic travertine stone tile for elegant spaces",
			Category:      product.CategoryStone,
			Subcategory:   "Travertine",
			Price:         decimal.RequireFromString("7.99"),
			OriginalPrice: decPtr("9.99"),
			Currency:      "USD",
			Images:        []string{"stone"},
			Specifications: product.Specifications{
				Material:         "Travertine",
				Finish:           strPtr("Honed"),
				Thickness:        strPtr("12mm"),
				Coverage:         strPtr("12 sq ft per box"),
				InstallationType: strPtr("Thinset"),
				Warranty:         strPtr("Lifetime"),
				Features:         []string{"Natural stone", "Unique variation", "Timeless appeal"},
			},
			Colors:        []string{"Beige", "Cream", "Gold"},
			Sizes:         []string{`12" x 12"`, `18" x 18"`},
			InStock:       true,
			StockQuantity: intPtr(25),
			Rating:        4.8,
			ReviewCount:   112,
			IsOnSale:      true,
		},
		{
			ID:          "8",
			Name:        "Grout - Premium Plus",
			Description: "Professional-grade grout for tile installations",
			Category:    product.CategoryInstallationMaterials,
			Subcategory: "Grout",
			Price:       decimal.RequireFromString("12.99"),
			Currency:    "USD",
			Images:      []string{"tile"},
			Specifications: product.Specifications{
				Material:         "Cement-based",
				Finish:           strPtr("Sanded"),
				Coverage:         strPtr("25 sq ft per bag"),
				InstallationType: strPtr("Professional"),
				Warranty:         strPtr("5 years"),
				Features:         []string{"Stain resistant", "Mold resistant", "Easy to clean"},
			},
			Colors:         []string{"White", "Gray", "Beige", "Black"},
			Sizes:          []string{"25 lb bag"},
			InStock:        true,
			StockQuantity:  intPtr(100),
			Rating:         4.4,
			ReviewCount:    78,
			IsProExclusive: true,
		},
	}
}

func fullWeekHours() store.Hours {
	weekday := store.DayHours{IsOpen: true, OpenTime: strPtr("7:00 AM"), CloseTime: strPtr("9:00 PM")}
	return store.Hours{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  store.DayHours{IsOpen: true, OpenTime: strPtr("8:00 AM"), CloseTime: strPtr("8:00 PM")},
		Sunday:    store.DayHours{IsOpen: true, OpenTime: strPtr("9:00 AM"), CloseTime: strPtr("7:00 PM")},
	}
}

func standardOfferings() []store.Offering {
	return []store.Offering{
		{Name: "Design Services", Description: "Free design consultation", IsAvailable: true},
		{Name: "Installation", Description: "Professional installation", IsAvailable: true},
		{Name: "Pro Services", Description: "Special pricing for contractors", IsAvailable: true},
	}
}

// Stores returns the demo store locations.
func Stores() []*store.Store {
	return []*store.Store{
		{
			ID:   "1",
			Name: "Floor & Decor - Austin",
			Address: store.Address{
				Street:  "1234 S Lamar Blvd",
				City:    "Austin",
				State:   "TX",
				ZipCode: "78704",
				Country: "USA",
			},
			PhoneNumber: "(512) 555-0123",
			Email:       strPtr("austin@flooranddecor.com"),
			Hours:       fullWeekHours(),
			Offerings:   standardOfferings(),
			Coordinates: store.Coordinates{Latitude: 30.2672, Longitude: -97.7431},
		},
		{
			ID:   "2",
			Name: "Floor & Decor - Round Rock",
			Address: store.Address{
				Street:  "4567 N Interstate 35",
				City:    "Round Rock",
				State:   "TX",
				ZipCode: "78664",
				Country: "USA",
			},
			PhoneNumber: "(512) 555-0456",
			Email:       strPtr("roundrock@flooranddecor.com"),
			Hours:       fullWeekHours(),
			Offerings:   standardOfferings(),
			Coordinates: store.Coordinates{Latitude: 30.5083, Longitude: -97.6789},
		},
		{
			ID:   "3",
			Name: "Floor & Decor - San Antonio",
			Address: store.Address{
				Street:  "7890 W Loop 1604",
				City:    "San Antonio",
				State:   "TX",
				ZipCode: "78249",
				Country: "USA",
			},
			PhoneNumber: "(210) 555-0789",
			Email:       strPtr("sanantonio@flooranddecor.com"),
			Hours:       fullWeekHours(),
			Offerings:   standardOfferings(),
			Coordinates: store.Coordinates{Latitude: 29.5697, Longitude: -98.6134},
		},
	}
}

// Users returns the demo accounts.
func Users() []user.User {
	created := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)
	return []user.User{
		{
			ID:             "u1",
			Email:          "john.doe@email.com",
			FirstName:      "John",
			LastName:       "Doe",
			PhoneNumber:    strPtr("(512) 555-1212"),
			Persona:        user.PersonaDIY,
			LoyaltyPoints:  2450,
			DefaultStoreID: strPtr("1"),
			Preferences: user.Preferences{
				PreferredCategories:  []string{"Vinyl", "Tile"},
				PreferredStores:      []string{"1"},
				NotificationsEnabled: true,
				EmailNotifications:   true,
				PushNotifications:    true,
				Language:             "en",
				Currency:             "USD",
			},
			CreatedAt:   created,
			LastLoginAt: created.AddDate(0, 10, 2),
		},
		{
			ID:             "u2",
			Email:          "maria.garcia@buildright.com",
			FirstName:      "Maria",
			LastName:       "Garcia",
			Persona:        user.PersonaPro,
			LoyaltyPoints:  16200,
			IsProMember:    true,
			ProMemberSince: timePtr(time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)),
			DefaultStoreID: strPtr("3"),
			Preferences: user.Preferences{
				PreferredCategories: []string{"Installation Materials", "Stone"},
				PreferredStores:     []string{"3"},
				EmailNotifications:  true,
				Language:            "en",
				Currency:            "USD",
			},
			CreatedAt:   time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
			LastLoginAt: created.AddDate(1, 0, 0),
		},
	}
}

func timePtr(t time.Time) *time.Time { return &t }

// PromoRules returns the demo promotion codes.
func PromoRules() []promo.Rule {
	expired := time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)
	return []promo.Rule{
		{
			Code:        "SAVE10",
			Kind:        promo.KindPercentage,
			Value:       decimal.NewFromInt(10),
			Description: "10% off your order",
		},
		{
			Code:        "WELCOME5",
			Kind:        promo.KindFixedAmount,
			Value:       decimal.NewFromInt(5),
			Description: "$5 off your first order",
		},
		{
			Code:        "FREESHIP",
			Kind:        promo.KindFreeShipping,
			Value:       decimal.Zero,
			Description: "Free shipping on orders over $50",
			MinSubtotal: decimal.NewFromInt(50),
		},
		{
			Code:        "HOLIDAY20",
			Kind:        promo.KindPercentage,
			Value:       decimal.NewFromInt(20),
			Description: "Holiday sale, 20% off",
			ExpiresAt:   &expired,
		},
	}
}

// PaymentMethods returns the saved payment methods of the demo
// account.
func PaymentMethods() []payment.Method {
	return []payment.Method{
		{
			ID:             "pm1",
			Type:           payment.TypeCreditCard,
			LastFourDigits: strPtr("4242"),
			CardBrand:      strPtr("Visa"),
			IsDefault:      true,
			ExpiryDate:     strPtr("12/27"),
		},
		{
			ID:   "pm2",
			Type: payment.TypeApplePay,
		},
	}
}
