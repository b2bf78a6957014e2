package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Persona string

const (
	PersonaDIY Persona = "DIY"
	PersonaPro Persona = "Pro"
)

func (p Persona) Description() string {
	switch p {
	case PersonaPro:
		return "Professional contractor or designer"
	default:
		return "Do-it-yourself homeowner"
	}
}

type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "Bronze"
	TierSilver   LoyaltyTier = "Silver"
	TierGold     LoyaltyTier = "Gold"
	TierPlatinum LoyaltyTier = "Platinum"
)

func (t LoyaltyTier) MinimumPoints() int {
	switch t {
	case TierSilver:
		return 1000
	case TierGold:
		return 5000
	case TierPlatinum:
		return 15000
	default:
		return 0
	}
}

// DiscountPercentage is the member discount attached to the tier.
func (t LoyaltyTier) DiscountPercentage() decimal.Decimal {
	switch t {
	case TierSilver:
		return decimal.NewFromInt(2)
	case TierGold:
		return decimal.NewFromInt(5)
	case TierPlatinum:
		return decimal.NewFromInt(10)
	default:
		return decimal.Zero
	}
}

// TierFor maps a point balance to its loyalty tier.
func TierFor(points int) LoyaltyTier {
	switch {
	case points >= TierPlatinum.MinimumPoints():
		return TierPlatinum
	case points >= TierGold.MinimumPoints():
		return TierGold
	case points >= TierSilver.MinimumPoints():
		return TierSilver
	default:
		return TierBronze
	}
}

type Preferences struct {
	PreferredCategories  []string `json:"preferred_categories"`
	PreferredStores      []string `json:"preferred_stores"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
	EmailNotifications   bool     `json:"email_notifications"`
	PushNotifications    bool     `json:"push_notifications"`
	SMSNotifications     bool     `json:"sms_notifications"`
	Language             string   `json:"language"`
	Currency             string   `json:"currency"`
}

type User struct {
	ID             string      `json:"id"`
	Email          string      `json:"email"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	PhoneNumber    *string     `json:"phone_number,omitempty"`
	Persona        Persona     `json:"persona"`
	LoyaltyPoints  int         `json:"loyalty_points"`
	IsProMember    bool        `json:"is_pro_member"`
	ProMemberSince *time.Time  `json:"pro_member_since,omitempty"`
	DefaultStoreID *string     `json:"default_store_id,omitempty"`
	Preferences    Preferences `json:"preferences"`
	CreatedAt      time.Time   `json:"created_at"`
	LastLoginAt    time.Time   `json:"last_login_at"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// LoyaltyTier is derived from the current point balance, never stored.
func (u User) LoyaltyTier() LoyaltyTier {
	return TierFor(u.LoyaltyPoints)
}
