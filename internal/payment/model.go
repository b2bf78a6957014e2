package payment

import "errors"

type Type string

const (
	TypeCreditCard Type = "credit_card"
	TypeDebitCard  Type = "debit_card"
	TypeApplePay   Type = "apple_pay"
	TypeGooglePay  Type = "google_pay"
	TypePayPal     Type = "paypal"
	TypeFinancing  Type = "financing"
)

var ErrInvalidType = errors.New("invalid payment type")

func (t Type) Valid() bool {
	switch t {
	case TypeCreditCard, TypeDebitCard, TypeApplePay, TypeGooglePay, TypePayPal, TypeFinancing:
		return true
	}
	return false
}

// Method is stored payment data only; no processing happens in this app.
type Method struct {
	ID             string  `json:"id"`
	Type           Type    `json:"type"`
	LastFourDigits *string `json:"last_four_digits,omitempty"`
	CardBrand      *string `json:"card_brand,omitempty"`
	IsDefault      bool    `json:"is_default"`
	ExpiryDate     *string `json:"expiry_date,omitempty"`
}

func (m Method) Validate() error {
	if !m.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

// DisplayName is the label shown on order summaries, e.g. "Visa •••• 4242".
func (m Method) DisplayName() string {
	switch m.Type {
	case TypeApplePay:
		return "Apple Pay"
	case TypeGooglePay:
		return "Google Pay"
	case TypePayPal:
		return "PayPal"
	case TypeFinancing:
		return "Financing"
	default:
		name := "Card"
		if m.CardBrand != nil {
			name = *m.CardBrand
		}
		if m.LastFourDigits != nil {
			return name + " •••• " + *m.LastFourDigits
		}
		return name
	}
}
