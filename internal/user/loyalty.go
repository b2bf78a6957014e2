package user

import "github.com/shopspring/decimal"

// PointValue is the fixed redemption rate: 1 point = 0.01 currency units.
var PointValue = decimal.New(1, -2)

// RedemptionValue converts a point count to its currency value.
func RedemptionValue(points int) decimal.Decimal {
	return decimal.NewFromInt(int64(points)).Mul(PointValue)
}
