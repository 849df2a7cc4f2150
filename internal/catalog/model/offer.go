package model

import "github.com/shopspring/decimal"

// Offer is the daily discount computed for a single product. It is never persisted.
type Offer struct {
	Name            string
	OriginalPrice   decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountedPrice decimal.Decimal
	Stock           int
}

var hundred = decimal.NewFromInt(100)

// NewOffer applies percent to the product price, rounding the result to cents.
func NewOffer(p Product, percent decimal.Decimal) Offer {
	original := decimal.NewFromFloat(p.Price)
	discount := percent.Div(hundred).Mul(original)

	return Offer{
		Name:            p.Name,
		OriginalPrice:   original,
		DiscountPercent: percent,
		DiscountedPrice: original.Sub(discount).Round(2),
		Stock:           p.Stock,
	}
}
