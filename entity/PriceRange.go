package entity

type PriceRange string

const (
	PriceLow    PriceRange = "$"
	PriceMedium PriceRange = "$$"
	PriceHigh   PriceRange = "$$$"
)

func (p PriceRange) Valid() bool {
	switch p {
	case PriceLow, PriceMedium, PriceHigh:
		return true
	}
	return false
}
