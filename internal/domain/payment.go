package domain

import "strings"

// Payment categories produced by Classify.
const (
	CategoryCash     = "Dinheiro"
	CategoryPix      = "PIX"
	CategoryExchange = "Troca"
	CategoryCard     = "Cartão"
)

// brandSeparator splits a card selection into brand and detail,
// e.g. "Visa - Crédito".
const brandSeparator = " - "

// Payment is the normalized classification of a raw payment selection.
type Payment struct {
	Category   string
	Brand      string
	Detail     string
	IsExchange bool
}

// Classify maps a raw payment selection into its normalized classification.
// It is total: an unrecognized selection becomes its own category rather
// than failing, so the register never blocks an entry.
func Classify(raw string) Payment {
	switch raw {
	case CategoryCash:
		return Payment{Category: CategoryCash}
	case CategoryPix:
		return Payment{Category: CategoryPix}
	case CategoryExchange:
		return Payment{Category: CategoryExchange, IsExchange: true}
	}

	parts := strings.Split(raw, brandSeparator)
	if len(parts) == 2 {
		return Payment{Category: CategoryCard, Brand: parts[0], Detail: parts[1]}
	}

	return Payment{Category: raw}
}
