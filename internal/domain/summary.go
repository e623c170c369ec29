package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Summary aggregates a sequence of sales: the grand total, totals grouped
// by payment key and by card brand, and the exchanges in order.
type Summary struct {
	Total         decimal.Decimal
	ByPayment     map[string]decimal.Decimal
	ByBrand       map[string]decimal.Decimal
	Exchanges     []*Sale
	ExchangeTotal decimal.Decimal
}

// PaymentKey is the composite grouping key for a sale: the category alone
// for Dinheiro/PIX/Troca, "category - detail" for everything else that
// carries a detail.
func PaymentKey(sale *Sale) string {
	switch sale.Category {
	case CategoryCash, CategoryPix, CategoryExchange:
		return sale.Category
	}
	if sale.Detail != "" {
		return sale.Category + brandSeparator + sale.Detail
	}
	return sale.Category
}

// Summarize computes totals over the given sales. It never mutates its
// input: calling it twice on an unchanged sequence yields identical results.
func Summarize(sales []*Sale) Summary {
	summary := Summary{
		Total:         decimal.Zero,
		ByPayment:     make(map[string]decimal.Decimal),
		ByBrand:       make(map[string]decimal.Decimal),
		ExchangeTotal: decimal.Zero,
	}

	for _, sale := range sales {
		summary.Total = summary.Total.Add(sale.Amount)

		key := PaymentKey(sale)
		summary.ByPayment[key] = summary.ByPayment[key].Add(sale.Amount)

		if sale.Brand != "" {
			summary.ByBrand[sale.Brand] = summary.ByBrand[sale.Brand].Add(sale.Amount)
		}

		if sale.IsExchange {
			summary.Exchanges = append(summary.Exchanges, sale)
			summary.ExchangeTotal = summary.ExchangeTotal.Add(sale.Amount)
		}
	}

	return summary
}

// PaymentKeys returns the payment keys in lexicographic order.
func (s Summary) PaymentKeys() []string {
	keys := make([]string, 0, len(s.ByPayment))
	for key := range s.ByPayment {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// BrandKeys returns the card brands in lexicographic order.
func (s Summary) BrandKeys() []string {
	keys := make([]string, 0, len(s.ByBrand))
	for key := range s.ByBrand {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GroupBySeller splits sales by seller, returning the sellers in first-seen
// order alongside each seller's sales in insertion order.
func GroupBySeller(sales []*Sale) ([]string, map[string][]*Sale) {
	var sellers []string
	groups := make(map[string][]*Sale)

	for _, sale := range sales {
		if _, ok := groups[sale.Seller]; !ok {
			sellers = append(sellers, sale.Seller)
		}
		groups[sale.Seller] = append(groups[sale.Seller], sale)
	}

	return sellers, groups
}
