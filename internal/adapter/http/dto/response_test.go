package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/austral/caixa/internal/domain"
)

func TestSaleFromDomain(t *testing.T) {
	sale := &domain.Sale{
		Seller:     "Pedro",
		Category:   domain.CategoryCard,
		Detail:     "Crédito",
		Brand:      "Visa",
		Amount:     decimal.RequireFromString("25.5"),
		Receipt:    "1235",
		RecordedAt: "07/03/2025 14:30:05",
	}

	resp := SaleFromDomain(3, sale)

	if resp.Index != 3 || resp.Seller != "Pedro" || resp.Brand != "Visa" {
		t.Fatalf("unexpected sale response: %+v", resp)
	}

	if resp.Amount != "25.50" || resp.FormattedAmount != "R$ 25.50" {
		t.Fatalf("expected two-decimal amounts, got %+v", resp)
	}

	if resp.ExchangeLabel != "Não" {
		t.Fatalf("expected exchange label Não, got %q", resp.ExchangeLabel)
	}

	list := SalesFromDomain([]*domain.Sale{sale, sale})
	if len(list) != 2 || list[1].Index != 1 {
		t.Fatalf("SalesFromDomain returned %+v", list)
	}
}

func TestSaleFromDomainExchange(t *testing.T) {
	sale := &domain.Sale{
		Seller:     "Maria",
		Category:   domain.CategoryExchange,
		Amount:     decimal.Zero,
		Receipt:    "1236",
		IsExchange: true,
		RecordedAt: "07/03/2025 15:00:00",
	}

	resp := SaleFromDomain(0, sale)

	if resp.Amount != "0.00" || resp.ExchangeLabel != "Sim" {
		t.Fatalf("unexpected exchange row: %+v", resp)
	}
}

func TestSummaryFromDomainOrdersKeys(t *testing.T) {
	sales := []*domain.Sale{
		{Seller: "Ana", Category: domain.CategoryPix, Amount: decimal.RequireFromString("10.00")},
		{Seller: "Ana", Category: domain.CategoryCard, Detail: "Crédito", Brand: "Visa", Amount: decimal.RequireFromString("20.00")},
		{Seller: "Ana", Category: domain.CategoryCash, Amount: decimal.RequireFromString("5.00")},
		{Seller: "Ana", Category: domain.CategoryCard, Detail: "Débito", Brand: "Elo", Amount: decimal.RequireFromString("7.00")},
	}

	resp := SummaryFromDomain(domain.Summarize(sales))

	if resp.Total != "42.00" || resp.FormattedTotal != "R$ 42.00" {
		t.Fatalf("unexpected totals: %+v", resp)
	}

	var paymentKeys []string
	for _, entry := range resp.ByPayment {
		paymentKeys = append(paymentKeys, entry.Key)
	}
	for i := 1; i < len(paymentKeys); i++ {
		if paymentKeys[i-1] >= paymentKeys[i] {
			t.Fatalf("expected lexicographic payment keys, got %v", paymentKeys)
		}
	}

	if len(resp.ByBrand) != 2 || resp.ByBrand[0].Key != "Elo" || resp.ByBrand[1].Key != "Visa" {
		t.Fatalf("expected sorted brand keys, got %+v", resp.ByBrand)
	}
}

func TestSummaryFromDomainExchanges(t *testing.T) {
	sales := []*domain.Sale{
		{Seller: "Ana", Category: domain.CategoryExchange, Amount: decimal.RequireFromString("15.00"), Receipt: "1300", IsExchange: true},
	}

	resp := SummaryFromDomain(domain.Summarize(sales))

	if len(resp.Exchanges) != 1 || resp.Exchanges[0].Receipt != "1300" {
		t.Fatalf("expected one exchange entry, got %+v", resp.Exchanges)
	}

	if resp.ExchangeTotal != "15.00" {
		t.Fatalf("expected exchange total 15.00, got %s", resp.ExchangeTotal)
	}
}
