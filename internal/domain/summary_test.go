package domain

import (
	"reflect"
	"testing"
)

func mustSale(t *testing.T, seller, selection, note, amount, receipt string) *Sale {
	t.Helper()
	sale, err := NewSale(SaleInput{
		Seller:    seller,
		Selection: selection,
		Note:      note,
		Amount:    amount,
		Receipt:   receipt,
	}, testNow)
	if err != nil {
		t.Fatalf("failed to build sale: %v", err)
	}
	return sale
}

func TestSummarize(t *testing.T) {
	sales := []*Sale{
		mustSale(t, "Ana", "Visa - Crédito", "", "25.50", "100"),
		mustSale(t, "Ana", "Dinheiro", "PDV", "10.00", "101"),
		mustSale(t, "Pedro", "Visa - Débito", "", "5.00", "102"),
		mustSale(t, "Pedro", "Mastercard - Crédito", "", "4.50", "103"),
		mustSale(t, "Maria", "Troca", "", "0", "104"),
		mustSale(t, "Maria", "PIX", "POS Rede", "15.00", "105"),
	}

	summary := Summarize(sales)

	if got := summary.Total.StringFixed(2); got != "60.00" {
		t.Errorf("total = %s, want 60.00", got)
	}

	wantPayments := map[string]string{
		"Cartão - Crédito": "30.00",
		"Cartão - Débito":  "5.00",
		"Dinheiro":         "10.00",
		"PIX":              "15.00",
		"Troca":            "0.00",
	}
	for key, want := range wantPayments {
		got, ok := summary.ByPayment[key]
		if !ok {
			t.Errorf("missing payment key %q", key)
			continue
		}
		if got.StringFixed(2) != want {
			t.Errorf("payment %q = %s, want %s", key, got.StringFixed(2), want)
		}
	}
	if len(summary.ByPayment) != len(wantPayments) {
		t.Errorf("payment keys = %v, want %d entries", summary.PaymentKeys(), len(wantPayments))
	}

	wantBrands := map[string]string{
		"Visa":       "30.50",
		"Mastercard": "4.50",
	}
	for brand, want := range wantBrands {
		if got := summary.ByBrand[brand].StringFixed(2); got != want {
			t.Errorf("brand %q = %s, want %s", brand, got, want)
		}
	}
	if len(summary.ByBrand) != len(wantBrands) {
		t.Errorf("brand keys = %v, want %d entries", summary.BrandKeys(), len(wantBrands))
	}

	if len(summary.Exchanges) != 1 || summary.Exchanges[0].Receipt != "104" {
		t.Errorf("exchanges = %v, want the single Troca sale", summary.Exchanges)
	}
	if got := summary.ExchangeTotal.StringFixed(2); got != "0.00" {
		t.Errorf("exchange total = %s, want 0.00", got)
	}
}

func TestSummarize_KeyOrderIsLexicographic(t *testing.T) {
	sales := []*Sale{
		mustSale(t, "Ana", "PIX", "", "1.00", "1"),
		mustSale(t, "Ana", "Dinheiro", "", "1.00", "2"),
		mustSale(t, "Ana", "Visa - Débito", "", "1.00", "3"),
		mustSale(t, "Ana", "Elo - Crédito", "", "1.00", "4"),
	}

	summary := Summarize(sales)

	wantKeys := []string{"Cartão - Crédito", "Cartão - Débito", "Dinheiro", "PIX"}
	if got := summary.PaymentKeys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("payment keys = %v, want %v", got, wantKeys)
	}

	wantBrands := []string{"Elo", "Visa"}
	if got := summary.BrandKeys(); !reflect.DeepEqual(got, wantBrands) {
		t.Errorf("brand keys = %v, want %v", got, wantBrands)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	sales := []*Sale{
		mustSale(t, "Ana", "Dinheiro", "", "10.00", "1"),
		mustSale(t, "Ana", "Troca", "", "", "2"),
		mustSale(t, "Pedro", "Visa - Crédito", "", "20.00", "3"),
	}

	first := Summarize(sales)
	second := Summarize(sales)

	if !first.Total.Equal(second.Total) {
		t.Error("totals differ between identical runs")
	}
	if !reflect.DeepEqual(first.PaymentKeys(), second.PaymentKeys()) {
		t.Error("payment keys differ between identical runs")
	}
	for _, key := range first.PaymentKeys() {
		if !first.ByPayment[key].Equal(second.ByPayment[key]) {
			t.Errorf("payment %q differs between identical runs", key)
		}
	}
	if len(first.Exchanges) != len(second.Exchanges) {
		t.Error("exchanges differ between identical runs")
	}
}

func TestGroupBySeller_FirstSeenOrder(t *testing.T) {
	sales := []*Sale{
		mustSale(t, "Ana", "Dinheiro", "", "10.00", "1"),
		mustSale(t, "Ana", "PIX", "", "5.00", "2"),
		mustSale(t, "Pedro", "Dinheiro", "", "20.00", "3"),
	}

	sellers, groups := GroupBySeller(sales)

	if !reflect.DeepEqual(sellers, []string{"Ana", "Pedro"}) {
		t.Fatalf("sellers = %v, want [Ana Pedro]", sellers)
	}

	if got := Summarize(groups["Ana"]).Total.StringFixed(2); got != "15.00" {
		t.Errorf("Ana subtotal = %s, want 15.00", got)
	}
	if got := Summarize(groups["Pedro"]).Total.StringFixed(2); got != "20.00" {
		t.Errorf("Pedro subtotal = %s, want 20.00", got)
	}
	if got := Summarize(sales).Total.StringFixed(2); got != "35.00" {
		t.Errorf("grand total = %s, want 35.00", got)
	}
}
