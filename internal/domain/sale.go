package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the wall-clock format stored with every sale.
const TimestampLayout = "02/01/2006 15:04:05"

// CurrencyPrefix prefixes every displayed amount.
const CurrencyPrefix = "R$"

// Sale represents one recorded transaction. Sales are created through
// NewSale and never mutated afterwards; they leave the ledger only by
// explicit deletion.
type Sale struct {
	Seller     string
	Category   string
	Detail     string
	Brand      string
	Amount     decimal.Decimal
	Receipt    string
	IsExchange bool
	RecordedAt string
}

// SaleInput carries the raw form values for one sale.
type SaleInput struct {
	Seller    string
	Selection string
	Note      string
	Amount    string
	Receipt   string
}

// NewSale validates and normalizes raw form values into a Sale. The amount
// is quantized to 2 decimal places (half-up) and the timestamp captured
// from now. An amount that fails to parse, or is not positive, is forced
// to 0.00 for exchanges and rejected for everything else.
func NewSale(input SaleInput, now time.Time) (*Sale, error) {
	if input.Seller == "" {
		return nil, fmt.Errorf("%w: vendedor", ErrMissingField)
	}
	if input.Selection == "" {
		return nil, fmt.Errorf("%w: pagamento", ErrMissingField)
	}

	payment := Classify(input.Selection)

	amount, err := ParseAmount(input.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		if !payment.IsExchange {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, input.Amount)
		}
		// Exchanges legitimately carry no monetary value.
		amount = decimal.Zero
	}

	receipt := strings.TrimSpace(input.Receipt)
	if receipt == "" {
		return nil, fmt.Errorf("%w: número da boleta", ErrMissingField)
	}

	detail := payment.Detail
	if detail == "" {
		detail = input.Note
	}

	return &Sale{
		Seller:     input.Seller,
		Category:   payment.Category,
		Detail:     detail,
		Brand:      payment.Brand,
		Amount:     amount.Round(2),
		Receipt:    receipt,
		IsExchange: payment.IsExchange,
		RecordedAt: now.Format(TimestampLayout),
	}, nil
}

// ParseAmount parses raw amount text, accepting both "." and "," as the
// fractional separator.
func ParseAmount(text string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	return decimal.NewFromString(normalized)
}

// FormatAmount renders an amount for display, e.g. "R$ 10.50".
func FormatAmount(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", CurrencyPrefix, amount.StringFixed(2))
}

// ExchangeLabel renders the exchange flag the way the list and report
// surfaces show it.
func ExchangeLabel(isExchange bool) string {
	if isExchange {
		return "Sim"
	}
	return "Não"
}
