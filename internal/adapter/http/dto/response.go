package dto

import (
	"github.com/austral/caixa/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SaleResponse is one sale row for the list surface, carrying both the raw
// and the display-formatted values.
type SaleResponse struct {
	Index           int    `json:"index"`
	Seller          string `json:"seller"`
	Category        string `json:"payment_category"`
	Detail          string `json:"payment_detail"`
	Brand           string `json:"brand"`
	Amount          string `json:"amount"`
	FormattedAmount string `json:"formatted_amount"`
	Receipt         string `json:"receipt_number"`
	IsExchange      bool   `json:"is_exchange"`
	ExchangeLabel   string `json:"exchange_label"`
	RecordedAt      string `json:"timestamp"`
}

// SaleFromDomain converts a domain sale to its list row at a position.
func SaleFromDomain(index int, s *domain.Sale) *SaleResponse {
	return &SaleResponse{
		Index:           index,
		Seller:          s.Seller,
		Category:        s.Category,
		Detail:          s.Detail,
		Brand:           s.Brand,
		Amount:          s.Amount.StringFixed(2),
		FormattedAmount: domain.FormatAmount(s.Amount),
		Receipt:         s.Receipt,
		IsExchange:      s.IsExchange,
		ExchangeLabel:   domain.ExchangeLabel(s.IsExchange),
		RecordedAt:      s.RecordedAt,
	}
}

// SalesFromDomain converts domain sales to list rows in ledger order.
func SalesFromDomain(sales []*domain.Sale) []*SaleResponse {
	result := make([]*SaleResponse, len(sales))
	for i, s := range sales {
		result[i] = SaleFromDomain(i, s)
	}
	return result
}

// ListSalesResponse represents the day's sales.
type ListSalesResponse struct {
	Sales []*SaleResponse `json:"sales"`
	Total int             `json:"total"`
}

// DeleteSaleResponse returns the removed sale.
type DeleteSaleResponse struct {
	Removed *SaleResponse `json:"removed"`
}

// SummaryEntry is one grouped total line.
type SummaryEntry struct {
	Key             string `json:"key"`
	Amount          string `json:"amount"`
	FormattedAmount string `json:"formatted_amount"`
}

// ExchangeEntry is one exchange line in the summary.
type ExchangeEntry struct {
	Receipt         string `json:"receipt_number"`
	Amount          string `json:"amount"`
	FormattedAmount string `json:"formatted_amount"`
}

// SummaryResponse represents the live running summary. Grouped entries are
// listed in lexicographic key order.
type SummaryResponse struct {
	Total          string          `json:"total"`
	FormattedTotal string          `json:"formatted_total"`
	ByPayment      []SummaryEntry  `json:"by_payment"`
	ByBrand        []SummaryEntry  `json:"by_brand,omitempty"`
	Exchanges      []ExchangeEntry `json:"exchanges,omitempty"`
	ExchangeTotal  string          `json:"exchange_total"`
}

// SummaryFromDomain converts a domain summary to its response form.
func SummaryFromDomain(s domain.Summary) *SummaryResponse {
	resp := &SummaryResponse{
		Total:          s.Total.StringFixed(2),
		FormattedTotal: domain.FormatAmount(s.Total),
		ByPayment:      make([]SummaryEntry, 0, len(s.ByPayment)),
		ExchangeTotal:  s.ExchangeTotal.StringFixed(2),
	}

	for _, key := range s.PaymentKeys() {
		resp.ByPayment = append(resp.ByPayment, SummaryEntry{
			Key:             key,
			Amount:          s.ByPayment[key].StringFixed(2),
			FormattedAmount: domain.FormatAmount(s.ByPayment[key]),
		})
	}

	for _, brand := range s.BrandKeys() {
		resp.ByBrand = append(resp.ByBrand, SummaryEntry{
			Key:             brand,
			Amount:          s.ByBrand[brand].StringFixed(2),
			FormattedAmount: domain.FormatAmount(s.ByBrand[brand]),
		})
	}

	for _, sale := range s.Exchanges {
		resp.Exchanges = append(resp.Exchanges, ExchangeEntry{
			Receipt:         sale.Receipt,
			Amount:          sale.Amount.StringFixed(2),
			FormattedAmount: domain.FormatAmount(sale.Amount),
		})
	}

	return resp
}

// ExportReportResponse names the file a report was exported to.
type ExportReportResponse struct {
	Filename string `json:"filename"`
}

// OptionsResponse lists the configured form enumerations.
type OptionsResponse struct {
	Sellers        []string `json:"sellers"`
	PaymentOptions []string `json:"payment_options"`
	NoteOptions    []string `json:"note_options"`
}
