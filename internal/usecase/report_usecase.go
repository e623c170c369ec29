package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/austral/caixa/internal/domain"
)

const sectionRule = 50

// ReportUseCase builds and exports the detailed per-seller sales report.
type ReportUseCase struct {
	ledger SaleLedger
	writer ReportWriter
	clock  Clock
	logger zerolog.Logger
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(ledger SaleLedger, writer ReportWriter, clock Clock, logger zerolog.Logger) *ReportUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &ReportUseCase{
		ledger: ledger,
		writer: writer,
		clock:  clock,
		logger: logger,
	}
}

// BuildReport renders the detailed report, one section per seller in
// first-seen order. Returns domain.ErrNoSales on an empty ledger.
func (uc *ReportUseCase) BuildReport(ctx context.Context) (string, error) {
	sales := uc.ledger.All(ctx)
	if len(sales) == 0 {
		return "", domain.ErrNoSales
	}

	sellers, groups := domain.GroupBySeller(sales)

	var b strings.Builder
	for _, seller := range sellers {
		writeSellerSection(&b, seller, groups[seller])
	}

	return b.String(), nil
}

// ExportReport builds the report and writes it verbatim to a timestamped
// text file, returning the file name.
func (uc *ReportUseCase) ExportReport(ctx context.Context) (string, error) {
	content, err := uc.BuildReport(ctx)
	if err != nil {
		return "", err
	}

	name, err := uc.writer.Write(ctx, content, uc.clock())
	if err != nil {
		uc.logger.Error().Err(err).Msg("report export failed")
		return "", fmt.Errorf("%w: %v", domain.ErrExport, err)
	}

	uc.logger.Info().Str("file", name).Msg("report exported")
	return name, nil
}

func writeSellerSection(b *strings.Builder, seller string, sales []*domain.Sale) {
	summary := domain.Summarize(sales)

	fmt.Fprintf(b, "\nVendedor: %s\n", seller)
	b.WriteString(strings.Repeat("=", sectionRule) + "\n\n")
	b.WriteString("DETALHAMENTO DAS VENDAS:\n\n")

	for _, sale := range sales {
		fmt.Fprintf(b, "Data/Hora: %s\n", sale.RecordedAt)
		fmt.Fprintf(b, "Boleta Nº: %s\n", sale.Receipt)
		fmt.Fprintf(b, "Pagamento: %s\n", sale.Category)
		if sale.Detail != "" {
			fmt.Fprintf(b, "Detalhes: %s\n", sale.Detail)
		}
		if sale.Brand != "" {
			fmt.Fprintf(b, "Bandeira: %s\n", sale.Brand)
		}
		fmt.Fprintf(b, "Valor: %s\n", domain.FormatAmount(sale.Amount))
		fmt.Fprintf(b, "Troca: %s\n\n", domain.ExchangeLabel(sale.IsExchange))
	}

	fmt.Fprintf(b, "\nTOTAL DE VENDAS: %s\n\n", domain.FormatAmount(summary.Total))

	b.WriteString("RESUMO POR TIPO DE PAGAMENTO:\n")
	for _, key := range summary.PaymentKeys() {
		fmt.Fprintf(b, "- %s: %s\n", key, domain.FormatAmount(summary.ByPayment[key]))
	}

	if len(summary.ByBrand) > 0 {
		b.WriteString("\nRESUMO POR BANDEIRA:\n")
		for _, brand := range summary.BrandKeys() {
			fmt.Fprintf(b, "- %s: %s\n", brand, domain.FormatAmount(summary.ByBrand[brand]))
		}
	}

	if len(summary.Exchanges) > 0 {
		b.WriteString("\nTROCAS REALIZADAS:\n")
		for _, sale := range summary.Exchanges {
			fmt.Fprintf(b, "- Boleta %s: %s\n", sale.Receipt, domain.FormatAmount(sale.Amount))
		}
		fmt.Fprintf(b, "\nTotal de Trocas: %s\n", domain.FormatAmount(summary.ExchangeTotal))
	}

	b.WriteString("\n" + strings.Repeat("-", sectionRule) + "\n")
}
