package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/austral/caixa/internal/domain"
)

// RegisterUseCase handles the day-to-day till operations: recording sales,
// deleting them and computing the live summary.
type RegisterUseCase struct {
	ledger SaleLedger
	clock  Clock
	logger zerolog.Logger
}

// NewRegisterUseCase creates a new RegisterUseCase.
func NewRegisterUseCase(ledger SaleLedger, clock Clock, logger zerolog.Logger) *RegisterUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &RegisterUseCase{
		ledger: ledger,
		clock:  clock,
		logger: logger,
	}
}

// AddSaleInput carries the raw form values for registering a sale.
type AddSaleInput struct {
	Seller  string
	Payment string
	Note    string
	Amount  string
	Receipt string
}

// AddSale validates the input, records the sale and persists the ledger.
// When only persistence fails the sale stays recorded in memory and is
// returned alongside the error, so the operator can keep working.
func (uc *RegisterUseCase) AddSale(ctx context.Context, input AddSaleInput) (*domain.Sale, error) {
	sale, err := domain.NewSale(domain.SaleInput{
		Seller:    input.Seller,
		Selection: input.Payment,
		Note:      input.Note,
		Amount:    input.Amount,
		Receipt:   input.Receipt,
	}, uc.clock())
	if err != nil {
		return nil, err
	}

	if err := uc.ledger.Append(ctx, sale); err != nil {
		uc.logger.Error().Err(err).
			Str("receipt", sale.Receipt).
			Msg("sale kept in memory but not persisted")
		return sale, err
	}

	uc.logger.Info().
		Str("seller", sale.Seller).
		Str("category", sale.Category).
		Str("receipt", sale.Receipt).
		Str("amount", sale.Amount.StringFixed(2)).
		Msg("sale recorded")

	return sale, nil
}

// DeleteSale removes the sale at the given position.
func (uc *RegisterUseCase) DeleteSale(ctx context.Context, index int) (*domain.Sale, error) {
	sale, err := uc.ledger.RemoveAt(ctx, index)
	if err != nil {
		if sale != nil {
			uc.logger.Error().Err(err).Int("index", index).
				Msg("sale removed from memory but ledger not persisted")
			return sale, err
		}
		return nil, err
	}

	uc.logger.Info().Int("index", index).Str("receipt", sale.Receipt).Msg("sale deleted")
	return sale, nil
}

// ListSales returns the day's sales in insertion order.
func (uc *RegisterUseCase) ListSales(ctx context.Context) []*domain.Sale {
	return uc.ledger.All(ctx)
}

// Summary computes the live running summary over the whole ledger.
func (uc *RegisterUseCase) Summary(ctx context.Context) domain.Summary {
	return domain.Summarize(uc.ledger.All(ctx))
}
