package usecase

import (
	"context"
	"time"

	"github.com/austral/caixa/internal/domain"
)

// SaleLedger defines data access for the day-scoped sale ledger.
type SaleLedger interface {
	// Append adds the sale to the end of the ledger and persists it. On a
	// persistence failure the in-memory append is kept and the failure
	// returned.
	Append(ctx context.Context, sale *domain.Sale) error
	// RemoveAt deletes the sale at index and persists. Returns
	// domain.ErrIndexOutOfRange without touching the ledger when the index
	// is invalid; the removed sale is returned even when persistence fails.
	RemoveAt(ctx context.Context, index int) (*domain.Sale, error)
	// All returns the current sales in insertion order.
	All(ctx context.Context) []*domain.Sale
}

// ReportWriter persists a generated report verbatim and returns the name
// of the file it was written to.
type ReportWriter interface {
	Write(ctx context.Context, content string, at time.Time) (string, error)
}

// Clock supplies the current wall-clock time.
type Clock func() time.Time
