package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/austral/caixa/internal/domain"
)

// dayFileLayout names the store after the calendar day it covers.
const dayFileLayout = "20060102"

// saleRecord is the stored form of a sale. Field order inside an object is
// not significant; array order is the ledger order.
type saleRecord struct {
	Seller     string `json:"seller"`
	Category   string `json:"payment_category"`
	Detail     string `json:"payment_detail"`
	Brand      string `json:"brand"`
	Amount     string `json:"amount"`
	Receipt    string `json:"receipt_number"`
	IsExchange bool   `json:"is_exchange"`
	Timestamp  string `json:"timestamp"`
}

func recordFromDomain(sale *domain.Sale) saleRecord {
	return saleRecord{
		Seller:     sale.Seller,
		Category:   sale.Category,
		Detail:     sale.Detail,
		Brand:      sale.Brand,
		Amount:     sale.Amount.StringFixed(2),
		Receipt:    sale.Receipt,
		IsExchange: sale.IsExchange,
		Timestamp:  sale.RecordedAt,
	}
}

func (r saleRecord) toDomain() (*domain.Sale, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount %q: %v", domain.ErrDeserialize, r.Amount, err)
	}

	return &domain.Sale{
		Seller:     r.Seller,
		Category:   r.Category,
		Detail:     r.Detail,
		Brand:      r.Brand,
		Amount:     amount,
		Receipt:    r.Receipt,
		IsExchange: r.IsExchange,
		RecordedAt: r.Timestamp,
	}, nil
}

// LedgerRepository stores the current day's sales in a single JSON file,
// mirroring them in memory in insertion order. Every mutation rewrites the
// whole file. The mutex serializes the concurrent net/http callers down to
// the register's one-operation-at-a-time model.
type LedgerRepository struct {
	mu      sync.Mutex
	path    string
	sales   []*domain.Sale
	retrier *Retrier
	logger  zerolog.Logger
}

// NewLedgerRepository creates a repository bound to the day file for now
// under dir. A new day means a new, empty file; previous days are never
// merged.
func NewLedgerRepository(dir string, now time.Time, logger zerolog.Logger) *LedgerRepository {
	return &LedgerRepository{
		path:    filepath.Join(dir, fmt.Sprintf("vendas_%s.json", now.Format(dayFileLayout))),
		retrier: NewRetrier(logger),
		logger:  logger,
	}
}

// Path returns the day-scoped store file.
func (r *LedgerRepository) Path() string {
	return r.path
}

// Load reads the day file, if present, into memory in stored order. Any
// malformed record aborts the whole load; partial loads are not attempted.
func (r *LedgerRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeserialize, err)
	}

	var records []saleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeserialize, err)
	}

	sales := make([]*domain.Sale, 0, len(records))
	for i, record := range records {
		sale, err := record.toDomain()
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		sales = append(sales, sale)
	}

	r.sales = sales
	return nil
}

// Append adds the sale to the end of the ledger and rewrites the day file.
// On persistence failure the in-memory append is kept and the failure
// returned.
func (r *LedgerRepository) Append(ctx context.Context, sale *domain.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = append(r.sales, sale)
	return r.persist(ctx)
}

// RemoveAt deletes the sale at index and rewrites the day file. The removed
// sale is returned even when persistence fails.
func (r *LedgerRepository) RemoveAt(ctx context.Context, index int) (*domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.sales) {
		return nil, fmt.Errorf("%w: index %d, ledger has %d", domain.ErrIndexOutOfRange, index, len(r.sales))
	}

	sale := r.sales[index]
	r.sales = append(r.sales[:index], r.sales[index+1:]...)
	return sale, r.persist(ctx)
}

// All returns the current sales in insertion order.
func (r *LedgerRepository) All(ctx context.Context) []*domain.Sale {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Sale, len(r.sales))
	copy(out, r.sales)
	return out
}

// Ping reports whether the store directory is reachable.
func (r *LedgerRepository) Ping(ctx context.Context) error {
	_, err := os.Stat(filepath.Dir(r.path))
	return err
}

// persist rewrites the whole day file. The write goes to a temp file in the
// same directory and is renamed over the store, so a reader never observes
// a partial write. Callers hold r.mu.
func (r *LedgerRepository) persist(ctx context.Context) error {
	records := make([]saleRecord, len(r.sales))
	for i, sale := range r.sales {
		records[i] = recordFromDomain(sale)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	if err := r.retrier.Retry(ctx, func() error {
		return writeAtomic(r.path, data)
	}); err != nil {
		r.logger.Error().Err(err).Str("file", r.path).Msg("day file write failed")
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
