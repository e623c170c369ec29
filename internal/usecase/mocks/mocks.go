package mocks

import (
	"context"
	"sync"

	"github.com/austral/caixa/internal/domain"
)

// MockSaleLedger is a mock implementation of SaleLedger backed by a slice.
// Individual methods can be overridden through the *Func fields.
type MockSaleLedger struct {
	mu    sync.Mutex
	sales []*domain.Sale

	AppendFunc   func(ctx context.Context, sale *domain.Sale) error
	RemoveAtFunc func(ctx context.Context, index int) (*domain.Sale, error)
	AllFunc      func(ctx context.Context) []*domain.Sale
}

func NewMockSaleLedger(sales ...*domain.Sale) *MockSaleLedger {
	return &MockSaleLedger{sales: sales}
}

func (m *MockSaleLedger) Append(ctx context.Context, sale *domain.Sale) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, sale)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales = append(m.sales, sale)
	return nil
}

func (m *MockSaleLedger) RemoveAt(ctx context.Context, index int) (*domain.Sale, error) {
	if m.RemoveAtFunc != nil {
		return m.RemoveAtFunc(ctx, index)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.sales) {
		return nil, domain.ErrIndexOutOfRange
	}
	sale := m.sales[index]
	m.sales = append(m.sales[:index], m.sales[index+1:]...)
	return sale, nil
}

func (m *MockSaleLedger) All(ctx context.Context) []*domain.Sale {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Sale, len(m.sales))
	copy(out, m.sales)
	return out
}
