package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/austral/caixa/internal/adapter/http/dto"
	"github.com/austral/caixa/internal/domain"
	"github.com/austral/caixa/internal/infrastructure/metrics"
	"github.com/austral/caixa/internal/usecase"
)

// RegisterService defines the behavior needed by SaleHandler.
type RegisterService interface {
	AddSale(ctx context.Context, input usecase.AddSaleInput) (*domain.Sale, error)
	DeleteSale(ctx context.Context, index int) (*domain.Sale, error)
	ListSales(ctx context.Context) []*domain.Sale
	Summary(ctx context.Context) domain.Summary
}

// SaleHandler handles sale-related HTTP requests.
type SaleHandler struct {
	registerUC RegisterService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(registerUC RegisterService) *SaleHandler {
	return &SaleHandler{registerUC: registerUC}
}

// Create registers a new sale from raw form values.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sale, err := h.registerUC.AddSale(r.Context(), req.ToUseCaseInput())
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			// The sale stays recorded in memory; the operator may keep
			// working and the next successful save rewrites the whole file.
			metrics.RecordPersistenceFailure()
			writeError(w, http.StatusInternalServerError, "sale recorded but not persisted", err.Error())
			return
		}
		writeError(w, mapDomainError(err), "failed to register sale", err.Error())
		return
	}

	count := len(h.registerUC.ListSales(r.Context()))
	metrics.RecordSale(sale.Category)
	metrics.SetLedgerSize(count)

	writeJSON(w, http.StatusCreated, dto.SaleFromDomain(count-1, sale))
}

// List returns the day's sales as display rows in ledger order.
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	sales := h.registerUC.ListSales(r.Context())

	writeJSON(w, http.StatusOK, dto.ListSalesResponse{
		Sales: dto.SalesFromDomain(sales),
		Total: len(sales),
	})
}

// Delete removes the sale at the given position.
func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sale index", err.Error())
		return
	}

	sale, err := h.registerUC.DeleteSale(r.Context(), index)
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			metrics.RecordPersistenceFailure()
			writeError(w, http.StatusInternalServerError, "sale removed but ledger not persisted", err.Error())
			return
		}
		writeError(w, mapDomainError(err), "failed to delete sale", err.Error())
		return
	}

	metrics.RecordSaleDeleted()
	metrics.SetLedgerSize(len(h.registerUC.ListSales(r.Context())))

	writeJSON(w, http.StatusOK, dto.DeleteSaleResponse{Removed: dto.SaleFromDomain(index, sale)})
}

// Summary returns the live running summary over the whole ledger.
func (h *SaleHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(h.registerUC.Summary(r.Context())))
}
