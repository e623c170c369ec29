package handler

import (
	"net/http"

	"github.com/austral/caixa/internal/adapter/http/dto"
)

// OptionsHandler serves the configured form enumerations so the input
// surface never hard-codes them.
type OptionsHandler struct {
	sellers  []string
	payments []string
	notes    []string
}

// NewOptionsHandler creates a new OptionsHandler.
func NewOptionsHandler(sellers, payments, notes []string) *OptionsHandler {
	return &OptionsHandler{
		sellers:  sellers,
		payments: payments,
		notes:    notes,
	}
}

// Get returns the form enumerations.
func (h *OptionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.OptionsResponse{
		Sellers:        h.sellers,
		PaymentOptions: h.payments,
		NoteOptions:    h.notes,
	})
}
