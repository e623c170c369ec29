package dto

import "github.com/austral/caixa/internal/usecase"

// CreateSaleRequest represents a sale submitted from the register form.
type CreateSaleRequest struct {
	Seller  string `json:"seller"`
	Payment string `json:"payment"`
	Note    string `json:"note,omitempty"`
	Amount  string `json:"amount"`
	Receipt string `json:"receipt_number"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateSaleRequest) ToUseCaseInput() usecase.AddSaleInput {
	return usecase.AddSaleInput{
		Seller:  r.Seller,
		Payment: r.Payment,
		Note:    r.Note,
		Amount:  r.Amount,
		Receipt: r.Receipt,
	}
}
