package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/austral/caixa/internal/adapter/http/dto"
	"github.com/austral/caixa/internal/domain"
	"github.com/austral/caixa/internal/usecase"
)

type registerServiceStub struct {
	addFn     func(ctx context.Context, input usecase.AddSaleInput) (*domain.Sale, error)
	deleteFn  func(ctx context.Context, index int) (*domain.Sale, error)
	listFn    func(ctx context.Context) []*domain.Sale
	summaryFn func(ctx context.Context) domain.Summary
}

func (s *registerServiceStub) AddSale(ctx context.Context, input usecase.AddSaleInput) (*domain.Sale, error) {
	return s.addFn(ctx, input)
}

func (s *registerServiceStub) DeleteSale(ctx context.Context, index int) (*domain.Sale, error) {
	return s.deleteFn(ctx, index)
}

func (s *registerServiceStub) ListSales(ctx context.Context) []*domain.Sale {
	return s.listFn(ctx)
}

func (s *registerServiceStub) Summary(ctx context.Context) domain.Summary {
	return s.summaryFn(ctx)
}

func testSale(seller, selection, amount string) *domain.Sale {
	sale, err := domain.NewSale(domain.SaleInput{
		Seller:    seller,
		Selection: selection,
		Amount:    amount,
		Receipt:   "1234",
	}, time.Date(2025, 3, 7, 14, 30, 5, 0, time.Local))
	if err != nil {
		panic(err)
	}
	return sale
}

func TestSaleHandler_Create_Success(t *testing.T) {
	sale := testSale("Ana", "Dinheiro", "10,50")

	var captured usecase.AddSaleInput
	handler := NewSaleHandler(&registerServiceStub{
		addFn: func(ctx context.Context, input usecase.AddSaleInput) (*domain.Sale, error) {
			captured = input
			return sale, nil
		},
		listFn: func(ctx context.Context) []*domain.Sale { return []*domain.Sale{sale} },
	})

	body, _ := json.Marshal(dto.CreateSaleRequest{
		Seller:  "Ana",
		Payment: "Dinheiro",
		Amount:  "10,50",
		Receipt: "1234",
	})

	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Seller != "Ana" || captured.Payment != "Dinheiro" || captured.Amount != "10,50" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.SaleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Index != 0 {
		t.Fatalf("expected index 0, got %d", resp.Index)
	}

	if resp.Amount != "10.50" || resp.FormattedAmount != "R$ 10.50" {
		t.Fatalf("unexpected amounts: %+v", resp)
	}
}

func TestSaleHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewSaleHandler(&registerServiceStub{
		addFn: func(ctx context.Context, input usecase.AddSaleInput) (*domain.Sale, error) {
			t.Fatal("AddSale should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader([]byte("{not-json")))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSaleHandler_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing field", fmt.Errorf("vendedor: %w", domain.ErrMissingField), http.StatusBadRequest},
		{"invalid amount", fmt.Errorf("%w: abc", domain.ErrInvalidAmount), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSaleHandler(&registerServiceStub{
				addFn: func(ctx context.Context, input usecase.AddSaleInput) (*domain.Sale, error) {
					return nil, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader([]byte(`{"seller":"Ana"}`)))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSaleHandler_Create_PersistenceFailure(t *testing.T) {
	sale := testSale("Ana", "Dinheiro", "10,50")

	handler := NewSaleHandler(&registerServiceStub{
		addFn: func(ctx context.Context, input usecase.AddSaleInput) (*domain.Sale, error) {
			return sale, fmt.Errorf("%w: disk full", domain.ErrPersistence)
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader([]byte(`{"seller":"Ana","payment":"Dinheiro","amount":"10,50","receipt_number":"1234"}`)))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Error != "sale recorded but not persisted" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
}

func TestSaleHandler_List(t *testing.T) {
	sales := []*domain.Sale{
		testSale("Ana", "Dinheiro", "10,50"),
		testSale("Pedro", "Visa - Crédito", "25,50"),
	}

	handler := NewSaleHandler(&registerServiceStub{
		listFn: func(ctx context.Context) []*domain.Sale { return sales },
	})

	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListSalesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Total != 2 || len(resp.Sales) != 2 {
		t.Fatalf("expected 2 sales, got %+v", resp)
	}

	if resp.Sales[1].Index != 1 || resp.Sales[1].Category != domain.CategoryCard {
		t.Fatalf("unexpected second row: %+v", resp.Sales[1])
	}
}

func deleteRequest(index string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/sales/"+index, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("index", index)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestSaleHandler_Delete_Success(t *testing.T) {
	sale := testSale("Ana", "Dinheiro", "10,50")

	handler := NewSaleHandler(&registerServiceStub{
		deleteFn: func(ctx context.Context, index int) (*domain.Sale, error) {
			if index != 0 {
				t.Fatalf("expected index 0, got %d", index)
			}
			return sale, nil
		},
		listFn: func(ctx context.Context) []*domain.Sale { return nil },
	})

	rec := httptest.NewRecorder()
	handler.Delete(rec, deleteRequest("0"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.DeleteSaleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Removed == nil || resp.Removed.Seller != "Ana" {
		t.Fatalf("expected removed sale in response, got %+v", resp)
	}
}

func TestSaleHandler_Delete_BadIndex(t *testing.T) {
	handler := NewSaleHandler(&registerServiceStub{
		deleteFn: func(ctx context.Context, index int) (*domain.Sale, error) {
			t.Fatal("DeleteSale should not be called for a non-numeric index")
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.Delete(rec, deleteRequest("abc"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSaleHandler_Delete_OutOfRange(t *testing.T) {
	handler := NewSaleHandler(&registerServiceStub{
		deleteFn: func(ctx context.Context, index int) (*domain.Sale, error) {
			return nil, fmt.Errorf("%w: 5", domain.ErrIndexOutOfRange)
		},
	})

	rec := httptest.NewRecorder()
	handler.Delete(rec, deleteRequest("5"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSaleHandler_Summary(t *testing.T) {
	sales := []*domain.Sale{
		testSale("Ana", "Dinheiro", "10,50"),
		testSale("Pedro", "Visa - Crédito", "25,50"),
	}

	handler := NewSaleHandler(&registerServiceStub{
		summaryFn: func(ctx context.Context) domain.Summary { return domain.Summarize(sales) },
	})

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()

	handler.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Total != "36.00" {
		t.Fatalf("expected total 36.00, got %s", resp.Total)
	}

	if len(resp.ByBrand) != 1 || resp.ByBrand[0].Key != "Visa" {
		t.Fatalf("expected Visa brand group, got %+v", resp.ByBrand)
	}
}

func TestSaleHandler_Summary_Empty(t *testing.T) {
	handler := NewSaleHandler(&registerServiceStub{
		summaryFn: func(ctx context.Context) domain.Summary { return domain.Summarize(nil) },
	})

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()

	handler.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !decimal.RequireFromString(resp.Total).IsZero() {
		t.Fatalf("expected zero total, got %s", resp.Total)
	}
}
