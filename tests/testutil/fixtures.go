package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	adaptershttp "github.com/austral/caixa/internal/adapter/http"
	"github.com/austral/caixa/internal/adapter/http/dto"
	"github.com/austral/caixa/internal/adapter/http/handler"
	"github.com/austral/caixa/internal/adapter/repository/jsonfile"
	"github.com/austral/caixa/internal/usecase"
)

// FixedTime is the register clock used across integration tests.
var FixedTime = time.Date(2025, 3, 7, 14, 30, 5, 0, time.Local)

// TestEnv wires a full register over a real day file in a temp directory.
type TestEnv struct {
	Router http.Handler
	Ledger *jsonfile.LedgerRepository
	Dir    string
	t      *testing.T
}

// NewTestEnv builds the register stack the way cmd/server does, backed by
// a throwaway data directory.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	dir := t.TempDir()
	logger := zerolog.Nop()

	ledger := jsonfile.NewLedgerRepository(dir, FixedTime, logger)
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}

	clock := func() time.Time { return FixedTime }
	registerUC := usecase.NewRegisterUseCase(ledger, clock, logger)
	reportUC := usecase.NewReportUseCase(ledger, jsonfile.NewReportWriter(dir), clock, logger)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		SaleHandler:    handler.NewSaleHandler(registerUC),
		ReportHandler:  handler.NewReportHandler(reportUC),
		OptionsHandler: handler.NewOptionsHandler([]string{"João", "Ana"}, []string{"Dinheiro", "PIX"}, []string{"PDV"}),
		HealthHandler:  handler.NewHealthHandler(ledger),
		Logger:         logger,
	})

	return &TestEnv{
		Router: router,
		Ledger: ledger,
		Dir:    dir,
		t:      t,
	}
}

// PostSale submits a sale through the API and returns the recorded row.
func (e *TestEnv) PostSale(req dto.CreateSaleRequest) (*httptest.ResponseRecorder, dto.SaleResponse) {
	e.t.Helper()

	body, _ := json.Marshal(req)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	e.Router.ServeHTTP(w, r)

	var resp dto.SaleResponse
	if w.Code == http.StatusCreated {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			e.t.Fatalf("failed to parse sale response: %v", err)
		}
	}

	return w, resp
}

// Do runs an arbitrary request against the register.
func (e *TestEnv) Do(method, path string, body []byte) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}

	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	e.Router.ServeHTTP(w, r)
	return w
}
