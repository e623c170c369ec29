package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	salesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caixa_sales_recorded_total",
			Help: "Total number of sales recorded, by payment category",
		},
		[]string{"category"},
	)

	salesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "caixa_sales_deleted_total",
			Help: "Total number of sales removed from the day ledger",
		},
	)

	persistenceFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "caixa_persistence_failures_total",
			Help: "Total number of ledger writes that failed after the sale was accepted in memory",
		},
	)

	reportsExported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "caixa_reports_exported_total",
			Help: "Total number of daily reports exported to disk",
		},
	)

	ledgerSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "caixa_ledger_size",
			Help: "Current number of sales in the day ledger",
		},
	)
)

// RecordSale increments the sale counter for a payment category.
func RecordSale(category string) {
	salesRecorded.WithLabelValues(category).Inc()
}

// RecordSaleDeleted increments the deleted sale counter.
func RecordSaleDeleted() {
	salesDeleted.Inc()
}

// RecordPersistenceFailure increments the persistence failure counter.
func RecordPersistenceFailure() {
	persistenceFailures.Inc()
}

// RecordReportExported increments the exported report counter.
func RecordReportExported() {
	reportsExported.Inc()
}

// SetLedgerSize updates the ledger size gauge.
func SetLedgerSize(n int) {
	ledgerSize.Set(float64(n))
}
