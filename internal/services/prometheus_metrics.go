package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded      *prometheus.CounterVec
	transactionDuration       prometheus.Histogram
	productStockLevel         *prometheus.GaugeVec
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_transactions_recorded_total",
				Help: "Total number of stock movements recorded",
			},
			[]string{"type", "status"},
		),
		transactionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "inventory_transaction_recording_duration_milliseconds",
				Help:    "Stock movement recording duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		productStockLevel: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inventory_product_stock_level",
				Help: "Current stock level per product SKU",
			},
			[]string{"sku"},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction_recorded":
		m.transactionsRecorded.WithLabelValues(tags["type"], tags["status"]).Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction_recording":
		m.transactionDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "product_stock_level":
		if sku := tags["sku"]; sku != "" {
			m.productStockLevel.WithLabelValues(sku).Set(value)
		}
	}
}
