package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

func TestValuationMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewValuationMetrics(reg)

	m.ObserveQuote("good", "0_3", decimal.NewFromInt(8900))
	m.ObserveQuote("good", "0_3", decimal.NewFromInt(4500))
	m.IncSubmission("accepted")
	m.IncPricingUpdate("")

	if got := testutil.ToFloat64(m.quotes.WithLabelValues("good", "0_3")); got != 2 {
		t.Fatalf("expected 2 quotes, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissions.WithLabelValues("accepted")); got != 1 {
		t.Fatalf("expected 1 submission, got %v", got)
	}
	if got := testutil.ToFloat64(m.pricingUpdates.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty result to map to unknown, got %v", got)
	}
}

func TestValuationMetricsNilSafe(t *testing.T) {
	var m *ValuationMetrics
	m.ObserveQuote("good", "0_3", decimal.Zero)
	m.IncSubmission("accepted")
	m.IncPricingUpdate("rejected")

	empty := NewValuationMetrics(nil)
	empty.ObserveQuote("average", "3_6", decimal.Zero)
}
