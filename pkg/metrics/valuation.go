package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// ValuationMetrics records quote and pickup submission activity.
type ValuationMetrics struct {
	quotes         *prometheus.CounterVec
	submissions    *prometheus.CounterVec
	pricingUpdates *prometheus.CounterVec
	quoteAmount    *prometheus.HistogramVec
}

// NewValuationMetrics registers the valuation metrics on the provided registerer.
func NewValuationMetrics(reg prometheus.Registerer) *ValuationMetrics {
	if reg == nil {
		return &ValuationMetrics{}
	}
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "valuation_quotes_total",
		Help: "Valuations computed, labeled by condition tier and age bracket. Counts both standalone quotes and the quote step of each submission.",
	}, []string{"condition_tier", "age_bracket"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pickup_submissions_total",
		Help: "Pickup submissions, labeled by outcome.",
	}, []string{"result"})
	pricingUpdates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_updates_total",
		Help: "Admin pricing updates, labeled by outcome.",
	}, []string{"result"})
	quoteAmount := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "valuation_quote_amount",
		Help:    "Final quoted payout amounts in currency units.",
		Buckets: prometheus.ExponentialBuckets(100, 2, 12),
	}, []string{"condition_tier"})
	reg.MustRegister(quotes, submissions, pricingUpdates, quoteAmount)
	return &ValuationMetrics{
		quotes:         quotes,
		submissions:    submissions,
		pricingUpdates: pricingUpdates,
		quoteAmount:    quoteAmount,
	}
}

// ObserveQuote records one computed valuation and its payout amount.
// Submissions run the same valuation internally, so this counts every
// breakdown computed, not only standalone quote requests.
func (m *ValuationMetrics) ObserveQuote(tier, bracket string, amount decimal.Decimal) {
	if m == nil || m.quotes == nil {
		return
	}
	tierLabel := normalizeLabel(tier)
	m.quotes.WithLabelValues(tierLabel, normalizeLabel(bracket)).Inc()
	f, _ := amount.Float64()
	m.quoteAmount.WithLabelValues(tierLabel).Observe(f)
}

// IncSubmission increments the submission counter for the given outcome.
func (m *ValuationMetrics) IncSubmission(result string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncPricingUpdate increments the pricing update counter for the given outcome.
func (m *ValuationMetrics) IncPricingUpdate(result string) {
	if m == nil || m.pricingUpdates == nil {
		return
	}
	m.pricingUpdates.WithLabelValues(normalizeLabel(result)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
