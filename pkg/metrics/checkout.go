package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records checkout attempt outcomes and order values.
type CheckoutMetrics struct {
	attempts   *prometheus.CounterVec
	orderValue prometheus.Histogram
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_attempts_total",
		Help: "Checkout attempts by outcome.",
	}, []string{"outcome"})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_value_dollars",
		Help:    "Total value of accepted orders in dollars.",
		Buckets: []float64{100, 250, 500, 1000, 2500, 5000, 10000},
	})
	reg.MustRegister(attempts, orderValue)
	return &CheckoutMetrics{
		attempts:   attempts,
		orderValue: orderValue,
	}
}

// IncAccepted increments the accepted-attempt counter.
func (c *CheckoutMetrics) IncAccepted() {
	if c == nil || c.attempts == nil {
		return
	}
	c.attempts.WithLabelValues("accepted").Inc()
}

// IncRejected increments the rejected-attempt counter.
func (c *CheckoutMetrics) IncRejected() {
	if c == nil || c.attempts == nil {
		return
	}
	c.attempts.WithLabelValues("rejected").Inc()
}

// IncFailed increments the counter for attempts that died on persistence.
func (c *CheckoutMetrics) IncFailed() {
	if c == nil || c.attempts == nil {
		return
	}
	c.attempts.WithLabelValues("failed").Inc()
}

// ObserveOrderValue records the dollar total of an accepted order.
func (c *CheckoutMetrics) ObserveOrderValue(total float64) {
	if c == nil || c.orderValue == nil {
		return
	}
	c.orderValue.Observe(total)
}
