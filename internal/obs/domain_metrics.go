package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// OrdersSubmittedTotal counts bulk-order submissions by outcome.
	OrdersSubmittedTotal *prometheus.CounterVec
	// NewsletterSubscriptionsTotal counts newsletter subscription attempts by outcome.
	NewsletterSubscriptionsTotal *prometheus.CounterVec
	// QuoteRequestsTotal counts pricing quote requests by outcome.
	QuoteRequestsTotal *prometheus.CounterVec
	// CatalogListTotal counts catalog listings by data source (cache or store).
	CatalogListTotal *prometheus.CounterVec
)

// Outcome labels used by the domain counters.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		OrdersSubmittedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_submitted_total",
			Help:      "Count of bulk-order submission outcomes.",
		}, []string{"result"})
		NewsletterSubscriptionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "newsletter_subscriptions_total",
			Help:      "Count of newsletter subscription outcomes.",
		}, []string{"result"})
		QuoteRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_requests_total",
			Help:      "Count of pricing quote request outcomes.",
		}, []string{"result"})
		CatalogListTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_list_total",
			Help:      "Count of catalog listings by serving source.",
		}, []string{"source"})

		reg.MustRegister(OrdersSubmittedTotal, NewsletterSubscriptionsTotal, QuoteRequestsTotal, CatalogListTotal)
	})
}

// ObserveOrderSubmission records an order submission outcome if metrics are registered.
func ObserveOrderSubmission(result string) {
	if OrdersSubmittedTotal != nil {
		OrdersSubmittedTotal.WithLabelValues(result).Inc()
	}
}

// ObserveNewsletterSubscription records a subscription outcome if metrics are registered.
func ObserveNewsletterSubscription(result string) {
	if NewsletterSubscriptionsTotal != nil {
		NewsletterSubscriptionsTotal.WithLabelValues(result).Inc()
	}
}

// ObserveQuoteRequest records a quote request outcome if metrics are registered.
func ObserveQuoteRequest(result string) {
	if QuoteRequestsTotal != nil {
		QuoteRequestsTotal.WithLabelValues(result).Inc()
	}
}

// ObserveCatalogList records where a catalog listing was served from.
func ObserveCatalogList(source string) {
	if CatalogListTotal != nil {
		CatalogListTotal.WithLabelValues(source).Inc()
	}
}
