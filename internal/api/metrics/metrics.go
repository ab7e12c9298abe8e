// Package metrics defines and registers all custom Prometheus metrics for
// the mess feedback API. It is the single source of truth for metric names,
// labels, and help strings. Collectors are registered with the default
// registry via promauto at package initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "feedback"

// SubmissionsTotal counts accepted feedback submissions.
// Labels:
//   - meal_type: "breakfast", "lunch", or "dinner"
//   - rating: the submitted rating, "1" through "5"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of feedback submissions accepted.",
	},
	[]string{"meal_type", "rating"},
)

// RatingObserved tracks the distribution of submitted ratings.
var RatingObserved = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rating",
		Help:      "Distribution of submitted ratings.",
		Buckets:   []float64{1, 2, 3, 4, 5},
	},
)

// StatusUpdatesTotal counts admin status transitions.
// Label:
//   - status: the new status applied ("pending", "processing", "resolved")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of feedback status updates applied.",
	},
	[]string{"status"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful user registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users registered.",
	},
)

// ExportsTotal counts CSV export downloads.
var ExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of CSV feedback exports served.",
	},
)
