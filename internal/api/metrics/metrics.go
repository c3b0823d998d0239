// Package metrics defines and registers the custom Prometheus metrics for the
// recipe API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry at
// package init; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recipes"

// RecipesCreatedTotal counts newly created recipes.
var RecipesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of recipes created.",
	},
)

// RecipesUpdatedTotal counts successful recipe updates.
var RecipesUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updated_total",
		Help:      "Total number of recipes updated.",
	},
)

// RecipesDeletedTotal counts successful recipe deletions.
var RecipesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of recipes deleted.",
	},
)

// SearchesTotal counts search requests, labelled by the filter used.
// Label:
//   - filter: "category" or "name"
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of recipe searches, by filter parameter.",
	},
	[]string{"filter"},
)

// RegistrationsTotal counts successful user registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registrations.",
	},
)

// AuthRejectionsTotal counts rejected requests, labelled by reason.
// Label:
//   - reason: "forbidden" (authenticated but not the owner) or "rate_limited"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of rejected requests, by reason.",
	},
	[]string{"reason"},
)
