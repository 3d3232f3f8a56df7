// Package metrics defines and registers all custom Prometheus metrics for the
// MindLink dashboard API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry via promauto at
// package initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mindlink"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure". Failures are not broken down further;
//     the API deliberately reports one generic failure to callers.
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthzDecisionsTotal counts access decisions on protected routes.
// Label:
//   - decision: "allowed" (request reached the handler), "unauthenticated"
//     (no live session, client must log in) or "forbidden" (live session,
//     wrong role for the route)
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of access decisions on protected routes.",
	},
	[]string{"decision"},
)

// AppointmentsCreatedTotal counts new bookings.
var AppointmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments booked.",
	},
)

// AlertResponsesTotal counts caregiver responses to alerts.
var AlertResponsesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alert_responses_total",
		Help:      "Total number of alerts responded to.",
	},
)
