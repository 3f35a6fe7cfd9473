// Package metrics exposes Prometheus counters for registration, login, club
// creation and join requests.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	Registry *prometheus.Registry

	usersRegistered prometheus.Counter
	loginAttempts   *prometheus.CounterVec
	clubsCreated    prometheus.Counter
	joinRequests    *prometheus.CounterVec
}

// New registers the service counters on a fresh registry.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		usersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "number of users registered",
		}),
		loginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "number of login attempts by result",
		}, []string{"result"}),
		clubsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clubs_created_total",
			Help:      "number of clubs created",
		}),
		joinRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "join_requests_total",
			Help:      "number of join requests by outcome",
		}, []string{"status"}),
	}
}

// UserRegistered counts a successful registration.
func (m *Metrics) UserRegistered() {
	if m == nil {
		return
	}
	m.usersRegistered.Inc()
}

// LoginAttempt counts a login attempt.
func (m *Metrics) LoginAttempt(success bool) {
	if m == nil {
		return
	}
	result := "failure"
	if success {
		result = "success"
	}
	m.loginAttempts.WithLabelValues(result).Inc()
}

// ClubCreated counts a created club.
func (m *Metrics) ClubCreated() {
	if m == nil {
		return
	}
	m.clubsCreated.Inc()
}

// JoinRequest counts a join request outcome.
func (m *Metrics) JoinRequest(status string) {
	if m == nil {
		return
	}
	m.joinRequests.WithLabelValues(status).Inc()
}
