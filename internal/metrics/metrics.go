// Package metrics counts drink machine activity with Prometheus.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/creational/internal/core/domain"
	"github.com/custodia-labs/creational/internal/core/ports/driven"
	"github.com/custodia-labs/creational/internal/core/ports/driving"
)

// Failure reasons used as the "reason" label.
const (
	ReasonNoSuchProduct = "no_such_product"
	ReasonAmbiguous     = "ambiguous"
	ReasonOther         = "other"
)

// Metrics holds the drink machine collectors.
type Metrics struct {
	DrinksMade    *prometheus.CounterVec
	DrinkFailures *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DrinksMade: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creational_drinks_made_total",
			Help: "Total number of drinks made, by drink",
		}, []string{"drink"}),
		DrinkFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creational_drink_failures_total",
			Help: "Total number of drink requests that could not be served, by reason",
		}, []string{"reason"}),
	}
}

// Handler exposes the collectors gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// ObserveDrink records a served drink.
func (m *Metrics) ObserveDrink(kind string) {
	m.DrinksMade.WithLabelValues(kind).Inc()
}

// ObserveFailure records a failed drink request.
func (m *Metrics) ObserveFailure(err error) {
	m.DrinkFailures.WithLabelValues(reason(err)).Inc()
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoSuchProduct):
		return ReasonNoSuchProduct
	case errors.Is(err, domain.ErrAmbiguousProduct):
		return ReasonAmbiguous
	default:
		return ReasonOther
	}
}

// Ensure InstrumentedMachine implements the interface.
var _ driving.DrinkMachine = (*InstrumentedMachine)(nil)

// InstrumentedMachine counts the results of an underlying drink machine.
type InstrumentedMachine struct {
	next    driving.DrinkMachine
	metrics *Metrics
}

// Instrument wraps next so every MakeDrink call is counted.
func Instrument(next driving.DrinkMachine, m *Metrics) *InstrumentedMachine {
	return &InstrumentedMachine{next: next, metrics: m}
}

// MakeDrink delegates to the wrapped machine and records the outcome.
func (i *InstrumentedMachine) MakeDrink(name string) (driven.HotDrink, error) {
	drink, err := i.next.MakeDrink(name)
	if err != nil {
		i.metrics.ObserveFailure(err)
		return nil, err
	}
	i.metrics.ObserveDrink(drink.Kind())
	return drink, nil
}

// Available delegates to the wrapped machine.
func (i *InstrumentedMachine) Available() []string {
	return i.next.Available()
}
