package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)
	m.ObserveSessionOpened()
	m.ObserveBooking("sent")
	m.ObserveEmail("company", "sent")
	m.ObserveEmail("client", "failed")
	m.ObserveDispatchDuration(0.5)
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveSessionOpened()
	m.ObserveBooking("failed")
	m.ObserveEmail("company", "sent")
	m.ObserveDispatchDuration(0.1)
}
