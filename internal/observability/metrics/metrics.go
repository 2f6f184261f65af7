package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the consultation booking
// flow: wizard sessions and outbound notification emails.
type BookingMetrics struct {
	sessionsOpened   prometheus.Counter
	bookingsTotal    *prometheus.CounterVec
	emailsTotal      *prometheus.CounterVec
	dispatchDuration prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		sessionsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nexai",
			Subsystem: "wizard",
			Name:      "sessions_opened_total",
			Help:      "Total wizard sessions opened",
		}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nexai",
			Subsystem: "wizard",
			Name:      "bookings_total",
			Help:      "Total confirmed bookings by email delivery outcome",
		}, []string{"email_outcome"}),
		emailsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nexai",
			Subsystem: "dispatch",
			Name:      "emails_total",
			Help:      "Total outbound notification emails by recipient kind and status",
		}, []string{"kind", "status"}),
		dispatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nexai",
			Subsystem: "dispatch",
			Name:      "duration_seconds",
			Help:      "Latency of a full dispatch (both emails)",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionsOpened, m.bookingsTotal, m.emailsTotal, m.dispatchDuration)
	return m
}

func (m *BookingMetrics) ObserveSessionOpened() {
	if m == nil {
		return
	}
	m.sessionsOpened.Inc()
}

func (m *BookingMetrics) ObserveBooking(emailOutcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(emailOutcome).Inc()
}

func (m *BookingMetrics) ObserveEmail(kind, status string) {
	if m == nil {
		return
	}
	m.emailsTotal.WithLabelValues(kind, status).Inc()
}

func (m *BookingMetrics) ObserveDispatchDuration(seconds float64) {
	if m == nil {
		return
	}
	m.dispatchDuration.Observe(seconds)
}
