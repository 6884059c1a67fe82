// Package metrics expõe os contadores Prometheus da aplicação.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics contém as métricas de negócio do console.
type Metrics struct {
	salesRecorded    prometheus.Counter
	paymentsRecorded prometheus.Counter
	alertDispatches  *prometheus.CounterVec
	alertsInFlight   prometheus.Gauge
}

// New cria as métricas e as registra no registrador padrão.
func New() *Metrics {
	return newWithRegisterer(prometheus.DefaultRegisterer)
}

func newWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		salesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padoca_sales_recorded_total",
			Help: "Total number of sales recorded",
		}),
		paymentsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padoca_payments_recorded_total",
			Help: "Total number of debt payments recorded",
		}),
		alertDispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padoca_debt_alert_dispatches_total",
			Help: "Total number of debt alert dispatch attempts by outcome",
		}, []string{"outcome"}),
		alertsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "padoca_debt_alerts_in_flight",
			Help: "Number of debt alert dispatches currently in flight",
		}),
	}

	registerer.MustRegister(m.salesRecorded, m.paymentsRecorded, m.alertDispatches, m.alertsInFlight)
	return m
}

// SaleRecorded incrementa o contador de vendas registradas.
func (m *Metrics) SaleRecorded() {
	if m == nil {
		return
	}
	m.salesRecorded.Inc()
}

// PaymentRecorded incrementa o contador de pagamentos registrados.
func (m *Metrics) PaymentRecorded() {
	if m == nil {
		return
	}
	m.paymentsRecorded.Inc()
}

// AlertDispatched registra o desfecho de um envio ("sent" ou "failed").
func (m *Metrics) AlertDispatched(outcome string) {
	if m == nil {
		return
	}
	m.alertDispatches.WithLabelValues(outcome).Inc()
}

// AlertStarted / AlertFinished controlam o gauge de envios em andamento.
func (m *Metrics) AlertStarted() {
	if m == nil {
		return
	}
	m.alertsInFlight.Inc()
}

func (m *Metrics) AlertFinished() {
	if m == nil {
		return
	}
	m.alertsInFlight.Dec()
}
