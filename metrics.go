package fishtts

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	operationSynthesize = "synthesize"
	operationValidate   = "validate"
)

// Metrics holds the prometheus collectors updated by the sessions. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	sessionsTotal   *prometheus.CounterVec
	sessionDuration *prometheus.HistogramVec
	audioBytesTotal prometheus.Counter
	serverLogsTotal prometheus.Counter
}

// NewMetrics creates the collectors and registers them on registerer
// (prometheus.DefaultRegisterer when nil).
func NewMetrics(namespace string, registerer prometheus.Registerer) (m *Metrics, err error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	m = &Metrics{
		sessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_total",
				Help:      "Total number of TTS sessions by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		sessionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "session_duration_seconds",
				Help:      "TTS session duration in seconds",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"operation"},
		),
		audioBytesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "audio_bytes_total",
				Help:      "Total number of audio bytes received from the server",
			},
		),
		serverLogsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "server_log_events_total",
				Help:      "Total number of log events received from the server",
			},
		),
	}
	for _, collector := range []prometheus.Collector{
		m.sessionsTotal,
		m.sessionDuration,
		m.audioBytesTotal,
		m.serverLogsTotal,
	} {
		if err = registerer.Register(collector); err != nil {
			m = nil
			return
		}
	}
	return
}

func (m *Metrics) observeSession(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.sessionsTotal.WithLabelValues(operation, ErrorKindLabel(err)).Inc()
	m.sessionDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (m *Metrics) addAudio(n int) {
	if m == nil {
		return
	}
	m.audioBytesTotal.Add(float64(n))
}

func (m *Metrics) addServerLog() {
	if m == nil {
		return
	}
	m.serverLogsTotal.Inc()
}
