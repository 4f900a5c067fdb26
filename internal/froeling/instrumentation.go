package froeling

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InstrumentedHTTPClient returns an http.Client that records the number and duration of API calls.
// The metrics are registered with registry.
func InstrumentedHTTPClient(next http.RoundTripper, registry prometheus.Registerer) *http.Client {
	if next == nil {
		next = http.DefaultTransport
	}
	requestCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "froeling",
		Subsystem: "monitor",
		Name:      "http_requests_total",
		Help:      "total number of http requests to the Fröling Connect API",
	},
		[]string{"code", "method"},
	)
	requestDuration := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "froeling",
		Subsystem: "monitor",
		Name:      "http_request_duration_seconds",
		Help:      "duration of http requests to the Fröling Connect API",
	},
		[]string{"code", "method"},
	)
	if registry != nil {
		registry.MustRegister(requestCounter, requestDuration)
	}

	rt := promhttp.InstrumentRoundTripperCounter(requestCounter,
		promhttp.InstrumentRoundTripperDuration(requestDuration, next),
	)
	return &http.Client{Transport: rt}
}
