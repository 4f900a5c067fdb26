package collector

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/clambin/froeling-monitor/internal/froeling"
	"github.com/clambin/froeling-monitor/internal/poller"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	froelingParameterValue = prometheus.NewDesc(
		prometheus.BuildFQName("froeling", "parameter", "value"),
		"Current value of a numeric Fröling parameter",
		[]string{"facility", "component", "parameter", "name", "unit"},
		nil,
	)
	froelingParameterState = prometheus.NewDesc(
		prometheus.BuildFQName("froeling", "parameter", "state"),
		"Current state of an enumerated Fröling parameter. Always 1. Label state holds the current label",
		[]string{"facility", "component", "parameter", "name", "state"},
		nil,
	)
	froelingPollerPolls = prometheus.NewDesc(
		prometheus.BuildFQName("froeling", "poller", "polls_total"),
		"Number of polls",
		nil,
		nil,
	)
	froelingPollerFailures = prometheus.NewDesc(
		prometheus.BuildFQName("froeling", "poller", "failures_total"),
		"Number of failed polls",
		nil,
		nil,
	)
	froelingPollerHealthy = prometheus.NewDesc(
		prometheus.BuildFQName("froeling", "poller", "healthy"),
		"1 if the last poll succeeded",
		nil,
		nil,
	)
	froelingPollerLastSuccess = prometheus.NewDesc(
		prometheus.BuildFQName("froeling", "poller", "last_success_timestamp_seconds"),
		"Time of the last successful poll",
		nil,
		nil,
	)
)

// Collector exports the parameters of the last update and the poller's status as Prometheus metrics.
type Collector struct {
	Poller     poller.Poller
	Logger     *slog.Logger
	lock       sync.RWMutex
	lastUpdate *poller.Update
}

func (c *Collector) Run(ctx context.Context) error {
	c.Logger.Debug("started")
	defer c.Logger.Debug("stopped")

	ch := c.Poller.Subscribe()
	defer c.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			c.process(update)
		}
	}
}

func (c *Collector) process(update poller.Update) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.lastUpdate = &update
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- froelingParameterValue
	ch <- froelingParameterState
	ch <- froelingPollerPolls
	ch <- froelingPollerFailures
	ch <- froelingPollerHealthy
	ch <- froelingPollerLastSuccess
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.collectStatus(ch)

	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.lastUpdate != nil {
		c.collectParameters(ch)
	}
}

func (c *Collector) collectStatus(ch chan<- prometheus.Metric) {
	status := c.Poller.Status()
	ch <- prometheus.MustNewConstMetric(froelingPollerPolls, prometheus.CounterValue, float64(status.Polls))
	ch <- prometheus.MustNewConstMetric(froelingPollerFailures, prometheus.CounterValue, float64(status.Failures))
	var healthy float64
	if status.Healthy() {
		healthy = 1
	}
	ch <- prometheus.MustNewConstMetric(froelingPollerHealthy, prometheus.GaugeValue, healthy)
	if !status.LastSuccess.IsZero() {
		ch <- prometheus.MustNewConstMetric(froelingPollerLastSuccess, prometheus.GaugeValue, float64(status.LastSuccess.Unix()))
	}
}

func (c *Collector) collectParameters(ch chan<- prometheus.Metric) {
	for _, id := range c.lastUpdate.Identities() {
		param := c.lastUpdate.Parameters[id]
		facility := strconv.Itoa(id.FacilityID)

		if label, ok := param.Values.Lookup(string(param.Value)); ok {
			ch <- prometheus.MustNewConstMetric(froelingParameterState, prometheus.GaugeValue, 1, facility, id.ComponentID, id.ParameterID, param.Name, label)
			continue
		}
		if param.Type != froeling.NumValue {
			continue
		}
		value, err := strconv.ParseFloat(string(param.Value), 64)
		if err != nil {
			c.Logger.Debug("skipping non-numeric value", slog.Any("id", id), slog.String("value", string(param.Value)))
			continue
		}
		ch <- prometheus.MustNewConstMetric(froelingParameterValue, prometheus.GaugeValue, value, facility, id.ComponentID, id.ParameterID, param.Name, param.Unit)
	}
}
