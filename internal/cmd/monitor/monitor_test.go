package monitor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clambin/froeling-monitor/internal/homeassistant"
	"github.com/clambin/froeling-monitor/internal/poller"
	"github.com/clambin/froeling-monitor/internal/poller/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_makeTasks(t *testing.T) {
	influx := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(influx.Close)

	testCases := []struct {
		name   string
		config string
		length int
	}{
		{
			name: "minimal",
			config: `
froeling:
  sendChanges: true
`,
			length: 6,
		},
		{
			name: "read-only with slack",
			config: `
froeling:
  sendChanges: false
slack:
  token: xoxb-1234
`,
			length: 6,
		},
		{
			name: "history",
			config: `
influxdb:
  url: ` + influx.URL + `
  token: 1234
  org: home
  bucket: froeling
`,
			length: 7,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg := viper.New()
			cfg.SetConfigType("yaml")
			require.NoError(t, cfg.ReadConfig(bytes.NewBufferString(tt.config)))

			l := slog.New(slog.DiscardHandler)
			p := poller.New(mocks.NewAPI(t), nil, pollerConfiguration(cfg), l)
			topics := homeassistant.Topics{DiscoveryPrefix: "homeassistant", BaseTopic: "froeling", NodeID: "froeling"}

			tasks, err := makeTasks(t.Context(), cfg, nil, p, nil, topics, "1.0", prometheus.NewPedanticRegistry(), l)
			require.NoError(t, err)
			assert.Len(t, tasks, tt.length)
		})
	}
}

func Test_makeTasks_HistoryUnreachable(t *testing.T) {
	cfg := viper.New()
	cfg.Set("influxdb.url", "http://127.0.0.1:1")
	cfg.Set("influxdb.bucket", "froeling")

	l := slog.New(slog.DiscardHandler)
	p := poller.New(mocks.NewAPI(t), nil, poller.Configuration{}, l)

	_, err := makeTasks(t.Context(), cfg, nil, p, nil, homeassistant.Topics{}, "1.0", prometheus.NewPedanticRegistry(), l)
	assert.Error(t, err)
}

func Test_pollerConfiguration(t *testing.T) {
	cfg := viper.New()
	cfg.Set("poller.interval", "1m")
	cfg.Set("poller.timeout", 5*time.Second)
	cfg.Set("poller.ratelimit", "250ms")

	assert.Equal(t, poller.Configuration{
		Interval:  time.Minute,
		Timeout:   5 * time.Second,
		RateLimit: 250 * time.Millisecond,
	}, pollerConfiguration(cfg))
}

func Test_httpServer(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error)
	go func() {
		errCh <- httpServer("127.0.0.1:0", http.NotFoundHandler())(ctx)
	}()

	cancel()
	assert.NoError(t, <-errCh)
}

func Test_httpServer_InvalidAddress(t *testing.T) {
	err := httpServer("127.0.0.1:-1", http.NotFoundHandler())(t.Context())
	require.Error(t, err)
	assert.False(t, errors.Is(err, http.ErrServerClosed))
}

func TestRun_MissingUsername(t *testing.T) {
	err := Run(t.Context(), viper.New(), "1.0", slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}
