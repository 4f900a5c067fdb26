package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/collector"
	"github.com/clambin/froeling-monitor/internal/entity"
	"github.com/clambin/froeling-monitor/internal/froeling"
	"github.com/clambin/froeling-monitor/internal/health"
	"github.com/clambin/froeling-monitor/internal/history"
	"github.com/clambin/froeling-monitor/internal/homeassistant"
	"github.com/clambin/froeling-monitor/internal/notifier"
	"github.com/clambin/froeling-monitor/internal/poller"
	"github.com/clambin/froeling-monitor/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const (
	brokerTimeout   = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

var Cmd = cobra.Command{
	Use:   "monitor",
	Short: "Publish Fröling parameters to Home Assistant and Prometheus",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return Run(ctx, viper.GetViper(), cmd.Root().Version, slog.Default())
	},
}

// Run starts the monitor and runs until ctx is done or one of its tasks fails.
func Run(ctx context.Context, v *viper.Viper, version string, logger *slog.Logger) error {
	username := v.GetString("froeling.username")
	if username == "" {
		return errors.New("froeling.username not set")
	}

	sessions, err := store.Open(ctx, v.GetString("store.path"), username)
	if err != nil {
		return err
	}
	defer func() { _ = sessions.Close() }()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	api := newClient(ctx, v, sessions, registry, logger)
	p := poller.New(api, sessions, pollerConfiguration(v), logger.With("component", "poller"))
	if err = p.Setup(ctx); err != nil {
		return err
	}

	topics := homeassistant.Topics{
		DiscoveryPrefix: v.GetString("homeassistant.discoveryPrefix"),
		BaseTopic:       v.GetString("homeassistant.baseTopic"),
		NodeID:          entity.Slugify(v.GetString("homeassistant.baseTopic")),
	}
	mqttClient := homeassistant.NewMQTTClient(homeassistant.MQTTConfiguration{
		Broker:   v.GetString("mqtt.broker"),
		Username: v.GetString("mqtt.username"),
		Password: v.GetString("mqtt.password"),
		ClientID: v.GetString("mqtt.clientID"),
	}, topics.Availability(), logger.With("component", "mqtt"))
	connectCtx, cancel := context.WithTimeout(ctx, brokerTimeout)
	if err = mqttClient.Connect(connectCtx); err != nil {
		// the client keeps retrying in the background
		logger.Warn("broker not available yet", slog.Any("err", err))
	}
	cancel()
	defer mqttClient.Close()

	tasks, err := makeTasks(ctx, v, api, p, mqttClient, topics, version, registry, logger)
	if err != nil {
		return err
	}

	logger.Info("froeling-monitor started", slog.String("version", version))
	defer logger.Info("froeling-monitor stopped")

	g, ctx := errgroup.WithContext(ctx)
	for _, t := range tasks {
		g.Go(func() error { return t(ctx) })
	}
	return g.Wait()
}

func newClient(ctx context.Context, v *viper.Viper, sessions *store.Store, registry prometheus.Registerer, logger *slog.Logger) *froeling.Client {
	options := []froeling.Option{
		froeling.WithHTTPClient(froeling.InstrumentedHTTPClient(nil, registry)),
		froeling.WithBaseURL(v.GetString("froeling.url")),
		froeling.WithLanguage(v.GetString("froeling.language")),
		froeling.WithLogger(logger.With("component", "froeling")),
	}
	switch session, err := sessions.Load(ctx); {
	case err == nil:
		logger.Debug("reusing stored session", slog.Time("saved", session.UpdatedAt))
		options = append(options, froeling.WithSession(session.Token, session.UserID))
	case !errors.Is(err, store.ErrNotFound):
		logger.Warn("failed to load stored session", slog.Any("err", err))
	}
	return froeling.New(v.GetString("froeling.username"), v.GetString("froeling.password"), options...)
}

func pollerConfiguration(v *viper.Viper) poller.Configuration {
	return poller.Configuration{
		Interval:  v.GetDuration("poller.interval"),
		Timeout:   v.GetDuration("poller.timeout"),
		RateLimit: v.GetDuration("poller.ratelimit"),
	}
}

// task is a long-running part of the monitor. It runs until ctx is done.
type task func(ctx context.Context) error

func makeTasks(
	ctx context.Context,
	v *viper.Viper,
	api entity.Setter,
	p *poller.FroelingPoller,
	publisher homeassistant.Publisher,
	topics homeassistant.Topics,
	version string,
	registry *prometheus.Registry,
	l *slog.Logger,
) ([]task, error) {
	tasks := []task{p.Run}

	// Collector
	coll := &collector.Collector{Poller: p, Logger: l.With("component", "collector")}
	if err := registry.Register(coll); err != nil {
		return nil, fmt.Errorf("collector: %w", err)
	}
	tasks = append(tasks, coll.Run)

	// Prometheus server
	tasks = append(tasks, httpServer(v.GetString("exporter.addr"), promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	// Health endpoint
	h := health.New(p, l.With("component", "health"))
	tasks = append(tasks, h.Run)
	mux := http.NewServeMux()
	mux.Handle("/health", h)
	tasks = append(tasks, httpServer(v.GetString("health.addr"), mux))

	// Notifiers
	notifiers := notifier.Notifiers{notifier.SLogNotifier{Logger: l.With("component", "notifier")}}
	if token := v.GetString("slack.token"); token != "" {
		notifiers = append(notifiers, &notifier.SlackNotifier{
			SlackSender: slack.New(token),
			Logger:      l.With("component", "slack"),
		})
	}

	// Home Assistant
	permitted := v.GetBool("froeling.sendChanges")
	if !permitted {
		l.Warn("changes are disabled. numbers and selects are published as read-only sensors")
	}
	bridge := &homeassistant.Bridge{
		Publisher: publisher,
		Topics:    topics,
		Origin:    homeassistant.OriginConfig{Name: "froeling-monitor", SoftwareVersion: version},
		Projector: entity.Projector{Units: classifier.DefaultUnits(), Permitted: permitted, Logger: l.With("component", "projector")},
		Writer: &entity.Writer{
			API:       api,
			Permitted: permitted,
			Notifier:  notifiers,
			Refresher: p,
			Logger:    l.With("component", "writer"),
		},
		Logger: l.With("component", "homeassistant"),
	}
	tasks = append(tasks, func(ctx context.Context) error { return bridge.Run(ctx, p) })

	// History
	if cfg := historyConfiguration(v); cfg.Enabled() {
		sink, err := history.New(ctx, cfg, l.With("component", "history"))
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, func(ctx context.Context) error {
			defer sink.Close()
			return sink.Run(ctx, p)
		})
	}

	return tasks, nil
}

func historyConfiguration(v *viper.Viper) history.Configuration {
	return history.Configuration{
		URL:    v.GetString("influxdb.url"),
		Token:  v.GetString("influxdb.token"),
		Org:    v.GetString("influxdb.org"),
		Bucket: v.GetString("influxdb.bucket"),
	}
}

// httpServer serves h on addr until ctx is done.
func httpServer(addr string, h http.Handler) task {
	return func(ctx context.Context) error {
		s := http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}
		errCh := make(chan error, 1)
		go func() { errCh <- s.ListenAndServe() }()

		select {
		case err := <-errCh:
			return fmt.Errorf("http server %s: %w", addr, err)
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server %s: shutdown: %w", addr, err)
		}
		return nil
	}
}
