// Package history writes the numeric parameters of each poller update to InfluxDB.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/clambin/froeling-monitor/internal/froeling"
	"github.com/clambin/froeling-monitor/internal/poller"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

const (
	measurement  = "froeling"
	pingTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

// Configuration of the InfluxDB sink. The sink is disabled if URL is blank.
type Configuration struct {
	URL    string `mapstructure:"url"`
	Token  string `mapstructure:"token"`
	Org    string `mapstructure:"org"`
	Bucket string `mapstructure:"bucket"`
}

func (c Configuration) Enabled() bool {
	return c.URL != ""
}

// PointWriter writes points to a bucket. api.WriteAPIBlocking implements it.
type PointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

// Sink writes a point per numeric parameter for every update it receives.
type Sink struct {
	Writer PointWriter
	Logger *slog.Logger
	client influxdb2.Client
}

// New connects to InfluxDB. It fails if the server doesn't respond to a ping.
func New(ctx context.Context, cfg Configuration, logger *slog.Logger) (*Sink, error) {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if _, err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("influxdb: ping: %w", err)
	}

	return &Sink{
		Writer: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		Logger: logger,
		client: client,
	}, nil
}

// Close releases the connection to InfluxDB.
func (s *Sink) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *Sink) Run(ctx context.Context, p poller.Poller) error {
	s.Logger.Debug("started")
	defer s.Logger.Debug("stopped")

	ch := p.Subscribe()
	defer p.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			if err := s.Write(ctx, update); err != nil {
				s.Logger.Warn("failed to write history", slog.Any("err", err))
			}
		}
	}
}

// Write stores the numeric parameters of an update, timestamped with the time of the poll.
func (s *Sink) Write(ctx context.Context, update poller.Update) error {
	points := Points(update)
	if len(points) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := s.Writer.WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("write %d points: %w", len(points), err)
	}
	s.Logger.Debug("history written", slog.Int("points", len(points)))
	return nil
}

// Points returns a point for each parameter of the update that holds a numeric value.
func Points(update poller.Update) []*write.Point {
	var points []*write.Point
	for _, id := range update.Identities() {
		param := update.Parameters[id]
		if param.Type != froeling.NumValue || param.Values.Len() > 0 {
			continue
		}
		value, err := strconv.ParseFloat(string(param.Value), 64)
		if err != nil {
			continue
		}
		tags := map[string]string{
			"facility":  strconv.Itoa(id.FacilityID),
			"component": id.ComponentID,
			"parameter": id.ParameterID,
			"name":      param.Name,
		}
		if param.Unit != "" {
			tags["unit"] = param.Unit
		}
		points = append(points, write.NewPoint(measurement, tags, map[string]any{"value": value}, update.Timestamp))
	}
	return points
}
