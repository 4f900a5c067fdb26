// Package homeassistant publishes Fröling parameters as Home Assistant entities over MQTT, using MQTT discovery,
// and hands commands for numbers and selects to the entity writer.
package homeassistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/entity"
	"github.com/clambin/froeling-monitor/internal/poller"
)

type Writer interface {
	Update(update poller.Update)
	Apply(ctx context.Context, kind classifier.Kind, uniqueID string, command string) error
}

// Bridge publishes the entities of each poller update and clears entities that are no longer present.
type Bridge struct {
	Publisher Publisher
	Topics    Topics
	Origin    OriginConfig
	Projector entity.Projector
	Writer    Writer
	Logger    *slog.Logger
	// announced holds the discovery payload of each announced entity. A nil payload means the last announcement failed.
	announced  map[entity.Key][]byte
	facilities map[int][]byte
}

// Run subscribes to command topics and publishes every update received from the poller, until ctx is done.
// It requests a fresh update once subscribed.
func (b *Bridge) Run(ctx context.Context, p poller.Poller) error {
	b.Logger.Debug("started")
	defer b.Logger.Debug("stopped")

	if err := b.Publisher.Subscribe(b.Topics.Commands(), b.commandHandler(ctx)); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	ch := p.Subscribe()
	defer p.Unsubscribe(ch)
	// the poller may have published its first update before we subscribed
	p.Refresh()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			b.Handle(update)
		}
	}
}

// Handle announces new or changed entities, publishes the state of all entities and clears vanished entities.
func (b *Bridge) Handle(update poller.Update) {
	if b.announced == nil {
		b.announced = make(map[entity.Key][]byte)
		b.facilities = make(map[int][]byte)
	}
	if b.Writer != nil {
		b.Writer.Update(update)
	}

	b.announceFacilities(update.Index)

	current := make(map[entity.Key][]byte)
	for _, d := range b.Projector.Project(update) {
		platform := Platform(d)
		key := entity.Key{Kind: platform, UniqueID: d.UniqueID}
		current[key] = b.announce(key, BuildConfig(d, b.Topics, b.Origin))
		if err := b.Publisher.Publish(b.Topics.State(platform, d.UniqueID), true, []byte(d.Value)); err != nil {
			b.Logger.Warn("failed to publish state", slog.Any("entity", d), slog.Any("err", err))
		}
	}

	for _, key := range slices.SortedFunc(maps.Keys(b.announced), entity.CompareKey) {
		if _, ok := current[key]; !ok {
			b.clear(key)
		}
	}
	b.announced = current
}

func (b *Bridge) announce(key entity.Key, cfg Config) []byte {
	payload, err := json.Marshal(cfg)
	if err != nil {
		b.Logger.Error("failed to encode discovery config", slog.String("id", key.UniqueID), slog.Any("err", err))
		return nil
	}
	if bytes.Equal(b.announced[key], payload) {
		return payload
	}
	if err = b.Publisher.Publish(b.Topics.Discovery(key.Kind, key.UniqueID), true, payload); err != nil {
		b.Logger.Warn("failed to announce entity", slog.String("id", key.UniqueID), slog.String("platform", key.Kind.String()), slog.Any("err", err))
		return nil
	}
	b.Logger.Debug("entity announced", slog.String("id", key.UniqueID), slog.String("platform", key.Kind.String()))
	return payload
}

func (b *Bridge) clear(key entity.Key) {
	for _, topic := range []string{b.Topics.Discovery(key.Kind, key.UniqueID), b.Topics.State(key.Kind, key.UniqueID)} {
		if err := b.Publisher.Publish(topic, true, nil); err != nil {
			b.Logger.Warn("failed to clear entity", slog.String("topic", topic), slog.Any("err", err))
		}
	}
	b.Logger.Info("entity removed", slog.String("id", key.UniqueID), slog.String("platform", key.Kind.String()))
}

func (b *Bridge) announceFacilities(index poller.Index) {
	for _, id := range slices.Sorted(maps.Keys(index.Facilities)) {
		cfg := FacilityConfig(entity.NewFacility(id, index.Facilities[id]), b.Topics, b.Origin)
		payload, err := json.Marshal(cfg)
		if err != nil || bytes.Equal(b.facilities[id], payload) {
			continue
		}
		if err = b.Publisher.Publish(b.Topics.Discovery(classifier.BinarySensor, cfg.UniqueID), true, payload); err != nil {
			b.Logger.Warn("failed to announce facility", slog.Int("facility", id), slog.Any("err", err))
			continue
		}
		b.facilities[id] = payload
	}
}

func (b *Bridge) commandHandler(ctx context.Context) MessageHandler {
	return func(topic string, payload []byte) {
		kind, uniqueID, ok := b.Topics.ParseCommand(topic)
		if !ok {
			b.Logger.Warn("ignoring message on unexpected topic", slog.String("topic", topic))
			return
		}
		err := b.Writer.Apply(ctx, kind, uniqueID, string(payload))
		var validationErr *classifier.ValidationError
		switch {
		case err == nil:
		case errors.As(err, &validationErr):
			b.Logger.Warn("invalid command", slog.String("id", uniqueID), slog.Any("err", err))
		default:
			b.Logger.Error("failed to apply command", slog.String("id", uniqueID), slog.Any("err", err))
		}
	}
}
