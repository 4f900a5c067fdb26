package entity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/froeling"
	"github.com/clambin/froeling-monitor/internal/notifier"
	"github.com/clambin/froeling-monitor/internal/poller"
)

// ErrUnknownEntity is returned when a command refers to an entity that isn't part of the last update.
var ErrUnknownEntity = errors.New("unknown entity")

type Setter interface {
	SetParameter(ctx context.Context, facilityID int, parameterID string, value string) error
}

type Refresher interface {
	Refresh()
}

// Writer applies commands for numbers and selects to the API, using the parameters of the last update.
type Writer struct {
	API       Setter
	Permitted bool
	Notifier  notifier.Notifier
	Refresher Refresher
	Logger    *slog.Logger
	lock      sync.RWMutex
	ids       map[string]classifier.Identity
	update    poller.Update
}

// Update sets the parameters that subsequent commands are resolved against.
func (w *Writer) Update(update poller.Update) {
	ids := make(map[string]classifier.Identity, len(update.Parameters))
	for id := range update.Parameters {
		ids[id.UniqueID()] = id
	}
	w.lock.Lock()
	defer w.lock.Unlock()
	w.update = update
	w.ids = ids
}

func (w *Writer) lookup(uniqueID string) (classifier.Identity, froeling.Parameter, bool) {
	w.lock.RLock()
	defer w.lock.RUnlock()
	id, ok := w.ids[uniqueID]
	if !ok {
		return classifier.Identity{}, froeling.Parameter{}, false
	}
	return id, w.update.Parameters[id], true
}

// Apply sends the command's value to the parameter behind the entity. If changes are not permitted,
// the command is logged and dropped. Commands that don't resolve to a valid value return a *classifier.ValidationError.
func (w *Writer) Apply(ctx context.Context, kind classifier.Kind, uniqueID string, command string) error {
	if !w.Permitted {
		w.Logger.Info("changes are disabled. ignoring command", slog.String("id", uniqueID), slog.String("kind", kind.String()), slog.String("command", command))
		return nil
	}

	id, param, ok := w.lookup(uniqueID)
	if !ok || !classifier.Classify(param).Has(kind) {
		return fmt.Errorf("%s %s: %w", kind, uniqueID, ErrUnknownEntity)
	}

	value, err := classifier.ResolveWrite(kind, param, command)
	if err != nil {
		return err
	}

	w.Logger.Info("new value", slog.String("name", param.DisplayName), slog.String("kind", kind.String()), slog.String("value", command), slog.String("raw", value))
	if err = w.API.SetParameter(ctx, id.FacilityID, string(param.ID), value); err != nil {
		return fmt.Errorf("set %s: %w", uniqueID, err)
	}

	if w.Notifier != nil {
		w.Notifier.Notify(ctx, notifier.Event{
			Entity:   param.DisplayName,
			UniqueID: uniqueID,
			Kind:     kind,
			Value:    command,
			Raw:      value,
		})
	}
	if w.Refresher != nil {
		w.Refresher.Refresh()
	}
	return nil
}
