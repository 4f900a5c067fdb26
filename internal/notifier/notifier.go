// Package notifier announces parameter changes sent to the Fröling API.
package notifier

import (
	"context"

	"github.com/clambin/froeling-monitor/internal/classifier"
)

// Event describes a change that was written to a parameter.
type Event struct {
	// Entity is the display name of the changed entity
	Entity   string
	UniqueID string
	Kind     classifier.Kind
	// Value is the value as the user selected it; Raw is the value sent to the API
	Value string
	Raw   string
}

func (e Event) Message() string {
	return e.Entity + " set to " + e.Value
}

type Notifier interface {
	Notify(ctx context.Context, event Event)
}

type Notifiers []Notifier

func (n Notifiers) Notify(ctx context.Context, event Event) {
	for _, l := range n {
		l.Notify(ctx, event)
	}
}
