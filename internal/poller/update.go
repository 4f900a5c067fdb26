package poller

import (
	"cmp"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/froeling"
)

// Index holds the facilities and components found at setup. It doesn't change while the poller runs.
type Index struct {
	Facilities map[int]froeling.Facility
	Components map[classifier.DeviceKey]froeling.Component
}

// Facility returns the facility with the specified ID.
func (i Index) Facility(id int) (froeling.Facility, bool) {
	f, ok := i.Facilities[id]
	return f, ok
}

// Component returns the component that a device key refers to.
func (i Index) Component(key classifier.DeviceKey) (froeling.Component, bool) {
	c, ok := i.Components[key]
	return c, ok
}

// Devices returns the keys of all components, ordered by facility and component.
func (i Index) Devices() []classifier.DeviceKey {
	return slices.SortedFunc(maps.Keys(i.Components), func(a, b classifier.DeviceKey) int {
		if c := cmp.Compare(a.FacilityID, b.FacilityID); c != 0 {
			return c
		}
		return cmp.Compare(a.ComponentID, b.ComponentID)
	})
}

func (i Index) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("facilities", len(i.Facilities)),
		slog.Int("components", len(i.Components)),
	)
}

// Update is the snapshot of all parameters published after each successful poll.
type Update struct {
	Index      Index
	Parameters map[classifier.Identity]froeling.Parameter
	Timestamp  time.Time
}

// Identities returns the identities of all parameters in the update, in order.
func (u Update) Identities() []classifier.Identity {
	return slices.SortedFunc(maps.Keys(u.Parameters), classifier.CompareIdentity)
}

func (u Update) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("parameters", len(u.Parameters)),
		slog.Time("timestamp", u.Timestamp),
	)
}
