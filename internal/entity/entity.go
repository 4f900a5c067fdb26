// Package entity projects the parameters of a poller.Update into entity descriptions and applies commands
// for writable entities.
package entity

import (
	"cmp"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/froeling"
	"github.com/clambin/froeling-monitor/internal/poller"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Device describes the component an entity belongs to, and the facility that holds the component.
type Device struct {
	Key          classifier.DeviceKey
	Name         string
	Model        string
	ModelID      string
	SerialNumber string
	Facility     Facility
}

// Facility is the parent device of all components of a facility.
type Facility struct {
	ID           int
	Name         string
	Model        string
	SerialNumber string
}

// Identifier returns the facility's device identifier.
func (f Facility) Identifier() string {
	return "facility_" + strconv.Itoa(f.ID)
}

// Identifier returns the component's device identifier.
func (d Device) Identifier() string {
	return "component_" + d.Key.String()
}

// Description holds everything needed to present one parameter as an entity of one kind.
type Description struct {
	Kind         classifier.Kind
	Identity     classifier.Identity
	UniqueID     string
	ObjectID     string
	Name         string
	Device       Device
	Presentation classifier.Presentation
	Value        string
	// Writable is set for numbers and selects when changes may be sent to the API
	Writable bool
}

func (d Description) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", d.Kind.String()),
		slog.String("id", d.UniqueID),
		slog.String("value", d.Value),
	)
}

// Projector turns updates into entity descriptions.
type Projector struct {
	Units     classifier.UnitTable
	Permitted bool
	Logger    *slog.Logger
}

// Project returns one description per identity and kind, ordered by identity and kind. Parameters that can't
// be presented (e.g. a number with malformed bounds) are logged and skipped.
func (p Projector) Project(update poller.Update) []Description {
	var descriptions []Description
	for _, id := range update.Identities() {
		param := update.Parameters[id]
		for _, kind := range classifier.Classify(param).List() {
			presentation, err := classifier.BuildPresentation(kind, param, p.Units)
			if err != nil {
				p.Logger.Warn("invalid parameter. skipping", slog.Any("id", id), slog.String("kind", kind.String()), slog.Any("err", err))
				continue
			}
			device := makeDevice(update.Index, id.Device())
			descriptions = append(descriptions, Description{
				Kind:         kind,
				Identity:     id,
				UniqueID:     id.UniqueID(),
				ObjectID:     Slugify(strconv.Itoa(id.FacilityID) + "_" + device.Name + "_" + param.Name),
				Name:         param.DisplayName,
				Device:       device,
				Presentation: presentation,
				Value:        classifier.RenderValue(kind, param),
				Writable:     kind.Writable() && p.Permitted,
			})
		}
	}
	return descriptions
}

func makeDevice(index poller.Index, key classifier.DeviceKey) Device {
	component, _ := index.Component(key)
	facility, _ := index.Facility(key.FacilityID)
	return Device{
		Key:          key,
		Name:         cmp.Or(component.DisplayName, key.ComponentID),
		Model:        component.Type,
		ModelID:      component.SubType,
		SerialNumber: key.ComponentID,
		Facility:     NewFacility(key.FacilityID, facility),
	}
}

// NewFacility returns the parent device of a facility's components.
func NewFacility(id int, f froeling.Facility) Facility {
	return Facility{
		ID:           id,
		Name:         cmp.Or(f.Name, strconv.Itoa(id)),
		Model:        strings.TrimSpace(f.Name + " " + f.FacilityGeneration),
		SerialNumber: string(f.EquipmentNumber),
	}
}

// Key identifies a description: the same parameter may be projected into more than one kind.
type Key struct {
	Kind     classifier.Kind
	UniqueID string
}

// Key returns the description's key.
func (d Description) Key() Key {
	return Key{Kind: d.Kind, UniqueID: d.UniqueID}
}

// CompareKey orders keys by unique ID and kind.
func CompareKey(a, b Key) int {
	if c := cmp.Compare(a.UniqueID, b.UniqueID); c != 0 {
		return c
	}
	return cmp.Compare(a.Kind, b.Kind)
}

// Keys returns the keys of the descriptions, in order.
func Keys(descriptions []Description) []Key {
	keys := make([]Key, len(descriptions))
	for i, d := range descriptions {
		keys[i] = d.Key()
	}
	slices.SortFunc(keys, CompareKey)
	return keys
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns a name into an object ID: lower case ASCII letters and digits, separated by single underscores.
func Slugify(s string) string {
	s = strings.ReplaceAll(s, "ß", "ss")
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	var b strings.Builder
	pendingSeparator := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingSeparator && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSeparator = false
			b.WriteRune(r)
			continue
		}
		pendingSeparator = true
	}
	return b.String()
}
