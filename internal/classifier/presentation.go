package classifier

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/clambin/froeling-monitor/internal/froeling"
)

// DeviceClass is the Home Assistant device class of an entity.
type DeviceClass string

const (
	NoDeviceClass DeviceClass = ""
	Temperature   DeviceClass = "temperature"
	Duration      DeviceClass = "duration"
	Enum          DeviceClass = "enum"
)

// UnitMapping is the device class and unit of measurement that a Fröling unit maps to.
type UnitMapping struct {
	DeviceClass DeviceClass
	Unit        string
}

// UnitTable maps Fröling units to device classes. A UnitTable is immutable once created.
type UnitTable struct {
	mappings map[string]UnitMapping
}

// NewUnitTable returns a UnitTable with the specified mappings.
func NewUnitTable(mappings map[string]UnitMapping) UnitTable {
	m := make(map[string]UnitMapping, len(mappings))
	for unit, mapping := range mappings {
		m[unit] = mapping
	}
	return UnitTable{mappings: m}
}

// DefaultUnits returns the units that have a Home Assistant device class.
func DefaultUnits() UnitTable {
	return NewUnitTable(map[string]UnitMapping{
		"°C": {DeviceClass: Temperature, Unit: "°C"},
		"°F": {DeviceClass: Temperature, Unit: "°F"},
		"h":  {DeviceClass: Duration, Unit: "h"},
		"":   {},
	})
}

// Lookup returns the mapping for a unit. Units without a mapping pass through as a bare unit, without device class.
func (t UnitTable) Lookup(unit string) UnitMapping {
	if mapping, ok := t.mappings[unit]; ok {
		return mapping
	}
	return UnitMapping{Unit: unit}
}

// Presentation holds the attributes of an entity that depend on its kind.
type Presentation struct {
	DeviceClass DeviceClass `json:"device_class,omitempty" yaml:"deviceClass,omitempty"`
	Unit        string      `json:"unit,omitempty" yaml:"unit,omitempty"`
	// Numeric marks sensors that report a measurement
	Numeric bool     `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	Min     float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max     float64  `json:"max,omitempty" yaml:"max,omitempty"`
	Step    float64  `json:"step,omitempty" yaml:"step,omitempty"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// ErrMalformedBounds is returned when a number's min or max value cannot be parsed.
var ErrMalformedBounds = errors.New("malformed bounds")

// BuildPresentation computes the presentation of a parameter as an entity of the specified kind.
// It returns ErrMalformedBounds if a number's bounds are not numeric. The entity should not be created in that case.
func BuildPresentation(kind Kind, p froeling.Parameter, units UnitTable) (Presentation, error) {
	switch kind {
	case BinarySensor:
		return Presentation{}, nil
	case Sensor:
		if p.Type == froeling.StringValue {
			return Presentation{DeviceClass: Enum, Options: p.Values.Labels()}, nil
		}
		mapping := units.Lookup(p.Unit)
		return Presentation{DeviceClass: mapping.DeviceClass, Unit: mapping.Unit, Numeric: true}, nil
	case Number:
		minVal, err := parseBound(p.MinVal)
		if err != nil {
			return Presentation{}, fmt.Errorf("%s: min: %w", p.Name, err)
		}
		maxVal, err := parseBound(p.MaxVal)
		if err != nil {
			return Presentation{}, fmt.Errorf("%s: max: %w", p.Name, err)
		}
		mapping := units.Lookup(p.Unit)
		return Presentation{DeviceClass: mapping.DeviceClass, Unit: mapping.Unit, Min: minVal, Max: maxVal, Step: 1}, nil
	case Select:
		return Presentation{Options: p.Values.Labels()}, nil
	default:
		return Presentation{}, fmt.Errorf("invalid kind: %d", kind)
	}
}

func parseBound(s froeling.Text) (float64, error) {
	v, err := strconv.ParseFloat(string(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedBounds, s)
	}
	return v, nil
}

const (
	StateOn  = "ON"
	StateOff = "OFF"
)

// IsOn reports the state of a binary sensor: only the raw value "1" is on.
func IsOn(p froeling.Parameter) bool {
	return p.Value == "1"
}

// RenderValue returns the value to display for a parameter projected as the specified kind.
// Sensors and selects show the label of the raw value if the parameter's value map has one.
// Binary sensors report StateOn or StateOff.
func RenderValue(kind Kind, p froeling.Parameter) string {
	switch kind {
	case BinarySensor:
		if IsOn(p) {
			return StateOn
		}
		return StateOff
	case Sensor, Select:
		if label, ok := p.Values.Lookup(string(p.Value)); ok {
			return label
		}
	}
	return string(p.Value)
}
