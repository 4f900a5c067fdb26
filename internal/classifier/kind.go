package classifier

import (
	"log/slog"
	"math/bits"
	"strings"
)

// Kind is the type of entity a parameter is projected into. Its string representation is the
// name of the matching Home Assistant platform.
type Kind int

const (
	BinarySensor Kind = iota + 1
	Sensor
	Number
	Select
)

var kindNames = map[Kind]string{
	BinarySensor: "binary_sensor",
	Sensor:       "sensor",
	Number:       "number",
	Select:       "select",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Writable reports whether entities of this kind accept new values.
func (k Kind) Writable() bool {
	return k == Number || k == Select
}

// Kinds is a set of Kind values.
type Kinds uint8

// KindsOf returns a set holding the specified kinds.
func KindsOf(kinds ...Kind) Kinds {
	var k Kinds
	for _, kind := range kinds {
		k = k.with(kind)
	}
	return k
}

func (k Kinds) with(kind Kind) Kinds {
	return k | 1<<kind
}

// Has reports whether kind is in the set.
func (k Kinds) Has(kind Kind) bool {
	return k&(1<<kind) != 0
}

// Len returns the number of kinds in the set.
func (k Kinds) Len() int {
	return bits.OnesCount8(uint8(k))
}

// List returns the kinds in the set, in declaration order.
func (k Kinds) List() []Kind {
	list := make([]Kind, 0, k.Len())
	for _, kind := range []Kind{BinarySensor, Sensor, Number, Select} {
		if k.Has(kind) {
			list = append(list, kind)
		}
	}
	return list
}

func (k Kinds) String() string {
	names := make([]string, 0, k.Len())
	for _, kind := range k.List() {
		names = append(names, kind.String())
	}
	return "[" + strings.Join(names, ",") + "]"
}

func (k Kinds) LogValue() slog.Value {
	return slog.StringValue(k.String())
}
