package classifier

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/clambin/froeling-monitor/internal/froeling"
)

// ValidationError is returned when a new value for a parameter is not acceptable.
type ValidationError struct {
	Value     string
	Parameter string
}

func (e *ValidationError) Error() string {
	return e.Value + " is not a valid state for " + e.Parameter
}

// ErrNotWritable is returned when resolving a write for a kind that doesn't accept new values.
var ErrNotWritable = errors.New("entity is read-only")

// ResolveNumber converts a number's new display value into the raw value: the value is truncated toward zero
// and sent in its decimal form. Bounds are not checked.
func ResolveNumber(value float64) string {
	value = math.Trunc(value)
	if value == 0 {
		// avoids "-0"
		return "0"
	}
	return strconv.FormatFloat(value, 'f', 0, 64)
}

// ResolveOption converts a selected option into the raw value: the first key in the parameter's value map
// whose label matches the option.
func ResolveOption(p froeling.Parameter, option string) (string, error) {
	key, ok := p.Values.Key(option)
	if !ok {
		return "", &ValidationError{Value: option, Parameter: p.Name}
	}
	return key, nil
}

// ResolveWrite converts a command for an entity of the specified kind into the raw value to send upstream.
func ResolveWrite(kind Kind, p froeling.Parameter, command string) (string, error) {
	switch kind {
	case Number:
		value, err := strconv.ParseFloat(strings.TrimSpace(command), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return "", &ValidationError{Value: command, Parameter: p.Name}
		}
		return ResolveNumber(value), nil
	case Select:
		return ResolveOption(p, command)
	default:
		return "", fmt.Errorf("%s: %w", kind, ErrNotWritable)
	}
}
