// Package classifier decides how a Fröling parameter is presented as a Home Assistant entity.
//
// Classify maps a parameter's metadata onto zero or more entity kinds:
//
//	boolean-like   NumValueObject, read-only, min "0", max "1", no unit  -> binary sensor
//	plain sensor   any supported type, read-only, not boolean-like       -> sensor
//	number         NumValueObject, editable, not boolean-like            -> number
//	select         StringValueObject, editable, non-empty value map      -> select
//
// A parameter matching no rule, or more than one, is a data-quality condition that Diagnose reports.
// BuildPresentation, RenderValue and the Resolve functions compute the entity's attributes, its state
// and the raw value to send upstream when the user changes it.
package classifier

import "github.com/clambin/froeling-monitor/internal/froeling"

// Classify returns the kinds of entity a parameter should be projected into. Each rule is evaluated
// independently, so the result may hold zero, one, or more kinds.
func Classify(p froeling.Parameter) Kinds {
	var kinds Kinds
	if isBinarySensor(p) {
		kinds = kinds.with(BinarySensor)
	}
	if isSensor(p) {
		kinds = kinds.with(Sensor)
	}
	if isNumber(p) {
		kinds = kinds.with(Number)
	}
	if isSelect(p) {
		kinds = kinds.with(Select)
	}
	return kinds
}

// isBooleanLike matches a structural pattern, not a type tag: bounds and unit are compared as exact strings.
func isBooleanLike(p froeling.Parameter) bool {
	return p.MinVal == "0" && p.MaxVal == "1" && p.Unit == ""
}

func isBinarySensor(p froeling.Parameter) bool {
	return p.Type == froeling.NumValue && !p.Editable && isBooleanLike(p)
}

func isSensor(p froeling.Parameter) bool {
	if p.Type != froeling.NumValue && p.Type != froeling.StringValue {
		return false
	}
	return !p.Editable && !isBooleanLike(p)
}

func isNumber(p froeling.Parameter) bool {
	return p.Type == froeling.NumValue && p.Editable && !isBooleanLike(p)
}

// isSelect requires a non-empty value map: without one there are no options to choose from.
func isSelect(p froeling.Parameter) bool {
	return p.Type == froeling.StringValue && p.Editable && p.Values.Len() > 0
}
