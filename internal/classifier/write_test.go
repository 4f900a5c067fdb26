package classifier_test

import (
	"testing"

	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/froeling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNumber(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{value: 60, want: "60"},
		{value: 60.9, want: "60"},
		{value: -3.7, want: "-3"},
		{value: 0.4, want: "0"},
		{value: 250, want: "250"},
		{value: -0.4, want: "0"},
		{value: 1e20, want: "100000000000000000000"},
		{value: -1e19, want: "-10000000000000000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifier.ResolveNumber(tt.value), tt.value)
	}
}

func TestResolveOption(t *testing.T) {
	p := enum(true, "0",
		froeling.EnumEntry{Key: "0", Label: "Off"},
		froeling.EnumEntry{Key: "1", Label: "On"},
		froeling.EnumEntry{Key: "2", Label: "On"},
	)

	key, err := classifier.ResolveOption(p, "On")
	require.NoError(t, err)
	assert.Equal(t, "1", key)

	_, err = classifier.ResolveOption(p, "Auto")
	var validationErr *classifier.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Auto is not a valid state for mode", err.Error())
}

func TestResolveWrite(t *testing.T) {
	number := numeric(true, "10", "90", "°C", "60")
	selectParam := enum(true, "0", onOff...)

	tests := []struct {
		name      string
		kind      classifier.Kind
		parameter froeling.Parameter
		command   string
		want      string
		wantErr   assert.ErrorAssertionFunc
	}{
		{name: "number", kind: classifier.Number, parameter: number, command: "65", want: "65", wantErr: assert.NoError},
		{name: "number is truncated", kind: classifier.Number, parameter: number, command: "65.8", want: "65", wantErr: assert.NoError},
		{name: "number out of bounds is not checked", kind: classifier.Number, parameter: number, command: "250", want: "250", wantErr: assert.NoError},
		{name: "large number keeps its sign", kind: classifier.Number, parameter: number, command: "1e20", want: "100000000000000000000", wantErr: assert.NoError},
		{name: "large negative number keeps its sign", kind: classifier.Number, parameter: number, command: "-1e19", want: "-10000000000000000000", wantErr: assert.NoError},
		{name: "number with spaces", kind: classifier.Number, parameter: number, command: " 42 ", want: "42", wantErr: assert.NoError},
		{name: "number not numeric", kind: classifier.Number, parameter: number, command: "hot", wantErr: assert.Error},
		{name: "number NaN", kind: classifier.Number, parameter: number, command: "NaN", wantErr: assert.Error},
		{name: "number Inf", kind: classifier.Number, parameter: number, command: "+Inf", wantErr: assert.Error},
		{name: "select", kind: classifier.Select, parameter: selectParam, command: "On", want: "1", wantErr: assert.NoError},
		{name: "select unknown option", kind: classifier.Select, parameter: selectParam, command: "Auto", wantErr: assert.Error},
		{name: "sensor", kind: classifier.Sensor, parameter: number, command: "1", wantErr: assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifier.ResolveWrite(tt.kind, tt.parameter, tt.command)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveWrite_NotWritable(t *testing.T) {
	_, err := classifier.ResolveWrite(classifier.BinarySensor, numeric(false, "0", "1", "", "1"), "ON")
	assert.ErrorIs(t, err, classifier.ErrNotWritable)
}

func TestSelect_RoundTrip(t *testing.T) {
	p := enum(true, "",
		froeling.EnumEntry{Key: "0", Label: "Off"},
		froeling.EnumEntry{Key: "1", Label: "On"},
		froeling.EnumEntry{Key: "2", Label: "Auto"},
	)

	for _, entry := range p.Values {
		p.Value = froeling.Text(entry.Key)
		rendered := classifier.RenderValue(classifier.Select, p)
		key, err := classifier.ResolveWrite(classifier.Select, p, rendered)
		require.NoError(t, err)
		assert.Equal(t, entry.Key, key)
	}
}
