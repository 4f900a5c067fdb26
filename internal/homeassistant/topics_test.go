package homeassistant_test

import (
	"testing"

	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/homeassistant"
	"github.com/stretchr/testify/assert"
)

var topics = homeassistant.Topics{DiscoveryPrefix: "homeassistant", BaseTopic: "froeling", NodeID: "froeling"}

func TestTopics(t *testing.T) {
	assert.Equal(t, "homeassistant/number/froeling/1_boiler_setpoint/config", topics.Discovery(classifier.Number, "1_boiler_setpoint"))
	assert.Equal(t, "froeling/sensor/1_boiler_temp/state", topics.State(classifier.Sensor, "1_boiler_temp"))
	assert.Equal(t, "froeling/select/1_boiler_mode/set", topics.Command(classifier.Select, "1_boiler_mode"))
	assert.Equal(t, "froeling/status", topics.Availability())
	assert.Equal(t, "froeling/+/+/set", topics.Commands())
}

func TestTopics_ParseCommand(t *testing.T) {
	tests := []struct {
		topic    string
		wantKind classifier.Kind
		wantID   string
		wantOK   assert.BoolAssertionFunc
	}{
		{topic: "froeling/number/1_boiler_setpoint/set", wantKind: classifier.Number, wantID: "1_boiler_setpoint", wantOK: assert.True},
		{topic: "froeling/select/1_boiler_mode/set", wantKind: classifier.Select, wantID: "1_boiler_mode", wantOK: assert.True},
		{topic: "froeling/sensor/1_boiler_temp/set", wantOK: assert.False},
		{topic: "froeling/number/1_boiler_setpoint/state", wantOK: assert.False},
		{topic: "froeling/number//set", wantOK: assert.False},
		{topic: "other/number/1_boiler_setpoint/set", wantOK: assert.False},
		{topic: "froeling/number/a/b/set", wantOK: assert.False},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			kind, id, ok := topics.ParseCommand(tt.topic)
			tt.wantOK(t, ok)
			if ok {
				assert.Equal(t, tt.wantKind, kind)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestTopics_RoundTrip(t *testing.T) {
	for _, kind := range []classifier.Kind{classifier.Number, classifier.Select} {
		gotKind, gotID, ok := topics.ParseCommand(topics.Command(kind, "1_c_p"))
		assert.True(t, ok)
		assert.Equal(t, kind, gotKind)
		assert.Equal(t, "1_c_p", gotID)
	}
}
