package entity_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/entity"
	"github.com/clambin/froeling-monitor/internal/froeling"
	"github.com/clambin/froeling-monitor/internal/poller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	boilerKey = classifier.DeviceKey{FacilityID: 1, ComponentID: "boiler"}
	index     = poller.Index{
		Facilities: map[int]froeling.Facility{1: {ID: 1, Name: "PE1 Pellet", FacilityGeneration: "GEN_2", EquipmentNumber: "100200"}},
		Components: map[classifier.DeviceKey]froeling.Component{
			boilerKey: {FacilityID: 1, ID: "boiler", DisplayName: "Kessel Süd", Type: "BOILER", SubType: "PE1"},
		},
	}
)

func id(parameterID string) classifier.Identity {
	return classifier.Identity{FacilityID: 1, ComponentID: "boiler", ParameterID: parameterID}
}

func testUpdate() poller.Update {
	return poller.Update{
		Index: index,
		Parameters: map[classifier.Identity]froeling.Parameter{
			id("temp"): {ID: "temp", Name: "boilerTemp", DisplayName: "Boiler temperature", Type: froeling.NumValue, MinVal: "0", MaxVal: "120", Unit: "°C", Value: "65"},
			id("flame"): {ID: "flame", Name: "flame", DisplayName: "Flame", Type: froeling.NumValue, MinVal: "0", MaxVal: "1", Value: "1"},
			id("setpoint"): {ID: "setpoint", Name: "setpoint", DisplayName: "Setpoint", Type: froeling.NumValue, Editable: true, MinVal: "10", MaxVal: "90", Unit: "°C", Value: "70"},
			id("mode"): {ID: "mode", Name: "mode", DisplayName: "Mode", Type: froeling.StringValue, Editable: true, Value: "1",
				Values: froeling.EnumMap{{Key: "0", Label: "Off"}, {Key: "1", Label: "On"}},
			},
			id("broken"): {ID: "broken", Name: "broken", DisplayName: "Broken", Type: froeling.NumValue, Editable: true, MinVal: "low", MaxVal: "90", Value: "70"},
			id("pump"): {ID: "pump", Name: "pump", DisplayName: "Pump", Type: froeling.NumValue, Editable: true, MinVal: "0", MaxVal: "1", Value: "1"},
		},
		Timestamp: time.Now(),
	}
}

func TestProjector_Project(t *testing.T) {
	p := entity.Projector{Units: classifier.DefaultUnits(), Permitted: true, Logger: slog.New(slog.DiscardHandler)}
	descriptions := p.Project(testUpdate())

	// broken: malformed bounds. pump: not registered
	require.Len(t, descriptions, 4)

	byID := make(map[string]entity.Description)
	for _, d := range descriptions {
		byID[d.UniqueID] = d
	}

	flame := byID["1_boiler_flame"]
	assert.Equal(t, classifier.BinarySensor, flame.Kind)
	assert.Equal(t, classifier.StateOn, flame.Value)
	assert.False(t, flame.Writable)

	temp := byID["1_boiler_temp"]
	assert.Equal(t, classifier.Sensor, temp.Kind)
	assert.Equal(t, "Boiler temperature", temp.Name)
	assert.Equal(t, "1_kessel_sud_boilertemp", temp.ObjectID)
	assert.Equal(t, "65", temp.Value)
	assert.Equal(t, classifier.Presentation{DeviceClass: classifier.Temperature, Unit: "°C", Numeric: true}, temp.Presentation)
	assert.Equal(t, entity.Device{
		Key:          boilerKey,
		Name:         "Kessel Süd",
		Model:        "BOILER",
		ModelID:      "PE1",
		SerialNumber: "boiler",
		Facility:     entity.Facility{ID: 1, Name: "PE1 Pellet", Model: "PE1 Pellet GEN_2", SerialNumber: "100200"},
	}, temp.Device)
	assert.Equal(t, "component_1_boiler", temp.Device.Identifier())
	assert.Equal(t, "facility_1", temp.Device.Facility.Identifier())

	setpoint := byID["1_boiler_setpoint"]
	assert.Equal(t, classifier.Number, setpoint.Kind)
	assert.True(t, setpoint.Writable)
	assert.Equal(t, 10.0, setpoint.Presentation.Min)
	assert.Equal(t, 90.0, setpoint.Presentation.Max)

	mode := byID["1_boiler_mode"]
	assert.Equal(t, classifier.Select, mode.Kind)
	assert.Equal(t, "On", mode.Value)
	assert.Equal(t, []string{"Off", "On"}, mode.Presentation.Options)
	assert.True(t, mode.Writable)

	assert.Equal(t, []entity.Key{
		{Kind: classifier.BinarySensor, UniqueID: "1_boiler_flame"},
		{Kind: classifier.Select, UniqueID: "1_boiler_mode"},
		{Kind: classifier.Number, UniqueID: "1_boiler_setpoint"},
		{Kind: classifier.Sensor, UniqueID: "1_boiler_temp"},
	}, entity.Keys(descriptions))
}

func TestProjector_Project_NotPermitted(t *testing.T) {
	p := entity.Projector{Units: classifier.DefaultUnits(), Permitted: false, Logger: slog.New(slog.DiscardHandler)}
	descriptions := p.Project(testUpdate())
	require.Len(t, descriptions, 4)
	for _, d := range descriptions {
		assert.False(t, d.Writable, d.UniqueID)
	}
}

func TestProjector_Project_UnknownComponent(t *testing.T) {
	update := poller.Update{
		Parameters: map[classifier.Identity]froeling.Parameter{
			{FacilityID: 2, ComponentID: "hk1", ParameterID: "t"}: {ID: "t", Name: "flow", Type: froeling.NumValue, Unit: "°C", Value: "30"},
		},
	}
	p := entity.Projector{Units: classifier.DefaultUnits(), Logger: slog.New(slog.DiscardHandler)}
	descriptions := p.Project(update)
	require.Len(t, descriptions, 1)
	assert.Equal(t, "hk1", descriptions[0].Device.Name)
	assert.Equal(t, "2", descriptions[0].Device.Facility.Name)
	assert.Equal(t, "2_hk1_flow", descriptions[0].ObjectID)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1_Kessel_boilerTemp", want: "1_kessel_boilertemp"},
		{in: "1_Heizkreis 1_Vorlauf-Temp.", want: "1_heizkreis_1_vorlauf_temp"},
		{in: "1_Puffer Größe_x", want: "1_puffer_grosse_x"},
		{in: "  Über  alles  ", want: "uber_alles"},
		{in: "Straße", want: "strasse"},
		{in: "___", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.Slugify(tt.in))
		})
	}
}
