package parameters_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/cmd/parameters"
	"github.com/clambin/froeling-monitor/internal/cmd/parameters/mocks"
	"github.com/clambin/froeling-monitor/internal/froeling"
	"github.com/clambin/froeling-monitor/internal/poller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func id(parameterID string) classifier.Identity {
	return classifier.Identity{FacilityID: 1, ComponentID: "boiler", ParameterID: parameterID}
}

func newSource(t *testing.T, ctx context.Context) *mocks.Source {
	s := mocks.NewSource(t)
	s.EXPECT().Index().Return(poller.Index{
		Facilities: map[int]froeling.Facility{1: {ID: 1, Name: "PE1", FacilityGeneration: "GEN_2"}},
		Components: map[classifier.DeviceKey]froeling.Component{
			{FacilityID: 1, ComponentID: "boiler"}: {ID: "boiler", DisplayName: "Boiler", Type: "BOILER", SubType: "PE1"},
		},
	})
	s.EXPECT().Parameters(ctx).Return(map[classifier.Identity]froeling.Parameter{
		id("temp"): {ID: "temp", Name: "boilerTemp", DisplayName: "Boiler temperature", Type: froeling.NumValue, MinVal: "0", MaxVal: "120", Unit: "°C", Value: "65"},
		id("pump"): {ID: "pump", Name: "pump", DisplayName: "Pump", Type: froeling.NumValue, Editable: true, MinVal: "0", MaxVal: "1", Value: "1"},
		id("mode"): {ID: "mode", Name: "mode", DisplayName: "Mode", Type: froeling.StringValue, Editable: true, Value: "1",
			Values: froeling.EnumMap{{Key: "0", Label: "Off"}, {Key: "1", Label: "On"}},
		},
	}, nil)
	return s
}

func TestShowParameters_JSON(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	require.NoError(t, parameters.ShowParameters(ctx, newSource(t, ctx), json.NewEncoder(&out)))

	assert.JSONEq(t, `{"facilities":[{"id":1,"name":"PE1","generation":"GEN_2","components":[{
		"id":"boiler","name":"Boiler","type":"BOILER","subType":"PE1","parameters":[
			{"id":"mode","uniqueID":"1_boiler_mode","name":"mode","displayName":"Mode","type":"StringValueObject","editable":true,"value":"1","options":["Off","On"],"kinds":["select"]},
			{"id":"pump","uniqueID":"1_boiler_pump","name":"pump","displayName":"Pump","type":"NumValueObject","editable":true,"min":"0","max":"1","value":"1","kinds":[],"diagnosis":"parameter not registered"},
			{"id":"temp","uniqueID":"1_boiler_temp","name":"boilerTemp","displayName":"Boiler temperature","type":"NumValueObject","editable":false,"min":"0","max":"120","unit":"°C","value":"65","kinds":["sensor"]}
		]}]}]}`, out.String())
}

func TestShowParameters_YAML(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	require.NoError(t, parameters.ShowParameters(ctx, newSource(t, ctx), yaml.NewEncoder(&out)))

	var report struct {
		Facilities []struct {
			ID         int
			Components []struct {
				ID         string
				Parameters []struct {
					UniqueID  string `yaml:"uniqueID"`
					Kinds     []string
					Diagnosis string
				}
			}
		}
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Facilities, 1)
	require.Len(t, report.Facilities[0].Components, 1)
	params := report.Facilities[0].Components[0].Parameters
	require.Len(t, params, 3)
	assert.Equal(t, "1_boiler_pump", params[1].UniqueID)
	assert.Empty(t, params[1].Kinds)
	assert.Equal(t, "parameter not registered", params[1].Diagnosis)
	assert.Equal(t, []string{"sensor"}, params[2].Kinds)
}

func TestShowParameters_Failure(t *testing.T) {
	ctx := context.Background()
	s := mocks.NewSource(t)
	s.EXPECT().Parameters(ctx).Return(nil, errors.New("fail"))

	var out bytes.Buffer
	assert.Error(t, parameters.ShowParameters(ctx, s, json.NewEncoder(&out)))
	assert.Empty(t, out.String())
}
