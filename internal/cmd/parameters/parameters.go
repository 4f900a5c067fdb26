package parameters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/froeling"
	"github.com/clambin/froeling-monitor/internal/poller"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var Cmd = cobra.Command{
	Use:   "parameters",
	Short: "Show the parameters of all facilities and how they are published",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var e Encoder
		switch format, _ := cmd.Flags().GetString("format"); format {
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			e = enc
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			e = enc
		default:
			return fmt.Errorf("invalid format: %q", format)
		}

		logger := slog.Default()
		api := froeling.New(
			viper.GetString("froeling.username"),
			viper.GetString("froeling.password"),
			froeling.WithBaseURL(viper.GetString("froeling.url")),
			froeling.WithLanguage(viper.GetString("froeling.language")),
			froeling.WithLogger(logger.With("component", "froeling")),
		)
		p := poller.New(api, nil, poller.Configuration{
			Timeout:   viper.GetDuration("poller.timeout"),
			RateLimit: viper.GetDuration("poller.ratelimit"),
		}, logger.With("component", "poller"))
		if err := p.Setup(cmd.Context()); err != nil {
			return err
		}
		return ShowParameters(cmd.Context(), p, e)
	},
}

func init() {
	Cmd.Flags().String("format", "yaml", "Output format (yaml, json)")
}

type Encoder interface {
	Encode(any) error
}

// Source returns the facilities and parameters to report on.
//
//go:generate mockery --name Source --with-expecter
type Source interface {
	Index() poller.Index
	Parameters(ctx context.Context) (map[classifier.Identity]froeling.Parameter, error)
}

type facility struct {
	ID         int         `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Generation string      `json:"generation,omitempty" yaml:"generation,omitempty"`
	Components []component `json:"components" yaml:"components"`
}

type component struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Type       string      `json:"type,omitempty" yaml:"type,omitempty"`
	SubType    string      `json:"subType,omitempty" yaml:"subType,omitempty"`
	Parameters []parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

type parameter struct {
	ID          string                 `json:"id" yaml:"id"`
	UniqueID    string                 `json:"uniqueID" yaml:"uniqueID"`
	Name        string                 `json:"name" yaml:"name"`
	DisplayName string                 `json:"displayName" yaml:"displayName"`
	Type        froeling.ParameterType `json:"type" yaml:"type"`
	Editable    bool                   `json:"editable" yaml:"editable"`
	Min         string                 `json:"min,omitempty" yaml:"min,omitempty"`
	Max         string                 `json:"max,omitempty" yaml:"max,omitempty"`
	Unit        string                 `json:"unit,omitempty" yaml:"unit,omitempty"`
	Value       string                 `json:"value" yaml:"value"`
	Options     []string               `json:"options,omitempty" yaml:"options,omitempty"`
	Kinds       []string               `json:"kinds" yaml:"kinds"`
	Diagnosis   string                 `json:"diagnosis,omitempty" yaml:"diagnosis,omitempty"`
}

type report struct {
	Facilities []facility `json:"facilities" yaml:"facilities"`
}

// ShowParameters fetches all parameters once and encodes them, per facility and component, with the kinds
// of entity each parameter is published as.
func ShowParameters(ctx context.Context, src Source, e Encoder) error {
	parameters, err := src.Parameters(ctx)
	if err != nil {
		return fmt.Errorf("parameters: %w", err)
	}

	diagnosis := make(map[classifier.Identity]string)
	for _, f := range classifier.Diagnose(parameters) {
		diagnosis[f.Identity] = f.Message()
	}

	byDevice := make(map[classifier.DeviceKey][]parameter)
	for _, id := range slices.SortedFunc(maps.Keys(parameters), classifier.CompareIdentity) {
		p := parameters[id]
		kinds := make([]string, 0, 1)
		for _, kind := range classifier.Classify(p).List() {
			kinds = append(kinds, kind.String())
		}
		byDevice[id.Device()] = append(byDevice[id.Device()], parameter{
			ID:          id.ParameterID,
			UniqueID:    id.UniqueID(),
			Name:        p.Name,
			DisplayName: p.DisplayName,
			Type:        p.Type,
			Editable:    p.Editable,
			Min:         string(p.MinVal),
			Max:         string(p.MaxVal),
			Unit:        p.Unit,
			Value:       string(p.Value),
			Options:     p.Values.Labels(),
			Kinds:       kinds,
			Diagnosis:   diagnosis[id],
		})
	}

	index := src.Index()
	var r report
	for _, key := range index.Devices() {
		if n := len(r.Facilities); n == 0 || r.Facilities[n-1].ID != key.FacilityID {
			info, _ := index.Facility(key.FacilityID)
			r.Facilities = append(r.Facilities, facility{
				ID:         key.FacilityID,
				Name:       info.Name,
				Generation: info.FacilityGeneration,
			})
		}
		f := &r.Facilities[len(r.Facilities)-1]
		c, _ := index.Component(key)
		f.Components = append(f.Components, component{
			ID:         key.ComponentID,
			Name:       c.DisplayName,
			Type:       c.Type,
			SubType:    c.SubType,
			Parameters: byDevice[key],
		})
	}

	return e.Encode(r)
}
