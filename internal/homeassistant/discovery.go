package homeassistant

import (
	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/entity"
)

const (
	Manufacturer = "Fröling"

	payloadOnline  = "online"
	payloadOffline = "offline"
)

// Config is the discovery message of one entity.
type Config struct {
	Name                      string       `json:"name"`
	UniqueID                  string       `json:"unique_id"`
	ObjectID                  string       `json:"object_id"`
	StateTopic                string       `json:"state_topic"`
	CommandTopic              string       `json:"command_topic,omitempty"`
	AvailabilityTopic         string       `json:"availability_topic"`
	DeviceClass               string       `json:"device_class,omitempty"`
	UnitOfMeasurement         string       `json:"unit_of_measurement,omitempty"`
	StateClass                string       `json:"state_class,omitempty"`
	SuggestedDisplayPrecision *int         `json:"suggested_display_precision,omitempty"`
	Options                   []string     `json:"options,omitempty"`
	Min                       *float64     `json:"min,omitempty"`
	Max                       *float64     `json:"max,omitempty"`
	Step                      float64      `json:"step,omitempty"`
	Mode                      string       `json:"mode,omitempty"`
	PayloadOn                 string       `json:"payload_on,omitempty"`
	PayloadOff                string       `json:"payload_off,omitempty"`
	Device                    DeviceConfig `json:"device"`
	Origin                    OriginConfig `json:"origin"`
}

type DeviceConfig struct {
	Identifiers  []string `json:"identifiers"`
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model,omitempty"`
	ModelID      string   `json:"model_id,omitempty"`
	SerialNumber string   `json:"serial_number,omitempty"`
	ViaDevice    string   `json:"via_device,omitempty"`
}

type OriginConfig struct {
	Name            string `json:"name"`
	SoftwareVersion string `json:"sw_version,omitempty"`
}

// Platform returns the Home Assistant platform an entity is announced on. Numbers and selects that
// don't accept changes are announced as sensors, as Home Assistant requires a command topic for both.
func Platform(d entity.Description) classifier.Kind {
	if d.Kind.Writable() && !d.Writable {
		return classifier.Sensor
	}
	return d.Kind
}

// BuildConfig returns the discovery message for an entity description.
func BuildConfig(d entity.Description, topics Topics, origin OriginConfig) Config {
	platform := Platform(d)
	cfg := Config{
		Name:              d.Name,
		UniqueID:          d.UniqueID,
		ObjectID:          d.ObjectID,
		StateTopic:        topics.State(platform, d.UniqueID),
		AvailabilityTopic: topics.Availability(),
		DeviceClass:       string(d.Presentation.DeviceClass),
		UnitOfMeasurement: d.Presentation.Unit,
		Device: DeviceConfig{
			Identifiers:  []string{topics.NodeID + "_" + d.Device.Identifier()},
			Name:         d.Device.Name,
			Manufacturer: Manufacturer,
			Model:        d.Device.Model,
			ModelID:      d.Device.ModelID,
			SerialNumber: d.Device.SerialNumber,
			ViaDevice:    topics.NodeID + "_" + d.Device.Facility.Identifier(),
		},
		Origin: origin,
	}

	switch platform {
	case classifier.BinarySensor:
		cfg.PayloadOn = classifier.StateOn
		cfg.PayloadOff = classifier.StateOff
	case classifier.Sensor:
		if len(d.Presentation.Options) > 0 || d.Presentation.DeviceClass == classifier.Enum {
			cfg.DeviceClass = string(classifier.Enum)
			cfg.Options = d.Presentation.Options
		} else {
			precision := 0
			cfg.StateClass = "measurement"
			cfg.SuggestedDisplayPrecision = &precision
		}
	case classifier.Number:
		minVal, maxVal := d.Presentation.Min, d.Presentation.Max
		cfg.Min = &minVal
		cfg.Max = &maxVal
		cfg.Step = d.Presentation.Step
		cfg.Mode = "box"
		cfg.CommandTopic = topics.Command(platform, d.UniqueID)
	case classifier.Select:
		cfg.Options = d.Presentation.Options
		cfg.CommandTopic = topics.Command(platform, d.UniqueID)
	}
	return cfg
}

// FacilityConfig returns the discovery message of the facility device. Home Assistant has no device-only
// discovery, so the facility is announced through a connectivity binary sensor reflecting the bridge's availability.
func FacilityConfig(f entity.Facility, topics Topics, origin OriginConfig) Config {
	return Config{
		Name:              "Connection",
		UniqueID:          topics.NodeID + "_" + f.Identifier() + "_connection",
		ObjectID:          entity.Slugify(f.Name + "_connection"),
		StateTopic:        topics.Availability(),
		AvailabilityTopic: topics.Availability(),
		DeviceClass:       "connectivity",
		PayloadOn:         payloadOnline,
		PayloadOff:        payloadOffline,
		Device: DeviceConfig{
			Identifiers:  []string{topics.NodeID + "_" + f.Identifier()},
			Name:         f.Name,
			Manufacturer: Manufacturer,
			Model:        f.Model,
			SerialNumber: f.SerialNumber,
		},
		Origin: origin,
	}
}
