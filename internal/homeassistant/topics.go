package homeassistant

import (
	"strings"

	"github.com/clambin/froeling-monitor/internal/classifier"
)

// Topics lays out the MQTT topics of the bridge.
type Topics struct {
	// DiscoveryPrefix is the prefix Home Assistant listens to for discovery messages
	DiscoveryPrefix string
	// BaseTopic is the prefix for state, command and availability topics
	BaseTopic string
	// NodeID groups the discovery messages of this bridge
	NodeID string
}

// Discovery returns the topic of an entity's discovery config.
func (t Topics) Discovery(kind classifier.Kind, uniqueID string) string {
	return t.DiscoveryPrefix + "/" + kind.String() + "/" + t.NodeID + "/" + uniqueID + "/config"
}

func (t Topics) State(kind classifier.Kind, uniqueID string) string {
	return t.BaseTopic + "/" + kind.String() + "/" + uniqueID + "/state"
}

func (t Topics) Command(kind classifier.Kind, uniqueID string) string {
	return t.BaseTopic + "/" + kind.String() + "/" + uniqueID + "/set"
}

// Availability is the topic holding the bridge's online/offline status.
func (t Topics) Availability() string {
	return t.BaseTopic + "/status"
}

// Commands is the subscription filter matching all command topics.
func (t Topics) Commands() string {
	return t.BaseTopic + "/+/+/set"
}

var writableKinds = map[string]classifier.Kind{
	classifier.Number.String(): classifier.Number,
	classifier.Select.String(): classifier.Select,
}

// ParseCommand returns the kind and unique ID a command topic refers to.
func (t Topics) ParseCommand(topic string) (classifier.Kind, string, bool) {
	rest, ok := strings.CutPrefix(topic, t.BaseTopic+"/")
	if !ok {
		return 0, "", false
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 3 || parts[2] != "set" || parts[1] == "" {
		return 0, "", false
	}
	kind, ok := writableKinds[parts[0]]
	return kind, parts[1], ok
}
