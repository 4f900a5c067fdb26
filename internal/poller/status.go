package poller

import (
	"encoding/json"
	"fmt"
	"time"
)

// State is the poller's connection state.
type State int

const (
	StateSetup State = iota
	StateOK
	StateFailing
	StateAuthRequired
)

var stateNames = map[State]string{
	StateSetup:        "setup",
	StateOK:           "ok",
	StateFailing:      "failing",
	StateAuthRequired: "auth required",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *State) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for state, stateName := range stateNames {
		if stateName == name {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("invalid state: %q", name)
}

// Status summarizes the outcome of recent polls.
type Status struct {
	State       State     `json:"state"`
	LastSuccess time.Time `json:"last_success,omitzero"`
	LastFailure time.Time `json:"last_failure,omitzero"`
	LastError   string    `json:"last_error,omitempty"`
	Polls       int       `json:"polls"`
	Failures    int       `json:"failures"`
	Parameters  int       `json:"parameters"`
}

// Healthy reports whether the last poll succeeded.
func (s Status) Healthy() bool {
	return s.State == StateOK
}
