package classifier

import (
	"cmp"
	"log/slog"
	"strconv"
)

// Identity uniquely identifies a parameter. It is stable across poll cycles.
type Identity struct {
	FacilityID  int
	ComponentID string
	ParameterID string
}

// UniqueID returns the identity's entity ID: "{facility}_{component}_{parameter}".
func (i Identity) UniqueID() string {
	return strconv.Itoa(i.FacilityID) + "_" + i.ComponentID + "_" + i.ParameterID
}

// Device returns the identity's device grouping, i.e. the component the parameter belongs to.
func (i Identity) Device() DeviceKey {
	return DeviceKey{FacilityID: i.FacilityID, ComponentID: i.ComponentID}
}

func (i Identity) String() string {
	return i.UniqueID()
}

func (i Identity) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("facility", i.FacilityID),
		slog.String("component", i.ComponentID),
		slog.String("parameter", i.ParameterID),
	)
}

// CompareIdentity orders identities by facility, component and parameter.
func CompareIdentity(a, b Identity) int {
	if c := cmp.Compare(a.FacilityID, b.FacilityID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ComponentID, b.ComponentID); c != 0 {
		return c
	}
	return cmp.Compare(a.ParameterID, b.ParameterID)
}

// DeviceKey groups the entities of one component.
type DeviceKey struct {
	FacilityID  int
	ComponentID string
}

func (d DeviceKey) String() string {
	return strconv.Itoa(d.FacilityID) + "_" + d.ComponentID
}
