package froeling_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clambin/froeling-monitor/internal/froeling"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	s := newServer()
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	c := froeling.New("user@example.com", "secret", froeling.WithBaseURL(ts.URL), froeling.WithLanguage("de"))

	_, err := c.GetFacilities(t.Context())
	require.ErrorIs(t, err, froeling.ErrAuthentication)

	user, err := c.Login(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 42, user.UserID)
	token, userID := c.Session()
	assert.Equal(t, "session-token", token)
	assert.Equal(t, 42, userID)

	facilities, err := c.GetFacilities(t.Context())
	require.NoError(t, err)
	require.Len(t, facilities, 1)
	assert.Equal(t, 1, facilities[0].ID)
	assert.Equal(t, "Home", facilities[0].Name)
	assert.Equal(t, froeling.Text("12345"), facilities[0].EquipmentNumber)
	assert.Equal(t, "de", s.language)

	components, err := c.GetComponents(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.Equal(t, "boiler", components[0].ID)
	assert.Equal(t, 1, components[0].FacilityID)
	assert.Equal(t, "Boiler", components[0].DisplayName)

	parameters, err := c.GetParameters(t.Context(), 1, "boiler")
	require.NoError(t, err)
	require.Len(t, parameters, 3)
	assert.Equal(t, froeling.Text("flame"), parameters[0].ID)
	assert.Equal(t, froeling.Text("1"), parameters[0].Value)
	assert.Equal(t, froeling.Text("mode"), parameters[1].ID)
	assert.Equal(t, []string{"On", "Off"}, parameters[1].Values.Labels())
	assert.Equal(t, froeling.Text("temp"), parameters[2].ID)
	assert.Equal(t, froeling.Text("45.5"), parameters[2].Value)
	assert.Equal(t, froeling.NumValue, parameters[2].Type)

	require.NoError(t, c.SetParameter(t.Context(), 1, "mode", "0"))
	assert.Equal(t, "/fcs/v1.0/resources/user/42/facility/1/modifyValue/mode", s.lastWritePath)
	assert.Equal(t, "0", s.lastWriteValue)

	s.expired = true
	_, err = c.GetComponents(t.Context(), 1)
	assert.ErrorIs(t, err, froeling.ErrAuthentication)
	assert.True(t, froeling.IsAuthenticationError(err))
}

func TestClient_Login_Failure(t *testing.T) {
	s := newServer()
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	c := froeling.New("user@example.com", "wrong", froeling.WithBaseURL(ts.URL))
	_, err := c.Login(t.Context())
	assert.ErrorIs(t, err, froeling.ErrAuthentication)
	token, _ := c.Session()
	assert.Empty(t, token)
}

func TestClient_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	t.Cleanup(ts.Close)

	c := froeling.New("user@example.com", "secret", froeling.WithBaseURL(ts.URL), froeling.WithSession("token", 1))
	_, err := c.GetFacilities(t.Context())
	var netErr *froeling.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusServiceUnavailable, netErr.StatusCode)
	assert.False(t, froeling.IsAuthenticationError(err))

	ts.Close()
	_, err = c.GetFacilities(t.Context())
	require.ErrorAs(t, err, &netErr)
	assert.Error(t, errors.Unwrap(netErr))
}

func TestInstrumentedHTTPClient(t *testing.T) {
	s := newServer()
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	r := prometheus.NewPedanticRegistry()
	c := froeling.New("user@example.com", "secret",
		froeling.WithBaseURL(ts.URL),
		froeling.WithHTTPClient(froeling.InstrumentedHTTPClient(nil, r)),
	)
	_, err := c.Login(t.Context())
	require.NoError(t, err)
	_, err = c.GetFacilities(t.Context())
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(r, "froeling_monitor_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestEnumMap(t *testing.T) {
	var m froeling.EnumMap
	require.NoError(t, json.Unmarshal([]byte(`{"2":"Auto","0":"Off","1":"On","3":"Off"}`), &m))
	assert.Equal(t, []string{"Auto", "Off", "On", "Off"}, m.Labels())

	label, ok := m.Lookup("1")
	assert.True(t, ok)
	assert.Equal(t, "On", label)
	_, ok = m.Lookup("9")
	assert.False(t, ok)

	key, ok := m.Key("Off")
	assert.True(t, ok)
	assert.Equal(t, "0", key)
	_, ok = m.Key("Standby")
	assert.False(t, ok)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"2":"Auto","0":"Off","1":"On","3":"Off"}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.Zero(t, m.Len())

	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &m))
}

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  froeling.Text
	}{
		{name: "string", input: `"45"`, want: "45"},
		{name: "integer", input: `45`, want: "45"},
		{name: "float", input: `45.50`, want: "45.50"},
		{name: "null", input: `null`, want: ""},
		{name: "bool", input: `true`, want: "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got froeling.Text
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
