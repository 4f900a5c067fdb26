package froeling

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// ParameterType is the vendor's type tag for a parameter value.
type ParameterType string

const (
	NumValue    ParameterType = "NumValueObject"
	StringValue ParameterType = "StringValueObject"
)

// UserData is returned by Login.
type UserData struct {
	UserID   int    `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Language string `json:"lang"`
}

// Facility is a physical heating installation.
type Facility struct {
	ID                 int    `json:"facilityId"`
	Name               string `json:"name"`
	EquipmentNumber    Text   `json:"equipmentNumber"`
	FacilityGeneration string `json:"facilityGeneration"`
	Status             string `json:"status"`
}

// Component is a sub-unit of a facility, e.g. the boiler or a buffer tank.
type Component struct {
	FacilityID      int    `json:"-"`
	ID              string `json:"componentId"`
	DisplayName     string `json:"displayName"`
	DisplayCategory string `json:"displayCategory"`
	StandardName    string `json:"standardName"`
	Type            string `json:"type"`
	SubType         string `json:"subType"`
}

// Parameter is a single readable and/or writable data point of a component.
type Parameter struct {
	ID          Text          `json:"id"`
	DisplayName string        `json:"displayName"`
	Name        string        `json:"name"`
	Editable    bool          `json:"editable"`
	Type        ParameterType `json:"parameterType"`
	Unit        string        `json:"unit"`
	Value       Text          `json:"value"`
	MinVal      Text          `json:"minVal"`
	MaxVal      Text          `json:"maxVal"`
	Values      EnumMap       `json:"stringListKeyValues"`
}

func (p Parameter) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", string(p.ID)),
		slog.String("name", p.Name),
		slog.String("type", string(p.Type)),
		slog.Bool("editable", p.Editable),
		slog.String("min", string(p.MinVal)),
		slog.String("max", string(p.MaxVal)),
		slog.String("unit", p.Unit),
		slog.Bool("values", p.Values.Len() > 0),
	)
}

// Text holds a value the API sends either as a JSON string or as a JSON number.
// Numbers keep their literal form, so 1 and "1" both decode to "1".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			// booleans and anything else: keep the literal
			*t = Text(data)
			return nil
		}
		*t = Text(n.String())
	}
	return nil
}

// EnumEntry maps a raw value code to its human-readable label.
type EnumEntry struct {
	Key   string
	Label string
}

// EnumMap is an ordered mapping from raw value codes to labels. The order is the order in which
// the API listed the entries.
type EnumMap []EnumEntry

func (m EnumMap) Len() int {
	return len(m)
}

// Lookup returns the label for a raw value code.
func (m EnumMap) Lookup(key string) (string, bool) {
	for _, entry := range m {
		if entry.Key == key {
			return entry.Label, true
		}
	}
	return "", false
}

// Key returns the first raw value code whose label matches.
func (m EnumMap) Key(label string) (string, bool) {
	for _, entry := range m {
		if entry.Label == label {
			return entry.Key, true
		}
	}
	return "", false
}

// Labels returns all labels, in order.
func (m EnumMap) Labels() []string {
	labels := make([]string, len(m))
	for i, entry := range m {
		labels[i] = entry.Label
	}
	return labels
}

func (m *EnumMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("stringListKeyValues: expected object, got %v", tok)
	}
	entries := make(EnumMap, 0)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("stringListKeyValues: invalid key %v", tok)
		}
		var label Text
		if err = dec.Decode(&label); err != nil {
			return fmt.Errorf("stringListKeyValues[%s]: %w", key, err)
		}
		entries = append(entries, EnumEntry{Key: key, Label: string(label)})
	}
	if _, err = dec.Token(); err != nil {
		return err
	}
	*m = entries
	return nil
}

func (m EnumMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		label, err := json.Marshal(entry.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(label)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
