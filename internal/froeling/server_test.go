package froeling_test

import (
	"encoding/json"
	"net/http"
	"sync"
)

type server struct {
	lock           sync.Mutex
	expired        bool
	language       string
	lastWritePath  string
	lastWriteValue string
}

func newServer() *server {
	return &server{}
}

var responses = map[string]string{
	"/fcs/v1.0/resources/user/42/facility": `[
  { "facilityId": 1, "name": "Home", "equipmentNumber": 12345, "facilityGeneration": "GEN_2", "status": "OK" }
]`,
	"/fcs/v1.0/resources/user/42/facility/1/componentList": `[
  { "componentId": "boiler", "displayName": "Boiler", "displayCategory": "BOILER", "standardName": "Kessel", "type": "BOILER", "subType": "PE1" },
  { "componentId": "buffer", "displayName": "Buffer tank", "displayCategory": "BUFFER", "standardName": "Puffer", "type": "BUFFER", "subType": "PUFFER" }
]`,
	"/fcs/v1.0/resources/user/42/facility/1/component/boiler": `{
  "componentId": "boiler",
  "displayName": "Boiler",
  "topView": {
    "pictureUrl": "https://example.com/boiler.png",
    "infoParams": [
      { "id": "temp", "displayName": "Boiler temperature", "name": "boilerTemp", "editable": false, "parameterType": "NumValueObject", "unit": "°C", "value": 45.5, "minVal": "0", "maxVal": "100" }
    ],
    "pictureParams": {
      "flame": { "id": "flame", "displayName": "Flame", "name": "flame", "editable": false, "parameterType": "NumValueObject", "unit": "", "value": "1", "minVal": "0", "maxVal": "1" }
    }
  },
  "stateView": [
    { "id": "temp", "displayName": "Boiler temperature", "name": "boilerTemp", "editable": false, "parameterType": "NumValueObject", "unit": "°C", "value": 45.5, "minVal": "0", "maxVal": "100" }
  ],
  "setupView": [
    { "id": "mode", "displayName": "Operating mode", "name": "mode", "editable": true, "parameterType": "StringValueObject", "unit": "", "value": "1", "stringListKeyValues": { "1": "On", "0": "Off" } }
  ]
}`,
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.language = r.Header.Get("Accept-Language")

	if r.URL.Path == "/connect/v1.0/resources/login" {
		s.login(w, r)
		return
	}

	if s.expired || r.Header.Get("Authorization") != "session-token" {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	if r.Method == http.MethodPut {
		var request struct {
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.lastWritePath = r.URL.Path
		s.lastWriteValue = request.Value
		w.WriteHeader(http.StatusOK)
		return
	}

	response, ok := responses[r.URL.Path]
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(response))
}

func (s *server) login(w http.ResponseWriter, r *http.Request) {
	var request struct {
		OSType   string `json:"osType"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if request.Username != "user@example.com" || request.Password != "secret" {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	s.expired = false
	w.Header().Set("Authorization", "session-token")
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"userData":{"userId":42,"email":"user@example.com","username":"user@example.com","lang":"en"}}`))
}
