// Package froeling provides a client for the Fröling Connect cloud API.
//
// A client logs in with the user's credentials, or reuses a session token from a previous login:
//
//	c := froeling.New(username, password, froeling.WithLanguage("de"))
//	if _, err := c.Login(ctx); err != nil { ... }
//	facilities, err := c.GetFacilities(ctx)
//
// The client does not re-authenticate by itself: once the session token is rejected, calls return
// ErrAuthentication and it is up to the caller to call Login again.
package froeling

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"sync"
)

const DefaultURL = "https://connect-api.froeling.com"

// Client calls the Fröling Connect API on behalf of one user.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
	language   string
	logger     *slog.Logger
	lock       sync.RWMutex
	token      string
	userID     int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the http.Client used to call the API.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the API's URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithSession reuses the session token and user ID of an earlier login.
func WithSession(token string, userID int) Option {
	return func(c *Client) {
		c.token = token
		c.userID = userID
	}
}

// WithLanguage sets the language in which the API returns display names.
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

// WithLogger sets the client's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New returns a new Client.
func New(username, password string, options ...Option) *Client {
	c := Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultURL,
		username:   username,
		password:   password,
		language:   "en",
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(&c)
	}
	return &c
}

// Session returns the current session token and user ID. The token is empty if the client hasn't logged in yet.
func (c *Client) Session() (string, int) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.token, c.userID
}

// Login authenticates with the user's credentials and stores the session token for subsequent calls.
func (c *Client) Login(ctx context.Context) (UserData, error) {
	body, err := json.Marshal(struct {
		OSType   string `json:"osType"`
		Username string `json:"username"`
		Password string `json:"password"`
	}{OSType: "web", Username: c.username, Password: c.password})
	if err != nil {
		return UserData{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/connect/v1.0/resources/login", bytes.NewReader(body))
	if err != nil {
		return UserData{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", c.language)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UserData{}, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if err = checkStatus(resp); err != nil {
		return UserData{}, fmt.Errorf("login: %w", err)
	}

	var response struct {
		UserData UserData `json:"userData"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return UserData{}, fmt.Errorf("login: decode: %w", err)
	}
	token := resp.Header.Get("Authorization")
	if token == "" {
		return UserData{}, fmt.Errorf("login: %w: no session token received", ErrAuthentication)
	}

	c.lock.Lock()
	c.token = token
	c.userID = response.UserData.UserID
	c.lock.Unlock()

	c.logger.Debug("logged in", "userID", response.UserData.UserID)
	return response.UserData, nil
}

// GetFacilities returns the user's facilities.
func (c *Client) GetFacilities(ctx context.Context) ([]Facility, error) {
	var facilities []Facility
	err := c.call(ctx, http.MethodGet, "/facility", nil, &facilities)
	return facilities, err
}

// GetComponents returns the components of a facility.
func (c *Client) GetComponents(ctx context.Context, facilityID int) ([]Component, error) {
	var components []Component
	err := c.call(ctx, http.MethodGet, "/facility/"+strconv.Itoa(facilityID)+"/componentList", nil, &components)
	for i := range components {
		components[i].FacilityID = facilityID
	}
	return components, err
}

// GetParameters returns the current state of all parameters of a component. The API groups a component's
// parameters in several views. GetParameters returns each parameter once, ordered by ID.
func (c *Client) GetParameters(ctx context.Context, facilityID int, componentID string) ([]Parameter, error) {
	var document json.RawMessage
	if err := c.call(ctx, http.MethodGet, "/facility/"+strconv.Itoa(facilityID)+"/component/"+componentID, nil, &document); err != nil {
		return nil, err
	}
	found := make(map[Text]Parameter)
	if err := collectParameters(document, found); err != nil {
		return nil, fmt.Errorf("component %s: %w", componentID, err)
	}
	return slices.SortedFunc(maps.Values(found), func(a, b Parameter) int {
		return cmp.Compare(a.ID, b.ID)
	}), nil
}

// SetParameter sets the value of a parameter. value is the raw value, i.e. the key of a StringValueObject's
// stringListKeyValues, or the decimal representation of a NumValueObject.
func (c *Client) SetParameter(ctx context.Context, facilityID int, parameterID string, value string) error {
	request := struct {
		Value string `json:"value"`
	}{Value: value}
	return c.call(ctx, http.MethodPut, "/facility/"+strconv.Itoa(facilityID)+"/modifyValue/"+parameterID, request, nil)
}

func (c *Client) call(ctx context.Context, method string, endpoint string, request any, response any) error {
	c.lock.RLock()
	token, userID := c.token, c.userID
	c.lock.RUnlock()
	if token == "" {
		return fmt.Errorf("%s %s: %w: not logged in", method, endpoint, ErrAuthentication)
	}

	var body io.Reader
	if request != nil {
		payload, err := json.Marshal(request)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	url := c.baseURL + "/fcs/v1.0/resources/user/" + strconv.Itoa(userID) + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Accept-Language", c.language)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, &NetworkError{Err: err})
	}
	defer func() { _ = resp.Body.Close() }()

	if err = checkStatus(resp); err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	if response == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, endpoint, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAuthentication, resp.Status)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &NetworkError{StatusCode: resp.StatusCode}
	}
	return nil
}

// collectParameters walks a component document and adds every parameter object it finds.
// Objects are visited in key order, so the first occurrence of a duplicate parameter ID is deterministic.
func collectParameters(data json.RawMessage, found map[Text]Parameter) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return err
		}
		for _, element := range elements {
			if err := collectParameters(element, found); err != nil {
				return err
			}
		}
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return err
		}
		if _, ok := fields["parameterType"]; ok {
			var p Parameter
			if err := json.Unmarshal(trimmed, &p); err != nil {
				return err
			}
			if _, ok = found[p.ID]; !ok && p.ID != "" {
				found[p.ID] = p
			}
			return nil
		}
		for _, key := range slices.Sorted(maps.Keys(fields)) {
			if err := collectParameters(fields[key], found); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsAuthenticationError reports whether err indicates that the client needs to log in again.
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrAuthentication)
}
