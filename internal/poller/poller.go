// Package poller periodically fetches all parameters of the user's Fröling facilities and publishes them as an Update.
package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/clambin/froeling-monitor/internal/classifier"
	"github.com/clambin/froeling-monitor/internal/froeling"
	"github.com/clambin/froeling-monitor/pkg/pubsub"
)

//go:generate mockery --name Poller --with-expecter
type Poller interface {
	Subscribe() <-chan Update
	Unsubscribe(ch <-chan Update)
	Refresh()
	Status() Status
}

//go:generate mockery --name API --with-expecter
type API interface {
	Login(ctx context.Context) (froeling.UserData, error)
	Session() (string, int)
	GetFacilities(ctx context.Context) ([]froeling.Facility, error)
	GetComponents(ctx context.Context, facilityID int) ([]froeling.Component, error)
	GetParameters(ctx context.Context, facilityID int, componentID string) ([]froeling.Parameter, error)
}

// SessionSaver persists the session of a successful login, so it can be reused after a restart. The session is
// cleared when the credentials are rejected.
type SessionSaver interface {
	SaveSession(ctx context.Context, token string, userID int) error
	ClearSession(ctx context.Context) error
}

// Configuration of the poller.
type Configuration struct {
	// Interval between polls
	Interval time.Duration `mapstructure:"interval"`
	// Timeout bounds a complete poll
	Timeout time.Duration `mapstructure:"timeout"`
	// RateLimit is the pause between two component requests
	RateLimit time.Duration `mapstructure:"ratelimit"`
}

var DefaultConfiguration = Configuration{
	Interval:  30 * time.Second,
	Timeout:   10 * time.Second,
	RateLimit: 500 * time.Millisecond,
}

var _ Poller = &FroelingPoller{}

type FroelingPoller struct {
	*pubsub.Publisher[Update]
	API       API
	Sessions  SessionSaver
	config    Configuration
	logger    *slog.Logger
	refresh   chan struct{}
	index     Index
	diagnosed map[classifier.Identity]classifier.Kinds
	lock      sync.RWMutex
	status    Status
}

func New(api API, sessions SessionSaver, config Configuration, logger *slog.Logger) *FroelingPoller {
	return &FroelingPoller{
		Publisher: pubsub.New[Update](logger.With(slog.String("component", "pubsub"))),
		API:       api,
		Sessions:  sessions,
		config:    config,
		logger:    logger,
		refresh:   make(chan struct{}, 1),
	}
}

// Setup builds the index of facilities and components. If no session exists, it logs in first.
// If a reused session is rejected, Setup logs in again once. Any other authentication failure is returned.
func (p *FroelingPoller) Setup(ctx context.Context) error {
	reused := true
	if token, _ := p.API.Session(); token == "" {
		if err := p.login(ctx); err != nil {
			return err
		}
		reused = false
	}

	index, err := p.buildIndex(ctx)
	if err != nil && reused && froeling.IsAuthenticationError(err) {
		p.logger.Info("stored session rejected. logging in again")
		if err = p.login(ctx); err != nil {
			return err
		}
		index, err = p.buildIndex(ctx)
	}
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	p.lock.Lock()
	p.index = index
	p.lock.Unlock()
	p.logger.Info("setup complete", slog.Any("index", index))
	return nil
}

// Index returns the index built by Setup.
func (p *FroelingPoller) Index() Index {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.index
}

func (p *FroelingPoller) buildIndex(ctx context.Context) (Index, error) {
	facilities, err := p.API.GetFacilities(ctx)
	if err != nil {
		return Index{}, fmt.Errorf("facilities: %w", err)
	}
	index := Index{
		Facilities: make(map[int]froeling.Facility, len(facilities)),
		Components: make(map[classifier.DeviceKey]froeling.Component),
	}
	for _, facility := range facilities {
		index.Facilities[facility.ID] = facility
		components, err := p.API.GetComponents(ctx, facility.ID)
		if err != nil {
			return Index{}, fmt.Errorf("components of facility %d: %w", facility.ID, err)
		}
		for _, component := range components {
			index.Components[classifier.DeviceKey{FacilityID: facility.ID, ComponentID: component.ID}] = component
		}
	}
	return index, nil
}

func (p *FroelingPoller) login(ctx context.Context) error {
	userData, err := p.API.Login(ctx)
	if err != nil {
		if p.Sessions != nil && froeling.IsAuthenticationError(err) {
			// the stored session belongs to credentials that no longer work
			if clearErr := p.Sessions.ClearSession(ctx); clearErr != nil {
				p.logger.Warn("failed to clear session", slog.Any("err", clearErr))
			}
		}
		return fmt.Errorf("login: %w", err)
	}
	p.logger.Info("logged in", slog.Int("userID", userData.UserID))
	if p.Sessions != nil {
		token, userID := p.API.Session()
		if err = p.Sessions.SaveSession(ctx, token, userID); err != nil {
			p.logger.Warn("failed to save session", slog.Any("err", err))
		}
	}
	return nil
}

// Run polls immediately and then at every interval, or when Refresh is called, until ctx is cancelled.
func (p *FroelingPoller) Run(ctx context.Context) error {
	p.logger.Debug("started", slog.Duration("interval", p.config.Interval))
	defer p.logger.Debug("stopped")

	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()

	p.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-p.refresh:
		}
		p.Poll(ctx)
	}
}

// Refresh requests an immediate poll. It doesn't block: if a refresh is already pending, the request is dropped.
func (p *FroelingPoller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Poll fetches the parameters of all components and publishes the resulting Update.
// A failed poll publishes nothing. If the session was rejected, the next poll logs in first.
func (p *FroelingPoller) Poll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	if p.Status().State == StateAuthRequired {
		if err := p.login(ctx); err != nil {
			p.recordFailure(err)
			p.logger.Error("re-authentication failed", slog.Any("err", err))
			return
		}
	}

	start := time.Now()
	parameters, err := p.fetch(ctx)
	if err != nil {
		p.recordFailure(err)
		p.logger.Error("failed to get parameters", slog.Any("err", err))
		return
	}

	update := Update{Index: p.Index(), Parameters: parameters, Timestamp: time.Now()}
	p.recordSuccess(update)
	p.logger.Debug("poll completed", slog.Duration("duration", time.Since(start)), slog.Any("update", update))

	p.diagnose(ctx, update)
	p.Publish(update)
}

func (p *FroelingPoller) fetch(ctx context.Context) (map[classifier.Identity]froeling.Parameter, error) {
	parameters := make(map[classifier.Identity]froeling.Parameter)
	for i, key := range p.Index().Devices() {
		if i > 0 && p.config.RateLimit > 0 {
			if err := sleep(ctx, p.config.RateLimit); err != nil {
				return nil, err
			}
		}
		params, err := p.API.GetParameters(ctx, key.FacilityID, key.ComponentID)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", key, err)
		}
		p.logger.Debug("component pulled", slog.String("device", key.String()), slog.Int("parameters", len(params)))
		for _, param := range params {
			parameters[classifier.Identity{FacilityID: key.FacilityID, ComponentID: key.ComponentID, ParameterID: string(param.ID)}] = param
		}
	}
	return parameters, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// diagnose logs parameters that don't map onto exactly one entity. Findings are only logged again when they
// change: a parameter appears in, or leaves, the findings, or matches a different set of rules.
func (p *FroelingPoller) diagnose(ctx context.Context, update Update) {
	findings := classifier.Diagnose(update.Parameters)
	current := make(map[classifier.Identity]classifier.Kinds, len(findings))
	for _, f := range findings {
		current[f.Identity] = f.Kinds
	}
	if p.diagnosed != nil && maps.Equal(current, p.diagnosed) {
		return
	}
	p.diagnosed = current
	classifier.LogFindings(ctx, p.logger, findings)
}

// Status returns the outcome of recent polls.
func (p *FroelingPoller) Status() Status {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.status
}

func (p *FroelingPoller) recordSuccess(update Update) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.status.State = StateOK
	p.status.Polls++
	p.status.LastSuccess = update.Timestamp
	p.status.LastError = ""
	p.status.Parameters = len(update.Parameters)
}

func (p *FroelingPoller) recordFailure(err error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.status.State = StateFailing
	if froeling.IsAuthenticationError(err) {
		p.status.State = StateAuthRequired
	}
	p.status.Polls++
	p.status.Failures++
	p.status.LastFailure = time.Now()
	p.status.LastError = err.Error()
}

// Parameters fetches a one-off snapshot, without publishing it. Setup must have been called first.
func (p *FroelingPoller) Parameters(ctx context.Context) (map[classifier.Identity]froeling.Parameter, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()
	parameters, err := p.fetch(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("poll exceeded %s: %w", p.config.Timeout, err)
	}
	return parameters, err
}

