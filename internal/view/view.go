// Package view holds the front-end state of go-foxstarter and the handlers
// that change it. Front-ends render State() and call the handlers on user
// actions; they never modify the state themselves.
package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/go-while/go-foxstarter/internal/client"
	"github.com/go-while/go-foxstarter/internal/models"
	"github.com/go-while/go-foxstarter/internal/prefs"
)

// StatusTTL is how long a status message stays visible
const StatusTTL = 2500 * time.Millisecond

// ErrBusy is returned by a handler while another request is outstanding.
// It plays the part of a disabled control.
var ErrBusy = errors.New("request in progress")

// API is the part of the server API the view uses
type API interface {
	Counter(ctx context.Context, action string, current int64) (models.CounterResponse, error)
	Theme(ctx context.Context, theme string) (models.ThemeResponse, error)
	Message(ctx context.Context, endpoint string) (models.MessageResponse, error)
}

// State is a snapshot of what the front-end displays
type State struct {
	Count  int64
	Theme  models.Theme
	Busy   bool
	Status string
	// StatusIsError marks Status as a failure report
	StatusIsError bool
}

// View owns the front-end state
type View struct {
	api   API
	store prefs.Store
	log   *zap.Logger
	now   func() time.Time

	mu          sync.Mutex
	state       State
	statusSetAt time.Time
}

// Option configures a View
type Option func(*View)

// WithClock replaces time.Now, used to expire status messages
func WithClock(now func() time.Time) Option {
	return func(v *View) {
		v.now = now
	}
}

// WithLogger sets the logger, zap.NewNop by default
func WithLogger(log *zap.Logger) Option {
	return func(v *View) {
		v.log = log
	}
}

// New returns a view showing count 0 and the default theme
func New(api API, store prefs.Store, opts ...Option) *View {
	v := &View{
		api:   api,
		store: store,
		log:   zap.NewNop(),
		now:   time.Now,
		state: State{Theme: models.DefaultTheme},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Load applies the persisted theme. Without a stored preference the theme
// stays light.
func (v *View) Load(ctx context.Context) error {
	theme, err := prefs.LoadTheme(ctx, v.store)
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Theme = theme
	return err
}

// State returns the current snapshot, dropping an expired status message
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.Status != "" && v.now().Sub(v.statusSetAt) >= StatusTTL {
		v.state.Status = ""
		v.state.StatusIsError = false
	}
	return v.state
}

// Increment asks the server for count+1 and displays the reply
func (v *View) Increment(ctx context.Context) error {
	return v.changeCount(ctx, models.ActionIncrement)
}

// Decrement asks the server for count-1 and displays the reply
func (v *View) Decrement(ctx context.Context) error {
	return v.changeCount(ctx, models.ActionDecrement)
}

func (v *View) changeCount(ctx context.Context, action string) error {
	snapshot, err := v.begin()
	if err != nil {
		return err
	}

	resp, err := v.api.Counter(ctx, action, snapshot.Count)
	if err != nil {
		return v.fail(action, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Count = resp.Count
	v.settle(fmt.Sprintf("Counter %sed: %d → %d", resp.Action, resp.PreviousCount, resp.Count), false)
	return nil
}

// ToggleTheme switches between light and dark. The new theme is applied and
// persisted only after the server confirmed it.
func (v *View) ToggleTheme(ctx context.Context) error {
	snapshot, err := v.begin()
	if err != nil {
		return err
	}

	next := snapshot.Theme.Next()
	resp, err := v.api.Theme(ctx, next.String())
	if err != nil {
		return v.fail("theme", err)
	}

	if err := prefs.SaveTheme(ctx, v.store, next); err != nil {
		v.log.Warn("[VIEW]: Theme preference not saved", zap.Error(err))
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Theme = next
	v.settle(resp.Message, false)
	return nil
}

// Ping calls a diagnostic endpoint and displays its message
func (v *View) Ping(ctx context.Context, endpoint string) error {
	if _, err := v.begin(); err != nil {
		return err
	}

	resp, err := v.api.Message(ctx, endpoint)
	if err != nil {
		return v.fail(endpoint, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.settle(resp.Message, false)
	return nil
}

// begin sets the busy flag, refusing when it is already set
func (v *View) begin() (State, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.Busy {
		return v.state, ErrBusy
	}
	v.state.Busy = true
	return v.state, nil
}

// fail clears the busy flag and reports err as status
func (v *View) fail(op string, err error) error {
	v.log.Debug("[VIEW]: Request failed", zap.String("op", op), zap.Error(err))

	v.mu.Lock()
	defer v.mu.Unlock()
	v.settle("Error: "+Describe(err), true)
	return err
}

// settle ends a request. v.mu must be held.
func (v *View) settle(status string, isErr bool) {
	v.state.Busy = false
	v.state.Status = status
	v.state.StatusIsError = isErr
	v.statusSetAt = v.now()
}

// Describe turns a request error into a short status line
func Describe(err error) string {
	var se *client.StatusError
	switch {
	case errors.Is(err, client.ErrUnreachable):
		return "server unreachable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "request canceled"
	case errors.As(err, &se) && errors.Is(err, client.ErrMalformedRequest):
		return "request rejected: " + se.Message
	case errors.As(err, &se) && errors.Is(err, client.ErrServerFault):
		return "server error: " + se.Message
	}
	return err.Error()
}
