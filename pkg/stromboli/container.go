package stromboli

import (
	"context"
	"strings"
	"sync"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/constants"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/internal"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/platform"
	"go.uber.org/atomic"
)

// Mode is the state-ownership mode of a Container. It is decided exactly
// once at construction and never re-evaluated.
type Mode int

const (
	// ModeStateful means the container exclusively owns its navigation
	// state.
	ModeStateful Mode = iota
	// ModeStateless means the container owns nothing; state and dispatch
	// are borrowed from an externally supplied navigation handle.
	ModeStateless
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeStateful:
		return "stateful"
	case ModeStateless:
		return "stateless"
	default:
		return "unknown"
	}
}

// Config wires a Container.
//
// Supplying Navigation selects stateless mode; supplying Options (or
// neither) selects stateful mode. Supplying both is a configuration
// conflict and fails construction with ErrModeConflict.
type Config struct {
	// Router applies actions to states and resolves deep-link paths.
	// Required in stateful mode, unused in stateless mode.
	Router Router

	// Navigation is an externally owned navigation handle. When set, the
	// container never mutates state; the caller owns it.
	Navigation *Helpers

	// Options is the container configuration (URI prefix, log path).
	Options *Options

	// OnStateChange is invoked with (previous, next) after every committed
	// state transition. Comparison is by reference identity.
	OnStateChange func(prev, next *State)

	// Back delivers hardware back-navigation events while mounted.
	// Optional.
	Back platform.BackSource

	// Links delivers deep-link URLs while mounted. Optional.
	Links platform.LinkSource
}

// Container is the single authority over a navigation state tree. In
// stateful mode it owns the tree, dispatches actions through its router,
// resolves deep-link URLs, and synchronizes with platform back and link
// events over its Mount/Unmount lifetime. In stateless mode it delegates
// everything to the externally supplied handle.
type Container struct {
	mode          Mode
	router        Router
	onStateChange func(prev, next *State)
	back          platform.BackSource
	links         platform.LinkSource
	uriPrefix     string

	mounted atomic.Bool

	mu         sync.Mutex
	state      *State   // stateful mode only
	helpers    *Helpers // memoized handle, rebuilt when state moves
	external   *Helpers // stateless mode only
	lastSeen   *State   // stateless change detection
	cancelBack func()
	cancelURL  func()
}

// New constructs a Container in the mode implied by cfg.
//
// In stateful mode the initial state is produced by passing an InitAction to
// the router. In stateless mode the container holds no state of its own and
// reads it live from the navigation handle.
func New(cfg Config) (*Container, error) {
	if cfg.Navigation != nil && cfg.Options != nil {
		return nil, ErrModeConflict
	}

	c := &Container{
		router:        cfg.Router,
		onStateChange: cfg.OnStateChange,
		back:          cfg.Back,
		links:         cfg.Links,
		uriPrefix:     constants.DefaultURIPrefix,
	}

	if cfg.Navigation != nil {
		c.mode = ModeStateless
		c.external = cfg.Navigation
		c.lastSeen = cfg.Navigation.State()
		return c, nil
	}

	c.mode = ModeStateful
	if cfg.Router == nil {
		return nil, ErrMissingRouter
	}
	if cfg.Options != nil {
		cfg.Options.apply(c)
	}
	c.state = c.router.StateForAction(InitAction{}, nil)
	return c, nil
}

// Mode returns the ownership mode decided at construction.
func (c *Container) Mode() Mode {
	return c.mode
}

// State returns the current navigation state: the container's own in
// stateful mode, the external handle's in stateless mode.
func (c *Container) State() *State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModeStateless {
		return c.external.State()
	}
	return c.state
}

// Dispatch applies an action to the navigation state. It returns true when
// a new state was committed and false for no-ops: a stateless container, an
// action the router does not handle, or a result reference-equal to the
// current state.
//
// Parameter-update actions are the exception: they commit through
// MergeRoutes against the latest state at commit time and always return
// true, so updates issued in rapid succession by sibling screens cannot
// overwrite each other's unrelated routes.
func (c *Container) Dispatch(action Action) bool {
	if c.mode != ModeStateful {
		return false
	}

	if update, ok := action.(ParamsUpdate); ok && action.ActionType() == ActionSetParams {
		return c.dispatchParamsUpdate(update)
	}

	c.mu.Lock()
	prev := c.state
	next := c.router.StateForAction(action, prev)
	if next == nil || next == prev {
		c.mu.Unlock()
		return false
	}
	c.state = next
	c.mu.Unlock()

	c.notify(prev, next)
	return true
}

// dispatchParamsUpdate commits a parameter update via the merge algorithm.
// The read-merge-commit sequence runs under the state lock, so the merge
// always sees the latest committed tree, including updates dispatched after
// this action was created.
func (c *Container) dispatchParamsUpdate(update ParamsUpdate) bool {
	c.mu.Lock()
	prev := c.state
	trial := c.router.StateForAction(update, prev)
	if trial == nil || trial == prev || prev == nil {
		// Nothing to merge; the update is still not an error.
		c.mu.Unlock()
		return true
	}
	next := &State{
		Index:  prev.Index,
		Routes: MergeRoutes(update.TargetKey(), prev.Routes, trial.Routes),
	}
	c.state = next
	c.mu.Unlock()

	c.notify(prev, next)
	return true
}

// OpenURL resolves a deep-link URL into an action and dispatches it. It
// returns false when the URL matches no route or the dispatch was a no-op.
func (c *Container) OpenURL(url string) bool {
	if c.mode != ModeStateful {
		return false
	}
	action := c.actionForURL(url)
	if action == nil {
		return false
	}
	return c.Dispatch(action)
}

// actionForURL extracts the path component of a deep-link URL and asks the
// router for the corresponding action. The path is everything after the
// first occurrence of the URI prefix; a URL without the prefix is treated as
// a bare path. Query parameters are not parsed at this layer.
func (c *Container) actionForURL(url string) Action {
	path := url
	if i := strings.Index(url, c.uriPrefix); i >= 0 {
		path = url[i+len(c.uriPrefix):]
	}
	return c.router.ActionForPath(path, map[string]string{})
}

// Navigation returns the handle to pass to the wrapped component. It is
// built lazily and memoized: a new handle is constructed only when the
// underlying state reference moved since the last call.
func (c *Container) Navigation() *Helpers {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModeStateless {
		return c.external
	}
	if c.helpers == nil || c.helpers.state != c.state {
		c.helpers = NewHelpers(c.Dispatch, c.state)
	}
	return c.helpers
}

// SetNavigation replaces the externally owned handle in stateless mode,
// firing the state-change callback when the new handle's state reference
// differs from the previous one. It is a no-op in stateful mode.
func (c *Container) SetNavigation(nav *Helpers) {
	if c.mode != ModeStateless || nav == nil {
		return
	}
	c.mu.Lock()
	prev := c.lastSeen
	next := nav.State()
	c.external = nav
	c.lastSeen = next
	c.mu.Unlock()

	if next != prev {
		c.notify(prev, next)
	}
}

// Mount acquires the container's platform subscriptions: hardware back
// events dispatch a BackAction, URL-opened events go through OpenURL, and
// the launcher's pending URL is looked up asynchronously and dispatched the
// same way once resolved. Stateless containers have no side effects to
// acquire, so Mount is a no-op for them.
//
// On error the already-acquired subscriptions are kept; Unmount releases
// whatever Mount managed to acquire.
func (c *Container) Mount(ctx context.Context) error {
	if c.mode != ModeStateful {
		return nil
	}
	c.mounted.Store(true)

	if c.back != nil {
		cancel, err := c.back.SubscribeBack(func() {
			c.Dispatch(BackAction{})
		})
		if err != nil {
			return NewInfrastructureError("subscribe_back", err)
		}
		c.mu.Lock()
		c.cancelBack = cancel
		c.mu.Unlock()
	}

	if c.links != nil {
		cancel, err := c.links.SubscribeURL(func(url string) {
			c.OpenURL(url)
		})
		if err != nil {
			return NewInfrastructureError("subscribe_url", err)
		}
		c.mu.Lock()
		c.cancelURL = cancel
		c.mu.Unlock()

		go c.lookupInitialURL(ctx)
	}

	return nil
}

// Unmount releases the subscriptions acquired by Mount and suppresses any
// still-pending initial URL lookup. It is idempotent and safe to call even
// when Mount failed or was never called.
func (c *Container) Unmount() {
	c.mounted.Store(false)

	c.mu.Lock()
	cancelBack, cancelURL := c.cancelBack, c.cancelURL
	c.cancelBack, c.cancelURL = nil, nil
	c.mu.Unlock()

	if cancelBack != nil {
		cancelBack()
	}
	if cancelURL != nil {
		cancelURL()
	}
}

// lookupInitialURL resolves the launcher's pending URL, if any. The lookup
// is best effort: failures are logged, not surfaced, and a result arriving
// after Unmount is dropped.
func (c *Container) lookupInitialURL(ctx context.Context) {
	url, err := c.links.InitialURL(ctx)
	if err != nil {
		internal.GetInternalLogger().Warn("initial URL lookup failed", "error", err)
		return
	}
	if url == "" || !c.mounted.Load() {
		return
	}
	c.OpenURL(url)
}

func (c *Container) notify(prev, next *State) {
	if c.onStateChange != nil {
		c.onStateChange(prev, next)
	}
}
