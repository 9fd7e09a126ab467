package focus

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/router"
)

// State is the controller's position in the focus cycle.
type State int32

const (
	StateIdle                State = iota // No transition in flight
	StateAwaitingFocusTarget              // A transition started; focus is requested when it ends
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingFocusTarget:
		return "awaiting-focus-target"
	default:
		return "unknown"
	}
}

// Controller requests accessibility focus on the active screen's header
// title whenever a transition ends.
//
// Targets are registered per screen by whoever mounts the header. A missing
// target or an unsupported capability makes the request a silent no-op.
type Controller struct {
	capability Capability
	targets    map[router.Screen]Handle
	state      atomic.Int32
	logger     *slog.Logger
}

// NewController creates a Controller using capability. A nil capability
// behaves like Nop; a nil logger discards output.
func NewController(capability Capability, logger *slog.Logger) *Controller {
	if capability == nil {
		capability = Nop{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		capability: capability,
		targets:    make(map[router.Screen]Handle),
		logger:     logger,
	}
}

// Register sets the focus target for screen, replacing any previous one.
// Registering the zero Handle removes the target.
func (c *Controller) Register(screen router.Screen, h Handle) {
	if h == 0 {
		delete(c.targets, screen)
		return
	}
	c.targets[screen] = h
}

// Unregister removes the focus target for screen.
func (c *Controller) Unregister(screen router.Screen) {
	delete(c.targets, screen)
}

// Target returns the registered handle for screen.
func (c *Controller) Target(screen router.Screen) (Handle, bool) {
	h, ok := c.targets[screen]
	return h, ok
}

// State returns the current state.
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Attach subscribes the controller to the engine's transition events.
// The returned function detaches it.
func (c *Controller) Attach(e *router.Engine) (detach func()) {
	removeStart := e.AddListener(router.EventTransitionStart, c.OnTransitionStart)
	removeEnd := e.AddListener(router.EventTransitionEnd, c.OnTransitionEnd)
	return func() {
		removeStart()
		removeEnd()
		c.state.Store(int32(StateIdle))
	}
}

// OnTransitionStart moves the controller to StateAwaitingFocusTarget.
func (c *Controller) OnTransitionStart(router.Event) {
	c.state.Store(int32(StateAwaitingFocusTarget))
}

// OnTransitionEnd requests focus on the target registered for the screen
// that is now active and returns to StateIdle.
func (c *Controller) OnTransitionEnd(ev router.Event) {
	defer c.state.Store(int32(StateIdle))

	if !c.state.CompareAndSwap(int32(StateAwaitingFocusTarget), int32(StateIdle)) {
		c.logger.Debug("transition end without start", "seq", ev.Seq)
	}

	if !c.capability.IsSupported() {
		return
	}

	h, ok := c.targets[ev.To.Screen]
	if !ok {
		c.logger.Debug("no focus target", "screen", ev.To.Name)
		return
	}

	c.logger.Debug("requesting accessibility focus", "screen", ev.To.Name, "handle", uint64(h))
	c.capability.RequestFocus(h)
}
