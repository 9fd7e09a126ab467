package router

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Screen is a type-safe identifier for screens.
// Applications should define their own Screen constants using iota.
//
// Example:
//
//	const (
//	    ScreenArticle Screen = iota
//	    ScreenFeed
//	)
type Screen int

// ScreenNone is used in event snapshots when no entry exists.
const ScreenNone Screen = -1

// Definition declares a navigable screen.
// InitialParams are merged underneath the params of every entry created
// for the screen, including the initial entry on Mount.
type Definition struct {
	Screen        Screen
	Name          string
	InitialParams Params
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug output about ignored operations.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithAutoSettle makes every transition settle as soon as it starts.
// Use it for hosts that have no visual transitions.
func WithAutoSettle() Option {
	return func(e *Engine) {
		e.autoSettle = true
	}
}

// WithIDGenerator replaces the entry identifier generator.
// The function receives the screen name of the new entry.
func WithIDGenerator(fn func(name string) string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

func defaultID(name string) string {
	return name + "-" + uuid.NewString()
}

type request struct {
	op     Operation
	screen Screen
	params Params
	count  int
	toTop  bool
}

type transition struct {
	seq  uint64
	op   Operation
	from Entry
	to   Entry
	back bool
}

// Engine owns the navigation stack and applies navigation operations to it.
//
// Operations never fail: invalid destinations are ignored and over-pops are
// clamped. Every operation that changes the active entry emits a
// TransitionStart event, and the matching TransitionEnd once Settle is called.
// Operations issued while a transition is in flight are queued and applied in
// order after it settles.
//
// An Engine is not safe for concurrent use; call it from the host's event loop.
type Engine struct {
	screens map[Screen]Definition
	store   ParamStore
	stack   *Stack

	queue    []request
	inFlight *transition
	draining bool

	// Settle calls made while TransitionStart listeners run are deferred
	// until every Start listener has seen the event.
	emittingStart   bool
	settleRequested bool

	listeners map[EventType][]listenerSlot
	nextSlot  uint64

	seq        atomic.Uint64
	autoSettle bool
	newID      func(name string) string
	logger     *slog.Logger
}

// New creates an unmounted Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		screens:   make(map[Screen]Definition),
		listeners: make(map[EventType][]listenerSlot),
		newID:     defaultID,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register adds a screen destination.
func (e *Engine) Register(def Definition) *Engine {
	e.screens[def.Screen] = def
	return e
}

// Definition returns the registered definition for screen.
func (e *Engine) Definition(screen Screen) (Definition, bool) {
	def, ok := e.screens[screen]
	return def, ok
}

// Mount creates the stack with a single entry for the given screen.
// Mounting an already mounted engine is a no-op.
func (e *Engine) Mount(screen Screen, params Params) error {
	if e.stack != nil {
		return nil
	}
	def, ok := e.screens[screen]
	if !ok {
		return fmt.Errorf("router: screen %d not registered", screen)
	}
	e.stack = NewStack(e.newEntry(def, params))
	e.logger.Debug("navigator mounted", "screen", def.Name)
	return nil
}

// Unmount destroys the stack and drops queued operations.
// A transition in flight is abandoned without a TransitionEnd event.
func (e *Engine) Unmount() {
	e.stack = nil
	e.queue = nil
	e.inFlight = nil
	e.settleRequested = false
}

// Mounted reports whether the stack exists.
func (e *Engine) Mounted() bool {
	return e.stack != nil
}

// Push appends a new entry for screen, even if one already exists.
func (e *Engine) Push(screen Screen, params Params) {
	e.enqueue(request{op: OpPush, screen: screen, params: params.Clone()})
}

// Pop removes count entries from the top, leaving at least one.
func (e *Engine) Pop(count int) {
	e.enqueue(request{op: OpPop, count: count})
}

// PopToTop removes every entry above the first one.
func (e *Engine) PopToTop() {
	e.enqueue(request{op: OpPop, toTop: true})
}

// GoBack is Pop(1).
func (e *Engine) GoBack() {
	e.Pop(1)
}

// Replace swaps the active entry for a new entry for screen.
func (e *Engine) Replace(screen Screen, params Params) {
	e.enqueue(request{op: OpReplace, screen: screen, params: params.Clone()})
}

// SetParams merges partial into the active entry's params.
// No transition occurs; EventParamsChanged listeners are notified.
func (e *Engine) SetParams(partial Params) {
	e.enqueue(request{op: OpSetParams, params: partial.Clone()})
}

// Navigate returns to the entry for screen closest to the top, popping the
// entries above it and merging params into it. If no such entry exists it
// behaves like Push.
func (e *Engine) Navigate(screen Screen, params Params) {
	e.enqueue(request{op: OpNavigate, screen: screen, params: params.Clone()})
}

// Settle ends the transition in flight, emits its TransitionEnd event and
// applies queued operations. It reports whether a transition was settled.
func (e *Engine) Settle() bool {
	if e.inFlight == nil {
		return false
	}
	if e.emittingStart {
		e.settleRequested = true
		return true
	}
	e.finish()
	e.drain()
	return true
}

// InFlight reports whether a transition is waiting for Settle.
func (e *Engine) InFlight() bool {
	return e.inFlight != nil
}

// Pending returns the number of queued operations.
func (e *Engine) Pending() int {
	return len(e.queue)
}

// Entries returns snapshots of the stack from bottom to top.
// It returns nil when the engine is not mounted.
func (e *Engine) Entries() []Entry {
	if e.stack == nil {
		return nil
	}
	return e.stack.Entries()
}

// Top returns a snapshot of the active entry.
func (e *Engine) Top() (Entry, bool) {
	if e.stack == nil {
		return Entry{Screen: ScreenNone}, false
	}
	return e.stack.Peek().snapshot(), true
}

// Len returns the stack depth, or zero when not mounted.
func (e *Engine) Len() int {
	if e.stack == nil {
		return 0
	}
	return e.stack.Len()
}

// CanGoBack reports whether GoBack would change the stack.
func (e *Engine) CanGoBack() bool {
	return e.Len() > 1
}

// AddListener registers fn for events of type t.
// The returned function removes the listener.
func (e *Engine) AddListener(t EventType, fn Listener) (remove func()) {
	e.nextSlot++
	id := e.nextSlot
	e.listeners[t] = append(e.listeners[t], listenerSlot{id: id, fn: fn})

	return func() {
		e.listeners[t] = slices.DeleteFunc(e.listeners[t], func(s listenerSlot) bool {
			return s.id == id
		})
	}
}

func (e *Engine) enqueue(req request) {
	if e.stack == nil {
		e.logger.Debug("navigation ignored, not mounted", "op", req.op.String())
		return
	}
	e.queue = append(e.queue, req)
	e.drain()
}

func (e *Engine) drain() {
	if e.draining {
		return
	}
	e.draining = true
	defer func() { e.draining = false }()

	for e.inFlight == nil && len(e.queue) > 0 && e.stack != nil {
		req := e.queue[0]
		e.queue = e.queue[1:]
		e.apply(req)
	}
}

func (e *Engine) apply(req request) {
	from := e.stack.Peek().snapshot()

	switch req.op {
	case OpPush:
		def, ok := e.screens[req.screen]
		if !ok {
			e.logger.Debug("push ignored, unknown screen", "screen", int(req.screen))
			return
		}
		e.stack.Push(e.newEntry(def, req.params))
		e.begin(req.op, from, false)

	case OpPop:
		count := req.count
		if req.toTop {
			count = e.stack.Len() - 1
		}
		if e.stack.PopN(count) == 0 {
			e.logger.Debug("pop ignored", "count", count, "depth", e.stack.Len())
			return
		}
		e.begin(req.op, from, true)

	case OpReplace:
		def, ok := e.screens[req.screen]
		if !ok {
			e.logger.Debug("replace ignored, unknown screen", "screen", int(req.screen))
			return
		}
		e.stack.Replace(e.newEntry(def, req.params))
		e.begin(req.op, from, false)

	case OpNavigate:
		idx := e.stack.LastIndexOf(req.screen)
		if idx < 0 {
			def, ok := e.screens[req.screen]
			if !ok {
				e.logger.Debug("navigate ignored, unknown screen", "screen", int(req.screen))
				return
			}
			e.stack.Push(e.newEntry(def, req.params))
			e.begin(req.op, from, false)
			return
		}
		if idx == e.stack.Len()-1 {
			e.setParams(OpNavigate, req.params)
			return
		}
		e.stack.PopN(e.stack.Len() - 1 - idx)
		e.store.Merge(e.stack.Peek(), req.params)
		e.begin(req.op, from, true)

	case OpSetParams:
		e.setParams(OpSetParams, req.params)
	}
}

func (e *Engine) setParams(op Operation, partial Params) {
	if len(partial) == 0 {
		return
	}
	top := e.stack.Peek()
	from := top.snapshot()
	e.store.Merge(top, partial)
	e.emit(Event{
		Type: EventParamsChanged,
		Op:   op,
		From: from,
		To:   top.snapshot(),
	})
}

func (e *Engine) begin(op Operation, from Entry, back bool) {
	t := &transition{
		seq:  e.seq.Inc(),
		op:   op,
		from: from,
		to:   e.stack.Peek().snapshot(),
		back: back,
	}
	e.inFlight = t
	e.logger.Debug("transition start", "seq", t.seq, "op", op.String(), "from", from.Name, "to", t.to.Name)
	e.emittingStart = true
	e.emit(Event{Type: EventTransitionStart, Seq: t.seq, Op: op, From: t.from, To: t.to, Back: back})
	e.emittingStart = false

	settle := e.autoSettle || e.settleRequested
	e.settleRequested = false
	if settle && e.inFlight == t {
		e.finish()
	}
}

func (e *Engine) finish() {
	t := e.inFlight
	e.inFlight = nil
	e.logger.Debug("transition end", "seq", t.seq, "op", t.op.String(), "to", t.to.Name)
	e.emit(Event{Type: EventTransitionEnd, Seq: t.seq, Op: t.op, From: t.from, To: t.to, Back: t.back})
}

func (e *Engine) emit(ev Event) {
	for _, slot := range slices.Clone(e.listeners[ev.Type]) {
		slot.fn(ev)
	}
}

func (e *Engine) newEntry(def Definition, params Params) *Entry {
	return &Entry{
		ID:     e.newID(def.Name),
		Screen: def.Screen,
		Name:   def.Name,
		Params: def.InitialParams.Merged(params),
	}
}
