package simplestack

import (
	"log/slog"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/constants"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/focus"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/header"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/router"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/screens"
)

// NavigatorOptions configures a Navigator.
type NavigatorOptions struct {
	Platform      constants.Platform // Decides scroll behavior; see Focus
	InitialAuthor string             // Author of the initial Article entry
	Theme         header.Theme       // Custom header look; zero value uses header.DefaultTheme
	Translator    header.Translator  // Localizes titles; nil leaves message IDs
	Icons         *header.IconCache  // Back button glyphs; nil draws no glyph
	Focus         focus.Capability   // Accessibility focus API; nil disables focus requests
	Bodies        screens.Bodies     // Screen bodies supplied by the host
	Clock         screens.Clock      // Stamps NewsFeed dates; nil uses time.Now
	AutoSettle    bool               // Settle transitions immediately
	Logger        *slog.Logger       // nil discards
}

// View is everything a host needs to draw the active screen.
type View struct {
	Entry         router.Entry
	Header        header.Config
	HeaderElement header.Element
	Body          string
	Actions       []screens.Action
	Depth         int
	InFlight      bool
}

// Navigator is the simple stack demo: the three screens on a router.Engine,
// their headers, and accessibility focus on the custom header's title once a
// transition to it settles.
type Navigator struct {
	opts     NavigatorOptions
	engine   *router.Engine
	resolver *header.Resolver
	focus    *focus.Controller
	handles  focus.Handles
	element  header.Element
	logger   *slog.Logger
	detach   []func()
}

// NewNavigator creates an unmounted Navigator.
func NewNavigator(opts NavigatorOptions) *Navigator {
	if opts.Theme == (header.Theme{}) {
		opts.Theme = header.DefaultTheme()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	engineOpts := []router.Option{router.WithLogger(logger)}
	if opts.AutoSettle {
		engineOpts = append(engineOpts, router.WithAutoSettle())
	}

	return &Navigator{
		opts:     opts,
		engine:   screens.Register(router.New(engineOpts...), opts.InitialAuthor),
		resolver: screens.NewHeaderResolver(opts.Translator, opts.Icons),
		focus:    focus.NewController(opts.Focus, logger),
		logger:   logger,
	}
}

// Mount creates the stack with the initial Article entry and mounts its header.
func (n *Navigator) Mount() error {
	if n.engine.Mounted() {
		return nil
	}
	if err := n.engine.Mount(screens.Article, nil); err != nil {
		return NewInfrastructureError("mount", err)
	}

	// The header must mount before the focus controller sees the transition end.
	n.detach = append(n.detach,
		n.engine.AddListener(router.EventTransitionStart, func(ev router.Event) {
			n.mountHeader(ev.To)
		}),
		n.focus.Attach(n.engine),
	)

	top, _ := n.engine.Top()
	n.mountHeader(top)
	return nil
}

// Unmount destroys the stack and detaches every listener.
func (n *Navigator) Unmount() {
	for _, fn := range n.detach {
		fn()
	}
	n.detach = nil
	for _, s := range screens.All() {
		n.focus.Unregister(s)
	}
	n.element = header.Element{}
	n.engine.Unmount()
}

// Engine returns the navigation engine for issuing operations.
func (n *Navigator) Engine() *router.Engine {
	return n.engine
}

// Focus returns the focus controller.
func (n *Navigator) Focus() *focus.Controller {
	return n.focus
}

// Header returns the mounted header of the active screen.
func (n *Navigator) Header() header.Element {
	return n.element
}

// Current describes the active screen.
func (n *Navigator) Current() (View, error) {
	top, ok := n.engine.Top()
	if !ok {
		return View{}, ErrNotMounted
	}

	return View{
		Entry:         top,
		Header:        n.resolver.Resolve(top.Screen),
		HeaderElement: n.element,
		Body: n.opts.Bodies.Render(top.Screen, screens.Props{
			Params:        top.Params,
			ScrollEnabled: n.opts.Platform.ScrollEnabled(),
		}),
		Actions:  screens.Actions(top.Screen, n.opts.Clock),
		Depth:    n.engine.Len(),
		InFlight: n.engine.InFlight(),
	}, nil
}

// Press runs the i-th action of the active screen. It reports whether an
// action ran.
func (n *Navigator) Press(i int) bool {
	view, err := n.Current()
	if err != nil || i < 0 || i >= len(view.Actions) {
		return false
	}
	n.logger.Debug("action pressed", "screen", view.Entry.Name, "action", view.Actions[i].Label)
	view.Actions[i].Run(n.engine, view.Entry)
	return true
}

// Back presses the mounted header's back button, if it has one.
func (n *Navigator) Back() bool {
	if n.element.Back == nil {
		return false
	}
	n.element.Back.Press()
	return true
}

// Settle ends the transition in flight.
func (n *Navigator) Settle() bool {
	return n.engine.Settle()
}

func (n *Navigator) mountHeader(entry router.Entry) {
	n.element = n.resolver.Mount(entry.Screen, header.Props{
		Theme:     n.opts.Theme,
		CanGoBack: n.engine.CanGoBack(),
		OnBack:    n.engine.GoBack,
	})

	if n.element.Accessible() {
		n.focus.Register(entry.Screen, n.handles.Next())
	}

	// Screens no longer on the stack have no mounted header to focus.
	present := make(map[router.Screen]bool)
	for _, e := range n.engine.Entries() {
		present[e.Screen] = true
	}
	for _, s := range screens.All() {
		if !present[s] {
			n.focus.Unregister(s)
		}
	}
}
