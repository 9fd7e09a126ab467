// Package header derives the chrome shown above each screen.
//
// A Resolver maps screens to a static Config: either the host's default
// header with a title, or a custom Renderer with the host chrome suppressed.
// Configs are per screen definition, never per stack entry.
package header

import (
	"image"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/router"
)

// RoleHeader marks an element as a heading for assistive technology.
const RoleHeader = "header"

// Config is the header configuration for one screen.
// An empty Title or a nil Renderer means none.
type Config struct {
	Suppressed bool     // Host chrome is hidden; Renderer draws the header
	Title      string   // Message ID of the title
	Renderer   Renderer // Custom header, nil for default chrome
}

// Custom reports whether the screen draws its own header.
func (c Config) Custom() bool {
	return c.Renderer != nil
}

// Props are handed to a Renderer when a header mounts.
type Props struct {
	Title     string // Localized title
	BackLabel string // Localized back button label
	Theme     Theme
	CanGoBack bool
	OnBack    func()
}

// Element is a mounted header.
type Element struct {
	Title      string
	Role       string // RoleHeader when the title is announced as a heading
	TitleAlign TextAlign
	Theme      Theme
	Back       *BackButton // nil when the header has no back button
}

// Accessible reports whether the element has a title assistive technology
// can focus.
func (e Element) Accessible() bool {
	return e.Role == RoleHeader && e.Title != ""
}

// BackButton is the tappable back control inside a header.
type BackButton struct {
	Label   string
	Icon    *image.RGBA // nil when the glyph could not be rasterized
	onPress func()
}

// NewBackButton creates a back control that calls onPress when pressed.
func NewBackButton(label string, icon *image.RGBA, onPress func()) *BackButton {
	return &BackButton{Label: label, Icon: icon, onPress: onPress}
}

// Press activates the button.
func (b *BackButton) Press() {
	if b != nil && b.onPress != nil {
		b.onPress()
	}
}

// Renderer draws a custom header.
type Renderer interface {
	Render(props Props) Element
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(props Props) Element

func (f RendererFunc) Render(props Props) Element {
	return f(props)
}

// Translator turns a title message ID into display text.
type Translator interface {
	Translate(id string) string
}

type identity struct{}

func (identity) Translate(id string) string { return id }

// Resolver maps screens to their header configuration.
type Resolver struct {
	configs    map[router.Screen]Config
	translator Translator
}

// NewResolver creates a Resolver. A nil translator leaves titles untouched.
func NewResolver(translator Translator) *Resolver {
	if translator == nil {
		translator = identity{}
	}
	return &Resolver{
		configs:    make(map[router.Screen]Config),
		translator: translator,
	}
}

// Define sets the header configuration of screen.
func (r *Resolver) Define(screen router.Screen, cfg Config) *Resolver {
	r.configs[screen] = cfg
	return r
}

// Resolve returns the header configuration of screen with its title
// localized. Undefined screens get default chrome without a title.
func (r *Resolver) Resolve(screen router.Screen) Config {
	cfg := r.configs[screen]
	if cfg.Title != "" {
		cfg.Title = r.translator.Translate(cfg.Title)
	}
	return cfg
}

// Mount renders the header of screen. Custom headers go through their
// Renderer; default chrome becomes a plain titled element whose back
// button appears only when the stack can go back.
func (r *Resolver) Mount(screen router.Screen, props Props) Element {
	cfg := r.Resolve(screen)
	props.Title = cfg.Title
	props.BackLabel = r.translator.Translate(BackLabel)
	if cfg.Custom() {
		return cfg.Renderer.Render(props)
	}

	el := Element{
		Title:      cfg.Title,
		TitleAlign: TextAlignLeft,
		Theme:      props.Theme,
	}
	if props.CanGoBack {
		el.Back = NewBackButton(props.BackLabel, nil, props.OnBack)
	}
	return el
}
