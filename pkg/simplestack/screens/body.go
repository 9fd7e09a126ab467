package screens

import "github.com/BrandonKowalski/simplestack/pkg/simplestack/router"

// Props are handed to a screen body when it renders.
type Props struct {
	Params        router.Params
	ScrollEnabled bool
}

// Body renders the content of a screen below its buttons.
// Bodies are supplied by the host; the navigator treats them as opaque.
type Body interface {
	Render(props Props) string
}

// BodyFunc adapts a function to a Body.
type BodyFunc func(props Props) string

func (f BodyFunc) Render(props Props) string {
	return f(props)
}

// Bodies maps screens to their body.
type Bodies map[router.Screen]Body

// Render renders the body of screen, or "" when the host supplied none.
func (b Bodies) Render(screen router.Screen, props Props) string {
	body, ok := b[screen]
	if !ok || body == nil {
		return ""
	}
	return body.Render(props)
}
