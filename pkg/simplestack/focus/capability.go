// Package focus moves assistive-technology focus to a screen's header title
// once a navigation transition has settled.
package focus

import (
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/constants"
)

// Handle refers to a mounted UI element that can receive accessibility focus.
// The zero Handle refers to nothing.
type Handle uint64

// Capability is the platform's programmatic accessibility focus API.
type Capability interface {
	IsSupported() bool
	RequestFocus(h Handle)
}

// Nop is a Capability for platforms without programmatic focus.
type Nop struct{}

func (Nop) IsSupported() bool   { return false }
func (Nop) RequestFocus(Handle) {}

// Func adapts a function to a supported Capability.
type Func func(h Handle)

func (f Func) IsSupported() bool { return f != nil }

func (f Func) RequestFocus(h Handle) {
	if f != nil {
		f(h)
	}
}

// ForPlatform returns request as a Capability on platforms that support
// programmatic accessibility focus and Nop everywhere else.
func ForPlatform(p constants.Platform, request func(Handle)) Capability {
	if !p.SupportsAccessibilityFocus() || request == nil {
		return Nop{}
	}
	return Func(request)
}

// Handles allocates element handles. The zero value is ready to use.
type Handles struct {
	last atomic.Uint64
}

// Next returns a new, non-zero handle.
func (h *Handles) Next() Handle {
	return Handle(h.last.Inc())
}
