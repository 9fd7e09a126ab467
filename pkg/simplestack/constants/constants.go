// Package constants defines shared constants, types, and configuration values
// used throughout simplestack.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the demo host.
const (
	EnvironmentEnvVar = "ENVIRONMENT"
	PlatformEnvVar    = "SIMPLESTACK_PLATFORM"
	LocaleEnvVar      = "SIMPLESTACK_LOCALE"
	LogLevelEnvVar    = "SIMPLESTACK_LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Platform identifies the host platform family. It decides which optional
// capabilities are available, such as programmatic accessibility focus.
type Platform int

const (
	PlatformDefault Platform = iota // Any platform without special handling
	PlatformIOS
	PlatformAndroid
	PlatformWeb
)

func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "ios"
	case PlatformAndroid:
		return "android"
	case PlatformWeb:
		return "web"
	default:
		return "default"
	}
}

// ParsePlatform maps a platform name to a Platform. Matching ignores case.
func ParsePlatform(name string) (Platform, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ios":
		return PlatformIOS, true
	case "android":
		return PlatformAndroid, true
	case "web":
		return PlatformWeb, true
	case "", "default":
		return PlatformDefault, true
	default:
		return PlatformDefault, false
	}
}

// ScrollEnabled is the scroll behavior flag handed to screen bodies.
// Only the web platform scrolls screen bodies itself.
func (p Platform) ScrollEnabled() bool {
	return p == PlatformWeb
}

// SupportsAccessibilityFocus reports whether the platform can move
// assistive-technology focus programmatically.
func (p Platform) SupportsAccessibilityFocus() bool {
	return p == PlatformIOS
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Defaults used when no configuration is supplied.
const (
	DefaultTransitionDuration = 250 * time.Millisecond // Time a transition takes to settle in the demo host
	DefaultInitialAuthor      = "Gandalf"              // Author param of the initial Article entry
	DefaultLocale             = "en"
	DefaultLogLevel           = "info"
)
