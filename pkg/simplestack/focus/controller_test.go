package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/constants"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/router"
)

const (
	screenArticle router.Screen = iota
	screenFeed
)

type stubCapability struct {
	supported bool
	requests  []Handle
}

func (s *stubCapability) IsSupported() bool     { return s.supported }
func (s *stubCapability) RequestFocus(h Handle) { s.requests = append(s.requests, h) }

func newEngine(t *testing.T) *router.Engine {
	t.Helper()
	e := router.New()
	e.Register(router.Definition{Screen: screenArticle, Name: "Article"})
	e.Register(router.Definition{Screen: screenFeed, Name: "NewsFeed"})
	require.NoError(t, e.Mount(screenArticle, nil))
	return e
}

func TestFocusRequestedOnTransitionEnd(t *testing.T) {
	e := newEngine(t)
	capability := &stubCapability{supported: true}
	c := NewController(capability, nil)
	c.Attach(e)
	c.Register(screenArticle, 7)

	e.Push(screenFeed, nil)
	assert.Equal(t, StateAwaitingFocusTarget, c.State())
	e.Settle()
	assert.Empty(t, capability.requests, "feed has no registered target")
	assert.Equal(t, StateIdle, c.State())

	e.GoBack()
	assert.Empty(t, capability.requests, "focus must wait for the transition to end")
	e.Settle()

	assert.Equal(t, []Handle{7}, capability.requests)
	assert.Equal(t, StateIdle, c.State())
}

func TestFocusWhenEarlierListenerSettles(t *testing.T) {
	e := newEngine(t)
	e.AddListener(router.EventTransitionStart, func(router.Event) { e.Settle() })

	capability := &stubCapability{supported: true}
	c := NewController(capability, nil)
	c.Attach(e)
	c.Register(screenFeed, 3)

	e.Push(screenFeed, nil)

	assert.False(t, e.InFlight())
	assert.Equal(t, []Handle{3}, capability.requests)
	assert.Equal(t, StateIdle, c.State())
}

func TestUnsupportedCapabilityIsNoop(t *testing.T) {
	e := newEngine(t)
	capability := &stubCapability{supported: false}
	c := NewController(capability, nil)
	c.Attach(e)
	c.Register(screenFeed, 3)

	e.Push(screenFeed, nil)
	e.Settle()

	assert.Empty(t, capability.requests)
	assert.Equal(t, StateIdle, c.State())
}

func TestNilCapabilityIsNoop(t *testing.T) {
	e := newEngine(t)
	c := NewController(nil, nil)
	c.Attach(e)
	c.Register(screenFeed, 3)

	assert.NotPanics(t, func() {
		e.Push(screenFeed, nil)
		e.Settle()
	})
}

func TestRegisterAndUnregister(t *testing.T) {
	c := NewController(Nop{}, nil)

	c.Register(screenArticle, 5)
	h, ok := c.Target(screenArticle)
	assert.True(t, ok)
	assert.Equal(t, Handle(5), h)

	c.Register(screenArticle, 0)
	_, ok = c.Target(screenArticle)
	assert.False(t, ok)

	c.Register(screenArticle, 6)
	c.Unregister(screenArticle)
	_, ok = c.Target(screenArticle)
	assert.False(t, ok)
}

func TestDetach(t *testing.T) {
	e := newEngine(t)
	capability := &stubCapability{supported: true}
	c := NewController(capability, nil)
	detach := c.Attach(e)
	c.Register(screenFeed, 1)

	e.Push(screenFeed, nil)
	detach()
	e.Settle()

	assert.Empty(t, capability.requests)
	assert.Equal(t, StateIdle, c.State())
}

func TestForPlatform(t *testing.T) {
	var got []Handle
	request := func(h Handle) { got = append(got, h) }

	ios := ForPlatform(constants.PlatformIOS, request)
	assert.True(t, ios.IsSupported())
	ios.RequestFocus(9)
	assert.Equal(t, []Handle{9}, got)

	for _, p := range []constants.Platform{constants.PlatformAndroid, constants.PlatformWeb, constants.PlatformDefault} {
		capability := ForPlatform(p, request)
		assert.False(t, capability.IsSupported(), p.String())
		capability.RequestFocus(1)
	}
	assert.Equal(t, []Handle{9}, got)

	assert.False(t, ForPlatform(constants.PlatformIOS, nil).IsSupported())
}

func TestHandlesAreUnique(t *testing.T) {
	var handles Handles
	seen := map[Handle]bool{}
	for i := 0; i < 100; i++ {
		h := handles.Next()
		assert.NotZero(t, h)
		assert.False(t, seen[h])
		seen[h] = true
	}
}
