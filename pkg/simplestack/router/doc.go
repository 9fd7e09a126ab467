// Package router provides a stack navigator with typed screens and explicit
// transition events.
//
// The Engine owns an ordered stack of entries. Each entry is an instance of a
// registered screen with its own params and a stable identifier. Operations
// mirror the usual stack navigator vocabulary: Push, Pop, PopToTop, Replace,
// Navigate, SetParams and GoBack.
//
// # Basic Usage
//
//	const (
//	    ScreenArticle router.Screen = iota
//	    ScreenFeed
//	)
//
//	e := router.New()
//	e.Register(router.Definition{
//	    Screen:        ScreenArticle,
//	    Name:          "Article",
//	    InitialParams: router.Params{"author": "Gandalf"},
//	})
//	e.Register(router.Definition{Screen: ScreenFeed, Name: "NewsFeed"})
//
//	e.AddListener(router.EventTransitionEnd, func(ev router.Event) {
//	    fmt.Println("now showing", ev.To.Name)
//	})
//
//	_ = e.Mount(ScreenArticle, nil)
//	e.Push(ScreenFeed, router.Params{"date": time.Now().UnixMilli()})
//	e.Settle() // called by the host once the visual transition is done
//
// # Transitions
//
// Every operation that changes the active entry emits EventTransitionStart
// immediately and EventTransitionEnd when the host calls Settle. While a
// transition is in flight, further operations are queued and applied one at a
// time, in the order they were issued. Hosts without visual transitions can
// pass WithAutoSettle to end each transition as soon as it starts.
//
// SetParams, and Navigate to the entry that is already active, change params
// in place and emit EventParamsChanged instead of a transition.
//
// # Clamping
//
// The stack never drops below one entry. Pop counts larger than the stack are
// clamped and operations naming unregistered screens are ignored; nothing is
// reported back to the caller.
package router
