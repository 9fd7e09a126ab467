package router_test

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/router"
)

// Screen identifiers - use typed constants for compile-time safety
const (
	ScreenArticle router.Screen = iota
	ScreenNewsFeed
	ScreenAlbums
)

func newExampleEngine(opts ...router.Option) *router.Engine {
	ids := map[string]int{}
	opts = append(opts, router.WithIDGenerator(func(name string) string {
		ids[name]++
		return fmt.Sprintf("%s-%d", name, ids[name])
	}))

	e := router.New(opts...)
	e.Register(router.Definition{
		Screen:        ScreenArticle,
		Name:          "Article",
		InitialParams: router.Params{"author": "Gandalf"},
	})
	e.Register(router.Definition{Screen: ScreenNewsFeed, Name: "NewsFeed"})
	e.Register(router.Definition{Screen: ScreenAlbums, Name: "Albums"})
	return e
}

func printStack(e *router.Engine) {
	var names []string
	for _, entry := range e.Entries() {
		names = append(names, entry.ID)
	}
	fmt.Println("[" + strings.Join(names, " ") + "]")
}

// Example demonstrates pushing screens and popping several at once.
func Example() {
	e := newExampleEngine(router.WithAutoSettle())
	_ = e.Mount(ScreenArticle, nil)

	e.Push(ScreenNewsFeed, router.Params{"date": int64(1700000000000)})
	e.Push(ScreenAlbums, nil)
	printStack(e)

	e.Pop(2)
	printStack(e)

	// Over-popping leaves the root entry in place
	e.Pop(10)
	printStack(e)

	// Output:
	// [Article-1 NewsFeed-1 Albums-1]
	// [Article-1]
	// [Article-1]
}

// Example_transitions shows the event pairs emitted for each operation and how
// operations issued during a transition are queued.
func Example_transitions() {
	e := newExampleEngine()
	_ = e.Mount(ScreenArticle, nil)

	e.AddListener(router.EventTransitionStart, func(ev router.Event) {
		fmt.Printf("start #%d %s %s -> %s\n", ev.Seq, ev.Op, ev.From.Name, ev.To.Name)
	})
	e.AddListener(router.EventTransitionEnd, func(ev router.Event) {
		fmt.Printf("end   #%d %s\n", ev.Seq, ev.To.Name)
	})

	e.Push(ScreenNewsFeed, router.Params{"date": int64(1)})
	e.Navigate(ScreenAlbums, nil) // queued behind the push
	fmt.Println("pending:", e.Pending())

	e.Settle()
	e.Settle()

	// Output:
	// start #1 push Article -> NewsFeed
	// pending: 1
	// end   #1 NewsFeed
	// start #2 navigate NewsFeed -> Albums
	// end   #2 Albums
}

// Example_setParams updates params in place without a transition.
func Example_setParams() {
	e := newExampleEngine(router.WithAutoSettle())
	_ = e.Mount(ScreenArticle, nil)

	e.AddListener(router.EventParamsChanged, func(ev router.Event) {
		fmt.Printf("%s: %v -> %v\n", ev.To.ID, ev.From.Params["author"], ev.To.Params["author"])
	})

	e.SetParams(router.Params{"author": "Babel fish"})

	// Output:
	// Article-1: Gandalf -> Babel fish
}
