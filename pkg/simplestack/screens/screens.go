// Package screens defines the three screens of the simple stack demo:
// Article, NewsFeed and Albums, with their params, headers and actions.
package screens

import (
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/constants"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/router"
)

const (
	Article router.Screen = iota
	NewsFeed
	Albums
)

// Name returns the route name of a screen, or "" for unknown screens.
func Name(s router.Screen) string {
	switch s {
	case Article:
		return "Article"
	case NewsFeed:
		return "NewsFeed"
	case Albums:
		return "Albums"
	default:
		return ""
	}
}

// Parse maps a route name back to its screen.
func Parse(name string) (router.Screen, bool) {
	for _, s := range All() {
		if Name(s) == name {
			return s, true
		}
	}
	return router.ScreenNone, false
}

// All returns every screen in declaration order.
func All() []router.Screen {
	return []router.Screen{Article, NewsFeed, Albums}
}

// Param keys.
const (
	ParamAuthor = "author"
	ParamDate   = "date"
)

// UnknownAuthor is shown when an Article has no author param.
const UnknownAuthor = "Unknown"

// ArticleParams are the optional params of an Article entry.
type ArticleParams struct {
	Author string
}

func (p ArticleParams) Params() router.Params {
	return router.Params{ParamAuthor: p.Author}
}

// ArticleParamsFrom reads Article params. ok is false when no author is set.
func ArticleParamsFrom(p router.Params) (params ArticleParams, ok bool) {
	author, ok := p[ParamAuthor].(string)
	return ArticleParams{Author: author}, ok
}

// AuthorName returns the author to display for an Article entry.
func AuthorName(p router.Params) string {
	if a, ok := ArticleParamsFrom(p); ok {
		return a.Author
	}
	return UnknownAuthor
}

// NewsFeedParams are the required params of a NewsFeed entry.
type NewsFeedParams struct {
	Date int64 // Unix milliseconds
}

func (p NewsFeedParams) Params() router.Params {
	return router.Params{ParamDate: p.Date}
}

// NewsFeedParamsFrom reads NewsFeed params. Integer values of any width are
// accepted since params may come from decoded config.
func NewsFeedParamsFrom(p router.Params) (params NewsFeedParams, ok bool) {
	switch v := p[ParamDate].(type) {
	case int64:
		return NewsFeedParams{Date: v}, true
	case int:
		return NewsFeedParams{Date: int64(v)}, true
	case int32:
		return NewsFeedParams{Date: int64(v)}, true
	case float64:
		return NewsFeedParams{Date: int64(v)}, true
	default:
		return NewsFeedParams{}, false
	}
}

// Definitions returns the router definitions of every screen. Article
// entries default to the given author.
func Definitions(initialAuthor string) []router.Definition {
	if initialAuthor == "" {
		initialAuthor = constants.DefaultInitialAuthor
	}
	return []router.Definition{
		{Screen: Article, Name: Name(Article), InitialParams: ArticleParams{Author: initialAuthor}.Params()},
		{Screen: NewsFeed, Name: Name(NewsFeed)},
		{Screen: Albums, Name: Name(Albums)},
	}
}

// Register adds every screen definition to the engine.
func Register(e *router.Engine, initialAuthor string) *router.Engine {
	for _, def := range Definitions(initialAuthor) {
		e.Register(def)
	}
	return e
}
