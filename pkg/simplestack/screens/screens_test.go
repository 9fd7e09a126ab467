package screens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/router"
)

func fixedClock() time.Time {
	return time.UnixMilli(1700000000000)
}

func newEngine(t *testing.T) *router.Engine {
	t.Helper()
	e := Register(router.New(router.WithAutoSettle()), "")
	require.NoError(t, e.Mount(Article, nil))
	return e
}

func top(t *testing.T, e *router.Engine) router.Entry {
	t.Helper()
	entry, ok := e.Top()
	require.True(t, ok)
	return entry
}

func run(t *testing.T, e *router.Engine, label string) {
	t.Helper()
	entry := top(t, e)
	for _, a := range Actions(entry.Screen, fixedClock) {
		if a.Label == label {
			a.Run(e, entry)
			return
		}
	}
	t.Fatalf("no action %q on %s", label, entry.Name)
}

func TestNames(t *testing.T) {
	for _, s := range All() {
		got, ok := Parse(Name(s))
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := Parse("Settings")
	assert.False(t, ok)
	assert.Equal(t, "", Name(router.Screen(9)))
}

func TestDefinitions(t *testing.T) {
	defs := Definitions("")
	require.Len(t, defs, 3)
	assert.Equal(t, router.Params{ParamAuthor: "Gandalf"}, defs[0].InitialParams)
	assert.Nil(t, defs[1].InitialParams)
	assert.Nil(t, defs[2].InitialParams)

	assert.Equal(t, router.Params{ParamAuthor: "Arthur"}, Definitions("Arthur")[0].InitialParams)
}

func TestArticleParams(t *testing.T) {
	a, ok := ArticleParamsFrom(router.Params{ParamAuthor: "Gandalf"})
	assert.True(t, ok)
	assert.Equal(t, "Gandalf", a.Author)

	_, ok = ArticleParamsFrom(nil)
	assert.False(t, ok)
	assert.Equal(t, UnknownAuthor, AuthorName(nil))
	assert.Equal(t, UnknownAuthor, AuthorName(router.Params{ParamAuthor: 42}))
}

func TestNewsFeedParams(t *testing.T) {
	for _, v := range []any{int64(5), 5, int32(5), float64(5)} {
		p, ok := NewsFeedParamsFrom(router.Params{ParamDate: v})
		assert.True(t, ok)
		assert.Equal(t, int64(5), p.Date)
	}
	_, ok := NewsFeedParamsFrom(router.Params{ParamDate: "yesterday"})
	assert.False(t, ok)
}

func TestArticleActions(t *testing.T) {
	e := newEngine(t)
	original := top(t, e)

	run(t, e, "Update params")
	assert.Equal(t, "Babel fish", AuthorName(top(t, e).Params))
	assert.Equal(t, original.ID, top(t, e).ID)

	run(t, e, "Update params")
	assert.Equal(t, "Gandalf", AuthorName(top(t, e).Params))

	run(t, e, "Pop screen")
	assert.Equal(t, 1, e.Len())

	run(t, e, "Replace with feed")
	feed := top(t, e)
	assert.Equal(t, NewsFeed, feed.Screen)
	assert.Equal(t, 1, e.Len())
	p, ok := NewsFeedParamsFrom(feed.Params)
	require.True(t, ok)
	assert.Equal(t, int64(1700000000000), p.Date)
}

func TestDemoWalkthrough(t *testing.T) {
	e := newEngine(t)
	e.Push(NewsFeed, NewsFeedParams{Date: 1}.Params())

	run(t, e, "Navigate to album")
	assert.Equal(t, Albums, top(t, e).Screen)

	run(t, e, "Push article")
	assert.Equal(t, "Babel fish", AuthorName(top(t, e).Params))
	assert.Equal(t, 4, e.Len())

	run(t, e, "Pop screen")
	run(t, e, "Pop by 2")
	assert.Equal(t, 1, e.Len())
	assert.Equal(t, Article, top(t, e).Screen)

	e.Push(NewsFeed, NewsFeedParams{Date: 2}.Params())
	run(t, e, "Go back")
	assert.Equal(t, 1, e.Len())
}

func TestActionsUnknownScreen(t *testing.T) {
	assert.Nil(t, Actions(router.Screen(9), nil))
	assert.Len(t, Actions(Article, nil), 3)
}

func TestHeaderResolver(t *testing.T) {
	r := NewHeaderResolver(nil, nil)

	article := r.Resolve(Article)
	assert.True(t, article.Suppressed)
	assert.True(t, article.Custom())
	assert.Equal(t, "Miniapp Screen Title", article.Title)

	feed := r.Resolve(NewsFeed)
	assert.False(t, feed.Suppressed)
	assert.False(t, feed.Custom())
	assert.Equal(t, "Feed", feed.Title)

	albums := r.Resolve(Albums)
	assert.False(t, albums.Suppressed)
	assert.Equal(t, "Albums", albums.Title)
}

func TestBodies(t *testing.T) {
	bodies := Bodies{
		Article: BodyFunc(func(p Props) string { return "by " + AuthorName(p.Params) }),
	}
	assert.Equal(t, "by Gandalf", bodies.Render(Article, Props{Params: router.Params{ParamAuthor: "Gandalf"}}))
	assert.Equal(t, "", bodies.Render(Albums, Props{}))
}
