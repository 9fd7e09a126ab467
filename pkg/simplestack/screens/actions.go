package screens

import (
	"time"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/router"
)

// Navigation is the subset of router.Engine that screen actions use.
type Navigation interface {
	Push(screen router.Screen, params router.Params)
	Pop(count int)
	Replace(screen router.Screen, params router.Params)
	SetParams(partial router.Params)
	Navigate(screen router.Screen, params router.Params)
	GoBack()
}

// Action is a button shown in a screen body.
type Action struct {
	Label   string
	Primary bool // Drawn as the contained button; the rest are outlined
	Run     func(nav Navigation, entry router.Entry)
}

// Clock returns the current time. It stamps NewsFeed dates.
type Clock func() time.Time

// Actions returns the buttons of screen in display order.
func Actions(screen router.Screen, now Clock) []Action {
	if now == nil {
		now = time.Now
	}

	switch screen {
	case Article:
		return []Action{
			{
				Label:   "Replace with feed",
				Primary: true,
				Run: func(nav Navigation, _ router.Entry) {
					nav.Replace(NewsFeed, NewsFeedParams{Date: now().UnixMilli()}.Params())
				},
			},
			{
				Label: "Update params",
				Run: func(nav Navigation, entry router.Entry) {
					nav.SetParams(ArticleParams{Author: ToggleAuthor(entry.Params)}.Params())
				},
			},
			{
				Label: "Pop screen",
				Run: func(nav Navigation, _ router.Entry) {
					nav.Pop(1)
				},
			},
		}

	case NewsFeed:
		return []Action{
			{
				Label:   "Navigate to album",
				Primary: true,
				Run: func(nav Navigation, _ router.Entry) {
					nav.Navigate(Albums, nil)
				},
			},
			{
				Label: "Go back",
				Run: func(nav Navigation, _ router.Entry) {
					nav.GoBack()
				},
			},
		}

	case Albums:
		return []Action{
			{
				Label:   "Push article",
				Primary: true,
				Run: func(nav Navigation, _ router.Entry) {
					nav.Push(Article, ArticleParams{Author: "Babel fish"}.Params())
				},
			},
			{
				Label: "Pop by 2",
				Run: func(nav Navigation, _ router.Entry) {
					nav.Pop(2)
				},
			},
		}

	default:
		return nil
	}
}

// ToggleAuthor flips an Article's author between Gandalf and Babel fish.
func ToggleAuthor(p router.Params) string {
	if a, _ := ArticleParamsFrom(p); a.Author == "Gandalf" {
		return "Babel fish"
	}
	return "Gandalf"
}
