package screens

import (
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/header"
)

// Header title message IDs.
const (
	TitleArticle  = "Miniapp Screen Title"
	TitleNewsFeed = "Feed"
	TitleAlbums   = "Albums"
)

// NewHeaderResolver returns the header configuration of every screen.
// Article hides the host chrome and draws its own header; the other screens
// use the default chrome with a title.
func NewHeaderResolver(translator header.Translator, icons *header.IconCache) *header.Resolver {
	return header.NewResolver(translator).
		Define(Article, header.Config{
			Suppressed: true,
			Title:      TitleArticle,
			Renderer:   header.NavHeader{Icons: icons},
		}).
		Define(NewsFeed, header.Config{Title: TitleNewsFeed}).
		Define(Albums, header.Config{Title: TitleAlbums})
}
