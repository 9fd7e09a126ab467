package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/screens"
)

func scrollNote(p screens.Props) string {
	if p.ScrollEnabled {
		return "\n(scrolls independently)"
	}
	return ""
}

// demoBodies returns placeholder content for the three screens.
func demoBodies() screens.Bodies {
	return screens.Bodies{
		screens.Article: screens.BodyFunc(func(p screens.Props) string {
			return fmt.Sprintf("What is Lorem Ipsum?\nby %s\n\n%s",
				screens.AuthorName(p.Params),
				"Lorem Ipsum is simply dummy text of the printing and typesetting industry.",
			) + scrollNote(p)
		}),
		screens.NewsFeed: screens.BodyFunc(func(p screens.Props) string {
			date := "unknown date"
			if f, ok := screens.NewsFeedParamsFrom(p.Params); ok {
				date = time.UnixMilli(f.Date).Format(time.DateTime)
			}
			return fmt.Sprintf("News as of %s\n\n• Local team wins\n• Weather stays mild", date) + scrollNote(p)
		}),
		screens.Albums: screens.BodyFunc(func(p screens.Props) string {
			covers := []string{"Abbey Road", "Blue", "Kind of Blue", "Rumours"}
			return strings.Join(covers, "  ·  ") + scrollNote(p)
		}),
	}
}
