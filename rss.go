package folio

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	GUID        string `xml:"guid"`
}

// handleFeed serves an RSS feed of the portfolio. Entries carry no creation
// date of their own, so items have no pubDate.
func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.loadPosts(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]rssItem, 0, len(posts))
	for i, p := range posts {
		link := fmt.Sprintf("%s/portfolio?index=%d", a.Config.URL, i)
		items = append(items, rssItem{
			Title: p.Title,
			Link:  link,
			GUID:  link,
		})
	}
	feed := rss{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        a.Config.URL,
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
