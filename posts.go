package folio

import (
	"context"
	"strconv"

	"github.com/eringen/folio/blocks"
	"github.com/eringen/folio/views"
)

// titleProperty is the database property holding each entry's display title.
const titleProperty = "Project Name"

// placeholderPost renders when the portfolio database has no completed
// entries. This is an explicit empty state, not an error.
var placeholderPost = views.Post{
	Title:   "No Posts Found",
	Content: "Nothing has been posted here just yet — check back soon.",
}

// loadPosts assembles the portfolio from the remote database: one child-block
// fetch and transcode per entry. The remote query already filters to
// completed entries and sorts by creation time descending; order is
// preserved, never re-sorted.
func (a *App) loadPosts(ctx context.Context) ([]views.Post, error) {
	dataSourceID, err := a.Notion.DataSourceID(ctx, a.Config.NotionDatabaseID)
	if err != nil {
		return nil, err
	}
	pages, err := a.Notion.QueryDataSource(ctx, dataSourceID)
	if err != nil {
		return nil, err
	}

	posts := make([]views.Post, 0, len(pages))
	for _, page := range pages {
		children, err := a.Notion.BlockChildren(ctx, page.ID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, views.Post{
			Title:   page.Title(titleProperty, "Untitled"),
			Content: blocks.HTML(children),
		})
	}
	return posts, nil
}

// parseIndex reads the pagination index from its query parameter.
// Non-numeric input is treated as index 0.
func parseIndex(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// selectPost clamps index into the post sequence and computes wraparound
// previous/next indices. An empty sequence yields the placeholder post with
// both navigation indices at 0.
func selectPost(posts []views.Post, index int) (post views.Post, prevIndex, nextIndex int) {
	n := len(posts)
	if n == 0 {
		return placeholderPost, 0, 0
	}
	if index < 0 {
		index = 0
	}
	if index > n-1 {
		index = n - 1
	}
	prevIndex = (index - 1 + n) % n
	nextIndex = (index + 1) % n
	return posts[index], prevIndex, nextIndex
}
