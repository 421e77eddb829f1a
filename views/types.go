package views

// Site holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type Site struct {
	Name        string // SITE_NAME (default "Portfolio")
	URL         string // SITE_URL  (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// Post is one portfolio entry assembled from remote content. Content is
// pre-rendered HTML; it is never persisted.
type Post struct {
	Title   string
	Content string
}

// Icon is an optional page icon shown next to the portfolio heading.
type Icon struct {
	Kind  string // "emoji" or "url"
	Value string
}

// Flash is a one-shot notice carried through the session between a redirect
// and the next page render.
type Flash struct {
	Level   string // "info", "success", "warning", "danger"
	Message string
}
