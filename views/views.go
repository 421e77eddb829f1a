// Package views contains the server-rendered pages as templ components.
// Components build their markup through a bytes.Buffer; user-derived values
// are escaped, pre-rendered post content is not.
package views

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

func component(render func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		render(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeHead(buf *bytes.Buffer, site Site, title string) {
	buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	buf.WriteString("<title>")
	buf.WriteString(html.EscapeString(title + " · " + site.Name))
	buf.WriteString("</title>")
	if site.Description != "" {
		buf.WriteString(`<meta name="description" content="` + html.EscapeString(site.Description) + `">`)
	}
	buf.WriteString(`<link rel="stylesheet" href="/public/site.css">`)
	buf.WriteString(`<script type="application/ld+json">` + websiteJsonLD(site) + `</script>`)
	buf.WriteString("</head><body>")
	writeNav(buf, site)
	buf.WriteString(`<main class="container">`)
}

func writeNav(buf *bytes.Buffer, site Site) {
	buf.WriteString(`<nav class="site-nav"><a class="brand" href="/">`)
	buf.WriteString(html.EscapeString(site.Name))
	buf.WriteString(`</a><ul>`)
	for _, link := range [][2]string{
		{"/", "Home"},
		{"/about", "About"},
		{"/portfolio", "Portfolio"},
		{"/contact", "Contact"},
	} {
		buf.WriteString(`<li><a href="` + link[0] + `">` + link[1] + `</a></li>`)
	}
	buf.WriteString("</ul></nav>")
}

func writeFoot(buf *bytes.Buffer, site Site) {
	buf.WriteString("</main><footer><p>© ")
	buf.WriteString(html.EscapeString(site.Author))
	buf.WriteString("</p></footer></body></html>")
}

// writeFlashes renders one-shot notices as dismissible alert boxes.
func writeFlashes(buf *bytes.Buffer, flashes []Flash) {
	for _, f := range flashes {
		buf.WriteString(`<div class="alert alert-` + f.Level + `" role="alert">`)
		buf.WriteString(html.EscapeString(f.Message))
		buf.WriteString("</div>")
	}
}

func websiteJsonLD(site Site) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      site.URL,
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Home renders the landing page.
func Home(site Site) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, site, "Home")
		buf.WriteString(`<section class="hero"><h1>`)
		buf.WriteString(html.EscapeString(site.Name))
		buf.WriteString("</h1>")
		if site.Description != "" {
			buf.WriteString("<p>" + html.EscapeString(site.Description) + "</p>")
		}
		buf.WriteString(`<p><a class="button" href="/portfolio">See my work</a> `)
		buf.WriteString(`<a class="button" href="/contact">Get in touch</a></p></section>`)
		writeFoot(buf, site)
	})
}

// About renders the about page.
func About(site Site) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, site, "About Me")
		buf.WriteString(`<section class="about"><h1>About Me</h1><p>Hi, I'm `)
		buf.WriteString(html.EscapeString(site.Author))
		buf.WriteString(`. I build things and write about them here. `)
		buf.WriteString(`Browse the <a href="/portfolio">portfolio</a> or `)
		buf.WriteString(`<a href="/contact">send me a message</a>.</p></section>`)
		writeFoot(buf, site)
	})
}

// Portfolio renders a single portfolio entry with wraparound navigation.
// The post content is pre-rendered HTML and is written unescaped.
func Portfolio(site Site, post Post, icon Icon, prevIndex, nextIndex int) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, site, post.Title)
		buf.WriteString(`<section class="portfolio"><header class="portfolio-head">`)
		switch icon.Kind {
		case "emoji":
			buf.WriteString(`<span class="page-icon">` + html.EscapeString(icon.Value) + `</span>`)
		case "url":
			buf.WriteString(`<img class="page-icon" src="` + html.EscapeString(icon.Value) + `" alt="">`)
		}
		buf.WriteString("<h1>")
		buf.WriteString(html.EscapeString(post.Title))
		buf.WriteString("</h1></header>")
		buf.WriteString(`<article class="portfolio-body">`)
		buf.WriteString(post.Content)
		buf.WriteString("</article>")
		buf.WriteString(`<nav class="pager">`)
		buf.WriteString(`<a href="/portfolio?index=` + strconv.Itoa(prevIndex) + `">&larr; Previous</a>`)
		buf.WriteString(`<a href="/portfolio?index=` + strconv.Itoa(nextIndex) + `">Next &rarr;</a>`)
		buf.WriteString("</nav></section>")
		writeFoot(buf, site)
	})
}

// Contact renders the contact form with any pending notices and the CSRF
// token as a hidden field.
func Contact(site Site, flashes []Flash, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, site, "Contact Me")
		buf.WriteString(`<section class="contact"><h1>Contact Me</h1>`)
		writeFlashes(buf, flashes)
		buf.WriteString(`<form method="post" action="/contact">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + html.EscapeString(csrfToken) + `">`)
		buf.WriteString(`<label for="name">Name</label>`)
		buf.WriteString(`<input id="name" name="name" type="text" required minlength="2" maxlength="50">`)
		buf.WriteString(`<label for="email">Email</label>`)
		buf.WriteString(`<input id="email" name="email" type="email" required>`)
		buf.WriteString(`<label for="message">Message</label>`)
		buf.WriteString(`<textarea id="message" name="message" rows="6" required minlength="10"></textarea>`)
		buf.WriteString(`<button type="submit">Send</button></form></section>`)
		writeFoot(buf, site)
	})
}

// NotFound renders the styled 404 page.
func NotFound(site Site) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, site, "Not Found")
		buf.WriteString(`<section class="status-page"><h1>404</h1><p>That page does not exist. `)
		buf.WriteString(`Head back <a href="/">home</a>.</p></section>`)
		writeFoot(buf, site)
	})
}

// ServerError renders the styled 500 page.
func ServerError(site Site) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, site, "Something Went Wrong")
		buf.WriteString(`<section class="status-page"><h1>500</h1><p>Something went wrong on my end. `)
		buf.WriteString(`Please try again in a moment.</p></section>`)
		writeFoot(buf, site)
	})
}
