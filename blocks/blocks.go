// Package blocks renders workspace content blocks to HTML, both as a plain
// string and as a templ component.
package blocks

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/folio/notion"
)

// Content returns a templ.Component that renders bs as HTML.
func Content(bs []notion.Block) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		Render(&buf, bs)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// HTML renders bs to a single HTML string.
func HTML(bs []notion.Block) string {
	var buf bytes.Buffer
	Render(&buf, bs)
	return buf.String()
}

// Render writes the HTML representation of bs to buf, one block at a time in
// order. Block text is inserted as-is, without HTML escaping: the content
// author is the site owner, and posts may embed their own markup.
// Unrecognized block types contribute no output.
func Render(buf *bytes.Buffer, bs []notion.Block) {
	for _, b := range bs {
		text := b.Text()
		switch b.Type {
		case "paragraph":
			buf.WriteString(text)
			buf.WriteString("<br>")
		case "heading_1":
			buf.WriteString("<h1>")
			buf.WriteString(text)
			buf.WriteString("</h1>")
		case "heading_2":
			buf.WriteString("<h2>")
			buf.WriteString(text)
			buf.WriteString("</h2>")
		case "heading_3":
			buf.WriteString("<h3>")
			buf.WriteString(text)
			buf.WriteString("</h3>")
		case "bulleted_list_item":
			// Each item gets its own list; adjacent items are not merged.
			buf.WriteString("<ul><li>")
			buf.WriteString(text)
			buf.WriteString("</li></ul>")
		case "numbered_list_item":
			buf.WriteString("<ol><li>")
			buf.WriteString(text)
			buf.WriteString("</li></ol>")
		case "divider":
			buf.WriteString("<hr>")
		case "quote":
			buf.WriteString("<blockquote>")
			buf.WriteString(text)
			buf.WriteString("</blockquote>")
		case "code":
			buf.WriteString("<pre><code>")
			buf.WriteString(text)
			buf.WriteString("</code></pre>")
		case "to_do":
			if b.Payload.Checked {
				buf.WriteString("☑ ")
			} else {
				buf.WriteString("☐ ")
			}
			buf.WriteString(text)
			buf.WriteString("<br>")
		case "toggle":
			// Nested children are not fetched; only the summary renders.
			buf.WriteString("<details><summary>")
			buf.WriteString(text)
			buf.WriteString("</summary></details>")
		case "image":
			url := imageURL(b.Payload)
			if url == "" {
				continue
			}
			buf.WriteString(`<img src="`)
			buf.WriteString(url)
			buf.WriteString(`" alt="Image"><br>`)
		}
	}
}

// imageURL picks the hosted file URL when present, else the external URL.
func imageURL(p notion.BlockPayload) string {
	if p.File != nil && p.File.URL != "" {
		return p.File.URL
	}
	if p.External != nil && p.External.URL != "" {
		return p.External.URL
	}
	return ""
}
