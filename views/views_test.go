package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderToString(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

var testSite = Site{
	Name:        "Test Portfolio",
	URL:         "http://folio.test",
	Description: "Things I have built",
	Author:      "Alex",
}

func TestPortfolioRendersContentUnescaped(t *testing.T) {
	post := Post{Title: "Entry <1>", Content: "<h1>Raw</h1>markup<br>"}
	got := renderToString(t, Portfolio(testSite, post, Icon{}, 2, 1))

	if !strings.Contains(got, "<h1>Raw</h1>markup<br>") {
		t.Errorf("post content should pass through unescaped: %s", got)
	}
	if !strings.Contains(got, "Entry &lt;1&gt;") {
		t.Errorf("post title should be escaped: %s", got)
	}
	if !strings.Contains(got, `href="/portfolio?index=2"`) || !strings.Contains(got, `href="/portfolio?index=1"`) {
		t.Errorf("navigation links missing: %s", got)
	}
}

func TestPortfolioIcon(t *testing.T) {
	post := Post{Title: "Entry"}
	emoji := renderToString(t, Portfolio(testSite, post, Icon{Kind: "emoji", Value: "🚀"}, 0, 0))
	if !strings.Contains(emoji, "🚀") {
		t.Errorf("emoji icon missing: %s", emoji)
	}
	img := renderToString(t, Portfolio(testSite, post, Icon{Kind: "url", Value: "https://cdn.example/i.png"}, 0, 0))
	if !strings.Contains(img, `src="https://cdn.example/i.png"`) {
		t.Errorf("image icon missing: %s", img)
	}
	none := renderToString(t, Portfolio(testSite, post, Icon{}, 0, 0))
	if strings.Contains(none, "page-icon") {
		t.Errorf("zero icon should render nothing: %s", none)
	}
}

func TestContactRendersFlashesAndCsrf(t *testing.T) {
	flashes := []Flash{
		{Level: "danger", Message: "All fields are required!"},
		{Level: "info", Message: "Check your inbox <now>"},
	}
	got := renderToString(t, Contact(testSite, flashes, "csrf-123"))

	if !strings.Contains(got, `class="alert alert-danger"`) || !strings.Contains(got, "All fields are required!") {
		t.Errorf("danger flash missing: %s", got)
	}
	if !strings.Contains(got, "Check your inbox &lt;now&gt;") {
		t.Errorf("flash messages should be escaped: %s", got)
	}
	if !strings.Contains(got, `name="_csrf" value="csrf-123"`) {
		t.Errorf("csrf hidden field missing: %s", got)
	}
}

func TestVerifyEmailHTML(t *testing.T) {
	got := VerifyEmailHTML("http://folio.test/verify/abc123")
	if !strings.Contains(got, `href="http://folio.test/verify/abc123"`) {
		t.Errorf("verify link missing: %s", got)
	}
}

func TestAdminNotificationHTMLEscapes(t *testing.T) {
	got := AdminNotificationHTML("Ada <script>", "ada@example.com", "hello & goodbye")
	if strings.Contains(got, "<script>") {
		t.Errorf("submitter input must be escaped: %s", got)
	}
	if !strings.Contains(got, "hello &amp; goodbye") {
		t.Errorf("message missing or unescaped: %s", got)
	}
}
