package folio

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/folio/mail"
	"github.com/eringen/folio/notion"
)

func newTestApp(opts ...Option) (*App, *mail.Memory) {
	cfg := SiteConfig{
		URL:              "http://folio.test",
		SecretKey:        "test-secret",
		NotionAPIKey:     "ntn-key",
		NotionDatabaseID: "db-1",
		NotionPageID:     "page-1",
		SMTPAPIToken:     "smtp-token",
	}
	mem := &mail.Memory{}
	a := New(cfg, append([]Option{WithMailer(mem)}, opts...)...)
	return a, mem
}

// invoke runs a handler wrapped in the session middleware, carrying any
// cookies from earlier responses so session state survives across calls.
func invoke(t *testing.T, a *App, h echo.HandlerFunc, req *http.Request, cookies []*http.Cookie, token string) *httptest.ResponseRecorder {
	t.Helper()
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	if token != "" {
		c.SetParamNames("token")
		c.SetParamValues(token)
	}
	wrapped := session.Middleware(a.newSessionStore())(h)
	require.NoError(t, wrapped(c))
	return rec
}

func postContact(t *testing.T, a *App, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return invoke(t, a, a.handleContactSubmit, req, cookies, "")
}

var reVerifyLink = regexp.MustCompile(`/verify/([^"<&]+)`)

func extractToken(t *testing.T, html string) string {
	t.Helper()
	m := reVerifyLink.FindStringSubmatch(html)
	require.NotNil(t, m, "verification email should contain a verify link: %s", html)
	return m[1]
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"message": {"I would love to talk about your latest project."},
	}
}

func TestContactSubmitSendsVerificationEmail(t *testing.T) {
	a, mem := newTestApp()

	rec := postContact(t, a, validForm(), nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact", rec.Header().Get("Location"))
	require.Len(t, mem.Outbox, 1)

	msg := mem.Outbox[0]
	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, a.Config.NoReplyAddress, msg.From)
	assert.Equal(t, "Please verify your email", msg.Subject)
	assert.Contains(t, msg.HTML, "http://folio.test/verify/")
}

func TestContactSubmitMissingFieldSendsNothing(t *testing.T) {
	for _, missing := range []string{"name", "email", "message"} {
		a, mem := newTestApp()
		form := validForm()
		form.Del(missing)

		rec := postContact(t, a, form, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code, "missing %s", missing)
		assert.Empty(t, mem.Outbox, "missing %s should send no email", missing)
	}
}

func TestContactSubmitRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"one-letter name", "name", "A"},
		{"malformed email", "email", "not-an-email"},
		{"short message", "message", "hi"},
	}
	for _, tt := range tests {
		a, mem := newTestApp()
		form := validForm()
		form.Set(tt.field, tt.value)

		rec := postContact(t, a, form, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code, tt.name)
		assert.Empty(t, mem.Outbox, "%s should send no email", tt.name)
	}
}

func TestVerifyFlowNotifiesAdminAndClearsSession(t *testing.T) {
	a, mem := newTestApp()

	rec := postContact(t, a, validForm(), nil)
	cookies := rec.Result().Cookies()
	tok := extractToken(t, mem.Outbox[0].HTML)

	req := httptest.NewRequest(http.MethodGet, "/verify/"+tok, nil)
	rec2 := invoke(t, a, a.handleVerify, req, cookies, tok)

	assert.Equal(t, http.StatusSeeOther, rec2.Code)
	require.Len(t, mem.Outbox, 2)

	admin := mem.Outbox[1]
	assert.Equal(t, a.Config.AdminAddress, admin.To)
	assert.Equal(t, a.Config.ContactSender, admin.From)
	assert.Contains(t, admin.HTML, "Ada Lovelace")
	assert.Contains(t, admin.HTML, "ada@example.com")
	assert.Contains(t, admin.HTML, "your latest project")

	// The pending submission is gone: replaying the link finds no session
	// data and sends nothing further.
	cookies2 := rec2.Result().Cookies()
	req3 := httptest.NewRequest(http.MethodGet, "/verify/"+tok, nil)
	rec3 := invoke(t, a, a.handleVerify, req3, cookies2, tok)

	assert.Equal(t, http.StatusSeeOther, rec3.Code)
	assert.Len(t, mem.Outbox, 2)
}

func TestVerifyInvalidToken(t *testing.T) {
	a, mem := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/verify/garbage", nil)
	rec := invoke(t, a, a.handleVerify, req, nil, "garbage")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact", rec.Header().Get("Location"))
	assert.Empty(t, mem.Outbox)
}

func TestVerifyValidTokenWithoutSession(t *testing.T) {
	a, mem := newTestApp()

	tok, err := a.Signer.Issue("ada@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/verify/"+tok, nil)
	rec := invoke(t, a, a.handleVerify, req, nil, tok)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, mem.Outbox, "no admin email without matching session data")
}

func TestSecondSubmissionOverwritesPending(t *testing.T) {
	a, mem := newTestApp()

	rec := postContact(t, a, validForm(), nil)
	cookies := rec.Result().Cookies()

	form2 := validForm()
	form2.Set("message", "Actually, forget that: this is my real question.")
	rec2 := postContact(t, a, form2, cookies)
	cookies2 := rec2.Result().Cookies()
	require.Len(t, mem.Outbox, 2)

	// Either token verifies the address, but only the latest message is pending.
	tok := extractToken(t, mem.Outbox[0].HTML)
	req := httptest.NewRequest(http.MethodGet, "/verify/"+tok, nil)
	invoke(t, a, a.handleVerify, req, cookies2, tok)

	require.Len(t, mem.Outbox, 3)
	assert.Contains(t, mem.Outbox[2].HTML, "my real question")
	assert.NotContains(t, mem.Outbox[2].HTML, "your latest project")
}

func TestContactSubmitWithCorruptSessionCookie(t *testing.T) {
	a, mem := newTestApp()

	// A cookie that no longer decodes (rotated secret, tampering) must fall
	// back to a fresh session, not fail the submission.
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(validForm().Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(&http.Cookie{Name: sessionName, Value: "not-a-valid-session"})
	rec := invoke(t, a, a.handleContactSubmit, req, nil, "")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Len(t, mem.Outbox, 1)
}

func TestSitemapListsRoutableURLs(t *testing.T) {
	a, _ := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	require.NoError(t, a.handleSitemap(c))

	body := rec.Body.String()
	// Routes are registered without trailing slashes; the sitemap must list
	// them exactly as routable.
	for _, loc := range []string{
		"<loc>http://folio.test</loc>",
		"<loc>http://folio.test/about</loc>",
		"<loc>http://folio.test/portfolio</loc>",
		"<loc>http://folio.test/contact</loc>",
	} {
		assert.Contains(t, body, loc)
	}
	assert.NotContains(t, body, "/about/<")
	assert.NotContains(t, body, "/portfolio/<")
	assert.NotContains(t, body, "/contact/<")
}

func TestContactPageRendersForm(t *testing.T) {
	a, _ := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rec := invoke(t, a, a.handleContact, req, nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, field := range []string{`name="name"`, `name="email"`, `name="message"`, `name="_csrf"`} {
		assert.Contains(t, body, field)
	}
}

// contentAPIStub serves the four workspace endpoints the portfolio needs.
func contentAPIStub(t *testing.T, queryBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/databases/db-1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data_sources":[{"id":"ds-1"}]}`)
	})
	mux.HandleFunc("/v1/data_sources/ds-1/query", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, queryBody)
	})
	mux.HandleFunc("/v1/blocks/p-1/children", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[
			{"id":"b-1","type":"heading_1","heading_1":{"rich_text":[{"plain_text":"Overview"}]}},
			{"id":"b-2","type":"paragraph","paragraph":{"rich_text":[{"plain_text":"Hello"}]}}
		],"has_more":false}`)
	})
	mux.HandleFunc("/v1/pages/page-1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"icon":{"type":"emoji","emoji":"🚀"}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestPortfolioHandler(t *testing.T) {
	srv := contentAPIStub(t, `{"results":[{"id":"p-1","properties":{"Project Name":{"title":[{"plain_text":"My Project"}]}}}]}`)
	a, _ := newTestApp(WithNotionClient(notion.NewClient("ntn-key", notion.WithBaseURL(srv.URL))))

	req := httptest.NewRequest(http.MethodGet, "/portfolio?index=0", nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	require.NoError(t, a.handlePortfolio(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "My Project")
	assert.Contains(t, body, "<h1>Overview</h1>Hello<br>")
	assert.Contains(t, body, "🚀")
	// Single post: both nav indices wrap to itself.
	assert.Contains(t, body, "/portfolio?index=0")
}

func TestPortfolioHandlerEmpty(t *testing.T) {
	srv := contentAPIStub(t, `{"results":[]}`)
	a, _ := newTestApp(WithNotionClient(notion.NewClient("ntn-key", notion.WithBaseURL(srv.URL))))

	for _, target := range []string{"/portfolio", "/portfolio?index=12", "/portfolio?index=banana"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		c := a.Echo.NewContext(req, rec)
		require.NoError(t, a.handlePortfolio(c))

		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "No Posts Found", target)
	}
}
