package folio

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	return Render(c, views.Home(a.Config.site()))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, views.About(a.Config.site()))
}

// handlePortfolio serves a single portfolio entry with wraparound prev/next
// navigation. Out-of-range indices clamp; non-numeric indices read as 0.
func (a *App) handlePortfolio(c echo.Context) error {
	ctx := c.Request().Context()

	posts, err := a.loadPosts(ctx)
	if err != nil {
		return err
	}
	icon, err := a.Notion.PageIcon(ctx, a.Config.NotionPageID)
	if err != nil {
		return err
	}

	index := parseIndex(c.QueryParam("index"))
	post, prevIndex, nextIndex := selectPost(posts, index)

	return Render(c, views.Portfolio(a.Config.site(), post, views.Icon{Kind: icon.Kind, Value: icon.Value}, prevIndex, nextIndex))
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, views.Contact(a.Config.site(), popFlashes(c), CsrfToken(c)))
}

// handleContactSubmit validates the form, stashes the submission in the
// session, and emails the submitter a verification link. A second submission
// silently replaces any pending one.
func (a *App) handleContactSubmit(c echo.Context) error {
	sub := ContactSubmission{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Message: strings.TrimSpace(c.FormValue("message")),
	}
	if err := a.validate.Struct(sub); err != nil {
		if err := flash(c, "danger", "All fields are required: your name, a valid email address, and a message of at least 10 characters."); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/contact")
	}

	if !a.limiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many messages. Try again later.")
	}

	tok, err := a.Signer.Issue(sub.Email)
	if err != nil {
		return err
	}
	verifyURL := a.Config.URL + "/verify/" + tok

	// Mail failures surface as a generic server error; the submission is not
	// kept when the verification email never went out.
	if err := a.Mailer.Send(a.Config.NoReplyAddress, sub.Email, "Please verify your email", views.VerifyEmailHTML(verifyURL)); err != nil {
		return err
	}

	sess, err := getSession(c)
	if err != nil {
		return err
	}
	sess.Values[contactDataKey] = sub
	sess.AddFlash(views.Flash{
		Level:   "info",
		Message: "A verification email has been sent to your address. Please note the link will NOT work in a private tab.",
	})
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/contact")
}

// handleVerify completes the contact flow. A valid token with matching
// session data notifies the owner and clears the pending submission; every
// other outcome re-prompts the visitor.
func (a *App) handleVerify(c echo.Context) error {
	email, ok := a.Signer.Confirm(c.Param("token"))
	if !ok {
		if err := flash(c, "danger", "The verification link is invalid or has expired."); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/contact")
	}

	sub, ok := pendingSubmission(c)
	if !ok {
		if err := flash(c, "warning", "Session expired. Please resubmit the form."); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/contact")
	}

	body := views.AdminNotificationHTML(sub.Name, email, sub.Message)
	if err := a.Mailer.Send(a.Config.ContactSender, a.Config.AdminAddress, "New Message from portfolio contact", body); err != nil {
		return err
	}

	sess, err := getSession(c)
	if err != nil {
		return err
	}
	delete(sess.Values, contactDataKey)
	sess.AddFlash(views.Flash{
		Level:   "success",
		Message: "Your email has been verified and your message has been sent!",
	})
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/contact")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /verify/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.Config.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
