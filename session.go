package folio

import (
	"encoding/gob"

	gorilla "github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

const (
	sessionName    = "folio_session"
	contactDataKey = "contact_data"
)

func init() {
	// Both values travel inside the cookie session.
	gob.Register(ContactSubmission{})
	gob.Register(views.Flash{})
}

// ContactSubmission is a contact-form entry held in the session between
// submission and link verification. It is never persisted anywhere else.
type ContactSubmission struct {
	Name    string `form:"name" validate:"required,min=2,max=50"`
	Email   string `form:"email" validate:"required,email"`
	Message string `form:"message" validate:"required,min=10"`
}

// getSession returns the request's session. A cookie that no longer decodes
// (say, after a secret rotation) yields the fresh session the store hands
// back instead of failing the request.
func getSession(c echo.Context) (*gorilla.Session, error) {
	sess, err := session.Get(sessionName, c)
	if sess != nil {
		return sess, nil
	}
	return nil, err
}

// flash queues a one-shot notice and saves the session immediately. Use it
// on paths that touch nothing else in the session.
func flash(c echo.Context, level, message string) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	sess.AddFlash(views.Flash{Level: level, Message: message})
	return sess.Save(c.Request(), c.Response())
}

// popFlashes drains queued notices. Reading flashes mutates the session, so
// it is saved before returning.
func popFlashes(c echo.Context) []views.Flash {
	sess, err := getSession(c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) > 0 {
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			c.Logger().Errorf("save session: %v", err)
		}
	}
	var flashes []views.Flash
	for _, f := range raw {
		if fl, ok := f.(views.Flash); ok {
			flashes = append(flashes, fl)
		}
	}
	return flashes
}

// pendingSubmission returns the submission awaiting verification, if any.
func pendingSubmission(c echo.Context) (ContactSubmission, bool) {
	sess, err := getSession(c)
	if err != nil {
		return ContactSubmission{}, false
	}
	sub, ok := sess.Values[contactDataKey].(ContactSubmission)
	return sub, ok
}
