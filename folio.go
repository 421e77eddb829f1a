// Package folio is a personal portfolio website built with Go, Echo, and
// templ. It renders static marketing pages, pulls portfolio entries from a
// hosted workspace database, and runs an email-verified contact form.
package folio

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/mail"
	"github.com/eringen/folio/notion"
	"github.com/eringen/folio/token"
)

// App is the central folio application. It wires together the content
// client, mailer, token signer, handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Notion *notion.Client
	Mailer mail.Sender
	Signer *token.Signer

	validate  *validator.Validate
	limiter   *contactLimiter
	staticDir string
}

// Option configures additional App behavior.
type Option func(*App)

// WithMailer substitutes the outbound mail sender (tests use mail.Memory).
func WithMailer(m mail.Sender) Option {
	return func(a *App) {
		a.Mailer = m
	}
}

// WithNotionClient substitutes the content client.
func WithNotionClient(c *notion.Client) Option {
	return func(a *App) {
		a.Notion = c
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// New creates a folio App from the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Notion:    notion.NewClient(cfg.NotionAPIKey),
		Signer:    token.NewSigner(cfg.SecretKey, int(cfg.TokenMaxAge/time.Second)),
		validate:  validator.New(),
		limiter:   newContactLimiter(5, time.Minute),
		staticDir: "public",
	}
	a.Mailer = &mail.SMTPSender{
		Host:     cfg.MailHost,
		Port:     cfg.MailPort,
		Username: cfg.MailUsername,
		Password: cfg.SMTPAPIToken,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start validates the configuration, sets up middleware and routes, and runs
// the HTTP server until it is shut down.
func (a *App) Start() error {
	if err := a.Config.Validate(); err != nil {
		return err
	}

	a.setupMiddleware()
	a.setupRoutes()

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/about", a.handleAbout)
	e.GET("/portfolio", a.handlePortfolio)
	e.GET("/contact", a.handleContact)
	e.POST("/contact", a.handleContactSubmit)
	e.GET("/verify/:token", a.handleVerify)
}
