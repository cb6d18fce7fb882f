package main

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/resume-site/internal/config"
	"github.com/Zachkp/resume-site/internal/content"
	"github.com/Zachkp/resume-site/internal/notify"
	"github.com/Zachkp/resume-site/internal/reveal"
	"github.com/Zachkp/resume-site/internal/store"
)

type server struct {
	cfg       config.Config
	logger    *slog.Logger
	catalog   *content.Catalog
	store     *store.Store
	notifier  notify.Notifier
	scrambler *reveal.Scrambler
	limiter   *clientLimiter
	admin     *adminPanel
	now       func() time.Time

	// background tracks notification and tracking goroutines.
	background sync.WaitGroup
}

func newServer(cfg config.Config, logger *slog.Logger, catalog *content.Catalog, st *store.Store, n notify.Notifier) *server {
	s := &server{
		cfg:       cfg,
		logger:    logger,
		catalog:   catalog,
		store:     st,
		notifier:  n,
		scrambler: reveal.NewScrambler(uint64(time.Now().UnixNano())),
		limiter:   newClientLimiter(cfg.Contact.RatePerMinute, cfg.Contact.Burst),
		now:       time.Now,
	}
	s.admin = newAdminPanel(s)
	return s
}

// goBackground runs fn in a goroutine that wait accounts for.
func (s *server) goBackground(fn func()) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		fn()
	}()
}

// wait blocks until background work finishes or ctx ends.
func (s *server) wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.background.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *server) loadTemplates(r *gin.Engine) error {
	if s.cfg.Dev {
		r.SetFuncMap(s.funcMap())
		r.LoadHTMLGlob("templates/*.html")
		r.Static("/static", "./static")
		return nil
	}

	tmpl, err := template.New("").Funcs(s.funcMap()).ParseFS(assets, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(assets, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))
	return nil
}

func (s *server) routes() (*gin.Engine, error) {
	r := gin.New()
	r.Use(requestID(), requestLogger(s.logger), gin.Recovery(), loadPreferences(), s.admin.trackVisitors())

	if err := s.loadTemplates(r); err != nil {
		return nil, err
	}

	r.GET("/", s.home)
	r.GET("/home", s.home)
	r.GET("/about", s.about)
	r.GET("/work", s.work)
	r.GET("/projectdetail", s.projectDetail)
	r.GET("/contact", s.contactPage)
	r.POST("/contact", s.submitContact)

	r.POST("/preferences/resume", s.setResume)
	r.POST("/preferences/theme", s.setTheme)

	r.GET("/healthz", s.health)

	s.admin.setupRoutes(r)

	r.NoRoute(s.notFound)
	return r, nil
}

// pageData is the data every page template receives.
func (s *server) pageData(c *gin.Context, page, title string, extra gin.H) gin.H {
	prefs := prefsFrom(c)
	data := gin.H{
		"page":          page,
		"title":         title,
		"siteName":      SiteName,
		"resume":        s.catalog.Resume(prefs.Resume),
		"resumeType":    prefs.Resume,
		"resumeLabel":   prefs.Resume.Label(),
		"resumeOptions": content.Options,
		"dark":          prefs.Dark,
		"nav":           NavLinks,
		"social":        SocialLinks,
		"footerTagline": FooterTagline,
		"year":          s.now().Year(),
		"current":       c.Request.URL.RequestURI(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (s *server) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", s.pageData(c, "Error", http.StatusText(status), gin.H{
		"status":  status,
		"message": message,
	}))
}

func (s *server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.logger.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
