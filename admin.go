// admin.go - privacy-conscious visitor tracking and the admin inbox
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/resume-site/internal/store"
)

const adminCookie = "admin_token"

// visitorPageSize is how many visits /admin/visitors lists.
const visitorPageSize = 200

// untrackedPrefixes are never recorded as page views.
var untrackedPrefixes = []string{
	"/static/",
	"/admin/",
	"/favicon",
	"/privacy",
	"/healthz",
	"/preferences/",
}

type adminPanel struct {
	s           *server
	token       string
	hashingSalt string
}

func newAdminPanel(s *server) *adminPanel {
	a := &adminPanel{
		s:           s,
		token:       generateToken(),
		hashingSalt: generateToken(),
	}
	if s.cfg.AdminEnabled() {
		s.logger.Info("Admin access available at: /admin/login")
		if s.cfg.Dev {
			s.logger.Warn("Using development admin credentials. Set ADMIN_USERNAME and ADMIN_PASSWORD.")
		}
	}
	s.logger.Info("Privacy: visitor tracking enabled with hashed IP addresses")
	return a
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("generate admin token: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// hashIP hashes an address with the per-process salt. The same IP hashes
// the same way until restart.
func (a *adminPanel) hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + a.hashingSalt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (a *adminPanel) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// trackVisitors records page views in the background. Static files, admin
// pages and visitors sending DNT are skipped.
func (a *adminPanel) trackVisitors() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" || untracked(path) {
			c.Next()
			return
		}

		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}
		visit := store.Visit{
			HashedIP:   a.hashIP(c.ClientIP()),
			UserAgent:  c.GetHeader("User-Agent"),
			Path:       path,
			ResumeType: string(prefsFrom(c).Resume),
			Timestamp:  a.s.now(),
		}
		a.s.goBackground(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := a.s.store.RecordVisit(ctx, visit); err != nil {
				a.s.logger.Error("Error recording visitor", "error", err)
			}
		})
	}
}

func untracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return path == "/admin"
}

// cleanupOldVisitorData drops visits past the retention window.
func (a *adminPanel) cleanupOldVisitorData(ctx context.Context) {
	cutoff := a.s.now().Add(-a.s.cfg.Admin.VisitorRetention)
	n, err := a.s.store.PurgeVisitsBefore(ctx, cutoff)
	if err != nil {
		a.s.logger.Error("Error cleaning up old visitor data", "error", err)
		return
	}
	if n > 0 {
		a.s.logger.Info("Privacy cleanup: removed old visitor records", "removed", n, "cutoff", cutoff)
	}
}

func (a *adminPanel) setupRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", a.s.pageData(c, "Privacy", "Privacy Policy", gin.H{
			"retentionDays": int(a.s.cfg.Admin.VisitorRetention.Hours() / 24),
		}))
	})

	if !a.s.cfg.AdminEnabled() {
		a.s.logger.Info("Admin dashboard disabled: ADMIN_PASSWORD not set")
		return
	}

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.s.cfg.Admin.Username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.s.cfg.Admin.Password)) == 1
		if !userOK || !passOK {
			a.s.logger.Warn("Failed admin login attempt", "client", a.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", !a.s.cfg.Dev, true)
		a.s.logger.Info("Admin login successful", "client", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", !a.s.cfg.Dev, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(a.authMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.s.store.Stats(c.Request.Context(), a.s.now())
		if err != nil {
			a.s.logger.Error("Error loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title": "Dashboard",
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.s.store.Stats(c.Request.Context(), a.s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/messages", func(c *gin.Context) {
		msgs, err := a.s.store.Messages(c.Request.Context(), 200)
		if err != nil {
			a.s.logger.Error("Error loading messages", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load messages",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-messages.html", gin.H{
			"title":    "Messages",
			"messages": msgs,
		})
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := a.s.store.RecentVisitors(c.Request.Context(), visitorPageSize)
		if err != nil {
			a.s.logger.Error("Error loading visitors", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"title":    "Visitors",
			"visitors": visitors,
		})
	})

	adminGroup.DELETE("/messages/:id", func(c *gin.Context) {
		id := c.Param("id")
		err := a.s.store.DeleteMessage(c.Request.Context(), id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		case err != nil:
			a.s.logger.Error("Error deleting message", "message_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		default:
			a.s.logger.Info("Message deleted by admin", "message_id", id, "client", a.hashIP(c.ClientIP()))
			c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
		}
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		a.cleanupOldVisitorData(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete"})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.s.store.Stats(c.Request.Context(), a.s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		a.s.logger.Info("Admin stats exported", "client", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
