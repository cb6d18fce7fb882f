package main

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/resume-site/internal/content"
)

const (
	resumeCookie = "resumeType"
	themeCookie  = "theme"
	prefsKey     = "prefs"

	themeDark  = "dark"
	themeLight = "light"

	prefCookieMaxAge = 365 * 24 * 3600
)

// preferences is the visitor's view state, carried in cookies.
type preferences struct {
	Resume content.ResumeType
	Dark   bool
}

// loadPreferences resolves the preference cookies for every request.
// Unknown values fall back to the defaults.
func loadPreferences() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := preferences{Resume: content.DefaultType}
		if v, err := c.Cookie(resumeCookie); err == nil {
			p.Resume, _ = content.ParseType(v)
		}
		if v, err := c.Cookie(themeCookie); err == nil {
			p.Dark = v == themeDark
		}
		c.Set(prefsKey, p)
		c.Next()
	}
}

func prefsFrom(c *gin.Context) preferences {
	if p, ok := c.Get(prefsKey); ok {
		return p.(preferences)
	}
	return preferences{Resume: content.DefaultType}
}

// setResume switches the resume variant and reloads the page the visitor
// came from.
func (s *server) setResume(c *gin.Context) {
	rt, ok := content.ParseType(c.PostForm("type"))
	if !ok {
		s.renderError(c, http.StatusBadRequest, "Unknown resume type.")
		return
	}
	setPrefCookie(c, resumeCookie, string(rt))
	s.logger.Debug("resume type changed", "resume_type", rt, "request_id", c.GetString(requestIDKey))
	reload(c)
}

// setTheme sets the theme from the form, or toggles it when none is given.
func (s *server) setTheme(c *gin.Context) {
	theme := c.PostForm("theme")
	switch theme {
	case themeDark, themeLight:
	case "":
		theme = themeDark
		if prefsFrom(c).Dark {
			theme = themeLight
		}
	default:
		s.renderError(c, http.StatusBadRequest, "Unknown theme.")
		return
	}
	setPrefCookie(c, themeCookie, theme)
	reload(c)
}

func setPrefCookie(c *gin.Context, name, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	// Readable from script so the theme applies before first paint.
	c.SetCookie(name, value, prefCookieMaxAge, "/", "", false, false)
}

// reload sends the visitor back to where the change was made.
func reload(c *gin.Context) {
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, redirectTarget(c.PostForm("next"), c.Request.Referer()))
}

// redirectTarget picks a same-site path from next or the referer, or "/".
func redirectTarget(next, referer string) string {
	if isLocalPath(next) {
		return next
	}
	if referer != "" {
		if u, err := url.Parse(referer); err == nil && u.Path != "" {
			target := u.Path
			if u.RawQuery != "" {
				target += "?" + u.RawQuery
			}
			if isLocalPath(target) {
				return target
			}
		}
	}
	return "/"
}

// isLocalPath accepts only same-site absolute paths. Browsers drop tab and
// newline characters from URLs, so any control byte is rejected.
func isLocalPath(p string) bool {
	if p == "" || p[0] != '/' {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] < 0x20 || p[i] == 0x7f || p[i] == '\\' {
			return false
		}
	}
	if strings.HasPrefix(p, "//") {
		return false
	}
	u, err := url.Parse(p)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == "" && strings.HasPrefix(u.Path, "/") && !strings.HasPrefix(u.Path, "//")
}
