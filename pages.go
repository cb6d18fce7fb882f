package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// featuredCount is how many projects the home page shows.
const featuredCount = 4

func (s *server) home(c *gin.Context) {
	resume := s.catalog.Resume(prefsFrom(c).Resume)
	c.HTML(http.StatusOK, "home.html", s.pageData(c, "Home", resume.Hero.Tagline, gin.H{
		"featured": resume.Featured(featuredCount),
		"phrases":  CrypticPhrases,
	}))
}

func (s *server) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", s.pageData(c, "About", "About", nil))
}

// work lists every project of the selected variant as a grid or a list.
func (s *server) work(c *gin.Context) {
	view := c.DefaultQuery("view", "grid")
	if view != "list" {
		view = "grid"
	}
	c.HTML(http.StatusOK, "work.html", s.pageData(c, "Work", "Work", gin.H{
		"view": view,
	}))
}

// projectDetail never 404s: unknown slugs show the placeholder case study.
func (s *server) projectDetail(c *gin.Context) {
	project := s.catalog.ProjectPage(prefsFrom(c).Resume, c.Query("slug"))
	if !project.Found {
		s.logger.Debug("unknown project slug", "slug", project.Slug, "request_id", c.GetString(requestIDKey))
	}
	c.HTML(http.StatusOK, "projectdetail.html", s.pageData(c, "ProjectDetail", project.Title, gin.H{
		"project": project,
	}))
}

func (s *server) contactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", s.contactData(c, contactForm{}, nil, false))
}

func (s *server) notFound(c *gin.Context) {
	s.renderError(c, http.StatusNotFound, "The page you're looking for doesn't exist.")
}
