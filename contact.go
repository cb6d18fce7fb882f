package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Zachkp/resume-site/internal/notify"
	"github.com/Zachkp/resume-site/internal/store"
)

type contactForm struct {
	Name    string `form:"name" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email,max=320"`
	Message string `form:"message" binding:"required,max=5000"`
}

// contactState is what the form area of the contact page shows.
type contactState struct {
	Form      contactForm
	Errors    map[string]string
	Submitted bool
	Error     string
}

func (s *server) contactData(c *gin.Context, form contactForm, errs map[string]string, submitted bool) gin.H {
	return s.contactStateData(c, contactState{Form: form, Errors: errs, Submitted: submitted})
}

func (s *server) contactStateData(c *gin.Context, st contactState) gin.H {
	return s.pageData(c, "Contact", "Contact", gin.H{
		"contact":      st,
		"email":        ContactEmail,
		"location":     ContactLocation,
		"phone":        ContactPhone,
		"responseTime": ResponseTime,
		"success":      ContactSuccess,
	})
}

// renderContact renders the whole page, or only the form area for HTMX.
// Fragments are always sent as 200 with the outcome in X-Contact-Status.
func (s *server) renderContact(c *gin.Context, status int, st contactState) {
	if c.GetHeader("HX-Request") == "true" {
		c.Header("X-Contact-Status", strconv.Itoa(status))
		c.HTML(http.StatusOK, "contact-form.html", s.contactStateData(c, st))
		return
	}
	c.HTML(status, "contact.html", s.contactStateData(c, st))
}

// submitContact validates the form, waits the configured submit delay,
// stores the message and forwards it in the background. Once stored the
// submission counts as delivered.
func (s *server) submitContact(c *gin.Context) {
	form := contactForm{
		Name:    strings.TrimSpace(c.PostForm("name")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}

	if err := binding.Validator.ValidateStruct(&form); err != nil {
		s.renderContact(c, http.StatusUnprocessableEntity, contactState{Form: form, Errors: fieldErrors(err)})
		return
	}

	// Only valid submissions spend a token.
	if !s.limiter.Allow(c.ClientIP()) {
		s.renderContact(c, http.StatusTooManyRequests, contactState{Form: form, Error: ContactLimited})
		return
	}

	ctx := c.Request.Context()
	if d := s.cfg.Contact.SubmitDelay; d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			s.logger.Info("contact submission abandoned", "request_id", c.GetString(requestIDKey))
			return
		}
	}

	prefs := prefsFrom(c)
	msg := &store.Message{
		Name:       form.Name,
		Email:      form.Email,
		Body:       form.Message,
		ResumeType: string(prefs.Resume),
		HashedIP:   s.admin.hashIP(c.ClientIP()),
	}
	if err := s.store.SaveMessage(ctx, msg); err != nil {
		s.logger.Error("saving contact message", "error", err, "request_id", c.GetString(requestIDKey))
		s.renderContact(c, http.StatusInternalServerError, contactState{Form: form, Error: ContactError})
		return
	}

	contact := notify.Contact{
		ID:         msg.ID,
		Name:       msg.Name,
		Email:      msg.Email,
		Message:    msg.Body,
		ResumeType: msg.ResumeType,
	}
	s.goBackground(func() {
		nctx, cancel := context.WithTimeout(context.Background(), s.cfg.Contact.NotifyTimeout)
		defer cancel()
		if err := s.notifier.Notify(nctx, contact); err != nil {
			s.logger.Error("contact notification failed", "message_id", contact.ID, "error", err)
			return
		}
		s.logger.Info("contact notification sent", "message_id", contact.ID)
	})

	s.renderContact(c, http.StatusOK, contactState{Submitted: true})
}

var fieldMessages = map[string]string{
	"required": "This field is required.",
	"email":    "Please enter a valid email address.",
	"max":      "This is too long.",
}

// fieldErrors maps validation errors to messages keyed by form field name.
func fieldErrors(err error) map[string]string {
	errs := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = "Please check the form and try again."
		return errs
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		if _, seen := errs[field]; seen {
			continue
		}
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "This value is invalid."
		}
		errs[field] = msg
	}
	return errs
}
