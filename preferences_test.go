package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSetResume(t *testing.T) {
	ts := newTestSite(t, nil)

	w := ts.postForm("/preferences/resume", url.Values{"type": {"ai-ml"}, "next": {"/work?view=list"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/work?view=list", w.Header().Get("Location"))

	c := cookieNamed(w, "resumeType")
	require.NotNil(t, c)
	assert.Equal(t, "ai-ml", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.False(t, c.HttpOnly)
	assert.Equal(t, prefCookieMaxAge, c.MaxAge)
}

func TestSetResume_Invalid(t *testing.T) {
	ts := newTestSite(t, nil)

	w := ts.postForm("/preferences/resume", url.Values{"type": {"quantum"}}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, cookieNamed(w, "resumeType"))
}

func TestSetResume_HTMXRefreshes(t *testing.T) {
	ts := newTestSite(t, nil)

	w := ts.postForm("/preferences/resume", url.Values{"type": {"wireless"}}, map[string]string{"HX-Request": "true"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "true", w.Header().Get("HX-Refresh"))
	require.NotNil(t, cookieNamed(w, "resumeType"))
}

func TestSetResume_UsesRefererWithoutNext(t *testing.T) {
	ts := newTestSite(t, nil)

	w := ts.postForm("/preferences/resume", url.Values{"type": {"wireless"}},
		map[string]string{"Referer": "http://localhost:8080/about"})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/about", w.Header().Get("Location"))
}

func TestSetTheme(t *testing.T) {
	ts := newTestSite(t, nil)

	t.Run("toggles light to dark", func(t *testing.T) {
		w := ts.postForm("/preferences/theme", url.Values{"next": {"/"}}, nil)
		require.Equal(t, http.StatusSeeOther, w.Code)
		c := cookieNamed(w, "theme")
		require.NotNil(t, c)
		assert.Equal(t, "dark", c.Value)
	})

	t.Run("toggles dark to light", func(t *testing.T) {
		w := ts.postForm("/preferences/theme", url.Values{"next": {"/"}}, nil, &http.Cookie{Name: "theme", Value: "dark"})
		c := cookieNamed(w, "theme")
		require.NotNil(t, c)
		assert.Equal(t, "light", c.Value)
	})

	t.Run("explicit value", func(t *testing.T) {
		w := ts.postForm("/preferences/theme", url.Values{"theme": {"dark"}}, nil, &http.Cookie{Name: "theme", Value: "dark"})
		c := cookieNamed(w, "theme")
		require.NotNil(t, c)
		assert.Equal(t, "dark", c.Value)
	})

	t.Run("invalid value", func(t *testing.T) {
		w := ts.postForm("/preferences/theme", url.Values{"theme": {"sepia"}}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestThemeCookie_AppliesDarkClass(t *testing.T) {
	ts := newTestSite(t, nil)

	doc := parse(t, ts.get("/about", &http.Cookie{Name: "theme", Value: "dark"}))
	assert.True(t, doc.Find("html").HasClass("dark"))

	doc = parse(t, ts.get("/about"))
	assert.False(t, doc.Find("html").HasClass("dark"))
}

func TestSelectorCarriesCurrentPage(t *testing.T) {
	ts := newTestSite(t, nil)

	doc := parse(t, ts.get("/projectdetail?slug=beamlabs"))
	next, ok := doc.Find(`form[action="/preferences/resume"] input[name="next"]`).First().Attr("value")
	require.True(t, ok)
	assert.Equal(t, "/projectdetail?slug=beamlabs", next)
}

func TestRedirectTarget(t *testing.T) {
	tests := []struct {
		name    string
		next    string
		referer string
		want    string
	}{
		{"next wins", "/work", "http://example.com/about", "/work"},
		{"next keeps query", "/projectdetail?slug=x", "", "/projectdetail?slug=x"},
		{"referer path", "", "http://example.com/about?x=1", "/about?x=1"},
		{"protocol relative next", "//evil.example", "", "/"},
		{"backslash next", "/\\evil.example", "", "/"},
		{"absolute next", "https://evil.example/", "", "/"},
		{"header injection", "/work\r\nSet-Cookie: x=1", "", "/"},
		{"tab folds to protocol relative", "/\t/evil.example", "", "/"},
		{"newline folds to protocol relative", "/\n/evil.example", "", "/"},
		{"delete byte", "/\x7f/evil.example", "", "/"},
		{"encoded slashes", "/%2F%2Fevil.example", "", "/"},
		{"referer with tab", "", "http://example.com/\t/evil.example", "/"},
		{"nothing", "", "", "/"},
		{"bad referer", "", "::not a url", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redirectTarget(tt.next, tt.referer))
		})
	}
}

func TestSetResume_RejectsControlCharRedirect(t *testing.T) {
	ts := newTestSite(t, nil)

	w := ts.postForm("/preferences/resume", url.Values{"type": {"ai-ml"}, "next": {"/\t/evil.example"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}
