package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/Zachkp/resume-site/internal/reveal"
)

// pageURL builds the path of a named page, e.g. pageURL("ProjectDetail",
// "slug", "beamlabs") is "/projectdetail?slug=beamlabs".
func pageURL(name string, kv ...string) string {
	base := "/" + strings.ToLower(name)
	if len(kv) < 2 {
		return base
	}
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return base + "?" + q.Encode()
}

var sectionBackgrounds = map[string]string{
	"white": "bg-white dark:bg-zinc-950",
	"light": "bg-zinc-50 dark:bg-zinc-900",
	"dark":  "bg-zinc-950 text-white",
}

var sectionSizes = map[string]string{
	"small":   "py-16 md:py-20",
	"default": "py-20 md:py-28",
	"large":   "py-24 md:py-36",
}

// sectionClass returns the classes of a page section. Unknown values use
// the white background and default size.
func sectionClass(background, size string) string {
	bg, ok := sectionBackgrounds[background]
	if !ok {
		bg = sectionBackgrounds["white"]
	}
	sz, ok := sectionSizes[size]
	if !ok {
		sz = sectionSizes["default"]
	}
	return bg + " " + sz
}

// dict builds a map for passing several values to a partial template.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[key] = kv[i+1]
	}
	return m, nil
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *server) funcMap() template.FuncMap {
	return template.FuncMap{
		"pageURL":      pageURL,
		"sectionClass": sectionClass,
		"toJSON":       toJSON,
		"dict":         dict,
		"delay":        reveal.CSS,
		// stagger is the ScrollReveal offset between siblings.
		"stagger": func(i int) string { return reveal.CSS(reveal.Stagger(i, reveal.StaggerStep)) },
		// fade offsets FadeIn blocks by 0.1s each, after base seconds.
		"fade": func(i int, base float64) string { return reveal.CSS(base + reveal.Stagger(i, 0.1)) },
		"pad2": func(i int) string { return fmt.Sprintf("%02d", i+1) },
		"scramble": func(lines []string) []reveal.Line {
			return s.scrambler.Scramble(lines)
		},
		"words":          reveal.Words,
		"charDuration":   func() string { return reveal.CSS(reveal.CharDuration) },
		"phraseInterval": func() int64 { return reveal.PhraseInterval.Milliseconds() },
		"scrambleTick":   func() int64 { return reveal.ScrambleTick.Milliseconds() },
		"add":            func(a, b int) int { return a + b },
	}
}
