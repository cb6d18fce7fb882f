// Package content holds the resume variants rendered by the site.
//
// A Catalog is built once at startup, either from the built-in data or from
// a YAML file, and is read-only afterwards.
package content

import "strings"

// ResumeType selects which resume variant is shown.
type ResumeType string

const (
	Wireless ResumeType = "wireless"
	AIML     ResumeType = "ai-ml"

	DefaultType = Wireless
)

// Option is an entry of the resume selector.
type Option struct {
	Value ResumeType
	Label string
}

// Options lists the selectable variants in display order.
var Options = []Option{
	{Value: Wireless, Label: "Wireless"},
	{Value: AIML, Label: "AI/ML"},
}

// ParseType parses a stored or submitted resume type. Unknown values return
// DefaultType and false.
func ParseType(s string) (ResumeType, bool) {
	switch ResumeType(strings.TrimSpace(s)) {
	case Wireless:
		return Wireless, true
	case AIML:
		return AIML, true
	}
	return DefaultType, false
}

// Label returns the selector label for t.
func (t ResumeType) Label() string {
	for _, o := range Options {
		if o.Value == t {
			return o.Label
		}
	}
	return Options[0].Label
}

func (t ResumeType) other() ResumeType {
	if t == Wireless {
		return AIML
	}
	return Wireless
}

type Hero struct {
	Tagline     string   `yaml:"tagline"`
	MainText    []string `yaml:"main_text"`
	Description string   `yaml:"description"`
}

type Project struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Role        string  `yaml:"role"`
	Year        string  `yaml:"year"`
	Slug        string  `yaml:"slug"`
	Image       string  `yaml:"image,omitempty"`
	Outcome     string  `yaml:"outcome,omitempty"`
	Detail      *Detail `yaml:"detail,omitempty"`
}

// Detail is the case-study part of a project. Every field is optional.
type Detail struct {
	Client     string   `yaml:"client,omitempty"`
	Duration   string   `yaml:"duration,omitempty"`
	HeroImage  string   `yaml:"hero_image,omitempty"`
	Overview   Overview `yaml:"overview,omitempty"`
	Process    []Step   `yaml:"process,omitempty"`
	Images     []string `yaml:"images,omitempty"`
	Reflection string   `yaml:"reflection,omitempty"`
}

type Overview struct {
	Problem  string `yaml:"problem,omitempty"`
	Solution string `yaml:"solution,omitempty"`
	Impact   string `yaml:"impact,omitempty"`
}

type Step struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Experience struct {
	Role        string `yaml:"role"`
	Company     string `yaml:"company"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
}

type Skill struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

type About struct {
	Title string   `yaml:"title"`
	Bio   []string `yaml:"bio"`
}

type Principle struct {
	Number      string `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// WorkCopy is the heading block of the work page.
type WorkCopy struct {
	Heading string `yaml:"heading"`
	Intro   string `yaml:"intro"`
}

// ContactCopy is the variant-specific text of the contact page.
type ContactCopy struct {
	Headline     string `yaml:"headline"`
	Intro        string `yaml:"intro"`
	PitchTitle   string `yaml:"pitch_title"`
	Pitch        string `yaml:"pitch"`
	Availability string `yaml:"availability"`
}

// Resume is one complete variant. Values returned by a Catalog are shared and
// must not be modified.
type Resume struct {
	Type       ResumeType   `yaml:"-"`
	Hero       Hero         `yaml:"hero"`
	Projects   []Project    `yaml:"projects"`
	Experience []Experience `yaml:"experience"`
	Skills     []Skill      `yaml:"skills"`
	About      About        `yaml:"about"`
	Principles []Principle  `yaml:"principles"`
	Work       WorkCopy     `yaml:"work"`
	Contact    ContactCopy  `yaml:"contact"`
}

// Featured returns at most n projects for the home page.
func (r *Resume) Featured(n int) []Project {
	if n < 0 || n >= len(r.Projects) {
		return r.Projects
	}
	return r.Projects[:n]
}

// Project finds a project by slug.
func (r *Resume) Project(slug string) (Project, bool) {
	for _, p := range r.Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}
