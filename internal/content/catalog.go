package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog maps each resume type to its content. Case studies are project
// pages reachable by slug that belong to neither variant's project list.
type Catalog struct {
	resumes     map[ResumeType]*Resume
	caseStudies []Project
}

// Default returns the catalog built from the compiled-in resumes.
func Default() *Catalog {
	return newCatalog(wirelessResume(), aiMLResume(), caseStudies())
}

func newCatalog(wireless, aiml *Resume, studies []Project) *Catalog {
	wireless.Type = Wireless
	aiml.Type = AIML
	return &Catalog{
		resumes: map[ResumeType]*Resume{
			Wireless: wireless,
			AIML:     aiml,
		},
		caseStudies: studies,
	}
}

// file is the on-disk layout of a content override. Omitting case_studies
// keeps the built-in ones.
type file struct {
	Wireless    *Resume    `yaml:"wireless"`
	AIML        *Resume    `yaml:"ai-ml"`
	CaseStudies *[]Project `yaml:"case_studies"`
}

// Load reads a YAML content file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if f.Wireless == nil || f.AIML == nil {
		return nil, errors.New("both wireless and ai-ml resumes are required")
	}
	if err := validate(Wireless, f.Wireless); err != nil {
		return nil, err
	}
	if err := validate(AIML, f.AIML); err != nil {
		return nil, err
	}
	studies := caseStudies()
	if f.CaseStudies != nil {
		studies = *f.CaseStudies
		if err := validateSlugs("case_studies", studies); err != nil {
			return nil, err
		}
	}
	return newCatalog(f.Wireless, f.AIML, studies), nil
}

func validate(t ResumeType, r *Resume) error {
	if len(r.Hero.MainText) == 0 {
		return fmt.Errorf("%s: hero main_text is empty", t)
	}
	return validateSlugs(string(t), r.Projects)
}

func validateSlugs(section string, projects []Project) error {
	seen := make(map[string]bool, len(projects))
	for i, p := range projects {
		if p.Slug == "" {
			return fmt.Errorf("%s: project %d (%q) has no slug", section, i, p.Title)
		}
		if seen[p.Slug] {
			return fmt.Errorf("%s: duplicate project slug %q", section, p.Slug)
		}
		seen[p.Slug] = true
	}
	return nil
}

// Resume returns the variant for t. Unknown types get the default variant.
func (c *Catalog) Resume(t ResumeType) *Resume {
	if r, ok := c.resumes[t]; ok {
		return r
	}
	return c.resumes[DefaultType]
}

// ProjectPage is everything the project detail page renders.
type ProjectPage struct {
	Slug       string
	Title      string
	Role       string
	Year       string
	Client     string
	Duration   string
	HeroImage  string
	Overview   Overview
	Process    []Step
	Images     []string
	Reflection string

	// Found is false when the slug matched no project and the page shows
	// the placeholder case study.
	Found bool
}

// ProjectPage resolves slug in the selected variant, then the other one,
// then the standalone case studies. Unknown or empty slugs yield the
// placeholder case study.
func (c *Catalog) ProjectPage(t ResumeType, slug string) ProjectPage {
	if slug != "" {
		for _, rt := range []ResumeType{t, t.other()} {
			if p, ok := c.Resume(rt).Project(slug); ok {
				return pageFor(p)
			}
		}
		for _, p := range c.caseStudies {
			if p.Slug == slug {
				return pageFor(p)
			}
		}
	}
	page := placeholderPage()
	page.Slug = slug
	return page
}

func pageFor(p Project) ProjectPage {
	page := placeholderPage()
	page.Slug = p.Slug
	page.Title = p.Title
	page.Role = p.Role
	page.Year = p.Year
	page.Found = true
	if p.Image != "" {
		page.HeroImage = p.Image
	}
	// Without a written case study the card text is the best summary.
	page.Overview.Solution = p.Description
	if p.Outcome != "" {
		page.Overview.Impact = p.Outcome
	}
	page.Images = nil

	d := p.Detail
	if d == nil {
		return page
	}
	if d.Client != "" {
		page.Client = d.Client
	}
	if d.Duration != "" {
		page.Duration = d.Duration
	}
	if d.HeroImage != "" {
		page.HeroImage = d.HeroImage
	}
	if d.Overview.Problem != "" {
		page.Overview.Problem = d.Overview.Problem
	}
	if d.Overview.Solution != "" {
		page.Overview.Solution = d.Overview.Solution
	}
	if d.Overview.Impact != "" {
		page.Overview.Impact = d.Overview.Impact
	}
	if len(d.Process) > 0 {
		page.Process = d.Process
	}
	page.Images = d.Images
	if d.Reflection != "" {
		page.Reflection = d.Reflection
	}
	return page
}

func placeholderPage() ProjectPage {
	return ProjectPage{
		Title:     "Project Case Study",
		Role:      "Designer",
		Year:      "2024",
		Client:    "Various",
		Duration:  "3-6 months",
		HeroImage: "https://images.unsplash.com/photo-1634942537034-2531766767d1?w=1200&auto=format&fit=crop&q=80",
		Overview: Overview{
			Problem:  "Client needed a comprehensive solution to improve their digital presence and user experience.",
			Solution: "Developed a strategic approach combining research, design, and implementation.",
			Impact:   "Achieved measurable improvements in user satisfaction and business metrics.",
		},
		Process: []Step{
			{Title: "Research", Description: "Deep dive into user needs, market analysis, and competitive landscape."},
			{Title: "Strategy", Description: "Defined clear objectives and success metrics aligned with business goals."},
			{Title: "Design", Description: "Iterative design process with continuous user feedback integration."},
			{Title: "Delivery", Description: "Comprehensive handoff and support through implementation."},
		},
		Reflection: "Every project teaches something new. This one reinforced the importance of starting with clear problem definition.",
	}
}
