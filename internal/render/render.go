// Package render turns portfolio records into the HTML targets of the
// portfolio page.
//
// Each section has a pure function from records to a view (BasicInfo,
// Projects, Experience, Skills) and a set of named templates that write the
// view into its page targets. Views render either inline, as part of "page",
// or as a standalone fragment whose targets are swapped out-of-band by htmx.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/Zachkp/folio/internal/icons"
	"github.com/Zachkp/folio/internal/portfolio"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Template names.
const (
	PageTemplate       = "page"
	BasicInfoFragment  = "basic-info-fragment"
	ProjectsFragment   = "projects-fragment"
	ProjectRows        = "project-rows"
	ExperienceFragment = "experience-fragment"
	SkillsFragment     = "skills-fragment"
)

// PageView is the whole page. A nil section was not loaded and keeps the
// page's static content.
type PageView struct {
	Title      string
	Basic      *BasicInfoView
	Projects   *ProjectsView
	Experience *ExperienceView
	Skills     *SkillsView
}

// DefaultBasic is what the basic info targets show before any profile loads.
func (PageView) DefaultBasic() BasicInfoView {
	return defaultBasic
}

// DefaultExperience leaves the experience stat at its static value.
func (PageView) DefaultExperience() ExperienceView {
	return ExperienceView{}
}

var defaultBasic = BasicInfo(portfolio.BasicInfo{})

// linkView is the data of the "link" template.
type linkView struct {
	ID      string
	Class   string
	Label   string
	Link    Link
	OOB     bool
	Display string
}

var funcs = template.FuncMap{
	"linkTarget": func(id, class, label string, l Link, oob bool) linkView {
		display := "inline-flex"
		if class == "social-link" {
			display = "flex"
		}
		return linkView{ID: id, Class: class, Label: label, Link: l, OOB: oob, Display: display}
	},
	"iconURL":           icons.URL,
	"noProjects":        func() string { return NoProjectsText },
	"noExperience":      func() string { return NoExperienceText },
	"noImages":          func() string { return NoImagesText },
	"sourceLinkText":    func() string { return SourceLinkText },
	"liveLinkText":      func() string { return LiveLinkText },
	"searchPlaceholder": func() string { return SearchPlaceholder },
	"yearsLabel":        func() string { return LabelYears },
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("folio").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Template returns the parsed template set, for gin's HTML renderer.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Execute writes the named template with data to w.
func (r *Renderer) Execute(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("executing %s: %w", name, err)
	}
	return nil
}

// Static returns the embedded static assets (carousel.js).
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("render: static assets missing: " + err.Error())
	}
	return sub
}
