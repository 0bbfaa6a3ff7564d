package render

import (
	"encoding/json"
	"strings"

	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/icons"
	"github.com/Zachkp/folio/internal/portfolio"
)

// Icon is one technology logo in a project row.
type Icon struct {
	URL   string
	Title string
}

// ProjectRow is one rendered project.
type ProjectRow struct {
	Title       string
	OneLiner    string
	Description string
	Icons       []Icon
	Source      string
	Link        string
	Images      []string
	// TechStack is the raw tech_stack field, exposed as data-tech.
	TechStack string
	Hidden    bool
}

// Text is the row's visible text, in document order.
func (r ProjectRow) Text() string {
	parts := []string{r.Title, r.OneLiner, r.Description}
	if r.Source != "" {
		parts = append(parts, SourceLinkText)
	}
	if r.Link != "" {
		parts = append(parts, LiveLinkText)
	}
	if len(r.Images) == 0 {
		parts = append(parts, NoImagesText)
	}
	return strings.Join(parts, " ")
}

// CarouselOptions configures the per-row image slider.
type CarouselOptions struct {
	Loop                 bool `json:"loop"`
	Pagination           bool `json:"pagination"`
	Navigation           bool `json:"navigation"`
	AutoplayDelayMs      int  `json:"autoplayDelay"`
	DisableOnInteraction bool `json:"disableOnInteraction"`
}

// DefaultCarousel loops, shows clickable pagination and prev/next controls,
// and advances every four seconds.
var DefaultCarousel = CarouselOptions{
	Loop:            true,
	Pagination:      true,
	Navigation:      true,
	AutoplayDelayMs: 4000,
}

// JSON returns the options as the data-carousel attribute value.
func (o CarouselOptions) JSON() string {
	b, _ := json.Marshal(o)
	return string(b)
}

// ProjectsView is the projects grid, its count and the search box.
type ProjectsView struct {
	Rows     []ProjectRow
	Carousel CarouselOptions
	// Query is the identity query string the search box sends back.
	Query string
	// Search is the current filter text.
	Search string
	OOB    bool
}

// Empty reports whether only the "no projects" placeholder is rendered.
func (v ProjectsView) Empty() bool {
	return len(v.Rows) == 0
}

// Count is the number of projects, shown in the stats strip.
func (v ProjectsView) Count() int {
	return len(v.Rows)
}

// Projects renders one row per project, preserving input order.
func Projects(projects []portfolio.Project) ProjectsView {
	v := ProjectsView{Carousel: DefaultCarousel}
	if len(projects) == 0 {
		return v
	}
	v.Rows = make([]ProjectRow, 0, len(projects))
	for _, p := range projects {
		v.Rows = append(v.Rows, ProjectRow{
			Title:       p.Name,
			OneLiner:    p.OneLiner,
			Description: p.Description,
			Icons:       TechIcons(p.TechStack),
			Source:      p.Source,
			Link:        p.Link,
			Images:      portfolio.SplitList(p.Images),
			TechStack:   p.TechStack,
		})
	}
	return v
}

// TechIcons resolves a comma-separated tech stack into icons. Unknown
// technologies are skipped and aliases of the same icon appear once.
func TechIcons(techStack string) []Icon {
	var out []Icon
	seen := make(map[string]bool)
	for _, tech := range portfolio.SplitList(techStack) {
		url, ok := icons.Resolve(tech)
		if !ok || seen[url] {
			continue
		}
		seen[url] = true
		out = append(out, Icon{URL: url, Title: tech})
	}
	return out
}

// Filter hides the rows that do not match query.
func (v ProjectsView) Filter(query string) ProjectsView {
	rows := make([]filter.Row, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = filter.Row{Text: r.Text(), TechStack: r.TechStack}
	}
	visible := filter.Apply(rows, query)

	out := v
	out.Search = query
	out.Rows = make([]ProjectRow, len(v.Rows))
	for i, r := range v.Rows {
		r.Hidden = !visible[i]
		out.Rows[i] = r
	}
	return out
}
