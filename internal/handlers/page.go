package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/loader"
	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/render"
)

// PageHandler serves the portfolio page and its section fragments.
type PageHandler struct {
	loader       *loader.Loader
	title        string
	defaultEmail string
	now          func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(l *loader.Loader, opts Options) *PageHandler {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &PageHandler{
		loader:       l,
		title:        opts.Title,
		defaultEmail: opts.DefaultEmail,
		now:          now,
	}
}

func (h *PageHandler) identity(c *gin.Context) portfolio.Identity {
	return portfolio.IdentityFromQuery(c.Request.URL.Query(), h.defaultEmail)
}

// Page handles GET / with every section rendered. Sections whose fetch
// failed keep the page's static content.
func (h *PageHandler) Page(c *gin.Context) {
	id := h.identity(c)
	view := render.PageView{Title: h.title}

	h.loader.Load(c.Request.Context(), id, loader.Targets{
		BasicInfo: func(info portfolio.BasicInfo) {
			v := render.BasicInfo(info)
			view.Basic = &v
		},
		Projects: func(projects []portfolio.Project) {
			v := render.Projects(projects)
			v.Query = id.Query()
			view.Projects = &v
		},
		Experiences: func(experiences []portfolio.Experience) {
			v := render.Experience(experiences, h.now())
			view.Experience = &v
		},
		Skills: func(skills []portfolio.Skill) {
			v := render.Skills(skills)
			view.Skills = &v
		},
	})

	if view.Basic != nil && view.Basic.HeroName != render.DefaultHeroName {
		view.Title = view.Basic.HeroName
	}
	c.HTML(http.StatusOK, render.PageTemplate, view)
}

// BasicInfo handles GET /sections/basic-info.
func (h *PageHandler) BasicInfo(c *gin.Context) {
	var view *render.BasicInfoView
	h.loader.Load(c.Request.Context(), h.identity(c), loader.Targets{
		BasicInfo: func(info portfolio.BasicInfo) {
			v := render.BasicInfo(info)
			v.OOB = true
			view = &v
		},
	})
	respondFragment(c, render.BasicInfoFragment, view)
}

// Projects handles GET /sections/projects: count, search box and grid.
func (h *PageHandler) Projects(c *gin.Context) {
	view := h.loadProjects(c)
	if view != nil {
		view.OOB = true
	}
	respondFragment(c, render.ProjectsFragment, view)
}

// ProjectRows handles GET /sections/projects/rows?q=, the search box target.
// Rows that do not match q are rendered hidden.
func (h *PageHandler) ProjectRows(c *gin.Context) {
	view := h.loadProjects(c)
	if view != nil {
		filtered := view.Filter(c.Query("q"))
		view = &filtered
	}
	respondFragment(c, render.ProjectRows, view)
}

func (h *PageHandler) loadProjects(c *gin.Context) *render.ProjectsView {
	id := h.identity(c)
	var view *render.ProjectsView
	h.loader.Load(c.Request.Context(), id, loader.Targets{
		Projects: func(projects []portfolio.Project) {
			v := render.Projects(projects)
			v.Query = id.Query()
			view = &v
		},
	})
	return view
}

// Experience handles GET /sections/experience.
func (h *PageHandler) Experience(c *gin.Context) {
	var view *render.ExperienceView
	h.loader.Load(c.Request.Context(), h.identity(c), loader.Targets{
		Experiences: func(experiences []portfolio.Experience) {
			v := render.Experience(experiences, h.now())
			v.OOB = true
			view = &v
		},
	})
	respondFragment(c, render.ExperienceFragment, view)
}

// Skills handles GET /sections/skills.
func (h *PageHandler) Skills(c *gin.Context) {
	var view *render.SkillsView
	h.loader.Load(c.Request.Context(), h.identity(c), loader.Targets{
		Skills: func(skills []portfolio.Skill) {
			v := render.Skills(skills)
			v.OOB = true
			view = &v
		},
	})
	respondFragment(c, render.SkillsFragment, view)
}

// respondFragment renders a section fragment, or 204 when its data did not
// load so htmx leaves the section untouched.
func respondFragment[T any](c *gin.Context, name string, view *T) {
	if view == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.HTML(http.StatusOK, name, view)
}
