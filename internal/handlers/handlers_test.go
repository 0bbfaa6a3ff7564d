package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/api"
	"github.com/Zachkp/folio/internal/loader"
	"github.com/Zachkp/folio/internal/render"
)

var fixtures = map[string]string{
	api.BasicInfoPath: `{"name":"Jane Doe","headline":"Backend engineer","about_text":"I build services.",
		"linkedin":"https://linkedin.com/in/jane","github":"https://github.com/jane","email":"jane@example.com"}`,
	api.ProjectsPath: `[{"name":"Tracer","one_liner":"Request tracing","tech_stack":"Go, PostgreSQL","images":"https://example.com/a.png"},
		{"name":"Painter","one_liner":"Canvas app","tech_stack":"React"}]`,
	api.ExperiencesPath: `[{"role":"Engineer","company_name":"Acme","start_date":"2020-01-01","end_date":"Present"}]`,
	api.SkillsPath:      `[{"programming_language":"Go, Python","technologies":"Docker"}]`,
}

// fakeAPI serves the fixtures and records the queries it receives.
type fakeAPI struct {
	mu      sync.Mutex
	failing map[string]bool
	queries []string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.queries = append(f.queries, r.URL.RawQuery)
	failing := f.failing[r.URL.Path]
	f.mu.Unlock()

	body, ok := fixtures[r.URL.Path]
	switch {
	case failing:
		http.Error(w, "boom", http.StatusInternalServerError)
	case !ok:
		http.NotFound(w, r)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func (f *fakeAPI) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func setupTestRouter(t *testing.T, failing ...string) (*gin.Engine, *fakeAPI) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := &fakeAPI{failing: map[string]bool{}}
	for _, p := range failing {
		backend.failing[p] = true
	}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	renderer, err := render.New()
	require.NoError(t, err)

	l := loader.New(api.NewClient(srv.URL, srv.Client()))
	router := SetupRoutes(l, renderer, Options{
		Title:        "Portfolio",
		DefaultEmail: "default@example.com",
		Now:          func() time.Time { return time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC) },
	})
	return router, backend
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestPage(t *testing.T) {
	router, backend := setupTestRouter(t)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "<title>Jane Doe</title>")
	assert.Contains(t, body, "Backend engineer")
	assert.Contains(t, body, "I build services.")
	assert.Contains(t, body, `<span id="projectCount" class="stat-value">2</span>`)
	assert.Contains(t, body, "Tracer")
	assert.Contains(t, body, "Painter")
	assert.Contains(t, body, "6+")
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "Python")
	assert.Contains(t, body, "Docker")
	assert.NotContains(t, body, "hx-swap-oob")

	queries := backend.seen()
	require.Len(t, queries, 4)
	for _, q := range queries {
		assert.Equal(t, "email=default%40example.com", q)
	}
}

func TestPageByMobile(t *testing.T) {
	router, backend := setupTestRouter(t)

	w := get(router, "/?mobile=5551234")
	require.Equal(t, http.StatusOK, w.Code)
	for _, q := range backend.seen() {
		assert.Equal(t, "mobile=5551234", q)
	}
}

func TestPageSectionFailureIsIsolated(t *testing.T) {
	router, _ := setupTestRouter(t, api.ProjectsPath, api.BasicInfoPath)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "<title>Portfolio</title>")
	assert.Contains(t, body, render.DefaultHeroName)
	assert.Contains(t, body, `<span id="projectCount" class="stat-value">0</span>`)
	assert.NotContains(t, body, "Tracer")
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "Docker")
}

func TestSectionFragments(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		path string
		want []string
	}{
		{path: "/sections/basic-info", want: []string{`id="heroName" hx-swap-oob="true">Jane Doe`, `id="footerName"`}},
		{path: "/sections/projects", want: []string{`id="projectCount"`, "Tracer", `hx-get="/sections/projects/rows?email=default%40example.com"`}},
		{path: "/sections/experience", want: []string{`id="expStat"`, "Acme"}},
		{path: "/sections/skills", want: []string{`id="skillsMarquee"`, `id="skillsMarqueeCopy"`, "Go"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(router, tt.path)
			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, `hx-swap-oob="true"`)
			for _, s := range tt.want {
				assert.Contains(t, body, s)
			}
		})
	}
}

func TestSectionFragmentFailure(t *testing.T) {
	router, _ := setupTestRouter(t, api.SkillsPath)

	w := get(router, "/sections/skills")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = get(router, "/sections/experience")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProjectRowsFilter(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(router, "/sections/projects/rows?q=react")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	rows := strings.Split(body, `class="project-row"`)
	require.Len(t, rows, 3)
	assert.Contains(t, rows[1], "Tracer")
	assert.Contains(t, rows[1], `style="display:none"`)
	assert.Contains(t, rows[2], "Painter")
	assert.NotContains(t, strings.SplitN(rows[2], ">", 2)[0], "display:none")
	assert.NotContains(t, body, "hx-swap-oob")

	w = get(router, "/sections/projects/rows?q=")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `style="display:none"`)
}

func TestRequestID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(router, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "upstream-id", w.Header().Get(RequestIDHeader))
}

func TestStatic(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(router, "/static/carousel.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Swiper")
}
