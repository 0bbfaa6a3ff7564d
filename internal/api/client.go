package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Zachkp/folio/internal/portfolio"
)

// Endpoint paths on the portfolio API.
const (
	BasicInfoPath   = "/basic-info"
	ProjectsPath    = "/projects"
	ExperiencesPath = "/experiences"
	SkillsPath      = "/skills"
)

// StatusError is returned when the API answers with a non-OK status.
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Path, e.Status, e.Body)
}

// Client wraps HTTP access to the portfolio API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient constructs a new API client. BaseURL is the scheme + host (and
// optional base path) of the API, without a trailing slash.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: httpClient,
	}
}

// BasicInfo fetches the profile for id.
func (c *Client) BasicInfo(ctx context.Context, id portfolio.Identity) (portfolio.BasicInfo, error) {
	var info portfolio.BasicInfo
	err := c.get(ctx, BasicInfoPath, id, &info)
	return info, err
}

// Projects fetches the projects for id, in API order.
func (c *Client) Projects(ctx context.Context, id portfolio.Identity) ([]portfolio.Project, error) {
	var projects []portfolio.Project
	err := c.get(ctx, ProjectsPath, id, &projects)
	return projects, err
}

// Experiences fetches the experiences for id, in API order.
func (c *Client) Experiences(ctx context.Context, id portfolio.Identity) ([]portfolio.Experience, error) {
	var experiences []portfolio.Experience
	err := c.get(ctx, ExperiencesPath, id, &experiences)
	return experiences, err
}

// Skills fetches the skill records for id.
func (c *Client) Skills(ctx context.Context, id portfolio.Identity) ([]portfolio.Skill, error) {
	var skills []portfolio.Skill
	err := c.get(ctx, SkillsPath, id, &skills)
	return skills, err
}

func (c *Client) get(ctx context.Context, path string, id portfolio.Identity, out any) error {
	req, err := c.newRequest(ctx, path, id)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// newRequest builds a GET for path scoped to id.
func (c *Client) newRequest(ctx context.Context, path string, id portfolio.Identity) (*http.Request, error) {
	if c.BaseURL == "" {
		return nil, errors.New("client BaseURL is empty")
	}

	url := c.BaseURL + path
	if q := id.Query(); q != "" {
		url += "?" + q
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
