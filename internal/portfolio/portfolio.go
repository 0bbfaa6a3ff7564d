// Package portfolio holds the records served by the portfolio API and the
// visitor identity that scopes every request to one portfolio.
package portfolio

import (
	"net/url"
	"strings"
)

// BasicInfo is the profile shown in the hero, about and contact sections.
type BasicInfo struct {
	ID             int    `json:"id,omitempty"`
	Name           string `json:"name"`
	Headline       string `json:"headline"`
	AboutText      string `json:"about_text"`
	Description    string `json:"description"`
	ProfileImage   string `json:"profile_image"`
	LinkedIn       string `json:"linkedin"`
	GitHub         string `json:"github"`
	Email          string `json:"email"`
	MobileNumber   string `json:"mobile_number"`
	CurrentCollege string `json:"current_college"`
}

// Project is one portfolio project. TechStack and Images are comma-separated.
type Project struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	OneLiner    string `json:"one_liner"`
	Description string `json:"description"`
	TechStack   string `json:"tech_stack"`
	Images      string `json:"images"`
	Source      string `json:"source"`
	Link        string `json:"link"`
}

// Experience is one timeline entry. Dates are free-form strings as entered.
type Experience struct {
	ID          int    `json:"id,omitempty"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Skill groups comma-separated skill names by kind.
type Skill struct {
	ID                  int    `json:"id,omitempty"`
	Application         string `json:"application"`
	ProgrammingLanguage string `json:"programming_language"`
	Technologies        string `json:"technologies"`
}

// Identity selects whose portfolio is shown. Exactly one of Email or Mobile
// is used to build the query; Email wins when both are set.
type Identity struct {
	Email  string
	Mobile string
}

// IdentityFromQuery reads email and mobile from URL query values. The default
// email is substituted only when both are absent; a mobile number given
// without an email is used as-is.
func IdentityFromQuery(values url.Values, defaultEmail string) Identity {
	id := Identity{
		Email:  values.Get("email"),
		Mobile: values.Get("mobile"),
	}
	if id.Email == "" && id.Mobile == "" {
		id.Email = defaultEmail
	}
	return id
}

// IsZero reports whether the identity cannot scope a request.
func (i Identity) IsZero() bool {
	return i.Email == "" && i.Mobile == ""
}

// Values returns the single query parameter that identifies the portfolio.
func (i Identity) Values() url.Values {
	v := url.Values{}
	switch {
	case i.Email != "":
		v.Set("email", i.Email)
	case i.Mobile != "":
		v.Set("mobile", i.Mobile)
	}
	return v
}

// Query returns the URL-encoded query string, e.g. "email=a%40b.c".
func (i Identity) Query() string {
	return i.Values().Encode()
}

// Key returns the identifying value, used for logging and visit stats.
func (i Identity) Key() string {
	if i.Email != "" {
		return i.Email
	}
	return i.Mobile
}

// SplitList splits a comma-separated API field, trimming each element and
// dropping empty ones.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
