package render

import (
	"regexp"

	"github.com/Zachkp/folio/internal/portfolio"
)

var driveFilePattern = regexp.MustCompile(`drive\.google\.com/file/d/([^/]+)`)

// Link is an anchor target. Hidden links keep href="#" and are not displayed.
type Link struct {
	Href   string
	Hidden bool
}

// Contact is a text target such as "Email: jane@example.com".
type Contact struct {
	Text   string
	Hidden bool
}

// BasicInfoView holds every target filled from the profile.
type BasicInfoView struct {
	HeroName        string
	HeroDescription string
	AboutText       string
	ProfileImage    string
	FooterName      string

	HeroLinkedIn    Link
	HeroGitHub      Link
	ContactLinkedIn Link
	ContactGitHub   Link
	ContactEmail    Contact
	ContactPhone    Contact

	// OOB marks the targets for out-of-band swapping when rendered as a
	// standalone fragment.
	OOB bool
}

// BasicInfo maps a profile onto its page targets. Empty text fields keep the
// page's default copy.
func BasicInfo(info portfolio.BasicInfo) BasicInfoView {
	v := BasicInfoView{
		HeroName:        orDefault(info.Name, DefaultHeroName),
		HeroDescription: orDefault(info.Headline, DefaultHeadline),
		AboutText:       orDefault(info.AboutText, DefaultAbout),
		FooterName:      orDefault(info.Name, DefaultHeroName),

		HeroLinkedIn:    link(info.LinkedIn),
		HeroGitHub:      link(info.GitHub),
		ContactLinkedIn: link(info.LinkedIn),
		ContactGitHub:   link(info.GitHub),
		ContactEmail:    contact(EmailPrefix, info.Email),
		ContactPhone:    contact(PhonePrefix, info.MobileNumber),
	}
	if info.ProfileImage != "" {
		v.ProfileImage = DriveImageURL(info.ProfileImage)
	}
	return v
}

// DriveImageURL rewrites a Google Drive share link into its direct-view form.
// Other URLs are returned unchanged.
func DriveImageURL(u string) string {
	m := driveFilePattern.FindStringSubmatch(u)
	if m == nil {
		return u
	}
	return "https://drive.google.com/uc?export=view&id=" + m[1]
}

func link(href string) Link {
	if href == "" {
		return Link{Href: "#", Hidden: true}
	}
	return Link{Href: href}
}

func contact(prefix, value string) Contact {
	if value == "" {
		return Contact{Hidden: true}
	}
	return Contact{Text: prefix + value}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
