package render

// Fixed page copy shown until, or instead of, data from the API.
var (
	DefaultHeroName = "Your Name"

	DefaultHeadline = `Software engineer building things that are useful and fun,
	and always curious about how they work behind the scenes.`

	DefaultAbout = `Most of my projects start with a simple idea and turn into a chance
	to learn something new, whether it's a different language, a new tool, or a tricky problem.`

	NoProjectsText   = "No projects added yet"
	NoExperienceText = "No experience added yet"
	NoImagesText     = "No images"

	SourceLinkText = "GitHub"
	LiveLinkText   = "Live Demo ↗"

	EmailPrefix = "Email: "
	PhonePrefix = "Phone: "

	SearchPlaceholder = "Search projects..."
)

// Labels for the experience summary metric.
const (
	LabelMonths    = "Experience"
	LabelYears     = "Years Exp"
	LabelPositions = "Positions"
)
