package email

// Template names an HTML template under the templates directory.
type Template string

const (
	// TemplateWelcome corresponds to templates/emails/welcome.html
	TemplateWelcome Template = "welcome"
)

// DefaultTemplateDir is resolved relative to the working directory.
const DefaultTemplateDir = "templates/emails"
