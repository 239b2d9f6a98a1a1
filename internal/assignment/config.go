package assignment

// Config holds the deployment constants of the assignment email.
type Config struct {
	// Bucket holds uploaded job descriptions.
	Bucket string `env:"JD_BUCKET" envDefault:"job-descriptions"`

	// StandingCC is copied on every assignment email for oversight. Empty disables it.
	StandingCC string `env:"MAIL_STANDING_CC"`

	// PortalURL is linked from the email body.
	PortalURL string `env:"PORTAL_URL" envDefault:"https://mle-ats.vercel.app"`

	// TeamName signs the email.
	TeamName string `env:"MAIL_TEAM_NAME" envDefault:"MLE ATS Team"`
}
