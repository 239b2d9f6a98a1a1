package gmail

// Config holds Gmail API configuration.
// Either CredentialsJSON (service account with domain-wide delegation)
// or ClientID/ClientSecret/RefreshToken (personal mailbox) must be set.
type Config struct {
	CredentialsJSON string `env:"CREDENTIALS_JSON"`
	ClientID        string `env:"CLIENT_ID"`
	ClientSecret    string `env:"CLIENT_SECRET"`
	RefreshToken    string `env:"REFRESH_TOKEN"`
	SenderEmail     string `env:"FROM_EMAIL"`
	SenderName      string `env:"FROM_NAME" envDefault:"MLE ATS"`

	// MaxAttachmentSize caps reference attachment downloads.
	MaxAttachmentSize int64 `env:"MAX_ATTACHMENT_SIZE" envDefault:"26214400"`
}

func (c Config) usesServiceAccount() bool {
	return c.CredentialsJSON != ""
}

func (c Config) usesRefreshToken() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}
