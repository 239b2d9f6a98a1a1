package smtp

import "time"

// Config holds SMTP relay configuration.
// Port 465 uses implicit TLS; any other port requires STARTTLS.
type Config struct {
	Host       string        `env:"HOST" envDefault:"smtp.gmail.com"`
	Username   string        `env:"USER"`
	Password   string        `env:"PASS"`
	SenderName string        `env:"FROM_NAME" envDefault:"MLE ATS"`
	Port       int           `env:"PORT" envDefault:"465"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// MaxAttachmentSize caps reference attachment downloads.
	MaxAttachmentSize int64 `env:"MAX_ATTACHMENT_SIZE" envDefault:"26214400"`
}

// SenderEmail is the envelope sender; Gmail requires it to match the login.
func (c Config) SenderEmail() string {
	return c.Username
}
