package resend

// Config holds Resend email provider configuration.
type Config struct {
	APIKey      string `env:"API_KEY"`
	SenderEmail string `env:"FROM_EMAIL"`
	SenderName  string `env:"FROM_NAME" envDefault:"MLE ATS"`
}
