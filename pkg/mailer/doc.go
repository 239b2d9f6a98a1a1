// Package mailer provides a transport-agnostic email model and a single
// Sender interface implemented by every mail transport.
//
// # Architecture
//
//   - Email, Attachment: a fully composed message. Attachments are either
//     byte attachments or reference attachments (URL) that the transport
//     fetches or forwards.
//   - Sender: the one capability a transport implements. Providers live in
//     subpackages: smtp (go-mail), resend (Resend API), gmail (Gmail API);
//     LogSender logs instead of sending.
//   - Mailer: validates emails, derives a plain text part from HTML when
//     needed, logs delivery and exposes a connectivity check.
//   - Markdown: renders short markdown fragments, including call-to-action
//     buttons, to email-safe HTML.
//
// # Usage
//
//	sender, err := smtp.New(smtp.Config{
//		Host:     "smtp.gmail.com",
//		Port:     465,
//		Username: "ats@example.com",
//		Password: os.Getenv("SMTP_PASS"),
//	})
//	if err != nil {
//		return err
//	}
//
//	m := mailer.New(sender, mailer.WithLogger(log))
//	id, err := m.Send(ctx, &mailer.Email{
//		To:      mailer.Recipient("Jane Doe", "jane@example.com"),
//		Subject: "Hello",
//		HTML:    "<p>Hello!</p>",
//		Tags:    mailer.SimpleTags("welcome"),
//	})
//
// # Buttons
//
// Markdown recognises [!button|Label](URL) and renders it as a link styled
// inline (mail clients drop <style> blocks):
//
//	html, err := mailer.NewMarkdown().Render("[!button|Open portal](https://ats.example.com)")
//
// # Custom Providers
//
// Implement Sender, and optionally Verifier for connectivity checks:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) (string, error) {
//		return "delivery-id", nil
//	}
package mailer
