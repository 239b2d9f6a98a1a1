package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mle-ats/assignmail/pkg/mailer"
)

type assignmentFlags struct {
	recruiterID string
	jobID       string
}

func (f *assignmentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.recruiterID, "recruiter", "", "recruiter (users.id)")
	cmd.Flags().StringVar(&f.jobID, "job", "", "job (jobs.id)")
	_ = cmd.MarkFlagRequired("recruiter")
	_ = cmd.MarkFlagRequired("job")
}

func newPreviewCmd(envFile *string) *cobra.Command {
	var (
		flags  assignmentFlags
		asJSON bool
		asHTML bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Compose an assignment email and print it without sending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON && asHTML {
				return errors.New("--json and --html are mutually exclusive")
			}

			cfg, log, err := loadConfig(*envFile)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			email, err := a.service.Compose(cmd.Context(), flags.recruiterID, flags.jobID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(email)
			case asHTML:
				_, err = io.WriteString(out, email.HTML)
				return err
			default:
				return printEmail(out, email)
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the whole message as JSON")
	cmd.Flags().BoolVar(&asHTML, "html", false, "print only the HTML body")
	return cmd
}

func newSendCmd(envFile *string) *cobra.Command {
	var flags assignmentFlags

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Compose and send one assignment email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(*envFile)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			id, err := a.service.Send(cmd.Context(), flags.recruiterID, flags.jobID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "sent: %s\n", id)
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

func printEmail(w io.Writer, email mailer.Email) error {
	_, err := fmt.Fprintf(w, "To: %s\n", email.To)
	if err != nil {
		return err
	}
	for _, cc := range email.CC {
		if _, err := fmt.Fprintf(w, "Cc: %s\n", cc); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Subject: %s\n", email.Subject); err != nil {
		return err
	}
	for _, a := range email.Attachments {
		if _, err := fmt.Fprintf(w, "Attachment: %s (%s, %d bytes)\n", a.Filename, a.ContentType, len(a.Content)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "\n%s", email.Text)
	return err
}
