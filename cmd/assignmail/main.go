// Command assignmail sends "new job assigned" emails to recruiters.
//
//	assignmail serve                              run the HTTP API
//	assignmail migrate up|status                  manage the dev/test schema
//	assignmail preview --recruiter ID --job ID    print the composed email
//	assignmail send --recruiter ID --job ID       send one assignment email
//
// Configuration is read from the environment and an optional .env file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "assignmail",
		Short:         "Job assignment notification relay for the MLE ATS",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before parsing the environment")

	root.AddCommand(
		newServeCmd(&envFile),
		newMigrateCmd(&envFile),
		newPreviewCmd(&envFile),
		newSendCmd(&envFile),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
