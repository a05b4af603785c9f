package main

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"alfredoptarigan/resume-matcher/internal/models"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "matcher",
	Short:        "AI Resume Matcher",
	Long:         "Scores a resume against a job description and explains the gaps.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show service logs")
}

// terminalNotifier prints toasts to stderr as they happen.
type terminalNotifier struct {
	w io.Writer
}

func (n terminalNotifier) Notify(_ uuid.UUID, msg models.Notification) {
	prefix := "✔"
	if msg.Variant == models.VariantDestructive {
		prefix = "✘"
	}
	fmt.Fprintf(n.w, "%s %s %s\n", prefix, msg.Title, msg.Description)
}
