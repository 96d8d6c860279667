package cli

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/patrickprogramme/yt2xml/internal/app"
	"github.com/patrickprogramme/yt2xml/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <transcript.txt>",
	Short: "Analyse the structure of a transcript file",
	Long: `Counts lines, timestamps and the number of lines between consecutive
timestamps, then lists the chapter titles that would be detected.
A templates/report.txt.tmpl file next to the config replaces the built-in layout.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	path := args[0]
	out, err := report.File(path, templatesDir())
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return &app.InputError{Input: path, Err: app.ErrFileNotFound}
		case errors.Is(err, fs.ErrPermission):
			return &app.InputError{Input: path, Err: app.ErrFilePermission}
		}
		return err
	}
	cmd.Print(string(out))
	return nil
}
