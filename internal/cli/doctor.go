package cli

import (
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check yt-dlp and look for a newer release",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	a, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	return a.Doctor(cmd.Context())
}
