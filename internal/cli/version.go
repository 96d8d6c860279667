package cli

import (
	"github.com/spf13/cobra"
)

// version est injectée au build : -ldflags "-X .../internal/cli.version=1.2.3"
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("yt2xml version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
