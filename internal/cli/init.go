package cli

import (
	"github.com/spf13/cobra"

	"github.com/patrickprogramme/yt2xml/internal/assets"
	"github.com/patrickprogramme/yt2xml/internal/bootstrap"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config and templates next to the executable",
	Long: `Creates the config file if it is missing and exports the built-in
templates. Existing files are kept unless --force is given, in which case
a .bak copy is made before overwriting.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite modified templates (a backup is kept)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	cfgPath := resolvedConfigPath()
	created, err := bootstrap.EnsureConfigPresent(cfgPath, assets.Embedded, assets.DefaultConfigAsset)
	if err != nil {
		return err
	}
	if created {
		cmd.Printf("config: %s (written)\n", cfgPath)
	} else {
		cmd.Printf("config: %s (kept)\n", cfgPath)
	}

	status, err := bootstrap.ExportDefaults(assets.Embedded, assets.TemplatesDir, templatesDir(), initForce)
	if err != nil {
		return err
	}
	for _, k := range bootstrap.SortedKeys(status) {
		cmd.Printf("%s: %s\n", k, status[k])
	}
	return nil
}
