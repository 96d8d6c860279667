// Package cli définit les commandes cobra de yt2xml.
package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/patrickprogramme/yt2xml/internal/app"
	"github.com/patrickprogramme/yt2xml/internal/config"
	"github.com/patrickprogramme/yt2xml/internal/logger"
	"github.com/patrickprogramme/yt2xml/internal/ui"
)

var (
	configPath string
	outputDir  string
	copyXML    bool
	ytDlpPath  string
	verbose    bool
	waitExit   bool
)

const longHelp = `Convert YouTube transcripts to XML format with chapter detection.

Each input is either a YouTube URL (subtitles are fetched with yt-dlp) or a
.txt transcript copied from YouTube. Without input, the clipboard is used,
then an interactive prompt.

✅ Example YouTube Transcript

📋 EXPECTED FORMAT:
   ┌─────────────────────────────────────────
   │ Introduction to Bret Taylor
   │ 00:04
   │ You're CTO of Meta and and co-CEO of...
   └─────────────────────────────────────────

🔧 REQUIREMENTS:
   - 1st line: (non-timestamp) → becomes first chapter
   - 2nd line: (timestamp e.g. "0:03") → becomes start_time for first chapter
   - 3rd line: (non-timestamp) → first content line of first chapter

💡 Check that your transcript follows this basic pattern`

var rootCmd = &cobra.Command{
	Use:           "yt2xml [transcript.txt | youtube-url]...",
	Short:         "Convert YouTube transcripts to XML with chapter detection",
	Long:          longHelp,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: yt2xml.yaml next to the executable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "mirror log messages to stderr")
	rootCmd.PersistentFlags().StringVar(&ytDlpPath, "yt-dlp-path", "", "yt-dlp executable or the directory containing it")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for the XML files (default from config: transcript_files)")
	rootCmd.Flags().BoolVar(&copyXML, "copy", false, "copy the generated XML to the clipboard")
	rootCmd.Flags().BoolVar(&waitExit, "wait", false, "keep the console open until Ctrl+C")
}

// reportedError marque une erreur déjà affichée à l'utilisateur.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// Execute lance la commande racine et renvoie le code de sortie.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			rootCmd.PrintErrln(app.UserMessage(err))
		}
		return 1
	}
	return 0
}

func runConvert(cmd *cobra.Command, args []string) error {
	a, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := a.Run(cmd.Context(), args); err != nil {
		return reportedError{err}
	}
	return nil
}

// defaultConfigPath place la configuration à côté de l'exécutable.
func defaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return config.DefaultFileName
	}
	return filepath.Join(filepath.Dir(exe), config.DefaultFileName)
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return defaultConfigPath()
}

// templatesDir est le dossier des templates modifiables, à côté de la configuration.
func templatesDir() string {
	return filepath.Join(filepath.Dir(resolvedConfigPath()), "templates")
}

// setup charge la configuration, ouvre le journal et construit l'application.
func setup(cmd *cobra.Command) (*app.App, func(), error) {
	cfg, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, nil, err
	}

	logger.SetConsole(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)
	closeLog, err := logger.Init(cfg.LogFile, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		return nil, nil, err
	}

	flags := &app.CLIFlags{
		ConfigPath: cfg.Path(),
		OutputDir:  outputDir,
		Copy:       copyXML,
		YtDlpPath:  ytDlpPath,
		Verbose:    verbose,
		Wait:       waitExit,
	}
	u := ui.NewWriters(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	a := app.New(cfg, u, flags)

	return a, func() { _ = closeLog() }, nil
}
