package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/patrickprogramme/yt2xml/internal/clipboard"
	"github.com/patrickprogramme/yt2xml/internal/config"
	"github.com/patrickprogramme/yt2xml/internal/fsutil"
	"github.com/patrickprogramme/yt2xml/internal/logger"
	"github.com/patrickprogramme/yt2xml/internal/ui"
	"github.com/patrickprogramme/yt2xml/internal/updater"
	"github.com/patrickprogramme/yt2xml/internal/xmlout"
	"github.com/patrickprogramme/yt2xml/internal/yt"
	"github.com/patrickprogramme/yt2xml/pkg/model"
)

const (
	defaultUpdateTimeout  = 15 * time.Second
	defaultExtractTimeout = 2 * time.Minute
	filePerm              = 0o644
)

// CLIFlags contient les informations venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	OutputDir  string
	Copy       bool
	YtDlpPath  string
	Verbose    bool
	Wait       bool
}

// App orchestre les différentes dépendances (UI, YtDlp, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	ytClient yt.Interface // initialisé à la première URL
	releases updater.ReleaseGetter
	limiter  *rate.Limiter
	runID    string
	log      logger.Logger
}

// New construit l'application. Les flags non vides priment sur la configuration.
// Pour les tests, on injecte un client yt-dlp factice avec SetYtClient.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags) *App {
	if flags == nil {
		flags = &CLIFlags{}
	}
	if flags.OutputDir != "" {
		cfg.OutputDir = filepath.Clean(flags.OutputDir)
	}
	if flags.YtDlpPath != "" {
		cfg.YtDlp.Path = flags.YtDlpPath
		cfg.ResolveYtDlpPath()
	}
	if flags.Copy {
		cfg.CopyToClipboard = true
	}

	runID := uuid.NewString()[:8]
	logger.SetRunID(runID)

	return &App{
		cfg:     cfg,
		ui:      uiClient,
		flags:   flags,
		limiter: newLimiter(cfg.RequestsPerMinute),
		runID:   runID,
		log:     logger.For("app"),
	}
}

// newLimiter : n requêtes par minute, sans limite si n <= 0.
func newLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
}

// RunID est l'identifiant court de l'exécution, repris dans le journal.
func (a *App) RunID() string {
	return a.runID
}

// Config retourne la configuration effective.
func (a *App) Config() *config.Config {
	return a.cfg
}

// SetYtClient remplace le client yt-dlp (tests).
func (a *App) SetYtClient(c yt.Interface) {
	a.ytClient = c
}

// SetReleaseGetter remplace l'accès à l'API GitHub (tests).
func (a *App) SetReleaseGetter(rg updater.ReleaseGetter) {
	a.releases = rg
}

func (a *App) releaseGetter() updater.ReleaseGetter {
	if a.releases == nil {
		a.releases = updater.NewGetter()
	}
	return a.releases
}

// client initialise yt-dlp au premier besoin (CheckBinary + version).
func (a *App) client(ctx context.Context) (yt.Interface, error) {
	if a.ytClient != nil {
		return a.ytClient, nil
	}
	dl, version, err := yt.InitYtDlp(ctx, a.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYtDlpMissing, err)
	}
	a.ytClient = dl

	if a.cfg.YtDlp.AutoUpdateCheck {
		if err := a.YtDlpUpdateCheck(ctx, defaultUpdateTimeout, version); err != nil {
			a.log.Warn("%v", err)
		}
	}
	return dl, nil
}

// Run convertit chaque entrée dans l'ordre. Sans entrée, l'UI en fournit une
// (presse-papier puis saisie). Un échec n'interrompt pas les entrées suivantes ;
// l'erreur retournée agrège tous les échecs.
func (a *App) Run(ctx context.Context, inputs []string) error {
	a.log.Info("démarrage, %d entrée(s), sortie %s", len(inputs), a.cfg.OutputDir)

	if len(inputs) == 0 {
		in, err := a.ui.GetInput(ctx)
		if err != nil {
			a.ui.PrintError(ctx, UserMessage(err))
			return err
		}
		inputs = []string{in}
	}

	var errs []error
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			a.ui.PrintError(ctx, UserMessage(err))
			break
		}
		out, err := a.convertOne(ctx, in)
		if err != nil {
			a.log.Error("%s : %v", in, err)
			a.ui.PrintError(ctx, UserMessage(err))
			errs = append(errs, err)
			continue
		}
		a.log.Info("créé : %s", out)
		a.ui.PrintSuccess(ctx, "✅ Created: "+out)
	}

	if a.flags.Wait {
		if err := a.ui.WaitForExit(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// convertOne traite une entrée et retourne le chemin du XML écrit.
func (a *App) convertOne(ctx context.Context, input string) (string, error) {
	kind, err := Classify(input)
	if err != nil {
		return "", err
	}
	a.log.Debug("entrée %q : %s", input, kind)

	var (
		doc  model.TranscriptDocument
		base string
	)
	switch kind {
	case InputURL:
		doc, err = a.ConvertURL(ctx, input)
		base = fsutil.Slug(doc.Metadata.Title)
	default:
		doc, err = ConvertFile(input)
		base = fsutil.Stem(input)
	}
	if err != nil {
		return "", err
	}
	a.log.Info("%d chapitre(s), %d ligne(s)", len(doc.Chapters), doc.LineCount())

	data, err := xmlout.Render(doc)
	if err != nil {
		return "", &InputError{Input: input, Err: err}
	}

	out, err := fsutil.SaveAtomic(a.cfg.OutputDir, base, model.FormatXML.Extension(), data, a.cfg.Overwrite)
	if err != nil {
		return "", inputErr(filepath.Join(a.cfg.OutputDir, base+model.FormatXML.Extension()), ErrWrite, err)
	}

	if a.cfg.CopyToClipboard {
		if err := clipboard.WriteAll(string(data)); err != nil {
			a.log.Warn("copie presse-papier : %v", err)
			a.ui.PrintInfo(ctx, "⚠️ Could not copy the XML to the clipboard")
		} else {
			a.ui.PrintInfo(ctx, "📋 XML copied to the clipboard")
		}
	}
	return out, nil
}
