package app

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/patrickprogramme/yt2xml/internal/captions"
	"github.com/patrickprogramme/yt2xml/internal/fsutil"
	"github.com/patrickprogramme/yt2xml/internal/updater"
	"github.com/patrickprogramme/yt2xml/internal/yt"
)

// SaveSubtitleDownload sauvegarde la piste json3 brute de sd dans outDir.
// Utilise PrettyJSON() si possible, sinon les octets bruts.
func SaveSubtitleDownload(sd captions.Download, outDir string) error {
	if len(sd.Data) == 0 {
		return fmt.Errorf("SaveSubtitleDownload: pas de données dans Download")
	}

	path := filepath.Join(outDir, sd.Filename())

	dataToSave := sd.Data
	if pretty, err := sd.PrettyJSON(); err == nil && len(pretty) > 0 {
		dataToSave = pretty
	}

	if err := fsutil.WriteFileAtomic(path, dataToSave, filePerm); err != nil {
		return fmt.Errorf("write subtitle %s: %w", path, err)
	}
	return nil
}

// YtDlpUpdateCheck compare la version installée avec la dernière release GitHub.
func (a *App) YtDlpUpdateCheck(ctx context.Context, timeout time.Duration, version string) error {
	uc, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	check, err := updater.CheckYtDlpUpdate(uc, a.releaseGetter(), version)
	if err != nil {
		return fmt.Errorf("vérification de mise à jour a échoué : %w", err)
	}

	if check.UpToDate {
		a.ui.PrintInfo(ctx, fmt.Sprintf("✅ yt-dlp is up to date (%s)", check.Current))
		return nil
	}
	a.ui.PrintInfo(ctx, "⚠️ A new yt-dlp release is available:")
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Installed : %s", check.Current))
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Latest    : %s", check.Latest.Tag))
	a.ui.PrintInfo(ctx, "Download it here:")
	a.ui.PrintInfo(ctx, check.Link(runtime.GOOS))
	return nil
}

// Doctor affiche l'état de yt-dlp (chemin, version) et vérifie les mises à jour.
func (a *App) Doctor(ctx context.Context) error {
	a.ui.PrintInfo(ctx, fmt.Sprintf("Config      : %s", a.cfg.Path()))
	a.ui.PrintInfo(ctx, fmt.Sprintf("Output dir  : %s", a.cfg.OutputDir))

	for _, w := range a.cfg.Validate() {
		a.ui.PrintInfo(ctx, "⚠️ "+w)
	}
	check, err := a.cfg.CheckYtDlp()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrYtDlpMissing, err)
	}
	for _, w := range check.Warnings {
		a.log.Warn("%s", w)
	}

	client, err := a.client(ctx)
	if err != nil {
		return err
	}
	if dl, ok := client.(*yt.YtDlp); ok {
		a.ui.PrintInfo(ctx, fmt.Sprintf("yt-dlp      : %s", dl.Executable()))
	}

	vctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	version, err := client.GetVersion(vctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrYtDlpMissing, err)
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Version     : %s", version))

	return a.YtDlpUpdateCheck(ctx, defaultUpdateTimeout, version)
}
