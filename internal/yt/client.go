package yt

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickprogramme/yt2xml/internal/config"
)

const defaultVersionTimeout = 5 * time.Second

// Interface est l'abstraction du lanceur yt-dlp utilisée par l'application.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)
	ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error)
}

var _ Interface = (*YtDlp)(nil)

// InitYtDlp construit le client depuis la config, vérifie le binaire et récupère la version.
func InitYtDlp(ctx context.Context, cfg *config.Config) (Interface, string, error) {
	opts := DefaultOptions(cfg.YtDlp.ShowWarnings)
	opts.CookiesFile = cfg.YtDlp.CookiesFile
	dl := NewYtDlp(cfg.YtDlp.Name, cfg.YtDlp.ResolvedPath, opts)

	if err := dl.CheckBinary(); err != nil {
		return nil, "", fmt.Errorf("yt-dlp introuvable : %w", err)
	}

	vctx, cancel := context.WithTimeout(ctx, defaultVersionTimeout)
	defer cancel()
	version, err := dl.GetVersion(vctx)
	if err != nil {
		return dl, "", err
	}
	log.Info("yt-dlp %s (%s)", version, dl.Executable())

	return dl, version, nil
}
