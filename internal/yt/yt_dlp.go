package yt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/patrickprogramme/yt2xml/internal/logger"
)

var log = logger.For("yt")

// NewYtDlp construit une instance. Path doit être le chemin résolu vers l'exe
func NewYtDlp(name string, resolvedPath string, opts Options) *YtDlp {
	return &YtDlp{
		Name:    name,
		Path:    resolvedPath,
		Options: opts,
	}
}

// CheckBinary vérifie que le binaire existe. Si le chemin configuré est
// absent, on cherche Name dans le PATH et on retient ce chemin.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	if y.Path != "" {
		info, err := os.Stat(y.Path)
		if err == nil {
			if info.IsDir() {
				return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire, pas un fichier exécutable")
			}
			return nil
		}
		log.Debug("yt-dlp absent de %s, recherche de %s dans le PATH", y.Path, y.Name)
	}

	found, err := exec.LookPath(y.Name)
	if err != nil {
		return fmt.Errorf("yt-dlp introuvable (%s) : %w", y.Executable(), err)
	}
	y.Path = found
	return nil
}

// ExtractRaw exécute `yt-dlp -j <url>` et renvoie la sortie JSON brute.
// Un échec de yt-dlp est traduit en erreur typée via MapError.
func (y *YtDlp) ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error) {
	start := time.Now()
	defer func() {
		log.Info("métadonnées extraites en %s (%s)", time.Since(start), url)
	}()

	out, err := y.run(ctx, y.Options.ExtractArgs(url)...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Error("yt-dlp a échoué : %s", strings.TrimSpace(string(out)))
			return nil, MapError(string(out))
		}
		return nil, fmt.Errorf("yt-dlp -j : %w", err)
	}

	var jsonLine string
	var warnings []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") {
			jsonLine = line
		} else {
			warnings = append(warnings, line)
		}
	}
	if jsonLine == "" {
		return nil, fmt.Errorf("aucun JSON détecté dans la sortie: %s", string(out))
	}
	for _, w := range warnings {
		log.Warn("yt-dlp : %s", w)
	}
	return &ExtractedRaw{
		JSON:     []byte(jsonLine),
		Warnings: warnings,
	}, nil
}

// GetVersion renvoie la sortie de `yt-dlp --version` (dernière ligne non vide).
func (y *YtDlp) GetVersion(ctx context.Context) (string, error) {
	out, err := y.run(ctx, y.Options.VersionArgs()...)
	if err != nil {
		return "", fmt.Errorf("yt-dlp --version : %w (%s)", err, strings.TrimSpace(string(out)))
	}
	lines := strings.Fields(string(out))
	if len(lines) == 0 {
		return "", errors.New("yt-dlp --version : sortie vide")
	}
	return lines[len(lines)-1], nil
}

// run lance yt-dlp et renvoie stdout et stderr mélangés.
// Une annulation de ctx est renvoyée telle quelle.
func (y *YtDlp) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, y.Executable(), args...)
	cmd.WaitDelay = 2 * time.Second
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out, ctxErr
		}
		return out, err
	}
	return out, nil
}
