package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// niveaux reconnus par le logger
var validLogLevels = []string{"debug", "info", "warn", "error"}

// YtDlpCheck décrit l'état de l'exécutable configuré.
type YtDlpCheck struct {
	Path     string
	Found    bool
	Warnings []string
}

// CheckYtDlp vérifie sans l'exécuter que le chemin résolu de yt-dlp pointe sur un fichier.
// Un fichier absent n'est qu'un avertissement : le client cherchera ensuite dans le PATH.
func (c *Config) CheckYtDlp() (YtDlpCheck, error) {
	if c == nil {
		return YtDlpCheck{}, errors.New("config nil")
	}
	c.ResolveYtDlpPath()

	res := YtDlpCheck{Path: c.YtDlp.ResolvedPath}
	info, err := os.Stat(res.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if _, perr := os.Stat(filepath.Dir(res.Path)); errors.Is(perr, fs.ErrNotExist) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("le dossier de yt-dlp n'existe pas : %s", filepath.Dir(res.Path)))
		}
		res.Warnings = append(res.Warnings, fmt.Sprintf("yt-dlp introuvable à %s, recherche dans le PATH", res.Path))
		return res, nil
	case err != nil:
		return res, fmt.Errorf("accès à %s impossible : %w", res.Path, err)
	case info.IsDir():
		return res, fmt.Errorf("le chemin configuré pour yt-dlp est un répertoire : %s", res.Path)
	}

	res.Found = true
	return res, nil
}

// Validate signale les réglages incohérents. Rien n'est bloquant : la config
// normalisée reste utilisable, les messages servent au diagnostic.
func (c *Config) Validate() []string {
	var warnings []string
	if !slices.Contains(validLogLevels, c.LogLevel) {
		warnings = append(warnings, fmt.Sprintf("log_level inconnu %q (attendu : debug, info, warn ou error)", c.LogLevel))
	}
	if info, err := os.Stat(c.OutputDir); err == nil && !info.IsDir() {
		warnings = append(warnings, fmt.Sprintf("output_dir n'est pas un dossier : %s", c.OutputDir))
	}
	if c.YtDlp.CookiesFile != "" {
		if _, err := os.Stat(c.YtDlp.CookiesFile); err != nil {
			warnings = append(warnings, fmt.Sprintf("cookies_file illisible : %s", c.YtDlp.CookiesFile))
		}
	}
	if c.RequestsPerMinute == 0 {
		warnings = append(warnings, "requests_per_minute = 0 : aucune limite de débit")
	}
	return warnings
}
