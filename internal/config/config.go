package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/patrickprogramme/yt2xml/internal/assets"
	"github.com/patrickprogramme/yt2xml/internal/bootstrap"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 2

// DefaultFileName est le nom du fichier de configuration à côté de l'exécutable.
const DefaultFileName = "yt2xml.yaml"

// Variables d'environnement prioritaires sur le fichier.
const (
	EnvOutputDir = "YT2XML_OUTPUT_DIR"
	EnvYtDlpPath = "YT2XML_YTDLP_PATH"
	EnvLogFile   = "YT2XML_LOG_FILE"
	EnvLogLevel  = "YT2XML_LOG_LEVEL"
)

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`
	LogFile   string `yaml:"log_file"`
	LogLevel  string `yaml:"log_level"`

	// Sortie
	CopyToClipboard bool `yaml:"copy_to_clipboard"`
	Overwrite       bool `yaml:"overwrite"`

	// Sous-titres
	PreferredLanguages []string `yaml:"preferred_languages"`
	SaveRawSubs        bool     `yaml:"save_raw_subs"`
	SaveRawJSON        bool     `yaml:"save_raw_json"`

	// Réseau
	RequestsPerMinute   int   `yaml:"requests_per_minute"`
	FetchTimeoutSeconds int   `yaml:"fetch_timeout_seconds"`
	MaxTranscriptBytes  int64 `yaml:"max_transcript_bytes"`

	// yt-dlp
	YtDlp struct {
		Name            string `yaml:"name"`
		Path            string `yaml:"path"`
		CookiesFile     string `yaml:"cookies_file"`
		ShowWarnings    bool   `yaml:"show_warnings"`
		AutoUpdateCheck bool   `yaml:"auto_update_check"`

		// ResolvedPath contient le chemin effectif vers l'exécutable
		ResolvedPath string `yaml:"-"`
	} `yaml:"yt_dlp"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Default retourne la configuration par défaut (fallback si l'asset embarqué est manquant)
func Default() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "transcript_files"
	c.LogFile = "yt2xml.log"
	c.LogLevel = "info"

	// Sortie
	c.CopyToClipboard = false
	c.Overwrite = true

	// Sous-titres
	c.PreferredLanguages = []string{"en"}
	c.SaveRawSubs = false
	c.SaveRawJSON = false

	// Réseau
	c.RequestsPerMinute = 20
	c.FetchTimeoutSeconds = 15
	c.MaxTranscriptBytes = 10_000_000

	// yt-dlp
	c.YtDlp.Name = "yt-dlp"
	c.YtDlp.Path = ""
	c.YtDlp.ShowWarnings = false
	c.YtDlp.AutoUpdateCheck = false

	c.ConfigVersion = CurrentConfigVersion

	c.normalizeConfig()
	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets.
// Les variables d'environnement sont appliquées après le fichier.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	// si le fichier n'existe pas -> on dépose l'exemple embarqué
	if _, err := bootstrap.EnsureConfigPresent(path, assets.Embedded, assets.DefaultConfigAsset); err != nil {
		return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	// Un fichier sans config_version est considéré comme version 0.
	cfg.ConfigVersion = 0
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.applyEnv()
	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := upgradeConfigFile(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
	}

	return cfg, nil
}

// Path retourne le chemin du fichier chargé.
func (c *Config) Path() string {
	return c.configFilePath
}

// applyEnv applique les variables d'environnement (y compris celles du .env).
func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		c.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvYtDlpPath)); v != "" {
		c.YtDlp.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "transcript_files"
	}
	c.OutputDir = filepath.Clean(c.OutputDir)
	if c.LogFile = strings.TrimSpace(c.LogFile); c.LogFile != "" {
		c.LogFile = filepath.Clean(c.LogFile)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	langs := c.PreferredLanguages[:0]
	for _, l := range c.PreferredLanguages {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	c.PreferredLanguages = langs
	if len(c.PreferredLanguages) == 0 {
		c.PreferredLanguages = []string{"en"}
	}

	if c.RequestsPerMinute < 0 {
		c.RequestsPerMinute = 0
	}
	if c.FetchTimeoutSeconds <= 0 {
		c.FetchTimeoutSeconds = 15
	}
	if c.MaxTranscriptBytes <= 0 {
		c.MaxTranscriptBytes = 10_000_000
	}

	// centraliser la résolution/normalisation de yt-dlp
	c.ResolveYtDlpPath()
}

// ResolveYtDlpPath normalise le nom et résout le chemin complet vers l'exécutable.
// Appeler après avoir modifié cfg.YtDlp.Name ou cfg.YtDlp.Path.
func (c *Config) ResolveYtDlpPath() {
	if c == nil {
		return
	}

	c.YtDlp.Name = strings.TrimSpace(c.YtDlp.Name)
	if c.YtDlp.Name == "" {
		c.YtDlp.Name = "yt-dlp"
	}

	// ajoute .exe si nécessaire
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.YtDlp.Name), ".exe") {
		c.YtDlp.Name = c.YtDlp.Name + ".exe"
	}

	// si cfg.Path est vide -> "./<exe>", avec recherche dans le PATH en secours
	exeName := c.YtDlp.Name
	cfgPath := strings.TrimSpace(c.YtDlp.Path)
	if cfgPath == "" {
		c.YtDlp.ResolvedPath = "./" + exeName
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.YtDlp.ResolvedPath = cleanPath
	} else {
		// sinon on considère cfgPath comme un répertoire et on y joint l'exe
		c.YtDlp.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}
