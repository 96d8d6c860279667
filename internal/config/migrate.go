package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/patrickprogramme/yt2xml/internal/fsutil"
	"github.com/patrickprogramme/yt2xml/internal/logger"
	"gopkg.in/yaml.v3"
)

var log = logger.For("config")

// migrations[v] fait passer une config de la version v à v+1.
var migrations = []func(*Config){
	// 0 -> 1 : fichier sans version, rien à transformer
	0: func(*Config) {},
	// 1 -> 2 : apparition des réglages réseau, 0 signifiait "non défini"
	1: func(c *Config) {
		if c.RequestsPerMinute == 0 {
			c.RequestsPerMinute = Default().RequestsPerMinute
		}
		if len(c.PreferredLanguages) == 0 {
			c.PreferredLanguages = []string{"en"}
		}
	},
}

// upgradeConfigFile sauvegarde le fichier, applique les migrations puis réécrit la config.
// En cas d'échec d'écriture, la sauvegarde est restaurée.
func upgradeConfigFile(cfg *Config, from int) error {
	if cfg.configFilePath == "" {
		return errors.New("chemin du fichier de configuration inconnu : impossible de faire une sauvegarde")
	}

	backup, err := backupConfig(cfg.configFilePath)
	if err != nil {
		return err
	}

	if err := migrateConfig(cfg, from); err != nil {
		return err
	}
	cfg.normalizeConfig()

	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encodage YAML de la configuration migrée : %w", err)
	}

	if err := fsutil.WriteFileAtomic(cfg.configFilePath, b, 0o644); err != nil {
		werr := fmt.Errorf("écriture du fichier migré %s : %w", cfg.configFilePath, err)
		orig, rerr := os.ReadFile(backup)
		if rerr == nil {
			rerr = fsutil.WriteFileAtomic(cfg.configFilePath, orig, 0o644)
		}
		return errors.Join(werr, rerr)
	}

	log.Info("configuration mise à jour de la version %d à %d (sauvegarde : %s)", from, CurrentConfigVersion, backup)
	return nil
}

// backupConfig copie le fichier à côté de lui-même, suffixé par l'horodatage.
func backupConfig(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("lecture du fichier pour sauvegarde impossible : %w", err)
	}
	backup := path + ".bak." + time.Now().Format("20060102T150405")
	if err := fsutil.WriteFileAtomic(backup, data, 0o644); err != nil {
		return "", fmt.Errorf("écriture de la sauvegarde %s impossible : %w", backup, err)
	}
	return backup, nil
}

// migrateConfig applique les étapes successives de from jusqu'à CurrentConfigVersion.
func migrateConfig(cfg *Config, from int) error {
	if from < 0 || from > CurrentConfigVersion {
		return fmt.Errorf("version de configuration inconnue : %d", from)
	}
	for v := from; v < CurrentConfigVersion; v++ {
		if v >= len(migrations) {
			return fmt.Errorf("aucune migration depuis la version %d", v)
		}
		migrations[v](cfg)
	}
	cfg.ConfigVersion = CurrentConfigVersion
	return nil
}
