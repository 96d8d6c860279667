package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/patrickprogramme/yt2xml/internal/fsutil"
)

// EnsureConfigPresent dépose le fichier embarqué assetPath à dstPath s'il n'existe pas.
// Un fichier existant n'est jamais remplacé. Retourne true si le fichier a été créé.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) (bool, error) {
	switch info, err := os.Stat(dstPath); {
	case err == nil && info.IsDir():
		return false, fmt.Errorf("%s est un dossier, pas un fichier de configuration", dstPath)
	case err == nil:
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("accès à %s impossible : %w", dstPath, err)
	}

	data, err := fs.ReadFile(fsys, assetPath)
	if err != nil {
		return false, fmt.Errorf("lecture asset embarqué %s : %w", assetPath, err)
	}

	// MkdirAll échoue si un élément du chemin est un fichier
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return false, fmt.Errorf("création du dossier de %s : %w", dstPath, err)
	}
	if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
		return false, fmt.Errorf("échec écriture config %s : %w", dstPath, err)
	}
	log.Info("configuration par défaut créée : %s", dstPath)
	return true, nil
}
