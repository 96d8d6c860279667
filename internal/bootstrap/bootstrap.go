// Package bootstrap dépose sur disque les ressources embarquées (config par
// défaut, templates de rapport) sans jamais écraser le travail de l'utilisateur.
package bootstrap

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/patrickprogramme/yt2xml/internal/fsutil"
	"github.com/patrickprogramme/yt2xml/internal/logger"
)

var log = logger.For("bootstrap")

// Statuts retournés par ExportDefaults.
const (
	StatusWritten     = "written"
	StatusUnchanged   = "unchanged"
	StatusSkipped     = "skipped (different)"
	StatusOverwritten = "overwritten"
)

// ExportDefaults copie récursivement tous les fichiers sous srcPrefix (dans fsys)
// vers destDir en préservant la hiérarchie relative.
// Avec force, les fichiers différents sont sauvegardés (.bak.<date>) puis écrasés.
//
// Retourne une map[cheminEmbarqué]statut.
func ExportDefaults(fsys fs.FS, srcPrefix, destDir string, force bool) (map[string]string, error) {
	status := make(map[string]string)

	err := fs.WalkDir(fsys, srcPrefix, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(srcPrefix, p)
		if err != nil {
			return err
		}
		destPath := filepath.Join(destDir, rel)

		if d.IsDir() {
			if rel == "." {
				return os.MkdirAll(destDir, 0o755)
			}
			return os.MkdirAll(destPath, 0o755)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			status[p] = "error: read embedded failed"
			return err
		}

		existing, err := os.ReadFile(destPath)
		switch {
		case err != nil && !os.IsNotExist(err):
			status[p] = "error: stat failed"
			return err
		case err != nil:
			// absent -> écriture simple
		case bytes.Equal(existing, data):
			status[p] = StatusUnchanged
			return nil
		case !force:
			status[p] = StatusSkipped
			return nil
		default:
			backup := destPath + ".bak." + time.Now().Format("20060102T150405")
			if err := fsutil.WriteFileAtomic(backup, existing, 0o644); err != nil {
				status[p] = "error: backup failed"
				return fmt.Errorf("sauvegarde de %s impossible : %w", destPath, err)
			}
			if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
				status[p] = "error: overwrite failed"
				return err
			}
			status[p] = StatusOverwritten
			log.Info("%s écrasé (sauvegarde : %s)", destPath, backup)
			return nil
		}

		if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
			status[p] = "error: write failed"
			return err
		}
		status[p] = StatusWritten
		return nil
	})

	return status, err
}

// SortedKeys renvoie les chemins d'un résultat d'ExportDefaults dans l'ordre alphabétique.
func SortedKeys(status map[string]string) []string {
	keys := make([]string, 0, len(status))
	for k := range status {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EnsureTemplatesPresent s'assure que les templates listés existent dans tplDir.
// Les fichiers manquants sont copiés depuis fsys, les existants ne sont jamais remplacés.
// srcFiles contient des chemins DANS fsys (ex: "templates/report.txt.tmpl").
func EnsureTemplatesPresent(tplDir string, fsys fs.FS, srcFiles []string) error {
	parent := filepath.Dir(tplDir)
	if st, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("le répertoire parent n'existe pas : %s", parent)
		}
		return fmt.Errorf("échec lors du test du répertoire parent %s : %w", parent, err)
	} else if !st.IsDir() {
		return fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		return fmt.Errorf("échec de création du répertoire de templates %s : %w", tplDir, err)
	}

	for _, src := range srcFiles {
		dest := filepath.Join(tplDir, path.Base(src))
		if _, err := os.Stat(dest); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("échec lors du test du fichier %s : %w", dest, err)
		}

		data, err := fs.ReadFile(fsys, src)
		if err != nil {
			return fmt.Errorf("fichier embarqué introuvable %s : %w", src, err)
		}
		if err := fsutil.WriteFileAtomic(dest, data, 0o644); err != nil {
			return fmt.Errorf("échec d'écriture du template %s : %w", dest, err)
		}
		log.Debug("template copié : %s", dest)
	}
	return nil
}
