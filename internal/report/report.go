// Package report met en forme l'analyse de structure d'un transcript
// (écarts entre horodatages, chapitres détectés).
package report

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/patrickprogramme/yt2xml/internal/assets"
	"github.com/patrickprogramme/yt2xml/internal/chapters"
)

const separatorWidth = 70

var funcs = template.FuncMap{
	"rule": func(s string) string { return strings.Repeat(s, separatorWidth) },
	"join": func(ns []int) string {
		parts := make([]string, len(ns))
		for i, n := range ns {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ", ")
	},
}

// Load renvoie le template de rapport.
// Si dir est non vide et contient report.txt.tmpl, ce fichier remplace le template embarqué.
func Load(dir string) (*template.Template, error) {
	src := assets.TemplateByName["report"]
	name := path.Base(src)

	if dir != "" {
		p := filepath.Join(dir, name)
		if data, err := os.ReadFile(p); err == nil {
			t, err := template.New(name).Funcs(funcs).Parse(string(data))
			if err != nil {
				return nil, fmt.Errorf("template %s invalide : %w", p, err)
			}
			return t, nil
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("lecture du template %s : %w", p, err)
		}
	}

	t, err := template.New(name).Funcs(funcs).ParseFS(assets.Embedded, src)
	if err != nil {
		return nil, fmt.Errorf("template embarqué %s : %w", src, err)
	}
	return t, nil
}

// Render produit le rapport texte de a avec tpl.
func Render(tpl *template.Template, a chapters.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, a); err != nil {
		return nil, fmt.Errorf("rendu du rapport : %w", err)
	}
	return buf.Bytes(), nil
}

// File analyse le fichier path et renvoie son rapport.
func File(path, templateDir string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tpl, err := Load(templateDir)
	if err != nil {
		return nil, err
	}
	return Render(tpl, chapters.Analyze(string(data)))
}
