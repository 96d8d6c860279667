package assets

import "embed"

//go:embed yt2xml.example.yaml
//go:embed templates/*tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "yt2xml.example.yaml"

// TemplatesDir est la racine des templates dans Embedded.
const TemplatesDir = "templates"

// DefaultTemplatePaths : liste ordonnée des templates "par défaut" embarqués.
var DefaultTemplatePaths = []string{
	"templates/report.txt.tmpl",
}

// TemplateByName donne un accès par clé (map).
var TemplateByName = map[string]string{
	"report": "templates/report.txt.tmpl",
}
