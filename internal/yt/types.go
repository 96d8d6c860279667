package yt

import (
	"encoding/json"
)

type ytdlpChapter struct {
	StartTime *float64 `json:"start_time"` // champ moderne, à préférer
	Start     float64  `json:"start"`      // fallback
	Title     string   `json:"title"`
}

type subtitleItem struct {
	Ext string `json:"ext"`
	URL string `json:"url"`
}

// ytdlpOutput représente la sortie JSON brute retournée par yt-dlp pour une vidéo.
//
// Subtitles et AutomaticCaptions sont des maps où :
//   - la clé (string) correspond au code langue de la piste (ex. "fr", "en", "en-orig").
//   - la valeur ([]subtitleItem) liste toutes les pistes disponibles pour cette langue,
//     chaque élément contenant au minimum l'extension (Ext) et l'URL de téléchargement.
type ytdlpOutput struct {
	ID                string                    `json:"id"`
	Title             string                    `json:"title"`
	UploadDate        string                    `json:"upload_date"`
	Duration          float64                   `json:"duration"`
	WebpageURL        string                    `json:"webpage_url"`
	Chapters          []ytdlpChapter            `json:"chapters"`
	Subtitles         map[string][]subtitleItem `json:"subtitles"`
	AutomaticCaptions map[string][]subtitleItem `json:"automatic_captions"`
}

// ExtractedRaw contient le JSON brut et les lignes d'avertissement de yt-dlp.
type ExtractedRaw struct {
	JSON     []byte
	Warnings []string
}

// PrettyJSON retourne un json indenté
func (r *ExtractedRaw) PrettyJSON() ([]byte, error) {
	var obj any
	if err := json.Unmarshal(r.JSON, &obj); err != nil {
		return nil, err
	}
	return json.MarshalIndent(obj, "", "  ")
}

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin) + options.
type YtDlp struct {
	Name    string
	Path    string // chemin vers l'exe
	Options Options
}

// Executable retourne le chemin à lancer : Path s'il est renseigné, sinon Name.
func (y YtDlp) Executable() string {
	if y.Path != "" {
		return y.Path
	}
	return y.Name
}
