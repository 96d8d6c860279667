package updater

import "time"

// Asset est un exécutable publié avec la release.
type Asset struct {
	Name        string
	URL         string
	ContentType string
	Size        int
}

// Release résume la dernière release de yt-dlp.
// Assets est indexé par système (valeurs de runtime.GOOS).
type Release struct {
	Tag         string
	Name        string
	PublishedAt time.Time
	PageURL     string
	Assets      map[string]Asset
}

// assetNames : nom de l'exécutable publié par yt-dlp pour chaque système
var assetNames = map[string]string{
	"windows": "yt-dlp.exe",
	"linux":   "yt-dlp",
	"darwin":  "yt-dlp_macos",
}

// AssetFor renvoie l'exécutable du système demandé.
func (r *Release) AssetFor(goos string) (Asset, bool) {
	if r == nil {
		return Asset{}, false
	}
	a, ok := r.Assets[goos]
	return a, ok && a.URL != ""
}
