package captions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickprogramme/yt2xml/internal/fetch"
	"github.com/patrickprogramme/yt2xml/internal/fsutil"
	"github.com/patrickprogramme/yt2xml/pkg/model"
)

var ErrNoSubtitle = errors.New("no subtitle track available")

const origSuffix = "-orig"

// Download contient la piste choisie + contexte utile (titre) + payload.
type Download struct {
	Title string
	Track model.SubtitleTrack
	Data  []byte // nil tant que non téléchargé
}

// SelectTrack choisit la piste json3 à télécharger. Pour chaque langue
// préférée : manuelle exacte, automatique "<lang>-orig", puis manuelle et
// automatique par préfixe. À défaut, n'importe quelle piste manuelle puis
// automatique.
func SelectTrack(m *model.Meta, langs []string) (model.SubtitleTrack, bool) {
	if m == nil {
		return model.SubtitleTrack{}, false
	}
	manual := usable(m.ManualSubs)
	auto := usable(m.AutoSubs)

	find := func(tracks []model.SubtitleTrack, match func(string) bool) (model.SubtitleTrack, bool) {
		for _, t := range tracks {
			if match(t.Lang) {
				return t, true
			}
		}
		return model.SubtitleTrack{}, false
	}

	for _, lang := range langs {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			continue
		}
		if t, ok := find(manual, func(l string) bool { return l == lang }); ok {
			return t, true
		}
		if t, ok := find(auto, func(l string) bool { return l == lang+origSuffix }); ok {
			return t, true
		}
		if t, ok := find(manual, func(l string) bool { return strings.HasPrefix(l, lang) }); ok {
			return t, true
		}
		if t, ok := find(auto, func(l string) bool { return strings.HasPrefix(l, lang) }); ok {
			return t, true
		}
	}

	if len(manual) > 0 {
		return manual[0], true
	}
	if len(auto) > 0 {
		return auto[0], true
	}
	return model.SubtitleTrack{}, false
}

// usable garde les pistes json3 qui ont une URL.
func usable(tracks []model.SubtitleTrack) []model.SubtitleTrack {
	out := make([]model.SubtitleTrack, 0, len(tracks))
	for _, t := range tracks {
		if t.URL == "" || t.Format != model.FormatJSON3 {
			continue
		}
		out = append(out, t)
	}
	return out
}

// DownloadFromMeta télécharge la piste choisie par SelectTrack.
// Retourne ErrNoSubtitle si aucune piste n'est utilisable.
func DownloadFromMeta(ctx context.Context, m *model.Meta, langs []string, timeout time.Duration, maxBytes int64) (Download, error) {
	track, ok := SelectTrack(m, langs)
	if !ok {
		return Download{}, ErrNoSubtitle
	}

	data, err := fetch.Bytes(ctx, track.URL, fetch.Limits{Timeout: timeout, MaxBytes: maxBytes})
	if err != nil {
		return Download{}, fmt.Errorf("download subtitle: %w", err)
	}
	return Download{Title: titleOrID(m), Track: track, Data: data}, nil
}

// titleOrID retourne le titre, ou sinon l'ID de la vidéo
func titleOrID(m *model.Meta) string {
	if s := m.Title; s != "" {
		return s
	}
	return m.ID
}

// Filename compose le nom de fichier de la piste brute. Exemple :
// "The simplest tech stack (en).json"
func (d Download) Filename() string {
	base := fsutil.SanitizeFilename(strings.TrimSpace(d.Title))

	lang := strings.TrimSpace(d.Track.Lang)
	if lang == "" {
		lang = "und"
	}
	return filepath.Base(fmt.Sprintf("%s (%s).json", base, lang))
}

// PrettyJSON retourne une version indentée du JSON contenu dans Data.
func (d Download) PrettyJSON() ([]byte, error) {
	if len(d.Data) == 0 {
		return nil, fmt.Errorf("no data to pretty-print")
	}
	var v any
	if err := json.Unmarshal(d.Data, &v); err != nil {
		return nil, fmt.Errorf("pretty json: decode error: %w", err)
	}
	return json.MarshalIndent(v, "", "  ")
}

func (d Download) String() string {
	urlPreview := d.Track.URL
	if urlPreview == "" {
		urlPreview = "<no url>"
	} else if len(urlPreview) > 80 {
		urlPreview = urlPreview[:77] + "..."
	}
	return fmt.Sprintf("Download{Title:%q, Lang:%q, Source:%q, URL:%q, DataLen:%d}",
		d.Title, d.Track.Lang, string(d.Track.Source), urlPreview, len(d.Data))
}
