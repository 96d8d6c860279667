package model

import (
	"fmt"
	"strings"
)

// MetaChapter est un chapitre tel que déclaré par YouTube (début en secondes).
type MetaChapter struct {
	Start float64 `json:"start"`
	Title string  `json:"title"`
}

// SubtitleTrack décrit une piste de sous-titres associée à une vidéo.
type SubtitleTrack struct {
	Lang   string    `json:"lang"`
	Format Format    `json:"format,omitempty"`
	URL    string    `json:"url,omitempty"`
	Source SubSource `json:"source,omitempty"`
}

func (s SubtitleTrack) String() string {
	return fmt.Sprintf("SubtitleTrack(lang=%s, format=%s, source=%s)", s.Lang, s.Format, s.Source)
}

// Meta regroupe les métadonnées extraites d'une vidéo YouTube par yt-dlp.
type Meta struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	UploadDate string          `json:"upload_date,omitempty"` // brut, YYYYMMDD
	Duration   int             `json:"duration,omitempty"`    // secondes
	WebpageURL string          `json:"webpage_url,omitempty"`
	Chapters   []MetaChapter   `json:"chapters,omitempty"`
	AutoSubs   []SubtitleTrack `json:"subtitles,omitempty"`
	ManualSubs []SubtitleTrack `json:"manual_subtitles,omitempty"`
}

// VideoMetadata convertit les métadonnées yt-dlp vers le modèle du document.
// fallbackURL est utilisée quand yt-dlp ne renvoie pas de webpage_url.
func (m Meta) VideoMetadata(fallbackURL string) VideoMetadata {
	title := m.Title
	if title == "" {
		title = "Untitled"
	}
	url := m.WebpageURL
	if url == "" {
		url = fallbackURL
	}
	return VideoMetadata{
		Title:     title,
		Published: m.UploadDate,
		Duration:  m.Duration,
		URL:       url,
	}
}

func (m Meta) String() string {
	return fmt.Sprintf("Meta[ID=%s, Title=%q, Date=%s, Duration=%ds, Chapters=%d, Subtitles=%d]",
		m.ID, m.Title, m.UploadDate, m.Duration,
		len(m.Chapters), len(m.AutoSubs)+len(m.ManualSubs))
}

// Pretty retourne une fiche multi-lignes simple.
// Elle montre les langues présentes dans AutoSubs et ManualSubs
// en les listant telles qu'elles apparaissent dans les SubtitleTrack.
func (m Meta) Pretty() string {
	dateStr := "<unknown>"
	if m.UploadDate != "" {
		dateStr = m.UploadDate
	}

	langsFrom := func(tracks []SubtitleTrack) []string {
		out := make([]string, 0, len(tracks))
		for _, t := range tracks {
			if t.Lang != "" {
				out = append(out, t.Lang)
			}
		}
		return out
	}

	formatLangs := func(list []string) string {
		if len(list) == 0 {
			return "(none)"
		}
		return strings.Join(list, ", ")
	}

	return fmt.Sprintf(
		"Meta:\n"+
			"  ID         : %s\n"+
			"  Title      : %q\n"+
			"  Date       : %s\n"+
			"  Duration   : %ds\n"+
			"  Chapters   : %d\n"+
			"  AutoSubs   : %s\n"+
			"  ManualSubs : %s\n",
		m.ID,
		m.Title,
		dateStr,
		m.Duration,
		len(m.Chapters),
		formatLangs(langsFrom(m.AutoSubs)),
		formatLangs(langsFrom(m.ManualSubs)),
	)
}
