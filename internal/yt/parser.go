package yt

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/patrickprogramme/yt2xml/pkg/model"
)

const origSuffix = "-orig"

// ParseYTDLP transforme le JSON brut en struct Meta
func ParseYTDLP(raw []byte) (*model.Meta, error) {
	var y ytdlpOutput
	if err := json.Unmarshal(raw, &y); err != nil {
		return nil, fmt.Errorf("unmarshal ytdlp output: %w", err)
	}

	meta := &model.Meta{
		ID:         y.ID,
		Title:      y.Title,
		UploadDate: strings.TrimSpace(y.UploadDate),
		Duration:   int(math.Max(0, y.Duration)),
		WebpageURL: y.WebpageURL,
	}

	// chapters
	for _, c := range y.Chapters {
		start := c.Start
		if c.StartTime != nil { // StartTime est prioritaire: implémentation moderne
			start = *c.StartTime
		}
		meta.Chapters = append(meta.Chapters, model.MetaChapter{
			Start: start,
			Title: c.Title,
		})
	}

	// sous-titres manuels : on garde tout ce qui est au bon format
	meta.ManualSubs = selectTracks(y.Subtitles, model.SubSourceManual, func(string) bool { return true })

	// sous-titres automatiques : on garde uniquement les pistes originales "-orig"
	meta.AutoSubs = selectTracks(y.AutomaticCaptions, model.SubSourceAutomatic, func(lang string) bool {
		return strings.HasSuffix(lang, origSuffix)
	})

	return meta, nil
}

// selectTracks retient les pistes json3 des langues acceptées par keep.
// Les langues sont parcourues dans l'ordre alphabétique pour un résultat stable.
func selectTracks(byLang map[string][]subtitleItem, src model.SubSource, keep func(string) bool) []model.SubtitleTrack {
	langs := make([]string, 0, len(byLang))
	for lang := range byLang {
		if keep(lang) {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)

	var out []model.SubtitleTrack
	for _, lang := range langs {
		for _, it := range byLang[lang] {
			pf, err := model.ParseFormat(it.Ext)
			if err != nil || pf != model.FormatJSON3 {
				continue
			}
			out = append(out, model.SubtitleTrack{
				Lang:   lang,
				Format: pf,
				URL:    it.URL,
				Source: src,
			})
		}
	}
	return out
}
