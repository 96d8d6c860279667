package chapters

import (
	"strings"

	"github.com/patrickprogramme/yt2xml/internal/timecode"
	"github.com/patrickprogramme/yt2xml/pkg/model"
)

// nombre exact de lignes entre deux horodatages qui signale un nouveau chapitre
const chapterGap = 2

// boundary marque le début d'un chapitre dans les lignes normalisées.
type boundary struct {
	titleIndex int // ligne du titre
	tsIndex    int // ligne de l'horodatage qui ouvre le chapitre
	title      string
	start      float64
}

// Parse transforme un transcript texte en document chaptré.
// Les métadonnées du document restent vides.
func Parse(raw string) (model.TranscriptDocument, error) {
	var doc model.TranscriptDocument

	lines := Normalize(raw)
	if err := Validate(lines); err != nil {
		return doc, err
	}

	bounds, err := findBoundaries(lines, TimestampIndices(lines))
	if err != nil {
		return doc, err
	}

	chapters, err := buildChapters(lines, bounds)
	if err != nil {
		return doc, err
	}
	doc.Chapters = chapters
	return doc, nil
}

// findBoundaries parcourt les horodatages une seule fois : le premier
// chapitre s'ouvre sur la ligne 0, les suivants sur chaque écart de
// exactement deux lignes entre horodatages consécutifs.
func findBoundaries(lines []string, ts []int) ([]boundary, error) {
	if len(ts) == 0 {
		return nil, model.InvalidFormat("no timestamp found", "")
	}

	first, err := timecode.Parse(lines[ts[0]])
	if err != nil {
		return nil, err
	}
	bounds := []boundary{{titleIndex: 0, tsIndex: ts[0], title: lines[0], start: first}}

	for i := 0; i+1 < len(ts); i++ {
		cur, next := ts[i], ts[i+1]
		if next-cur-1 != chapterGap {
			continue
		}
		start, err := timecode.Parse(lines[next])
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, boundary{
			titleIndex: next - 1,
			tsIndex:    next,
			title:      lines[next-1],
			start:      start,
		})
	}
	return bounds, nil
}

// buildChapters fixe les bornes de fin puis répartit les lignes de chaque fenêtre.
func buildChapters(lines []string, bounds []boundary) ([]model.Chapter, error) {
	out := make([]model.Chapter, 0, len(bounds))
	for i, b := range bounds {
		end := model.Unbounded()
		windowEnd := len(lines)
		if i+1 < len(bounds) {
			next := bounds[i+1]
			if next.start <= b.start {
				return nil, model.InvalidFormat(
					"chapter timestamps must be strictly increasing",
					lines[next.tsIndex],
				)
			}
			end = model.Bounded(next.start)
			windowEnd = next.titleIndex
		}

		entries, err := pairLines(lines[b.tsIndex:windowEnd])
		if err != nil {
			return nil, err
		}
		out = append(out, model.Chapter{
			Title: b.title,
			Start: b.start,
			End:   end,
			Lines: entries,
		})
	}
	return out, nil
}

// pairLines associe chaque horodatage à la ligne de texte qui le suit.
// Deux horodatages consécutifs ou un horodatage final donnent un texte vide.
// Une ligne de texte sans horodatage propre complète le texte précédent.
func pairLines(window []string) ([]model.TranscriptLine, error) {
	var out []model.TranscriptLine
	for i := 0; i < len(window); {
		line := window[i]
		if !timecode.IsTimestamp(line) {
			if n := len(out); n > 0 {
				out[n-1].Text = joinText(out[n-1].Text, line)
			}
			i++
			continue
		}

		ts, err := timecode.Parse(line)
		if err != nil {
			return nil, err
		}
		if i+1 < len(window) && !timecode.IsTimestamp(window[i+1]) {
			out = append(out, model.TranscriptLine{Timestamp: ts, Text: window[i+1]})
			i += 2
			continue
		}
		out = append(out, model.TranscriptLine{Timestamp: ts})
		i++
	}
	return out, nil
}

func joinText(a, b string) string {
	if a == "" {
		return b
	}
	return strings.Join([]string{a, b}, " ")
}
