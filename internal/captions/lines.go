package captions

import (
	"fmt"

	"github.com/patrickprogramme/yt2xml/internal/timecode"
	"github.com/patrickprogramme/yt2xml/pkg/model"
)

// EventsToLines convertit les events json3 en lignes horodatées.
// Les events sans segs (fenêtres, styles) et les textes vides sont ignorés.
func EventsToLines(raw rawJSON3) []model.TranscriptLine {
	out := make([]model.TranscriptLine, 0, len(raw.Events))
	for _, ev := range raw.Events {
		if len(ev.Segs) == 0 {
			continue
		}
		text := ev.text()
		if text == "" {
			continue
		}
		out = append(out, model.TranscriptLine{
			Timestamp: timecode.FromMilliseconds(ev.startMs()),
			Text:      text,
		})
	}
	return out
}

// AssignToChapters répartit les lignes dans les chapitres déclarés par la vidéo.
// Sans chapitre, un chapitre unique porte le titre de la vidéo.
// Une ligne appartient au chapitre [start, end) qui contient son horodatage.
func AssignToChapters(videoTitle string, lines []model.TranscriptLine, declared []model.MetaChapter) []model.Chapter {
	if len(declared) == 0 {
		return []model.Chapter{{
			Title: videoTitle,
			Start: 0,
			End:   model.Unbounded(),
			Lines: lines,
		}}
	}

	out := make([]model.Chapter, 0, len(declared))
	for i, d := range declared {
		c := model.Chapter{
			Title: d.Title,
			Start: d.Start,
			End:   model.Unbounded(),
		}
		if c.Title == "" {
			c.Title = fmt.Sprintf("Chapter %d", i+1)
		}
		if i+1 < len(declared) {
			c.End = model.Bounded(declared[i+1].Start)
		}
		for _, l := range lines {
			if c.Contains(l.Timestamp) {
				c.Lines = append(c.Lines, l)
			}
		}
		out = append(out, c)
	}
	return out
}

// BuildDocument assemble le document final à partir des métadonnées yt-dlp
// et du json3 téléchargé.
func BuildDocument(meta *model.Meta, sourceURL string, json3 []byte) (model.TranscriptDocument, error) {
	var doc model.TranscriptDocument
	if meta == nil {
		return doc, fmt.Errorf("BuildDocument: meta est nil")
	}

	raw, err := ParseJSON3Bytes(json3)
	if err != nil {
		return doc, fmt.Errorf("parse json3: %w", err)
	}

	doc.Metadata = meta.VideoMetadata(sourceURL)
	doc.Chapters = AssignToChapters(doc.Metadata.Title, EventsToLines(raw), meta.Chapters)
	return doc, nil
}
