// Package xmlout produit le document XML final d'un transcript chaptré.
package xmlout

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/patrickprogramme/yt2xml/internal/timecode"
	"github.com/patrickprogramme/yt2xml/pkg/model"
)

const (
	header        = "<?xml version='1.0' encoding='utf-8'?>\n"
	chapterIndent = "    "
	lineIndent    = "      "
)

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#09;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// Render sérialise le document. Les métadonnées absentes donnent des
// attributs vides.
func Render(doc model.TranscriptDocument) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(header)

	md := doc.Metadata
	fmt.Fprintf(&b, `<transcript video_title="%s" video_published="%s" video_duration="%s" video_url="%s">`+"\n",
		attrEscaper.Replace(md.Title),
		attrEscaper.Replace(timecode.FormatPublished(md.Published)),
		attrEscaper.Replace(timecode.FormatDuration(md.Duration)),
		attrEscaper.Replace(md.URL),
	)

	if len(doc.Chapters) == 0 {
		b.WriteString("  <chapters />\n")
	} else {
		b.WriteString("  <chapters>\n")
		for _, c := range doc.Chapters {
			if err := writeChapter(&b, c); err != nil {
				return nil, err
			}
		}
		b.WriteString("  </chapters>\n")
	}

	b.WriteString("</transcript>\n")
	return b.Bytes(), nil
}

func writeChapter(b *bytes.Buffer, c model.Chapter) error {
	start, err := timecode.Format(c.Start)
	if err != nil {
		return fmt.Errorf("chapter %q: %w", c.Title, err)
	}
	open := fmt.Sprintf(`%s<chapter title="%s" start_time="%s"`, chapterIndent, attrEscaper.Replace(c.Title), start)

	if len(c.Lines) == 0 {
		b.WriteString(open + " />\n")
		return nil
	}

	b.WriteString(open + ">\n")
	for _, l := range c.Lines {
		ts, err := timecode.Format(l.Timestamp)
		if err != nil {
			return fmt.Errorf("chapter %q: %w", c.Title, err)
		}
		b.WriteString(lineIndent + ts + "\n")
		b.WriteString(lineIndent + textEscaper.Replace(l.Text) + "\n")
	}
	b.WriteString(chapterIndent + "</chapter>\n")
	return nil
}
