package xmlout

import (
	"encoding/xml"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/yt2xml/internal/chapters"
	"github.com/patrickprogramme/yt2xml/pkg/model"
)

func TestRender_FileDocument(t *testing.T) {
	doc, err := chapters.Parse("Intro\n0:00\nA\n2:30\nB\nTwo\n5:00\nC")
	require.NoError(t, err)

	out, err := Render(doc)
	require.NoError(t, err)

	want := `<?xml version='1.0' encoding='utf-8'?>
<transcript video_title="" video_published="" video_duration="" video_url="">
  <chapters>
    <chapter title="Intro" start_time="0:00">
      0:00
      A
      2:30
      B
    </chapter>
    <chapter title="Two" start_time="5:00">
      5:00
      C
    </chapter>
  </chapters>
</transcript>
`
	assert.Equal(t, want, string(out))
}

func TestRender_Metadata(t *testing.T) {
	doc := model.TranscriptDocument{
		Metadata: model.VideoMetadata{
			Title:     "How Hooks Work",
			Published: "20250717",
			Duration:  163,
			URL:       "https://youtube.com/watch?v=test123",
		},
		Chapters: []model.Chapter{
			{Title: "Intro", Start: 0, End: model.Bounded(20), Lines: []model.TranscriptLine{{Timestamp: 0, Text: "Hooks are great"}}},
			{Title: "Empty", Start: 20, End: model.Unbounded()},
		},
	}
	out, err := Render(doc)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `<transcript video_title="How Hooks Work" video_published="2025-07-17" video_duration="2m 43s" video_url="https://youtube.com/watch?v=test123">`)
	assert.Contains(t, s, `    <chapter title="Empty" start_time="0:20" />`+"\n")
}

func TestRender_NoChapters(t *testing.T) {
	out, err := Render(model.TranscriptDocument{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "  <chapters />\n")
}

func TestRender_Escaping(t *testing.T) {
	doc := model.TranscriptDocument{
		Metadata: model.VideoMetadata{Title: `Tom & "Jerry" <live>`},
		Chapters: []model.Chapter{{
			Title: `Q&A "part" 1`,
			End:   model.Unbounded(),
			Lines: []model.TranscriptLine{{Timestamp: 0, Text: `if a < b && b > c "ok"`}},
		}},
	}
	out, err := Render(doc)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `video_title="Tom &amp; &quot;Jerry&quot; &lt;live&gt;"`)
	assert.Contains(t, s, `title="Q&amp;A &quot;part&quot; 1"`)
	assert.Contains(t, s, `      if a &lt; b &amp;&amp; b &gt; c "ok"`+"\n")

	// le résultat reste un XML bien formé
	var parsed struct {
		XMLName xml.Name `xml:"transcript"`
		Title   string   `xml:"video_title,attr"`
		Chaps   []struct {
			Title string `xml:"title,attr"`
		} `xml:"chapters>chapter"`
	}
	require.NoError(t, xml.Unmarshal(out, &parsed))
	assert.Equal(t, `Tom & "Jerry" <live>`, parsed.Title)
	require.Len(t, parsed.Chaps, 1)
	assert.Equal(t, `Q&A "part" 1`, parsed.Chaps[0].Title)
}

func TestRender_EmptyTextLine(t *testing.T) {
	doc, err := chapters.Parse("Intro\n0:00\nA\n0:10\n0:20\nB")
	require.NoError(t, err)
	out, err := Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "      0:10\n      \n      0:20\n      B\n")
}

func TestRender_InvalidTimestamp(t *testing.T) {
	doc := model.TranscriptDocument{Chapters: []model.Chapter{{Title: "bad", Start: -1, End: model.Unbounded()}}}
	_, err := Render(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidArgument))
}
