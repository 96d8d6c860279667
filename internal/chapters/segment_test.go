package chapters

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/yt2xml/pkg/model"
)

func line(ts float64, text string) model.TranscriptLine {
	return model.TranscriptLine{Timestamp: ts, Text: text}
}

func TestParse_SingleChapter(t *testing.T) {
	doc, err := Parse("Intro\n0:00\nHello")
	require.NoError(t, err)
	require.Len(t, doc.Chapters, 1)

	c := doc.Chapters[0]
	assert.Equal(t, "Intro", c.Title)
	assert.Equal(t, 0.0, c.Start)
	assert.True(t, c.End.IsUnbounded())
	assert.Equal(t, []model.TranscriptLine{line(0, "Hello")}, c.Lines)
	assert.True(t, doc.Metadata.IsZero())
}

func TestParse_TwoChapters(t *testing.T) {
	doc, err := Parse("Intro\n0:00\nA\n2:30\nB\nTwo\n5:00\nC")
	require.NoError(t, err)
	require.Len(t, doc.Chapters, 2)

	intro, two := doc.Chapters[0], doc.Chapters[1]
	assert.Equal(t, "Intro", intro.Title)
	assert.Equal(t, 0.0, intro.Start)
	end, ok := intro.End.Seconds()
	require.True(t, ok)
	assert.Equal(t, 300.0, end)
	assert.Equal(t, []model.TranscriptLine{line(0, "A"), line(150, "B")}, intro.Lines)

	assert.Equal(t, "Two", two.Title)
	assert.Equal(t, 300.0, two.Start)
	assert.True(t, two.End.IsUnbounded())
	assert.Equal(t, []model.TranscriptLine{line(300, "C")}, two.Lines)
}

func TestParse_OneLineGapNeverOpensChapter(t *testing.T) {
	doc, err := Parse("Intro\n0:00\nA\n2:30\nWrongGap\n7:30\nMore")
	require.NoError(t, err)
	require.Len(t, doc.Chapters, 1)
	assert.Equal(t, []model.TranscriptLine{
		line(0, "A"),
		line(150, "WrongGap"),
		line(450, "More"),
	}, doc.Chapters[0].Lines)
}

func TestParse_ThreeLineGapStaysInChapter(t *testing.T) {
	doc, err := Parse("Intro\n0:00\nA\nB\nC\n1:00\nD")
	require.NoError(t, err)
	require.Len(t, doc.Chapters, 1)
	assert.Equal(t, []model.TranscriptLine{line(0, "A B C"), line(60, "D")}, doc.Chapters[0].Lines)
}

func TestParse_ConsecutiveTimestamps(t *testing.T) {
	doc, err := Parse("Intro\n0:00\nA\n0:10\n0:20\nB\n0:30")
	require.NoError(t, err)
	require.Len(t, doc.Chapters, 1)
	assert.Equal(t, []model.TranscriptLine{
		line(0, "A"),
		line(10, ""),
		line(20, "B"),
		line(30, ""),
	}, doc.Chapters[0].Lines)
}

func TestParse_BlankLinesAndWhitespace(t *testing.T) {
	raw := "\n\n  Intro   part  \r\n\r\n 0:00 \n\tHello    world\n\n"
	doc, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, doc.Chapters, 1)
	assert.Equal(t, "Intro part", doc.Chapters[0].Title)
	assert.Equal(t, []model.TranscriptLine{line(0, "Hello world")}, doc.Chapters[0].Lines)
}

func TestParse_HourTimestamps(t *testing.T) {
	doc, err := Parse("Intro\n0:00\nA\n59:59\nB\nLate\n1:15:30\nC")
	require.NoError(t, err)
	require.Len(t, doc.Chapters, 2)
	assert.Equal(t, 4530.0, doc.Chapters[1].Start)
	assert.Equal(t, 3599.0, doc.Chapters[0].Lines[1].Timestamp)
}

func TestParse_NonIncreasingChapters(t *testing.T) {
	_, err := Parse("Intro\n5:00\nA\n6:00\nB\nBack\n5:00\nC")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidFormat))
	assert.Contains(t, err.Error(), "strictly increasing")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind error
	}{
		{"empty", "", model.ErrEmptyInput},
		{"whitespace only", "  \n\t\n   ", model.ErrEmptyInput},
		{"too short", "Intro\n0:00", model.ErrInvalidFormat},
		{"starts with timestamp", "0:00\nX\n1:00\nY", model.ErrInvalidFormat},
		{"second line not timestamp", "Intro\nHello\n0:00", model.ErrInvalidFormat},
		{"third line timestamp", "Intro\n0:00\n0:05\nHello", model.ErrInvalidFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse(tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "got %v", err)
			assert.Empty(t, doc.Chapters)
		})
	}
}

func TestValidate_OrderFirstFailureWins(t *testing.T) {
	// deux lignes dont la première est un horodatage : la règle de longueur passe avant
	err := Validate([]string{"0:00", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least")
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := "  a   b \n\n\tc\r\n d  "
	once := Normalize(raw)
	assert.Equal(t, []string{"a b", "c", "d"}, once)
	assert.Equal(t, once, Normalize(strings.Join(once, "\n")))
}

func TestParse_CoverageAndMonotonic(t *testing.T) {
	raw := strings.Join([]string{
		"Welcome", "0:00", "hi", "0:04", "there",
		"Setup", "1:00", "install", "1:30", "configure", "1:45", "run",
		"Wrap up", "10:00", "bye",
	}, "\n")
	doc, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, doc.Chapters, 3)

	// chaque horodatage de l'entrée apparaît exactement une fois
	ts := TimestampIndices(Normalize(raw))
	assert.Equal(t, len(ts), doc.LineCount())

	for i := 1; i < len(doc.Chapters); i++ {
		prev, cur := doc.Chapters[i-1], doc.Chapters[i]
		assert.Less(t, prev.Start, cur.Start)
		end, ok := prev.End.Seconds()
		require.True(t, ok)
		assert.Equal(t, cur.Start, end)
	}
	assert.True(t, doc.Chapters[2].End.IsUnbounded())

	// les lignes restent dans leur chapitre
	for _, c := range doc.Chapters {
		for _, l := range c.Lines {
			assert.True(t, c.Contains(l.Timestamp), "%q at %v outside %q", l.Text, l.Timestamp, c.Title)
		}
	}
}
