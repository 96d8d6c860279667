package captions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/yt2xml/pkg/model"
)

const sampleJSON3 = `{
  "wireMagic": "pb3",
  "events": [
    {"tStartMs": 0, "dDurationMs": 5000, "id": 1, "wpWinPosId": 1},
    {"tStartMs": 1200, "dDurationMs": 2000, "segs": [{"utf8": "Hello"}, {"utf8": " world", "tOffsetMs": 400}]},
    {"tStartMs": 3000, "segs": [{"utf8": "\n"}]},
    {"tStartMs": 4500, "segs": [{"utf8": "second\nline "}]},
    {"tStartMs": 61000, "segs": [{"utf8": "  later  "}]},
    {"segs": [{"utf8": "no start"}]}
  ]
}`

func TestEventsToLines(t *testing.T) {
	raw, err := ParseJSON3Bytes([]byte(sampleJSON3))
	require.NoError(t, err)

	got := EventsToLines(raw)
	assert.Equal(t, []model.TranscriptLine{
		{Timestamp: 1.2, Text: "Hello world"},
		{Timestamp: 4.5, Text: "second line"},
		{Timestamp: 61, Text: "later"},
		{Timestamp: 0, Text: "no start"},
	}, got)
}

func TestParseJSON3Bytes_Errors(t *testing.T) {
	_, err := ParseJSON3Bytes(nil)
	assert.Error(t, err)
	_, err = ParseJSON3Bytes([]byte("{not json"))
	assert.Error(t, err)
}

func TestAssignToChapters_NoChapters(t *testing.T) {
	lines := []model.TranscriptLine{{Timestamp: 0, Text: "a"}, {Timestamp: 99, Text: "b"}}
	got := AssignToChapters("My video", lines, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "My video", got[0].Title)
	assert.Equal(t, 0.0, got[0].Start)
	assert.True(t, got[0].End.IsUnbounded())
	assert.Equal(t, lines, got[0].Lines)
}

func TestAssignToChapters_Ranges(t *testing.T) {
	lines := []model.TranscriptLine{
		{Timestamp: 0, Text: "a"},
		{Timestamp: 19.9, Text: "b"},
		{Timestamp: 20, Text: "c"},
		{Timestamp: 500, Text: "d"},
	}
	declared := []model.MetaChapter{
		{Start: 0, Title: "Intro"},
		{Start: 20, Title: ""},
		{Start: 56, Title: "Outro"},
	}
	got := AssignToChapters("ignored", lines, declared)
	require.Len(t, got, 3)

	assert.Equal(t, "Intro", got[0].Title)
	assert.Equal(t, []string{"a", "b"}, texts(got[0].Lines))
	end, ok := got[0].End.Seconds()
	require.True(t, ok)
	assert.Equal(t, 20.0, end)

	assert.Equal(t, "Chapter 2", got[1].Title)
	assert.Equal(t, []string{"c"}, texts(got[1].Lines))

	assert.Equal(t, "Outro", got[2].Title)
	assert.True(t, got[2].End.IsUnbounded())
	assert.Equal(t, []string{"d"}, texts(got[2].Lines))
}

func texts(lines []model.TranscriptLine) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

func track(lang string, src model.SubSource) model.SubtitleTrack {
	return model.SubtitleTrack{Lang: lang, Format: model.FormatJSON3, URL: "https://example.com/" + lang, Source: src}
}

func TestSelectTrack_Priority(t *testing.T) {
	tests := []struct {
		name   string
		meta   model.Meta
		langs  []string
		want   string
		source model.SubSource
	}{
		{
			name: "manual en first",
			meta: model.Meta{
				ManualSubs: []model.SubtitleTrack{track("de", model.SubSourceManual), track("en", model.SubSourceManual)},
				AutoSubs:   []model.SubtitleTrack{track("en-orig", model.SubSourceAutomatic)},
			},
			langs: []string{"en"}, want: "en", source: model.SubSourceManual,
		},
		{
			name: "auto en-orig over manual prefix",
			meta: model.Meta{
				ManualSubs: []model.SubtitleTrack{track("en-GB", model.SubSourceManual)},
				AutoSubs:   []model.SubtitleTrack{track("en-orig", model.SubSourceAutomatic)},
			},
			langs: []string{"en"}, want: "en-orig", source: model.SubSourceAutomatic,
		},
		{
			name: "manual prefix",
			meta: model.Meta{
				ManualSubs: []model.SubtitleTrack{track("en-GB", model.SubSourceManual)},
				AutoSubs:   []model.SubtitleTrack{track("fr-orig", model.SubSourceAutomatic)},
			},
			langs: []string{"en"}, want: "en-GB", source: model.SubSourceManual,
		},
		{
			name: "any manual when no language matches",
			meta: model.Meta{
				ManualSubs: []model.SubtitleTrack{track("ja", model.SubSourceManual)},
				AutoSubs:   []model.SubtitleTrack{track("fr-orig", model.SubSourceAutomatic)},
			},
			langs: []string{"en"}, want: "ja", source: model.SubSourceManual,
		},
		{
			name: "any auto last",
			meta: model.Meta{
				AutoSubs: []model.SubtitleTrack{track("fr-orig", model.SubSourceAutomatic)},
			},
			langs: []string{"en"}, want: "fr-orig", source: model.SubSourceAutomatic,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SelectTrack(&tc.meta, tc.langs)
			require.True(t, ok)
			assert.Equal(t, tc.want, got.Lang)
			assert.Equal(t, tc.source, got.Source)
		})
	}
}

func TestSelectTrack_None(t *testing.T) {
	m := &model.Meta{ManualSubs: []model.SubtitleTrack{{Lang: "en", Format: model.FormatJSON3}}} // sans URL
	_, ok := SelectTrack(m, []string{"en"})
	assert.False(t, ok)

	_, ok = SelectTrack(nil, nil)
	assert.False(t, ok)
}

func TestDownloadFromMeta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON3))
	}))
	defer srv.Close()

	m := &model.Meta{
		ID:    "abc",
		Title: "Demo: video",
		ManualSubs: []model.SubtitleTrack{
			{Lang: "en", Format: model.FormatJSON3, URL: srv.URL + "/en.json3", Source: model.SubSourceManual},
		},
	}
	d, err := DownloadFromMeta(context.Background(), m, []string{"en"}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "en", d.Track.Lang)
	assert.Equal(t, "Demo- video (en).json", d.Filename())

	pretty, err := d.PrettyJSON()
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"events\"")

	doc, err := BuildDocument(m, "https://youtu.be/abc", d.Data)
	require.NoError(t, err)
	assert.Equal(t, "Demo: video", doc.Metadata.Title)
	assert.Equal(t, "https://youtu.be/abc", doc.Metadata.URL)
	require.Len(t, doc.Chapters, 1)
	assert.Equal(t, "Demo: video", doc.Chapters[0].Title)
	assert.Len(t, doc.Chapters[0].Lines, 4)
}

func TestDownloadFromMeta_NoTrack(t *testing.T) {
	_, err := DownloadFromMeta(context.Background(), &model.Meta{}, []string{"en"}, 0, 0)
	assert.True(t, errors.Is(err, ErrNoSubtitle))
}
