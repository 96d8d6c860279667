package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndTime(t *testing.T) {
	b := Bounded(150)
	s, ok := b.Seconds()
	assert.True(t, ok)
	assert.Equal(t, 150.0, s)
	assert.False(t, b.IsUnbounded())
	assert.True(t, b.After(149.9))
	assert.False(t, b.After(150))

	u := Unbounded()
	assert.True(t, u.IsUnbounded())
	assert.True(t, u.After(1e12))
	assert.Equal(t, "∞", u.String())
}

func TestChapterContains(t *testing.T) {
	c := Chapter{Title: "Intro", Start: 10, End: Bounded(20)}
	assert.False(t, c.Contains(9.99))
	assert.True(t, c.Contains(10))
	assert.True(t, c.Contains(19.5))
	assert.False(t, c.Contains(20))

	d, ok := c.Duration()
	assert.True(t, ok)
	assert.Equal(t, 10.0, d)

	last := Chapter{Start: 20, End: Unbounded()}
	_, ok = last.Duration()
	assert.False(t, ok)
}

func TestMetaVideoMetadataFallbacks(t *testing.T) {
	v := Meta{Duration: 42}.VideoMetadata("https://youtu.be/abc")
	assert.Equal(t, "Untitled", v.Title)
	assert.Equal(t, "https://youtu.be/abc", v.URL)
	assert.Equal(t, 42, v.Duration)

	v = Meta{Title: "T", WebpageURL: "https://www.youtube.com/watch?v=x", UploadDate: "20250717"}.VideoMetadata("ignored")
	assert.Equal(t, "T", v.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=x", v.URL)
	assert.Equal(t, "20250717", v.Published)
}

func TestTranscriptErrorUnwrap(t *testing.T) {
	err := InvalidFormat("second line must be a timestamp", "Hello")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
	assert.False(t, errors.Is(err, ErrEmptyInput))
	assert.Contains(t, err.Error(), "Hello")

	var te *TranscriptError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, "Hello", te.Input)

	assert.True(t, errors.Is(EmptyInput(), ErrEmptyInput))
	assert.True(t, errors.Is(InvalidArgument("negative"), ErrInvalidArgument))
}

func TestLineCount(t *testing.T) {
	doc := TranscriptDocument{Chapters: []Chapter{
		{Lines: []TranscriptLine{{0, "a"}, {1, "b"}}},
		{Lines: []TranscriptLine{{2, "c"}}},
	}}
	assert.Equal(t, 3, doc.LineCount())
	assert.True(t, VideoMetadata{}.IsZero())
}
