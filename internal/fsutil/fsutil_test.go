package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "a", "b", "out.xml")
	require.NoError(t, WriteFileAtomic(dest, []byte("<x/>"), 0o644))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "<x/>", string(data))

	// aucun fichier temporaire ne doit rester
	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveAtomic(t *testing.T) {
	dir := t.TempDir()

	p1, err := SaveAtomic(dir, "talk", ".xml", []byte("1"), false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "talk.xml"), p1)

	p2, err := SaveAtomic(dir, "talk", ".xml", []byte("2"), false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "talk_1.xml"), p2)

	p3, err := SaveAtomic(dir, "talk", ".xml", []byte("3"), true)
	require.NoError(t, err)
	assert.Equal(t, p1, p3)
	data, _ := os.ReadFile(p1)
	assert.Equal(t, "3", string(data))

	_, err = SaveAtomic(dir, "", ".xml", nil, true)
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"A - B --  C  (Multi   Spaces) & 😁 Special!@# Chars: Test": "a-b-c-multi-spaces-special-chars-test",
		"How Claude Code Hooks Work":                                   "how-claude-code-hooks-work",
		"snake_case_title":                                             "snake-case-title",
		"Économie : l'été":                                             "économie-lété",
		"!!!":                                                          "transcript",
		"":                                                             "transcript",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}

	long := Slug(strings.Repeat("word ", 100))
	assert.LessOrEqual(t, len(long), 200)
	assert.False(t, strings.HasSuffix(long, "-"))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "untitled", SanitizeFilename(""))
	assert.Equal(t, "Intro- part 1", SanitizeFilename("intro: part 1"))
	assert.Equal(t, "A b", SanitizeFilename(`a<>b...`))
}

func TestHasTxtExtensionAndStem(t *testing.T) {
	assert.True(t, HasTxtExtension("notes/talk.txt"))
	assert.True(t, HasTxtExtension("TALK.TXT"))
	assert.False(t, HasTxtExtension("talk.md"))
	assert.False(t, HasTxtExtension("talk"))

	assert.Equal(t, "talk", Stem("notes/talk.txt"))
	assert.Equal(t, "archive.tar", Stem("archive.tar.gz"))
}
