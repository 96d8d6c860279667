package ui

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/yt2xml/internal/clipboard"
)

func TestGetInput_FromClipboard(t *testing.T) {
	mem := &clipboard.Memory{}
	require.NoError(t, mem.WriteAll("  https://www.youtube.com/watch?v=dQw4w9WgXcQ \n"))
	defer clipboard.SetBackend(mem)()

	var out, errOut bytes.Buffer
	u := NewWriters(strings.NewReader(""), &out, &errOut)

	got, err := u.GetInput(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", got)
	assert.Contains(t, out.String(), "presse-papier")
}

func TestGetInput_PromptRetriesUntilValid(t *testing.T) {
	defer clipboard.SetBackend(&clipboard.Memory{})()

	path := filepath.Join(t.TempDir(), "talk.txt")
	require.NoError(t, os.WriteFile(path, []byte("Intro\n0:00\nhi\n"), 0o644))

	var out, errOut bytes.Buffer
	in := strings.NewReader("nonsense\n\"" + path + "\"\n")
	u := NewWriters(in, &out, &errOut)

	got, err := u.GetInput(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Contains(t, errOut.String(), "Entrée invalide")
}

func TestGetInput_EOF(t *testing.T) {
	defer clipboard.SetBackend(&clipboard.Memory{})()

	var out, errOut bytes.Buffer
	u := NewWriters(strings.NewReader("missing.txt"), &out, &errOut)

	_, err := u.GetInput(context.Background())
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestPrintMultiline(t *testing.T) {
	var out, errOut bytes.Buffer
	u := NewWriters(strings.NewReader(""), &out, &errOut)

	u.PrintError(context.Background(), "❌ Your file is empty: a.txt\n\nTry: yt2xml --help")
	assert.Equal(t, "❌ Your file is empty: a.txt\n\nTry: yt2xml --help\n", errOut.String())

	u.PrintSuccess(context.Background(), "✅ Created: out.xml")
	assert.Equal(t, "✅ Created: out.xml\n", out.String())
}

func TestWaitForExit_Cancelled(t *testing.T) {
	var out bytes.Buffer
	u := NewWriters(strings.NewReader(""), &out, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, u.WaitForExit(ctx), context.Canceled)
}
