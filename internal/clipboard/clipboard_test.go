package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend(t *testing.T) {
	mem := &Memory{}
	restore := SetBackend(mem)
	defer restore()

	assert.False(t, Unsupported())
	assert.ErrorIs(t, WriteAll(""), ErrEmptyText)

	require.NoError(t, WriteAll("<transcript/>"))
	got, err := ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "<transcript/>", got)
	assert.True(t, Equals("<transcript/>"))
	assert.False(t, Equals("other"))

	mem.Err = errors.New("boom")
	assert.False(t, Equals("<transcript/>"))
	assert.Error(t, WriteAll("x"))
}

func TestSetBackendRestore(t *testing.T) {
	restore := SetBackend(&Memory{})
	restore()
	_, ok := current().(system)
	assert.True(t, ok)
}
