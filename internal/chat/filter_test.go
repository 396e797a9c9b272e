package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFilter(t *testing.T, custom ...string) *Filter {
	t.Helper()
	f, err := NewFilter(custom)
	require.NoError(t, err)
	return f
}

func TestCleanMasksBuiltinWords(t *testing.T) {
	f := newTestFilter(t)

	out := f.Clean("que idiota você é")
	assert.Equal(t, "que ****** você é", out)
}

func TestCleanCaseInsensitive(t *testing.T) {
	f := newTestFilter(t)

	out := f.Clean("IDIOTA e Burro")
	assert.Equal(t, "****** e *****", out)
}

func TestCleanWholeWordsOnly(t *testing.T) {
	f := newTestFilter(t)

	// "inferno" inside a longer word must not match.
	assert.Equal(t, "infernos", f.Clean("infernos"))
	assert.Equal(t, "o ******* queima", f.Clean("o inferno queima"))
}

func TestCleanAccentedWord(t *testing.T) {
	f := newTestFilter(t)

	out := f.Clean("seu estúpido!")
	assert.Equal(t, "seu ********!", out)
}

func TestCleanCustomWords(t *testing.T) {
	f := newTestFilter(t, "banana")

	out := f.Clean("tira essa banana daqui")
	assert.Equal(t, "tira essa ****** daqui", out)
}

func TestCleanNoMatchesUnchanged(t *testing.T) {
	f := newTestFilter(t)

	in := "A paz do Senhor a todos!"
	assert.Equal(t, in, f.Clean(in))
}

func TestCleanMultipleOccurrences(t *testing.T) {
	f := newTestFilter(t)

	out := f.Clean("merda merda merda")
	assert.Equal(t, strings.TrimSpace(strings.Repeat("***** ", 3)), out)
}

func TestIsBuiltinWord(t *testing.T) {
	assert.True(t, IsBuiltinWord("idiota"))
	assert.True(t, IsBuiltinWord("  IDIOTA "))
	assert.False(t, IsBuiltinWord("banana"))
}

func TestCleanEmpty(t *testing.T) {
	f := newTestFilter(t)
	assert.Equal(t, "", f.Clean(""))
}
