package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteKey(t *testing.T) {
	assert.Equal(t, "Gênesis-1-1", NoteKey("Gênesis", 1, 1))
}

func TestNoteRoundTrip(t *testing.T) {
	s := newTestStore(t)
	key := NoteKey("João", 3, 16)

	require.NoError(t, s.SetNote(key, "Porque Deus amou o mundo..."))
	text, ok := s.Note(key)
	require.True(t, ok)
	assert.Equal(t, "Porque Deus amou o mundo...", text)
}

func TestEmptyNoteDeletesKey(t *testing.T) {
	s := newTestStore(t)
	key := NoteKey("João", 3, 16)

	require.NoError(t, s.SetNote(key, "anotação"))
	require.NoError(t, s.SetNote(key, ""))

	_, ok := s.Note(key)
	assert.False(t, ok, "empty note must remove the key")
	assert.Empty(t, s.Notes())
}

func TestLastReadPointer(t *testing.T) {
	s := newTestStore(t)
	assert.Nil(t, s.LastReadPointer())

	s.SetLastRead(LastRead{Entity: "Salmos", Chapter: 91, Category: "bible"})

	lr := s.LastReadPointer()
	require.NotNil(t, lr)
	assert.Equal(t, "Salmos", lr.Entity)
	assert.Equal(t, 91, lr.Chapter)
	assert.Equal(t, "bible", lr.Category)
}

func TestVersionPrefDefault(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "ACF", s.VersionPref())

	require.NoError(t, s.SetVersionPref("NVI"))
	assert.Equal(t, "NVI", s.VersionPref())
}

func TestPreferenceFlags(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.SoundEnabled(), "sound defaults on")
	require.NoError(t, s.SetSoundEnabled(false))
	assert.False(t, s.SoundEnabled())

	assert.False(t, s.RememberDevice(), "remember-device defaults off")
	require.NoError(t, s.SetRememberDevice(true))
	assert.True(t, s.RememberDevice())
}

func TestCustomFilterWords(t *testing.T) {
	s := newTestStore(t)

	list := s.AddCustomFilterWord("  Tolo ")
	assert.Equal(t, []string{"tolo"}, list, "words normalize to lowercase trimmed")

	list = s.AddCustomFilterWord("tolo")
	assert.Equal(t, []string{"tolo"}, list, "duplicates ignored")

	list = s.AddCustomFilterWord("")
	assert.Equal(t, []string{"tolo"}, list, "empty ignored")

	list = s.RemoveCustomFilterWord("TOLO")
	assert.Empty(t, list)
}
