package store

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// NoteKey builds the composite notes key for a verse.
func NoteKey(book string, chapter, verse int) string {
	return fmt.Sprintf("%s-%d-%d", book, chapter, verse)
}

// Notes returns the full notes map; empty when none exist.
func (s *Store) Notes() NotesMap {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := NotesMap{}
	s.getJSON(keyUserNotes, &notes)
	return notes
}

// SetNote writes a note under the composite key. Empty text deletes the key
// so blank notes never accumulate.
func (s *Store) SetNote(key, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := NotesMap{}
	s.getJSON(keyUserNotes, &notes)
	if text == "" {
		delete(notes, key)
	} else {
		notes[key] = text
	}
	return s.putJSON(keyUserNotes, notes)
}

// Note returns the note for a key and whether one exists.
func (s *Store) Note(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := NotesMap{}
	s.getJSON(keyUserNotes, &notes)
	text, ok := notes[key]
	return text, ok
}

// LastReadPointer returns the resume-reading pointer, or nil.
func (s *Store) LastReadPointer() *LastRead {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lr LastRead
	if !s.getJSON(keyLastRead, &lr) || lr.Entity == "" {
		return nil
	}
	return &lr
}

// SetLastRead persists the resume-reading pointer. Racing writers across
// processes is an accepted hazard; last writer wins.
func (s *Store) SetLastRead(lr LastRead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.putJSON(keyLastRead, lr); err != nil {
		s.log.Warn("persist last read", zap.Error(err))
	}
}

// VersionPref returns the preferred Bible version id, defaulting to ACF.
func (s *Store) VersionPref() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok := s.getRaw(keyVersionPref); ok && raw != "" {
		return raw
	}
	return "ACF"
}

// SetVersionPref stores the preferred Bible version id.
func (s *Store) SetVersionPref(version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putRaw(keyVersionPref, version)
}

// SoundEnabled reports the interface-sound preference (on by default).
func (s *Store) SoundEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getBool(keyLionSound, true)
}

// SetSoundEnabled stores the interface-sound preference.
func (s *Store) SetSoundEnabled(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putBool(keyLionSound, on)
}

// RememberDevice reports whether this device may skip straight to the quick
// login flow.
func (s *Store) RememberDevice() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getBool(keyRememberDevice, false)
}

// SetRememberDevice stores the quick-login flag.
func (s *Store) SetRememberDevice(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putBool(keyRememberDevice, on)
}

// CustomFilterWords returns the user-managed profanity word list.
func (s *Store) CustomFilterWords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stringList(keyCustomFilter)
}

// AddCustomFilterWord adds a lowercased, trimmed word to the custom filter
// list, ignoring empties and duplicates. Returns the updated list.
func (s *Store) AddCustomFilterWord(word string) []string {
	word = normalizeWord(word)

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.stringList(keyCustomFilter)
	if word == "" {
		return list
	}
	for _, w := range list {
		if w == word {
			return list
		}
	}
	list = append(list, word)
	if err := s.putJSON(keyCustomFilter, list); err != nil {
		s.log.Warn("write custom filter", zap.Error(err))
	}
	return list
}

// RemoveCustomFilterWord removes a word, returning the updated list.
func (s *Store) RemoveCustomFilterWord(word string) []string {
	word = normalizeWord(word)

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.stringList(keyCustomFilter)
	out := list[:0]
	for _, w := range list {
		if w != word {
			out = append(out, w)
		}
	}
	if err := s.putJSON(keyCustomFilter, out); err != nil {
		s.log.Warn("write custom filter", zap.Error(err))
	}
	return out
}
