// Package nav derives the active screen and its parameters from a slash-
// delimited navigation fragment, and provides the navigation primitive the
// rest of the app dispatches through.
package nav

import (
	"net/url"
	"strconv"
	"strings"
)

// Screen is one of the app's top-level views. The zero value is Landing.
type Screen string

const (
	ScreenLanding    Screen = "landing"
	ScreenMenu       Screen = "menu"
	ScreenBible      Screen = "bible"
	ScreenLibrary    Screen = "library"
	ScreenApocrypha  Screen = "apocrypha"
	ScreenDictionary Screen = "dictionary"
	ScreenAssistant  Screen = "assistant"
	ScreenRadios     Screen = "radios"
	ScreenChat       Screen = "chat"
	ScreenCourses    Screen = "courses"
	ScreenQuiz       Screen = "quiz"
	ScreenSettings   Screen = "settings"
	ScreenAdmin      Screen = "admin"
)

var knownScreens = map[string]Screen{
	"":           ScreenLanding,
	"landing":    ScreenLanding,
	"menu":       ScreenMenu,
	"bible":      ScreenBible,
	"library":    ScreenLibrary,
	"apocrypha":  ScreenApocrypha,
	"dictionary": ScreenDictionary,
	"assistant":  ScreenAssistant,
	"radios":     ScreenRadios,
	"chat":       ScreenChat,
	"courses":    ScreenCourses,
	"quiz":       ScreenQuiz,
	"settings":   ScreenSettings,
	"admin":      ScreenAdmin,
}

// State is the view state derived from a fragment. EntityName and Chapter
// are positional extras; Chapter is 0 when absent or unparseable, which
// callers treat as "show the listing".
type State struct {
	Segments   []string
	Screen     Screen
	EntityName string
	Chapter    int
}

// Resolve derives a State from a fragment. It is pure and total: any input
// yields a State with a known Screen. An unknown first segment falls back to
// the menu rather than erroring.
func Resolve(fragment string) State {
	fragment = strings.TrimPrefix(strings.TrimSpace(fragment), "#")

	var segments []string
	for _, part := range strings.Split(fragment, "/") {
		segments = append(segments, decodeSegment(part))
	}

	st := State{Segments: segments}

	screen, ok := knownScreens[segments[0]]
	if !ok {
		screen = ScreenMenu
	}
	st.Screen = screen

	if len(segments) > 1 {
		st.EntityName = segments[1]
	}
	if len(segments) > 2 {
		if n, err := strconv.Atoi(segments[2]); err == nil && n > 0 {
			st.Chapter = n
		}
	}
	return st
}

// decodeSegment tolerates percent-encoded names carried over from shared
// links; invalid escapes pass through unchanged.
func decodeSegment(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// HasEntity reports whether the screen takes book/chapter path segments.
func (s Screen) HasEntity() bool {
	switch s {
	case ScreenBible, ScreenLibrary, ScreenApocrypha:
		return true
	}
	return false
}
