package app

import (
	"github.com/verboapp/verbo/internal/content"
	"github.com/verboapp/verbo/internal/store"
)

// PollTickMsg drives the shared-state refresh loop.
type PollTickMsg struct{}

// PolledMsg carries the state re-read on each poll tick.
type PolledMsg struct {
	Messages []store.ChatMessage
	Config   store.AdminConfig
}

// ChapterMsg carries a fetched chapter. Gen ties the response to the
// request that asked for it; stale generations are dropped.
type ChapterMsg struct {
	Gen  int
	Data content.ChapterData
	Err  error
}

// SearchMsg carries concordance results.
type SearchMsg struct {
	Gen     int
	Results []content.SearchResult
	Err     error
}

// DefinitionMsg carries a dictionary definition.
type DefinitionMsg struct {
	Gen  int
	Term string
	Text string
	Err  error
}

// ReflectionMsg carries the daily devotional.
type ReflectionMsg struct {
	Gen int
	R   content.Reflection
	Err error
}

// AssistantMsg carries the assistant's reply to the last question.
type AssistantMsg struct {
	Gen   int
	Reply string
	Err   error
}

// SyllabusMsg carries a generated course syllabus.
type SyllabusMsg struct {
	Gen     int
	Modules []content.CourseModule
	Err     error
}

// LessonMsg carries a generated lesson.
type LessonMsg struct {
	Gen    int
	Lesson content.CourseContent
	Err    error
}

// CourseQuizMsg carries the end-of-lesson test.
type CourseQuizMsg struct {
	Gen       int
	Questions []content.QuizQuestion
	Err       error
}

// QuizMsg carries a single generated quiz question.
type QuizMsg struct {
	Gen int
	Q   content.QuizQuestion
	Err error
}

// ClearNoticeMsg clears a transient notice after a timeout.
type ClearNoticeMsg struct{}
