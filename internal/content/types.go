// Package content fetches all dynamically generated material (chapter text,
// search, definitions, devotionals, course material, quiz questions) from
// the Gemini API with declared JSON response shapes.
package content

// Verse is one verse (or paragraph, for library works) of a chapter.
type Verse struct {
	Verse int    `json:"verse"`
	Text  string `json:"text"`
}

// ChapterData is a generated chapter.
type ChapterData struct {
	Book    string  `json:"book"`
	Chapter int     `json:"chapter"`
	Verses  []Verse `json:"verses"`
}

// SearchResult is one concordance hit.
type SearchResult struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
}

// Reflection is the daily devotional.
type Reflection struct {
	Reference  string `json:"reference"`
	Text       string `json:"text"`
	Reflection string `json:"reflection"`
	Theme      string `json:"theme,omitempty"`
}

// CourseModule is one syllabus entry of a generated course.
type CourseModule struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CourseContent is a full generated lesson in Markdown.
type CourseContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// QuizQuestion is a multiple-choice question with its answer key.
type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Explanation        string   `json:"explanation"`
	Reference          string   `json:"reference,omitempty"`
}

// Difficulty selects the quiz question difficulty.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Turn is one prior exchange of the assistant conversation.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// BibleVersions maps version ids to their display names.
var BibleVersions = map[string]string{
	"ACF":  "Almeida Corrigida Fiel",
	"ARA":  "Almeida Revista e Atualizada",
	"NVI":  "Nova Versão Internacional",
	"NTLH": "Nova Tradução na Linguagem de Hoje",
}

// versionName resolves a version id, defaulting to ACF's name.
func versionName(id string) string {
	if name, ok := BibleVersions[id]; ok {
		return name
	}
	return BibleVersions["ACF"]
}
