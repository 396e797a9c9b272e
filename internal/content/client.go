package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/verboapp/verbo/internal/catalog"
)

// Config tunes the client. Zero values fall back to defaults.
type Config struct {
	Model      string        // flash-class model for most calls
	ProModel   string        // heavier model for full lessons
	Timeout    time.Duration // per-attempt deadline
	MaxRetries int           // additional attempts after the first
}

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = "gemini-2.5-flash"
	}
	if c.ProModel == "" {
		c.ProModel = "gemini-3-pro-preview"
	}
	if c.Timeout <= 0 {
		c.Timeout = 45 * time.Second
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	} else if c.MaxRetries == 0 {
		c.MaxRetries = 2
	}
	return c
}

// generateFunc is the single seam to the model API.
type generateFunc func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error)

// Client generates app content through the Gemini API. All methods honor
// their context, apply a per-attempt timeout, and retry transient failures
// with exponential backoff (the upstream service is treated as flaky).
type Client struct {
	cfg      Config
	log      *zap.Logger
	generate generateFunc
}

// New dials the Gemini API.
func New(ctx context.Context, apiKey string, cfg Config, log *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	c := &Client{cfg: cfg.withDefaults(), log: log}
	c.generate = func(ctx context.Context, model string, contents []*genai.Content, gcfg *genai.GenerateContentConfig) (string, error) {
		resp, err := gc.Models.GenerateContent(ctx, model, contents, gcfg)
		if err != nil {
			return "", err
		}
		text := resp.Text()
		if text == "" {
			return "", fmt.Errorf("empty response")
		}
		return text, nil
	}
	return c, nil
}

// backoffDelay returns the wait before retry attempt n (0-based): 1s, 2s,
// 4s... capped at 8s.
func backoffDelay(attempt int) time.Duration {
	if attempt > 3 {
		attempt = 3
	}
	return time.Duration(1<<attempt) * time.Second
}

// call runs one generation with bounded retries. The prompt always travels
// as a single user turn; structured calls add a response schema.
func (c *Client) call(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	return c.callContents(ctx, model, contents, schema, "")
}

func (c *Client) callContents(ctx context.Context, model string, contents []*genai.Content, schema *genai.Schema, system string) (string, error) {
	gcfg := &genai.GenerateContentConfig{}
	if schema != nil {
		gcfg.ResponseMIMEType = "application/json"
		gcfg.ResponseSchema = schema
	}
	if system != "" {
		gcfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoffDelay(attempt - 1)):
			}
			c.log.Debug("retrying generation", zap.Int("attempt", attempt), zap.String("model", model))
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		text, err := c.generate(attemptCtx, model, contents, gcfg)
		cancel()
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", fmt.Errorf("generate content: %w", lastErr)
}

// FetchChapter generates a chapter of any catalog's book.
func (c *Client) FetchChapter(ctx context.Context, id catalog.ID, book string, chapter int, version string) (ChapterData, error) {
	text, err := c.call(ctx, c.cfg.Model, chapterPrompt(id, book, chapter, version), chapterSchema)
	if err != nil {
		return ChapterData{}, err
	}
	var data ChapterData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return ChapterData{}, fmt.Errorf("decode chapter: %w", err)
	}
	return data, nil
}

// Search runs a concordance search over the generated corpus.
func (c *Client) Search(ctx context.Context, query, version string) ([]SearchResult, error) {
	text, err := c.call(ctx, c.cfg.Model, searchPrompt(query, version), searchSchema)
	if err != nil {
		return nil, err
	}
	var results []SearchResult
	if err := json.Unmarshal([]byte(text), &results); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}
	return results, nil
}

// Definition returns a Markdown dictionary entry for a term.
func (c *Client) Definition(ctx context.Context, term string) (string, error) {
	return c.call(ctx, c.cfg.Model, definitionPrompt(term), nil)
}

// DailyReflection generates the devotional; theme may be empty.
func (c *Client) DailyReflection(ctx context.Context, theme string) (Reflection, error) {
	text, err := c.call(ctx, c.cfg.Model, reflectionPrompt(theme), reflectionSchema)
	if err != nil {
		return Reflection{}, err
	}
	var r Reflection
	if err := json.Unmarshal([]byte(text), &r); err != nil {
		return Reflection{}, fmt.Errorf("decode reflection: %w", err)
	}
	r.Theme = theme
	return r, nil
}

// Assistant answers one conversation turn given the prior history.
func (c *Client) Assistant(ctx context.Context, question string, history []Turn) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(question, genai.RoleUser))

	return c.callContents(ctx, c.cfg.Model, contents, nil, assistantSystemInstruction)
}

// CourseSyllabus generates the 5-module syllabus for a topic.
func (c *Client) CourseSyllabus(ctx context.Context, topic string) ([]CourseModule, error) {
	text, err := c.call(ctx, c.cfg.Model, syllabusPrompt(topic), syllabusSchema)
	if err != nil {
		return nil, err
	}
	var modules []CourseModule
	if err := json.Unmarshal([]byte(text), &modules); err != nil {
		return nil, fmt.Errorf("decode syllabus: %w", err)
	}
	return modules, nil
}

// CourseContent generates a full lesson; uses the pro model for depth.
func (c *Client) CourseContent(ctx context.Context, topic, moduleTitle string) (CourseContent, error) {
	text, err := c.call(ctx, c.cfg.ProModel, lessonPrompt(topic, moduleTitle), lessonSchema)
	if err != nil {
		return CourseContent{}, err
	}
	var lesson CourseContent
	if err := json.Unmarshal([]byte(text), &lesson); err != nil {
		return CourseContent{}, fmt.Errorf("decode lesson: %w", err)
	}
	return lesson, nil
}

// CourseQuiz generates 5 questions over a lesson's content.
func (c *Client) CourseQuiz(ctx context.Context, lesson string) ([]QuizQuestion, error) {
	text, err := c.call(ctx, c.cfg.Model, courseQuizPrompt(lesson), quizListSchema)
	if err != nil {
		return nil, err
	}
	var questions []QuizQuestion
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}
	return questions, nil
}

// QuizQuestion generates one trivia question at the given difficulty.
func (c *Client) QuizQuestion(ctx context.Context, d Difficulty) (QuizQuestion, error) {
	text, err := c.call(ctx, c.cfg.Model, quizPrompt(d), quizQuestionSchema)
	if err != nil {
		return QuizQuestion{}, err
	}
	var q QuizQuestion
	if err := json.Unmarshal([]byte(text), &q); err != nil {
		return QuizQuestion{}, fmt.Errorf("decode question: %w", err)
	}
	return q, nil
}
