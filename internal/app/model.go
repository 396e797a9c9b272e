package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verboapp/verbo/internal/catalog"
	"github.com/verboapp/verbo/internal/chat"
	"github.com/verboapp/verbo/internal/config"
	"github.com/verboapp/verbo/internal/content"
	"github.com/verboapp/verbo/internal/nav"
	"github.com/verboapp/verbo/internal/radio"
	"github.com/verboapp/verbo/internal/store"
	"github.com/verboapp/verbo/internal/ui"
)

// inputMode says what the shared text input is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputDict
	inputAssistant
	inputChat
	inputCourseCode
	inputAdminPass
	inputNewPass
	inputNote
	inputFilterWord
)

// courseView is the sub-state of the courses screen.
type courseView int

const (
	courseList courseView = iota
	courseCode
	courseSyllabus
	courseLesson
	courseQuizzing
)

// adminView is the sub-state of the admin screen.
type adminView int

const (
	adminPass adminView = iota
	adminMenu
	adminLogs
	adminUsers
	adminBlocked
	adminCodes
	adminFilter
	adminNewPass
	adminReset
)

// Course is one entry of the built-in course list. Locked courses
// require a per-user access code granted by the admin.
type Course struct {
	ID     string
	Title  string
	Locked bool
}

// Courses is the fixed course offering.
var Courses = []Course{
	{ID: "curso_panorama", Title: "Panorama Bíblico", Locked: false},
	{ID: "curso_profecias", Title: "Profecias de Daniel e Apocalipse", Locked: true},
	{ID: "curso_familia", Title: "Família à Luz da Bíblia", Locked: true},
}

var quizLevels = []content.Difficulty{content.Easy, content.Medium, content.Hard}

// navEvents collects router hook firings so the value-copied model can
// observe them after a dispatch.
type navEvents struct {
	logout bool
}

// Model is the root bubbletea model.
type Model struct {
	cfg     config.Config
	log     *zap.Logger
	store   *store.Store
	content *content.Client
	chat    *chat.Service
	player  *radio.Player
	router  *nav.Router
	events  *navEvents

	width  int
	height int

	// Auth
	authed      bool
	loginActive bool
	loginFocus  int
	loginName   textinput.Model
	loginEmail  textinput.Model
	loginPass   textinput.Model
	loginError  string
	userID      string
	userName    string
	userEmail   string
	isAdminUser bool

	// Navigation
	state        nav.State
	entry        *catalog.Entry
	entryCatalog catalog.ID

	// Shared request state
	version string
	gen     int
	loading bool
	spin    spinner.Model
	notice  string

	adminCfg store.AdminConfig

	// Menu
	menuCursor int
	reflection *content.Reflection

	// Listings and reading
	listCursor  int
	chapterData content.ChapterData
	verseCursor int

	// Search
	searchResults []content.SearchResult
	searchCursor  int
	searchOpen    bool

	// Shared single-line input
	input     textinput.Model
	inputMode inputMode

	// Dictionary
	defTerm    string
	definition string

	// Assistant
	history       []content.Turn
	assistPending bool

	// Chat
	messages []store.ChatMessage

	// Radio
	radioCursor int

	// Courses
	courseView   courseView
	courseCursor int
	course       Course
	syllabus     []content.CourseModule
	moduleCursor int
	lesson       content.CourseContent
	lessonScroll int
	courseQs     []content.QuizQuestion
	courseQIdx   int
	courseScore  int

	// Quiz
	quizQ        *content.QuizQuestion
	quizCursor   int
	quizChoice   int
	quizAnswered bool
	quizScore    int
	quizTotal    int
	quizLevel    int

	// Admin
	adminView   adminView
	adminCursor int
	logs        []store.AccessLog
	regUsers    []store.RegisteredUser
	blocked     []string
	members     []chat.User
	filterWords []string
	grantStage  int
	grantUser   int
	grantCourse int
	grantedCode string
}

// New wires the root model. The store must already be open; the content
// client may be nil until an API key is configured.
func New(cfg config.Config, st *store.Store, cc *content.Client, cs *chat.Service, pl *radio.Player, log *zap.Logger) Model {
	events := &navEvents{}
	router := &nav.Router{
		Locked:   func() bool { return st.AdminSettings().AppLocked },
		OnLogout: func() { events.logout = true },
	}

	in := textinput.New()
	in.CharLimit = 300

	name := textinput.New()
	name.Placeholder = "Nome"
	name.CharLimit = 60
	email := textinput.New()
	email.Placeholder = "E-mail"
	email.CharLimit = 120
	pass := textinput.New()
	pass.Placeholder = "Senha"
	pass.EchoMode = textinput.EchoPassword
	pass.CharLimit = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.SpinnerStyle

	return Model{
		cfg:        cfg,
		log:        log,
		store:      st,
		content:    cc,
		chat:       cs,
		player:     pl,
		router:     router,
		events:     events,
		state:      nav.State{Screen: nav.ScreenLanding},
		version:    st.VersionPref(),
		adminCfg:   st.AdminSettings(),
		input:      in,
		loginName:  name,
		loginEmail: email,
		loginPass:  pass,
		spin:       sp,
	}
}

// Init starts the poll loop and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), m.spin.Tick)
}

// pollCmd schedules the next shared-state read.
func (m Model) pollCmd() tea.Cmd {
	interval := m.cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return PollTickMsg{}
	})
}

// readSharedCmd reads chat history and the admin record off the update
// loop so a slow disk never blocks a frame.
func (m Model) readSharedCmd() tea.Cmd {
	st := m.store
	cs := m.chat
	return func() tea.Msg {
		msg := PolledMsg{Config: st.AdminSettings()}
		if cs != nil {
			msg.Messages = cs.Messages()
		}
		return msg
	}
}

func clearNoticeCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.assistPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case PollTickMsg:
		return m, tea.Batch(m.readSharedCmd(), m.pollCmd())

	case PolledMsg:
		lockedBefore := m.adminCfg.AppLocked
		m.adminCfg = msg.Config
		if msg.Messages != nil {
			m.messages = msg.Messages
		}
		if m.adminCfg.AppLocked && !lockedBefore && m.state.Screen != nav.ScreenAdmin {
			m.notice = "Aplicativo bloqueado pelo administrador"
		}
		return m, nil

	case ChapterMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.notice = "Não foi possível carregar o capítulo"
			m.log.Warn("chapter fetch failed", zap.Error(msg.Err))
			return m, clearNoticeCmd()
		}
		m.chapterData = msg.Data
		m.verseCursor = 0
		return m, nil

	case SearchMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.notice = "Busca falhou"
			return m, clearNoticeCmd()
		}
		m.searchResults = msg.Results
		m.searchCursor = 0
		return m, nil

	case DefinitionMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.notice = "Consulta falhou"
			return m, clearNoticeCmd()
		}
		m.defTerm = msg.Term
		m.definition = msg.Text
		return m, nil

	case ReflectionMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.Err == nil {
			r := msg.R
			m.reflection = &r
		}
		return m, nil

	case AssistantMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.assistPending = false
		m.loading = false
		if msg.Err != nil {
			m.notice = "O assistente não respondeu"
			return m, clearNoticeCmd()
		}
		m.history = append(m.history, content.Turn{Role: "model", Text: msg.Reply})
		return m, nil

	case SyllabusMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.notice = "Não foi possível montar o curso"
			m.courseView = courseList
			return m, clearNoticeCmd()
		}
		m.syllabus = msg.Modules
		m.moduleCursor = 0
		m.courseView = courseSyllabus
		return m, nil

	case LessonMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.notice = "Não foi possível gerar a lição"
			return m, clearNoticeCmd()
		}
		m.lesson = msg.Lesson
		m.lessonScroll = 0
		m.courseView = courseLesson
		return m, nil

	case CourseQuizMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil || len(msg.Questions) == 0 {
			m.notice = "Não foi possível gerar o teste"
			return m, clearNoticeCmd()
		}
		m.courseQs = msg.Questions
		m.courseQIdx = 0
		m.courseScore = 0
		m.quizCursor = 0
		m.quizAnswered = false
		m.courseView = courseQuizzing
		return m, nil

	case QuizMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.notice = "Não foi possível gerar a pergunta"
			return m, clearNoticeCmd()
		}
		q := msg.Q
		m.quizQ = &q
		m.quizCursor = 0
		m.quizAnswered = false
		return m, nil

	case ClearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

// navigate dispatches through the router and reacts when the fragment
// actually moved.
func (m Model) navigate(path string) (Model, tea.Cmd) {
	before := m.router.Fragment()
	m.router.Navigate(path)
	if m.router.Fragment() == before {
		if m.adminCfg.AppLocked && nav.Resolve(path).Screen != nav.ScreenAdmin {
			m.notice = "Aplicativo bloqueado pelo administrador"
		}
		return m, nil
	}
	return m.enterState(m.router.Current())
}

// back pops one navigation level; on the menu it turns into logout.
func (m Model) back() (Model, tea.Cmd) {
	before := m.router.Fragment()
	m.router.Back()
	if m.events.logout {
		m.events.logout = false
		return m.logout(), nil
	}
	if m.router.Fragment() == before {
		return m, nil
	}
	return m.enterState(m.router.Current())
}

// enterState applies a settled navigation state: per-screen setup plus
// the side effects (last-read persistence, content fetches) that the
// resolver itself never performs.
func (m Model) enterState(st nav.State) (Model, tea.Cmd) {
	m.state = st
	m.notice = ""
	m.inputMode = inputNone
	m.input.Blur()
	m.listCursor = 0
	m.searchOpen = false

	switch st.Screen {
	case nav.ScreenBible, nav.ScreenLibrary, nav.ScreenApocrypha:
		m.entry = nil
		m.chapterData = content.ChapterData{}
		if st.EntityName == "" {
			return m, nil
		}
		entry, id := catalog.Find(st.EntityName)
		if entry == nil {
			// Unknown entity: show the listing, never an error page.
			return m, nil
		}
		m.entry = entry
		m.entryCatalog = id
		if st.Chapter == 0 {
			return m, nil
		}
		m.store.SetLastRead(store.LastRead{
			Entity:   entry.Name,
			Chapter:  st.Chapter,
			Category: string(id),
		})
		m.gen++
		m.loading = true
		return m, tea.Batch(m.fetchChapterCmd(m.gen, id, entry.Name, st.Chapter), m.spin.Tick)

	case nav.ScreenDictionary:
		m.definition = ""
		m.startInput(inputDict, "Palavra ou termo bíblico")

	case nav.ScreenAssistant:
		m.startInput(inputAssistant, "Pergunte ao assistente")

	case nav.ScreenChat:
		if m.chat != nil {
			m.messages = m.chat.Messages()
		}
		m.startInput(inputChat, "Mensagem")

	case nav.ScreenCourses:
		m.courseView = courseList
		m.courseCursor = 0

	case nav.ScreenQuiz:
		m.quizQ = nil
		m.quizAnswered = false

	case nav.ScreenAdmin:
		if m.adminView != adminMenu || !m.isAdminUser {
			m.adminView = adminPass
			m.startInput(inputAdminPass, "Senha de administrador")
			m.input.EchoMode = textinput.EchoPassword
		}
		m.adminCursor = 0

	case nav.ScreenSettings:
		m.listCursor = 0
	}
	return m, nil
}

func (m *Model) startInput(mode inputMode, placeholder string) {
	m.inputMode = mode
	m.input.Placeholder = placeholder
	m.input.EchoMode = textinput.EchoNormal
	m.input.SetValue("")
	m.input.Focus()
}

// logout clears auth state and returns to the landing screen. The
// router is reset without firing hooks.
func (m Model) logout() Model {
	m.authed = false
	m.loginActive = false
	m.isAdminUser = false
	m.adminView = adminPass
	m.userID = ""
	m.userName = ""
	m.userEmail = ""
	m.history = nil
	m.router.Reset()
	m.state = nav.State{Screen: nav.ScreenLanding}
	if m.player != nil {
		m.player.Stop()
	}
	return m
}

// Content commands. Each closure captures the generation that asked for
// it so late replies can be recognized and dropped.

func (m Model) fetchChapterCmd(gen int, id catalog.ID, book string, chapter int) tea.Cmd {
	cc := m.content
	version := m.version
	return func() tea.Msg {
		if cc == nil {
			return ChapterMsg{Gen: gen, Err: errNoClient}
		}
		data, err := cc.FetchChapter(context.Background(), id, book, chapter, version)
		return ChapterMsg{Gen: gen, Data: data, Err: err}
	}
}

func (m Model) searchCmd(gen int, query string) tea.Cmd {
	cc := m.content
	version := m.version
	return func() tea.Msg {
		if cc == nil {
			return SearchMsg{Gen: gen, Err: errNoClient}
		}
		results, err := cc.Search(context.Background(), query, version)
		return SearchMsg{Gen: gen, Results: results, Err: err}
	}
}

func (m Model) definitionCmd(gen int, term string) tea.Cmd {
	cc := m.content
	return func() tea.Msg {
		if cc == nil {
			return DefinitionMsg{Gen: gen, Err: errNoClient}
		}
		text, err := cc.Definition(context.Background(), term)
		return DefinitionMsg{Gen: gen, Term: term, Text: text, Err: err}
	}
}

func (m Model) reflectionCmd(gen int) tea.Cmd {
	cc := m.content
	return func() tea.Msg {
		if cc == nil {
			return ReflectionMsg{Gen: gen, Err: errNoClient}
		}
		r, err := cc.DailyReflection(context.Background(), "")
		return ReflectionMsg{Gen: gen, R: r, Err: err}
	}
}

func (m Model) assistantCmd(gen int, question string, history []content.Turn) tea.Cmd {
	cc := m.content
	return func() tea.Msg {
		if cc == nil {
			return AssistantMsg{Gen: gen, Err: errNoClient}
		}
		reply, err := cc.Assistant(context.Background(), question, history)
		return AssistantMsg{Gen: gen, Reply: reply, Err: err}
	}
}

func (m Model) syllabusCmd(gen int, topic string) tea.Cmd {
	cc := m.content
	return func() tea.Msg {
		if cc == nil {
			return SyllabusMsg{Gen: gen, Err: errNoClient}
		}
		modules, err := cc.CourseSyllabus(context.Background(), topic)
		return SyllabusMsg{Gen: gen, Modules: modules, Err: err}
	}
}

func (m Model) lessonCmd(gen int, topic, module string) tea.Cmd {
	cc := m.content
	return func() tea.Msg {
		if cc == nil {
			return LessonMsg{Gen: gen, Err: errNoClient}
		}
		lesson, err := cc.CourseContent(context.Background(), topic, module)
		return LessonMsg{Gen: gen, Lesson: lesson, Err: err}
	}
}

func (m Model) courseQuizCmd(gen int, lesson string) tea.Cmd {
	cc := m.content
	return func() tea.Msg {
		if cc == nil {
			return CourseQuizMsg{Gen: gen, Err: errNoClient}
		}
		qs, err := cc.CourseQuiz(context.Background(), lesson)
		return CourseQuizMsg{Gen: gen, Questions: qs, Err: err}
	}
}

func (m Model) quizCmd(gen int, level content.Difficulty) tea.Cmd {
	cc := m.content
	return func() tea.Msg {
		if cc == nil {
			return QuizMsg{Gen: gen, Err: errNoClient}
		}
		q, err := cc.QuizQuestion(context.Background(), level)
		return QuizMsg{Gen: gen, Q: q, Err: err}
	}
}

var errNoClient = errNoClientType{}

type errNoClientType struct{}

func (errNoClientType) Error() string { return "content client not configured" }

// chapterText joins the loaded chapter for read-aloud.
func (m Model) chapterText() string {
	var b strings.Builder
	for _, v := range m.chapterData.Verses {
		b.WriteString(v.Text)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}
