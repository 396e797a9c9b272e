package app

import (
	"fmt"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verboapp/verbo/internal/catalog"
	"github.com/verboapp/verbo/internal/content"
	"github.com/verboapp/verbo/internal/nav"
	"github.com/verboapp/verbo/internal/radio"
	"github.com/verboapp/verbo/internal/store"
)

// menuItem maps a menu row to its navigation target.
type menuItem struct {
	Title string
	Path  string
}

var menuItems = []menuItem{
	{"Bíblia Sagrada", "bible"},
	{"Biblioteca", "library"},
	{"Apócrifos", "apocrypha"},
	{"Dicionário Bíblico", "dictionary"},
	{"Assistente Bíblico", "assistant"},
	{"Rádios Cristãs", "radios"},
	{"Chat da Comunidade", "chat"},
	{"Cursos", "courses"},
	{"Quiz Bíblico", "quiz"},
	{"Configurações", "settings"},
	{"Administração", "admin"},
}

const (
	backdoorEmail = "admin@iasd.com"
	backdoorPass  = "admin123"
)

// menuItemsVisible hides the admin row from regular members until admin
// mode is switched on.
func (m Model) menuItemsVisible() []menuItem {
	if m.isAdminUser || m.adminCfg.AdminMode {
		return menuItems
	}
	return menuItems[:len(menuItems)-1]
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == KeyCtrlC {
		if m.player != nil {
			m.player.Stop()
		}
		return m, tea.Quit
	}

	if !m.authed {
		return m.handleAuthKey(msg)
	}

	switch m.state.Screen {
	case nav.ScreenMenu:
		return m.handleMenuKey(msg)
	case nav.ScreenBible, nav.ScreenLibrary, nav.ScreenApocrypha:
		return m.handleReaderKey(msg)
	case nav.ScreenDictionary:
		return m.handleDictionaryKey(msg)
	case nav.ScreenAssistant:
		return m.handleAssistantKey(msg)
	case nav.ScreenRadios:
		return m.handleRadioKey(msg)
	case nav.ScreenChat:
		return m.handleChatKey(msg)
	case nav.ScreenCourses:
		return m.handleCoursesKey(msg)
	case nav.ScreenQuiz:
		return m.handleQuizKey(msg)
	case nav.ScreenSettings:
		return m.handleSettingsKey(msg)
	case nav.ScreenAdmin:
		return m.handleAdminKey(msg)
	}
	return m, nil
}

// handleAuthKey covers the landing screen and the login form.
func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.loginActive {
		switch msg.String() {
		case KeyEnter:
			m.loginActive = true
			m.loginFocus = 0
			m.loginError = ""
			m.loginName.Focus()
			m.loginEmail.Blur()
			m.loginPass.Blur()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case KeyBack:
		m.loginActive = false
		return m, nil

	case KeyTab, KeyDown:
		m.loginFocus = (m.loginFocus + 1) % 3
		m.syncLoginFocus()
		return m, nil

	case "shift+tab", KeyUp:
		m.loginFocus = (m.loginFocus + 2) % 3
		m.syncLoginFocus()
		return m, nil

	case KeyEnter:
		if m.loginFocus < 2 {
			m.loginFocus++
			m.syncLoginFocus()
			return m, nil
		}
		return m.submitLogin()
	}

	var cmd tea.Cmd
	switch m.loginFocus {
	case 0:
		m.loginName, cmd = m.loginName.Update(msg)
	case 1:
		m.loginEmail, cmd = m.loginEmail.Update(msg)
	default:
		m.loginPass, cmd = m.loginPass.Update(msg)
	}
	return m, cmd
}

func (m *Model) syncLoginFocus() {
	m.loginName.Blur()
	m.loginEmail.Blur()
	m.loginPass.Blur()
	switch m.loginFocus {
	case 0:
		m.loginName.Focus()
	case 1:
		m.loginEmail.Focus()
	default:
		m.loginPass.Focus()
	}
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.loginName.Value())
	email := strings.ToLower(strings.TrimSpace(m.loginEmail.Value()))
	pass := m.loginPass.Value()

	if !strings.Contains(email, "@") {
		m.loginError = "Informe um e-mail válido"
		return m, nil
	}
	if len(pass) < 4 {
		m.loginError = "A senha deve ter pelo menos 4 caracteres"
		return m, nil
	}

	backdoor := email == backdoorEmail && pass == backdoorPass
	if m.store.Maintenance() && !backdoor {
		m.loginError = "Sistema em manutenção. Tente novamente mais tarde."
		return m, nil
	}

	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	m.userName = name
	m.userEmail = email
	m.userID = "user_" + email
	m.isAdminUser = backdoor
	m.authed = true
	m.loginActive = false
	m.loginError = ""
	m.loginPass.SetValue("")

	if err := m.store.RegisterLogin(name, email); err != nil {
		m.log.Warn("register login", zap.Error(err))
	}
	m.store.LogAccess(email, runtime.GOOS+" terminal")
	m.store.SetRememberDevice(true)

	return m.navigate("menu")
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		if m.player != nil {
			m.player.Stop()
		}
		return m, tea.Quit

	case KeyBack:
		return m.back()

	case KeyJ, KeyDown:
		if m.menuCursor < len(m.menuItemsVisible())-1 {
			m.menuCursor++
		}

	case KeyK, KeyUp:
		if m.menuCursor > 0 {
			m.menuCursor--
		}

	case KeyEnter:
		items := m.menuItemsVisible()
		if m.menuCursor < len(items) {
			return m.navigate(items[m.menuCursor].Path)
		}

	case KeyReadOut:
		m.gen++
		m.loading = true
		return m, tea.Batch(m.reflectionCmd(m.gen), m.spin.Tick)

	case "c":
		if lr := m.store.LastReadPointer(); lr != nil {
			screen := "library"
			switch catalog.ID(lr.Category) {
			case catalog.Scripture:
				screen = "bible"
			case catalog.Apocrypha:
				screen = "apocrypha"
			}
			return m.navigate(fmt.Sprintf("%s/%s/%d", screen, lr.Entity, lr.Chapter))
		}
		m.notice = "Nenhuma leitura em andamento"
		return m, clearNoticeCmd()
	}
	return m, nil
}

// readerEntries are the rows of the current book listing.
func (m Model) readerEntries() []catalog.Entry {
	switch m.state.Screen {
	case nav.ScreenBible:
		return catalog.ByID(catalog.Scripture).Entries
	case nav.ScreenApocrypha:
		return catalog.ByID(catalog.Apocrypha).Entries
	default:
		var all []catalog.Entry
		for _, lib := range catalog.Libraries() {
			all = append(all, lib.Entries...)
		}
		return all
	}
}

func (m Model) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputMode == inputSearch {
		return m.handleSearchInput(msg)
	}
	if m.inputMode == inputNote {
		return m.handleNoteInput(msg)
	}
	if m.searchOpen {
		return m.handleSearchResults(msg)
	}

	switch {
	case m.state.Chapter > 0 && m.entry != nil:
		return m.handleReadingKey(msg)
	case m.state.EntityName != "" && m.entry != nil:
		return m.handleChapterListKey(msg)
	default:
		return m.handleBookListKey(msg)
	}
}

func (m Model) handleBookListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.readerEntries()
	switch msg.String() {
	case KeyBack:
		return m.back()
	case KeyJ, KeyDown:
		if m.listCursor < len(entries)-1 {
			m.listCursor++
		}
	case KeyK, KeyUp:
		if m.listCursor > 0 {
			m.listCursor--
		}
	case KeyEnter:
		if m.listCursor < len(entries) {
			return m.navigate(string(m.state.Screen) + "/" + entries[m.listCursor].Name)
		}
	case KeySearch:
		if m.state.Screen == nav.ScreenBible {
			m.searchResults = nil
			m.startInput(inputSearch, "Buscar versículos")
		}
	}
	return m, nil
}

func (m Model) handleChapterListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		return m.back()
	case KeyJ, KeyDown:
		if m.listCursor < m.entry.Chapters-1 {
			m.listCursor++
		}
	case KeyK, KeyUp:
		if m.listCursor > 0 {
			m.listCursor--
		}
	case KeyEnter:
		return m.navigate(fmt.Sprintf("%s/%s/%d", m.state.Screen, m.entry.Name, m.listCursor+1))
	}
	return m, nil
}

func (m Model) handleReadingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		return m.back()

	case KeyEnter:
		// Retry after a failed fetch.
		if len(m.chapterData.Verses) == 0 && !m.loading && m.entry != nil {
			m.gen++
			m.loading = true
			return m, tea.Batch(m.fetchChapterCmd(m.gen, m.entryCatalog, m.entry.Name, m.state.Chapter), m.spin.Tick)
		}

	case KeyJ, KeyDown:
		if m.verseCursor < len(m.chapterData.Verses)-1 {
			m.verseCursor++
		}

	case KeyK, KeyUp:
		if m.verseCursor > 0 {
			m.verseCursor--
		}

	case KeyNext:
		if m.state.Chapter < m.entry.Chapters {
			return m.navigate(fmt.Sprintf("%s/%s/%d", m.state.Screen, m.entry.Name, m.state.Chapter+1))
		}

	case KeyPrev:
		if m.state.Chapter > 1 {
			return m.navigate(fmt.Sprintf("%s/%s/%d", m.state.Screen, m.entry.Name, m.state.Chapter-1))
		}

	case KeyReadOut:
		if m.player != nil && len(m.chapterData.Verses) > 0 {
			if err := m.player.Speak(m.chapterText()); err != nil {
				m.notice = "Leitura em voz alta indisponível"
				return m, clearNoticeCmd()
			}
		}

	case KeyStop:
		if m.player != nil {
			m.player.Stop()
		}

	case "m":
		if m.verseCursor < len(m.chapterData.Verses) {
			m.startInput(inputNote, "Anotação (vazio apaga)")
			key := m.currentNoteKey()
			if note, ok := m.store.Note(key); ok {
				m.input.SetValue(note)
			}
		}
	}
	return m, nil
}

func (m Model) currentNoteKey() string {
	verse := m.chapterData.Verses[m.verseCursor].Verse
	return store.NoteKey(m.entry.Name, m.state.Chapter, verse)
}

func (m Model) handleNoteInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.inputMode = inputNone
		m.input.Blur()
		return m, nil
	case KeyEnter:
		if err := m.store.SetNote(m.currentNoteKey(), m.input.Value()); err != nil {
			m.notice = "Não foi possível salvar a anotação"
		} else if strings.TrimSpace(m.input.Value()) == "" {
			m.notice = "Anotação removida"
		} else {
			m.notice = "Anotação salva"
		}
		m.inputMode = inputNone
		m.input.Blur()
		return m, clearNoticeCmd()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.inputMode = inputNone
		m.input.Blur()
		return m, nil
	case KeyEnter:
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return m, nil
		}
		m.inputMode = inputNone
		m.input.Blur()
		m.searchOpen = true
		m.gen++
		m.loading = true
		return m, tea.Batch(m.searchCmd(m.gen, query), m.spin.Tick)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSearchResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.searchOpen = false
		m.searchResults = nil
	case KeyJ, KeyDown:
		if m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
	case KeyK, KeyUp:
		if m.searchCursor > 0 {
			m.searchCursor--
		}
	case KeyEnter:
		if m.searchCursor < len(m.searchResults) {
			r := m.searchResults[m.searchCursor]
			m.searchOpen = false
			return m.navigate(fmt.Sprintf("bible/%s/%d", r.Book, r.Chapter))
		}
	}
	return m, nil
}

func (m Model) handleDictionaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		return m.back()
	case KeyEnter:
		term := strings.TrimSpace(m.input.Value())
		if term == "" {
			return m, nil
		}
		m.input.SetValue("")
		m.gen++
		m.loading = true
		return m, tea.Batch(m.definitionCmd(m.gen, term), m.spin.Tick)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleAssistantKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		return m.back()
	case KeyEnter:
		if m.assistPending {
			return m, nil
		}
		question := strings.TrimSpace(m.input.Value())
		if question == "" {
			return m, nil
		}
		m.input.SetValue("")
		history := append([]content.Turn(nil), m.history...)
		m.history = append(m.history, content.Turn{Role: "user", Text: question})
		m.assistPending = true
		m.gen++
		return m, tea.Batch(m.assistantCmd(m.gen, question, history), m.spin.Tick)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		return m.back()
	case KeyEnter:
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.chat == nil {
			return m, nil
		}
		m.input.SetValue("")
		if _, err := m.chat.SendText(m.userID, m.userName, text); err != nil {
			m.notice = "Não foi possível enviar a mensagem"
			return m, clearNoticeCmd()
		}
		m.messages = m.chat.Messages()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleRadioKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		return m.back()
	case KeyJ, KeyDown:
		if m.radioCursor < len(radio.Stations)-1 {
			m.radioCursor++
		}
	case KeyK, KeyUp:
		if m.radioCursor > 0 {
			m.radioCursor--
		}
	case KeyEnter:
		if m.player != nil {
			if err := m.player.Play(radio.Stations[m.radioCursor]); err != nil {
				m.notice = "Não foi possível sintonizar a rádio"
				return m, clearNoticeCmd()
			}
		}
	case KeyStop:
		if m.player != nil {
			m.player.Stop()
		}
	}
	return m, nil
}

func (m Model) handleCoursesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.courseView {
	case courseList:
		return m.handleCourseListKey(msg)
	case courseCode:
		return m.handleCourseCodeKey(msg)
	case courseSyllabus:
		return m.handleSyllabusKey(msg)
	case courseLesson:
		return m.handleLessonKey(msg)
	default:
		return m.handleCourseQuizKey(msg)
	}
}

func (m Model) handleCourseListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		return m.back()
	case KeyJ, KeyDown:
		if m.courseCursor < len(Courses)-1 {
			m.courseCursor++
		}
	case KeyK, KeyUp:
		if m.courseCursor > 0 {
			m.courseCursor--
		}
	case KeyEnter:
		course := Courses[m.courseCursor]
		m.course = course
		if course.Locked && !m.store.CourseUnlocked(course.ID) {
			m.courseView = courseCode
			m.startInput(inputCourseCode, "Código de acesso")
			return m, nil
		}
		return m.startSyllabus()
	}
	return m, nil
}

func (m Model) startSyllabus() (Model, tea.Cmd) {
	m.gen++
	m.loading = true
	return m, tea.Batch(m.syllabusCmd(m.gen, m.course.Title), m.spin.Tick)
}

func (m Model) handleCourseCodeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.courseView = courseList
		m.inputMode = inputNone
		m.input.Blur()
		return m, nil
	case KeyEnter:
		code := m.input.Value()
		m.inputMode = inputNone
		m.input.Blur()
		if !m.store.VerifyAccessCode(m.course.ID, code) {
			m.courseView = courseList
			m.notice = "Código inválido"
			return m, clearNoticeCmd()
		}
		return m.startSyllabus()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSyllabusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.courseView = courseList
	case KeyJ, KeyDown:
		if m.moduleCursor < len(m.syllabus)-1 {
			m.moduleCursor++
		}
	case KeyK, KeyUp:
		if m.moduleCursor > 0 {
			m.moduleCursor--
		}
	case KeyEnter:
		if m.moduleCursor < len(m.syllabus) {
			m.gen++
			m.loading = true
			return m, tea.Batch(m.lessonCmd(m.gen, m.course.Title, m.syllabus[m.moduleCursor].Title), m.spin.Tick)
		}
	}
	return m, nil
}

func (m Model) handleLessonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.courseView = courseSyllabus
	case KeyJ, KeyDown:
		m.lessonScroll++
	case KeyK, KeyUp:
		if m.lessonScroll > 0 {
			m.lessonScroll--
		}
	case "t":
		m.gen++
		m.loading = true
		return m, tea.Batch(m.courseQuizCmd(m.gen, m.lesson.Content), m.spin.Tick)
	}
	return m, nil
}

func (m Model) handleCourseQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.courseQIdx >= len(m.courseQs) {
		// Finished: any key returns to the lesson.
		switch msg.String() {
		case KeyBack, KeyEnter:
			m.courseView = courseLesson
		}
		return m, nil
	}

	q := m.courseQs[m.courseQIdx]
	switch msg.String() {
	case KeyBack:
		m.courseView = courseLesson
	case KeyJ, KeyDown:
		if !m.quizAnswered && m.quizCursor < len(q.Options)-1 {
			m.quizCursor++
		}
	case KeyK, KeyUp:
		if !m.quizAnswered && m.quizCursor > 0 {
			m.quizCursor--
		}
	case KeyEnter:
		if !m.quizAnswered {
			m.quizAnswered = true
			m.quizChoice = m.quizCursor
			if m.quizCursor == q.CorrectOptionIndex {
				m.courseScore++
			}
			return m, nil
		}
		m.quizAnswered = false
		m.quizCursor = 0
		m.courseQIdx++
		if m.courseQIdx >= len(m.courseQs) {
			key := m.course.ID + ":" + m.lesson.Title
			if err := m.store.SaveCourseProgress(key, m.courseScore); err != nil {
				m.log.Warn("save course progress", zap.Error(err))
			}
		}
	}
	return m, nil
}

func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quizQ == nil {
		switch msg.String() {
		case KeyBack:
			return m.back()
		case KeyJ, KeyDown:
			if m.quizLevel < len(quizLevels)-1 {
				m.quizLevel++
			}
		case KeyK, KeyUp:
			if m.quizLevel > 0 {
				m.quizLevel--
			}
		case KeyEnter:
			m.gen++
			m.loading = true
			return m, tea.Batch(m.quizCmd(m.gen, quizLevels[m.quizLevel]), m.spin.Tick)
		}
		return m, nil
	}

	switch msg.String() {
	case KeyBack:
		m.quizQ = nil
	case KeyJ, KeyDown:
		if !m.quizAnswered && m.quizCursor < len(m.quizQ.Options)-1 {
			m.quizCursor++
		}
	case KeyK, KeyUp:
		if !m.quizAnswered && m.quizCursor > 0 {
			m.quizCursor--
		}
	case KeyEnter:
		if !m.quizAnswered {
			m.quizAnswered = true
			m.quizChoice = m.quizCursor
			m.quizTotal++
			if m.quizCursor == m.quizQ.CorrectOptionIndex {
				m.quizScore++
			}
			return m, nil
		}
		m.gen++
		m.loading = true
		m.quizQ = nil
		m.quizAnswered = false
		return m, tea.Batch(m.quizCmd(m.gen, quizLevels[m.quizLevel]), m.spin.Tick)
	}
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const rows = 3
	switch msg.String() {
	case KeyBack:
		return m.back()
	case KeyJ, KeyDown:
		if m.listCursor < rows-1 {
			m.listCursor++
		}
	case KeyK, KeyUp:
		if m.listCursor > 0 {
			m.listCursor--
		}
	case KeyEnter, KeyToggle:
		switch m.listCursor {
		case 0:
			m.version = nextVersion(m.version)
			if err := m.store.SetVersionPref(m.version); err != nil {
				m.log.Warn("save version pref", zap.Error(err))
			}
		case 1:
			if err := m.store.SetSoundEnabled(!m.store.SoundEnabled()); err != nil {
				m.log.Warn("save sound pref", zap.Error(err))
			}
		case 2:
			if err := m.store.SetRememberDevice(!m.store.RememberDevice()); err != nil {
				m.log.Warn("save remember pref", zap.Error(err))
			}
		}
	}
	return m, nil
}

var versionOrder = []string{"ACF", "ARA", "NVI", "NTLH"}

func nextVersion(current string) string {
	for i, v := range versionOrder {
		if v == current {
			return versionOrder[(i+1)%len(versionOrder)]
		}
	}
	return versionOrder[0]
}
