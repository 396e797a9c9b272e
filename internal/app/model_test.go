package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verboapp/verbo/internal/chat"
	"github.com/verboapp/verbo/internal/config"
	"github.com/verboapp/verbo/internal/content"
	"github.com/verboapp/verbo/internal/nav"
	"github.com/verboapp/verbo/internal/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	log := zap.NewNop()
	m := New(config.Default(), st, nil, chat.NewService(st, log), nil, log)
	m.width = 100
	m.height = 30
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg(tea.Key{Type: tea.KeyEnter})
	case "esc":
		return tea.KeyMsg(tea.Key{Type: tea.KeyEscape})
	case "tab":
		return tea.KeyMsg(tea.Key{Type: tea.KeyTab})
	default:
		return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	var updated tea.Model = m
	for _, k := range keys {
		updated, cmd = updated.(Model).Update(keyMsg(k))
	}
	return updated.(Model), cmd
}

// login drives a test model through a successful login.
func login(t *testing.T, m Model, email, pass string) Model {
	t.Helper()
	m, _ = press(m, "enter") // landing -> login form
	m.loginName.SetValue("Tester")
	m.loginEmail.SetValue(email)
	m.loginPass.SetValue(pass)
	m.loginFocus = 2
	m, _ = press(m, "enter")
	return m
}

func TestNewModelStartsOnLanding(t *testing.T) {
	m := newTestModel(t)
	if m.authed {
		t.Error("new model should not be authenticated")
	}
	if m.state.Screen != nav.ScreenLanding {
		t.Errorf("expected landing, got %s", m.state.Screen)
	}
}

func TestLoginSuccess(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")

	if !m.authed {
		t.Fatalf("login failed: %s", m.loginError)
	}
	if m.state.Screen != nav.ScreenMenu {
		t.Errorf("expected menu after login, got %s", m.state.Screen)
	}
	logs := m.store.AccessLogs()
	if len(logs) != 1 || logs[0].Email != "ana@example.com" {
		t.Errorf("access log not written: %+v", logs)
	}
	users := m.store.RegisteredUsers()
	if len(users) != 1 || users[0].Email != "ana@example.com" {
		t.Errorf("user not registered: %+v", users)
	}
	if !m.store.RememberDevice() {
		t.Error("remember-device flag should be set after login")
	}
}

func TestLoginRejectsShortPassword(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "abc")

	if m.authed {
		t.Error("short password must be rejected")
	}
	if m.loginError == "" {
		t.Error("expected a validation error")
	}
}

func TestMaintenanceBlocksRegularLogin(t *testing.T) {
	m := newTestModel(t)
	if err := m.store.SetMaintenance(true); err != nil {
		t.Fatal(err)
	}

	m = login(t, m, "ana@example.com", "segredo")
	if m.authed {
		t.Error("maintenance mode must reject regular logins")
	}

	m = login(t, m, "admin@iasd.com", "admin123")
	if !m.authed {
		t.Fatalf("backdoor should pass in maintenance mode: %s", m.loginError)
	}
	if !m.isAdminUser {
		t.Error("backdoor login should mark the session as admin")
	}
}

func TestMenuNavigatesToBible(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")

	m, _ = press(m, "enter") // first menu row is the bible
	if m.state.Screen != nav.ScreenBible {
		t.Fatalf("expected bible, got %s", m.state.Screen)
	}
	if m.router.Fragment() != "bible" {
		t.Errorf("fragment = %q", m.router.Fragment())
	}
}

func TestOpenChapterPersistsLastReadAndFetches(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")

	m, cmd := m.navigate("bible/Gênesis/3")
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
	if !m.loading {
		t.Error("model should be loading")
	}
	lr := m.store.LastReadPointer()
	if lr == nil || lr.Entity != "Gênesis" || lr.Chapter != 3 {
		t.Errorf("last read not persisted: %+v", lr)
	}
}

func TestStaleChapterResponseDropped(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")

	m, _ = m.navigate("bible/Gênesis/3")
	oldGen := m.gen
	m, _ = m.navigate("bible/Gênesis/4")

	stale := content.ChapterData{Book: "Gênesis", Chapter: 3, Verses: []content.Verse{{Verse: 1, Text: "velho"}}}
	updated, _ := m.Update(ChapterMsg{Gen: oldGen, Data: stale})
	m = updated.(Model)
	if len(m.chapterData.Verses) != 0 {
		t.Error("stale response must be discarded")
	}
	if !m.loading {
		t.Error("still waiting on the newest request")
	}

	fresh := content.ChapterData{Book: "Gênesis", Chapter: 4, Verses: []content.Verse{{Verse: 1, Text: "novo"}}}
	updated, _ = m.Update(ChapterMsg{Gen: m.gen, Data: fresh})
	m = updated.(Model)
	if len(m.chapterData.Verses) != 1 || m.chapterData.Verses[0].Text != "novo" {
		t.Errorf("fresh response not applied: %+v", m.chapterData)
	}
}

func TestChapterErrorShowsNotice(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")
	m, _ = m.navigate("bible/Gênesis/3")

	updated, _ := m.Update(ChapterMsg{Gen: m.gen, Err: errors.New("boom")})
	m = updated.(Model)
	if m.loading {
		t.Error("loading should clear on error")
	}
	if m.notice == "" {
		t.Error("expected an error notice")
	}
}

func TestUnknownEntityFallsBackToListing(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")

	m, cmd := m.navigate("bible/Atlântida/3")
	if cmd != nil {
		t.Error("unknown entity must not fetch")
	}
	if m.entry != nil {
		t.Error("no entry should resolve")
	}
	if m.state.Screen != nav.ScreenBible {
		t.Errorf("screen = %s", m.state.Screen)
	}
}

func TestAppLockBlocksNavigation(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")

	if _, err := m.store.ToggleAppLock(); err != nil {
		t.Fatal(err)
	}
	m.adminCfg = m.store.AdminSettings()

	m, _ = m.navigate("bible")
	if m.state.Screen != nav.ScreenMenu {
		t.Errorf("locked app must stay put, got %s", m.state.Screen)
	}
	if m.notice == "" {
		t.Error("expected a lock notice")
	}

	m, _ = m.navigate("admin")
	if m.state.Screen != nav.ScreenAdmin {
		t.Errorf("admin must stay reachable while locked, got %s", m.state.Screen)
	}
}

func TestBackOnMenuLogsOut(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")

	m, _ = press(m, "esc")
	if m.authed {
		t.Error("back on menu should log out")
	}
	if m.state.Screen != nav.ScreenLanding {
		t.Errorf("expected landing, got %s", m.state.Screen)
	}
	if m.router.Fragment() != "" {
		t.Errorf("router fragment should reset, got %q", m.router.Fragment())
	}
}

func TestBackPopsSegment(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")

	m, _ = m.navigate("bible/Gênesis/3")
	m, _ = press(m, "esc")
	if m.router.Fragment() != "bible/Gênesis" {
		t.Errorf("fragment = %q", m.router.Fragment())
	}
	m, _ = press(m, "esc")
	if m.router.Fragment() != "bible" {
		t.Errorf("fragment = %q", m.router.Fragment())
	}
	m, _ = press(m, "esc")
	if m.router.Fragment() != "menu" {
		t.Errorf("fragment = %q", m.router.Fragment())
	}
}

func TestPollUpdatesAdminConfig(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")

	updated, _ := m.Update(PolledMsg{Config: store.AdminConfig{AppLocked: true, AlertSound: true}})
	m = updated.(Model)
	if !m.adminCfg.AppLocked {
		t.Error("poll must refresh admin config")
	}
	if m.notice == "" {
		t.Error("a fresh lock should surface a notice")
	}
}

func TestAdminPasswordGate(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "admin@iasd.com", "admin123")

	m, _ = m.navigate("admin")
	if m.adminView != adminPass {
		t.Fatal("admin screen must start at the password gate")
	}

	m.input.SetValue("errada")
	m, _ = press(m, "enter")
	if m.adminView != adminPass {
		t.Error("wrong password must not open the admin menu")
	}

	m.input.SetValue("admin123")
	m, _ = press(m, "enter")
	if m.adminView != adminMenu {
		t.Error("default password should open the admin menu")
	}
}

func TestAdminMenuOpensWithoutChatService(t *testing.T) {
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	m := New(config.Default(), st, nil, nil, nil, zap.NewNop())
	m.width = 100
	m.height = 30
	m = login(t, m, "ana@example.com", "segredo")

	m, _ = m.navigate("admin")
	m.input.SetValue("admin123")
	m, _ = press(m, "enter")
	if m.adminView != adminMenu {
		t.Fatal("admin menu should open with no chat service wired")
	}
	if len(m.members) == 0 {
		t.Error("member list should fall back to the built-in roster")
	}
}

func TestAdminToggleAppLock(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "admin@iasd.com", "admin123")
	m, _ = m.navigate("admin")
	m.input.SetValue("admin123")
	m, _ = press(m, "enter")

	m.adminCursor = 2
	m, _ = press(m, "enter")
	if !m.store.AdminSettings().AppLocked {
		t.Error("toggle should lock the app")
	}
	m, _ = press(m, "enter")
	if m.store.AdminSettings().AppLocked {
		t.Error("second toggle should unlock")
	}
}

func TestQuizAnswerFlow(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")
	m, _ = m.navigate("quiz")

	q := content.QuizQuestion{
		Question:           "Quem construiu a arca?",
		Options:            []string{"Moisés", "Noé", "Abraão", "Davi"},
		CorrectOptionIndex: 1,
		Explanation:        "Gênesis 6",
	}
	m.gen++
	updated, _ := m.Update(QuizMsg{Gen: m.gen, Q: q})
	m = updated.(Model)
	if m.quizQ == nil {
		t.Fatal("question not loaded")
	}

	m, _ = press(m, "j", "enter")
	if !m.quizAnswered {
		t.Fatal("answer not registered")
	}
	if m.quizScore != 1 || m.quizTotal != 1 {
		t.Errorf("score %d/%d, want 1/1", m.quizScore, m.quizTotal)
	}

	m, cmd := press(m, "enter")
	if cmd == nil {
		t.Error("continuing should fetch the next question")
	}
	if m.quizQ != nil {
		t.Error("question should clear while the next one loads")
	}
}

func TestLockedCourseAsksForCode(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")
	m, _ = m.navigate("courses")

	m, _ = press(m, "j", "enter") // second course is locked
	if m.courseView != courseCode {
		t.Fatalf("expected the code prompt, got view %d", m.courseView)
	}

	m.input.SetValue("ABC123")
	m, _ = press(m, "enter")
	if m.courseView != courseList {
		t.Error("invalid code should bounce back to the list")
	}
	if m.notice == "" {
		t.Error("expected an invalid-code notice")
	}
}

func TestCourseCodeUnlocks(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")

	code, err := m.store.GrantCourseAccess("user_ana@example.com", Courses[1].ID)
	if err != nil {
		t.Fatal(err)
	}

	m, _ = m.navigate("courses")
	m, _ = press(m, "j", "enter")
	m.input.SetValue(code)
	m, cmd := press(m, "enter")
	if cmd == nil {
		t.Error("valid code should start the syllabus fetch")
	}
	if !m.store.CourseUnlocked(Courses[1].ID) {
		t.Error("course should be unlocked")
	}
}

func TestChatSendAppearsInHistory(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")
	m, _ = m.navigate("chat")

	m.input.SetValue("A paz a todos")
	m, _ = press(m, "enter")

	found := false
	for _, msg := range m.messages {
		if msg.Text == "A paz a todos" && msg.UserID == m.userID {
			found = true
		}
	}
	if !found {
		t.Error("sent message not visible in history")
	}
}

func TestNoteSavedFromReadingView(t *testing.T) {
	m := newTestModel(t)
	m = login(t, m, "ana@example.com", "segredo")
	m, _ = m.navigate("bible/Gênesis/1")

	data := content.ChapterData{Book: "Gênesis", Chapter: 1, Verses: []content.Verse{{Verse: 1, Text: "No princípio"}}}
	updated, _ := m.Update(ChapterMsg{Gen: m.gen, Data: data})
	m = updated.(Model)

	m, _ = press(m, "m")
	if m.inputMode != inputNote {
		t.Fatal("note input should open")
	}
	m.input.SetValue("estudar depois")
	m, _ = press(m, "enter")

	note, ok := m.store.Note(store.NoteKey("Gênesis", 1, 1))
	if !ok || note != "estudar depois" {
		t.Errorf("note = %q, ok=%v", note, ok)
	}
}

func TestViewRendersWithoutPanic(t *testing.T) {
	m := newTestModel(t)
	if m.View() == "" {
		t.Error("landing view should render")
	}
	m = login(t, m, "ana@example.com", "segredo")
	for _, path := range []string{"menu", "bible", "dictionary", "assistant", "radios", "chat", "courses", "quiz", "settings", "admin"} {
		m, _ = m.navigate(path)
		if m.View() == "" {
			t.Errorf("empty view for %s", path)
		}
	}
}
