package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verboapp/verbo/internal/content"
	"github.com/verboapp/verbo/internal/nav"
	"github.com/verboapp/verbo/internal/radio"
	"github.com/verboapp/verbo/internal/ui"
)

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Carregando..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	var body string
	switch {
	case !m.authed && !m.loginActive:
		body = m.renderLanding()
	case !m.authed:
		body = m.renderLogin()
	default:
		body = m.renderScreen()
	}
	sections = append(sections, body)

	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	if m.notice != "" {
		sections = append(sections, ui.ErrorTextStyle.Render(m.notice))
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderScreen() string {
	switch m.state.Screen {
	case nav.ScreenMenu:
		return m.renderMenu()
	case nav.ScreenBible, nav.ScreenLibrary, nav.ScreenApocrypha:
		return m.renderReader()
	case nav.ScreenDictionary:
		return m.renderDictionary()
	case nav.ScreenAssistant:
		return m.renderAssistant()
	case nav.ScreenRadios:
		return m.renderRadios()
	case nav.ScreenChat:
		return m.renderChat()
	case nav.ScreenCourses:
		return m.renderCourses()
	case nav.ScreenQuiz:
		return m.renderQuiz()
	case nav.ScreenSettings:
		return m.renderSettings()
	case nav.ScreenAdmin:
		return m.renderAdmin()
	default:
		return m.renderLanding()
	}
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("VERBO")
	sub := ui.DimStyle.Render(" — Bíblia de Estudo")

	var badges string
	if m.adminCfg.AppLocked {
		badges += " " + ui.LockBadgeStyle.Render("BLOQUEADO")
	}
	if m.isAdminUser {
		badges += " " + ui.AdminBadgeStyle.Render("ADMIN")
	}
	if m.player != nil {
		if owner, st := m.player.Current(); owner == radio.OwnerStation && st != nil {
			badges += " " + ui.LiveBadgeStyle.Render("♪ "+st.Name)
		}
	}
	if m.loading || m.assistPending {
		badges += " " + m.spin.View()
	}
	return title + sub + badges
}

func (m Model) renderLanding() string {
	lines := []string{
		"",
		ui.TitleStyle.Render("  Bem-vindo ao Verbo"),
		ui.TextStyle.Render("  Leitura, estudo e comunidade em um só lugar."),
		"",
		ui.DimStyle.Render("  Pressione Enter para entrar"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLogin() string {
	label := func(i int, s string) string {
		if m.loginFocus == i {
			return ui.SelectedStyle.Render(s)
		}
		return ui.InputLabelStyle.Render(s)
	}
	lines := []string{
		ui.PanelTitleStyle.Render("  Entrar"),
		"",
		"  " + label(0, "Nome ") + m.loginName.View(),
		"  " + label(1, "E-mail") + " " + m.loginEmail.View(),
		"  " + label(2, "Senha ") + m.loginPass.View(),
	}
	if m.loginError != "" {
		lines = append(lines, "", "  "+ui.ErrorTextStyle.Render(m.loginError))
	}
	if m.store.Maintenance() {
		lines = append(lines, "", "  "+ui.ErrorTextStyle.Render("Sistema em manutenção"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderMenu() string {
	var lines []string
	lines = append(lines, ui.PanelTitleStyle.Render("  Menu Principal"))
	for i, item := range m.menuItemsVisible() {
		if i == m.menuCursor {
			lines = append(lines, ui.SelectedStyle.Render("  > "+item.Title))
		} else {
			lines = append(lines, ui.TextStyle.Render("    "+item.Title))
		}
	}
	if m.reflection != nil {
		lines = append(lines, "", ui.HeaderStyle.Render("  Reflexão do Dia — "+m.reflection.Reference))
		for _, l := range wrapText(m.reflection.Text, max(20, m.width-6)) {
			lines = append(lines, ui.TextStyle.Render("  "+l))
		}
		for _, l := range wrapText(m.reflection.Reflection, max(20, m.width-6)) {
			lines = append(lines, ui.DimStyle.Render("  "+l))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderReader() string {
	if m.inputMode == inputSearch {
		return ui.PanelTitleStyle.Render("  Buscar") + "\n\n  " + m.input.View()
	}
	if m.searchOpen {
		return m.renderSearchResults()
	}
	switch {
	case m.state.Chapter > 0 && m.entry != nil:
		return m.renderChapter()
	case m.state.EntityName != "" && m.entry != nil:
		return m.renderChapterList()
	case m.state.EntityName != "":
		return ui.DimStyle.Render("  Obra desconhecida: " + m.state.EntityName + "\n  Escolha na lista (Esc)")
	default:
		return m.renderBookList()
	}
}

func (m Model) screenTitle() string {
	switch m.state.Screen {
	case nav.ScreenBible:
		return "Bíblia Sagrada"
	case nav.ScreenApocrypha:
		return "Apócrifos"
	default:
		return "Biblioteca"
	}
}

func (m Model) renderBookList() string {
	entries := m.readerEntries()
	var lines []string
	lines = append(lines, ui.PanelTitleStyle.Render("  "+m.screenTitle()))

	visible := m.bodyHeight() - 1
	start := 0
	if m.listCursor >= visible {
		start = m.listCursor - visible + 1
	}
	for i := start; i < len(entries) && i < start+visible; i++ {
		e := entries[i]
		row := fmt.Sprintf("%s (%d)", e.Name, e.Chapters)
		if i == m.listCursor {
			lines = append(lines, ui.SelectedStyle.Render("  > "+row))
		} else {
			lines = append(lines, ui.TextStyle.Render("    "+row))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderChapterList() string {
	var lines []string
	lines = append(lines, ui.PanelTitleStyle.Render("  "+m.entry.Name))
	visible := m.bodyHeight() - 1
	start := 0
	if m.listCursor >= visible {
		start = m.listCursor - visible + 1
	}
	for ch := start + 1; ch <= m.entry.Chapters && ch <= start+visible; ch++ {
		row := fmt.Sprintf("Capítulo %d", ch)
		if ch == m.listCursor+1 {
			lines = append(lines, ui.SelectedStyle.Render("  > "+row))
		} else {
			lines = append(lines, ui.TextStyle.Render("    "+row))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderChapter() string {
	var lines []string
	title := fmt.Sprintf("  %s %d", m.entry.Name, m.state.Chapter)
	lines = append(lines, ui.PanelTitleStyle.Render(title)+ui.DimStyle.Render("  ["+m.version+"]"))

	if m.loading {
		lines = append(lines, "", "  "+m.spin.View()+ui.DimStyle.Render(" gerando o texto..."))
		return strings.Join(lines, "\n")
	}
	if len(m.chapterData.Verses) == 0 {
		lines = append(lines, "", ui.DimStyle.Render("  Sem conteúdo. [enter] tentar novamente"))
		return strings.Join(lines, "\n")
	}

	width := max(20, m.width-8)
	for i, v := range m.chapterData.Verses {
		num := ui.VerseNumStyle.Render(fmt.Sprintf("%3d ", v.Verse))
		wrapped := wrapText(v.Text, width)
		style := ui.TextStyle
		if i == m.verseCursor {
			style = ui.SelectedStyle
		}
		lines = append(lines, "  "+num+style.Render(wrapped[0]))
		for _, wl := range wrapped[1:] {
			lines = append(lines, "      "+style.Render(wl))
		}
		if note, ok := m.store.Note(m.noteKeyFor(v.Verse)); ok {
			lines = append(lines, ui.DimStyle.Render("      ✎ "+note))
		}
	}

	if m.inputMode == inputNote {
		lines = append(lines, "", "  "+ui.InputLabelStyle.Render("Anotação: ")+m.input.View())
	}
	return m.scrollToVerse(lines)
}

func (m Model) noteKeyFor(verse int) string {
	return fmt.Sprintf("%s-%d-%d", m.entry.Name, m.state.Chapter, verse)
}

// scrollToVerse clips the chapter body around the selected verse.
func (m Model) scrollToVerse(lines []string) string {
	visible := m.bodyHeight()
	if len(lines) <= visible {
		return strings.Join(lines, "\n")
	}
	// Rough anchor: verses wrap, so scroll proportionally.
	anchor := 1
	if len(m.chapterData.Verses) > 0 {
		anchor = 1 + m.verseCursor*(len(lines)-1)/len(m.chapterData.Verses)
	}
	start := anchor - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > len(lines) {
		start = len(lines) - visible
	}
	return strings.Join(lines[start:start+visible], "\n")
}

func (m Model) renderSearchResults() string {
	var lines []string
	lines = append(lines, ui.PanelTitleStyle.Render("  Resultados da busca"))
	if m.loading {
		lines = append(lines, "", "  "+m.spin.View()+ui.DimStyle.Render(" buscando..."))
		return strings.Join(lines, "\n")
	}
	if len(m.searchResults) == 0 {
		lines = append(lines, "", ui.DimStyle.Render("  Nada encontrado"))
		return strings.Join(lines, "\n")
	}
	for i, r := range m.searchResults {
		ref := fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
		row := ui.HeaderStyle.Render(ref) + " " + truncateToWidth(r.Text, max(20, m.width-len(ref)-8))
		if i == m.searchCursor {
			lines = append(lines, ui.SelectedStyle.Render("  > ")+row)
		} else {
			lines = append(lines, "    "+row)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDictionary() string {
	var lines []string
	lines = append(lines, ui.PanelTitleStyle.Render("  Dicionário Bíblico"))
	lines = append(lines, "", "  "+ui.InputLabelStyle.Render("Termo: ")+m.input.View())
	if m.loading {
		lines = append(lines, "", "  "+m.spin.View()+ui.DimStyle.Render(" consultando..."))
	} else if m.definition != "" {
		lines = append(lines, "", ui.HeaderStyle.Render("  "+m.defTerm))
		for _, l := range wrapText(m.definition, max(20, m.width-6)) {
			lines = append(lines, ui.TextStyle.Render("  "+l))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderAssistant() string {
	var lines []string
	lines = append(lines, ui.PanelTitleStyle.Render("  Assistente Bíblico"))
	width := max(20, m.width-8)
	for _, turn := range m.history {
		if turn.Role == "user" {
			lines = append(lines, ui.ChatSelfStyle.Render("  Você:"))
		} else {
			lines = append(lines, ui.ChatOtherStyle.Render("  Assistente:"))
		}
		for _, l := range wrapText(turn.Text, width) {
			lines = append(lines, ui.TextStyle.Render("    "+l))
		}
	}
	if m.assistPending {
		lines = append(lines, "  "+m.spin.View()+ui.DimStyle.Render(" pensando..."))
	}
	lines = clipTail(lines, m.bodyHeight()-2)
	lines = append(lines, "", "  "+ui.InputLabelStyle.Render("> ")+m.input.View())
	return strings.Join(lines, "\n")
}

func (m Model) renderChat() string {
	var lines []string
	lines = append(lines, ui.PanelTitleStyle.Render("  Chat da Comunidade"))
	width := max(20, m.width-10)
	for _, msg := range m.messages {
		name := ui.ChatOtherStyle.Render(msg.UserName)
		if msg.UserID == m.userID {
			name = ui.ChatSelfStyle.Render(msg.UserName)
		}
		ts := ui.TimestampStyle.Render(shortTime(msg.Timestamp))
		switch {
		case msg.Audio != "":
			lines = append(lines, "  "+ts+" "+name+ui.DimStyle.Render(" [áudio]"))
		default:
			wrapped := wrapText(msg.Text, width)
			lines = append(lines, "  "+ts+" "+name+": "+ui.TextStyle.Render(wrapped[0]))
			for _, wl := range wrapped[1:] {
				lines = append(lines, "            "+ui.TextStyle.Render(wl))
			}
		}
	}
	lines = clipTail(lines, m.bodyHeight()-2)
	lines = append(lines, "", "  "+ui.InputLabelStyle.Render("> ")+m.input.View())
	return strings.Join(lines, "\n")
}

func (m Model) renderRadios() string {
	var lines []string
	lines = append(lines, ui.PanelTitleStyle.Render("  Rádios Cristãs"))
	owner, current := radio.OwnerNone, (*radio.Station)(nil)
	if m.player != nil {
		owner, current = m.player.Current()
	}
	for i, st := range radio.Stations {
		row := st.Name + "  " + ui.DimStyle.Render(st.Genre)
		if owner == radio.OwnerStation && current != nil && current.ID == st.ID {
			row += " " + ui.LiveBadgeStyle.Render("▶ AO VIVO")
		}
		if i == m.radioCursor {
			lines = append(lines, ui.SelectedStyle.Render("  > ")+row)
		} else {
			lines = append(lines, "    "+row)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCourses() string {
	switch m.courseView {
	case courseCode:
		return ui.PanelTitleStyle.Render("  "+m.course.Title) + "\n\n" +
			ui.TextStyle.Render("  Este curso requer um código de acesso.") + "\n\n" +
			"  " + ui.InputLabelStyle.Render("Código: ") + m.input.View()

	case courseSyllabus:
		var lines []string
		lines = append(lines, ui.PanelTitleStyle.Render("  "+m.course.Title))
		for i, mod := range m.syllabus {
			row := fmt.Sprintf("%d. %s", mod.ID, mod.Title)
			if i == m.moduleCursor {
				lines = append(lines, ui.SelectedStyle.Render("  > "+row))
				for _, l := range wrapText(mod.Description, max(20, m.width-8)) {
					lines = append(lines, ui.DimStyle.Render("      "+l))
				}
			} else {
				lines = append(lines, ui.TextStyle.Render("    "+row))
			}
		}
		return strings.Join(lines, "\n")

	case courseLesson:
		var lines []string
		lines = append(lines, ui.PanelTitleStyle.Render("  "+m.lesson.Title))
		for _, l := range wrapText(m.lesson.Content, max(20, m.width-6)) {
			lines = append(lines, ui.TextStyle.Render("  "+l))
		}
		visible := m.bodyHeight() - 1
		if m.lessonScroll > 0 && m.lessonScroll < len(lines) {
			lines = lines[m.lessonScroll:]
		}
		if len(lines) > visible {
			lines = lines[:visible]
		}
		lines = append(lines, ui.DimStyle.Render("  [t] teste da lição"))
		return strings.Join(lines, "\n")

	case courseQuizzing:
		return m.renderCourseQuiz()

	default:
		var lines []string
		lines = append(lines, ui.PanelTitleStyle.Render("  Cursos"))
		progress := m.store.CourseProgress()
		for i, c := range Courses {
			row := c.Title
			if c.Locked && !m.store.CourseUnlocked(c.ID) {
				row += " " + ui.LockBadgeStyle.Render("🔒")
			}
			for key, score := range progress {
				if strings.HasPrefix(key, c.ID+":") {
					row += ui.DimStyle.Render(fmt.Sprintf("  (última nota: %d)", score))
					break
				}
			}
			if i == m.courseCursor {
				lines = append(lines, ui.SelectedStyle.Render("  > ")+row)
			} else {
				lines = append(lines, "    "+row)
			}
		}
		return strings.Join(lines, "\n")
	}
}

func (m Model) renderCourseQuiz() string {
	if m.courseQIdx >= len(m.courseQs) {
		return ui.PanelTitleStyle.Render("  Teste concluído") + "\n\n" +
			ui.TextStyle.Render(fmt.Sprintf("  Acertos: %d de %d", m.courseScore, len(m.courseQs)))
	}
	q := m.courseQs[m.courseQIdx]
	header := fmt.Sprintf("  Pergunta %d de %d", m.courseQIdx+1, len(m.courseQs))
	return ui.PanelTitleStyle.Render(header) + "\n" + m.renderQuestion(q)
}

func (m Model) renderQuiz() string {
	if m.quizQ == nil {
		var lines []string
		lines = append(lines, ui.PanelTitleStyle.Render("  Quiz Bíblico"))
		if m.quizTotal > 0 {
			lines = append(lines, ui.DimStyle.Render(fmt.Sprintf("  Acertos: %d de %d", m.quizScore, m.quizTotal)))
		}
		labels := []string{"Fácil", "Médio", "Difícil"}
		for i, l := range labels {
			if i == m.quizLevel {
				lines = append(lines, ui.SelectedStyle.Render("  > "+l))
			} else {
				lines = append(lines, ui.TextStyle.Render("    "+l))
			}
		}
		if m.loading {
			lines = append(lines, "", "  "+m.spin.View()+ui.DimStyle.Render(" gerando pergunta..."))
		}
		return strings.Join(lines, "\n")
	}
	return ui.PanelTitleStyle.Render("  Quiz Bíblico") + "\n" + m.renderQuestion(*m.quizQ)
}

func (m Model) renderQuestion(q content.QuizQuestion) string {
	var lines []string
	lines = append(lines, "")
	for _, l := range wrapText(q.Question, max(20, m.width-6)) {
		lines = append(lines, ui.TextStyle.Render("  "+l))
	}
	lines = append(lines, "")
	for i, opt := range q.Options {
		prefix := "    "
		style := ui.TextStyle
		if i == m.quizCursor && !m.quizAnswered {
			prefix = "  > "
			style = ui.SelectedStyle
		}
		if m.quizAnswered {
			switch i {
			case q.CorrectOptionIndex:
				style = ui.LiveBadgeStyle
			case m.quizChoice:
				style = ui.ErrorTextStyle
			}
		}
		lines = append(lines, prefix+style.Render(opt))
	}
	if m.quizAnswered {
		lines = append(lines, "")
		for _, l := range wrapText(q.Explanation, max(20, m.width-6)) {
			lines = append(lines, ui.DimStyle.Render("  "+l))
		}
		if q.Reference != "" {
			lines = append(lines, ui.HeaderStyle.Render("  "+q.Reference))
		}
		lines = append(lines, ui.DimStyle.Render("  Enter para continuar"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSettings() string {
	onOff := func(b bool) string {
		if b {
			return ui.LiveBadgeStyle.Render("ativado")
		}
		return ui.DimStyle.Render("desativado")
	}
	rows := []string{
		"Versão da Bíblia: " + ui.HeaderStyle.Render(m.version) + ui.DimStyle.Render(" ("+content.BibleVersions[m.version]+")"),
		"Sons do aplicativo: " + onOff(m.store.SoundEnabled()),
		"Lembrar este dispositivo: " + onOff(m.store.RememberDevice()),
	}
	var lines []string
	lines = append(lines, ui.PanelTitleStyle.Render("  Configurações"))
	for i, row := range rows {
		if i == m.listCursor {
			lines = append(lines, ui.SelectedStyle.Render("  > ")+row)
		} else {
			lines = append(lines, "    "+row)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderAdmin() string {
	switch m.adminView {
	case adminPass:
		return ui.PanelTitleStyle.Render("  Administração") + "\n\n" +
			"  " + ui.InputLabelStyle.Render("Senha: ") + m.input.View()

	case adminLogs:
		var lines []string
		lines = append(lines, ui.PanelTitleStyle.Render("  Logs de acesso")+ui.DimStyle.Render("  [x] limpar"))
		if len(m.logs) == 0 {
			lines = append(lines, ui.DimStyle.Render("  Nenhum acesso registrado"))
		}
		for i, l := range m.logs {
			row := ui.TimestampStyle.Render(shortTime(l.Timestamp)) + " " + l.Email + " " + ui.DimStyle.Render(l.DeviceInfo)
			if i == m.listCursor {
				lines = append(lines, ui.SelectedStyle.Render("  > ")+row)
			} else {
				lines = append(lines, "    "+row)
			}
		}
		return strings.Join(clipTail(lines, m.bodyHeight()), "\n")

	case adminUsers:
		var lines []string
		lines = append(lines, ui.PanelTitleStyle.Render("  Usuários registrados")+ui.DimStyle.Render("  [x] remover"))
		for i, u := range m.regUsers {
			row := u.Name + " " + ui.DimStyle.Render("<"+u.Email+">")
			if u.LastLogin != "" {
				row += ui.TimestampStyle.Render("  " + shortTime(u.LastLogin))
			}
			if i == m.listCursor {
				lines = append(lines, ui.SelectedStyle.Render("  > ")+row)
			} else {
				lines = append(lines, "    "+row)
			}
		}
		return strings.Join(lines, "\n")

	case adminBlocked:
		var lines []string
		lines = append(lines, ui.PanelTitleStyle.Render("  Usuários bloqueados")+ui.DimStyle.Render("  [enter] alternar"))
		blocked := map[string]bool{}
		for _, id := range m.blocked {
			blocked[id] = true
		}
		for i, u := range m.members {
			row := u.Name
			if !u.Online {
				row += " " + ui.DimStyle.Render("(offline)")
			}
			if blocked[u.ID] {
				row += " " + ui.LockBadgeStyle.Render("bloqueado")
			}
			if i == m.listCursor {
				lines = append(lines, ui.SelectedStyle.Render("  > ")+row)
			} else {
				lines = append(lines, "    "+row)
			}
		}
		return strings.Join(lines, "\n")

	case adminCodes:
		return m.renderAdminCodes()

	case adminFilter:
		var lines []string
		lines = append(lines, ui.PanelTitleStyle.Render("  Filtro de palavras")+ui.DimStyle.Render("  [a] adicionar  [x] remover"))
		if m.inputMode == inputFilterWord {
			lines = append(lines, "  "+ui.InputLabelStyle.Render("Palavra: ")+m.input.View())
		}
		if len(m.filterWords) == 0 {
			lines = append(lines, ui.DimStyle.Render("  Nenhuma palavra personalizada"))
		}
		for i, w := range m.filterWords {
			if i == m.listCursor {
				lines = append(lines, ui.SelectedStyle.Render("  > "+w))
			} else {
				lines = append(lines, ui.TextStyle.Render("    "+w))
			}
		}
		return strings.Join(lines, "\n")

	case adminNewPass:
		return ui.PanelTitleStyle.Render("  Alterar senha") + "\n\n" +
			"  " + ui.InputLabelStyle.Render("Nova senha: ") + m.input.View()

	case adminReset:
		return ui.PanelTitleStyle.Render("  Restaurar sistema") + "\n\n" +
			ui.ErrorTextStyle.Render("  Todos os dados serão apagados.") + "\n" +
			ui.DimStyle.Render("  Enter confirma, Esc cancela")

	default:
		var lines []string
		lines = append(lines, ui.PanelTitleStyle.Render("  Administração"))
		states := m.adminMenuStates()
		for i, item := range adminMenuItems {
			row := item
			if s := states[i]; s != "" {
				row += "  " + s
			}
			if i == m.adminCursor {
				lines = append(lines, ui.SelectedStyle.Render("  > ")+row)
			} else {
				lines = append(lines, "    "+row)
			}
		}
		return strings.Join(lines, "\n")
	}
}

// adminMenuStates renders the live value next to each toggle row.
func (m Model) adminMenuStates() []string {
	onOff := func(b bool) string {
		if b {
			return ui.LiveBadgeStyle.Render("ativado")
		}
		return ui.DimStyle.Render("desativado")
	}
	cfg := m.store.AdminSettings()
	states := make([]string, len(adminMenuItems))
	states[0] = onOff(cfg.AdminMode)
	states[1] = onOff(cfg.AlertSound)
	states[2] = onOff(cfg.AppLocked)
	states[3] = onOff(m.store.Maintenance())
	return states
}

func (m Model) renderAdminCodes() string {
	if m.grantedCode != "" {
		return ui.PanelTitleStyle.Render("  Código gerado") + "\n\n" +
			ui.TitleStyle.Render("  "+m.grantedCode) + "\n\n" +
			ui.DimStyle.Render("  Compartilhe com o aluno. Enter volta.")
	}

	var lines []string
	if m.grantStage == 0 {
		lines = append(lines, ui.PanelTitleStyle.Render("  Códigos de curso — escolha o usuário"))
		if len(m.regUsers) == 0 {
			lines = append(lines, ui.DimStyle.Render("  Nenhum usuário registrado"))
		}
		for i, u := range m.regUsers {
			row := u.Name + " " + ui.DimStyle.Render("<"+u.Email+">")
			if i == m.grantUser {
				lines = append(lines, ui.SelectedStyle.Render("  > ")+row)
			} else {
				lines = append(lines, "    "+row)
			}
		}
	} else {
		lines = append(lines, ui.PanelTitleStyle.Render("  Códigos de curso — escolha o curso"))
		for i, c := range Courses {
			if i == m.grantCourse {
				lines = append(lines, ui.SelectedStyle.Render("  > "+c.Title))
			} else {
				lines = append(lines, ui.TextStyle.Render("    "+c.Title))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	var parts []string
	key := func(k, desc string) string {
		return ui.FooterKeyStyle.Render(k) + ui.FooterDescStyle.Render(" "+desc)
	}

	if !m.authed {
		parts = append(parts, key("Enter", "Entrar"), key("Ctrl+C", "Sair"))
		return "  " + strings.Join(parts, "  ")
	}

	switch m.state.Screen {
	case nav.ScreenMenu:
		parts = append(parts, key("↑↓", "Navegar"), key("Enter", "Abrir"), key("r", "Reflexão"), key("c", "Continuar leitura"), key("Esc", "Sair"))
	case nav.ScreenBible, nav.ScreenLibrary, nav.ScreenApocrypha:
		if m.state.Chapter > 0 {
			parts = append(parts, key("n/p", "Capítulo"), key("r", "Ouvir"), key("m", "Anotar"), key("Esc", "Voltar"))
		} else {
			parts = append(parts, key("↑↓", "Navegar"), key("Enter", "Abrir"))
			if m.state.Screen == nav.ScreenBible {
				parts = append(parts, key("/", "Buscar"))
			}
			parts = append(parts, key("Esc", "Voltar"))
		}
	case nav.ScreenRadios:
		parts = append(parts, key("Enter", "Tocar/Parar"), key("s", "Silenciar"), key("Esc", "Voltar"))
	default:
		parts = append(parts, key("Esc", "Voltar"))
	}
	return "  " + strings.Join(parts, "  ")
}

// bodyHeight is the room left for the screen body.
func (m Model) bodyHeight() int {
	if m.height == 0 {
		return 20
	}
	// header, two dividers, optional notice, footer
	return max(5, m.height-5)
}

// Helpers

func shortTime(ts string) string {
	if len(ts) >= 16 {
		return ts[11:16]
	}
	return ts
}

func clipTail(lines []string, visible int) []string {
	if visible < 1 {
		visible = 1
	}
	if len(lines) <= visible {
		return lines
	}
	return lines[len(lines)-visible:]
}

func truncateToWidth(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 {
		return string(runes[:width-1]) + "…"
	}
	return s
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		} else {
			lines = append(lines, "")
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
