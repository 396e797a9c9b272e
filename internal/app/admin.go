package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verboapp/verbo/internal/chat"
	"github.com/verboapp/verbo/internal/store"
)

var adminMenuItems = []string{
	"Modo administrador",
	"Som de alerta",
	"Bloquear aplicativo",
	"Modo manutenção",
	"Logs de acesso",
	"Usuários registrados",
	"Usuários bloqueados",
	"Códigos de curso",
	"Filtro de palavras",
	"Alterar senha",
	"Restaurar sistema",
}

func (m Model) handleAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.adminView {
	case adminPass:
		return m.handleAdminPassKey(msg)
	case adminMenu:
		return m.handleAdminMenuKey(msg)
	case adminLogs:
		return m.handleAdminLogsKey(msg)
	case adminUsers:
		return m.handleAdminUsersKey(msg)
	case adminBlocked:
		return m.handleAdminBlockedKey(msg)
	case adminCodes:
		return m.handleAdminCodesKey(msg)
	case adminFilter:
		return m.handleAdminFilterKey(msg)
	case adminNewPass:
		return m.handleAdminNewPassKey(msg)
	default:
		return m.handleAdminResetKey(msg)
	}
}

func (m Model) handleAdminPassKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.inputMode = inputNone
		m.input.Blur()
		return m.back()
	case KeyEnter:
		if m.input.Value() != m.store.AdminPassword() {
			m.input.SetValue("")
			m.notice = "Senha incorreta"
			return m, clearNoticeCmd()
		}
		m.inputMode = inputNone
		m.input.Blur()
		m.enterAdminMenu()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// enterAdminMenu loads everything the admin sub-screens show.
func (m *Model) enterAdminMenu() {
	m.adminView = adminMenu
	m.adminCursor = 0
	m.logs = m.store.AccessLogs()
	m.regUsers = m.store.RegisteredUsers()
	m.blocked = m.store.BlockedUsers()
	m.members = chat.Roster
	if m.chat != nil {
		m.members = m.chat.Members()
	}
	m.filterWords = m.store.CustomFilterWords()
	m.grantStage = 0
	m.grantedCode = ""
}

func (m Model) handleAdminMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.adminView = adminPass
		return m.back()

	case KeyJ, KeyDown:
		if m.adminCursor < len(adminMenuItems)-1 {
			m.adminCursor++
		}

	case KeyK, KeyUp:
		if m.adminCursor > 0 {
			m.adminCursor--
		}

	case KeyEnter, KeyToggle:
		return m.applyAdminMenu(m.adminCursor, msg.String())
	}
	return m, nil
}

func (m Model) applyAdminMenu(row int, key string) (tea.Model, tea.Cmd) {
	switch row {
	case 0:
		cfg := m.store.AdminSettings()
		cfg.AdminMode = !cfg.AdminMode
		m.saveAdminSettings(cfg)
	case 1:
		cfg := m.store.AdminSettings()
		cfg.AlertSound = !cfg.AlertSound
		m.saveAdminSettings(cfg)
	case 2:
		locked, err := m.store.ToggleAppLock()
		if err != nil {
			m.log.Warn("toggle app lock", zap.Error(err))
			break
		}
		m.adminCfg.AppLocked = locked
	case 3:
		if err := m.store.SetMaintenance(!m.store.Maintenance()); err != nil {
			m.log.Warn("toggle maintenance", zap.Error(err))
		}
	case 4:
		if key == KeyEnter {
			m.adminView = adminLogs
			m.logs = m.store.AccessLogs()
			m.listCursor = 0
		}
	case 5:
		if key == KeyEnter {
			m.adminView = adminUsers
			m.regUsers = m.store.RegisteredUsers()
			m.listCursor = 0
		}
	case 6:
		if key == KeyEnter {
			m.adminView = adminBlocked
			m.blocked = m.store.BlockedUsers()
			m.listCursor = 0
		}
	case 7:
		if key == KeyEnter {
			m.adminView = adminCodes
			m.regUsers = m.store.RegisteredUsers()
			m.grantStage = 0
			m.grantUser = 0
			m.grantCourse = 0
			m.grantedCode = ""
		}
	case 8:
		if key == KeyEnter {
			m.adminView = adminFilter
			m.filterWords = m.store.CustomFilterWords()
			m.listCursor = 0
		}
	case 9:
		if key == KeyEnter {
			m.adminView = adminNewPass
			m.startInput(inputNewPass, "Nova senha de administrador")
		}
	case 10:
		if key == KeyEnter {
			m.adminView = adminReset
		}
	}
	return m, nil
}

func (m *Model) saveAdminSettings(cfg store.AdminConfig) {
	if err := m.store.SetAdminSettings(cfg); err != nil {
		m.log.Warn("save admin settings", zap.Error(err))
		return
	}
	m.adminCfg = cfg
}

func (m Model) handleAdminLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.adminView = adminMenu
	case KeyJ, KeyDown:
		if m.listCursor < len(m.logs)-1 {
			m.listCursor++
		}
	case KeyK, KeyUp:
		if m.listCursor > 0 {
			m.listCursor--
		}
	case KeyDelete:
		m.store.ClearAccessLogs()
		m.logs = nil
		m.listCursor = 0
	}
	return m, nil
}

func (m Model) handleAdminUsersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.adminView = adminMenu
	case KeyJ, KeyDown:
		if m.listCursor < len(m.regUsers)-1 {
			m.listCursor++
		}
	case KeyK, KeyUp:
		if m.listCursor > 0 {
			m.listCursor--
		}
	case KeyDelete:
		if m.listCursor < len(m.regUsers) {
			m.regUsers = m.store.RemoveRegisteredUser(m.regUsers[m.listCursor].Email)
			if m.listCursor >= len(m.regUsers) && m.listCursor > 0 {
				m.listCursor--
			}
		}
	}
	return m, nil
}

func (m Model) handleAdminBlockedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.adminView = adminMenu
	case KeyJ, KeyDown:
		if m.listCursor < len(m.members)-1 {
			m.listCursor++
		}
	case KeyK, KeyUp:
		if m.listCursor > 0 {
			m.listCursor--
		}
	case KeyEnter, KeyToggle:
		if len(m.members) > 0 {
			m.blocked = m.store.ToggleBlockUser(m.members[m.listCursor].ID)
		}
	}
	return m, nil
}

func (m Model) handleAdminCodesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.grantedCode != "" {
		switch msg.String() {
		case KeyBack, KeyEnter:
			m.grantedCode = ""
			m.grantStage = 0
		}
		return m, nil
	}

	switch msg.String() {
	case KeyBack:
		if m.grantStage == 1 {
			m.grantStage = 0
			return m, nil
		}
		m.adminView = adminMenu

	case KeyJ, KeyDown:
		if m.grantStage == 0 {
			if m.grantUser < len(m.regUsers)-1 {
				m.grantUser++
			}
		} else if m.grantCourse < len(Courses)-1 {
			m.grantCourse++
		}

	case KeyK, KeyUp:
		if m.grantStage == 0 {
			if m.grantUser > 0 {
				m.grantUser--
			}
		} else if m.grantCourse > 0 {
			m.grantCourse--
		}

	case KeyEnter:
		if m.grantStage == 0 {
			if len(m.regUsers) == 0 {
				m.notice = "Nenhum usuário registrado"
				return m, clearNoticeCmd()
			}
			m.grantStage = 1
			return m, nil
		}
		user := m.regUsers[m.grantUser]
		course := Courses[m.grantCourse]
		code, err := m.store.GrantCourseAccess(user.ID, course.ID)
		if err != nil {
			m.notice = "Não foi possível gerar o código"
			return m, clearNoticeCmd()
		}
		m.grantedCode = code
	}
	return m, nil
}

func (m Model) handleAdminFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputMode == inputFilterWord {
		switch msg.String() {
		case KeyBack:
			m.inputMode = inputNone
			m.input.Blur()
			return m, nil
		case KeyEnter:
			word := strings.TrimSpace(m.input.Value())
			m.inputMode = inputNone
			m.input.Blur()
			if word != "" && m.chat != nil {
				m.filterWords = m.chat.AddFilterWord(word)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case KeyBack:
		m.adminView = adminMenu
	case KeyJ, KeyDown:
		if m.listCursor < len(m.filterWords)-1 {
			m.listCursor++
		}
	case KeyK, KeyUp:
		if m.listCursor > 0 {
			m.listCursor--
		}
	case "a":
		m.startInput(inputFilterWord, "Palavra a filtrar")
	case KeyDelete:
		if m.listCursor < len(m.filterWords) && m.chat != nil {
			m.filterWords = m.chat.RemoveFilterWord(m.filterWords[m.listCursor])
			if m.listCursor >= len(m.filterWords) && m.listCursor > 0 {
				m.listCursor--
			}
		}
	}
	return m, nil
}

func (m Model) handleAdminNewPassKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.adminView = adminMenu
		m.inputMode = inputNone
		m.input.Blur()
		return m, nil
	case KeyEnter:
		pass := m.input.Value()
		m.inputMode = inputNone
		m.input.Blur()
		m.adminView = adminMenu
		if len(pass) < 4 {
			m.notice = "A senha deve ter pelo menos 4 caracteres"
			return m, clearNoticeCmd()
		}
		if err := m.store.SetAdminPassword(pass); err != nil {
			m.notice = "Não foi possível alterar a senha"
			return m, clearNoticeCmd()
		}
		m.notice = "Senha alterada"
		return m, clearNoticeCmd()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleAdminResetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyBack:
		m.adminView = adminMenu
	case KeyEnter:
		if err := m.store.FactoryReset(); err != nil {
			m.notice = "Não foi possível restaurar o sistema"
			m.adminView = adminMenu
			return m, clearNoticeCmd()
		}
		m.log.Info("factory reset performed")
		return m.logout(), nil
	}
	return m, nil
}
