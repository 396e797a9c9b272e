package store

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	defaultAdminPassword = "admin123"
	maxAccessLogs        = 50
)

// AdminSettings returns the admin config, with defaults when unset.
func (s *Store) AdminSettings() AdminConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := AdminConfig{AlertSound: true}
	s.getJSON(keyAdminConfig, &cfg)
	return cfg
}

// SetAdminSettings replaces the admin config wholesale.
func (s *Store) SetAdminSettings(cfg AdminConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putJSON(keyAdminConfig, cfg)
}

// ToggleAppLock flips the global navigation lock, returning the new state.
func (s *Store) ToggleAppLock() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := AdminConfig{AlertSound: true}
	s.getJSON(keyAdminConfig, &cfg)
	cfg.AppLocked = !cfg.AppLocked
	if err := s.putJSON(keyAdminConfig, cfg); err != nil {
		return cfg.AppLocked, err
	}
	return cfg.AppLocked, nil
}

// AdminPassword returns the stored admin password, defaulting to the
// factory password.
func (s *Store) AdminPassword() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok := s.getRaw(keyAdminPass); ok && raw != "" {
		return raw
	}
	return defaultAdminPassword
}

// SetAdminPassword replaces the admin password.
func (s *Store) SetAdminPassword(pass string) error {
	if pass == "" {
		return fmt.Errorf("admin password must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putRaw(keyAdminPass, pass)
}

// ResetAdminPassword restores the factory password.
func (s *Store) ResetAdminPassword() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putRaw(keyAdminPass, defaultAdminPassword)
}

// Maintenance reports whether maintenance mode is on.
func (s *Store) Maintenance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getBool(keyMaintenance, false)
}

// SetMaintenance flips maintenance mode.
func (s *Store) SetMaintenance(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putBool(keyMaintenance, enabled)
}

// LogAccess prepends a login record, truncating the log to its cap.
func (s *Store) LogAccess(email, deviceInfo string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var logs []AccessLog
	s.getJSON(keyAccessLogs, &logs)

	entry := AccessLog{
		ID:         fmt.Sprintf("%d", time.Now().UnixMilli()),
		Email:      email,
		Timestamp:  time.Now().Format(time.RFC3339),
		DeviceInfo: deviceInfo,
	}
	logs = append([]AccessLog{entry}, logs...)
	if len(logs) > maxAccessLogs {
		logs = logs[:maxAccessLogs]
	}
	if err := s.putJSON(keyAccessLogs, logs); err != nil {
		s.log.Warn("write access log", zap.Error(err))
	}
}

// AccessLogs returns the login log, most recent first.
func (s *Store) AccessLogs() []AccessLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	var logs []AccessLog
	s.getJSON(keyAccessLogs, &logs)
	return logs
}

// ClearAccessLogs removes the login log.
func (s *Store) ClearAccessLogs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteKey(keyAccessLogs)
}

// RegisteredUsers returns every login-registered account.
func (s *Store) RegisteredUsers() []RegisteredUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []RegisteredUser
	s.getJSON(keyRegisteredUsers, &users)
	return users
}

// RegisterLogin upserts a user by email, stamping the login time.
func (s *Store) RegisterLogin(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []RegisteredUser
	s.getJSON(keyRegisteredUsers, &users)

	now := time.Now().Format(time.RFC3339)
	for i := range users {
		if users[i].Email == email {
			users[i].LastLogin = now
			users[i].Online = true
			return s.putJSON(keyRegisteredUsers, users)
		}
	}
	users = append(users, RegisteredUser{
		ID:          fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Name:        name,
		Email:       email,
		AvatarColor: "amber",
		Online:      true,
		LastLogin:   now,
	})
	return s.putJSON(keyRegisteredUsers, users)
}

// RemoveRegisteredUser deletes an account by email, returning the remainder.
func (s *Store) RemoveRegisteredUser(email string) []RegisteredUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []RegisteredUser
	s.getJSON(keyRegisteredUsers, &users)

	out := users[:0]
	for _, u := range users {
		if u.Email != email {
			out = append(out, u)
		}
	}
	if err := s.putJSON(keyRegisteredUsers, out); err != nil {
		s.log.Warn("remove registered user", zap.Error(err))
	}
	return out
}
