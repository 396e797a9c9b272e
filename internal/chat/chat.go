// Package chat layers community-chat behavior over the persistence
// store: a fixed roster of sample members, profanity filtering for
// outgoing text, and visibility rules for blocked users.
package chat

import (
	"go.uber.org/zap"

	"github.com/verboapp/verbo/internal/store"
)

// User is a chat participant shown in the member list.
type User struct {
	ID          string
	Name        string
	AvatarColor string
	Online      bool
}

// Roster is the built-in community roster. Real logins are tracked
// separately by the store's registered-user list.
var Roster = []User{
	{ID: "user_1", Name: "Irmão João", AvatarColor: "#1d4ed8", Online: true},
	{ID: "user_2", Name: "Maria Madalena", AvatarColor: "#be185d", Online: true},
	{ID: "user_3", Name: "Paulo Apóstolo", AvatarColor: "#15803d", Online: false},
	{ID: "user_4", Name: "Débora Juíza", AvatarColor: "#7e22ce", Online: true},
	{ID: "user_5", Name: "Pedro Pescador", AvatarColor: "#c2410c", Online: true},
}

// selfAvatarColor marks messages sent from this device.
const selfAvatarColor = "#3e2723"

// Service mediates between the UI and the store for chat operations.
// The profanity filter is rebuilt whenever the custom word list changes.
type Service struct {
	store  *store.Store
	log    *zap.Logger
	filter *Filter
}

// NewService builds a Service with the filter compiled from the stored
// custom word list. A filter build failure is not fatal; messages then
// pass through unfiltered and the error is logged.
func NewService(st *store.Store, log *zap.Logger) *Service {
	s := &Service{store: st, log: log}
	s.reloadFilter()
	return s
}

func (s *Service) reloadFilter() {
	f, err := NewFilter(s.store.CustomFilterWords())
	if err != nil {
		s.log.Warn("profanity filter build failed", zap.Error(err))
		return
	}
	s.filter = f
}

// Members returns the community roster merged with registered logins.
// A registered user whose ID already appears in the roster is not
// duplicated; the rest are appended as online members.
func (s *Service) Members() []User {
	members := make([]User, len(Roster))
	copy(members, Roster)

	seen := map[string]bool{}
	for _, u := range members {
		seen[u.ID] = true
	}
	for _, r := range s.store.RegisteredUsers() {
		id := "user_" + r.Email
		if seen[id] {
			continue
		}
		seen[id] = true
		members = append(members, User{
			ID:          id,
			Name:        r.Name,
			AvatarColor: r.AvatarColor,
			Online:      r.Online,
		})
	}
	return members
}

// Messages returns the persisted history with messages from blocked
// users removed.
func (s *Service) Messages() []store.ChatMessage {
	blocked := map[string]bool{}
	for _, id := range s.store.BlockedUsers() {
		blocked[id] = true
	}

	all := s.store.Messages()
	visible := make([]store.ChatMessage, 0, len(all))
	for _, m := range all {
		if !blocked[m.UserID] {
			visible = append(visible, m)
		}
	}
	return visible
}

// SendText filters the content and appends it to the history.
func (s *Service) SendText(userID, userName, text string) (store.ChatMessage, error) {
	if s.filter != nil {
		text = s.filter.Clean(text)
	}
	return s.store.AppendMessage(store.ChatMessage{
		UserID:      userID,
		UserName:    userName,
		AvatarColor: selfAvatarColor,
		Text:        text,
		Type:        store.MessageText,
	})
}

// SendAudio appends an audio message. Audio payloads are opaque data
// references and are never run through the text filter.
func (s *Service) SendAudio(userID, userName, audio string) (store.ChatMessage, error) {
	return s.store.AppendMessage(store.ChatMessage{
		UserID:      userID,
		UserName:    userName,
		AvatarColor: selfAvatarColor,
		Audio:       audio,
		Type:        store.MessageAudio,
	})
}

// AddFilterWord adds an admin-defined word and rebuilds the filter.
// Words already on the built-in list are ignored.
func (s *Service) AddFilterWord(word string) []string {
	if IsBuiltinWord(word) {
		return s.store.CustomFilterWords()
	}
	words := s.store.AddCustomFilterWord(word)
	s.reloadFilter()
	return words
}

// RemoveFilterWord removes an admin-defined word and rebuilds the filter.
func (s *Service) RemoveFilterWord(word string) []string {
	words := s.store.RemoveCustomFilterWord(word)
	s.reloadFilter()
	return words
}

// ToggleBlock flips a user's blocked state and returns the new list.
func (s *Service) ToggleBlock(userID string) []string {
	return s.store.ToggleBlockUser(userID)
}

// ToggleAdd flips a user's added-contact state and returns the new list.
func (s *Service) ToggleAdd(userID string) []string {
	return s.store.ToggleAddUser(userID)
}
