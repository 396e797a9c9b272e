package store

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxMessages = 20
	// When a full write still fails (quota, disk), retry once with only the
	// newest few messages rather than dropping the new entry.
	shrinkMessages = 5
)

// seedMessages keeps a fresh install from opening onto an empty room.
func seedMessages() []ChatMessage {
	now := time.Now()
	return []ChatMessage{
		{
			ID:          "msg_1",
			UserID:      "user_1",
			UserName:    "Irmão João",
			AvatarColor: "blue",
			Text:        "A paz do Senhor a todos! Alguém já leu Salmos hoje?",
			Type:        MessageText,
			Timestamp:   now.Add(-time.Hour).Format(time.RFC3339),
		},
		{
			ID:          "msg_2",
			UserID:      "user_2",
			UserName:    "Maria Madalena",
			AvatarColor: "pink",
			Text:        "Amém! Li o Salmo 91, muito edificante.",
			Type:        MessageText,
			Timestamp:   now.Add(-30 * time.Minute).Format(time.RFC3339),
		},
	}
}

// Messages returns the chat history, seeding the initial conversation on
// first read.
func (s *Store) Messages() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	var msgs []ChatMessage
	if !s.getJSON(keyMessages, &msgs) {
		msgs = seedMessages()
		if err := s.putJSON(keyMessages, msgs); err != nil {
			s.log.Warn("seed chat messages", zap.Error(err))
		}
	}
	return msgs
}

// AppendMessage appends a message, evicting from the head once the history
// exceeds its cap. Writing to a fresh store seeds the initial conversation
// first, the same as the first read. A failed write is retried once with a
// much smaller slice so the newest entry is never the one lost.
func (s *Store) AppendMessage(msg ChatMessage) (ChatMessage, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp == "" {
		msg.Timestamp = time.Now().Format(time.RFC3339)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var msgs []ChatMessage
	if !s.getJSON(keyMessages, &msgs) {
		msgs = seedMessages()
	}
	msgs = append(msgs, msg)
	if len(msgs) > maxMessages {
		msgs = msgs[len(msgs)-maxMessages:]
	}

	if err := s.putJSON(keyMessages, msgs); err != nil {
		s.log.Warn("chat write failed, shrinking", zap.Error(err))
		if len(msgs) > shrinkMessages {
			msgs = msgs[len(msgs)-shrinkMessages:]
		}
		if err := s.putJSON(keyMessages, msgs); err != nil {
			return msg, err
		}
	}
	return msg, nil
}

// BlockedUsers returns the blocked-user id list.
func (s *Store) BlockedUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stringList(keyBlocked)
}

// ToggleBlockUser adds the id when absent and removes it when present,
// returning the updated list.
func (s *Store) ToggleBlockUser(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toggleInList(keyBlocked, userID)
}

// AddedUsers returns the favorited-user id list.
func (s *Store) AddedUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stringList(keyAdded)
}

// ToggleAddUser toggles a favorited user, returning the updated list.
func (s *Store) ToggleAddUser(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toggleInList(keyAdded, userID)
}

func (s *Store) stringList(key string) []string {
	var list []string
	s.getJSON(key, &list)
	return list
}

func (s *Store) toggleInList(key, id string) []string {
	list := s.stringList(key)
	found := false
	out := list[:0]
	for _, v := range list {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	if err := s.putJSON(key, out); err != nil {
		s.log.Warn("toggle write", zap.String("key", key), zap.Error(err))
	}
	return out
}
