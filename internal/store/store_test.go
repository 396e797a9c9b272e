package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRawRoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.getRaw("missing")
	assert.False(t, ok)

	require.NoError(t, s.putRaw("k", "v1"))
	v, ok := s.getRaw("k")
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	require.NoError(t, s.putRaw("k", "v2"))
	v, _ = s.getRaw("k")
	assert.Equal(t, "v2", v, "writes replace wholesale")
}

func TestMalformedJSONReadsAsDefault(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.putRaw(keyAccessLogs, "{not json"))

	logs := s.AccessLogs()
	assert.Empty(t, logs, "malformed data must yield the empty default, not an error")
}

func TestFactoryResetClearsEverything(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetAdminPassword("s3cret"))
	require.NoError(t, s.SetMaintenance(true))
	s.SetLastRead(LastRead{Entity: "Salmos", Chapter: 23})

	require.NoError(t, s.FactoryReset())

	assert.Equal(t, "admin123", s.AdminPassword())
	assert.False(t, s.Maintenance())
	assert.Nil(t, s.LastReadPointer())
}

func TestAppendMessageEvictsOldest(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 21; i++ {
		_, err := s.AppendMessage(ChatMessage{
			ID:       fmt.Sprintf("m-%d", i),
			UserID:   "me",
			UserName: "Você",
			Text:     fmt.Sprintf("mensagem %d", i),
			Type:     MessageText,
		})
		require.NoError(t, err)
	}

	msgs := s.Messages()
	require.Len(t, msgs, 20)
	assert.Equal(t, "m-1", msgs[0].ID, "oldest appended message evicted first")
	assert.Equal(t, "m-20", msgs[19].ID)
}

func TestAppendMessageSeedsFreshStore(t *testing.T) {
	s := newTestStore(t)

	// First write seeds the initial conversation, same as the first read.
	msg, err := s.AppendMessage(ChatMessage{UserID: "me", Text: "olá", Type: MessageText})
	require.NoError(t, err)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "msg_1", msgs[0].ID)
	assert.Equal(t, "msg_2", msgs[1].ID)
	assert.Equal(t, msg.ID, msgs[2].ID)
}

func TestAppendMessageShrinksOnWriteFailure(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 18; i++ {
		_, err := s.AppendMessage(ChatMessage{
			ID:     fmt.Sprintf("m-%d", i),
			UserID: "me",
			Text:   fmt.Sprintf("mensagem %d", i),
			Type:   MessageText,
		})
		require.NoError(t, err)
	}

	// Fail the first write only; the shrink retry must land.
	failed := false
	s.putHook = func(key string) error {
		if key == keyMessages && !failed {
			failed = true
			return fmt.Errorf("disk full")
		}
		return nil
	}

	msg, err := s.AppendMessage(ChatMessage{ID: "m-novo", UserID: "me", Text: "novo", Type: MessageText})
	require.NoError(t, err)
	require.True(t, failed)

	s.putHook = nil
	msgs := s.Messages()
	require.Len(t, msgs, 5, "degraded write keeps only the newest few")
	assert.Equal(t, msg.ID, msgs[4].ID, "the new message is never the one lost")
}

func TestMessagesSeedOnFirstRead(t *testing.T) {
	s := newTestStore(t)
	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Irmão João", msgs[0].UserName)

	// Seeding happens once.
	again := s.Messages()
	assert.Len(t, again, 2)
}

func TestAppendMessageFillsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)
	msg, err := s.AppendMessage(ChatMessage{UserID: "me", Text: "olá", Type: MessageText})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.NotEmpty(t, msg.Timestamp)
}

func TestToggleBlockUser(t *testing.T) {
	s := newTestStore(t)

	list := s.ToggleBlockUser("user_2")
	assert.Equal(t, []string{"user_2"}, list)

	list = s.ToggleBlockUser("user_2")
	assert.Empty(t, list, "second toggle removes, no duplicates possible")

	s.ToggleBlockUser("user_2")
	s.ToggleBlockUser("user_3")
	assert.Equal(t, []string{"user_2", "user_3"}, s.BlockedUsers())
}

func TestToggleAddUserIndependentOfBlocked(t *testing.T) {
	s := newTestStore(t)
	s.ToggleAddUser("user_5")
	assert.Equal(t, []string{"user_5"}, s.AddedUsers())
	assert.Empty(t, s.BlockedUsers())
}

func TestAccessLogCap(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 55; i++ {
		s.LogAccess(fmt.Sprintf("user%d@example.com", i), "test device")
	}

	logs := s.AccessLogs()
	require.Len(t, logs, 50)
	assert.Equal(t, "user54@example.com", logs[0].Email, "most recent first")

	s.ClearAccessLogs()
	assert.Empty(t, s.AccessLogs())
}

func TestAdminSettingsDefaults(t *testing.T) {
	s := newTestStore(t)
	cfg := s.AdminSettings()
	assert.False(t, cfg.AdminMode)
	assert.True(t, cfg.AlertSound)
	assert.False(t, cfg.AppLocked)
}

func TestToggleAppLock(t *testing.T) {
	s := newTestStore(t)

	locked, err := s.ToggleAppLock()
	require.NoError(t, err)
	assert.True(t, locked)
	assert.True(t, s.AdminSettings().AppLocked)

	locked, err = s.ToggleAppLock()
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestAdminPasswordLifecycle(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "admin123", s.AdminPassword())

	require.NoError(t, s.SetAdminPassword("nova-senha"))
	assert.Equal(t, "nova-senha", s.AdminPassword())

	require.NoError(t, s.ResetAdminPassword())
	assert.Equal(t, "admin123", s.AdminPassword())

	assert.Error(t, s.SetAdminPassword(""))
}

func TestRegisterLoginUpserts(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.RegisterLogin("Usuário", "ana@example.com"))
	require.NoError(t, s.RegisterLogin("Usuário", "ana@example.com"))

	users := s.RegisteredUsers()
	require.Len(t, users, 1, "same email upserts, never duplicates")
	assert.True(t, users[0].Online)
	assert.NotEmpty(t, users[0].LastLogin)

	remaining := s.RemoveRegisteredUser("ana@example.com")
	assert.Empty(t, remaining)
}
