// Record types persisted by the store. JSON field names match the legacy
// key space so an exported database stays readable by older builds.
package store

// MessageType discriminates chat message payloads.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageAudio MessageType = "audio"
)

// ChatMessage is one entry of the community chat.
type ChatMessage struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	UserName    string      `json:"userName"`
	AvatarColor string      `json:"avatarColor,omitempty"`
	Text        string      `json:"text,omitempty"`
	Audio       string      `json:"audio,omitempty"` // data URI
	Type        MessageType `json:"type"`
	Timestamp   string      `json:"timestamp"` // RFC 3339
}

// AccessLog records one login for the admin screen.
type AccessLog struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Timestamp  string `json:"timestamp"` // RFC 3339
	DeviceInfo string `json:"deviceInfo"`
}

// AdminConfig is the single global admin record, read and written wholesale.
type AdminConfig struct {
	AdminMode  bool `json:"isAdminMode"`
	AlertSound bool `json:"adminSoundEnabled"`
	AppLocked  bool `json:"isAppLocked"`
}

// CoursePermission gates one restricted course for one user.
type CoursePermission struct {
	UserID     string `json:"userId"`
	CourseID   string `json:"courseId"`
	AccessCode string `json:"accessCode"`
	Unlocked   bool   `json:"isUnlocked"`
}

// RegisteredUser is a login-registered account.
type RegisteredUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	AvatarColor string `json:"avatarColor"`
	Online      bool   `json:"isOnline"`
	LastLogin   string `json:"lastLogin,omitempty"` // RFC 3339
}

// LastRead is the resume-reading pointer, written when a chapter opens.
type LastRead struct {
	Entity   string `json:"bookName"`
	Chapter  int    `json:"chapter"`
	Category string `json:"category,omitempty"`
}

// NotesMap maps "<book>-<chapter>-<verse>" to free-text notes.
type NotesMap map[string]string
