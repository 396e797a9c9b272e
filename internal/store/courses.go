package store

import (
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newAccessCode returns a 6-character uppercase token.
func newAccessCode() string {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteByte(codeAlphabet[rand.IntN(len(codeAlphabet))])
	}
	return b.String()
}

// CoursePermissions returns all granted course permissions.
func (s *Store) CoursePermissions() []CoursePermission {
	s.mu.Lock()
	defer s.mu.Unlock()

	var perms []CoursePermission
	s.getJSON(keyCoursePerms, &perms)
	return perms
}

// GrantCourseAccess issues an access code for the (user, course) pair.
// Granting twice returns the same code; no duplicate permissions are
// created.
func (s *Store) GrantCourseAccess(userID, courseID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var perms []CoursePermission
	s.getJSON(keyCoursePerms, &perms)

	for _, p := range perms {
		if p.UserID == userID && p.CourseID == courseID {
			return p.AccessCode, nil
		}
	}

	code := newAccessCode()
	perms = append(perms, CoursePermission{
		UserID:     userID,
		CourseID:   courseID,
		AccessCode: code,
	})
	if err := s.putJSON(keyCoursePerms, perms); err != nil {
		return "", err
	}
	return code, nil
}

// VerifyAccessCode checks a code against the permission stored for the
// course. The comparison is case-insensitive and whitespace-trimmed. A match
// permanently unlocks the permission; re-verifying an unlocked course is a
// no-op success. There is no lockout on repeated wrong attempts.
func (s *Store) VerifyAccessCode(courseID, input string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	if normalized == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var perms []CoursePermission
	s.getJSON(keyCoursePerms, &perms)

	for i := range perms {
		if perms[i].CourseID == courseID && strings.ToUpper(perms[i].AccessCode) == normalized {
			if !perms[i].Unlocked {
				perms[i].Unlocked = true
				if err := s.putJSON(keyCoursePerms, perms); err != nil {
					s.log.Warn("persist course unlock", zap.Error(err))
				}
			}
			return true
		}
	}
	return false
}

// CourseUnlocked reports whether any permission for the course is unlocked.
func (s *Store) CourseUnlocked(courseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var perms []CoursePermission
	s.getJSON(keyCoursePerms, &perms)
	for _, p := range perms {
		if p.CourseID == courseID && p.Unlocked {
			return true
		}
	}
	return false
}

// CourseProgress returns the lesson-score map. Keys are chosen by the
// caller, one per course lesson.
func (s *Store) CourseProgress() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress := map[string]int{}
	s.getJSON(keyCourseProgress, &progress)
	return progress
}

// SaveCourseProgress records a quiz score for a course lesson.
func (s *Store) SaveCourseProgress(key string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress := map[string]int{}
	s.getJSON(keyCourseProgress, &progress)
	progress[key] = score
	return s.putJSON(keyCourseProgress, progress)
}
