package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantCourseAccessIdempotent(t *testing.T) {
	s := newTestStore(t)

	code1, err := s.GrantCourseAccess("user_1", "rest_1")
	require.NoError(t, err)
	require.Len(t, code1, 6)

	code2, err := s.GrantCourseAccess("user_1", "rest_1")
	require.NoError(t, err)
	assert.Equal(t, code1, code2, "granting twice must reuse the code")

	perms := s.CoursePermissions()
	assert.Len(t, perms, 1)
}

func TestGrantCourseAccessPerPair(t *testing.T) {
	s := newTestStore(t)

	c1, err := s.GrantCourseAccess("user_1", "rest_1")
	require.NoError(t, err)
	c2, err := s.GrantCourseAccess("user_2", "rest_1")
	require.NoError(t, err)
	c3, err := s.GrantCourseAccess("user_1", "rest_2")
	require.NoError(t, err)

	assert.Len(t, s.CoursePermissions(), 3)
	for _, c := range []string{c1, c2, c3} {
		assert.Len(t, c, 6)
		assert.Equal(t, c, stringsUpper(c), "codes are issued uppercase")
	}
}

func stringsUpper(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 32
		}
	}
	return string(out)
}

func TestVerifyAccessCode(t *testing.T) {
	s := newTestStore(t)

	code, err := s.GrantCourseAccess("user_1", "rest_1")
	require.NoError(t, err)
	assert.False(t, s.CourseUnlocked("rest_1"))

	// Wrong code: stays locked, no lockout on repeats.
	for i := 0; i < 5; i++ {
		assert.False(t, s.VerifyAccessCode("rest_1", "WRONG1"))
	}
	assert.False(t, s.CourseUnlocked("rest_1"))

	// Case-insensitive, whitespace-trimmed match unlocks permanently.
	lower := "  " + stringsLower(code) + " "
	assert.True(t, s.VerifyAccessCode("rest_1", lower))
	assert.True(t, s.CourseUnlocked("rest_1"))

	// Re-verifying an unlocked course is a no-op success.
	assert.True(t, s.VerifyAccessCode("rest_1", code))
	assert.True(t, s.CourseUnlocked("rest_1"))
}

func stringsLower(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r + 32
		}
	}
	return string(out)
}

func TestVerifyAccessCodeEmptyInput(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GrantCourseAccess("user_1", "rest_1")
	require.NoError(t, err)
	assert.False(t, s.VerifyAccessCode("rest_1", "   "))
}

func TestCourseProgress(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveCourseProgress("Profecias de Daniel-1", 80))
	require.NoError(t, s.SaveCourseProgress("Profecias de Daniel-1", 95))

	progress := s.CourseProgress()
	assert.Equal(t, 95, progress["Profecias de Daniel-1"])
}
