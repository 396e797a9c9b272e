package nav

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveChapterPath(t *testing.T) {
	st := Resolve("bible/Gênesis/3")
	assert.Equal(t, ScreenBible, st.Screen)
	assert.Equal(t, "Gênesis", st.EntityName)
	assert.Equal(t, 3, st.Chapter)
}

func TestResolveEmptyFragment(t *testing.T) {
	st := Resolve("")
	assert.Equal(t, ScreenLanding, st.Screen)
	assert.Empty(t, st.EntityName)
	assert.Zero(t, st.Chapter)
}

func TestResolveUnknownScreenFallsBackToMenu(t *testing.T) {
	st := Resolve("definitely-not-a-screen/x/y")
	assert.Equal(t, ScreenMenu, st.Screen)
}

func TestResolveBadChapterYieldsListing(t *testing.T) {
	for _, frag := range []string{"bible/Salmos/abc", "bible/Salmos/-1", "bible/Salmos/0"} {
		st := Resolve(frag)
		assert.Equal(t, "Salmos", st.EntityName, frag)
		assert.Zero(t, st.Chapter, frag)
	}
}

func TestResolveStripsHashPrefix(t *testing.T) {
	st := Resolve("#menu")
	assert.Equal(t, ScreenMenu, st.Screen)
}

func TestResolvePercentEncodedName(t *testing.T) {
	st := Resolve("bible/G%C3%AAnesis/1")
	assert.Equal(t, "Gênesis", st.EntityName)
	assert.Equal(t, 1, st.Chapter)
}

func TestResolveNeverPanics(t *testing.T) {
	inputs := []string{"", "/", "//", "///", "#", "bible//", "a/b/c/d/e", "%zz/%zz"}
	for i := 0; i < 100; i++ {
		inputs = append(inputs, fmt.Sprintf("bible/book-%d/%d", i, i-50))
	}
	for _, in := range inputs {
		st := Resolve(in)
		_, known := map[Screen]bool{
			ScreenLanding: true, ScreenMenu: true, ScreenBible: true,
			ScreenLibrary: true, ScreenApocrypha: true, ScreenDictionary: true,
			ScreenAssistant: true, ScreenRadios: true, ScreenChat: true,
			ScreenCourses: true, ScreenQuiz: true, ScreenSettings: true,
			ScreenAdmin: true,
		}[st.Screen]
		assert.True(t, known, "input %q resolved to unknown screen %q", in, st.Screen)
	}
}

func TestNavigateFiresChangeHook(t *testing.T) {
	var got []State
	r := &Router{OnChange: func(s State) { got = append(got, s) }}

	r.Navigate("menu")
	r.Navigate("bible/Jó")

	require.Len(t, got, 2)
	assert.Equal(t, ScreenMenu, got[0].Screen)
	assert.Equal(t, "Jó", got[1].EntityName)
	assert.Equal(t, "bible/Jó", r.Fragment())
}

func TestNavigateSameFragmentIsNoop(t *testing.T) {
	calls := 0
	r := &Router{OnChange: func(State) { calls++ }}
	r.Navigate("menu")
	r.Navigate("menu")
	assert.Equal(t, 1, calls)
}

func TestNavigateWhileLocked(t *testing.T) {
	locked := true
	calls := 0
	r := &Router{
		Locked:   func() bool { return locked },
		OnChange: func(State) { calls++ },
	}

	r.Navigate("bible")
	assert.Empty(t, r.Fragment(), "locked navigation must not change state")
	assert.Zero(t, calls)

	r.Navigate("admin")
	assert.Equal(t, "admin", r.Fragment())
	assert.Equal(t, 1, calls)

	locked = false
	r.Navigate("bible")
	assert.Equal(t, "bible", r.Fragment())
}

func TestBackPopsSegment(t *testing.T) {
	r := &Router{}
	r.Navigate("bible/Gênesis/3")

	r.Back()
	assert.Equal(t, "bible/Gênesis", r.Fragment())
	r.Back()
	assert.Equal(t, "bible", r.Fragment())
	r.Back()
	assert.Equal(t, "menu", r.Fragment())
}

func TestBackOnMenuRequestsLogout(t *testing.T) {
	loggedOut := false
	r := &Router{OnLogout: func() { loggedOut = true }}
	r.Navigate("menu")

	r.Back()

	assert.True(t, loggedOut)
	assert.Equal(t, "menu", r.Fragment(), "logout must not navigate")
}

func TestHasEntity(t *testing.T) {
	assert.True(t, ScreenBible.HasEntity())
	assert.True(t, ScreenLibrary.HasEntity())
	assert.True(t, ScreenApocrypha.HasEntity())
	assert.False(t, ScreenDictionary.HasEntity())
	assert.False(t, ScreenMenu.HasEntity())
}
