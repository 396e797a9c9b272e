package nav

import "strings"

// Router owns the current fragment and applies the admin-lock rule at the
// point of dispatch. It is not safe for concurrent use; the app drives it
// from a single update loop.
type Router struct {
	fragment string

	// Locked gates navigation: while it reports true, every target except
	// the admin screen is a no-op. Nil means never locked.
	Locked func() bool

	// OnChange fires after the fragment actually changes.
	OnChange func(State)

	// OnLogout fires when Back is pressed on the menu screen.
	OnLogout func()
}

// Fragment returns the current fragment.
func (r *Router) Fragment() string {
	return r.fragment
}

// Current resolves the current fragment.
func (r *Router) Current() State {
	return Resolve(r.fragment)
}

// Navigate sets the fragment and fires OnChange. While locked, any target
// other than the admin screen leaves the fragment untouched and fires
// nothing.
func (r *Router) Navigate(path string) {
	path = strings.TrimPrefix(strings.TrimSpace(path), "#")

	if r.Locked != nil && r.Locked() {
		if Resolve(path).Screen != ScreenAdmin {
			return
		}
	}
	if path == r.fragment {
		return
	}
	r.fragment = path
	if r.OnChange != nil {
		r.OnChange(Resolve(path))
	}
}

// Back pops the last path segment. A one-segment path goes to the menu; on
// the menu screen it requests logout instead of navigating.
func (r *Router) Back() {
	current := r.fragment
	if current == "menu" {
		if r.OnLogout != nil {
			r.OnLogout()
		}
		return
	}
	parts := strings.Split(current, "/")
	if len(parts) > 1 {
		r.Navigate(strings.Join(parts[:len(parts)-1], "/"))
		return
	}
	r.Navigate("menu")
}

// Reset clears the fragment without firing hooks, for logout.
func (r *Router) Reset() {
	r.fragment = ""
}
