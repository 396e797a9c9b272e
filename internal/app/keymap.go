package app

// Key binding constants used in handleKey.
const (
	KeyCtrlC   = "ctrl+c"
	KeyBack    = "esc"
	KeyEnter   = "enter"
	KeyTab     = "tab"
	KeyUp      = "up"
	KeyDown    = "down"
	KeyJ       = "j"
	KeyK       = "k"
	KeyNext    = "n"
	KeyPrev    = "p"
	KeyReadOut = "r"
	KeySearch  = "/"
	KeyStop    = "s"
	KeyToggle  = " "
	KeyDelete  = "x"
)
