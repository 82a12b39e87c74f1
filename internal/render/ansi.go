package render

const (
	ESC = "\x1b"
	CSI = ESC + "["
)

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// CursorHome positions the cursor at the top-left corner.
func CursorHome() string {
	return CSI + "H"
}
