package ports

import "os/exec"

// EditorOpener opens files, such as an item note, in an external editor
type EditorOpener interface {
	// OpenFile opens path and waits for the editor to exit
	OpenFile(path string) error

	// Command returns the editor process without starting it, so a TUI can
	// hand over the terminal while it runs
	Command(path string) (*exec.Cmd, error)
}
