package ports

import "os/exec"

// EditorOpener opens the document file in an external editor
type EditorOpener interface {
	// OpenFile edits path and waits for the editor to exit
	OpenFile(path string) error

	// Command returns an exec.Cmd for editing path, for use with
	// bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
