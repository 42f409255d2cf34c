package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fallbackEditors are tried in order when nothing is configured
var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// Opener implements ports.EditorOpener
type Opener struct {
	preferred string
	lookPath  func(string) (string, error)
}

// NewOpener creates a new editor opener. A non-empty preferred command wins
// over $VISUAL and $EDITOR; it may carry arguments, e.g. "code --wait".
func NewOpener(preferred string) *Opener {
	return &Opener{preferred: preferred, lookPath: exec.LookPath}
}

// OpenFile opens a document file in the editor and waits for it to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for editing path, wired to the terminal so it
// can run under bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.resolve()
	if len(argv) == 0 {
		return nil, fmt.Errorf("no editor found: set editor in the config file or $EDITOR")
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// resolve returns the editor command split into program and arguments
func (o *Opener) resolve() []string {
	for _, candidate := range []string{o.preferred, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields
		}
	}
	for _, name := range fallbackEditors {
		if path, err := o.lookPath(name); err == nil {
			return []string{path}
		}
	}
	return nil
}
