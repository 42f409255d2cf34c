package views

import tea "github.com/charmbracelet/bubbletea"

// ViewState holds the size and status line shared by the linksync views.
// Embed it in a view model.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// SetError shows err as an error message
func (s *ViewState) SetError(err error) {
	s.SetMessage(err.Error(), true)
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

type errMsg struct {
	err error
}

// actionDoneMsg reports the outcome of a document action. Focus names a node
// the cursor should move to after the tree is rebuilt.
type actionDoneMsg struct {
	message string
	isErr   bool
	focus   string
}

// deliver wraps a message that is already computed. The document and its
// metadata store are not safe for concurrent use, so views touch them only
// inside Update and return the result through deliver.
func deliver(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
