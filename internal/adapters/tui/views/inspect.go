package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"linksync/internal/adapters/workspace"
	"linksync/internal/application/commands"
)

// InspectKeyMap defines key bindings for the inspect view
type InspectKeyMap struct {
	Close key.Binding
}

var InspectKeys = InspectKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "i"),
		key.WithHelp("esc", "back"),
	),
}

type inspectLoadedMsg struct {
	title   string
	content string
}

// InspectModel shows the properties and identity record of one node
type InspectModel struct {
	ViewState
	ws     *workspace.Workspace
	nodeID string
	title  string
	vp     viewport.Model
}

// NewInspectModel creates a new inspect view
func NewInspectModel(ws *workspace.Workspace) *InspectModel {
	return &InspectModel{
		ws: ws,
		vp: viewport.New(80, 20),
	}
}

// SetNode selects the node to inspect
func (m *InspectModel) SetNode(id string) {
	m.nodeID = id
	m.title = id
	m.ClearMessage()
	m.vp.SetContent("")
	m.vp.GotoTop()
}

// Init loads the inspection data. The node is read before Init returns.
func (m *InspectModel) Init() tea.Cmd {
	return deliver(m.load())
}

func (m *InspectModel) load() tea.Msg {
	cmd := commands.NewInspectNodeCommand(m.ws.Doc, m.ws.Meta, m.nodeID)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	title := fmt.Sprintf("%s %s", result.Node.ID(), result.Node.Name())
	return inspectLoadedMsg{title: title, content: commands.RenderJSON(result.Data())}
}

// Update handles messages for the inspect view
func (m *InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case inspectLoadedMsg:
		m.title = msg.title
		m.vp.SetContent(msg.content)
		return m, nil

	case errMsg:
		m.SetError(msg.err)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, InspectKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// SetSize updates the view dimensions and the viewport
func (m *InspectModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.vp.Width = max(width-4, 20)
	m.vp.Height = max(height-8, 5)
}

// View renders the inspect view
func (m *InspectModel) View() string {
	return NewViewBuilder().
		Title("Inspect "+m.title).
		Message(m.Message, m.MessageErr).
		Line(m.vp.View()).
		BlankLine().
		Help(InspectKeys.Close).
		String()
}
