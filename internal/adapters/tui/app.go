package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"linksync/internal/adapters/tui/views"
	"linksync/internal/adapters/workspace"
	"linksync/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewGroups
	ViewInspect
	ViewHelp
)

// App is the main TUI application model
type App struct {
	ws     *workspace.Workspace
	editor ports.EditorOpener

	state   ViewState
	browser *views.BrowserModel
	groups  *views.GroupsModel
	inspect *views.InspectModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. A nil editor disables editing the
// document file.
func NewApp(ws *workspace.Workspace, ed ports.EditorOpener) *App {
	return &App{
		ws:      ws,
		editor:  ed,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(ws),
		groups:  views.NewGroupsModel(ws.Sync),
		inspect: views.NewInspectModel(ws),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.groups.SetSize(msg.Width, msg.Height)
		a.inspect.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToGroupsMsg:
		a.state = ViewGroups
		return a, nil

	case views.SwitchToInspectMsg:
		a.state = ViewInspect
		a.inspect.SetNode(msg.NodeID)
		return a, a.inspect.Init()

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.OpenEditorMsg:
		a.state = ViewBrowser
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.browser.SetError(msg.err)
			return a, nil
		}
		if err := a.ws.Reload(); err != nil {
			a.browser.SetError(err)
			return a, nil
		}
		a.browser.SetMessage("Reloaded after edit", false)
		return a, a.browser.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewGroups:
		_, cmd = a.groups.Update(msg)
	case ViewInspect:
		_, cmd = a.inspect.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewGroups:
		return a.groups.View()
	case ViewInspect:
		return a.inspect.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
