package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"linksync/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Linksync Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Linked copies of components, kept in sync with their source"))
	b.WriteString("\n\n")

	// Navigation section
	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / ←", "Collapse / go to parent"))
	b.WriteString(helpLine("l / →", "Expand"))
	b.WriteString(helpLine("Enter", "Toggle expansion"))
	b.WriteString(helpLine("/", "Filter by name or id"))
	b.WriteString("\n")

	// Actions section
	b.WriteString(styles.InputLabel.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("space", "Add or remove node from selection"))
	b.WriteString(helpLine("c", "Create linked copies of the selection"))
	b.WriteString(helpLine("s", "Sync linked nodes in the selection"))
	b.WriteString(helpLine("g", "Go to the source of the first selected node"))
	b.WriteString(helpLine("y", "Copy source id to clipboard"))
	b.WriteString(helpLine("i", "Inspect node properties"))
	b.WriteString(helpLine("o", "Choose sync groups"))
	b.WriteString(helpLine("e", "Edit document file in $EDITOR"))
	b.WriteString(helpLine("r", "Reload document file"))
	b.WriteString("\n")

	// General section
	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	// Markers
	b.WriteString(styles.InputLabel.Render("Markers"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  ●          : part of the selection"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  ⇢ 1:2      : linked copy and its source id"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  When nothing is selected, actions use the node under the cursor"))
	b.WriteString("\n\n")

	// Close hint
	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
