package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"linksync/internal/adapters/tui/styles"
	"linksync/internal/domain"
)

// GroupsKeyMap defines key bindings for the sync groups view
type GroupsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	None   key.Binding
	Close  key.Binding
}

var GroupsKeys = GroupsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	All: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "all"),
	),
	None: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "none"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "o"),
		key.WithHelp("esc", "back"),
	),
}

var groupDescriptions = map[domain.SyncGroup]string{
	domain.GroupName:      "Layer name",
	domain.GroupFills:     "Fills, opacity, blend mode, visibility",
	domain.GroupStrokes:   "Strokes, weights, caps, joins, dashes",
	domain.GroupEffects:   "Shadows and blurs",
	domain.GroupCorners:   "Corner radii and smoothing",
	domain.GroupText:      "Font, size, spacing, case, alignment",
	domain.GroupFlow:      "Auto layout direction, alignment, wrap",
	domain.GroupDimension: "Sizing modes",
	domain.GroupGap:       "Item and counter axis spacing",
	domain.GroupPadding:   "Padding on all four sides",
}

// GroupsModel toggles which property groups a sync copies. Changes apply to
// the given config in place and last for the session.
type GroupsModel struct {
	ViewState
	cfg    domain.SyncConfig
	cursor int
}

// NewGroupsModel creates a new sync groups view
func NewGroupsModel(cfg domain.SyncConfig) *GroupsModel {
	return &GroupsModel{cfg: cfg}
}

// Init initializes the groups view
func (m *GroupsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the groups view
func (m *GroupsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, GroupsKeys.Close):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		case key.Matches(msg, GroupsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, GroupsKeys.Down):
			if m.cursor < len(domain.AllGroups)-1 {
				m.cursor++
			}
		case key.Matches(msg, GroupsKeys.Toggle):
			g := domain.AllGroups[m.cursor]
			m.cfg[g] = !m.cfg[g]
		case key.Matches(msg, GroupsKeys.All):
			for _, g := range domain.AllGroups {
				m.cfg[g] = true
			}
		case key.Matches(msg, GroupsKeys.None):
			for _, g := range domain.AllGroups {
				m.cfg[g] = false
			}
		}
	}

	return m, nil
}

// View renders the groups view
func (m *GroupsModel) View() string {
	var b strings.Builder
	for i, g := range domain.AllGroups {
		box := styles.GroupOff.Render("[ ]")
		if m.cfg.Enabled(g) {
			box = styles.GroupOn.Render("[x]")
		}
		name := padRight(string(g), 12)
		if i == m.cursor {
			name = styles.NodeSelected.Render(name)
		}
		fmt.Fprintf(&b, "%s %s %s\n", box, name, styles.MutedText.Render(groupDescriptions[g]))
	}

	return NewViewBuilder().
		Title("Sync Groups").
		Raw(b.String()).
		BlankLine().
		Help(GroupsKeys.Toggle, GroupsKeys.All, GroupsKeys.None, GroupsKeys.Close).
		String()
}
