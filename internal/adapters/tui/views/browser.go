package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"linksync/internal/adapters/tui/styles"
	"linksync/internal/adapters/workspace"
	"linksync/internal/application/commands"
	"linksync/internal/domain"
	"linksync/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	Mark    key.Binding
	Link    key.Binding
	Sync    key.Binding
	GoTo    key.Binding
	Copy    key.Binding
	Inspect key.Binding
	Groups  key.Binding
	Filter  key.Binding
	Edit    key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	Mark: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select"),
	),
	Link: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "create links"),
	),
	Sync: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sync"),
	),
	GoTo: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "go to source"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy source id"),
	),
	Inspect: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "inspect"),
	),
	Groups: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "sync groups"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit file"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the document tree browser
type BrowserModel struct {
	ViewState
	ws        *workspace.Workspace
	trees     []*domain.TreeNode
	flatNodes []*domain.TreeNode
	cursor    int

	selected map[string]bool
	hasLink  bool
	expanded map[string]bool
	focusID  string

	filter    textinput.Model
	filtering bool

	copyText func(string) error
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(ws *workspace.Workspace) *BrowserModel {
	filter := textinput.New()
	filter.Placeholder = "Filter by name..."
	filter.Prompt = "/ "

	return &BrowserModel{
		ws:       ws,
		selected: make(map[string]bool),
		filter:   filter,
		copyText: clipboard.WriteAll,
	}
}

// Init builds the first tree
func (m *BrowserModel) Init() tea.Cmd {
	return deliver(m.loadTree())
}

// loadTree reads the workspace and must run inside Update or Init
func (m *BrowserModel) loadTree() tea.Msg {
	trees, err := commands.NewBuildTreeCommand(m.ws.Doc, m.ws.Meta).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return treeLoadedMsg{trees}
}

type treeLoadedMsg struct {
	trees []*domain.TreeNode
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.trees = msg.trees
		m.restoreExpansion()
		m.refreshSelection()
		m.refreshFlatNodes()
		m.applyFocus()
		return m, nil

	case errMsg:
		m.SetError(msg.err)
		return m, nil

	case actionDoneMsg:
		m.SetMessage(msg.message, msg.isErr)
		if msg.focus != "" {
			m.focusID = msg.focus
		}
		return m, m.Reload()

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.flatNodes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.IsExpanded {
					node.Toggle()
					m.refreshFlatNodes()
				} else if node.Parent != nil {
					m.moveTo(node.Parent.ID)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right):
			if node := m.selectedNode(); node != nil && !node.IsExpanded {
				node.Toggle()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			if node := m.selectedNode(); node != nil {
				node.Toggle()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Mark):
			if node := m.selectedNode(); node != nil {
				m.toggleMark(node)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Link):
			return m, deliver(m.createLinks(m.targets()))

		case key.Matches(msg, BrowserKeys.Sync):
			return m, deliver(m.syncSelection(m.targets()))

		case key.Matches(msg, BrowserKeys.GoTo):
			return m, deliver(m.goToSource(m.targets()))

		case key.Matches(msg, BrowserKeys.Copy):
			m.copySourceID()
			return m, nil

		case key.Matches(msg, BrowserKeys.Inspect):
			if node := m.selectedNode(); node != nil {
				return m, func() tea.Msg {
					return SwitchToInspectMsg{NodeID: node.ID}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Groups):
			return m, func() tea.Msg {
				return SwitchToGroupsMsg{}
			}

		case key.Matches(msg, BrowserKeys.Filter):
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink

		case key.Matches(msg, BrowserKeys.Edit):
			path := m.ws.Repo.Path()
			return m, func() tea.Msg {
				return OpenEditorMsg{Path: path}
			}

		case key.Matches(msg, BrowserKeys.Reload):
			return m, deliver(m.reloadDocument())

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.refreshFlatNodes()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	m.refreshFlatNodes()
	return m, cmd
}

// targets returns the nodes an action applies to: the document selection, or
// the node under the cursor when nothing is selected
func (m *BrowserModel) targets() []ports.Node {
	if selection := m.ws.Doc.Selection(); len(selection) > 0 {
		return selection
	}
	if node := m.selectedNode(); node != nil {
		if n, ok := m.ws.Doc.NodeByID(node.ID); ok {
			return []ports.Node{n}
		}
	}
	return nil
}

// The actions below mutate the workspace. They run inside Update and hand
// only their outcome to the returned command.

func (m *BrowserModel) createLinks(selection []ports.Node) tea.Msg {
	cmd := commands.NewCreateLinksCommand(m.ws.Doc, m.ws.Meta, selection)
	cmd.Margin = m.ws.LinkMargin
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	if len(result.Created) == 0 {
		return actionDoneMsg{message: result.Message, isErr: len(result.Failures) > 0}
	}
	if err := m.ws.Save(); err != nil {
		return errMsg{err}
	}
	message := result.Message
	if len(result.Failures) > 0 {
		message = fmt.Sprintf("%s, %d failed", message, len(result.Failures))
	}
	return actionDoneMsg{message: message, focus: result.Created[0].ID()}
}

func (m *BrowserModel) syncSelection(selection []ports.Node) tea.Msg {
	result, err := commands.NewSyncSelectionCommand(m.ws.Doc, m.ws.Meta, selection, m.ws.Sync).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	if result.Stats.Succeeded > 0 {
		if err := m.ws.Save(); err != nil {
			return errMsg{err}
		}
	}
	return actionDoneMsg{message: result.Message, isErr: result.Stats.Failed > 0}
}

func (m *BrowserModel) goToSource(selection []ports.Node) tea.Msg {
	result, err := commands.NewGoToSourceCommand(m.ws.Doc, m.ws.Meta, selection).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	if result.Source == nil {
		return actionDoneMsg{message: result.Message, isErr: true}
	}
	if err := m.ws.Save(); err != nil {
		return errMsg{err}
	}
	return actionDoneMsg{message: result.Message, focus: result.Source.ID()}
}

func (m *BrowserModel) reloadDocument() tea.Msg {
	if err := m.ws.Reload(); err != nil {
		return errMsg{err}
	}
	return actionDoneMsg{message: "Reloaded " + m.ws.Repo.Path()}
}

func (m *BrowserModel) copySourceID() {
	node := m.selectedNode()
	if node == nil || !node.Linked {
		m.SetMessage("Selected element is not linked to a source", true)
		return
	}
	if err := m.copyText(node.SourceID); err != nil {
		m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.SetMessage(fmt.Sprintf("Copied %s", node.SourceID), false)
}

// toggleMark adds or removes a node from the document selection
func (m *BrowserModel) toggleMark(node *domain.TreeNode) {
	var ids []string
	for _, n := range m.ws.Doc.Selection() {
		if n.ID() != node.ID {
			ids = append(ids, n.ID())
		}
	}
	if !m.selected[node.ID] {
		ids = append(ids, node.ID)
	}
	if err := m.ws.Doc.SelectIDs(ids...); err != nil {
		m.SetError(err)
		return
	}
	m.refreshSelection()
}

func (m *BrowserModel) refreshSelection() {
	selection := m.ws.Doc.Selection()
	m.selected = make(map[string]bool, len(selection))
	for _, n := range selection {
		m.selected[n.ID()] = true
	}
	m.hasLink = commands.NewHasLinkQuery(m.ws.Meta, selection).Execute()
}

func (m *BrowserModel) selectedNode() *domain.TreeNode {
	if m.cursor >= 0 && m.cursor < len(m.flatNodes) {
		return m.flatNodes[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshFlatNodes() {
	m.flatNodes = nil
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	for _, tree := range m.trees {
		if query == "" {
			m.flatNodes = append(m.flatNodes, tree.Flatten()...)
			continue
		}
		m.collectMatches(tree, query)
	}
	// Clamp cursor
	if m.cursor >= len(m.flatNodes) {
		m.cursor = len(m.flatNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *BrowserModel) collectMatches(n *domain.TreeNode, query string) {
	if strings.Contains(strings.ToLower(n.Name), query) || strings.Contains(n.ID, query) {
		m.flatNodes = append(m.flatNodes, n)
	}
	for _, child := range n.Children {
		m.collectMatches(child, query)
	}
}

// restoreExpansion reapplies the expansion state captured by Reload
func (m *BrowserModel) restoreExpansion() {
	if m.expanded == nil {
		return
	}
	var walk func(n *domain.TreeNode)
	walk = func(n *domain.TreeNode) {
		n.IsExpanded = m.expanded[n.ID] && len(n.Children) > 0
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, tree := range m.trees {
		walk(tree)
	}
}

// applyFocus expands the ancestors of the pending focus node and moves the
// cursor onto it
func (m *BrowserModel) applyFocus() {
	if m.focusID == "" {
		return
	}
	id := m.focusID
	m.focusID = ""
	for _, tree := range m.trees {
		if node := tree.Find(id); node != nil {
			for p := node.Parent; p != nil; p = p.Parent {
				p.IsExpanded = true
			}
			m.refreshFlatNodes()
			m.moveTo(id)
			return
		}
	}
}

func (m *BrowserModel) moveTo(id string) {
	for i, n := range m.flatNodes {
		if n.ID == id {
			m.cursor = i
			return
		}
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.trees == nil {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Linksync"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.ws.Doc.Name + " · " + m.ws.Repo.Path()))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	for i, node := range m.visibleNodes() {
		b.WriteString(m.renderNode(node, i+m.offset() == m.cursor))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BrowserKeys.Mark, BrowserKeys.Link, BrowserKeys.Sync, BrowserKeys.GoTo,
		BrowserKeys.Groups, BrowserKeys.Help, BrowserKeys.Quit,
	))

	return styles.App.Render(b.String())
}

// listHeight is the number of tree rows that fit between header and footer
func (m *BrowserModel) listHeight() int {
	if m.Height <= 0 {
		return len(m.flatNodes)
	}
	h := m.Height - 12
	if h < 3 {
		h = 3
	}
	return h
}

func (m *BrowserModel) offset() int {
	h := m.listHeight()
	if m.cursor < h {
		return 0
	}
	return m.cursor - h + 1
}

func (m *BrowserModel) visibleNodes() []*domain.TreeNode {
	start := m.offset()
	end := start + m.listHeight()
	if end > len(m.flatNodes) {
		end = len(m.flatNodes)
	}
	return m.flatNodes[start:end]
}

func (m *BrowserModel) renderNode(node *domain.TreeNode, cursor bool) string {
	indent := strings.Repeat("  ", node.Depth())

	var prefix string
	switch {
	case len(node.Children) == 0:
		prefix = styles.TreeLeaf
	case node.IsExpanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	mark := "  "
	if m.selected[node.ID] {
		mark = styles.NodeMarked.Render(styles.MarkSelected)
	}

	return mark + indent + styles.TreeBranch.Render(prefix) + RenderNodeLabel(node, cursor)
}

func (m *BrowserModel) renderStatus() string {
	syncState := "sync unavailable"
	if m.hasLink {
		syncState = "sync available"
	}
	linked := 0
	for _, tree := range m.trees {
		linked += tree.CountLinked()
	}
	status := fmt.Sprintf("%d selected · %s · %d linked · groups: %s",
		len(m.selected), syncState, linked, m.ws.Sync.String())
	return RenderStatus(m.ws.Backend(), status)
}

// HasLink reports whether the first selected node is a derived copy
func (m *BrowserModel) HasLink() bool {
	return m.hasLink
}

// Reload rebuilds the tree from the workspace, keeping expansion state. The
// tree is built before Reload returns.
func (m *BrowserModel) Reload() tea.Cmd {
	if m.trees != nil {
		m.expanded = make(map[string]bool)
		for _, tree := range m.trees {
			for _, n := range tree.Flatten() {
				if n.IsExpanded {
					m.expanded[n.ID] = true
				}
			}
		}
	}
	return deliver(m.loadTree())
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToGroupsMsg struct{}

type SwitchToInspectMsg struct {
	NodeID string
}

type SwitchToBrowserMsg struct{}

// OpenEditorMsg asks the app to open a file in the external editor
type OpenEditorMsg struct {
	Path string
}
