package styles

import (
	"github.com/charmbracelet/lipgloss"

	"linksync/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Node type colors
	ComponentColor = lipgloss.Color("#8B5CF6") // Violet
	SetColor       = lipgloss.Color("#6366F1") // Indigo
	InstanceColor  = lipgloss.Color("#EC4899") // Pink
	TextColor      = lipgloss.Color("#60A5FA") // Blue

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Tree node styles
	NodePage = lipgloss.NewStyle().
			Bold(true)

	NodeContainer = lipgloss.NewStyle().
			Foreground(Secondary)

	NodeShape = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	NodeMarked = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	LinkMarker = lipgloss.NewStyle().
			Foreground(Secondary)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "
	MarkSelected  = "● "
	MarkLinked    = " ⇢ "

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Group toggles
	GroupOn = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	GroupOff = lipgloss.NewStyle().
			Foreground(Muted)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// NodeStyle returns the style for a node type
func NodeStyle(t domain.NodeType) lipgloss.Style {
	switch t {
	case domain.NodeTypePage:
		return NodePage
	case domain.NodeTypeComponent:
		return NodeShape.Foreground(ComponentColor)
	case domain.NodeTypeComponentSet:
		return NodeShape.Foreground(SetColor)
	case domain.NodeTypeInstance:
		return NodeShape.Foreground(InstanceColor)
	case domain.NodeTypeText:
		return NodeShape.Foreground(TextColor)
	case domain.NodeTypeFrame, domain.NodeTypeGroup:
		return NodeContainer
	default:
		return NodeShape
	}
}
