package domain

import "strings"

// NodeType is the type tag of a node in the host document tree
type NodeType int

const (
	NodeTypeUnknown NodeType = iota
	NodeTypePage
	NodeTypeComponent
	NodeTypeComponentSet
	NodeTypeInstance
	NodeTypeFrame
	NodeTypeGroup
	NodeTypeText
	NodeTypeRectangle
	NodeTypeEllipse
	NodeTypeVector
)

var nodeTypeNames = map[NodeType]string{
	NodeTypePage:         "PAGE",
	NodeTypeComponent:    "COMPONENT",
	NodeTypeComponentSet: "COMPONENT_SET",
	NodeTypeInstance:     "INSTANCE",
	NodeTypeFrame:        "FRAME",
	NodeTypeGroup:        "GROUP",
	NodeTypeText:         "TEXT",
	NodeTypeRectangle:    "RECTANGLE",
	NodeTypeEllipse:      "ELLIPSE",
	NodeTypeVector:       "VECTOR",
}

func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseNodeType converts a type tag such as "COMPONENT_SET" into a NodeType.
// Matching is case-insensitive; unknown tags return NodeTypeUnknown.
func ParseNodeType(s string) NodeType {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t, name := range nodeTypeNames {
		if name == s {
			return t
		}
	}
	return NodeTypeUnknown
}

// Linkable reports whether a node of this type can be the origin of a derived copy
func (t NodeType) Linkable() bool {
	switch t {
	case NodeTypeComponent, NodeTypeComponentSet, NodeTypeInstance:
		return true
	default:
		return false
	}
}

// FrameLike reports whether the type carries auto-layout properties
func (t NodeType) FrameLike() bool {
	switch t {
	case NodeTypeFrame, NodeTypeComponent, NodeTypeInstance:
		return true
	default:
		return false
	}
}

// Rect is the position and extent of a node
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// FontName identifies a font asset by family and style
type FontName struct {
	Family string `yaml:"family" json:"family"`
	Style  string `yaml:"style" json:"style"`
}

func (f FontName) String() string {
	return f.Family + " " + f.Style
}
