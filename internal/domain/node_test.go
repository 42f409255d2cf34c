package domain

import "testing"

func TestParseNodeType(t *testing.T) {
	tests := []struct {
		input string
		want  NodeType
	}{
		{"COMPONENT", NodeTypeComponent},
		{"component_set", NodeTypeComponentSet},
		{" Instance ", NodeTypeInstance},
		{"TEXT", NodeTypeText},
		{"STICKY", NodeTypeUnknown},
		{"", NodeTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseNodeType(tt.input); got != tt.want {
				t.Errorf("ParseNodeType(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNodeType_Linkable(t *testing.T) {
	linkable := map[NodeType]bool{
		NodeTypeComponent:    true,
		NodeTypeComponentSet: true,
		NodeTypeInstance:     true,
	}

	for typ := NodeTypeUnknown; typ <= NodeTypeVector; typ++ {
		if got := typ.Linkable(); got != linkable[typ] {
			t.Errorf("%s.Linkable() = %v, want %v", typ, got, linkable[typ])
		}
	}
}
