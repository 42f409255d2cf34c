package commands_test

import (
	"linksync/internal/adapters/memdoc"
	"linksync/internal/domain"
	"linksync/internal/ports"
)

// fixture is a document with one page holding a button component
type fixture struct {
	doc    *memdoc.Document
	meta   *memdoc.PluginData
	page   *memdoc.Node
	button *memdoc.Node
	label  *memdoc.Node
	icon   *memdoc.Node
}

func newFixture() *fixture {
	doc := memdoc.New("fixture")
	page := doc.AddPage("Components")

	button := doc.MustAdd(page, memdoc.NodeSpec{
		Type:   domain.NodeTypeComponent,
		Name:   "Button",
		Key:    "button-key",
		Bounds: domain.Rect{X: 100, Y: 40, Width: 120, Height: 32},
		Props: map[domain.Property]domain.Value{
			domain.PropFills:        domain.Concrete([]any{map[string]any{"type": "SOLID", "color": "#3366ff"}}),
			domain.PropCornerRadius: domain.Concrete(6.0),
			domain.PropPaddingLeft:  domain.Concrete(12.0),
		},
	})
	label := doc.MustAdd(button, memdoc.NodeSpec{
		Type: domain.NodeTypeText,
		Name: "Label",
		Props: map[domain.Property]domain.Value{
			domain.PropFontName:      domain.Concrete(domain.FontName{Family: "Inter", Style: "Bold"}),
			domain.PropFontSize:      domain.Concrete(14.0),
			domain.PropTextCase:      domain.Concrete("UPPER"),
			domain.PropLetterSpacing: domain.Concrete(map[string]any{"unit": "PERCENT", "value": 2.0}),
		},
	})
	icon := doc.MustAdd(button, memdoc.NodeSpec{Type: domain.NodeTypeVector, Name: "Icon"})

	return &fixture{
		doc:    doc,
		meta:   doc.PluginData(),
		page:   page,
		button: button,
		label:  label,
		icon:   icon,
	}
}

func nodes(ns ...*memdoc.Node) []ports.Node {
	out := make([]ports.Node, len(ns))
	for i, n := range ns {
		out[i] = n
	}
	return out
}

func readRecord(meta *memdoc.PluginData, nodeID string) domain.IdentityRecord {
	data := meta.Snapshot(nodeID)
	return domain.IdentityRecord{
		SourceID:  data[domain.KeySourceID],
		IndexPath: domain.IndexPath(data[domain.KeyIndexPath]),
		RootKey:   data[domain.KeyRootKey],
	}
}

// buttonSpec describes a library copy of the fixture button
func (f *fixture) buttonSpec() memdoc.NodeSpec {
	return memdoc.NodeSpec{Name: "Button", Key: f.button.Key()}
}
