package docfile

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"linksync/internal/adapters/memdoc"
	"linksync/internal/domain"
)

// Decode reads a YAML document
func Decode(r io.Reader) (*memdoc.Document, error) {
	var f fileDocument
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := memdoc.New(f.Name)
	doc.ID = f.ID
	instances := make(map[*memdoc.Node]string)

	for _, fp := range f.Pages {
		var page *memdoc.Node
		if fp.ID == "" {
			page = doc.AddPage(fp.Name)
		} else {
			var err error
			if page, err = doc.AddPageWithID(fp.ID, fp.Name); err != nil {
				return nil, err
			}
		}
		for _, child := range fp.Children {
			if err := addTree(doc, page, child, instances); err != nil {
				return nil, err
			}
		}
	}

	for _, fl := range f.Library {
		if fl.Type == "" {
			fl.Type = domain.NodeTypeComponent.String()
		}
		spec, err := nodeSpec(fl)
		if err != nil {
			return nil, err
		}
		root, err := doc.AddLibraryComponent(spec)
		if err != nil {
			return nil, fmt.Errorf("library component %q: %w", fl.Name, err)
		}
		applyMixed(root, fl.Mixed)
		for _, child := range fl.Children {
			if err := addTree(doc, root, child, instances); err != nil {
				return nil, err
			}
		}
	}

	for inst, defID := range instances {
		if def, ok := doc.Node(defID); ok {
			inst.SetMainComponent(def)
		}
	}

	if len(f.Fonts) > 0 {
		doc.SetFonts(f.Fonts...)
	}

	if f.Current != "" {
		page, ok := doc.Node(f.Current)
		if !ok {
			return nil, fmt.Errorf("current page %s does not exist", f.Current)
		}
		if err := doc.SetCurrentSection(page); err != nil {
			return nil, err
		}
	}

	if err := doc.SelectIDs(f.Selection...); err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}

	meta := doc.PluginData()
	for nodeID, entries := range f.PluginData {
		for key, value := range entries {
			if err := meta.Set(nodeID, key, value); err != nil {
				return nil, err
			}
		}
	}

	return doc, nil
}

func addTree(doc *memdoc.Document, parent *memdoc.Node, fn fileNode, instances map[*memdoc.Node]string) error {
	spec, err := nodeSpec(fn)
	if err != nil {
		return err
	}
	n, err := doc.Add(parent, spec)
	if err != nil {
		return fmt.Errorf("node %s: %w", fn.ID, err)
	}
	applyMixed(n, fn.Mixed)
	if fn.MainComponent != "" {
		instances[n] = fn.MainComponent
	}
	for _, child := range fn.Children {
		if err := addTree(doc, n, child, instances); err != nil {
			return err
		}
	}
	return nil
}

func nodeSpec(fn fileNode) (memdoc.NodeSpec, error) {
	spec := memdoc.NodeSpec{
		ID:     fn.ID,
		Type:   domain.ParseNodeType(fn.Type),
		Name:   fn.Name,
		Key:    fn.Key,
		Bounds: fn.Bounds.rect(),
		Props:  make(map[domain.Property]domain.Value, len(fn.Props)),
	}
	if spec.Type == domain.NodeTypeUnknown {
		return spec, fmt.Errorf("node %s: unknown type %q", fn.ID, fn.Type)
	}
	for name, raw := range fn.Props {
		prop := domain.Property(name)
		if prop == domain.PropFontName {
			font, err := decodeFont(raw)
			if err != nil {
				return spec, fmt.Errorf("node %s: %w", fn.ID, err)
			}
			spec.Props[prop] = domain.Concrete(font)
			continue
		}
		spec.Props[prop] = domain.Concrete(raw)
	}
	for _, name := range fn.ReadOnly {
		spec.ReadOnly = append(spec.ReadOnly, domain.Property(name))
	}
	return spec, nil
}

func applyMixed(n *memdoc.Node, mixed []string) {
	for _, name := range mixed {
		n.SetMixed(domain.Property(name))
	}
}

func decodeFont(raw any) (domain.FontName, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return domain.FontName{}, fmt.Errorf("fontName must be a mapping, got %T", raw)
	}
	family, _ := m["family"].(string)
	style, _ := m["style"].(string)
	if family == "" {
		return domain.FontName{}, fmt.Errorf("fontName needs a family")
	}
	if style == "" {
		style = "Regular"
	}
	return domain.FontName{Family: family, Style: style}, nil
}

// Encode writes doc as YAML. Imported library copies are not written; they
// are imported again on demand.
func Encode(w io.Writer, doc *memdoc.Document) error {
	f := fileDocument{
		ID:   doc.ID,
		Name: doc.Name,
	}
	if current := doc.CurrentSection(); current != nil {
		f.Current = current.ID()
	}
	for _, n := range doc.Selection() {
		f.Selection = append(f.Selection, n.ID())
	}

	f.Fonts = doc.Fonts()
	sort.Slice(f.Fonts, func(i, j int) bool {
		return f.Fonts[i].String() < f.Fonts[j].String()
	})

	for _, page := range doc.Pages() {
		f.Pages = append(f.Pages, encodeNode(page))
	}

	keys := doc.LibraryKeys()
	sort.Strings(keys)
	for _, key := range keys {
		if lib, ok := doc.Library(key); ok {
			f.Library = append(f.Library, encodeNode(lib))
		}
	}

	meta := doc.PluginData()
	if ids := meta.NodeIDs(); len(ids) > 0 {
		f.PluginData = make(map[string]map[string]string, len(ids))
		for _, id := range ids {
			f.PluginData[id] = meta.Snapshot(id)
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return enc.Close()
}

func encodeNode(n *memdoc.Node) fileNode {
	fn := fileNode{
		ID:     n.ID(),
		Type:   n.Type().String(),
		Name:   n.Name(),
		Key:    n.Key(),
		Bounds: toFileRect(n.Bounds()),
	}

	for _, prop := range n.Props() {
		v := n.Get(prop)
		switch v.Kind() {
		case domain.ValueIndeterminate:
			fn.Mixed = append(fn.Mixed, string(prop))
		case domain.ValueConcrete:
			if fn.Props == nil {
				fn.Props = make(map[string]any)
			}
			if font, ok := v.Font(); ok {
				fn.Props[string(prop)] = map[string]any{"family": font.Family, "style": font.Style}
				continue
			}
			fn.Props[string(prop)] = v.Raw()
		}
	}
	for _, prop := range n.ReadOnly() {
		fn.ReadOnly = append(fn.ReadOnly, string(prop))
	}
	if main := n.MainComponent(); main != nil {
		fn.MainComponent = main.ID()
	}
	for _, child := range n.ChildNodes() {
		fn.Children = append(fn.Children, encodeNode(child))
	}
	return fn
}
