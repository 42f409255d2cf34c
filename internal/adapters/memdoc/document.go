package memdoc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"linksync/internal/application"
	"linksync/internal/domain"
	"linksync/internal/ports"
)

// NodeSpec describes a node to add to a document
type NodeSpec struct {
	ID       string // generated when empty
	Type     domain.NodeType
	Name     string
	Key      string // durable key; components only
	Bounds   domain.Rect
	Props    map[domain.Property]domain.Value
	ReadOnly []domain.Property
}

// Document implements ports.Document entirely in memory
type Document struct {
	ID   string
	Name string

	pages    []*Node
	current  *Node
	index    map[string]*Node
	nextID   int
	library  map[string]*Node
	imported map[string]*Node
	fonts    map[domain.FontName]bool

	selection []*Node
	viewed    []string

	pluginData *PluginData
}

// Ensure Document implements Document
var _ ports.Document = (*Document)(nil)

// New creates an empty document
func New(name string) *Document {
	return &Document{
		Name:       name,
		index:      make(map[string]*Node),
		nextID:     1,
		library:    make(map[string]*Node),
		imported:   make(map[string]*Node),
		pluginData: NewPluginData(),
	}
}

// PluginData returns the document's inline metadata store
func (d *Document) PluginData() *PluginData {
	return d.pluginData
}

// AddPage appends a page and makes it current when it is the first one
func (d *Document) AddPage(name string) *Node {
	page := d.newNode(NodeSpec{Type: domain.NodeTypePage, Name: name}, false)
	d.pages = append(d.pages, page)
	if d.current == nil {
		d.current = page
	}
	return page
}

// AddPageWithID appends a page with a fixed id
func (d *Document) AddPageWithID(id, name string) (*Node, error) {
	if _, exists := d.index[id]; exists {
		return nil, fmt.Errorf("duplicate node id %s", id)
	}
	page := d.newNode(NodeSpec{ID: id, Type: domain.NodeTypePage, Name: name}, false)
	d.pages = append(d.pages, page)
	if d.current == nil {
		d.current = page
	}
	return page, nil
}

// Add creates a node under parent
func (d *Document) Add(parent *Node, spec NodeSpec) (*Node, error) {
	if parent == nil {
		return nil, errors.New("parent is required")
	}
	if !parent.HasChildren() {
		return nil, fmt.Errorf("%s %s cannot have children", parent.typ, parent.id)
	}
	if spec.Type == domain.NodeTypePage || spec.Type == domain.NodeTypeUnknown {
		return nil, fmt.Errorf("invalid node type %s", spec.Type)
	}
	if spec.ID != "" {
		if _, exists := d.index[spec.ID]; exists {
			return nil, fmt.Errorf("duplicate node id %s", spec.ID)
		}
	}

	n := d.newNode(spec, parent.library)
	n.parent = parent
	parent.children = append(parent.children, n)
	return n, nil
}

// MustAdd is Add for fixtures; it panics on error
func (d *Document) MustAdd(parent *Node, spec NodeSpec) *Node {
	n, err := d.Add(parent, spec)
	if err != nil {
		panic(err)
	}
	return n
}

// AddLibraryComponent registers an importable definition that lives outside
// the document. Children are added with Add using the returned root.
func (d *Document) AddLibraryComponent(spec NodeSpec) (*Node, error) {
	if spec.Key == "" {
		return nil, errors.New("library components need a key")
	}
	spec.Type = domain.NodeTypeComponent
	root := d.newNode(spec, true)
	d.library[spec.Key] = root
	delete(d.imported, spec.Key)
	return root, nil
}

// LibraryKeys lists the keys of registered library definitions
func (d *Document) LibraryKeys() []string {
	keys := make([]string, 0, len(d.library))
	for k := range d.library {
		keys = append(keys, k)
	}
	return keys
}

// Library returns the library definition for key
func (d *Document) Library(key string) (*Node, bool) {
	n, ok := d.library[key]
	return n, ok
}

// RevokeKey removes a library definition, as an unpublished asset would
func (d *Document) RevokeKey(key string) {
	delete(d.library, key)
	delete(d.imported, key)
}

// Remove deletes a node and its subtree from the document. Plugin data of
// removed nodes is kept, as the host does not clean it up either.
func (d *Document) Remove(n *Node) error {
	if n == nil {
		return errors.New("node is required")
	}
	if n.typ == domain.NodeTypePage {
		return errors.New("pages cannot be removed")
	}
	if i := n.IndexInParent(); i >= 0 {
		p := n.parent
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	d.unindex(n)
	n.parent = nil

	kept := d.selection[:0]
	for _, s := range d.selection {
		if _, ok := d.index[s.id]; ok {
			kept = append(kept, s)
		}
	}
	d.selection = kept
	return nil
}

func (d *Document) unindex(n *Node) {
	delete(d.index, n.id)
	for _, c := range n.children {
		d.unindex(c)
	}
}

// SetFonts restricts which fonts LoadFont accepts. With no fonts set every
// font loads.
func (d *Document) SetFonts(fonts ...domain.FontName) {
	d.fonts = make(map[domain.FontName]bool, len(fonts))
	for _, f := range fonts {
		d.fonts[f] = true
	}
}

// Fonts returns the available fonts, nil when unrestricted
func (d *Document) Fonts() []domain.FontName {
	if d.fonts == nil {
		return nil
	}
	out := make([]domain.FontName, 0, len(d.fonts))
	for f := range d.fonts {
		out = append(out, f)
	}
	return out
}

// Node returns the concrete node for id
func (d *Document) Node(id string) (*Node, bool) {
	n, ok := d.index[id]
	return n, ok
}

// NodeByID implements ports.NodeLookup
func (d *Document) NodeByID(id string) (ports.Node, bool) {
	n, ok := d.index[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// Roots returns the pages in order
func (d *Document) Roots() []ports.Node {
	out := make([]ports.Node, len(d.pages))
	for i, p := range d.pages {
		out[i] = p
	}
	return out
}

// Pages returns the concrete pages
func (d *Document) Pages() []*Node {
	return d.pages
}

// ImportByKey returns the importable definition with the given key. Local
// components win over library definitions; library definitions are copied
// into the document once per key.
func (d *Document) ImportByKey(ctx context.Context, key string) (ports.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, n := range d.index {
		if n.key == key && n.typ == domain.NodeTypeComponent && !n.library {
			return n, nil
		}
	}
	if n, ok := d.imported[key]; ok {
		return n, nil
	}
	def, ok := d.library[key]
	if !ok {
		return nil, fmt.Errorf("%w: no component with key %s", application.ErrImportFailed, key)
	}
	copied := d.cloneTree(def, nil, false)
	copied.key = key
	d.imported[key] = copied
	return copied, nil
}

// LoadFont implements ports.FontLoader
func (d *Document) LoadFont(ctx context.Context, font domain.FontName) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.fonts == nil || d.fonts[font] {
		return nil
	}
	return fmt.Errorf("%w: %s", application.ErrFontUnavailable, font)
}

// Selection returns the selected nodes
func (d *Document) Selection() []ports.Node {
	out := make([]ports.Node, len(d.selection))
	for i, n := range d.selection {
		out[i] = n
	}
	return out
}

// Select replaces the selection. Nodes from other documents are ignored.
func (d *Document) Select(nodes ...ports.Node) {
	d.selection = d.selection[:0]
	for _, n := range nodes {
		if own, ok := d.index[n.ID()]; ok {
			d.selection = append(d.selection, own)
		}
	}
}

// SelectIDs replaces the selection with the nodes named by ids
func (d *Document) SelectIDs(ids ...string) error {
	nodes := make([]ports.Node, 0, len(ids))
	for _, id := range ids {
		n, ok := d.index[id]
		if !ok {
			return fmt.Errorf("%w: node %s", application.ErrNotFound, id)
		}
		nodes = append(nodes, n)
	}
	d.Select(nodes...)
	return nil
}

// ScrollIntoView records the nodes brought into view
func (d *Document) ScrollIntoView(nodes ...ports.Node) {
	d.viewed = d.viewed[:0]
	for _, n := range nodes {
		d.viewed = append(d.viewed, n.ID())
	}
}

// Viewed returns the ids last scrolled into view
func (d *Document) Viewed() []string {
	return d.viewed
}

// Section returns the page containing n, or nil
func (d *Document) Section(n ports.Node) ports.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Type() == domain.NodeTypePage {
			return cur
		}
	}
	return nil
}

// CurrentSection returns the current page
func (d *Document) CurrentSection() ports.Node {
	if d.current == nil {
		return nil
	}
	return d.current
}

// SetCurrentSection switches the current page
func (d *Document) SetCurrentSection(section ports.Node) error {
	for _, p := range d.pages {
		if p.id == section.ID() {
			d.current = p
			return nil
		}
	}
	return fmt.Errorf("%w: page %s", application.ErrNotFound, section.ID())
}

func (d *Document) newNode(spec NodeSpec, library bool) *Node {
	id := spec.ID
	if id == "" {
		id = d.generateID(library)
	} else {
		d.observeID(id)
	}

	n := &Node{
		doc:      d,
		id:       id,
		typ:      spec.Type,
		name:     spec.Name,
		key:      spec.Key,
		bounds:   spec.Bounds,
		props:    make(map[domain.Property]domain.Value, len(spec.Props)),
		readOnly: make(map[domain.Property]bool, len(spec.ReadOnly)),
		library:  library,
	}
	for p, v := range spec.Props {
		n.props[p] = copyValue(v)
	}
	for _, p := range spec.ReadOnly {
		n.readOnly[p] = true
	}
	if !library {
		d.index[id] = n
	}
	return n
}

func (d *Document) generateID(library bool) string {
	prefix := "1"
	if library {
		prefix = "lib"
	}
	for {
		id := prefix + ":" + strconv.Itoa(d.nextID)
		d.nextID++
		if _, taken := d.index[id]; taken {
			continue
		}
		// Plugin data outlives deleted nodes and must not be inherited
		if d.pluginData.Has(id) {
			continue
		}
		return id
	}
}

// observeID keeps generated ids clear of ids loaded from a file
func (d *Document) observeID(id string) {
	_, suffix, ok := strings.Cut(id, ":")
	if !ok {
		return
	}
	if n, err := strconv.Atoi(suffix); err == nil && n >= d.nextID {
		d.nextID = n + 1
	}
}
