package docfile

import "linksync/internal/domain"

// fileDocument is the on-disk shape of a document
type fileDocument struct {
	ID         string                       `yaml:"id,omitempty"`
	Name       string                       `yaml:"name"`
	Current    string                       `yaml:"current,omitempty"`
	Selection  []string                     `yaml:"selection,omitempty"`
	Fonts      []domain.FontName            `yaml:"fonts,omitempty"`
	Pages      []fileNode                   `yaml:"pages"`
	Library    []fileNode                   `yaml:"library,omitempty"`
	PluginData map[string]map[string]string `yaml:"pluginData,omitempty"`
}

type fileNode struct {
	ID            string         `yaml:"id,omitempty"`
	Type          string         `yaml:"type,omitempty"`
	Name          string         `yaml:"name,omitempty"`
	Key           string         `yaml:"key,omitempty"`
	Bounds        *fileRect      `yaml:"bounds,omitempty"`
	Props         map[string]any `yaml:"props,omitempty"`
	Mixed         []string       `yaml:"mixed,omitempty"`
	ReadOnly      []string       `yaml:"readonly,omitempty"`
	MainComponent string         `yaml:"mainComponent,omitempty"`
	Children      []fileNode     `yaml:"children,omitempty"`
}

type fileRect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r *fileRect) rect() domain.Rect {
	if r == nil {
		return domain.Rect{}
	}
	return domain.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func toFileRect(r domain.Rect) *fileRect {
	if r == (domain.Rect{}) {
		return nil
	}
	return &fileRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
