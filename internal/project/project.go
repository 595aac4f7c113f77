// Package project is a reference implementation of the host capability
// interfaces, backed directly by the project XML. It exists so the CLI can
// extract menus from project files on disk without a running host
// application; a real host would supply its own object model instead.
package project

import (
	"path/filepath"

	"github.com/mapmenu/mapmenu/api"
	"github.com/mapmenu/mapmenu/internal/host"
)

// Project implements host.Project over a parsed project file.
type Project struct {
	path   string
	root   *node
	layers map[string]*mapLayer
}

// AbsoluteFilePath implements host.Project.
func (p *Project) AbsoluteFilePath() string { return p.path }

// ReadPath implements host.Project. Relative paths resolve against the
// project file's directory.
func (p *Project) ReadPath(src string) string {
	if src == "" {
		return ""
	}
	if filepath.IsAbs(src) {
		return filepath.Clean(src)
	}
	return filepath.Join(filepath.Dir(p.path), src)
}

// MapLayer implements host.Project.
func (p *Project) MapLayer(id string) (host.MapLayer, bool) {
	l, ok := p.layers[id]
	if !ok {
		return nil, false
	}
	return l, true
}

// LayerTreeRoot implements host.Project.
func (p *Project) LayerTreeRoot() host.TreeNode { return p.root }

// node implements host.TreeNode.
type node struct {
	name     string
	typ      host.NodeType
	parent   *node
	children []*node
	props    map[string]string
	visible  bool
	expanded bool
	layerID  string
}

func (n *node) Name() string        { return n.name }
func (n *node) Type() host.NodeType { return n.typ }
func (n *node) Visible() bool       { return n.visible }
func (n *node) Expanded() bool      { return n.expanded }
func (n *node) LayerID() string     { return n.layerID }

func (n *node) Parent() host.TreeNode {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Children() []host.TreeNode {
	out := make([]host.TreeNode, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) CustomProperty(key string) string { return n.props[key] }

// mapLayer implements host.MapLayer.
type mapLayer struct {
	id           string
	name         string
	typ          api.LayerType
	geometry     api.GeometryType
	spatial      bool
	title        string
	abstract     string
	metaTitle    string
	metaAbstract string
	notes        string
}

func (l *mapLayer) ID() string                     { return l.id }
func (l *mapLayer) Type() api.LayerType            { return l.typ }
func (l *mapLayer) GeometryType() api.GeometryType { return l.geometry }
func (l *mapLayer) IsSpatial() bool                { return l.spatial }
func (l *mapLayer) Title() string                  { return l.title }
func (l *mapLayer) Abstract() string               { return l.abstract }
func (l *mapLayer) MetadataTitle() string          { return l.metaTitle }
func (l *mapLayer) MetadataAbstract() string       { return l.metaAbstract }
func (l *mapLayer) Notes() string                  { return l.notes }
