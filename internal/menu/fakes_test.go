package menu

import (
	"path/filepath"

	"github.com/mapmenu/mapmenu/api"
	"github.com/mapmenu/mapmenu/internal/host"
)

// In-memory stand-ins for the host object model. Only the behavior the
// extraction core reads is modeled.

type fakeNode struct {
	name     string
	typ      host.NodeType
	parent   *fakeNode
	children []*fakeNode
	props    map[string]string
	visible  bool
	expanded bool
	layerID  string
}

func (n *fakeNode) Name() string        { return n.name }
func (n *fakeNode) Type() host.NodeType { return n.typ }
func (n *fakeNode) Visible() bool       { return n.visible }
func (n *fakeNode) Expanded() bool      { return n.expanded }
func (n *fakeNode) LayerID() string     { return n.layerID }

func (n *fakeNode) Parent() host.TreeNode {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) Children() []host.TreeNode {
	out := make([]host.TreeNode, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *fakeNode) CustomProperty(key string) string { return n.props[key] }

func (n *fakeNode) add(children ...*fakeNode) *fakeNode {
	for _, c := range children {
		c.parent = n
	}
	n.children = append(n.children, children...)
	return n
}

func group(name string) *fakeNode {
	return &fakeNode{name: name, typ: host.NodeTypeGroup, visible: true, expanded: true}
}

func layerNode(name, layerID string) *fakeNode {
	return &fakeNode{name: name, typ: host.NodeTypeLayer, visible: true, layerID: layerID}
}

type fakeLayer struct {
	id           string
	typ          api.LayerType
	geometry     api.GeometryType
	spatial      bool
	title        string
	abstract     string
	metaTitle    string
	metaAbstract string
	notes        string
}

func (l *fakeLayer) ID() string                     { return l.id }
func (l *fakeLayer) Type() api.LayerType            { return l.typ }
func (l *fakeLayer) GeometryType() api.GeometryType { return l.geometry }
func (l *fakeLayer) IsSpatial() bool                { return l.spatial }
func (l *fakeLayer) Title() string                  { return l.title }
func (l *fakeLayer) Abstract() string               { return l.abstract }
func (l *fakeLayer) MetadataTitle() string          { return l.metaTitle }
func (l *fakeLayer) MetadataAbstract() string       { return l.metaAbstract }
func (l *fakeLayer) Notes() string                  { return l.notes }

type fakeProject struct {
	path   string
	root   *fakeNode
	layers map[string]*fakeLayer
}

func (p *fakeProject) AbsoluteFilePath() string     { return p.path }
func (p *fakeProject) LayerTreeRoot() host.TreeNode { return p.root }

func (p *fakeProject) ReadPath(src string) string {
	if src == "" || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(filepath.Dir(p.path), src)
}

func (p *fakeProject) MapLayer(id string) (host.MapLayer, bool) {
	l, ok := p.layers[id]
	if !ok {
		return nil, false
	}
	return l, true
}

// fakeDoc maps layer id to note text.
type fakeDoc map[string]string

func (d fakeDoc) UserNotes(layerID string) (string, bool) {
	notes, ok := d[layerID]
	return notes, ok
}
