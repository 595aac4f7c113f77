// Package host declares the narrow read-only view of the project object
// model that menu extraction depends on. The host application owns the
// real implementations; this package only names the capabilities so the
// extraction core can be tested against fakes.
package host

import "github.com/mapmenu/mapmenu/api"

// NodeType is the kind of a layer-tree node.
type NodeType int

const (
	NodeTypeGroup NodeType = iota
	NodeTypeLayer
	// NodeTypeOther covers node kinds this module does not represent:
	// they are skipped during the walk.
	NodeTypeOther
)

// TreeNode is one node of the host's layer tree. Implementations must not
// be mutated while a walk is in progress; the extraction core only reads.
type TreeNode interface {
	Name() string
	Type() NodeType
	// Parent returns nil for the root node.
	Parent() TreeNode
	// Children returns the node's children in display order.
	Children() []TreeNode
	// CustomProperty returns the named custom string property, or "" when
	// the node does not carry it. Extraction reads "embedded" and
	// "embedded_project".
	CustomProperty(key string) string
	Visible() bool
	Expanded() bool
	// LayerID returns the referenced layer's identifier for layer nodes,
	// "" for any other node type.
	LayerID() string
}

// MapLayer is the host's concrete layer object behind a layer-tree node.
type MapLayer interface {
	ID() string
	Type() api.LayerType
	// GeometryType is only meaningful when Type is vector.
	GeometryType() api.GeometryType
	IsSpatial() bool
	Title() string
	Abstract() string
	MetadataTitle() string
	MetadataAbstract() string
	// Notes returns the user notes through the host's high-level
	// accessor. Hosts may only support this for vector layers.
	Notes() string
}

// Project is the loaded project the layer tree belongs to.
type Project interface {
	// AbsoluteFilePath is the absolute path of the project file.
	AbsoluteFilePath() string
	// ReadPath resolves a possibly-relative source path against the
	// project's own location. Empty input resolves to "".
	ReadPath(src string) string
	// MapLayer looks up a layer by identifier. ok is false when no live
	// layer carries the identifier.
	MapLayer(id string) (layer MapLayer, ok bool)
	// LayerTreeRoot returns the root node of the layer tree.
	LayerTreeRoot() TreeNode
}
