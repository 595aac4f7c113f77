// Package api defines the serializable menu configuration tree extracted
// from a geospatial project. These types are the public contract: a plain,
// immutable record structure intended for a menu-rendering layer, with no
// back-references into the host project model.
package api

import (
	"encoding/json"
	"fmt"
)

// LayerType mirrors the host's layer taxonomy.
type LayerType string

const (
	LayerTypeVector     LayerType = "vector"
	LayerTypeRaster     LayerType = "raster"
	LayerTypeMesh       LayerType = "mesh"
	LayerTypePointCloud LayerType = "point-cloud"
	LayerTypeAnnotation LayerType = "annotation"
	LayerTypePlugin     LayerType = "plugin"
	LayerTypeGroup      LayerType = "group"
)

// GeometryType is the shape category of a vector layer's features.
// It is only meaningful when LayerType is vector.
type GeometryType string

const (
	GeometryPoint   GeometryType = "point"
	GeometryLine    GeometryType = "line"
	GeometryPolygon GeometryType = "polygon"
	GeometryUnknown GeometryType = "unknown"
	GeometryNull    GeometryType = "null"
)

// Child is one entry of a group's ordered child list: either a
// *GroupConfig or a *LayerConfig. The Kind discriminator tags the JSON
// encoding so cached configs round-trip.
type Child interface {
	ChildKind() string
}

const (
	KindGroup = "group"
	KindLayer = "layer"
)

// LayerConfig is a leaf of the menu tree: one map layer.
type LayerConfig struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	// LayerID is unique within the owning project.
	LayerID string `json:"layer_id"`
	// Filename is the project file this layer's definition actually lives
	// in. For embedded layers it differs from the top-level project file.
	Filename         string    `json:"filename"`
	Visible          bool      `json:"visible"`
	Expanded         bool      `json:"expanded"`
	Embedded         bool      `json:"embedded"`
	IsSpatial        bool      `json:"is_spatial"`
	LayerType        LayerType `json:"layer_type"`
	MetadataAbstract string    `json:"metadata_abstract"`
	MetadataTitle    string    `json:"metadata_title"`
	LayerNotes       string    `json:"layer_notes"`
	Abstract         string    `json:"abstract"`
	Title            string    `json:"title"`
	// GeometryType is set if and only if LayerType is vector.
	GeometryType *GeometryType `json:"geometry_type,omitempty"`
}

// ChildKind implements Child.
func (*LayerConfig) ChildKind() string { return KindLayer }

// GroupConfig is an interior node of the menu tree.
type GroupConfig struct {
	Kind     string  `json:"kind"`
	Name     string  `json:"name"`
	Filename string  `json:"filename"`
	Embedded bool    `json:"embedded"`
	Childs   []Child `json:"childs"`
}

// ChildKind implements Child.
func (*GroupConfig) ChildKind() string { return KindGroup }

// ProjectConfig is the root of the extracted menu tree.
type ProjectConfig struct {
	// Filename is the absolute path of the top-level project file.
	Filename string `json:"filename"`
	// URI is the locator the project was opened from. It may be a local
	// path, an HTTP URL, or a database connection string.
	URI       string       `json:"uri"`
	RootGroup *GroupConfig `json:"root_group"`
}

// UnmarshalJSON decodes the tagged child union by peeking at each child's
// "kind" field before committing to a concrete type.
func (g *GroupConfig) UnmarshalJSON(data []byte) error {
	type alias struct {
		Kind     string            `json:"kind"`
		Name     string            `json:"name"`
		Filename string            `json:"filename"`
		Embedded bool              `json:"embedded"`
		Childs   []json.RawMessage `json:"childs"`
	}
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Kind = raw.Kind
	g.Name = raw.Name
	g.Filename = raw.Filename
	g.Embedded = raw.Embedded
	g.Childs = nil

	for i, msg := range raw.Childs {
		var probe struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(msg, &probe); err != nil {
			return fmt.Errorf("child %d of group %q: %w", i, g.Name, err)
		}
		switch probe.Kind {
		case KindGroup:
			var child GroupConfig
			if err := json.Unmarshal(msg, &child); err != nil {
				return fmt.Errorf("group child %d of %q: %w", i, g.Name, err)
			}
			g.Childs = append(g.Childs, &child)
		case KindLayer:
			var child LayerConfig
			if err := json.Unmarshal(msg, &child); err != nil {
				return fmt.Errorf("layer child %d of %q: %w", i, g.Name, err)
			}
			g.Childs = append(g.Childs, &child)
		default:
			return fmt.Errorf("child %d of group %q: unknown kind %q", i, g.Name, probe.Kind)
		}
	}
	return nil
}
