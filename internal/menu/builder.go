// Package menu extracts a serializable menu configuration tree from a
// loaded project. The walk is a pure projection: it reads the host object
// graph and the raw project document, mutates neither, and returns an
// owned api tree with no references back into the host model.
package menu

import (
	"errors"
	"fmt"

	"github.com/mapmenu/mapmenu/api"
	"github.com/mapmenu/mapmenu/internal/host"
)

// ErrLayerNotFound reports a layer-tree node whose layer identifier no
// longer resolves to a live layer in the project.
var ErrLayerNotFound = errors.New("layer not found in project")

// BuildProjectConfig walks the project's layer tree and returns the menu
// configuration for the whole project. uri is the locator the project was
// opened from and is recorded verbatim.
func BuildProjectConfig(project host.Project, uri string, doc Document) (*api.ProjectConfig, error) {
	root, err := BuildGroupConfig(project.LayerTreeRoot(), project, doc)
	if err != nil {
		return nil, err
	}
	return &api.ProjectConfig{
		Filename:  project.AbsoluteFilePath(),
		URI:       uri,
		RootGroup: root,
	}, nil
}

// BuildGroupConfig builds the configuration for a group node and,
// recursively, its children in display order. Children that are neither
// groups nor layers are not represented in the output.
func BuildGroupConfig(node host.TreeNode, project host.Project, doc Document) (*api.GroupConfig, error) {
	embedded, filename := EmbeddedSource(node, project)

	var childs []api.Child
	for _, child := range node.Children() {
		switch child.Type() {
		case host.NodeTypeGroup:
			cfg, err := BuildGroupConfig(child, project, doc)
			if err != nil {
				return nil, err
			}
			childs = append(childs, cfg)
		case host.NodeTypeLayer:
			cfg, err := BuildLayerConfig(child, project, doc)
			if err != nil {
				return nil, err
			}
			childs = append(childs, cfg)
		}
	}

	return &api.GroupConfig{
		Kind:     api.KindGroup,
		Name:     node.Name(),
		Filename: filename,
		Embedded: embedded,
		Childs:   childs,
	}, nil
}

// BuildLayerConfig builds the configuration for a single layer node. It
// fails when the node's layer identifier does not resolve to a live layer
// in the project (wrapping ErrLayerNotFound) rather than emitting a
// placeholder entry.
func BuildLayerConfig(node host.TreeNode, project host.Project, doc Document) (*api.LayerConfig, error) {
	embedded, filename := EmbeddedSource(node, project)

	layer, ok := project.MapLayer(node.LayerID())
	if !ok {
		return nil, fmt.Errorf("node %q references layer %q: %w", node.Name(), node.LayerID(), ErrLayerNotFound)
	}

	cfg := &api.LayerConfig{
		Kind:             api.KindLayer,
		Name:             node.Name(),
		LayerID:          node.LayerID(),
		Filename:         filename,
		Visible:          node.Visible(),
		Expanded:         node.Expanded(),
		Embedded:         embedded,
		IsSpatial:        layer.IsSpatial(),
		LayerType:        layer.Type(),
		MetadataAbstract: layer.MetadataAbstract(),
		MetadataTitle:    layer.MetadataTitle(),
		LayerNotes:       LayerNotes(layer, doc),
		Abstract:         layer.Abstract(),
		Title:            layer.Title(),
	}

	if layer.Type() == api.LayerTypeVector {
		gt := layer.GeometryType()
		cfg.GeometryType = &gt
	}

	return cfg, nil
}
