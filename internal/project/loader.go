package project

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	billy "github.com/go-git/go-billy/v5"
	"github.com/mapmenu/mapmenu/api"
	"github.com/mapmenu/mapmenu/internal/host"
	"github.com/mapmenu/mapmenu/internal/qgisdoc"
)

// Load reads a .qgs project file (or a .qgz container holding one) from
// fsys and materializes both the host object model and the raw document
// view needed by menu extraction.
func Load(fsys billy.Filesystem, path string) (*Project, *qgisdoc.Document, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open project %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, fmt.Errorf("read project %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".qgz") {
		content, err = extractProjectEntry(content)
		if err != nil {
			return nil, nil, fmt.Errorf("unpack project %s: %w", path, err)
		}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, nil, fmt.Errorf("parse project %s: %w", path, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "qgis" {
		return nil, nil, fmt.Errorf("parse project %s: not a qgis project document", path)
	}

	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(fsys.Root(), abs)
	}

	proj := &Project{
		path:   abs,
		layers: make(map[string]*mapLayer),
	}
	for _, el := range root.FindElements("projectlayers/maplayer") {
		l := parseMapLayer(el)
		if l.id == "" {
			continue
		}
		proj.layers[l.id] = l
	}

	if treeEl := root.SelectElement("layer-tree-group"); treeEl != nil {
		proj.root = parseTreeNode(treeEl, nil)
	} else {
		proj.root = &node{typ: host.NodeTypeGroup, visible: true, expanded: true}
	}

	return proj, qgisdoc.FromEtree(doc), nil
}

// extractProjectEntry returns the first .qgs entry of a .qgz archive.
func extractProjectEntry(content []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}
	for _, entry := range zr.File {
		if !strings.EqualFold(filepath.Ext(entry.Name), ".qgs") {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("open archive entry %s: %w", entry.Name, err)
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("archive contains no .qgs entry")
}

func parseTreeNode(el *etree.Element, parent *node) *node {
	n := &node{
		name:     el.SelectAttrValue("name", ""),
		parent:   parent,
		visible:  el.SelectAttrValue("checked", "Qt::Checked") != "Qt::Unchecked",
		expanded: el.SelectAttrValue("expanded", "1") == "1",
		props:    parseCustomProperties(el),
	}

	switch el.Tag {
	case "layer-tree-group":
		n.typ = host.NodeTypeGroup
	case "layer-tree-layer":
		n.typ = host.NodeTypeLayer
		n.layerID = el.SelectAttrValue("id", "")
	default:
		n.typ = host.NodeTypeOther
	}

	if n.typ == host.NodeTypeGroup {
		for _, child := range el.ChildElements() {
			switch child.Tag {
			case "layer-tree-group", "layer-tree-layer":
				n.children = append(n.children, parseTreeNode(child, n))
			}
		}
	}
	return n
}

// parseCustomProperties collects a node's custom string properties. The
// embedded marker and its source project are stored as plain attributes
// in the tree element; explicit <customproperties> options override them.
func parseCustomProperties(el *etree.Element) map[string]string {
	props := make(map[string]string)
	if el.SelectAttrValue("embedded", "") == "1" {
		props["embedded"] = "1"
	}
	if src := el.SelectAttrValue("project", ""); src != "" {
		props["embedded_project"] = src
	}
	custom := el.SelectElement("customproperties")
	if custom == nil {
		return props
	}
	for _, opt := range custom.FindElements(".//Option") {
		name := opt.SelectAttrValue("name", "")
		if name == "" {
			continue
		}
		props[name] = opt.SelectAttrValue("value", "")
	}
	return props
}

func parseMapLayer(el *etree.Element) *mapLayer {
	l := &mapLayer{
		id:       el.SelectAttrValue("id", ""),
		typ:      parseLayerType(el.SelectAttrValue("type", "")),
		geometry: parseGeometryType(el.SelectAttrValue("geometry", "")),
		name:     childText(el, "layername"),
		title:    childText(el, "title"),
		abstract: childText(el, "abstract"),
	}
	if l.id == "" {
		if idEl := el.SelectElement("id"); idEl != nil {
			l.id = strings.TrimSpace(idEl.Text())
		}
	}
	if meta := el.SelectElement("resourceMetadata"); meta != nil {
		l.metaTitle = childText(meta, "title")
		l.metaAbstract = childText(meta, "abstract")
	}
	if notes := el.SelectElement("userNotes"); notes != nil {
		l.notes = notes.SelectAttrValue("value", "")
	}
	l.spatial = !(l.typ == api.LayerTypeVector && l.geometry == api.GeometryNull)
	return l
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func parseLayerType(value string) api.LayerType {
	switch strings.ToLower(value) {
	case "", "vector":
		return api.LayerTypeVector
	case "raster":
		return api.LayerTypeRaster
	case "mesh":
		return api.LayerTypeMesh
	case "point-cloud", "pointcloud":
		return api.LayerTypePointCloud
	case "annotation":
		return api.LayerTypeAnnotation
	case "group":
		return api.LayerTypeGroup
	default:
		return api.LayerTypePlugin
	}
}

func parseGeometryType(value string) api.GeometryType {
	switch strings.ToLower(value) {
	case "point", "multipoint":
		return api.GeometryPoint
	case "line", "linestring", "multilinestring":
		return api.GeometryLine
	case "polygon", "multipolygon":
		return api.GeometryPolygon
	case "no geometry", "nogeometry", "none":
		return api.GeometryNull
	default:
		return api.GeometryUnknown
	}
}
