// Package qgisdoc provides read-only access to the raw XML project
// document. Extraction only needs it as a fallback data source for values
// the high-level object API does not expose, addressed by maplayer id.
package qgisdoc

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// Document wraps a parsed project document.
type Document struct {
	doc *etree.Document
}

// Parse reads an XML project document.
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse project document: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("parse project document: no root element")
	}
	return &Document{doc: doc}, nil
}

// FromEtree wraps an already-parsed document.
func FromEtree(doc *etree.Document) *Document {
	return &Document{doc: doc}
}

// MapLayer returns the first maplayer element whose identifier matches id,
// in document order, or nil. The identifier is carried either as an "id"
// attribute or as an <id> child element depending on the writer.
func (d *Document) MapLayer(id string) *etree.Element {
	if id == "" {
		return nil
	}
	for _, el := range d.doc.Root().FindElements("//maplayer") {
		if el.SelectAttrValue("id", "") == id {
			return el
		}
		if child := el.SelectElement("id"); child != nil && child.Text() == id {
			return el
		}
	}
	return nil
}

// UserNotes returns the note text stored on the maplayer element with the
// given id. ok is false when the element, its userNotes child, or the
// value attribute is absent — notes are optional by nature.
func (d *Document) UserNotes(layerID string) (string, bool) {
	el := d.MapLayer(layerID)
	if el == nil {
		return "", false
	}
	notes := el.SelectElement("userNotes")
	if notes == nil {
		return "", false
	}
	attr := notes.SelectAttr("value")
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}
