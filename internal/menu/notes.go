package menu

import (
	"github.com/mapmenu/mapmenu/api"
	"github.com/mapmenu/mapmenu/internal/host"
)

// Document is the raw serialized project document, used as a fallback
// data source for values the high-level layer API does not expose.
type Document interface {
	// UserNotes returns the note text stored on the maplayer element with
	// the given id. ok is false when the element or its userNotes value
	// is absent.
	UserNotes(layerID string) (notes string, ok bool)
}

// LayerNotes returns the free-text user notes attached to layer.
//
// Hosts only expose notes through the high-level accessor for vector
// layers; for every other kind the value is recovered straight from the
// raw project document. Keep this fallback in sync with the host: it
// exists to cover a gap in the host API, not as a general XML feature.
func LayerNotes(layer host.MapLayer, doc Document) string {
	if layer.Type() == api.LayerTypeVector {
		return layer.Notes()
	}
	if doc == nil {
		return ""
	}
	notes, ok := doc.UserNotes(layer.ID())
	if !ok {
		return ""
	}
	return notes
}
