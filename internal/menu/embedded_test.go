package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedSource(t *testing.T) {
	project := &fakeProject{path: "/data/main.qgs"}

	t.Run("plain node uses project file", func(t *testing.T) {
		root := group("root")
		root.add(group("child"))

		embedded, filename := EmbeddedSource(root.children[0], project)
		assert.False(t, embedded)
		assert.Equal(t, "/data/main.qgs", filename)
	})

	t.Run("marked node resolves its own property", func(t *testing.T) {
		node := group("basemaps")
		node.props = map[string]string{
			"embedded":         "1",
			"embedded_project": "shared/basemaps.qgs",
		}

		embedded, filename := EmbeddedSource(node, project)
		assert.True(t, embedded)
		assert.Equal(t, "/data/shared/basemaps.qgs", filename)
	})

	t.Run("marked node inherits from parent", func(t *testing.T) {
		parent := group("basemaps")
		parent.props = map[string]string{
			"embedded":         "1",
			"embedded_project": "/shared/basemaps.qgs",
		}
		child := layerNode("osm", "osm-1")
		child.props = map[string]string{"embedded": "1"}
		parent.add(child)

		embedded, filename := EmbeddedSource(child, project)
		assert.True(t, embedded)
		assert.Equal(t, "/shared/basemaps.qgs", filename)
	})

	t.Run("root without embedded property ignores ancestry", func(t *testing.T) {
		embedded, filename := EmbeddedSource(group("root"), project)
		assert.False(t, embedded)
		assert.Equal(t, project.path, filename)
	})

	t.Run("unresolvable chain yields empty filename", func(t *testing.T) {
		root := group("root")
		mid := group("mid")
		leaf := group("leaf")
		leaf.props = map[string]string{"embedded": "1"}
		root.add(mid)
		mid.add(leaf)

		embedded, filename := EmbeddedSource(leaf, project)
		assert.True(t, embedded)
		assert.Equal(t, "", filename)
	})
}
