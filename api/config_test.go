package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupConfigUnmarshal(t *testing.T) {
	t.Run("decodes tagged children to concrete types", func(t *testing.T) {
		input := `{
			"kind": "group",
			"name": "root",
			"filename": "/data/demo.qgs",
			"embedded": false,
			"childs": [
				{"kind": "group", "name": "Basemaps", "childs": [
					{"kind": "layer", "name": "Parcels", "layer_id": "parcels-1",
					 "layer_type": "vector", "geometry_type": "polygon"}
				]},
				{"kind": "layer", "name": "OSM", "layer_id": "osm-1", "layer_type": "raster"}
			]
		}`

		var g GroupConfig
		require.NoError(t, json.Unmarshal([]byte(input), &g))
		require.Len(t, g.Childs, 2)

		sub, ok := g.Childs[0].(*GroupConfig)
		require.True(t, ok)
		require.Len(t, sub.Childs, 1)

		layer, ok := sub.Childs[0].(*LayerConfig)
		require.True(t, ok)
		require.NotNil(t, layer.GeometryType)
		assert.Equal(t, GeometryPolygon, *layer.GeometryType)

		osm, ok := g.Childs[1].(*LayerConfig)
		require.True(t, ok)
		assert.Nil(t, osm.GeometryType)
	})

	t.Run("rejects unknown child kind", func(t *testing.T) {
		input := `{"kind": "group", "name": "root", "childs": [{"kind": "widget"}]}`
		var g GroupConfig
		err := json.Unmarshal([]byte(input), &g)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown kind")
	})
}
