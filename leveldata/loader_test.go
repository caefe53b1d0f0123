package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMap(t *testing.T) {
	data, err := LoadMap(os.DirFS("testdata"), "town.tmx")
	require.NoError(t, err)

	assert.Equal(t, "town", data.ID)
	assert.Equal(t, 640, data.MapWidth)
	assert.Equal(t, 480, data.MapHeight)

	assert.True(t, data.HasSpawn)
	assert.Equal(t, 100.0, data.SpawnX)
	assert.Equal(t, 200.0, data.SpawnY)

	require.Len(t, data.Walls, 2)
	assert.Equal(t, Rect{X: 0, Y: 448, W: 640, H: 32}, data.Walls[1])

	// Sorted left to right, type property wins over the object name
	require.Len(t, data.Mobs, 2)
	assert.Equal(t, MobSpawn{Type: "slime", X: 300, Y: 200, UI: "slime-chat"}, data.Mobs[0])
	assert.Equal(t, "stalker", data.Mobs[1].Type)

	require.Len(t, data.Interactables, 1)
	assert.Equal(t, "sign-welcome", data.Interactables[0].UI)

	require.Len(t, data.Transitions, 1)
	tr := data.Transitions[0]
	assert.Equal(t, "cave", tr.Target)
	assert.Equal(t, 64.0, tr.ExitX)
	assert.Equal(t, 96.0, tr.ExitY)
	assert.Equal(t, "right", tr.Facing)
}

func TestLoadAllMaps(t *testing.T) {
	maps, ids, err := LoadAllMaps(os.DirFS("."), "testdata")
	require.NoError(t, err)
	assert.Equal(t, []string{"cave", "town"}, ids)
	assert.Len(t, maps, 2)
	assert.Equal(t, 320, maps["cave"].MapWidth)
}

func TestLoadAllMapsEmptyDir(t *testing.T) {
	_, _, err := LoadAllMaps(os.DirFS("."), "nothing-here")
	assert.Error(t, err)
}
