package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoster(t *testing.T) {
	rc := DefaultRoster()
	require.NoError(t, rc.Validate())
	assert.Equal(t, "Lord", rc.Boss.Name)
	assert.Equal(t, 2500, rc.Boss.Health)
	assert.Equal(t, 50, rc.Boss.Damage)
	require.Len(t, rc.Heroes, 10)
	assert.Equal(t, "Brane", rc.Heroes[0].Name)
	assert.Equal(t, ClassKing, rc.Heroes[9].Class)
	assert.Equal(t, 15, rc.Heroes[3].HealPoints)
}

func TestLoadRoster_EmptyPathIsDefault(t *testing.T) {
	rc, err := LoadRoster("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRoster(), rc)
}

func TestLoadRoster_AssetMatchesDefault(t *testing.T) {
	rc, err := LoadRoster(filepath.Join("..", "..", "assets", "roster.yaml"))
	require.NoError(t, err)
	def := DefaultRoster()
	assert.Equal(t, def.Boss.Name, rc.Boss.Name)
	require.Len(t, rc.Heroes, len(def.Heroes))
	for i := range def.Heroes {
		assert.Equal(t, def.Heroes[i].Class, rc.Heroes[i].Class)
		assert.Equal(t, def.Heroes[i].Name, rc.Heroes[i].Name)
		assert.Equal(t, def.Heroes[i].Health, rc.Heroes[i].Health)
		assert.Equal(t, def.Heroes[i].Damage, rc.Heroes[i].Damage)
		assert.Equal(t, def.Heroes[i].HealPoints, rc.Heroes[i].HealPoints)
	}
}

func TestLoadRoster_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `
boss: { name: "", health: 0, damage: 10 }
heroes:
  - { class: bard, name: Dandelion, health: -1, damage: 1 }
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadRoster(path)
	require.Error(t, err)
	for _, want := range []string{"boss.name", "boss.health", "heroes[0].class", "heroes[0].health"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoadRoster_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boss: [unterminated"), 0644))
	_, err := LoadRoster(path)
	assert.Error(t, err)
}
