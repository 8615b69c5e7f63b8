package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.AutoGeneratedTag)
	assert.Equal(t, EnumValuesNumeric, cfg.EnumValues)
	assert.Equal(t, PathStyleDefault, cfg.PathStyle)
	require.NoError(t, cfg.Validate())
}

func TestLoadReadsYaml(t *testing.T) {
	dir := t.TempDir()
	yaml := `working_dir: "models;shared/models"
convert_dir: generated
enum_values: string
path_style: kebab
auto_generated_tag: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mtt.yaml"), []byte(yaml), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "generated", cfg.ConvertDirectory)
	assert.Equal(t, EnumValuesString, cfg.EnumValues)
	assert.Equal(t, PathStyleKebab, cfg.PathStyle)
	assert.False(t, cfg.AutoGeneratedTag)

	roots, err := cfg.WorkingDirectories()
	require.NoError(t, err)
	assert.Equal(t, []string{"models", "shared/models"}, roots)
}

func TestLoadFallsBackToDefault(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWorkingDirectoriesDefaultsToCwd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	roots, err := Default().WorkingDirectories()
	require.NoError(t, err)
	require.Len(t, roots, 1)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, roots[0])
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.EnumValues = "roman"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.PathStyle = "snake"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.ConvertDirectory = "  "
	require.Error(t, cfg.Validate())
}
