package confkit_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-api/pkg/confkit"
)

func TestResolvePath(t *testing.T) {
	t.Setenv("MISSION_CONF_DIR", "/srv/mission")
	t.Setenv("MISSION_REL", "conf")

	tests := []struct {
		name string
		base string
		file string
		want string
	}{
		{"absolute path", "/base/dir", "/absolute/llm.yaml", "/absolute/llm.yaml"},
		{"relative path", "/base/dir", "etc/llm.yaml", "/base/dir/etc/llm.yaml"},
		{"env expands to absolute", "/base/dir", "$MISSION_CONF_DIR/llm.yaml", "/srv/mission/llm.yaml"},
		{"env expands to relative", "/base/dir", "${MISSION_REL}/llm.yaml", "/base/dir/conf/llm.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, confkit.ResolvePath(tt.base, tt.file))
		})
	}
}

func TestBaseDir(t *testing.T) {
	assert.Equal(t, "/etc/mission", confkit.BaseDir("/etc/mission/mission.yaml"))
	assert.Equal(t, "/", confkit.BaseDir("/mission.yaml"))
	assert.Equal(t, "etc", confkit.BaseDir("etc/mission.yaml"))
}

func TestSectionHydrate(t *testing.T) {
	t.Run("empty file is a no-op", func(t *testing.T) {
		section := &confkit.Section[string]{}
		err := section.Hydrate("/base", func(string) (*string, error) {
			t.Fatal("loader should not be called")
			return nil, nil
		})
		require.NoError(t, err)
		assert.False(t, section.Loaded())
	})

	t.Run("loads relative to base", func(t *testing.T) {
		section := &confkit.Section[string]{File: "llm.yaml"}
		value := "loaded"
		var gotPath string
		err := section.Hydrate("/base", func(p string) (*string, error) {
			gotPath = p
			return &value, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "/base/llm.yaml", gotPath)
		assert.Equal(t, "/base/llm.yaml", section.File)
		assert.True(t, section.Loaded())
		assert.Equal(t, "loaded", *section.Value)
	})

	t.Run("loader error keeps section", func(t *testing.T) {
		section := &confkit.Section[string]{File: "llm.yaml"}
		err := section.Hydrate("/base", func(string) (*string, error) {
			return nil, errors.New("boom")
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/base/llm.yaml")
		assert.Equal(t, "llm.yaml", section.File)
		assert.False(t, section.Loaded())
	})
}

func TestLoadFile(t *testing.T) {
	type sample struct {
		Name string
		Port int `json:",default=3000"`
	}

	t.Setenv("MISSION_NAME", "mission-api")
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Name: ${MISSION_NAME}\n"), 0o644))

	cfg, err := confkit.LoadFile[sample](path, true)
	require.NoError(t, err)
	assert.Equal(t, "mission-api", cfg.Name)
	assert.Equal(t, 3000, cfg.Port)

	_, err = confkit.LoadFile[sample](filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.Error(t, err)
}

func TestEnvPort(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		ok      bool
		wantErr bool
	}{
		{name: "unset", value: ""},
		{name: "blank", value: "   "},
		{name: "valid", value: "8080", want: 8080, ok: true},
		{name: "padded", value: " 3001 ", want: 3001, ok: true},
		{name: "not a number", value: "http", wantErr: true},
		{name: "zero", value: "0", wantErr: true},
		{name: "too large", value: "70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MISSION_TEST_PORT", tt.value)
			port, ok, err := confkit.EnvPort("MISSION_TEST_PORT")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, port)
		})
	}
}
