package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/allpaths/internal/config"
)

func intPtr(v int) *int { return &v }

func TestDecode(t *testing.T) {
	cfg, err := config.Decode([]byte(`
input: graphs/office.txt
start: 0
end: 3
format: json
max_paths: 10
log_level: debug
watch: true
metrics_addr: ":9090"
`))
	require.NoError(t, err)
	require.Equal(t, &config.Config{
		Input:       "graphs/office.txt",
		Start:       intPtr(0),
		End:         intPtr(3),
		Format:      config.FormatJSON,
		MaxPaths:    10,
		LogLevel:    "debug",
		Watch:       true,
		MetricsAddr: ":9090",
	}, cfg)
	require.NoError(t, config.Validate(cfg))
}

func TestDecode_DefaultsAndEmpty(t *testing.T) {
	cfg, err := config.Decode(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, config.FormatText, cfg.Format)
	require.Equal(t, "info", cfg.LogLevel)
	require.Nil(t, cfg.Start)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := config.Decode([]byte("strat: 1\n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "allpaths.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: g.txt\nstart: 1\nend: 2\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "g.txt", cfg.Input)
	require.Equal(t, 1, *cfg.Start)
	require.Equal(t, 2, *cfg.End)

	_, err = config.Load(filepath.Join(dir, "nope.yaml"))
	require.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		cfg := config.Default()
		cfg.Input = "g.txt"
		cfg.Start = intPtr(0)
		cfg.End = intPtr(1)
		return cfg
	}
	require.NoError(t, config.Validate(valid()))

	cases := map[string]func(*config.Config){
		"missing input":      func(c *config.Config) { c.Input = "" },
		"missing start":      func(c *config.Config) { c.Start = nil },
		"missing end":        func(c *config.Config) { c.End = nil },
		"bad format":         func(c *config.Config) { c.Format = "xml" },
		"negative max paths": func(c *config.Config) { c.MaxPaths = -1 },
		"bad level":          func(c *config.Config) { c.LogLevel = "loud" },
		"metrics sans watch": func(c *config.Config) { c.MetricsAddr = ":9090" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			require.Error(t, config.Validate(cfg))
		})
	}
	require.Error(t, config.Validate(nil))

	// node indices are range-checked against the loaded matrix, not here
	cfg := valid()
	cfg.Start, cfg.End = intPtr(-1), intPtr(-2)
	require.NoError(t, config.Validate(cfg))
}

func TestParseLevel(t *testing.T) {
	lvl, err := config.ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, lvl)
	lvl, err = config.ParseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)

	for _, bad := range []string{"", "loud", "warn+2", "DEBUG-4"} {
		_, err = config.ParseLevel(bad)
		require.Error(t, err, bad)
	}
}
