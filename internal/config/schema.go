package config

// Output formats accepted in Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the top-level YAML structure for the allpaths CLI.
//
//	input: graphs/office.txt
//	start: 0
//	end: 3
//	format: json
//	max_paths: 100
//	log_level: debug
//	watch: true
//	metrics_addr: ":9090"
type Config struct {
	Input       string `yaml:"input"`
	Start       *int   `yaml:"start"` // nil = not set; 0 is a valid node
	End         *int   `yaml:"end"`
	Format      string `yaml:"format"`
	MaxPaths    int    `yaml:"max_paths"` // 0 = all
	LogLevel    string `yaml:"log_level"`
	Watch       bool   `yaml:"watch"`
	MetricsAddr string `yaml:"metrics_addr"` // only honored with watch
}

// Default returns a Config with every optional field at its default.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
