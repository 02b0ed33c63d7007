package config

// Config holds mddb-tools configuration.
// Loaded from ./config.yaml or ~/.mddb/config.yaml.
type Config struct {
	Data     DataCfg     `mapstructure:"data" yaml:"data" json:"data"`
	Lint     LintCfg     `mapstructure:"lint" yaml:"lint" json:"lint"`
	Frontend FrontendCfg `mapstructure:"frontend" yaml:"frontend" json:"frontend"`
}

// DataCfg locates the app's data directories.
type DataCfg struct {
	// Dir is the data tree the verifier scans (workspace/node/index.md).
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
	// E2EDir is the scratch directory reset between e2e runs.
	E2EDir string `mapstructure:"e2e_dir" yaml:"e2e_dir" json:"e2e_dir"`
}

// LintCfg configures the binary-file linter.
type LintCfg struct {
	// AllowedExtensions are binary formats that may be tracked (lowercase,
	// leading dot).
	AllowedExtensions []string `mapstructure:"allowed_extensions" yaml:"allowed_extensions" json:"allowed_extensions"`
}

// FrontendCfg configures the frontend build wrapper.
type FrontendCfg struct {
	// Dir is where pnpm runs.
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
	// InstallAttempts is how many times pnpm install is tried before the
	// build is abandoned.
	InstallAttempts uint `mapstructure:"install_attempts" yaml:"install_attempts" json:"install_attempts"`
}

// DefaultConfig returns configuration with sensible defaults. Paths are
// relative to the repository root, where the tool is normally run.
func DefaultConfig() *Config {
	return &Config{
		Data: DataCfg{
			Dir:    "./data",
			E2EDir: "./data-e2e",
		},
		Lint: LintCfg{
			AllowedExtensions: []string{".ico", ".jpg", ".gif", ".png", ".svg", ".webp"},
		},
		Frontend: FrontendCfg{
			Dir:             ".",
			InstallAttempts: 3,
		},
	}
}
