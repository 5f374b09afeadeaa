package config

// Config represents the complete configuration for tessera.
type Config struct {
	// Layout controls how frames are drawn.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	// Terminal selects and tunes the terminal backend used by the watch loop.
	Terminal TerminalConfig `mapstructure:"terminal" yaml:"terminal" toml:"terminal" json:"terminal"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// LayoutConfig holds frame drawing preferences.
type LayoutConfig struct {
	// BorderStyle names the border preset: "double", "normal", "rounded" or "thick".
	BorderStyle string `mapstructure:"border_style" yaml:"border_style" toml:"border_style" json:"border_style" jsonschema:"enum=double,enum=normal,enum=rounded,enum=thick,default=double"`
	// BorderRoot draws a border on the root frame when a layout is created.
	BorderRoot bool `mapstructure:"border_root" yaml:"border_root" toml:"border_root" json:"border_root" jsonschema:"default=true"`
	// BorderSplits draws a border on every frame created by a split.
	BorderSplits bool `mapstructure:"border_splits" yaml:"border_splits" toml:"border_splits" json:"border_splits" jsonschema:"default=true"`
}

// Backend names a terminal implementation.
type Backend string

const (
	BackendStdio Backend = "stdio"
	BackendTcell Backend = "tcell"
)

// TerminalConfig controls the terminal backend.
type TerminalConfig struct {
	Backend Backend `mapstructure:"backend" yaml:"backend" toml:"backend" json:"backend" jsonschema:"enum=stdio,enum=tcell,default=stdio"`
	// PollIntervalMs is how often the watch loop polls the terminal size.
	// SIGWINCH triggers an extra poll where the platform supports it.
	PollIntervalMs int `mapstructure:"poll_interval_ms" yaml:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=10,default=100"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=warn"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSize       int    `mapstructure:"max_size" yaml:"max_size" toml:"max_size" json:"max_size" jsonschema:"description=Maximum log file size in megabytes before rotation"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age" jsonschema:"description=Days to keep rotated log files"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}
