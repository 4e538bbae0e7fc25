package config

// Default configuration values.
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 100
)

// Config is the root configuration for the urlclean CLI.
type Config struct {
	CleanerConfig CleanerConfig `json:"cleaner_config,omitempty" yaml:"cleaner_config,omitempty"`
	LogConfig     LogConfig     `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultConfig creates a config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		CleanerConfig: NewDefaultCleanerConfig(),
		LogConfig:     NewDefaultLogConfig(),
	}
}

// CleanerConfig selects which tracking parameters get removed.
type CleanerConfig struct {
	// Categories to remove. Empty means the whole database.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty" validate:"omitempty,dive,category"`
	// CustomParams are removed in addition to the selected categories.
	CustomParams []string `json:"custom_params,omitempty" yaml:"custom_params,omitempty" validate:"omitempty,dive,required"`
}

// NewDefaultCleanerConfig creates default cleaner configuration: the
// whole database, no custom parameters.
func NewDefaultCleanerConfig() CleanerConfig {
	return CleanerConfig{}
}

// LogConfig defines configuration for logging.
type LogConfig struct {
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty"`
}

// NewDefaultLogConfig creates default log configuration.
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogFormat:     DefaultLogFormat,
		LogLevel:      DefaultLogLevel,
		MaxLogBackups: DefaultMaxLogBackups,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
	}
}
