package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Tables    []TableConfig   `mapstructure:"tables"`
	Writer    WriterConfig    `mapstructure:"writer"`
	Collector CollectorConfig `mapstructure:"collector"`
}

// ServerConfig holds replay server configuration
type ServerConfig struct {
	Host                  string `mapstructure:"host"`
	Port                  int    `mapstructure:"port"`
	LogLevel              string `mapstructure:"log_level"`
	LogFormat             string `mapstructure:"log_format"`
	EnableReflection      bool   `mapstructure:"enable_reflection"`
	GracefulShutdownDelay int    `mapstructure:"graceful_shutdown_delay"`
}

// TableConfig describes one replay table served by the server
type TableConfig struct {
	Name string `mapstructure:"name"`
	// Kind is one of queue, uniform, prioritized
	Kind             string  `mapstructure:"kind"`
	MaxSize          int     `mapstructure:"max_size"`
	MaxTimesSampled  int     `mapstructure:"max_times_sampled"`
	MinSizeToSample  int     `mapstructure:"min_size_to_sample"`
	PriorityExponent float64 `mapstructure:"priority_exponent"`
}

// WriterConfig holds client writer settings
type WriterConfig struct {
	MaxSequenceLength int `mapstructure:"max_sequence_length"`
}

// CollectorConfig holds settings for the demo collector
type CollectorConfig struct {
	ServerAddress   string  `mapstructure:"server_address"`
	StepsPerEpisode int     `mapstructure:"steps_per_episode"`
	MaxSteps        int     `mapstructure:"max_steps"`
	NumActions      int     `mapstructure:"num_actions"`
	TrajectoryTable string  `mapstructure:"trajectory_table"`
	SequenceLength  int     `mapstructure:"sequence_length"`
	Stride          int     `mapstructure:"stride"`
	EpisodeTable    string  `mapstructure:"episode_table"`
	EpisodePriority float64 `mapstructure:"episode_priority"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 50052)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "console")
	v.SetDefault("server.enable_reflection", true)
	v.SetDefault("server.graceful_shutdown_delay", 5)

	// Table defaults: one uniform table, ready for the demo collector
	v.SetDefault("tables", []map[string]interface{}{
		{
			"name":               "training",
			"kind":               "uniform",
			"max_size":           100000,
			"min_size_to_sample": 100,
		},
	})

	// Writer defaults
	v.SetDefault("writer.max_sequence_length", 64)

	// Collector defaults
	v.SetDefault("collector.server_address", "localhost:50052")
	v.SetDefault("collector.steps_per_episode", 50)
	v.SetDefault("collector.max_steps", 1000)
	v.SetDefault("collector.num_actions", 4)
	v.SetDefault("collector.trajectory_table", "training")
	v.SetDefault("collector.sequence_length", 2)
	v.SetDefault("collector.stride", 1)
	v.SetDefault("collector.episode_table", "")
	v.SetDefault("collector.episode_priority", 1.0)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/replaybridge")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("RB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Server.GracefulShutdownDelay < 0 {
		return fmt.Errorf("server.graceful_shutdown_delay must be non-negative")
	}
	switch c.Server.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("server.log_format must be console or json")
	}

	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}
	seen := make(map[string]bool)
	for i, t := range c.Tables {
		if t.Name == "" {
			return fmt.Errorf("tables[%d].name must not be empty", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("tables[%d].name %q is duplicated", i, t.Name)
		}
		seen[t.Name] = true

		switch t.Kind {
		case "queue", "uniform", "prioritized":
		default:
			return fmt.Errorf("tables[%d].kind must be queue, uniform or prioritized", i)
		}
		if t.MaxSize <= 0 {
			return fmt.Errorf("tables[%d].max_size must be positive", i)
		}
		if t.MaxTimesSampled < 0 {
			return fmt.Errorf("tables[%d].max_times_sampled must be non-negative", i)
		}
		if t.MinSizeToSample < 0 {
			return fmt.Errorf("tables[%d].min_size_to_sample must be non-negative", i)
		}
		if t.Kind == "prioritized" && t.PriorityExponent < 0 {
			return fmt.Errorf("tables[%d].priority_exponent must be non-negative", i)
		}
	}

	if c.Writer.MaxSequenceLength <= 0 {
		return fmt.Errorf("writer.max_sequence_length must be positive")
	}

	if c.Collector.StepsPerEpisode <= 0 {
		return fmt.Errorf("collector.steps_per_episode must be positive")
	}
	if c.Collector.MaxSteps < 0 {
		return fmt.Errorf("collector.max_steps must be non-negative")
	}
	if c.Collector.NumActions <= 0 {
		return fmt.Errorf("collector.num_actions must be positive")
	}
	if c.Collector.TrajectoryTable != "" {
		if c.Collector.SequenceLength <= 0 {
			return fmt.Errorf("collector.sequence_length must be positive")
		}
		if c.Collector.Stride <= 0 {
			return fmt.Errorf("collector.stride must be positive")
		}
	}
	if c.Collector.EpisodeTable != "" && c.Collector.EpisodePriority < 0 {
		return fmt.Errorf("collector.episode_priority must be non-negative")
	}

	return nil
}
