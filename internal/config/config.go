// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override
// (AXI_LOGGER_LEVEL, AXI_ANIMATION_FRAMES, ...).
const EnvPrefix = "AXI"

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Document() DocumentConfig
	Animation() AnimationConfig

	// Setters for values that CLI flags override.
	SetDocumentFormat(string)
	SetAnimationFrames(int)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	DocumentCfg  DocumentConfig  `mapstructure:"document" yaml:"document"`
	AnimationCfg AnimationConfig `mapstructure:"animation" yaml:"animation"`
}

var _ Interface = (*Config)(nil)

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig       { return c.LoggerCfg }
func (c *Config) Document() DocumentConfig   { return c.DocumentCfg }
func (c *Config) Animation() AnimationConfig { return c.AnimationCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetDocumentFormat(f string) { c.DocumentCfg.Format = f }
func (c *Config) SetAnimationFrames(n int)   { c.AnimationCfg.Frames = n }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// DocumentConfig controls how input documents are parsed and styled.
type DocumentConfig struct {
	// Format is auto, html or svg.
	Format string `mapstructure:"format" yaml:"format"`
	// Viewport dimensions resolve vw, vh, vmin and vmax.
	ViewportWidth  float64 `mapstructure:"viewport_width" yaml:"viewport_width"`
	ViewportHeight float64 `mapstructure:"viewport_height" yaml:"viewport_height"`
}

// AnimationConfig holds defaults for the frames command and path measuring.
type AnimationConfig struct {
	Frames int `mapstructure:"frames" yaml:"frames"`
	// PathSegments is the number of chords each curve or arc of path data
	// is flattened into when measuring its length.
	PathSegments int `mapstructure:"path_segments" yaml:"path_segments"`
}

// NewDefaultConfig creates a new configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "axi")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Document --
	v.SetDefault("document.format", "auto")
	v.SetDefault("document.viewport_width", 1280.0)
	v.SetDefault("document.viewport_height", 720.0)

	// -- Animation --
	v.SetDefault("animation.frames", 10)
	v.SetDefault("animation.path_segments", 64)
}

// BindEnv makes every configuration key overridable through AXI_* variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// NewConfigFromViper unmarshals and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if err := c.DocumentCfg.Validate(); err != nil {
		return fmt.Errorf("document configuration invalid: %w", err)
	}
	if err := c.AnimationCfg.Validate(); err != nil {
		return fmt.Errorf("animation configuration invalid: %w", err)
	}
	return nil
}

// Validate checks the document settings.
func (d *DocumentConfig) Validate() error {
	switch strings.ToLower(d.Format) {
	case "", "auto", "html", "svg", "xml":
	default:
		return fmt.Errorf("document.format must be one of auto, html or svg (got %q)", d.Format)
	}
	if d.ViewportWidth < 0 || d.ViewportHeight < 0 {
		return fmt.Errorf("document viewport dimensions must not be negative")
	}
	return nil
}

// Validate checks the animation settings.
func (a *AnimationConfig) Validate() error {
	if a.Frames < 2 {
		return fmt.Errorf("animation.frames must be at least 2")
	}
	if a.PathSegments <= 0 {
		return fmt.Errorf("animation.path_segments must be a positive integer")
	}
	return nil
}
