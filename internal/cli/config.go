package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds the settings shared by all commands. Command-line flags
// override whatever is loaded here.
type Config struct {
	// Deck is a YAML or TOML script. Empty means the built-in deck.
	Deck    string        `mapstructure:"deck"`
	Output  string        `mapstructure:"output"`
	Preview PreviewConfig `mapstructure:"preview"`
	Log     LogConfig     `mapstructure:"log"`
}

// PreviewConfig holds PNG preview settings. Previews are only written when
// Dir is set.
type PreviewConfig struct {
	Dir      string   `mapstructure:"dir"`
	Width    int      `mapstructure:"width"`
	FontDirs []string `mapstructure:"font_dirs"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// =============================================================================
// Config Loading
// =============================================================================

const (
	envPrefix      = "DECKGEN"
	defaultOutput  = "Control_Plane_Automation.pptx"
	defaultPreview = 960
)

// LoadConfig loads configuration from defaults, an optional file and
// DECKGEN_* environment variables, in increasing order of precedence.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("deck", "")
	v.SetDefault("output", defaultOutput)
	v.SetDefault("preview.dir", "")
	v.SetDefault("preview.width", defaultPreview)
	v.SetDefault("preview.font_dirs", []string{})
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// DECKGEN_PREVIEW_WIDTH overrides preview.width, and so on.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Preview.Width <= 0 {
		return nil, fmt.Errorf("preview width must be positive, got %d", cfg.Preview.Width)
	}
	return &cfg, nil
}
