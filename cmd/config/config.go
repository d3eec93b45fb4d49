package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-stickies/internal/logging"
	"github.com/mattsolo1/grove-stickies/pkg/board"
	"github.com/mattsolo1/grove-stickies/pkg/models"
)

var cfgFile string

// Config is the decoded stickies configuration.
type Config struct {
	Palette      []string       `mapstructure:"palette"`
	DefaultColor string         `mapstructure:"default_color"`
	Log          logging.Config `mapstructure:"log"`
	TUI          TUIConfig      `mapstructure:"tui"`
}

// TUIConfig holds settings for the interactive board.
type TUIConfig struct {
	Mouse     bool `mapstructure:"mouse"`
	CardWidth int  `mapstructure:"card_width"`
}

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "stickies")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("STICKIES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		// Do not print this in normal operation, it's noisy.
		// fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// SetDefaults registers the default value of every key so that environment
// overrides are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	palette := make([]string, 0, len(models.DefaultPalette))
	for _, c := range models.DefaultPalette {
		palette = append(palette, string(c))
	}
	v.SetDefault("palette", palette)
	v.SetDefault("default_color", string(models.DefaultColor))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("tui.mouse", true)
	v.SetDefault("tui.card_width", 40)
}

// Load decodes the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.TUI.CardWidth < 20 {
		return nil, fmt.Errorf("tui.card_width must be at least 20, got %d", cfg.TUI.CardWidth)
	}
	return &cfg, nil
}

// ParsedPalette validates the configured palette.
func (c *Config) ParsedPalette() (models.Palette, error) {
	p, err := models.ParsePalette(c.Palette)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return p, nil
}

// NewStore builds an empty board from the configured palette.
func (c *Config) NewStore() (*board.Store, error) {
	p, err := c.ParsedPalette()
	if err != nil {
		return nil, err
	}
	def := models.Color(strings.ToLower(strings.TrimSpace(c.DefaultColor)))
	return board.New(board.WithPalette(p), board.WithDefaultColor(def))
}

// Watch calls onChange with the re-read configuration whenever the config
// file changes on disk. It does nothing when no config file is in use.
func Watch(v *viper.Viper, log logrus.FieldLogger, onChange func(*Config)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := Load(v)
		if err != nil {
			log.WithError(err).WithField("file", e.Name).Warn("Ignoring invalid config change")
			return
		}
		log.WithField("file", e.Name).Info("Config reloaded")
		onChange(cfg)
	})
	v.WatchConfig()
}

// DefaultLogFile is where interactive sessions log unless configured.
func DefaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "stickies", "stickies.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "stickies.log")
	}
	return filepath.Join(home, ".local", "state", "stickies", "stickies.log")
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/stickies/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
	cobra.CheckErr(viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.file", cmd.PersistentFlags().Lookup("log-file")))
}
