// Package config resolves the settings of order-imports from defaults, the
// global config file, ORDER_IMPORTS_* environment variables, command-line
// flags and repo-local .orderimport.yml files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/siyuan-infoblox/order-imports/pkg/errors"
	"github.com/siyuan-infoblox/order-imports/pkg/organizer"
)

// Setting keys
const (
	KeyFormatStyle           = "format_style"
	KeyOptimizeBarrelImports = "optimize_barrel_imports"
	KeyGroupBySourceClass    = "group_by_source_class"
	KeyRemoveUnused          = "remove_unused"
	KeyPathAliases           = "path_aliases"
	KeyBarrelTargets         = "barrel_targets"
	KeyPinnedMarker          = "pinned_marker"
	KeyAlignDisplayWidth     = "align_display_width"
	KeyOrganizeOnSave        = "organize_on_save"
	KeyExclude               = "exclude"
	KeyJobs                  = "jobs"
	KeyCooldown              = "cooldown"
	KeyLogLevel              = "logging.level"
	KeyLogFormat             = "logging.format"
)

const (
	EnvPrefix       = "ORDER_IMPORTS"
	DefaultCooldown = 100 * time.Millisecond
	configName      = "config"
	configType      = "yaml"
)

// Settings is the decoded global configuration
type Settings struct {
	FormatStyle           string        `mapstructure:"format_style" yaml:"format_style"`
	OptimizeBarrelImports bool          `mapstructure:"optimize_barrel_imports" yaml:"optimize_barrel_imports"`
	GroupBySourceClass    bool          `mapstructure:"group_by_source_class" yaml:"group_by_source_class"`
	RemoveUnused          bool          `mapstructure:"remove_unused" yaml:"remove_unused"`
	PathAliases           []string      `mapstructure:"path_aliases" yaml:"path_aliases"`
	BarrelTargets         []string      `mapstructure:"barrel_targets" yaml:"barrel_targets"`
	PinnedMarker          string        `mapstructure:"pinned_marker" yaml:"pinned_marker"`
	AlignDisplayWidth     bool          `mapstructure:"align_display_width" yaml:"align_display_width"`
	OrganizeOnSave        bool          `mapstructure:"organize_on_save" yaml:"organize_on_save"`
	Exclude               []string      `mapstructure:"exclude" yaml:"exclude"`
	Jobs                  int           `mapstructure:"jobs" yaml:"jobs"`
	Cooldown              time.Duration `mapstructure:"cooldown" yaml:"cooldown"`
	Logging               Logging       `mapstructure:"logging" yaml:"logging"`
}

// Logging configures the slog handler
type Logging struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers the documented defaults on v
func SetDefaults(v *viper.Viper) {
	def := organizer.DefaultConfig()
	v.SetDefault(KeyFormatStyle, string(def.Style))
	v.SetDefault(KeyOptimizeBarrelImports, def.OptimizeBarrelImports)
	v.SetDefault(KeyGroupBySourceClass, def.GroupBySourceClass)
	v.SetDefault(KeyRemoveUnused, def.RemoveUnused)
	v.SetDefault(KeyPathAliases, def.PathAliases)
	v.SetDefault(KeyBarrelTargets, def.BarrelTargets)
	v.SetDefault(KeyPinnedMarker, def.PinnedMarker)
	v.SetDefault(KeyAlignDisplayWidth, def.AlignDisplayWidth)
	v.SetDefault(KeyOrganizeOnSave, true)
	v.SetDefault(KeyExclude, []string{})
	v.SetDefault(KeyJobs, 0)
	v.SetDefault(KeyCooldown, DefaultCooldown)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// DefaultDir returns the directory of the global config file
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToGetHomeDir, err)
	}
	return filepath.Join(home, ".config", "order-imports"), nil
}

// Init points v at cfgFile, or at the standard locations when cfgFile is
// empty, enables environment overrides and reads the file. A missing config
// file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := DefaultDir()
		if err != nil {
			return err
		}
		v.AddConfigPath(dir)
		v.SetConfigName(configName)
		v.SetConfigType(configType)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadConfig, err)
		}
	}
	return nil
}

// Load decodes the settings held by v
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("%s: %w", errors.ErrMsgFailedToDecodeConfig, err)
	}
	if _, err := ParseStyle(s.FormatStyle); err != nil {
		return s, err
	}
	return s, nil
}

// ParseStyle converts a style name into a FormatStyle
func ParseStyle(s string) (organizer.FormatStyle, error) {
	switch style := organizer.FormatStyle(strings.ToLower(strings.TrimSpace(s))); style {
	case organizer.StyleNormal, organizer.StyleAligned:
		return style, nil
	}
	return "", fmt.Errorf(errors.ErrMsgInvalidFormatStyle, s)
}

// Organizer returns the organizer configuration described by s
func (s Settings) Organizer() organizer.Config {
	style, err := ParseStyle(s.FormatStyle)
	if err != nil {
		style = organizer.StyleAligned
	}
	return organizer.Config{
		Style:                 style,
		OptimizeBarrelImports: s.OptimizeBarrelImports,
		GroupBySourceClass:    s.GroupBySourceClass,
		RemoveUnused:          s.RemoveUnused,
		PathAliases:           append([]string(nil), s.PathAliases...),
		BarrelTargets:         append([]string(nil), s.BarrelTargets...),
		PinnedMarker:          s.PinnedMarker,
		AlignDisplayWidth:     s.AlignDisplayWidth,
	}
}
