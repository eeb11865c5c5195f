package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/order-imports/pkg/errors"
	"github.com/siyuan-infoblox/order-imports/pkg/organizer"
	"github.com/siyuan-infoblox/order-imports/pkg/utils"
)

// LocalFileNames are the repo-local config files, in lookup order
var LocalFileNames = []string{".orderimport.yml", ".orderimport.yaml"}

// FileConfig is the on-disk shape of a repo-local config file. Unset fields
// keep the value of the global settings.
type FileConfig struct {
	FormatStyle           *string  `yaml:"format_style"`
	OptimizeBarrelImports *bool    `yaml:"optimize_barrel_imports"`
	GroupBySourceClass    *bool    `yaml:"group_by_source_class"`
	RemoveUnused          *bool    `yaml:"remove_unused"`
	PathAliases           []string `yaml:"path_aliases"`
	BarrelTargets         []string `yaml:"barrel_targets"`
	PinnedMarker          *string  `yaml:"pinned_marker"`
	AlignDisplayWidth     *bool    `yaml:"align_display_width"`
}

// LoadFile reads a YAML config file from the provided path
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadLocalConfig, err)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToReadLocalConfig, path, err)
	}
	if fc.FormatStyle != nil {
		if _, err := ParseStyle(*fc.FormatStyle); err != nil {
			return fc, fmt.Errorf("%s: %w", path, err)
		}
	}
	return fc, nil
}

// FindLocal returns the path of the nearest local config file above
// filePath, or "" when there is none
func FindLocal(filePath string) string {
	return utils.FindUp(filePath, LocalFileNames...)
}

// IsLocalFile reports whether name is a local config file name
func IsLocalFile(name string) bool {
	for _, n := range LocalFileNames {
		if n == name {
			return true
		}
	}
	return false
}

// Apply overlays the set fields of fc on cfg
func (fc FileConfig) Apply(cfg organizer.Config) organizer.Config {
	if fc.FormatStyle != nil {
		if style, err := ParseStyle(*fc.FormatStyle); err == nil {
			cfg.Style = style
		}
	}
	if fc.OptimizeBarrelImports != nil {
		cfg.OptimizeBarrelImports = *fc.OptimizeBarrelImports
	}
	if fc.GroupBySourceClass != nil {
		cfg.GroupBySourceClass = *fc.GroupBySourceClass
	}
	if fc.RemoveUnused != nil {
		cfg.RemoveUnused = *fc.RemoveUnused
	}
	if fc.PathAliases != nil {
		cfg.PathAliases = append([]string(nil), fc.PathAliases...)
	}
	if fc.BarrelTargets != nil {
		cfg.BarrelTargets = append([]string(nil), fc.BarrelTargets...)
	}
	if fc.PinnedMarker != nil {
		cfg.PinnedMarker = *fc.PinnedMarker
	}
	if fc.AlignDisplayWidth != nil {
		cfg.AlignDisplayWidth = *fc.AlignDisplayWidth
	}
	return cfg
}
