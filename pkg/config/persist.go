package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/siyuan-infoblox/order-imports/pkg/errors"
)

// Toggles maps the names accepted by "config toggle" to setting keys
var Toggles = map[string]string{
	"optimize-barrels": KeyOptimizeBarrelImports,
	"group":            KeyGroupBySourceClass,
	"remove-unused":    KeyRemoveUnused,
	"organize-on-save": KeyOrganizeOnSave,
}

// ToggleNames returns the sorted names accepted by Toggle
func ToggleNames() []string {
	names := make([]string, 0, len(Toggles))
	for name := range Toggles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Toggle flips a boolean setting, saves it and returns the new value
func Toggle(v *viper.Viper, name string) (bool, string, error) {
	key, ok := Toggles[name]
	if !ok {
		return false, "", fmt.Errorf(errors.ErrMsgUnknownToggle, name, strings.Join(ToggleNames(), ", "))
	}
	value := !v.GetBool(key)
	path, err := Save(v, key, value)
	return value, path, err
}

// SetStyle validates and saves the format style
func SetStyle(v *viper.Viper, style string) (string, error) {
	parsed, err := ParseStyle(style)
	if err != nil {
		return "", err
	}
	return Save(v, KeyFormatStyle, string(parsed))
}

// Save sets key to value and writes it to the global config file. It writes
// to the file v was read from, or to the default location when there was
// none. Only the keys already in that file plus key are written; defaults,
// flags and environment overrides held by v stay out of it.
func Save(v *viper.Viper, key string, value any) (string, error) {
	path := v.ConfigFileUsed()
	if path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, configName+"."+configType)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteConfig, err)
	}

	file := viper.New()
	file.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		file.SetConfigType(configType)
	}
	if err := file.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadConfig, err)
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteConfig, err)
	}
	v.Set(key, value)
	return path, nil
}
