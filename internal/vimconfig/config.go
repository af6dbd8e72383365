// Package vimconfig provides YAML-backed settings and a hot-reloadable
// key-map table for vimengine: the concrete implementations of the
// vimcore.GlobalSettings and vimcore.KeyMapTable collaborators a real
// host needs, versus the in-memory stand-ins vimcore ships for tests.
package vimconfig

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Mapping is one YAML-configured key mapping entry.
type Mapping struct {
	Mode    string `mapstructure:"mode" yaml:"mode"` // "normal", "insert", "visual", "command", "select", "operator-pending", "language"
	LHS     string `mapstructure:"lhs" yaml:"lhs"`
	RHS     string `mapstructure:"rhs" yaml:"rhs"`
	NoRemap bool   `mapstructure:"noremap" yaml:"noremap"`
}

// FileConfig is the full shape of vimengine's YAML config file.
type FileConfig struct {
	DisableKey string    `mapstructure:"disable_key" yaml:"disable_key"`
	Mappings   []Mapping `mapstructure:"mappings" yaml:"mappings"`
}

// Defaults returns vimengine's built-in configuration: Ctrl-6 disables
// the engine (mirroring Vim's own toggle), and no mappings.
func Defaults() FileConfig {
	return FileConfig{
		DisableKey: "<C-6>",
	}
}

// Validate reports the first problem found in cfg, or nil if it is
// well-formed: every LHS/RHS must parse as key notation, and mode names
// must be ones the remap resolver understands.
func Validate(cfg FileConfig) error {
	if cfg.DisableKey != "" {
		if _, err := ParseKeyNotation(cfg.DisableKey); err != nil {
			return fmt.Errorf("disable_key: %w", err)
		}
	}
	for i, m := range cfg.Mappings {
		if _, err := remapModeFromName(m.Mode); err != nil {
			return fmt.Errorf("mappings[%d]: %w", i, err)
		}
		if _, err := ParseKeyNotation(m.LHS); err != nil {
			return fmt.Errorf("mappings[%d].lhs: %w", i, err)
		}
		if _, err := ParseKeyNotation(m.RHS); err != nil {
			return fmt.Errorf("mappings[%d].rhs: %w", i, err)
		}
	}
	return nil
}

// DefaultConfigTemplate is the commented YAML written by WriteDefaultConfig.
const DefaultConfigTemplate = `# vimengine configuration.
#
# disable_key: the key that toggles the engine fully off (Vim's own
# CTRL-6-alike "stop emulating, pass everything through" escape hatch).
disable_key: "<C-6>"

# mappings: custom key remaps, applied in the remap mode they target.
# mode is one of: normal, insert, visual, command, select,
# operator-pending, language.
mappings: []
#  - mode: normal
#    lhs: "<leader>w"
#    rhs: ":write<CR>"
#    noremap: true
`

// WriteDefaultConfig writes DefaultConfigTemplate to path if nothing
// exists there yet. It never overwrites an existing file.
func WriteDefaultConfig(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(DefaultConfigTemplate); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Load reads and validates a FileConfig from path using viper
// (mapstructure-tagged decoding, matching the rest of the ambient
// stack's configuration convention).
func Load(path string) (FileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	cfg := Defaults()
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("vimconfig: reading %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("vimconfig: decoding %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("vimconfig: %s: %w", path, err)
	}
	return cfg, nil
}
