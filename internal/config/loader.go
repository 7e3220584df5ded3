package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// envPrefix namespaces habitd environment overrides.
	envPrefix = "HABITD_"

	// maxConfigSize caps config files at 1MB.
	maxConfigSize = 1 << 20
)

// Load reads configuration from the default path and environment.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile reads configuration from the given file path, falling
// back to ~/.config/habitd/config.yaml when path is empty. A missing
// file is not an error: defaults and environment overrides still apply.
func LoadWithFile(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath()
	}

	k := koanf.New(".")

	if path != "" {
		data, err := readConfigFile(path)
		switch {
		case err == nil:
			if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// Default path absent, run on defaults.
		default:
			return nil, err
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := New()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// envTransform maps HABITD_SECTION_FIELD_NAME to section.field_name.
// Only the first underscore separates section from field, so
// HABITD_ENGINE_CONSISTENCY_CUTOFF becomes engine.consistency_cutoff.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if i := strings.Index(s, "_"); i >= 0 {
		return s[:i] + "." + s[i+1:]
	}
	return s
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "habitd", "config.yaml")
}

// readConfigFile validates the config file location, permissions, and
// size before reading it. Config files must live under the user config
// directory or /etc/habitd and must not be world or group writable.
func readConfigFile(path string) ([]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", abs)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", abs, maxConfigSize)
	}
	if err := checkPermissions(info); err != nil {
		return nil, fmt.Errorf("config file %s: %w", abs, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", abs, err)
	}
	return data, nil
}

func checkPermissions(info fs.FileInfo) error {
	perm := info.Mode().Perm()
	if perm&0o022 != 0 {
		return fmt.Errorf("permissions %o allow group or world write, want 0600 or 0644", perm)
	}
	return nil
}
