// Package config loads agentlink configuration using koanf layering:
// embedded defaults, then an optional repository-level config file,
// then AGENTLINK_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/agentlink/pkg/errors"
	"github.com/arthur-debert/agentlink/pkg/paths"
)

// EnvPrefix is the prefix for configuration environment variables,
// e.g. AGENTLINK_INSTALL_TARGET overrides install.target.
const EnvPrefix = "AGENTLINK_"

// Config is the root configuration structure.
type Config struct {
	Install InstallConfig `koanf:"install" toml:"install"`
}

// InstallConfig holds the installer settings.
type InstallConfig struct {
	// Target is the configuration directory links are created in.
	// Supports ~ expansion.
	Target string `koanf:"target" toml:"target"`

	// Mappings are the repository subdirectories linked into Target.
	Mappings []string `koanf:"mappings" toml:"mappings"`
}

// Load builds the effective configuration for the given repository root.
func Load(repoRoot string) (*Config, error) {
	k, err := loadKoanf(repoRoot)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	target, err := paths.ExpandHome(cfg.Install.Target)
	if err != nil {
		return nil, err
	}
	cfg.Install.Target = target

	return &cfg, nil
}

// loadKoanf layers all configuration sources in override order.
func loadKoanf(repoRoot string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// 2. Repository config if it exists
	for _, filename := range []string{".agentlink.toml", "agentlink.toml"} {
		path := filepath.Join(repoRoot, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load repository config from %s", path)
			}
			break
		}
	}

	// 3. Environment variables (AGENTLINK_INSTALL_TARGET -> install.target)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment configuration")
	}

	return k, nil
}
