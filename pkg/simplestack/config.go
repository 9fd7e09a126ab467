package simplestack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/constants"
	"github.com/BrandonKowalski/simplestack/pkg/simplestack/internal"
)

// Config is the TOML configuration of the demo.
//
//	platform = "ios"
//	locale = "en"
//	log_level = "debug"
//	log_path = "logs/simplestack.log"
//	initial_author = "Gandalf"
//	transition = "250ms"
//
//	[input]
//	device = "/dev/input/event1"
type Config struct {
	Platform      string        `toml:"platform"`
	Locale        string        `toml:"locale"`
	LogLevel      string        `toml:"log_level"`
	LogPath       string        `toml:"log_path"`
	InitialAuthor string        `toml:"initial_author"`
	Transition    time.Duration `toml:"transition"`
	Input         InputConfig   `toml:"input"`
}

// InputConfig configures the optional hardware input device.
type InputConfig struct {
	Device string `toml:"device"` // evdev device path; empty disables hardware input
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Platform:      constants.PlatformDefault.String(),
		Locale:        constants.DefaultLocale,
		LogLevel:      constants.DefaultLogLevel,
		InitialAuthor: constants.DefaultInitialAuthor,
		Transition:    constants.DefaultTransitionDuration,
	}
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults; an empty path skips the file. Environment variables override
// platform, locale and log level.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			cfg = DefaultConfig()
		case err != nil:
			return Config{}, NewInfrastructureError("load_config", err)
		default:
			for _, key := range meta.Undecoded() {
				internal.GetInternalLogger().Warn("unknown config key", "key", key.String(), "file", path)
			}
		}
	}

	if v := os.Getenv(constants.PlatformEnvVar); v != "" {
		cfg.Platform = v
	}
	if v := os.Getenv(constants.LocaleEnvVar); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config and fills zero values with defaults.
func (c *Config) Validate() error {
	if _, ok := constants.ParsePlatform(c.Platform); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlatform, c.Platform)
	}
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = constants.DefaultLocale
	}
	if c.InitialAuthor == "" {
		c.InitialAuthor = constants.DefaultInitialAuthor
	}
	if c.Transition < 0 {
		c.Transition = 0
	}
	return nil
}

// PlatformValue returns the parsed platform.
func (c Config) PlatformValue() constants.Platform {
	p, _ := constants.ParsePlatform(c.Platform)
	return p
}
