package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "todo"
	fileName  = "todo"
)

// DefaultItems seeds the list when no items are configured.
var DefaultItems = []string{"Be a gangster", "Finish a project", "Be a coder"}

type Config struct {
	TickRate time.Duration `mapstructure:"tick_rate"`
	LogFile  string        `mapstructure:"log_file"`
	LogLevel string        `mapstructure:"log_level"`
	Glyphs   string        `mapstructure:"glyphs"`
	Theme    string        `mapstructure:"theme"`
	Items    []string      `mapstructure:"items"`
}

func Defaults() map[string]any {
	return map[string]any{
		"tick_rate": 250 * time.Millisecond,
		"log_file":  "",
		"log_level": "info",
		"glyphs":    "unicode",
		"theme":     "auto",
		"items":     []string{},
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"tick-rate": "tick_rate",
	"log-file":  "log_file",
	"log-level": "log_level",
	"glyphs":    "glyphs",
	"theme":     "theme",
	"item":      "items",
}

// Error reports an invalid or unreadable configuration value.
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// userConfigDir returns the per-user directory searched for todo.yaml.
func userConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "todo"), nil
}

// Load resolves the configuration. Precedence: flags that were set on the
// command line, TODO_* environment variables, the config file, defaults.
// An explicit configFile must exist; the default search locations are optional.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if dir, err := userConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return c, &Error{Err: err}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return c, &Error{Key: key, Err: err}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, &Error{Err: err}
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate normalizes enum-like values and rejects the ones it does not know.
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return &Error{Key: "tick_rate", Err: fmt.Errorf("must be positive, got %s", c.TickRate)}
	}

	c.Glyphs = strings.ToLower(strings.TrimSpace(c.Glyphs))
	switch c.Glyphs {
	case "", "unicode", "utf8":
		c.Glyphs = "unicode"
	case "ascii":
	default:
		return &Error{Key: "glyphs", Err: fmt.Errorf("unknown glyph set %q (want unicode|ascii)", c.Glyphs)}
	}

	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	switch c.Theme {
	case "":
		c.Theme = "auto"
	case "auto", "light", "dark":
	default:
		return &Error{Key: "theme", Err: fmt.Errorf("unknown theme %q (want auto|light|dark)", c.Theme)}
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "":
		c.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return &Error{Key: "log_level", Err: fmt.Errorf("unknown level %q (want debug|info|warn|error)", c.LogLevel)}
	}

	items := c.Items[:0]
	for _, it := range c.Items {
		if s := strings.TrimSpace(it); s != "" {
			items = append(items, s)
		}
	}
	c.Items = items
	return nil
}

// SeedItems returns the configured items, or DefaultItems when none are set.
func (c Config) SeedItems() []string {
	if len(c.Items) > 0 {
		return append([]string(nil), c.Items...)
	}
	return append([]string(nil), DefaultItems...)
}
