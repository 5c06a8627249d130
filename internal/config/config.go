// Package config loads the iconcachectl configuration file and resolves the
// cache a command should read.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
)

// DefaultFilename is the name gtk-update-icon-cache gives its output.
const DefaultFilename = "icon-theme.cache"

// Config is the resolved configuration.
type Config struct {
	Themes ThemesConfig
	Cache  CacheConfig
	Log    LogConfig

	path string
}

// ThemesConfig lists where bare theme names are looked up.
type ThemesConfig struct {
	Roots []string
}

type CacheConfig struct {
	Filename    string
	NonBlocking bool
}

type LogConfig struct {
	Level string
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Themes: ThemesConfig{Roots: defaultRoots()},
		Cache:  CacheConfig{Filename: DefaultFilename},
		Log:    LogConfig{Level: "info"},
	}
}

func defaultRoots() []string {
	roots := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, ".local", "share", "icons"))
	}
	return append(roots, "/usr/local/share/icons", "/usr/share/icons")
}

// DefaultPath returns $XDG_CONFIG_HOME/iconcache/config, falling back to
// ~/.config/iconcache/config.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "iconcache", "config")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "iconcache", "config")
}

// Load reads the INI file at path. A missing file yields Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if f.HasSection("themes") {
		section := f.Section("themes")
		if section.HasKey("roots") {
			var roots []string
			for _, r := range section.Key("roots").Strings(",") {
				if r != "" {
					roots = append(roots, expandHome(r))
				}
			}
			cfg.Themes.Roots = roots
		}
	}

	if f.HasSection("cache") {
		section := f.Section("cache")
		if section.HasKey("filename") {
			if name := section.Key("filename").String(); name != "" {
				cfg.Cache.Filename = name
			}
		}
		if section.HasKey("nonblocking") {
			nb, err := section.Key("nonblocking").Bool()
			if err != nil {
				return nil, fmt.Errorf("cache.nonblocking: %w", err)
			}
			cfg.Cache.NonBlocking = nb
		}
	}

	if f.HasSection("log") {
		section := f.Section("log")
		if section.HasKey("level") {
			cfg.Log.Level = section.Key("level").String()
		}
	}
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	return cfg, nil
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string { return c.path }

// Save writes c as INI to path.
func (c *Config) Save(path string) error {
	f := ini.Empty()
	f.Section("themes").Key("roots").SetValue(strings.Join(c.Themes.Roots, ", "))
	f.Section("cache").Key("filename").SetValue(c.Cache.Filename)
	f.Section("cache").Key("nonblocking").SetValue(fmt.Sprintf("%t", c.Cache.NonBlocking))
	f.Section("log").Key("level").SetValue(c.Log.Level)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return f.SaveTo(path)
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// ResolveCache maps a command argument to a cache file. An existing file is
// used as is, a directory is taken as a theme directory, and anything else
// is looked up as a theme name under each root in order.
func (c *Config) ResolveCache(arg string) (string, error) {
	if arg == "" {
		return "", errors.New("no cache or theme given")
	}
	arg = expandHome(arg)

	if info, err := os.Stat(arg); err == nil {
		if !info.IsDir() {
			return arg, nil
		}
		path := filepath.Join(arg, c.Cache.Filename)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("theme directory %s: %w", arg, err)
		}
		return path, nil
	}

	if strings.ContainsRune(arg, filepath.Separator) {
		return "", fmt.Errorf("%s: %w", arg, os.ErrNotExist)
	}
	for _, root := range c.Themes.Roots {
		path := filepath.Join(root, arg, c.Cache.Filename)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("theme %q not found under %s: %w",
		arg, strings.Join(c.Themes.Roots, ", "), os.ErrNotExist)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
