package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/iconcache/cache"
	"github.com/joshuapare/iconcache/internal/config"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	nonBlocking bool
	configPath  string
	logLevel    string

	cfg    *config.Config
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "iconcachectl",
	Short: "Inspect GTK icon-theme cache files",
	Long: `iconcachectl reads the icon-theme.cache files written by
gtk-update-icon-cache and reports what they contain: header fields, hash
buckets, icon images and theme directories. Caches are opened read-only
under a shared lock and are never modified.

A cache argument may be a cache file, a theme directory, or a theme name
looked up under the configured theme roots.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setup() },
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&nonBlocking, "nonblocking", false, "Fail instead of waiting when the cache is locked")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", config.DefaultPath(), "Path to the configuration file")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the stderr logger.
func setup() error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	levelName := cfg.Log.Level
	if logLevel != "" {
		levelName = logLevel
	}
	level, err := config.ParseLevel(levelName)
	if err != nil {
		return err
	}
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded", "path", configPath, "roots", cfg.Themes.Roots)
	return nil
}

// openCache resolves arg through the configuration and opens the cache.
// The caller closes the returned file.
func openCache(arg string) (*cache.File, *cache.Cache, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	path, err := cfg.ResolveCache(arg)
	if err != nil {
		return nil, nil, err
	}
	printVerbose("Opening cache: %s\n", path)

	f, err := cache.Open(path, cache.OpenOptions{
		NonBlocking: nonBlocking || cfg.Cache.NonBlocking,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cache: %w", err)
	}
	c, err := f.Cache()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return f, c, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
