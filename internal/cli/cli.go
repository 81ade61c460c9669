// Package cli implements the spanforge command-line interface.
//
// This package provides commands for constructing minimum-spanning forests
// over 3D point sets, rendering them as diagrams, serving the construction
// API, and managing the result cache. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - cluster: Merge the K closest pairs and summarize the components
//   - connect: Merge pairs until the forest is fully connected
//   - browse: Inspect cluster components interactively
//   - render: Generate SVG, PDF, PNG, or DOT diagrams of a forest
//   - serve: Run the construction HTTP API
//   - cache: Manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spanforge/pkg/buildinfo"
	"github.com/matzehuels/spanforge/pkg/cache"
	"github.com/matzehuels/spanforge/pkg/httputil"
	"github.com/matzehuels/spanforge/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "spanforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the user's
// config file applied (missing config falls back to defaults).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	cfg, err := LoadConfig(configPath())
	if err != nil {
		c.Logger.Warnf("Config ignored: %v", err)
		cfg = DefaultConfig()
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Spanforge builds minimum-spanning forests over 3D point sets",
		Long:         `Spanforge is a CLI tool for constructing minimum-spanning forests over 3D point sets, either by merging a fixed budget of closest pairs or by connecting everything into a single component.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.clusterCommand())
	root.AddCommand(c.connectCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(cmd *cobra.Command, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(cmd, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache builds the cache backend selected by the config. Backend
// connection failures degrade to a disabled cache rather than aborting the
// command; the construction itself never needs the cache to succeed.
func (c *CLI) newCache(cmd *cobra.Command, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	switch c.Config.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		store, err := cache.NewRedisCache(cmd.Context(), cache.RedisConfig{
			Addr:     c.Config.Cache.Redis.Addr,
			Password: c.Config.Cache.Redis.Password,
			DB:       c.Config.Cache.Redis.DB,
		})
		if err != nil {
			c.Logger.Warnf("Redis cache unavailable, caching disabled: %v", err)
			return cache.NewNullCache(), nil
		}
		return store, nil
	case BackendMongo:
		store, err := cache.NewMongoCache(cmd.Context(), cache.MongoConfig{
			URI: c.Config.Cache.Mongo.URI,
		})
		if err != nil {
			c.Logger.Warnf("Mongo cache unavailable, caching disabled: %v", err)
			return cache.NewNullCache(), nil
		}
		return store, nil
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// newFetcher creates the HTTP fetcher used by --from-url, sharing the
// command's cache backend for response bodies.
func (c *CLI) newFetcher(cmd *cobra.Command, noCache bool) *httputil.Fetcher {
	store, err := c.newCache(cmd, noCache)
	if err != nil {
		store = cache.NewNullCache()
	}
	return httputil.NewFetcher(store, cache.NewDefaultKeyer(), cache.TTLHTTP)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/spanforge/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the config file path using XDG standard
// (~/.config/spanforge/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
