package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/citemill/citemill/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "citemill"

// newCache creates the render cache for CLI use. Caching problems
// degrade to a null cache rather than failing the command.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/citemill/).
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

// parseList parses a comma-separated flag value into a slice.
// Empty input yields nil; surrounding whitespace is trimmed.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
