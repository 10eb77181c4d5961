package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/user/linkman/internal/links"
	"github.com/user/linkman/internal/shortcut"
)

// ErrFolderNotFound is returned when the import folder does not exist or
// cannot be listed. Callers test for it with errors.Is.
var ErrFolderNotFound = errors.New("folder not found")

// DefaultPattern selects the shortcut files considered by Import.
const DefaultPattern = "*.url"

// Import scans folder for shortcut files matching pattern (case-insensitive,
// doublestar syntax; empty means DefaultPattern) and returns the unique URLs
// they contain, sorted. The scan is non-recursive and read-only. Files that
// cannot be read or hold no URL are skipped; only a missing or unlistable
// folder is fatal.
func Import(folder, pattern string) (links.Collection, error) {
	if strings.TrimSpace(pattern) == "" {
		pattern = DefaultPattern
	}
	lowerPattern := strings.ToLower(pattern)
	if !doublestar.ValidatePattern(lowerPattern) {
		return nil, fmt.Errorf("invalid shortcut pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folder)
	}

	set := make(map[string]struct{})
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := doublestar.Match(lowerPattern, strings.ToLower(e.Name())); !ok {
			continue
		}
		u, err := shortcut.ExtractURL(filepath.Join(folder, e.Name()))
		if err != nil {
			continue
		}
		set[u] = struct{}{}
	}
	return links.FromSet(set), nil
}
