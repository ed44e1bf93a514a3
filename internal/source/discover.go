package source

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand turns command-line arguments into file paths. Arguments with
// glob metacharacters are expanded with doublestar ("**" crosses
// directories); plain arguments are kept as-is so a missing file surfaces
// as ErrNotFound when it is read. Results keep argument order, matches of
// one pattern are sorted and duplicates are dropped.
func Expand(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(path string) {
		key := path
		if abs, err := filepath.Abs(path); err == nil {
			key = abs
		}
		if !seen[key] {
			seen[key] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if !isPattern(arg) {
			add(arg)
			continue
		}

		if !doublestar.ValidatePathPattern(arg) {
			return nil, fmt.Errorf("invalid glob pattern: %q", arg)
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: %w", arg, ErrNotFound)
		}

		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}

	return result, nil
}

func isPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
