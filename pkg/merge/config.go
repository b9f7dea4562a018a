package merge

import (
	"io"
	"strings"
)

// Arguments holds the configuration for a single merge invocation.
type Arguments struct {
	SourceDir       string    // Directory scanned for matching files.
	Output          string    // Destination path for the merged output file.
	Extensions      []string  // Normalized file suffixes to include.
	ExcludePatterns []string  // Glob patterns pruning directories by bare name.
	IncludeRoots    []string  // Optional subdirectories restricting the scan.
	Stdout          io.Writer // Destination for the user-facing summary; defaults to os.Stdout.
}

// DefaultExtension is used when no extensions are supplied.
const DefaultExtension = ".sol"

// DefaultExcludePatterns returns the built-in directory name patterns that
// are always excluded. User-supplied patterns are appended to this list,
// never replacing it.
func DefaultExcludePatterns() []string {
	return []string{"node_modules", ".git", "build", "cache", "out", "artifacts"}
}

// NormalizeExtensions prefixes each extension with a dot where missing and
// falls back to the default extension for empty input.
func NormalizeExtensions(extensions []string) []string {
	if len(extensions) == 0 {
		return []string{DefaultExtension}
	}

	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}
