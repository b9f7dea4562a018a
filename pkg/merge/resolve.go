package merge

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Resolve expands the source directory (or its include roots) into the
// deduplicated, sorted list of absolute file paths matching the extension
// filter, pruning any directory whose bare name matches an exclude pattern.
func Resolve(sourceDir string, extensions, excludePatterns, includeRoots []string, logger *zap.Logger) ([]string, error) {
	roots, err := traversalRoots(sourceDir, includeRoots, logger)
	if err != nil {
		return nil, err
	}

	// Deduplicate by absolute path so overlapping include roots yield each
	// physical file exactly once.
	matched := make(map[string]struct{})
	for _, root := range roots {
		collectFromRoot(root, extensions, excludePatterns, matched, logger)
	}

	paths := make([]string, 0, len(matched))
	for path := range matched {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	logger.Debug("Resolved matching files",
		zap.Int("rootCount", len(roots)),
		zap.Int("fileCount", len(paths)))
	return paths, nil
}

// traversalRoots builds the concrete list of directories to walk. Without
// include roots the source directory itself is the only root; otherwise each
// include root is joined with the source directory, and roots that do not
// exist or are not directories are skipped with a warning.
func traversalRoots(sourceDir string, includeRoots []string, logger *zap.Logger) ([]string, error) {
	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source directory path: %w", err)
	}

	if len(includeRoots) == 0 {
		return []string{absSource}, nil
	}

	var roots []string
	for _, rel := range includeRoots {
		root := filepath.Join(absSource, rel)
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			logger.Warn("Include root does not exist or is not a directory, skipping",
				zap.String("includeRoot", rel),
				zap.String("path", root))
			continue
		}
		roots = append(roots, root)
	}
	return roots, nil
}

// collectFromRoot walks a single root and accumulates matching absolute
// paths. Walk errors on individual entries are warned about and skipped,
// never failing the whole resolution.
func collectFromRoot(root string, extensions, excludePatterns []string, matched map[string]struct{}, logger *zap.Logger) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal",
				zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if path != root && matchesAnyPattern(d.Name(), excludePatterns) {
				logger.Debug("Pruning excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if hasMatchingSuffix(d.Name(), extensions) {
			matched[path] = struct{}{}
		}
		return nil
	})
	if err != nil {
		logger.Warn("Error walking traversal root", zap.String("root", root), zap.Error(err))
	}
}

// matchesAnyPattern reports whether a bare directory name matches any of the
// glob patterns. Malformed patterns are treated as non-matching.
func matchesAnyPattern(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// hasMatchingSuffix reports whether a file name ends with any of the
// normalized extensions. Matching is case-sensitive.
func hasMatchingSuffix(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
