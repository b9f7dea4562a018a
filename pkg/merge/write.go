package merge

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// separatorWidth is the number of '=' characters in each banner line.
const separatorWidth = 80

var errNotText = errors.New("file is not valid UTF-8 text")

// Write creates (or truncates) outputPath and merges the matched files into
// it: a two-line header, then each file preceded by a path-labeled banner.
// Files that cannot be read as UTF-8 text are warned about and omitted.
// Returns the byte size of the completed output file.
func Write(outputPath, sourceDir string, matchedFiles, extensions []string, logger *zap.Logger) (int64, error) {
	outFile, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}

	writer := bufio.NewWriter(outFile)
	separator := "// " + strings.Repeat("=", separatorWidth)

	fmt.Fprintf(writer, "// Merged source files from %s\n", sourceDir)
	fmt.Fprintf(writer, "// Extensions: %s\n", strings.Join(extensions, ", "))

	for _, path := range matchedFiles {
		relPath := relativeTo(sourceDir, path)

		content, err := readTextFile(path)
		if err != nil {
			logger.Warn("Could not read file, omitting from output",
				zap.String("file", relPath), zap.Error(err))
			continue
		}

		fmt.Fprintf(writer, "\n%s\n// Source: %s\n%s\n\n", separator, relPath, separator)
		writer.WriteString(content)
		// Content is always newline-terminated in the output, even when the
		// source file lacks a trailing newline.
		writer.WriteByte('\n')
	}

	if err := writer.Flush(); err != nil {
		outFile.Close()
		return 0, fmt.Errorf("failed to flush output file: %w", err)
	}
	if err := outFile.Close(); err != nil {
		return 0, fmt.Errorf("failed to close output file: %w", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to stat output file: %w", err)
	}
	return info.Size(), nil
}

// readTextFile reads a file and verifies it decodes as UTF-8 text. Binary
// files fail this check and are skipped by the caller.
func readTextFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", errNotText
	}
	return string(raw), nil
}

// relativeTo renders path relative to baseDir, falling back to the path
// itself when no relative form exists.
func relativeTo(baseDir, path string) string {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		absBase = baseDir
	}
	relPath, err := filepath.Rel(absBase, path)
	if err != nil {
		return path
	}
	return relPath
}
