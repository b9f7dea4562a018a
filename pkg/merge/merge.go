// Package merge implements the resolve, write, and report stages of the
// source file merging pipeline.
package merge

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// Run executes a full merge: resolve matching files, write the combined
// output, and print the summary. A run that matches no files prints an
// informational message and succeeds without creating the output file.
func Run(args Arguments, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting merge",
		zap.String("sourceDir", args.SourceDir),
		zap.Strings("extensions", args.Extensions))

	stdout := args.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	matched, err := Resolve(args.SourceDir, args.Extensions, args.ExcludePatterns, args.IncludeRoots, logger)
	if err != nil {
		return fmt.Errorf("failed to resolve files: %w", err)
	}

	if len(matched) == 0 {
		fmt.Fprintf(stdout, "No files with extensions %v found in %s\n",
			args.Extensions, args.SourceDir)
		return nil
	}

	byteCount, err := Write(args.Output, args.SourceDir, matched, args.Extensions, logger)
	if err != nil {
		return fmt.Errorf("failed to write merged output: %w", err)
	}

	Report(stdout, args.Output, byteCount, matched, args.SourceDir)

	logger.Info("Merge completed",
		zap.Int("files", len(matched)),
		zap.Int64("bytes", byteCount),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
