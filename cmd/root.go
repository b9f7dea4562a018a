package cmd

import (
	"fmt"
	"os"

	"srcmerge/pkg/logging"
	"srcmerge/pkg/merge"
	"srcmerge/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "srcmerge"

// newRootCmd builds the root command. The merge pipeline runs directly from
// the root command, taking the source directory and output file as
// positional arguments.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	var (
		extensions      []string
		includeRoots    []string
		excludePatterns []string
		verbose         bool
	)

	cmd := &cobra.Command{
		Use:   "srcmerge <source_dir> <output_file>",
		Short: "srcmerge merges source files into a single file",
		Long: `srcmerge concatenates source files from a directory tree into one output
file, inserting path-labeled separators between them, so a multi-file
codebase can be reviewed or fed to an LLM as a single blob.`,
		Example: `  # Merge Solidity contracts
  srcmerge src/ merged.sol

  # Merge multiple file types
  srcmerge . all_code.txt -e py -e js -e ts -e sol

  # Restrict the scan to specific subdirectories
  srcmerge . merged.sol --include core --include lib

  # Exclude directories using wildcard patterns
  srcmerge src/ output.sol --exclude '*Test' --exclude '*_mocks'`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceDir, output := args[0], args[1]

			info, err := os.Stat(sourceDir)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("source directory not found: %s", sourceDir)
			}

			log := logger
			if verbose {
				if l, err := logging.Setup(true, appName, version.Version); err == nil {
					log = l
				}
			}

			return merge.Run(merge.Arguments{
				SourceDir:       sourceDir,
				Output:          output,
				Extensions:      merge.NormalizeExtensions(extensions),
				ExcludePatterns: append(merge.DefaultExcludePatterns(), excludePatterns...),
				IncludeRoots:    includeRoots,
				Stdout:          cmd.OutOrStdout(),
			}, log)
		},
	}

	cmd.Flags().StringSliceVarP(&extensions, "extensions", "e", nil,
		"file extensions to include (default: sol)")
	cmd.Flags().StringSliceVar(&includeRoots, "include", nil,
		"subdirectories (relative to source_dir) to restrict the scan to")
	cmd.Flags().StringSliceVar(&excludePatterns, "exclude", nil,
		"directory name patterns to exclude, appended to the built-in defaults")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"enable human-readable debug logging")

	return cmd
}

// Execute assembles the command tree and runs it.
func Execute(logger *zap.Logger) error {
	root := newRootCmd(logger)
	root.AddCommand(newVersionCmd())
	return root.Execute()
}
