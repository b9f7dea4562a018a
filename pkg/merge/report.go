package merge

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// listingLimit caps how many merged files the summary lists individually.
const listingLimit = 10

// Report prints the post-merge summary: the success line, the output size in
// bytes and megabytes, and a truncated listing of the merged files rendered
// relative to the source directory.
func Report(w io.Writer, outputPath string, byteCount int64, matchedFiles []string, sourceDir string) {
	check := color.New(color.FgGreen).Sprint("✓")
	fmt.Fprintf(w, "%s Merged %d files into %s\n", check, len(matchedFiles), outputPath)
	fmt.Fprintf(w, "  Total size: %s bytes (%.2f MB)\n",
		groupDigits(byteCount), float64(byteCount)/(1024*1024))

	fmt.Fprintf(w, "\nMerged files:\n")
	for i, path := range matchedFiles {
		if i == listingLimit {
			fmt.Fprintf(w, "  ... and %d more files\n", len(matchedFiles)-listingLimit)
			break
		}
		fmt.Fprintf(w, "  - %s\n", relativeTo(sourceDir, path))
	}
}

// groupDigits formats n with comma thousands separators.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
