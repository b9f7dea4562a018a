package merge

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestReportSummary(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	src := filepath.Join("some", "src")
	files := []string{
		filepath.Join(src, "a.sol"),
		filepath.Join(src, "b.sol"),
	}

	var buf bytes.Buffer
	Report(&buf, "merged.sol", 1234567, files, src)

	out := buf.String()
	assert.Contains(t, out, "✓ Merged 2 files into merged.sol")
	assert.Contains(t, out, "Total size: 1,234,567 bytes (1.18 MB)")
	assert.Contains(t, out, "Merged files:")
	assert.Contains(t, out, "  - a.sol\n")
	assert.Contains(t, out, "  - b.sol\n")
	assert.NotContains(t, out, "more files")
}

func TestReportTruncatesListingAtTen(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	src := "src"
	var files []string
	for i := 0; i < 12; i++ {
		files = append(files, filepath.Join(src, fmt.Sprintf("f%02d.sol", i)))
	}

	var buf bytes.Buffer
	Report(&buf, "merged.sol", 42, files, src)

	out := buf.String()
	assert.Contains(t, out, "Merged 12 files into merged.sol")
	assert.Contains(t, out, "  - f09.sol\n")
	assert.NotContains(t, out, "  - f10.sol")
	assert.Contains(t, out, "  ... and 2 more files\n")
}

func TestGroupDigits(t *testing.T) {
	cases := map[int64]string{
		0:          "0",
		999:        "999",
		1000:       "1,000",
		12345:      "12,345",
		1234567:    "1,234,567",
		1000000000: "1,000,000,000",
	}
	for n, want := range cases {
		assert.Equal(t, want, groupDigits(n), "groupDigits(%d)", n)
	}
}
