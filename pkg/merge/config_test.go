package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExtensionsDefaultsWhenEmpty(t *testing.T) {
	assert.Equal(t, []string{".sol"}, NormalizeExtensions(nil))
	assert.Equal(t, []string{".sol"}, NormalizeExtensions([]string{}))
}

func TestNormalizeExtensionsPrefixesDot(t *testing.T) {
	assert.Equal(t,
		[]string{".sol", ".txt", ".py"},
		NormalizeExtensions([]string{"sol", ".txt", "py"}))
}

func TestDefaultExcludePatternsAreAppendOnly(t *testing.T) {
	patterns := append(DefaultExcludePatterns(), "*Test")
	assert.Contains(t, patterns, "node_modules")
	assert.Contains(t, patterns, ".git")
	assert.Contains(t, patterns, "*Test")
}
