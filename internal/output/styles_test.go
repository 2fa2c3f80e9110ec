package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatModuleLine(t *testing.T) {
	t.Run("contains name, path and status", func(t *testing.T) {
		line := FormatModuleLine("hal_foo", "/modules/hal_foo", StatusResolved)
		assert.Contains(t, line, "hal_foo (/modules/hal_foo)")
		assert.Contains(t, line, StatusResolved)
	})

	t.Run("status column aligns for short identifiers", func(t *testing.T) {
		a := FormatModuleLine("a", "/m/a", StatusResolved)
		b := FormatModuleLine("bb", "/m/bb", StatusResolved)
		assert.Equal(t,
			strings.Index(stripAnsi(a), StatusResolved),
			strings.Index(stripAnsi(b), StatusResolved))
	})
}

func TestFormatCheckmark(t *testing.T) {
	msg := FormatCheckmark("Modules valid (3 modules)")
	assert.Contains(t, msg, "Modules valid (3 modules)")
}

// stripAnsi removes escape sequences so column positions can be compared.
func stripAnsi(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
