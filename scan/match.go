package scan

import (
	"strings"
)

// Matcher recognises marker lines.
type Matcher interface {
	Is(line string) bool
}

// NewMatcher matches any line containing text, anywhere in the line.
func NewMatcher(text string) Matcher {
	return crit(text)
}

type crit string

func (c crit) Is(line string) bool {
	return strings.Contains(line, string(c))
}

func (c crit) String() string {
	return "`" + string(c) + "`"
}
