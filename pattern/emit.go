package pattern

import (
	"bytes"
	"cmmgen/scan"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"strings"
	"unicode/utf8"
)

const Handler = "HANDLE"

var genMarker = scan.NewMatcher(GenMarker)

// Rule renders the generated lexer rule for one pattern name.
func (t *Template) Rule(name string) string {
	pad := t.Width - utf8.RuneCountInString(name) + 2
	return "{" + name + "}" + strings.Repeat(" ", pad) + fmt.Sprintf("%v(%v)\n", Handler, name)
}

// Write copies the template to w, replacing every generation marker line
// with one rule per collected pattern.
func (t *Template) Write(w io.Writer) error {
	buf := &bytes.Buffer{}

	for i, line := range t.Lines {
		if !genMarker.Is(line) {
			buf.WriteString(line)
			continue
		}

		log.Debugf("Generate %v rules at line %v", len(t.Tokens), i+1)
		for _, name := range t.Tokens {
			buf.WriteString(t.Rule(name))
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func (t *Template) Render() []byte {
	buf := &bytes.Buffer{}
	_ = t.Write(buf)
	return buf.Bytes()
}
