package pattern

import (
	"cmmgen/lexer"
	"cmmgen/scan"
	log "github.com/sirupsen/logrus"
	"unicode/utf8"
)

const (
	CollectStart = "READ START"
	CollectEnd   = "READ END"
	GenMarker    = "GEN HERE"
)

var templateTable = scan.Table{
	{Name: "read start", Marker: scan.NewMatcher(CollectStart), Moves: map[scan.State]scan.State{scan.Outside: scan.InCollection}},
	{Name: "read end", Marker: scan.NewMatcher(CollectEnd), Moves: map[scan.State]scan.State{scan.InCollection: scan.Outside}},
}

// Template is a lexer rule template together with the pattern names found
// between its collection markers.
type Template struct {
	Lines  []string
	Tokens []string
	Width  int
}

// Scan collects the first word of every line inside a collection region.
// Blank lines contribute nothing.
func Scan(lines []string) *Template {
	m := scan.NewMachine(templateTable)
	tpl := &Template{
		Lines:  lines,
		Tokens: make([]string, 0),
	}

	for _, line := range lines {
		state, content := m.Step(line)
		if !content || state != scan.InCollection {
			continue
		}

		name, ok := lexer.FirstWord(line)
		if !ok {
			continue
		}

		log.Tracef("Add pattern %v", name)
		tpl.Tokens = append(tpl.Tokens, name)
		if w := utf8.RuneCountInString(name); w > tpl.Width {
			tpl.Width = w
		}
	}

	if m.State() != scan.Outside {
		log.Warnf("Template ends in %v", m.State())
	}

	return tpl
}

func ScanFile(path string) (*Template, error) {
	lines, err := scan.ReadLines(path)
	if err != nil {
		return nil, err
	}

	return Scan(lines), nil
}
