package grammar

import (
	"cmmgen/lexer"
	"cmmgen/scan"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"unicode/utf8"
)

const (
	TerminalStart    = "token start"
	TerminalEnd      = "token end"
	NonterminalStart = "nonterminal start"
	NonterminalEnd   = "nonterminal end"
)

// Region markers of a grammar specification. Only Outside opens a region, so
// a region left open swallows the other region's markers until its own end
// marker shows up.
var specTable = scan.Table{
	{Name: "terminal start", Marker: scan.NewMatcher(TerminalStart), Moves: map[scan.State]scan.State{scan.Outside: scan.InTerminals}},
	{Name: "terminal end", Marker: scan.NewMatcher(TerminalEnd), Moves: map[scan.State]scan.State{scan.InTerminals: scan.Outside}},
	{Name: "nonterminal start", Marker: scan.NewMatcher(NonterminalStart), Moves: map[scan.State]scan.State{scan.Outside: scan.InNonterminals}},
	{Name: "nonterminal end", Marker: scan.NewMatcher(NonterminalEnd), Moves: map[scan.State]scan.State{scan.InNonterminals: scan.Outside}},
}

// SymbolList holds the terminal and nonterminal names of a grammar in the
// order they appear.
type SymbolList struct {
	terminals    []string
	nonterminals []string
}

func (l SymbolList) Terminals() []string {
	return append([]string(nil), l.terminals...)
}

func (l SymbolList) Nonterminals() []string {
	return append([]string(nil), l.nonterminals...)
}

// Width is the length of the longest name across both lists.
func (l SymbolList) Width() int {
	w := 0
	for _, names := range [][]string{l.terminals, l.nonterminals} {
		for _, n := range names {
			if c := utf8.RuneCountInString(n); c > w {
				w = c
			}
		}
	}
	return w
}

type Builder struct {
	terminals    []string
	nonterminals []string
}

func (b *Builder) AddTerminal(name string) *Builder {
	b.terminals = append(b.terminals, name)
	return b
}

func (b *Builder) AddNonterminal(name string) *Builder {
	b.nonterminals = append(b.nonterminals, name)
	return b
}

func (b *Builder) Build() SymbolList {
	return SymbolList{
		terminals:    append([]string(nil), b.terminals...),
		nonterminals: append([]string(nil), b.nonterminals...),
	}
}

// Scan collects symbol names from the lines of a grammar specification.
func Scan(lines []string) (SymbolList, error) {
	m := scan.NewMachine(specTable)
	b := &Builder{}

	for _, line := range lines {
		state, content := m.Step(line)
		if !content {
			continue
		}

		switch state {
		case scan.InTerminals:
			for _, w := range lexer.Words(line) {
				log.Tracef("Add terminal %v", w)
				b.AddTerminal(w)
			}
		case scan.InNonterminals:
			name, ok, err := lexer.ProductionHead(line)
			if err != nil {
				return SymbolList{}, scan.Wrap(fmt.Sprintf("line %v", m.Line()), err)
			}
			if ok {
				log.Tracef("Add nonterminal %v", name)
				b.AddNonterminal(name)
			}
		}
	}

	if m.State() != scan.Outside {
		log.Warnf("Specification ends in %v", m.State())
	}

	return b.Build(), nil
}

func ScanReader(r io.Reader) (SymbolList, error) {
	lines, err := scan.Lines(r)
	if err != nil {
		return SymbolList{}, err
	}

	return Scan(lines)
}

func ScanFile(path string) (SymbolList, error) {
	lines, err := scan.ReadLines(path)
	if err != nil {
		return SymbolList{}, err
	}

	return Scan(lines)
}
