package lexer

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/alecthomas/participle/v2/lexer/stateful"
	"io"
	"strings"
)

var _def *stateful.Definition

func init() {
	_def = stateful.Must(stateful.Rules{
		"Root": {
			{Name: "ws", Pattern: `[ \t\r\n\f\v]+`, Action: nil},
			{Name: `Ident`, Pattern: `\w+`, Action: nil},
			{Name: `Colon`, Pattern: `:`, Action: nil},
			{Name: `Other`, Pattern: `[^ \t\r\n\f\v\w:]+`, Action: nil},
		},
	})
}

func Tokenize(r io.Reader) ([]Token, error) {
	lex, err := Def().Lex("", r)
	if err != nil {
		return nil, err
	}

	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	mytoks := make([]Token, len(toks))
	for i, t := range toks {
		mytoks[i] = Token(t)
	}

	return mytoks, nil
}

func TokenizeLine(line string) ([]Token, error) {
	return Tokenize(strings.NewReader(line))
}

// Words splits a line on blanks, the same class the `ws` rule matches.
// The tokenizer is not used here: words are any non-blank run, whatever
// their runes.
func Words(line string) []string {
	return strings.FieldsFunc(line, isBlank)
}

func isBlank(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

// FirstWord returns the first whitespace-delimited word of the line, or false
// for a blank line.
func FirstWord(line string) (string, bool) {
	words := Words(line)
	if len(words) == 0 {
		return "", false
	}

	return words[0], true
}

// ProductionHead reports whether the line starts with `ident :` (blanks
// allowed around both) and returns the identifier.
func ProductionHead(line string) (string, bool, error) {
	toks, err := TokenizeLine(line)
	if err != nil {
		return "", false, err
	}

	toks = skipWs(toks)
	if len(toks) < 2 || !toks[0].Is("Ident") {
		return "", false, nil
	}

	name := toks[0].Value
	rest := skipWs(toks[1:])
	if len(rest) == 0 || !rest[0].Is("Colon") {
		return "", false, nil
	}

	return name, true, nil
}

func skipWs(toks []Token) []Token {
	for len(toks) > 0 && toks[0].Is("ws") {
		toks = toks[1:]
	}
	return toks
}

func Def() *stateful.Definition {
	return _def
}

func Symbols() map[string]rune {
	return Def().Symbols()
}

func Symbol(name string) rune {
	t := Symbols()[name]
	if t == 0 {
		panic("unknown symbol: " + name)
	}
	return t
}

var typeToName map[rune]string

func init() {
	typeToName = map[rune]string{}
	for s, k := range Symbols() {
		typeToName[k] = s
	}
}

func SymbolName(t rune) string {
	return typeToName[t]
}
