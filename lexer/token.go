package lexer

import (
	"fmt"
	plexer "github.com/alecthomas/participle/v2/lexer"
)

type Token plexer.Token

var EOF = plexer.EOF

// Is reports whether the token is one of the named kinds.
func (t Token) Is(names ...string) bool {
	for _, name := range names {
		if t.Type == Symbol(name) {
			return true
		}
	}
	return false
}

func (t Token) StringAlign() string {
	return fmt.Sprintf("%-6v %7v %q", SymbolName(t.Type), t.Pos, t.Value)
}

func (t Token) String() string {
	return fmt.Sprintf("%v %v %q", SymbolName(t.Type), t.Pos, t.Value)
}
