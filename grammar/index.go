package grammar

// Codes 0-2 belong to $end, error and $undefined in the parser tables, and
// the code right after the last terminal to $accept.
const (
	BaseCode     = 3
	reservedGaps = 1
)

type IndexedSymbol struct {
	Name string
	Code int
}

type Index struct {
	Terminals    []IndexedSymbol
	Nonterminals []IndexedSymbol
	Width        int
}

// NewIndex numbers terminals from BaseCode on, then skips the reserved slot
// and continues with the nonterminals.
func NewIndex(l SymbolList) Index {
	code := BaseCode

	terminals := make([]IndexedSymbol, 0, len(l.terminals))
	for _, name := range l.terminals {
		terminals = append(terminals, IndexedSymbol{Name: name, Code: code})
		code++
	}

	code += reservedGaps

	nonterminals := make([]IndexedSymbol, 0, len(l.nonterminals))
	for _, name := range l.nonterminals {
		nonterminals = append(nonterminals, IndexedSymbol{Name: name, Code: code})
		code++
	}

	return Index{
		Terminals:    terminals,
		Nonterminals: nonterminals,
		Width:        l.Width(),
	}
}
