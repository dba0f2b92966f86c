package grammar

import (
	"bytes"
	"fmt"
	"io"
)

const (
	Guard    = "__YYTNAME_INDEX_H__"
	EnumName = "YYTNAME_INDEX"
	Prefix   = "YY_"
)

// WriteEnum renders idx as a C enum wrapped in an include guard. Every name
// is padded to Width+1 so the `=` signs line up.
func WriteEnum(w io.Writer, idx Index) error {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "#ifndef %v\n", Guard)
	fmt.Fprintf(buf, "#define %v\n", Guard)
	fmt.Fprintf(buf, "\nenum %v {\n", EnumName)

	for _, syms := range [][]IndexedSymbol{idx.Terminals, idx.Nonterminals} {
		for _, s := range syms {
			fmt.Fprintf(buf, "    %v%-*s= %d,\n", Prefix, idx.Width+1, s.Name, s.Code)
		}
	}

	buf.WriteString("};\n")
	buf.WriteString("\n#endif\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func RenderEnum(idx Index) []byte {
	buf := &bytes.Buffer{}
	_ = WriteEnum(buf, idx)
	return buf.Bytes()
}
