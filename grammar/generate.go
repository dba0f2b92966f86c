package grammar

import (
	"cmmgen/scan"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultSpec   = "syntax.y"
	DefaultOutput = "yytname.h"
)

// Generate reads the specification at specPath and overwrites outPath with
// the symbol index enum. Nothing is written when the specification can't be
// read.
func Generate(specPath, outPath string) (Index, error) {
	log.Infof("Scan %v", specPath)

	list, err := ScanFile(specPath)
	if err != nil {
		return Index{}, scan.Wrap("enum", scan.Wrap("scan", err))
	}

	idx := NewIndex(list)
	log.Debugf("Indexed %v terminals, %v nonterminals", len(idx.Terminals), len(idx.Nonterminals))

	err = scan.WriteFile(outPath, RenderEnum(idx))
	if err != nil {
		return Index{}, scan.Wrap("enum", scan.Wrap("emit", err))
	}

	log.Infof("Wrote %v", outPath)

	return idx, nil
}
