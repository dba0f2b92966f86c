package pattern

import (
	"cmmgen/scan"
	log "github.com/sirupsen/logrus"
	"path/filepath"
)

const (
	DefaultTemplate = "lexical.template"
	OutputName      = "lexical.l"
)

// DefaultOutput is where the rules generated from tplPath go: one directory
// above the template.
func DefaultOutput(tplPath string) string {
	return filepath.Join(filepath.Dir(tplPath), "..", OutputName)
}

// Generate expands the template at tplPath into outPath.
func Generate(tplPath, outPath string) (*Template, error) {
	log.Infof("Open %v", tplPath)

	tpl, err := ScanFile(tplPath)
	if err != nil {
		return nil, scan.Wrap("pattern", scan.Wrap("scan", err))
	}

	err = scan.WriteFile(outPath, tpl.Render())
	if err != nil {
		return nil, scan.Wrap("pattern", scan.Wrap("emit", err))
	}

	log.Infof("Wrote %v rules to %v", len(tpl.Tokens), outPath)

	return tpl, nil
}
