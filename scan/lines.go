package scan

import (
	"bufio"
	"github.com/pkg/errors"
	"io"
	"io/ioutil"
	"strings"
)

// Lines splits r into lines, keeping each line terminator so the lines can
// be written back byte for byte. A final line without terminator is kept.
func Lines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	lines := make([]string, 0)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func SplitLines(s string) []string {
	lines, _ := Lines(strings.NewReader(s))
	return lines
}

// ReadLines reads a whole file as lines.
func ReadLines(path string) ([]string, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %v", path)
	}

	return SplitLines(string(b)), nil
}

// WriteFile replaces path with content. The content is fully rendered by the
// caller before the file is touched.
func WriteFile(path string, content []byte) error {
	err := ioutil.WriteFile(path, content, 0644)
	if err != nil {
		return errors.Wrapf(err, "write %v", path)
	}
	return nil
}
