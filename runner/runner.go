package runner

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

const (
	DefaultDir    = "./test"
	DefaultParser = "./parser"
	DefaultExt    = ".cmm"

	separator = "===================================="
)

// Runner runs the parser over a single source file and reports its exit
// status.
type Runner interface {
	Run(path string) (int, error)
}

// Exec runs an external parser binary, one process per file.
type Exec struct {
	Parser string
	Stdout io.Writer
	Stderr io.Writer
}

func New(parser string) *Exec {
	return &Exec{
		Parser: parser,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (r *Exec) Run(path string) (int, error) {
	cmd := exec.Command(r.Parser, path)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err != nil {
		if exit, ok := err.(*exec.ExitError); ok {
			return exit.ExitCode(), nil
		}
		return -1, errors.Wrapf(err, "run %v", r.Parser)
	}

	return 0, nil
}

type Result struct {
	Path   string
	Status int
}

// Files lists the files of dir with extension ext, sorted by name. Entries
// that can't be stat'ed, like dangling links, are skipped.
func Files(dir, ext string) ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		info, err := os.Stat(e)
		if err != nil {
			log.Warnf("Skip %v: %v", e, err)
			continue
		}
		if info.IsDir() || !strings.HasSuffix(e, ext) {
			continue
		}
		files = append(files, e)
	}

	sort.Strings(files)

	return files, nil
}

// RunDir feeds every matching file of dir to r. A failing parse is recorded
// in the results and does not stop the run; failing to start the parser
// does.
func RunDir(r Runner, dir, ext string) ([]Result, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Wrapf(err, "test dir %v", dir)
	}

	files, err := Files(dir, ext)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(files))
	for _, f := range files {
		log.Infof("Analyze file %v", f)

		status, err := r.Run(f)
		if err != nil {
			return results, err
		}
		if status != 0 {
			log.Warnf("%v exited with status %v", f, status)
		}

		log.Info(separator)
		results = append(results, Result{Path: f, Status: status})
	}

	return results, nil
}
