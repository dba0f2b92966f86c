package runner

import (
	"github.com/stretchr/testify/assert"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

type fakeRunner struct {
	seen   []string
	status map[string]int
}

func (f *fakeRunner) Run(path string) (int, error) {
	f.seen = append(f.seen, filepath.Base(path))
	return f.status[filepath.Base(path)], nil
}

func testDir(t *testing.T, names ...string) string {
	dir, err := ioutil.TempDir("", "cmm-test")
	if err != nil {
		t.Fatal(err)
	}

	for _, n := range names {
		err := ioutil.WriteFile(filepath.Join(dir, n), []byte("int main() { return 0; }\n"), 0644)
		if err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func TestFiles_SortedByExtension(t *testing.T) {
	dir := testDir(t, "b.cmm", "a.cmm", "notes.txt", "c.cmm")
	defer os.RemoveAll(dir)
	if err := os.Mkdir(filepath.Join(dir, "sub.cmm"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := Files(dir, DefaultExt)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.cmm"),
		filepath.Join(dir, "b.cmm"),
		filepath.Join(dir, "c.cmm"),
	}, files)
}

func TestFiles_SkipsDanglingLink(t *testing.T) {
	dir := testDir(t, "a.cmm", "c.cmm")
	defer os.RemoveAll(dir)
	if err := os.Symlink(filepath.Join(dir, "gone.cmm"), filepath.Join(dir, "b.cmm")); err != nil {
		t.Fatal(err)
	}

	r := &fakeRunner{}
	results, err := RunDir(r, dir, DefaultExt)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.cmm", "c.cmm"}, r.seen)
	assert.Len(t, results, 2)
}

func TestRunDir_ContinuesOnFailure(t *testing.T) {
	dir := testDir(t, "2.cmm", "1.cmm", "3.cmm")
	defer os.RemoveAll(dir)

	r := &fakeRunner{status: map[string]int{"2.cmm": 1}}
	results, err := RunDir(r, dir, DefaultExt)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1.cmm", "2.cmm", "3.cmm"}, r.seen)
	assert.Equal(t, []Result{
		{Path: filepath.Join(dir, "1.cmm"), Status: 0},
		{Path: filepath.Join(dir, "2.cmm"), Status: 1},
		{Path: filepath.Join(dir, "3.cmm"), Status: 0},
	}, results)
}

func TestRunDir_MissingDir(t *testing.T) {
	_, err := RunDir(&fakeRunner{}, "/nonexistent/test", DefaultExt)
	assert.Error(t, err)
}

func TestExec_Run(t *testing.T) {
	dir := testDir(t, "a.cmm")
	defer os.RemoveAll(dir)
	f := filepath.Join(dir, "a.cmm")

	status, err := (&Exec{Parser: "true"}).Run(f)
	assert.NoError(t, err)
	assert.Equal(t, 0, status)

	status, err = (&Exec{Parser: "false"}).Run(f)
	assert.NoError(t, err)
	assert.Equal(t, 1, status)

	_, err = (&Exec{Parser: filepath.Join(dir, "no-parser")}).Run(f)
	assert.Error(t, err)
}
