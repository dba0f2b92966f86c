package scan

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

var testTable = Table{
	{Name: "open", Marker: NewMatcher("OPEN"), Moves: map[State]State{Outside: InCollection}},
	{Name: "close", Marker: NewMatcher("CLOSE"), Moves: map[State]State{InCollection: Outside}},
}

type step struct {
	state   State
	content bool
}

func run(table Table, lines ...string) []step {
	m := NewMachine(table)
	steps := make([]step, 0, len(lines))
	for _, l := range lines {
		s, c := m.Step(l)
		steps = append(steps, step{s, c})
	}
	return steps
}

func TestMachine_Regions(t *testing.T) {
	steps := run(testTable,
		"before\n",
		"// OPEN\n",
		"a\n",
		"// CLOSE\n",
		"after\n",
	)

	assert.Equal(t, []step{
		{Outside, true},
		{InCollection, false},
		{InCollection, true},
		{Outside, false},
		{Outside, true},
	}, steps)
}

func TestMachine_MarkerWithoutMoveIsConsumed(t *testing.T) {
	steps := run(testTable,
		"CLOSE\n",
		"OPEN\n",
		"OPEN again\n",
		"x\n",
	)

	assert.Equal(t, []step{
		{Outside, false},
		{InCollection, false},
		{InCollection, false},
		{InCollection, true},
	}, steps)
}

func TestMachine_UnclosedRegionRunsToEnd(t *testing.T) {
	m := NewMachine(testTable)
	m.Step("OPEN\n")
	for _, l := range []string{"a\n", "b\n", "c"} {
		s, c := m.Step(l)
		assert.Equal(t, InCollection, s)
		assert.True(t, c)
	}
	assert.Equal(t, 4, m.Line())
	assert.Equal(t, InCollection, m.State())
}

func TestMachine_FirstRuleWins(t *testing.T) {
	assert.Equal(t, []step{{InCollection, false}}, run(testTable, "OPEN CLOSE\n"))
}

func TestMatcher(t *testing.T) {
	m := NewMatcher("token start")
	assert.True(t, m.Is("/* token start */\n"))
	assert.True(t, m.Is("token start"))
	assert.False(t, m.Is("Token Start\n"))
	assert.False(t, m.Is("token\n"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a\n", "\n", "b\r\n", "c"}, SplitLines("a\n\nb\r\nc"))
	assert.Equal(t, []string{"a\n"}, SplitLines("a\n"))
	assert.Equal(t, []string{}, SplitLines(""))
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines("/nonexistent/syntax.y")
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestWrap(t *testing.T) {
	base := errors.New("boom")
	err := Wrap("enum", Wrap("scan", base))
	assert.EqualError(t, err, "[enum > scan]: boom")
	assert.Equal(t, base, errors.Cause(err))
	assert.Nil(t, Wrap("enum", nil))
}
