package scan

import (
	log "github.com/sirupsen/logrus"
)

// State is the region a scanner is currently in.
type State int

const (
	Outside State = iota
	InTerminals
	InNonterminals
	InCollection
)

func (s State) String() string {
	switch s {
	case Outside:
		return "Outside"
	case InTerminals:
		return "InTerminals"
	case InNonterminals:
		return "InNonterminals"
	case InCollection:
		return "InCollection"
	}
	return "State(?)"
}

// Rule moves the machine when a line matches Marker. Moves maps the current
// state to the next one; states missing from Moves are left alone.
type Rule struct {
	Name   string
	Marker Matcher
	Moves  map[State]State
}

// Table is an ordered list of rules. The first rule whose marker matches a
// line decides.
type Table []Rule

// Machine walks lines through a Table. A line matching any marker of the
// table is a marker line and is never content, even when the rule has no
// move out of the current state.
type Machine struct {
	table Table
	state State
	line  int
}

func NewMachine(table Table) *Machine {
	return &Machine{
		table: table,
		state: Outside,
	}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Line() int {
	return m.line
}

// Step feeds one line and reports the state after it. content is false for
// marker lines.
func (m *Machine) Step(line string) (state State, content bool) {
	m.line++

	for _, r := range m.table {
		if !r.Marker.Is(line) {
			continue
		}

		to, ok := r.Moves[m.state]
		if !ok {
			log.Tracef("%v ignored in %v at line %v", r.Name, m.state, m.line)
			return m.state, false
		}

		log.Debugf("%v: %v -> %v at line %v", r.Name, m.state, to, m.line)
		m.state = to
		return m.state, false
	}

	return m.state, true
}
