package ahocorasick

// State is a read-only handle onto one node of an automaton. It
// is the only way external packages (dotgraph, streamer, tests) observe
// trie structure — no raw pointer or index is ever exposed directly.
type State struct {
	a  *Automaton
	id int
}

// ZeroState returns a handle to the root state. It is valid to call this
// before Finalize, though Goto/Fail/Output report the structure as it
// exists at call time: a state's goto set only stabilizes once build is
// complete, failure links are set only by compile, and before compile
// Output reports only the lengths Add recorded at pattern terminals.
func (a *Automaton) ZeroState() State {
	return State{a: a, id: rootID}
}

// ID returns the handle's underlying state id. Two handles with equal IDs
// from the same Automaton refer to the same state.
func (s State) ID() int { return s.id }

// Goto returns the state reached by the labeled edge b, if one exists. b
// must be in 0..=255; an out-of-range value is reported as
// ErrorCodeByteOutOfRange rather than silently treated as "no edge".
func (s State) Goto(b int) (State, bool, error) {
	if b < 0 || b > 255 {
		return State{}, false, errByteOutOfRange(b)
	}
	next, ok := s.a.store.gotoOf(s.id, byte(b))
	if !ok {
		return State{}, false, nil
	}
	return State{a: s.a, id: next}, true, nil
}

// Fail returns the state's failure link. It is only meaningful once the
// automaton has been finalized.
func (s State) Fail() (State, bool) {
	f, ok := s.a.store.failOf(s.id)
	if !ok {
		return State{}, false
	}
	return State{a: s.a, id: f}, true
}

// Labels returns, in ascending order, the bytes for which this state has
// a defined outgoing edge.
func (s State) Labels() []byte {
	return s.a.store.labels(s.id)
}

// Output returns the length of the pattern ending at this state, if any.
// A state can be an output state either because a pattern's final byte
// landed there directly, or because compile propagated a shorter
// dictionary-suffix match onto it.
func (s State) Output() (int, bool) {
	return s.a.store.outputOf(s.id)
}
