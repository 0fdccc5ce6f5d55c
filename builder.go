package ahocorasick

import "github.com/relkin/ahocorasick/internal/platform/logger"

// Add inserts pattern into the trie. It fails when the pattern is empty
// or when the automaton has already been finalized. Walking the pattern
// byte by byte, a new state is created whenever the current state lacks
// a goto for that byte; otherwise the walk descends into the existing
// state. At the final state, the output length is set to len(pattern) —
// re-adding the identical pattern leaves the trie unchanged (the same
// terminal state is reused and its output length is unchanged), though it
// still counts toward the pattern total that Finalize logs.
func (a *Automaton) Add(pattern []byte) error {
	if a.finalized {
		logger.Named("builder").Warn().Msg("add called after finalize")
		return ErrAlreadyFinalized
	}
	if len(pattern) == 0 {
		return ErrEmptyPattern
	}

	cur := rootID
	for _, b := range pattern {
		next, ok := a.store.gotoOf(cur, b)
		if !ok {
			next = a.store.allocate()
			a.store.setGoto(cur, b, next)
		}
		cur = next
	}

	a.store.setOutput(cur, len(pattern))
	a.numPatterns++
	return nil
}

// AddString is a convenience wrapper over Add for string patterns.
func (a *Automaton) AddString(pattern string) error {
	return a.Add([]byte(pattern))
}

// AddPatterns adds multiple byte patterns, stopping at (and returning) the
// first error.
func (a *Automaton) AddPatterns(patterns [][]byte) error {
	for _, p := range patterns {
		if err := a.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// AddStrings adds multiple string patterns, stopping at (and returning)
// the first error.
func (a *Automaton) AddStrings(patterns []string) error {
	for _, p := range patterns {
		if err := a.AddString(p); err != nil {
			return err
		}
	}
	return nil
}
