// Package ahocorasick implements a multi-keyword string-matching engine
// over the Aho–Corasick automaton: a keyword trie compiled, by a
// breadth-first sweep, into failure and output links, then scanned in a
// single linear pass regardless of pattern count or length.
package ahocorasick

import "github.com/relkin/ahocorasick/internal/platform/logger"

// Match is a half-open byte range [Start, End) into a scanned buffer.
type Match struct {
	Start int
	End   int
}

// Automaton owns the state store and the finalized flag. It begins empty
// and mutable; Finalize is a one-shot transition after which it is
// read-only and safe for concurrent readers. The automaton takes no locks
// of its own, so it must not be read while a writer is still using it.
type Automaton struct {
	store       *stateStore
	finalized   bool
	numPatterns int
}

// New returns an empty, unfinalized Automaton containing only the zero
// state.
func New() *Automaton {
	return &Automaton{store: newStateStore()}
}

// Finalized reports whether Finalize has run.
func (a *Automaton) Finalized() bool { return a.finalized }

// Finalize runs the failure/output compiler exactly once over the
// current trie and marks the automaton read-only. It is an error to
// finalize with no patterns added, or to finalize twice.
func (a *Automaton) Finalize() error {
	if a.finalized {
		return ErrAlreadyFinalized
	}
	if a.numPatterns == 0 {
		return ErrNoPatterns
	}
	a.compile()
	a.finalized = true
	logger.Named("compile").Debug().
		Int("states", a.store.size()).
		Int("patterns", a.numPatterns).
		Msg("automaton finalized")
	return nil
}
