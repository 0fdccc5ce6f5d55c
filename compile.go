package ahocorasick

// compile runs the breadth-first failure/output sweep described in
// spec §4.3. It is invoked exactly once, by Finalize.
//
// The walk itself — explicit fail-link stepping during BFS rather than a
// precomputed total transition closure — is grounded on
// ryansgi-swearjar's internal/core/detector/ac.go Build, whose BFS lines
// up with this spec almost verbatim (that automaton merges a slice of
// pattern ids at each state; this one holds a single output length, so
// step 4 below assigns rather than appends).
func (a *Automaton) compile() {
	store := a.store

	queue := make([]int, 0, store.size())
	queue = append(queue, rootID)

	for qi := 0; qi < len(queue); qi++ {
		s := queue[qi]
		for _, b := range store.labels(s) {
			t, _ := store.gotoOf(s, b)
			queue = append(queue, t)

			if s == rootID {
				store.setFail(t, rootID)
			} else {
				u, _ := store.failOf(s)
				for {
					if _, ok := store.gotoOf(u, b); ok || u == rootID {
						break
					}
					u, _ = store.failOf(u)
				}
				if v, ok := store.gotoOf(u, b); ok && v != t {
					store.setFail(t, v)
				} else {
					store.setFail(t, rootID)
				}
			}

			// Output propagation: t inherits its failure link's output
			// (the dictionary-suffix output) only if it has none of its own.
			if _, ok := store.outputOf(t); !ok {
				f, _ := store.failOf(t)
				if fout, ok := store.outputOf(f); ok {
					store.setOutput(t, fout)
				}
			}
		}
	}

	store.totalizeRoot()
}
