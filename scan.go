package ahocorasick

// step advances the automaton cursor by one byte: it walks failure links
// while the cursor has no goto on b (stopping at the zero state, whose
// post-finalization goto is total), then takes the goto. reset reports
// whether the walk had to fall all the way back to the zero state to
// resolve b, i.e. whether the current suffix-match context was lost —
// SearchLong uses this to know when an extension has genuinely ended,
// as opposed to merely not having reached an output state yet.
func (a *Automaton) step(cursor int, b byte) (next int, reset bool) {
	store := a.store
	orig := cursor
	for cursor != rootID {
		if _, ok := store.gotoOf(cursor, b); ok {
			break
		}
		cursor, _ = store.failOf(cursor)
	}
	reset = orig != rootID && cursor == rootID
	next, ok := store.gotoOf(cursor, b)
	if !ok {
		// Only reachable at the zero state before totalization; Search/
		// SearchLong are only callable post-finalize, where this never
		// triggers.
		return rootID, reset
	}
	return next, reset
}

// Search runs the earliest-match scanner from spec §4.4: it returns the
// first (start, end) range at which any added pattern ends, scanning
// buf[start:] one byte at a time. It returns (Match{}, false, nil) if no
// pattern occurs. start must be >= 0; start >= len(buf) yields no match.
func (a *Automaton) Search(buf []byte, start int) (Match, bool, error) {
	if !a.finalized {
		return Match{}, false, ErrNotFinalized
	}
	if start < 0 {
		return Match{}, false, ErrNegativeStart
	}
	if start >= len(buf) {
		return Match{}, false, nil
	}

	cursor := rootID
	for i := start; i < len(buf); i++ {
		cursor, _ = a.step(cursor, buf[i])
		if l, ok := a.store.outputOf(cursor); ok {
			end := i + 1
			return Match{Start: end - l, End: end}, true, nil
		}
	}
	return Match{}, false, nil
}

// SearchLong runs the longest-match scanner from spec §4.4: identical to
// Search, except that upon reaching an output state it records the
// candidate (anchored at that first match's start) and keeps advancing
// while the automaton continues to reach states whose output properly
// extends the recorded end. The extension ends — and the candidate is
// returned — the instant either (a) a reached output fails to extend the
// candidate, or (b) the failure walk for the current byte falls all the
// way back to the zero state, meaning the suffix-match context behind the
// candidate has been lost (the byte begins an unrelated, disconnected
// match region that a later, independent call would discover). If the
// buffer ends first, the last recorded candidate is returned.
func (a *Automaton) SearchLong(buf []byte, start int) (Match, bool, error) {
	if !a.finalized {
		return Match{}, false, ErrNotFinalized
	}
	if start < 0 {
		return Match{}, false, ErrNegativeStart
	}
	if start >= len(buf) {
		return Match{}, false, nil
	}

	cursor := rootID
	var candidate Match
	have := false

	for i := start; i < len(buf); i++ {
		var reset bool
		cursor, reset = a.step(cursor, buf[i])

		if have && reset {
			return candidate, true, nil
		}

		l, ok := a.store.outputOf(cursor)
		if !ok {
			continue
		}
		end := i + 1
		switch {
		case !have:
			candidate = Match{Start: end - l, End: end}
			have = true
		case end > candidate.End:
			candidate.End = end
		default:
			return candidate, true, nil
		}
	}

	if have {
		return candidate, true, nil
	}
	return Match{}, false, nil
}
