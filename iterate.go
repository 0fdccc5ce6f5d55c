package ahocorasick

import "iter"

// FindAll returns a lazy sequence of non-overlapping earliest matches over
// buf, in scan order. Each match resumes the scan at its own End, per
// spec §4.4 — so two patterns where one fully contains a span already
// yielded will not both appear.
func (a *Automaton) FindAll(buf []byte) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		pos := 0
		for {
			m, ok, err := a.Search(buf, pos)
			if err != nil || !ok {
				return
			}
			if !yield(m.Start, m.End) {
				return
			}
			pos = m.End
		}
	}
}

// FindAllLong returns a lazy sequence of longest matches over buf, in scan
// order. Each match resumes the scan at its own End, exactly like FindAll,
// but each individual match is resolved with SearchLong's longest-match
// discipline rather than Search's earliest-match one.
func (a *Automaton) FindAllLong(buf []byte) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		pos := 0
		for {
			m, ok, err := a.SearchLong(buf, pos)
			if err != nil || !ok {
				return
			}
			if !yield(m.Start, m.End) {
				return
			}
			pos = m.End
		}
	}
}

// FindAllOverlapping returns a lazy sequence of earliest matches over buf
// without consuming them: each resumes the scan at Start+1 rather than
// End, so matches starting at later offsets inside an earlier match are
// visited. Each scan still returns only its first output, so deeper
// matches that share a start with one already yielded are not reported.
func (a *Automaton) FindAllOverlapping(buf []byte) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		pos := 0
		for {
			m, ok, err := a.Search(buf, pos)
			if err != nil || !ok {
				return
			}
			if !yield(m.Start, m.End) {
				return
			}
			pos = m.Start + 1
		}
	}
}

// FindAllLongOverlapping is FindAllOverlapping's longest-match
// counterpart: each match is resolved by SearchLong rather than Search,
// but the scan still resumes at Start+1, so one longest match is reported
// per starting offset that begins a match; shorter matches sharing that
// start are not reported separately. Mirrors the original's
// findall_long(sourceBlock, allow_overlaps=1) branch.
func (a *Automaton) FindAllLongOverlapping(buf []byte) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		pos := 0
		for {
			m, ok, err := a.SearchLong(buf, pos)
			if err != nil || !ok {
				return
			}
			if !yield(m.Start, m.End) {
				return
			}
			pos = m.Start + 1
		}
	}
}

// FindAllSlice collects FindAll's results into a slice, for callers that
// don't want to deal with the iterator directly. Adapted from the
// teacher's Match/MatchString conveniences, which this module's scanner
// design (explicit fail-walk rather than a precomputed failTrans table)
// no longer has a direct home for.
func (a *Automaton) FindAllSlice(buf []byte) []Match {
	out := make([]Match, 0, 8)
	for start, end := range a.FindAll(buf) {
		out = append(out, Match{Start: start, End: end})
	}
	return out
}

// FindAllLongSlice collects FindAllLong's results into a slice.
func (a *Automaton) FindAllLongSlice(buf []byte) []Match {
	out := make([]Match, 0, 8)
	for start, end := range a.FindAllLong(buf) {
		out = append(out, Match{Start: start, End: end})
	}
	return out
}
