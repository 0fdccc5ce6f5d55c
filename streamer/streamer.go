// Package streamer adapts a finalized automaton to a sequence of buffers,
// yielding each match tagged with the buffer it was found in.
//
// Grounded on the original implementation's chases/chases_long generators:
// each buffer from the source sequence is run independently through
// FindAll or FindAllLong, and every resulting match is paired with the
// buffer that produced it — a caller with a channel of packets, log lines,
// or file chunks can range over the result without tracking offsets
// across buffer boundaries itself.
package streamer

import (
	"iter"

	ac "github.com/relkin/ahocorasick"
)

// Hit pairs a match with the buffer it was found in.
type Hit struct {
	Buffer []byte
	Match  ac.Match
}

// Chase ranges over src, running FindAll on each buffer and yielding one
// Hit per match. If the automaton is not finalized or a scan otherwise
// errors, FindAll ends that buffer's matches silently, so no Hit is
// yielded for it and the error is not reported; Search returns it.
func Chase(a *ac.Automaton, src iter.Seq[[]byte]) iter.Seq[Hit] {
	return func(yield func(Hit) bool) {
		for block := range src {
			for start, end := range a.FindAll(block) {
				if !yield(Hit{Buffer: block, Match: ac.Match{Start: start, End: end}}) {
					return
				}
			}
		}
	}
}

// ChaseLong is Chase's longest-match counterpart, built on FindAllLong.
func ChaseLong(a *ac.Automaton, src iter.Seq[[]byte]) iter.Seq[Hit] {
	return func(yield func(Hit) bool) {
		for block := range src {
			for start, end := range a.FindAllLong(block) {
				if !yield(Hit{Buffer: block, Match: ac.Match{Start: start, End: end}}) {
					return
				}
			}
		}
	}
}

// Slice turns a plain []byte slice of buffers into an iter.Seq[[]byte],
// for callers whose source isn't already a streaming sequence.
func Slice(buffers [][]byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, b := range buffers {
			if !yield(b) {
				return
			}
		}
	}
}
