package ahocorasick_test

import (
	"testing"

	ac "github.com/relkin/ahocorasick"
)

// Scenario 5: python/scheme/perl/java/pythonperl.
func TestFindAll_PythonPerlSchemeJava(t *testing.T) {
	a := build(t, "python", "scheme", "perl", "java", "pythonperl")
	buf := []byte("pythonperlschemejava")

	got := a.FindAllSlice(buf)
	want := [][2]int{{0, 6}, {6, 10}, {10, 16}, {16, 20}}
	requireRanges(t, got, want)
}

func TestFindAllLong_PythonPerlSchemeJava(t *testing.T) {
	a := build(t, "python", "scheme", "perl", "java", "pythonperl")
	buf := []byte("pythonperlschemejava")

	got := a.FindAllLongSlice(buf)
	want := [][2]int{{0, 10}, {10, 16}, {16, 20}}
	requireRanges(t, got, want)
}

func TestFindAll_EmptyOnNoMatch(t *testing.T) {
	a := build(t, "zzz")
	if got := a.FindAllSlice([]byte("abcdef")); len(got) != 0 {
		t.Fatalf("Matches: got %+v, want empty", got)
	}
}

func TestFindAll_StopsOnYieldFalse(t *testing.T) {
	a := build(t, "a")
	count := 0
	for range a.FindAll([]byte("aaaaa")) {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("expected the loop to stop after the first yield, got count=%d", count)
	}
}

// FindAllOverlapping resumes each scan at Start+1 rather than End, so a
// repeating pattern is revisited once per starting offset rather than
// once per non-overlapping span. It does not, however, revisit deeper
// output states reachable from the same start: Search itself returns the
// instant it reaches any defined-output state, so a nested-prefix pattern
// set like {a, ab, abc} scanned over "abc" only ever surfaces the
// shallowest match (0,1) — the same single-output-per-scan behavior
// FindAll has, just restarted from a different offset.
func TestFindAllOverlapping_RevisitsOverlappingStarts(t *testing.T) {
	a := build(t, "aa")
	got := a.FindAllOverlapping([]byte("aaaa"))

	var ranges [][2]int
	for start, end := range got {
		ranges = append(ranges, [2]int{start, end})
	}
	want := [][2]int{{0, 2}, {1, 3}, {2, 4}}
	if len(ranges) != len(want) {
		t.Fatalf("got %v, want %v", ranges, want)
	}
	for i := range want {
		if ranges[i] != want[i] {
			t.Fatalf("got %v, want %v", ranges, want)
		}
	}
}

func TestFindAllOverlapping_NestedPrefixCollapsesToShallowestMatch(t *testing.T) {
	a := build(t, "a", "ab", "abc")
	got := a.FindAllOverlapping([]byte("abc"))

	var ranges [][2]int
	for start, end := range got {
		ranges = append(ranges, [2]int{start, end})
	}
	want := [][2]int{{0, 1}}
	if len(ranges) != len(want) {
		t.Fatalf("got %v, want %v", ranges, want)
	}
	for i := range want {
		if ranges[i] != want[i] {
			t.Fatalf("got %v, want %v", ranges, want)
		}
	}
}

func TestFindAllLongOverlapping_RevisitsOverlappingStarts(t *testing.T) {
	a := build(t, "aa", "aaa")
	got := a.FindAllLongOverlapping([]byte("aaaa"))

	var ranges [][2]int
	for start, end := range got {
		ranges = append(ranges, [2]int{start, end})
	}
	want := [][2]int{{0, 4}, {1, 4}, {2, 4}}
	if len(ranges) != len(want) {
		t.Fatalf("got %v, want %v", ranges, want)
	}
	for i := range want {
		if ranges[i] != want[i] {
			t.Fatalf("got %v, want %v", ranges, want)
		}
	}
}

func requireRanges(t *testing.T, got []ac.Match, want [][2]int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d matches %+v, want %d %v", len(got), got, len(want), want)
	}
	for i, w := range want {
		if got[i].Start != w[0] || got[i].End != w[1] {
			t.Fatalf("match %d: got (%d,%d), want (%d,%d)", i, got[i].Start, got[i].End, w[0], w[1])
		}
	}
}
