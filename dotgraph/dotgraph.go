// Package dotgraph renders a finalized automaton's goto structure as
// Graphviz DOT source, for visual debugging of a built trie. It is a pure
// reader of the automaton's introspection surface (ahocorasick.State) and
// never reaches into package-internal state.
//
// Grounded on the original implementation's graphviz.dotty: output states
// are drawn as double circles, every other reachable state as a plain
// circle, and edges back to the zero state are elided (dotty's children/
// child_edges both filter out any goto whose target id is 0) since they
// are usually just the root's own totalized self-loops and clutter the
// graph without adding information.
package dotgraph

import (
	"fmt"
	"io"
	"sort"

	"github.com/relkin/ahocorasick/internal/platform/config"
	"github.com/relkin/ahocorasick/internal/platform/logger"

	ac "github.com/relkin/ahocorasick"
)

type edge struct {
	from, to int
	label    byte
}

// defaultName reads AC_DOTGRAPH_NAME afresh on each call (falling back to
// "finite_state_machine", matching the original's own default); Write
// calls it whenever it is given an empty name.
func defaultName() string {
	return config.New().Prefix("AC_DOTGRAPH_").MayString("NAME", "finite_state_machine")
}

// Write renders a as Graphviz DOT source named name to w. An empty name
// falls back to AC_DOTGRAPH_NAME, then to "finite_state_machine".
func Write(w io.Writer, a *ac.Automaton, name string) error {
	if name == "" {
		name = defaultName()
	}
	zero := a.ZeroState()

	visited := map[int]bool{zero.ID(): true}
	var outputs []int
	var edges []edge

	queue := []ac.State{zero}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		if _, ok := s.Output(); ok {
			outputs = append(outputs, s.ID())
		}

		for _, label := range s.Labels() {
			child, ok, err := s.Goto(int(label))
			if err != nil {
				return err
			}
			if !ok || child.ID() == 0 {
				continue
			}
			edges = append(edges, edge{from: s.ID(), to: child.ID(), label: label})
			if !visited[child.ID()] {
				visited[child.ID()] = true
				queue = append(queue, child)
			}
		}
	}

	sort.Ints(outputs)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].label < edges[j].label
	})

	if _, err := fmt.Fprintf(w, "digraph %s {\n", name); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "    rankdir=LR;\n"); err != nil {
		return err
	}

	if len(outputs) > 0 {
		if _, err := io.WriteString(w, "    node [shape = doublecircle];"); err != nil {
			return err
		}
		for _, id := range outputs {
			if _, err := fmt.Fprintf(w, " %s", stateName(id)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ";\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "    node [shape = circle];\n"); err != nil {
		return err
	}

	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "    %s -> %s [ label = %q ];\n",
			stateName(e.from), stateName(e.to), string(rune(e.label))); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "}\n"); err != nil {
		return err
	}

	logger.Named("dotgraph").Debug().
		Int("states", len(visited)).
		Int("edges", len(edges)).
		Msg("dot graph written")
	return nil
}

func stateName(id int) string {
	return fmt.Sprintf("STATE_%d", id)
}
